package access

// Translator resolves a localization key, returning defaultValue when no
// localized string exists
type Translator interface {
	Translate(key, defaultValue string) string
}

// DefaultRouteFor returns where a user with role r lands after login
func DefaultRouteFor(r Role) string {
	return ProfileFor(r).LandingRoute
}

// DisplayLabelFor returns the localized label of r, or r itself when untranslated
func DisplayLabelFor(tr Translator, r Role) string {
	return tr.Translate("roles."+string(r), string(r))
}

// BadgeColorFor returns the badge style token for r
func BadgeColorFor(r Role) string {
	return ProfileFor(r).BadgeColor
}

// IsAllowed is the one membership test behind navigation filtering, route
// gating and order transitions.
func IsAllowed(r Role, allowed []Role) bool {
	for _, a := range allowed {
		if a == r {
			return true
		}
	}
	return false
}

// VisibleDestinationsFor returns the destinations of all that r may see, in input order
func VisibleDestinationsFor(r Role, all []Destination) []Destination {
	out := make([]Destination, 0, len(all))
	for _, d := range all {
		if IsAllowed(r, d.AllowedRoles) {
			out = append(out, d)
		}
	}
	return out
}

// CanAccess gates a dashboard route. Routes without a destination are denied.
func CanAccess(r Role, route string) bool {
	d, ok := DestinationFor(route)
	if !ok {
		return false
	}
	return IsAllowed(r, d.AllowedRoles)
}
