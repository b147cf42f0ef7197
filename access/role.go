package access

// Role is the closed set of staff categories that govern what a user can reach
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
	RoleServer  Role = "server"
	RoleCounter Role = "counter"
	RoleKitchen Role = "kitchen"
)

// Fallbacks handed out for a role outside the closed set
const (
	FallbackRoute = "/dashboard"
	FallbackColor = "bg-gray-500"
)

var allRoles = []Role{RoleAdmin, RoleManager, RoleServer, RoleCounter, RoleKitchen}

// Roles returns the closed role set in display order
func Roles() []Role {
	out := make([]Role, len(allRoles))
	copy(out, allRoles)
	return out
}

// ParseRole maps a stored identifier onto the closed set.
// The second return is false for anything outside it.
func ParseRole(s string) (Role, bool) {
	r := Role(s)
	return r, r.Valid()
}

// Valid reports whether r belongs to the closed set
func (r Role) Valid() bool {
	_, ok := roleProfiles[r]
	return ok
}

func (r Role) String() string { return string(r) }

// RoleProfile is the static per-role metadata
type RoleProfile struct {
	Role         Role   `json:"role"`
	LandingRoute string `json:"landing_route"`
	LabelKey     string `json:"label_key"`
	BadgeColor   string `json:"badge_color"`
}

var roleProfiles = map[Role]RoleProfile{
	RoleAdmin:   {Role: RoleAdmin, LandingRoute: "/dashboard", LabelKey: "roles.admin", BadgeColor: "bg-red-500"},
	RoleManager: {Role: RoleManager, LandingRoute: "/dashboard", LabelKey: "roles.manager", BadgeColor: "bg-purple-500"},
	RoleServer:  {Role: RoleServer, LandingRoute: "/dashboard/pos", LabelKey: "roles.server", BadgeColor: "bg-blue-500"},
	RoleCounter: {Role: RoleCounter, LandingRoute: "/dashboard/pos", LabelKey: "roles.counter", BadgeColor: "bg-green-500"},
	RoleKitchen: {Role: RoleKitchen, LandingRoute: "/dashboard/kitchen", LabelKey: "roles.kitchen", BadgeColor: "bg-orange-500"},
}

// ProfileFor returns the profile of r, or a fallback profile for unknown roles
func ProfileFor(r Role) RoleProfile {
	if p, ok := roleProfiles[r]; ok {
		return p
	}
	return RoleProfile{
		Role:         r,
		LandingRoute: FallbackRoute,
		LabelKey:     "roles." + string(r),
		BadgeColor:   FallbackColor,
	}
}

// Principal is the authenticated user as seen by access control
type Principal struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	FullName string `json:"full_name"`
	Role     Role   `json:"role"`
}
