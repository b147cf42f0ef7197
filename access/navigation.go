package access

// Destination is a navigable dashboard section and the roles that may see it
type Destination struct {
	Route        string `json:"route"`
	LabelKey     string `json:"label_key"`
	Icon         string `json:"icon"`
	AllowedRoles []Role `json:"allowed_roles"`
}

// destinations is the single source of truth for both the sidebar and route gates.
// Order is the sidebar order.
var destinations = []Destination{
	{Route: "/dashboard", LabelKey: "navigation.dashboard", Icon: "layout-dashboard",
		AllowedRoles: []Role{RoleAdmin, RoleManager}},
	{Route: "/dashboard/pos", LabelKey: "navigation.pos", Icon: "shopping-cart",
		AllowedRoles: []Role{RoleAdmin, RoleManager, RoleServer, RoleCounter}},
	{Route: "/dashboard/kitchen", LabelKey: "navigation.kitchen", Icon: "chef-hat",
		AllowedRoles: []Role{RoleAdmin, RoleManager, RoleKitchen}},
	{Route: "/dashboard/orders", LabelKey: "navigation.orders", Icon: "clipboard-list",
		AllowedRoles: []Role{RoleAdmin, RoleManager, RoleServer, RoleCounter}},
	{Route: "/dashboard/tables", LabelKey: "navigation.tables", Icon: "utensils-crossed",
		AllowedRoles: []Role{RoleAdmin, RoleManager, RoleServer}},
	{Route: "/dashboard/products", LabelKey: "navigation.products", Icon: "store",
		AllowedRoles: []Role{RoleAdmin, RoleManager}},
	{Route: "/dashboard/staff", LabelKey: "navigation.staff", Icon: "users",
		AllowedRoles: []Role{RoleAdmin}},
	{Route: "/dashboard/reports", LabelKey: "navigation.reports", Icon: "file-text",
		AllowedRoles: []Role{RoleAdmin, RoleManager}},
	{Route: "/dashboard/payments", LabelKey: "navigation.payments", Icon: "credit-card",
		AllowedRoles: []Role{RoleAdmin, RoleManager, RoleCounter}},
	{Route: "/dashboard/settings", LabelKey: "navigation.settings", Icon: "settings",
		AllowedRoles: []Role{RoleAdmin}},
}

// Destinations returns a copy of the dashboard destinations in sidebar order
func Destinations() []Destination {
	out := make([]Destination, len(destinations))
	for i, d := range destinations {
		out[i] = d
		out[i].AllowedRoles = append([]Role(nil), d.AllowedRoles...)
	}
	return out
}

// DestinationFor looks up the destination registered for route
func DestinationFor(route string) (Destination, bool) {
	for _, d := range destinations {
		if d.Route == route {
			d.AllowedRoles = append([]Role(nil), d.AllowedRoles...)
			return d, true
		}
	}
	return Destination{}, false
}

// NavItem is a destination with its label already translated
type NavItem struct {
	Route string `json:"route"`
	Label string `json:"label"`
	Icon  string `json:"icon"`
}

// Navigation builds the translated sidebar for p
func Navigation(tr Translator, p Principal) []NavItem {
	visible := VisibleDestinationsFor(p.Role, destinations)
	items := make([]NavItem, 0, len(visible))
	for _, d := range visible {
		items = append(items, NavItem{
			Route: d.Route,
			Label: tr.Translate(d.LabelKey, d.Route),
			Icon:  d.Icon,
		})
	}
	return items
}
