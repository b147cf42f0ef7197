package access

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mapTranslator map[string]string

func (m mapTranslator) Translate(key, defaultValue string) string {
	if v, ok := m[key]; ok {
		return v
	}
	return defaultValue
}

func TestDefaultRouteFor(t *testing.T) {
	cases := map[Role]string{
		RoleAdmin:   "/dashboard",
		RoleManager: "/dashboard",
		RoleServer:  "/dashboard/pos",
		RoleCounter: "/dashboard/pos",
		RoleKitchen: "/dashboard/kitchen",
	}
	for role, want := range cases {
		assert.Equal(t, want, DefaultRouteFor(role), role)
	}

	t.Run("unknown role falls back", func(t *testing.T) {
		assert.Equal(t, "/dashboard", DefaultRouteFor(Role("unknown-role")))
		assert.Equal(t, FallbackRoute, DefaultRouteFor(""))
	})
}

func TestEveryRoleHasProfile(t *testing.T) {
	for _, r := range Roles() {
		p, ok := roleProfiles[r]
		require.True(t, ok, r)
		assert.NotEmpty(t, p.LandingRoute)
		assert.NotEmpty(t, p.BadgeColor)
		assert.Equal(t, "roles."+string(r), p.LabelKey)
		assert.True(t, CanAccess(r, p.LandingRoute), "%s cannot reach its own landing route", r)
	}
	assert.Len(t, roleProfiles, len(Roles()))
}

func TestBadgeColorFor(t *testing.T) {
	assert.Equal(t, "bg-red-500", BadgeColorFor(RoleAdmin))
	assert.Equal(t, "bg-purple-500", BadgeColorFor(RoleManager))
	assert.Equal(t, "bg-blue-500", BadgeColorFor(RoleServer))
	assert.Equal(t, "bg-green-500", BadgeColorFor(RoleCounter))
	assert.Equal(t, "bg-orange-500", BadgeColorFor(RoleKitchen))
	assert.Equal(t, "bg-gray-500", BadgeColorFor(Role("unknown-role")))
}

func TestDisplayLabelFor(t *testing.T) {
	tr := mapTranslator{"roles.kitchen": "Cuisine"}

	assert.Equal(t, "Cuisine", DisplayLabelFor(tr, RoleKitchen))
	assert.Equal(t, "admin", DisplayLabelFor(tr, RoleAdmin))
	assert.Equal(t, "unknown-role", DisplayLabelFor(tr, Role("unknown-role")))
}

func TestParseRole(t *testing.T) {
	r, ok := ParseRole("counter")
	assert.True(t, ok)
	assert.Equal(t, RoleCounter, r)

	_, ok = ParseRole("driver")
	assert.False(t, ok)
	_, ok = ParseRole("Admin")
	assert.False(t, ok)
}

func TestVisibleDestinationsFor(t *testing.T) {
	t.Run("kitchen scenario", func(t *testing.T) {
		all := []Destination{
			{Route: "/dashboard", AllowedRoles: []Role{RoleAdmin, RoleManager}},
			{Route: "/dashboard/kitchen", AllowedRoles: []Role{RoleAdmin, RoleManager, RoleKitchen}},
		}
		got := VisibleDestinationsFor(RoleKitchen, all)
		require.Len(t, got, 1)
		assert.Equal(t, "/dashboard/kitchen", got[0].Route)
	})

	t.Run("order preserved and idempotent", func(t *testing.T) {
		all := Destinations()
		first := VisibleDestinationsFor(RoleServer, all)
		second := VisibleDestinationsFor(RoleServer, all)
		assert.Equal(t, first, second)

		routes := make([]string, 0, len(first))
		for _, d := range first {
			routes = append(routes, d.Route)
		}
		assert.Equal(t, []string{"/dashboard/pos", "/dashboard/orders", "/dashboard/tables"}, routes)
	})

	t.Run("admin sees everything", func(t *testing.T) {
		assert.Len(t, VisibleDestinationsFor(RoleAdmin, Destinations()), len(destinations))
	})

	t.Run("unknown role sees nothing", func(t *testing.T) {
		assert.Empty(t, VisibleDestinationsFor(Role("unknown-role"), Destinations()))
	})
}

func TestVisibilityAgreesWithIsAllowed(t *testing.T) {
	all := Destinations()
	roles := append(Roles(), Role("unknown-role"))
	for _, r := range roles {
		visible := map[string]bool{}
		for _, d := range VisibleDestinationsFor(r, all) {
			visible[d.Route] = true
		}
		for _, d := range all {
			assert.Equal(t, IsAllowed(r, d.AllowedRoles), visible[d.Route], "%s %s", r, d.Route)
			assert.Equal(t, visible[d.Route], CanAccess(r, d.Route), "gate diverges for %s %s", r, d.Route)
		}
	}
}

func TestCanAccessUnknownRoute(t *testing.T) {
	assert.False(t, CanAccess(RoleAdmin, "/dashboard/nowhere"))
}

func TestDestinationsIsACopy(t *testing.T) {
	all := Destinations()
	all[0].AllowedRoles[0] = RoleKitchen
	all[0].Route = "/changed"

	d, ok := DestinationFor("/dashboard")
	require.True(t, ok)
	assert.Equal(t, []Role{RoleAdmin, RoleManager}, d.AllowedRoles)
}

func TestDestinationForIsACopy(t *testing.T) {
	d, ok := DestinationFor("/dashboard/settings")
	require.True(t, ok)
	d.AllowedRoles[0] = RoleKitchen

	assert.False(t, CanAccess(RoleKitchen, "/dashboard/settings"))
	assert.True(t, CanAccess(RoleAdmin, "/dashboard/settings"))

	again, _ := DestinationFor("/dashboard/settings")
	assert.Equal(t, []Role{RoleAdmin}, again.AllowedRoles)
}

func TestNavigation(t *testing.T) {
	tr := mapTranslator{
		"navigation.kitchen": "Cuisine",
	}
	items := Navigation(tr, Principal{ID: "5", Role: RoleKitchen})
	require.Len(t, items, 1)
	assert.Equal(t, NavItem{Route: "/dashboard/kitchen", Label: "Cuisine", Icon: "chef-hat"}, items[0])
}
