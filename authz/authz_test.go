package authz

import (
	"net/http"
	"testing"

	"github.com/Antdol/LittleLemonAPI/entity"

	"github.com/stretchr/testify/assert"
)

func TestRuleAllows(t *testing.T) {
	anon := Principal{}
	customer := Principal{UserID: 1}
	manager := Principal{UserID: 2, Roles: []string{entity.GroupManager}}
	crew := Principal{UserID: 3, Roles: []string{entity.GroupDeliveryCrew}}
	admin := Principal{UserID: 4, IsAdmin: true}

	cases := []struct {
		name string
		rule Rule
		p    Principal
		want bool
	}{
		{"public anon", Public, anon, true},
		{"authenticated anon", Authenticated, anon, false},
		{"authenticated customer", Authenticated, customer, true},
		{"manager rule customer", Manager, customer, false},
		{"manager rule manager", Manager, manager, true},
		{"manager rule crew", Manager, crew, false},
		{"manager rule admin", Manager, admin, false},
		{"manager or crew crew", ManagerOrCrew, crew, true},
		{"manager or admin admin", ManagerOrAdmin, admin, true},
		{"manager or admin customer", ManagerOrAdmin, customer, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.rule.Allows(tc.p))
		})
	}
}

func TestPolicyLookup(t *testing.T) {
	p := Policy{}.Add("/menu-items", Manager, http.MethodPost).
		Add("/menu-items", Authenticated, http.MethodGet)

	r, ok := p.Lookup(http.MethodPost, "/menu-items")
	assert.True(t, ok)
	assert.Equal(t, Manager.Roles, r.Roles)

	_, ok = p.Lookup(http.MethodDelete, "/menu-items")
	assert.False(t, ok)
}
