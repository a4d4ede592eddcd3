// Package authz is the authorization gate: a declarative policy table keyed
// by (method, route) and the principal it is evaluated against.
package authz

import (
	"slices"

	"github.com/Antdol/LittleLemonAPI/entity"
)

// Principal is the authenticated caller with the roles it held when the
// request arrived. It is rebuilt from the store on every request.
type Principal struct {
	UserID   uint
	Username string
	IsAdmin  bool
	Roles    []string
}

func (p Principal) HasRole(role string) bool {
	return slices.Contains(p.Roles, role)
}

func (p Principal) IsManager() bool      { return p.HasRole(entity.GroupManager) }
func (p Principal) IsDeliveryCrew() bool { return p.HasRole(entity.GroupDeliveryCrew) }

// Loader resolves a user id into a Principal.
type Loader func(userID uint) (Principal, error)

// Rule says who may call a route. An authenticated caller passes a rule
// with no Roles; otherwise it needs one of Roles, or IsAdmin when Admin is set.
type Rule struct {
	Public bool
	Roles  []string
	Admin  bool
}

func (r Rule) Allows(p Principal) bool {
	if r.Public {
		return true
	}
	if p.UserID == 0 {
		return false
	}
	if len(r.Roles) == 0 && !r.Admin {
		return true
	}
	if r.Admin && p.IsAdmin {
		return true
	}
	for _, role := range r.Roles {
		if p.HasRole(role) {
			return true
		}
	}
	return false
}

type Key struct {
	Method string
	Route  string // gin route pattern, e.g. /orders/:id
}

type Policy map[Key]Rule

// Lookup returns the rule of a route. Routes missing from the table are
// denied to everyone.
func (p Policy) Lookup(method, route string) (Rule, bool) {
	r, ok := p[Key{Method: method, Route: route}]
	return r, ok
}

// Add registers the same rule for several methods of one route.
func (p Policy) Add(route string, rule Rule, methods ...string) Policy {
	for _, m := range methods {
		p[Key{Method: m, Route: route}] = rule
	}
	return p
}

var (
	Public         = Rule{Public: true}
	Authenticated  = Rule{}
	Manager        = Rule{Roles: []string{entity.GroupManager}}
	ManagerOrCrew  = Rule{Roles: []string{entity.GroupManager, entity.GroupDeliveryCrew}}
	ManagerOrAdmin = Rule{Roles: []string{entity.GroupManager}, Admin: true}
)
