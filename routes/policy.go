package routes

import (
	"net/http"

	"github.com/Antdol/LittleLemonAPI/authz"
)

// Policy is the single table of who may call what. Object-level scope
// (own cart, own or assigned orders) is enforced by the services.
func Policy() authz.Policy {
	const (
		get    = http.MethodGet
		post   = http.MethodPost
		put    = http.MethodPut
		patch  = http.MethodPatch
		delete = http.MethodDelete
	)
	return authz.Policy{}.
		Add("/health", authz.Public, get).
		Add("/auth/register", authz.Public, post).
		Add("/auth/login", authz.Public, post).
		Add("/auth/me", authz.Authenticated, get).
		Add("/categories", authz.Authenticated, get).
		Add("/categories", authz.Manager, post).
		Add("/menu-items", authz.Authenticated, get).
		Add("/menu-items", authz.Manager, post).
		Add("/menu-items/:id", authz.Authenticated, get).
		Add("/menu-items/:id", authz.Manager, put, patch, delete).
		Add("/cart", authz.Authenticated, get, post, delete).
		Add("/orders", authz.Authenticated, get, post).
		Add("/orders/:id", authz.Authenticated, get).
		Add("/orders/:id", authz.Manager, put, delete).
		Add("/orders/:id", authz.ManagerOrCrew, patch).
		Add("/groups/manager/users", authz.ManagerOrAdmin, get, post).
		Add("/groups/manager/users/:id", authz.ManagerOrAdmin, delete).
		Add("/groups/delivery-crew/users", authz.Manager, get, post).
		Add("/groups/delivery-crew/users/:id", authz.Manager, delete)
}
