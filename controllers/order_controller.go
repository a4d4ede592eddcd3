package controllers

import (
	"github.com/Antdol/LittleLemonAPI/authz"
	"github.com/Antdol/LittleLemonAPI/entity"
	"github.com/Antdol/LittleLemonAPI/pkg/resp"
	"github.com/Antdol/LittleLemonAPI/services"
	"github.com/Antdol/LittleLemonAPI/utils"

	"github.com/gin-gonic/gin"
)

type OrderController struct{ Svc *services.OrderService }

func NewOrderController(s *services.OrderService) *OrderController { return &OrderController{Svc: s} }

// GET /orders?status=&perpage=&page=
func (oc *OrderController) List(c *gin.Context) {
	page, err := services.ParsePage(c.Query("perpage"), c.Query("page"))
	if err != nil {
		resp.Error(c, err)
		return
	}
	out, err := oc.Svc.List(utils.CurrentPrincipal(c), c.Query("status"), page)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, out)
}

// POST /orders checks out the caller's cart.
func (oc *OrderController) Checkout(c *gin.Context) {
	order, err := oc.Svc.Checkout(utils.CurrentUserID(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, order)
}

// GET /orders/:id
func (oc *OrderController) Detail(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		resp.Error(c, err)
		return
	}
	out, err := oc.Svc.Detail(utils.CurrentPrincipal(c), id)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, out)
}

// PUT /orders/:id (Manager)
func (oc *OrderController) Replace(c *gin.Context) {
	oc.update(c, oc.Svc.Replace)
}

// PATCH /orders/:id (Manager, or the assigned delivery crew for status)
func (oc *OrderController) Patch(c *gin.Context) {
	oc.update(c, oc.Svc.Patch)
}

func (oc *OrderController) update(c *gin.Context, apply func(authz.Principal, uint, map[string]services.RawField) (*entity.Order, error)) {
	id, err := idParam(c)
	if err != nil {
		resp.Error(c, err)
		return
	}
	var body map[string]services.RawField
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, "request body must be a JSON object")
		return
	}
	o, err := apply(utils.CurrentPrincipal(c), id, body)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, o)
}

// DELETE /orders/:id (Manager)
func (oc *OrderController) Delete(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		resp.Error(c, err)
		return
	}
	if err := oc.Svc.Delete(id); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "Order deleted successfully."})
}
