package controllers

import (
	"github.com/Antdol/LittleLemonAPI/pkg/resp"
	"github.com/Antdol/LittleLemonAPI/services"

	"github.com/gin-gonic/gin"
)

type MenuController struct {
	Svc *services.MenuService
}

func NewMenuController(s *services.MenuService) *MenuController {
	return &MenuController{Svc: s}
}

// GET /menu-items?category=&to_price=&search=&ordering=&perpage=&page=
func (ctl *MenuController) List(c *gin.Context) {
	var q services.MenuQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	out, err := ctl.Svc.List(q)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /menu-items/:id
func (ctl *MenuController) Get(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		resp.Error(c, err)
		return
	}
	m, err := ctl.Svc.Get(id)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, m)
}

// POST /menu-items (Manager)
func (ctl *MenuController) Create(c *gin.Context) {
	var req services.MenuItemIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	m, err := ctl.Svc.Create(&req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, m)
}

// PUT /menu-items/:id (Manager)
func (ctl *MenuController) Replace(c *gin.Context) { ctl.update(c, true) }

// PATCH /menu-items/:id (Manager)
func (ctl *MenuController) Patch(c *gin.Context) { ctl.update(c, false) }

func (ctl *MenuController) update(c *gin.Context, full bool) {
	id, err := idParam(c)
	if err != nil {
		resp.Error(c, err)
		return
	}
	var req services.MenuItemIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "Could not update the item.")
		return
	}
	m, err := ctl.Svc.Update(id, &req, full)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, m)
}

// DELETE /menu-items/:id (Manager)
func (ctl *MenuController) Delete(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		resp.Error(c, err)
		return
	}
	if err := ctl.Svc.Delete(id); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "Item deleted successfully."})
}
