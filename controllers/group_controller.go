package controllers

import (
	"github.com/Antdol/LittleLemonAPI/pkg/resp"
	"github.com/Antdol/LittleLemonAPI/services"

	"github.com/gin-gonic/gin"
)

// GroupController serves /groups/<group>/users for one role.
type GroupController struct {
	Svc   *services.GroupService
	Role  string
	Label string // used in messages, e.g. "manager group"
}

func NewGroupController(s *services.GroupService, role, label string) *GroupController {
	return &GroupController{Svc: s, Role: role, Label: label}
}

// GET /groups/<group>/users
func (g *GroupController) List(c *gin.Context) {
	members, err := g.Svc.Members(g.Role)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, members)
}

// POST /groups/<group>/users {"username": "..."}
func (g *GroupController) Add(c *gin.Context) {
	var body struct {
		Username string `json:"username"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, "username: this field is required")
		return
	}
	if err := g.Svc.Add(g.Role, body.Username); err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, gin.H{"message": "User added to " + g.Label})
}

// DELETE /groups/<group>/users/:id
func (g *GroupController) Remove(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		resp.Error(c, err)
		return
	}
	if err := g.Svc.Remove(g.Role, id); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "User removed from " + g.Label})
}
