package controllers

import (
	"github.com/Antdol/LittleLemonAPI/pkg/resp"
	"github.com/Antdol/LittleLemonAPI/services"

	"github.com/gin-gonic/gin"
)

type CategoryController struct{ Svc *services.CategoryService }

func NewCategoryController(s *services.CategoryService) *CategoryController {
	return &CategoryController{Svc: s}
}

// GET /categories
func (h *CategoryController) List(c *gin.Context) {
	cats, err := h.Svc.List()
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"results": cats})
}

// POST /categories (Manager)
func (h *CategoryController) Create(c *gin.Context) {
	var req services.CategoryIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	cat, err := h.Svc.Create(&req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, cat)
}
