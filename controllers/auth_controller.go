package controllers

import (
	"github.com/Antdol/LittleLemonAPI/pkg/resp"
	"github.com/Antdol/LittleLemonAPI/services"
	"github.com/Antdol/LittleLemonAPI/utils"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
)

type AuthController struct{ Svc *services.AuthService }

func NewAuthController(s *services.AuthService) *AuthController { return &AuthController{Svc: s} }

// POST /auth/register
func (a *AuthController) Register(c *gin.Context) {
	var req services.RegisterIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	user, err := a.Svc.Register(&req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, gin.H{"id": user.ID, "username": user.Username, "email": user.Email})
}

// POST /auth/login
func (a *AuthController) Login(c *gin.Context) {
	var req services.LoginIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	token, user, err := a.Svc.Login(&req)
	if errors.Is(err, services.ErrInvalidCredentials) {
		resp.BadRequest(c, "Unable to log in with provided credentials.")
		return
	}
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"token": token, "user": gin.H{"id": user.ID, "username": user.Username}})
}

// GET /auth/me
func (a *AuthController) Me(c *gin.Context) {
	p, err := a.Svc.Profile(utils.CurrentUserID(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, p)
}
