package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/adotapet/adota-pet-api/internal/httpresp"
	"github.com/adotapet/adota-pet-api/internal/middleware"
	ucauth "github.com/adotapet/adota-pet-api/internal/usecase/auth"
	"github.com/adotapet/adota-pet-api/internal/validators"
)

type AuthHandler struct {
	register *ucauth.RegisterUser
	login    *ucauth.LoginUser
}

func NewAuthHandler(register *ucauth.RegisterUser, login *ucauth.LoginUser) *AuthHandler {
	return &AuthHandler{register: register, login: login}
}

// --------- Requests ---------

type RegisterRequest struct {
	Name   string `form:"name" binding:"required,min=2,max=100"`
	Email  string `form:"email" binding:"required,email"`
	Phone  string `form:"phone" binding:"required,max=20"`
	AuthID string `form:"authId" binding:"required,uuid"`

	// Optional: enables email/password login next to the identity provider.
	Password *string `form:"password" binding:"omitempty,min=6,max=72"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		middleware.Fail(c, validators.FormatBinding(err))
		return
	}

	user, err := h.register.Execute(c.Request.Context(), ucauth.RegisterUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		AuthID:   req.AuthID,
		Password: req.Password,
		Photo:    middleware.UploadFrom(c),
	})
	if err != nil {
		middleware.Fail(c, err)
		return
	}

	httpresp.Created(c, "User registered.", user)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.Fail(c, validators.FormatBinding(err))
		return
	}

	result, err := h.login.Execute(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		middleware.Fail(c, err)
		return
	}

	httpresp.OK(c, "Logged in.", gin.H{
		"user":  result.User,
		"token": result.Token,
	})
}
