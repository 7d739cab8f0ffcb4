package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/Jonkomane982/student-feedback-app/pkg/utils"
)

// AuthController reserves the auth endpoints. None of them are implemented:
// they answer 501 rather than pretending to succeed.
type AuthController struct{}

func NewAuthController() *AuthController {
	return &AuthController{}
}

// Register godoc
// @Summary Register a new user
// @Tags Auth
// @Produce json
// @Failure 501 {object} utils.APIResponse
// @Router /auth/register [post]
func (a *AuthController) Register(c *gin.Context) {
	utils.RespondNotImplemented(c, "Register endpoint not implemented")
}

// Login godoc
// @Summary Login
// @Tags Auth
// @Produce json
// @Failure 501 {object} utils.APIResponse
// @Router /auth/login [post]
func (a *AuthController) Login(c *gin.Context) {
	utils.RespondNotImplemented(c, "Login endpoint not implemented")
}

// GetMe godoc
// @Summary Current user
// @Tags Auth
// @Produce json
// @Failure 501 {object} utils.APIResponse
// @Router /auth/me [get]
func (a *AuthController) GetMe(c *gin.Context) {
	utils.RespondNotImplemented(c, "Get me endpoint not implemented")
}
