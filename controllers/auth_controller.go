package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/frrrancoelgori-ui/joyeria/services"
)

type AuthController struct {
	auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{auth: auth}
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login issues an admin token for valid credentials.
func (ac *AuthController) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	token, svcErr := ac.auth.Login(req.Username, req.Password)
	if svcErr != nil {
		respondError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

type changeCredentialsRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewUsername     string `json:"new_username" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=8"`
}

// ChangeCredentials swaps the admin username and password.
func (ac *AuthController) ChangeCredentials(c *gin.Context) {
	var req changeCredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	if svcErr := ac.auth.ChangeCredentials(req.CurrentPassword, req.NewUsername, req.NewPassword); svcErr != nil {
		respondError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "credentials updated"})
}
