package controllers

import (
	"errors"
	"log"
	"net/http"

	"thai-kitchen/models"
	"thai-kitchen/services"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{auth: auth}
}

// Register godoc
// @Summary Register a staff account
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body models.RegisterRequest true "Register Request"
// @Success 200 {object} models.User
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /admin/register [post]
func (ctrl *AuthController) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "username and password required"})
		return
	}

	user, err := ctrl.auth.Register(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMissingCredentials):
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "username and password required"})
		case errors.Is(err, services.ErrUsernameTaken):
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "username already taken"})
		default:
			log.Printf("Failed to register user: %v", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to register user"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": user.ID, "username": user.Username})
}

// Login godoc
// @Summary Staff login
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Login Request"
// @Success 200 {object} models.LoginResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Router /admin/login [post]
func (ctrl *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "username and password required"})
		return
	}

	resp, err := ctrl.auth.Login(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMissingCredentials):
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "username and password required"})
		case errors.Is(err, services.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "invalid username or password"})
		default:
			log.Printf("Failed to log in user: %v", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to log in"})
		}
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Profile godoc
// @Summary Current staff profile
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.User
// @Failure 401 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/me [get]
func (ctrl *AuthController) Profile(c *gin.Context) {
	userID := c.GetInt("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "Unauthorized"})
		return
	}

	user, err := ctrl.auth.Profile(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "User not found"})
		return
	}

	c.JSON(http.StatusOK, user)
}
