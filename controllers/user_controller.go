package controllers

import (
	"net/http"

	"hotel-management/config"
	"hotel-management/middleware"
	"hotel-management/models"
	"hotel-management/services"
	"hotel-management/utils"

	"github.com/gin-gonic/gin"
)

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type UpdateProfileRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required"`
}

type UserController struct {
	UserSvc *services.UserService
	Cfg     config.Config
}

func NewUserController(svc *services.UserService, cfg config.Config) *UserController {
	return &UserController{UserSvc: svc, Cfg: cfg}
}

func (ctrl *UserController) register(c *gin.Context, role string) {
	var payload RegisterRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONErrorDetails(c, http.StatusBadRequest, "error.invalidPayload", "name, email and password are required", err.Error())
		return
	}

	user, err := ctrl.UserSvc.Register(payload.Name, payload.Email, payload.Password, role)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, user)
}

// Register handles POST /users/register (public, customer role).
func (ctrl *UserController) Register(c *gin.Context) {
	ctrl.register(c, models.RoleCustomer)
}

// CreateOwner handles POST /users/create-owner (owner only).
func (ctrl *UserController) CreateOwner(c *gin.Context) {
	ctrl.register(c, models.RoleOwner)
}

// CreateStaff handles POST /users/create-staff (owner + admin).
func (ctrl *UserController) CreateStaff(c *gin.Context) {
	ctrl.register(c, models.RoleStaff)
}

// Login handles POST /users/login. The token is returned in the body and
// mirrored in an httpOnly cookie for the dashboard.
func (ctrl *UserController) Login(c *gin.Context) {
	var payload LoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONErrorDetails(c, http.StatusBadRequest, "error.invalidPayload", "email and password are required", err.Error())
		return
	}

	user, err := ctrl.UserSvc.Authenticate(payload.Email, payload.Password)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	token, err := utils.CreateToken(ctrl.Cfg.JWTSecret, user.ID, user.Role, ctrl.Cfg.TokenTTL)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.SetCookie(middleware.AccessTokenCookie, token, int(ctrl.Cfg.TokenTTL.Seconds()), "/", "", false, true)
	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"token": token,
		"user":  user,
	})
}

// Logout handles POST /users/logout by expiring the cookie. Tokens are
// stateless, so the client must also drop its copy.
func (ctrl *UserController) Logout(c *gin.Context) {
	c.SetCookie(middleware.AccessTokenCookie, "", -1, "/", "", false, true)
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "logout successful"})
}

// UpdateProfile handles PUT /users/update-profile for the caller's own
// account.
func (ctrl *UserController) UpdateProfile(c *gin.Context) {
	var payload UpdateProfileRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONErrorDetails(c, http.StatusBadRequest, "error.invalidPayload", "invalid request payload", err.Error())
		return
	}

	callerID, _ := currentUser(c)
	user, err := ctrl.UserSvc.UpdateProfile(callerID, payload.Name, payload.Password)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, user)
}

// ForgotPassword handles POST /users/forgot-password. The response is the
// same whether or not the address exists.
func (ctrl *UserController) ForgotPassword(c *gin.Context) {
	var payload ForgotPasswordRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONErrorDetails(c, http.StatusBadRequest, "error.invalidPayload", "email is required", err.Error())
		return
	}

	if err := ctrl.UserSvc.ForgotPassword(payload.Email); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "if this email exists, a reset link was sent"})
}
