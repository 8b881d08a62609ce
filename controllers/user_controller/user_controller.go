package user_controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hallbook/hallbook/clients"
	"github.com/hallbook/hallbook/logger"
	"github.com/hallbook/hallbook/models/session_models"
	"github.com/hallbook/hallbook/utils"
)

// UserController proxies authentication to the booking store and owns the
// portal session lifecycle: created at login, deleted at logout.
type UserController struct {
	Store    *session_models.Store
	API      clients.BookingAPI
	TokenTTL time.Duration
}

// NewUserController creates a new instance of UserController.
func NewUserController(store *session_models.Store, api clients.BookingAPI, tokenTTL time.Duration) *UserController {
	return &UserController{Store: store, API: api, TokenTTL: tokenTTL}
}

// LoginRequest is the login payload: email or phone plus password. Role
// defaults to "user".
type LoginRequest struct {
	Identifier string `json:"identifier" binding:"required"`
	Password   string `json:"password" binding:"required"`
	Role       string `json:"role"`
}

// SignupRequest is the registration payload forwarded to the booking store.
type SignupRequest struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	PhoneNumber string `json:"phoneNumber" binding:"required"`
	Password    string `json:"password" binding:"required,min=6"`
}

// Login authenticates against the booking store, creates a portal session
// and returns a bearer token pointing at it.
func (uc *UserController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data: " + err.Error()})
		return
	}
	role := req.Role
	if role == "" {
		role = "user"
	}

	user, rejection, err := uc.API.Login(c.Request.Context(), req.Identifier, req.Password, role)
	if err != nil {
		logger.ErrorLogger.Errorf("Login call to booking store failed: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"success": false, "message": "Login service unavailable. Please try again."})
		return
	}
	if rejection != "" {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": rejection})
		return
	}

	sess, err := uc.Store.Create(c.Request.Context(), user)
	if err != nil {
		logger.ErrorLogger.Errorf("Failed to create session for user %s: %v", user.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create session"})
		return
	}

	token, err := utils.GenerateSessionToken(sess.ID, user.ID, user.Role, uc.TokenTTL)
	if err != nil {
		logger.ErrorLogger.Errorf("Failed to sign session token: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create session token"})
		return
	}

	logger.InfoLogger.Infof("User %s logged in (role %s)", user.ID, user.Role)
	c.JSON(http.StatusOK, gin.H{"success": true, "user": user, "token": token})
}

// Signup forwards a registration to the booking store.
func (uc *UserController) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data: " + err.Error()})
		return
	}

	rejection, err := uc.API.Signup(c.Request.Context(), map[string]string{
		"name":        req.Name,
		"email":       req.Email,
		"phoneNumber": req.PhoneNumber,
		"password":    req.Password,
	})
	if err != nil {
		logger.ErrorLogger.Errorf("Signup call to booking store failed: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"success": false, "message": "Signup service unavailable. Please try again."})
		return
	}
	if rejection != "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": rejection})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Account created successfully!"})
}

// Me returns the current session's user record.
func (uc *UserController) Me(c *gin.Context) {
	sess, err := utils.GetSessionFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": sess.User, "selectedVenue": sess.SelectedVenue})
}

// Logout deletes the portal session; the bearer token becomes useless.
func (uc *UserController) Logout(c *gin.Context) {
	sess, err := utils.GetSessionFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	if err := uc.Store.Delete(c.Request.Context(), sess.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to end session"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Logged out"})
}
