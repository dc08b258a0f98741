package controller

import (
	"ctchen222/taskboard/internal/api/middleware"
	"ctchen222/taskboard/internal/api/models"
	"ctchen222/taskboard/internal/api/response"
	"ctchen222/taskboard/internal/api/service"
	"ctchen222/taskboard/internal/session"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// UserController handles registration, login and logout.
type UserController struct {
	userService  service.UserService
	sessions     *session.Manager
	sessionTTL   time.Duration
	secureCookie bool
}

// NewUserController creates a new UserController.
func NewUserController(userService service.UserService, sessions *session.Manager, sessionTTL time.Duration, secureCookie bool) *UserController {
	return &UserController{
		userService:  userService,
		sessions:     sessions,
		sessionTTL:   sessionTTL,
		secureCookie: secureCookie,
	}
}

// Register handles the user registration endpoint.
func (uc *UserController) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	err := uc.userService.Register(c.Request.Context(), &req)
	if errors.Is(err, service.ErrUsernameTaken) {
		response.Error(c, http.StatusConflict, "Username already exists")
		return
	}
	if err != nil {
		slog.Error("failed to register user", "username", req.Username, "error", err)
		response.Error(c, http.StatusInternalServerError, "registration failed")
		return
	}

	response.Success(c)
}

// Login verifies credentials, opens a session and hands the token to the
// client as a cookie. The body never carries the token.
func (uc *UserController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	user, err := uc.userService.Login(c.Request.Context(), &req)
	if errors.Is(err, service.ErrInvalidCredentials) {
		slog.Warn("failed login attempt", "username", req.Username)
		response.Error(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	if err != nil {
		slog.Error("login failed", "username", req.Username, "error", err)
		response.Error(c, http.StatusInternalServerError, "login failed")
		return
	}

	token, err := uc.sessions.Create(c.Request.Context(), user.ID)
	if err != nil {
		slog.Error("failed to create session", "user_id", user.ID, "error", err)
		response.Error(c, http.StatusInternalServerError, "login failed")
		return
	}

	middleware.SetSessionCookie(c, token, uc.sessionTTL, uc.secureCookie)
	response.Success(c)
}

// Logout destroys the session server-side and expires the cookie. Destroying
// an already-dead session still reports success.
func (uc *UserController) Logout(c *gin.Context) {
	token, _ := c.Cookie(middleware.SessionCookie)
	if err := uc.sessions.Destroy(c.Request.Context(), token); err != nil {
		slog.Error("failed to destroy session", "error", err)
		response.Error(c, http.StatusInternalServerError, "logout failed")
		return
	}

	middleware.ClearSessionCookie(c, uc.secureCookie)
	response.Success(c)
}
