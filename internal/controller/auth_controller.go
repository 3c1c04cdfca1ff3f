package controller

import (
	"errors"
	"net/http"

	"codefolio/internal/models"
	"codefolio/internal/service"
	"codefolio/internal/session"

	"github.com/gin-gonic/gin"
)

// AuthController handles registration, login and logout.
type AuthController struct {
	users    service.UserService
	sessions *session.Manager
}

// NewAuthController creates a new AuthController.
func NewAuthController(users service.UserService, sessions *session.Manager) *AuthController {
	return &AuthController{users: users, sessions: sessions}
}

// ShowRegister renders the registration form.
func (ac *AuthController) ShowRegister(c *gin.Context) {
	render(c, http.StatusOK, "register.html", gin.H{"Title": "Register"})
}

// Register handles the registration submission.
func (ac *AuthController) Register(c *gin.Context) {
	var form models.RegisterForm
	if err := c.ShouldBind(&form); err != nil {
		SetFlash(c, "warning", "Please provide a valid username and password.")
		redirect(c, "/register")
		return
	}

	_, err := ac.users.Register(c.Request.Context(), form.Username, form.Password)
	if err != nil {
		if errors.Is(err, service.ErrDuplicateUsername) {
			SetFlash(c, "warning", "Username already exists.")
			redirect(c, "/register")
			return
		}
		serverError(c, err)
		return
	}

	SetFlash(c, "success", "Account created! Please log in.")
	redirect(c, "/login")
}

// ShowLogin renders the login form.
func (ac *AuthController) ShowLogin(c *gin.Context) {
	render(c, http.StatusOK, "login.html", gin.H{"Title": "Login"})
}

// Login handles the login submission. Any failure re-renders the form with
// the same generic notice.
func (ac *AuthController) Login(c *gin.Context) {
	var form models.LoginForm
	if err := c.ShouldBind(&form); err != nil {
		ac.loginFailed(c, form.Username)
		return
	}

	user, err := ac.users.Login(c.Request.Context(), form.Username, form.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			ac.loginFailed(c, form.Username)
			return
		}
		serverError(c, err)
		return
	}

	token, err := ac.sessions.Begin(c.Request.Context(), user.ID, user.Username)
	if err != nil {
		serverError(c, err)
		return
	}
	c.SetCookie(session.CookieName, token, int(ac.sessions.TTL().Seconds()), "/", "", false, true)

	SetFlash(c, "success", "Logged in successfully!")
	redirect(c, "/dashboard")
}

func (ac *AuthController) loginFailed(c *gin.Context, username string) {
	render(c, http.StatusOK, "login.html", gin.H{
		"Title":    "Login",
		"Flash":    &Flash{Category: "danger", Message: "Invalid username or password."},
		"FormData": gin.H{"username": username},
	})
}

// Logout ends the session unconditionally and clears the cookie.
func (ac *AuthController) Logout(c *gin.Context) {
	if token, err := c.Cookie(session.CookieName); err == nil && token != "" {
		if err := ac.sessions.End(c.Request.Context(), token); err != nil {
			serverError(c, err)
			return
		}
	}
	c.SetCookie(session.CookieName, "", -1, "/", "", false, true)

	SetFlash(c, "info", "You have been logged out.")
	redirect(c, "/")
}
