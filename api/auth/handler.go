package auth

import (
	"errors"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/genvault/genvault/api/models"
	"github.com/genvault/genvault/database"
)

// csrfCookieName is the cookie carrying the anti-CSRF token issued on login.
const csrfCookieName = "csrf_access_token"

// Register creates a new user account.
func (p *Provider) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Email and password required"})
		return
	}

	ctx := c.Request.Context()

	_, err := p.db.GetUserByEmail(ctx, req.Email)
	if err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "A user with that email already exists."})
		return
	}
	if !errors.Is(err, database.ErrNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Error("failed to hash password", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
		return
	}

	if _, err := p.db.CreateUser(ctx, req.Email, string(hash)); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "There was an error creating your account. Please try again."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Successfully registered. You can now log in."})
}

// Login verifies the credentials, establishes a session and issues a signed
// bearer token. A missing user and a wrong password produce identical
// responses so the two cases can't be told apart.
func (p *Provider) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Missing email or password"})
		return
	}

	p.setCSRFCookie(c)

	user, err := p.db.GetUserByEmail(c.Request.Context(), req.Email)
	if err != nil {
		if !errors.Is(err, database.ErrNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
			return
		}
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid credentials"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid credentials"})
		return
	}

	session := sessions.Default(c)
	session.Set("user_id", user.ID)
	if err := session.Save(); err != nil {
		log.Error("failed to save session", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to save session"})
		return
	}

	token, err := GenerateToken(user.ID, p.secretKey, TokenValidity)
	if err != nil {
		log.Error("failed to generate auth token", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to generate auth token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Logged in successfully", "auth_token": token})
}

// Logout terminates the session.
func (p *Provider) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	if err := session.Save(); err != nil {
		log.Error("failed to clear session", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// setCSRFCookie issues a fresh anti-CSRF token. It is set on every login
// response, successful or not.
func (p *Provider) setCSRFCookie(c *gin.Context) {
	c.SetCookie(csrfCookieName, uuid.New().String(), p.sessionMaxAge, "/", "", false, false)
}
