package handlers

import (
	"crypto/subtle"
	"time"

	"github.com/gofiber/fiber/v2"

	"mobilemall/api-gateway/internal/auth"
	"mobilemall/api-gateway/middleware"
	"mobilemall/api-gateway/utils"
)

// LoginRequest carries the admin credentials.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Login verifies the admin credentials and issues a session token, set
// as an httponly cookie and returned in the body for bearer clients.
func (h *ApplicationHandler) Login(c *fiber.Ctx) error {
	req := new(LoginRequest)
	if err := c.BodyParser(req); err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, "Cannot parse login JSON: "+err.Error())
	}
	if err := h.Validate.Struct(req); err != nil {
		return utils.RespondWithValidationError(c, err)
	}

	if !h.checkCredentials(req.Email, req.Password) {
		return utils.RespondWithError(c, fiber.StatusUnauthorized, "Invalid email or password")
	}

	ttl := h.Config.AdminTokenTTL
	token, err := auth.GenerateAdminToken(h.Config.JWTSecret, req.Email, ttl)
	if err != nil {
		h.Logger.WithError(err).Error("Error generating admin token")
		return utils.RespondWithError(c, fiber.StatusInternalServerError, "Could not create session")
	}

	expires := time.Now().Add(ttl)
	c.Cookie(&fiber.Cookie{
		Name:     middleware.AdminTokenCookie,
		Value:    token,
		Expires:  expires,
		HTTPOnly: true,
		SameSite: "Lax",
		Path:     "/",
	})
	return utils.RespondWithJSON(c, fiber.StatusOK, fiber.Map{
		"token":      token,
		"expires_at": expires.UTC(),
	})
}

// Logout clears the session cookie. Tokens already handed out simply
// expire.
func (h *ApplicationHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.AdminTokenCookie,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Path:     "/",
	})
	return utils.RespondWithJSON(c, fiber.StatusOK, fiber.Map{"logged_out": true})
}

func (h *ApplicationHandler) checkCredentials(email, password string) bool {
	emailOK := subtle.ConstantTimeCompare([]byte(email), []byte(h.Config.AdminEmail)) == 1

	var passwordOK bool
	if h.Config.AdminPasswordHash != "" {
		ok, err := auth.CheckPassword(password, h.Config.AdminPasswordHash)
		if err != nil {
			h.Logger.WithError(err).Error("Error verifying admin password hash")
		}
		passwordOK = ok && err == nil
	} else {
		// Plain comparison is the development fallback only.
		passwordOK = subtle.ConstantTimeCompare([]byte(password), []byte(h.Config.AdminPassword)) == 1
	}
	return emailOK && passwordOK
}
