package handlers

import (
	"errors"
	"fmt"
	"log"

	"renewrubber/internal/models"
	"renewrubber/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// AuthHandler handles HTTP requests for the simulated identity provider.
type AuthHandler struct {
	authService *services.AuthService
	validate    *validator.Validate
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		validate:    validator.New(),
	}
}

// RegisterRoutes registers the public auth routes with the Fiber app.
func (h *AuthHandler) RegisterRoutes(router fiber.Router) {
	authRoutes := router.Group("/auth")
	authRoutes.Post("/signin", h.HandleSignIn)
	authRoutes.Post("/signup", h.HandleSignUp)
	authRoutes.Post("/signout", h.HandleSignOut)
	authRoutes.Post("/reset-password", h.HandleResetPassword)
}

// RegisterProtectedRoutes registers the session-gated profile routes.
func (h *AuthHandler) RegisterProtectedRoutes(router fiber.Router) {
	router.Patch("/profile", h.HandleUpdateProfile)
	router.Post("/profile/password", h.HandleChangePassword)
}

// SignInRequest is the request body for sign-in.
type SignInRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// HandleSignIn signs a user in and issues a session token.
func (h *AuthHandler) HandleSignIn(c *fiber.Ctx) error {
	var req SignInRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	user, token, err := h.authService.SignIn(req.Email, req.Password)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Sign in failed",
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"message": "Signed in successfully",
		"user":    user,
		"token":   token,
	})
}

// SignUpRequest is the request body for sign-up.
type SignUpRequest struct {
	Email        string `json:"email" validate:"required,email"`
	Password     string `json:"password" validate:"required"`
	FullName     string `json:"fullName" validate:"required"`
	PreferredGym string `json:"preferredGym"`
}

// HandleSignUp registers a new user and issues a session token.
func (h *AuthHandler) HandleSignUp(c *fiber.Ctx) error {
	var req SignUpRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			errorMessages := make(map[string]string)
			for _, e := range validationErrors {
				errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
			}
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Validation failed",
				"errors":  errorMessages,
			})
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"error":   err.Error(),
		})
	}

	user, token, err := h.authService.SignUp(req.Email, req.Password, services.SignUpMetadata{
		FullName:     req.FullName,
		PreferredGym: req.PreferredGym,
	})
	if err != nil {
		log.Printf("Error signing up %s: %v", req.Email, err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Sign up failed",
			"error":   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Account created successfully",
		"user":    user,
		"token":   token,
	})
}

// HandleSignOut clears the current session.
func (h *AuthHandler) HandleSignOut(c *fiber.Ctx) error {
	if err := h.authService.SignOut(); err != nil {
		log.Printf("Error signing out: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Sign out failed",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"message": "Signed out",
	})
}

// ResetPasswordRequest is the request body for the simulated reset flow.
type ResetPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// HandleResetPassword triggers the simulated password reset email.
func (h *AuthHandler) HandleResetPassword(c *fiber.Ctx) error {
	var req ResetPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "A valid email is required",
		})
	}

	if err := h.authService.ResetPassword(req.Email); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not send reset email",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"message": "If that address exists, a reset email is on its way",
	})
}

// HandleUpdateProfile merges the given fields into the current user.
func (h *AuthHandler) HandleUpdateProfile(c *fiber.Ctx) error {
	var update models.ProfileUpdate
	if err := c.BodyParser(&update); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	user, err := h.authService.UpdateProfile(update)
	if err != nil {
		if errors.Is(err, services.ErrNotAuthenticated) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Not authenticated",
			})
		}
		log.Printf("Error updating profile: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update profile",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"message": "Profile updated",
		"user":    user,
	})
}

// ChangePasswordRequest is the request body for a password change.
type ChangePasswordRequest struct {
	NewPassword string `json:"newPassword" validate:"required"`
}

// HandleChangePassword updates the stored password hash.
func (h *AuthHandler) HandleChangePassword(c *fiber.Ctx) error {
	var req ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.authService.ChangePassword(req.NewPassword); err != nil {
		switch {
		case errors.Is(err, services.ErrNotAuthenticated):
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Not authenticated",
			})
		case errors.Is(err, services.ErrPasswordTooShort):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Password change failed",
				"error":   err.Error(),
			})
		default:
			log.Printf("Error changing password: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Could not change password",
				"error":   err.Error(),
			})
		}
	}
	return c.JSON(fiber.Map{
		"message": "Password updated",
	})
}
