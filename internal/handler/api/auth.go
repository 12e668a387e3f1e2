package api

import (
	"errors"
	"net/http"

	reqdto "github.com/dogecoinfoundation/doge-prize/internal/handler/dto/request"
	resdto "github.com/dogecoinfoundation/doge-prize/internal/handler/dto/response"
	"github.com/dogecoinfoundation/doge-prize/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUseCase commands.AuthCommands
}

func NewAuthHandler(authUseCase commands.AuthCommands) *AuthHandler {
	return &AuthHandler{authUseCase: authUseCase}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Password is required",
		})
		return
	}

	token, err := h.authUseCase.Login(c.Request.Context(), req.Password)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid password",
			})
		case errors.Is(err, commands.ErrPasswordNotSet):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Admin password has not been set",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.LoginResponse{Token: token})
}

// SetPassword performs first-time admin setup. It is public by necessity
// and refuses to run twice.
func (h *AuthHandler) SetPassword(c *gin.Context) {
	var req reqdto.SetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Password is required",
		})
		return
	}

	if err := h.authUseCase.SetPassword(c.Request.Context(), req.Password); err != nil {
		switch {
		case errors.Is(err, commands.ErrWeakPassword):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Password must be at least 8 characters",
			})
		case errors.Is(err, commands.ErrPasswordAlreadySet):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Admin password has already been set",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.MessageResponse{Message: "Password set successfully"})
}

func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var req reqdto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Current and new passwords are required",
		})
		return
	}

	if err := h.authUseCase.ChangePassword(c.Request.Context(), req.CurrentPassword, req.NewPassword); err != nil {
		switch {
		case errors.Is(err, commands.ErrWeakPassword):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Password must be at least 8 characters",
			})
		case errors.Is(err, commands.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid password",
			})
		case errors.Is(err, commands.ErrPasswordNotSet):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Admin password has not been set",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.MessageResponse{Message: "Password changed successfully"})
}

// CheckPassword lets the admin UI decide between the setup and login flows.
func (h *AuthHandler) CheckPassword(c *gin.Context) {
	set, err := h.authUseCase.PasswordSet(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resdto.PasswordStatusResponse{PasswordSet: set})
}
