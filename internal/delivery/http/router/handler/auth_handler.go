// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"mealplanner/internal/delivery/http/middleware"
	"mealplanner/internal/delivery/http/response"
	"mealplanner/internal/domain/entity"
	"mealplanner/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for authentication handlers.
type AuthHandler struct {
	uc     usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:     uc,
		logger: logger,
	}
}

// --- Request DTOs ---

type registerRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Username string `json:"username" validate:"required,min=3,max=100,username_chars"`
	Password string `json:"password" validate:"required,min=8,password_strength"`
	FullName string `json:"full_name" validate:"required,min=1,max=255"`
	Sex      string `json:"sex" validate:"required,oneof=MALE FEMALE OTHER"`

	PhoneNumber       string `json:"phone_number" validate:"omitempty,max=50"`
	AddressLine1      string `json:"address_line_1" validate:"required,min=1,max=255"`
	AddressLine2      string `json:"address_line_2" validate:"omitempty,max=255"`
	City              string `json:"city" validate:"required,min=1,max=100"`
	StateProvinceCode string `json:"state_province_code" validate:"required,min=1,max=10"`
	CountryCode       string `json:"country_code" validate:"required,len=2,alpha"`
	PostalCode        string `json:"postal_code" validate:"required,min=1,max=20"`
}

type loginRequest struct {
	Login    string `json:"login" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// --- Response DTOs ---

// userResponse is the outward user shape. It never carries the password or
// its hash.
type userResponse struct {
	ID                uint      `json:"id"`
	Email             string    `json:"email"`
	Username          string    `json:"username"`
	FullName          string    `json:"full_name"`
	Sex               string    `json:"sex"`
	PhoneNumber       string    `json:"phone_number,omitempty"`
	AddressLine1      string    `json:"address_line_1"`
	AddressLine2      string    `json:"address_line_2,omitempty"`
	City              string    `json:"city"`
	StateProvinceCode string    `json:"state_province_code"`
	CountryCode       string    `json:"country_code"`
	PostalCode        string    `json:"postal_code"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

type tokenResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	ExpiresIn   int          `json:"expires_in"`
	User        userResponse `json:"user"`
}

func toUserResponse(user *entity.User) userResponse {
	return userResponse{
		ID:                user.ID,
		Email:             user.Email,
		Username:          user.Username,
		FullName:          user.FullName,
		Sex:               user.Sex.String(),
		PhoneNumber:       user.PhoneNumber,
		AddressLine1:      user.AddressLine1,
		AddressLine2:      user.AddressLine2,
		City:              user.City,
		StateProvinceCode: user.StateProvinceCode,
		CountryCode:       user.CountryCode,
		PostalCode:        user.PostalCode,
		CreatedAt:         user.CreatedAt,
		UpdatedAt:         user.UpdatedAt,
	}
}

// Register handles the user registration request.
func (h *AuthHandler) Register(c echo.Context) error {
	var input registerRequest
	if err := c.Bind(&input); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	// The oneof rule already constrained the value.
	sex, _ := entity.ParseSex(input.Sex)

	output, err := h.uc.Register(c.Request().Context(), usecase.RegisterInput{
		Email:             input.Email,
		Username:          input.Username,
		Password:          input.Password,
		FullName:          input.FullName,
		Sex:               sex,
		PhoneNumber:       input.PhoneNumber,
		AddressLine1:      input.AddressLine1,
		AddressLine2:      input.AddressLine2,
		City:              input.City,
		StateProvinceCode: input.StateProvinceCode,
		CountryCode:       input.CountryCode,
		PostalCode:        input.PostalCode,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusCreated, tokenResponse{
		AccessToken: output.AccessToken,
		TokenType:   "bearer",
		ExpiresIn:   output.ExpiresIn,
		User:        toUserResponse(output.User),
	})
}

// Login handles the user login request.
func (h *AuthHandler) Login(c echo.Context) error {
	var input loginRequest
	if err := c.Bind(&input); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	output, err := h.uc.Authenticate(c.Request().Context(), usecase.LoginInput{
		Login:    input.Login,
		Password: input.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, tokenResponse{
		AccessToken: output.AccessToken,
		TokenType:   "bearer",
		ExpiresIn:   output.ExpiresIn,
		User:        toUserResponse(output.User),
	})
}

// GetProfile handles the request to get the current user's profile.
func (h *AuthHandler) GetProfile(c echo.Context) error {
	userID, ok := c.Get(middleware.ContextKeyUserID).(uint)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Invalid user ID in token")
	}

	user, err := h.uc.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, toUserResponse(user))
}

// Logout handles the user logout request. Tokens are stateless; the client
// discards the token after the acknowledgment.
func (h *AuthHandler) Logout(c echo.Context) error {
	userID, ok := c.Get(middleware.ContextKeyUserID).(uint)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Invalid user ID in token")
	}

	if err := h.uc.Logout(c.Request().Context(), userID); err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Logout successful"})
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "healthy"})
}
