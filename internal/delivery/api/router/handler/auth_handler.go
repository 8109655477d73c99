package handler

import (
	"log/slog"
	"net/http"

	"petwelfare/internal/delivery/api/response"
	"petwelfare/internal/domain/entity"
	"petwelfare/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Logger *slog.Logger
}

// AuthHandler serves sign-up, sign-in and password recovery.
type AuthHandler struct {
	authUC usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler.
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUC: params.AuthUC,
		logger: params.Logger,
	}
}

// RegisterRequest is the body of POST /api/auth/register.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Phone    string `json:"phone" validate:"omitempty,max=20"`
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// GoogleLoginRequest carries a Google ID token.
type GoogleLoginRequest struct {
	IDToken string `json:"idToken" validate:"required"`
}

// ForgotPasswordRequest starts the password recovery flow.
type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// ResetPasswordRequest completes the password recovery flow.
type ResetPasswordRequest struct {
	Email           string `json:"email" validate:"required,email"`
	OTP             string `json:"otp" validate:"required,otp"`
	Password        string `json:"password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" validate:"required"`
}

// ForcePasswordRequest replaces a password the user must change.
type ForcePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" validate:"required"`
}

// AuthResponse is returned by every sign-in endpoint.
type AuthResponse struct {
	Token           string       `json:"token"`
	User            *entity.User `json:"user"`
	NeedsStoreSetup bool         `json:"needsStoreSetup"`
}

func toAuthResponse(out *usecase.AuthOutput) *AuthResponse {
	return &AuthResponse{
		Token:           out.Token,
		User:            out.User,
		NeedsStoreSetup: out.NeedsStoreSetup,
	}
}

// Register handles self sign-up of public users.
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := bindAndValidate(c, &req); err != nil {
		return respond(err)
	}

	out, err := h.authUC.Register(c.Request().Context(), usecase.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Phone:    req.Phone,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessMessage(c, http.StatusCreated, "Registration successful", toAuthResponse(out))
}

// Login handles email and password sign-in.
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return respond(err)
	}

	out, err := h.authUC.Login(c.Request().Context(), usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessMessage(c, http.StatusOK, "Login successful", toAuthResponse(out))
}

// GoogleLogin signs in or creates an account from a Google ID token.
func (h *AuthHandler) GoogleLogin(c echo.Context) error {
	var req GoogleLoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return respond(err)
	}

	out, err := h.authUC.LoginWithGoogle(c.Request().Context(), req.IDToken)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessMessage(c, http.StatusOK, "Login successful", toAuthResponse(out))
}

// ForgotPassword issues a reset code. The response does not reveal whether the email exists.
func (h *AuthHandler) ForgotPassword(c echo.Context) error {
	var req ForgotPasswordRequest
	if err := bindAndValidate(c, &req); err != nil {
		return respond(err)
	}

	if err := h.authUC.ForgotPassword(c.Request().Context(), req.Email); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessMessage(c, http.StatusOK, "If the email is registered, a reset code has been sent", nil)
}

// ResetPassword sets a new password using a reset code.
func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var req ResetPasswordRequest
	if err := bindAndValidate(c, &req); err != nil {
		return respond(err)
	}

	err := h.authUC.ResetPassword(c.Request().Context(), usecase.ResetPasswordInput{
		Email:           req.Email,
		OTP:             req.OTP,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessMessage(c, http.StatusOK, "Password has been reset", nil)
}

// ForcePassword replaces the password of a user flagged with mustChangePassword.
func (h *AuthHandler) ForcePassword(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return respond(err)
	}

	var req ForcePasswordRequest
	if err := bindAndValidate(c, &req); err != nil {
		return respond(err)
	}

	err = h.authUC.ForcePassword(c.Request().Context(), actor.UserID, usecase.ForcePasswordInput{
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessMessage(c, http.StatusOK, "Password updated", nil)
}

// Me returns the authenticated user.
func (h *AuthHandler) Me(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return respond(err)
	}

	user, err := h.authUC.Me(c.Request().Context(), actor.UserID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, user)
}

// Logout acknowledges a sign-out. Tokens are stateless and simply discarded by the client.
func (h *AuthHandler) Logout(c echo.Context) error {
	return response.SuccessMessage(c, http.StatusOK, "Logged out", nil)
}
