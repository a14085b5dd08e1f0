package handler

import (
	"log/slog"
	"net/http"

	"gatekeeper/internal/delivery/api/middleware"
	"gatekeeper/internal/delivery/api/response"
	deliverycontext "gatekeeper/internal/delivery/context"
	domainerrors "gatekeeper/internal/domain/errors"
	"gatekeeper/internal/domain/service"
	"gatekeeper/internal/errors"
	"gatekeeper/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC  usecase.AuthUsecase
	Cookies *response.SessionCookies
	CSRF    service.CSRFGuard
	Clock   service.Clock
	Logger  *slog.Logger
}

// AuthHandler serves the session endpoints.
type AuthHandler struct {
	authUC  usecase.AuthUsecase
	cookies *response.SessionCookies
	csrf    service.CSRFGuard
	clock   service.Clock
	logger  *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUC:  params.AuthUC,
		cookies: params.Cookies,
		csrf:    params.CSRF,
		clock:   params.Clock,
		logger:  params.Logger,
	}
}

// CredentialsRequest is the body of signup and login.
type CredentialsRequest struct {
	Email    string `json:"email" validate:"required,email,max=254"`
	Password string `json:"password" validate:"required,max=128"`
}

// RefreshRequest optionally carries the refresh token for clients that cannot send the cookie.
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// CSRFToken returns the token attached to this response so SPAs can bootstrap.
func (h *AuthHandler) CSRFToken(c echo.Context) error {
	token := middleware.CSRFToken(c)
	if token == "" {
		var err error
		if token, err = h.csrf.Generate(); err != nil {
			return err
		}
		h.csrf.Attach(c.Response(), token)
	}

	return response.Success(c, http.StatusOK, map[string]string{"csrfToken": token})
}

// Signup creates a customer account and starts a session.
func (h *AuthHandler) Signup(c echo.Context) error {
	req, err := bindCredentials(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	result, err := h.authUC.Signup(c.Request().Context(), &usecase.SignupInput{
		Email:    req.Email,
		Password: req.Password,
		Meta:     middleware.RequestMeta(c),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	h.cookies.Set(c, result.Tokens, h.clock.Now())

	return response.Success(c, http.StatusCreated, toSessionView(result))
}

// Login verifies credentials and starts a session.
func (h *AuthHandler) Login(c echo.Context) error {
	req, err := bindCredentials(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	result, err := h.authUC.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
		Meta:     middleware.RequestMeta(c),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	h.cookies.Set(c, result.Tokens, h.clock.Now())

	return response.Success(c, http.StatusOK, toSessionView(result))
}

// Refresh rotates the session cookies. The presented refresh token is consumed.
func (h *AuthHandler) Refresh(c echo.Context) error {
	token := h.cookies.RefreshToken(c)
	if token == "" {
		var req RefreshRequest
		if err := c.Bind(&req); err != nil {
			return response.BindingError(c, "INVALID_INPUT", "Invalid refresh input")
		}
		token = req.RefreshToken
	}

	result, err := h.authUC.Refresh(c.Request().Context(), token, middleware.RequestMeta(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	h.cookies.Set(c, result.Tokens, h.clock.Now())

	return response.Success(c, http.StatusOK, toSessionView(result))
}

// Logout revokes the session tokens and clears the cookies.
func (h *AuthHandler) Logout(c echo.Context) error {
	claims := deliverycontext.GetClaims(c)
	if claims == nil {
		return response.HandleAppError(c, errors.WithStack(domainerrors.ErrInvalidToken))
	}

	err := h.authUC.Logout(c.Request().Context(), &usecase.LogoutInput{
		Access:       claims,
		RefreshToken: h.cookies.RefreshToken(c),
		Meta:         middleware.RequestMeta(c),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	h.cookies.Clear(c)

	return response.Success(c, http.StatusOK, map[string]bool{"loggedOut": true})
}

// Me returns the authenticated principal.
func (h *AuthHandler) Me(c echo.Context) error {
	claims := deliverycontext.GetClaims(c)
	if claims == nil {
		return response.HandleAppError(c, errors.WithStack(domainerrors.ErrInvalidToken))
	}

	principal, err := h.authUC.Me(c.Request().Context(), claims.SubjectID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toPrincipalView(principal))
}

func bindCredentials(c echo.Context) (*CredentialsRequest, error) {
	var req CredentialsRequest
	if err := c.Bind(&req); err != nil {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "malformed request body")
	}
	if err := c.Validate(&req); err != nil {
		return nil, err
	}

	return &req, nil
}
