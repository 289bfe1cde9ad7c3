package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/gameops/ticket-board/internal/api/metrics"
	"github.com/gameops/ticket-board/internal/core/ports"
)

// AuthHandler handles operator login.
type AuthHandler struct {
	authService   ports.AuthService
	statusService ports.StatusService
}

func NewAuthHandler(authService ports.AuthService, statusService ports.StatusService) *AuthHandler {
	return &AuthHandler{authService: authService, statusService: statusService}
}

// Login authenticates an operator and returns a JWT token. A successful
// login also sweeps expired exemption statuses, so every session starts
// from clean state.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, user, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("denied").Inc()
		return err
	}
	metrics.LoginsTotal.WithLabelValues("ok").Inc()

	// Session start: stale exemptions must not survive into this session.
	// Sweep failures don't block the login.
	_, _ = h.statusService.SweepExpired(c.Request().Context(), time.Now())

	return c.JSON(http.StatusOK, loginResponse{
		Token: token,
		User: userResponse{
			Username: user.Username,
			Role:     string(user.Role),
		},
	})
}
