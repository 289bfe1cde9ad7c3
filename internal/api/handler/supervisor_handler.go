package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gameops/ticket-board/internal/core/ports"
)

// SupervisorHandler handles supervisor account management.
type SupervisorHandler struct {
	authService ports.AuthService
}

func NewSupervisorHandler(authService ports.AuthService) *SupervisorHandler {
	return &SupervisorHandler{authService: authService}
}

// List handles GET /v1/supervisors.
//
// @Summary      List supervisors
// @Tags         supervisors
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  supervisorsResponse
// @Router       /v1/supervisors [get]
func (h *SupervisorHandler) List(c echo.Context) error {
	names, err := h.authService.ListSupervisors(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, supervisorsResponse{Supervisors: names})
}

// Register handles POST /v1/supervisors. Creates the supervisor account
// and the list entry in one operation. Admin only.
//
// @Summary      Register a supervisor
// @Tags         supervisors
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      registerSupervisorRequest  true  "Supervisor credentials"
// @Success      201   {object}  userResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /v1/supervisors [post]
func (h *SupervisorHandler) Register(c echo.Context) error {
	var req registerSupervisorRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.authService.RegisterSupervisor(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, userResponse{
		Username: user.Username,
		Role:     string(user.Role),
	})
}

// Remove handles DELETE /v1/supervisors/:username. Admin only.
//
// @Summary      Remove a supervisor
// @Tags         supervisors
// @Produce      json
// @Security     BearerAuth
// @Param        username  path  string  true  "Supervisor username"
// @Success      204
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/supervisors/{username} [delete]
func (h *SupervisorHandler) Remove(c echo.Context) error {
	if err := h.authService.RemoveSupervisor(c.Request().Context(), c.Param("username")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
