package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gameops/ticket-board/internal/core/domain"
	"github.com/gameops/ticket-board/internal/core/ports"
)

// StatusHandler handles vacation/freeze exemption operations.
type StatusHandler struct {
	statuses ports.StatusService
}

func NewStatusHandler(statuses ports.StatusService) *StatusHandler {
	return &StatusHandler{statuses: statuses}
}

// List handles GET /v1/statuses.
//
// @Summary      List active exemptions
// @Tags         statuses
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  statusesResponse
// @Router       /v1/statuses [get]
func (h *StatusHandler) List(c echo.Context) error {
	statuses, err := h.statuses.ListStatuses(c.Request().Context())
	if err != nil {
		return err
	}
	out := make([]statusResponse, len(statuses))
	for i, s := range statuses {
		out[i] = toStatusResponse(s)
	}
	return c.JSON(http.StatusOK, statusesResponse{Statuses: out})
}

// Set handles PUT /v1/statuses/:steam_id. Setting a status for a player
// who already has one replaces it.
//
// @Summary      Set a player's exemption
// @Tags         statuses
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        steam_id  path      string            true  "SteamID in any accepted encoding"
// @Param        body      body      setStatusRequest  true  "Exemption details"
// @Success      200       {object}  statusResponse
// @Failure      400       {object}  errorResponse
// @Failure      404       {object}  errorResponse
// @Failure      422       {object}  errorResponse
// @Router       /v1/statuses/{steam_id} [put]
func (h *StatusHandler) Set(c echo.Context) error {
	var req setStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	status, err := h.statuses.SetStatus(c.Request().Context(), ports.SetStatusInput{
		SteamID:   c.Param("steam_id"),
		Kind:      domain.StatusKind(req.Kind),
		EndDate:   req.EndDate,
		ReturnDay: req.ReturnDay,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toStatusResponse(*status))
}

// Clear handles DELETE /v1/statuses/:steam_id. Clearing an absent status
// still returns 204.
//
// @Summary      Clear a player's exemption
// @Tags         statuses
// @Produce      json
// @Security     BearerAuth
// @Param        steam_id  path  string  true  "SteamID in any accepted encoding"
// @Success      204
// @Failure      422  {object}  errorResponse
// @Router       /v1/statuses/{steam_id} [delete]
func (h *StatusHandler) Clear(c echo.Context) error {
	if err := h.statuses.ClearStatus(c.Request().Context(), c.Param("steam_id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func toStatusResponse(s domain.Status) statusResponse {
	return statusResponse{
		SteamID:   s.SteamID,
		Kind:      string(s.Kind),
		EndDate:   s.EndDate,
		ReturnDay: s.ReturnDay,
	}
}
