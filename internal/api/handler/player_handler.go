package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gameops/ticket-board/internal/core/domain"
	"github.com/gameops/ticket-board/internal/core/ports"
)

// PlayerHandler handles player registry operations.
type PlayerHandler struct {
	roster ports.RosterService
}

func NewPlayerHandler(roster ports.RosterService) *PlayerHandler {
	return &PlayerHandler{roster: roster}
}

// List handles GET /v1/players, optionally filtered by ?supervisor=.
//
// @Summary      List players
// @Tags         players
// @Produce      json
// @Security     BearerAuth
// @Param        supervisor  query     string  false  "Filter by owning supervisor"
// @Success      200         {object}  playersResponse
// @Router       /v1/players [get]
func (h *PlayerHandler) List(c echo.Context) error {
	players, err := h.roster.ListPlayers(c.Request().Context(), c.QueryParam("supervisor"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPlayersResponse(players))
}

// Add handles POST /v1/players. The SteamID may be a SteamID64 or either
// STEAM_ text form; it is stored canonically.
//
// @Summary      Add a player
// @Tags         players
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      addPlayerRequest  true  "Player details"
// @Success      201   {object}  playerResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/players [post]
func (h *PlayerHandler) Add(c echo.Context) error {
	var req addPlayerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	player, err := h.roster.AddPlayer(c.Request().Context(), ports.AddPlayerInput{
		SteamID:    req.SteamID,
		Name:       req.Name,
		Discord:    req.Discord,
		Supervisor: req.Supervisor,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toPlayerResponse(*player))
}

// Remove handles DELETE /v1/players/:steam_id.
//
// @Summary      Remove a player
// @Tags         players
// @Produce      json
// @Security     BearerAuth
// @Param        steam_id  path  string  true  "SteamID in any accepted encoding"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /v1/players/{steam_id} [delete]
func (h *PlayerHandler) Remove(c echo.Context) error {
	if err := h.roster.RemovePlayer(c.Request().Context(), c.Param("steam_id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func toPlayerResponse(p domain.Player) playerResponse {
	return playerResponse{
		SteamID:    p.SteamID,
		Name:       p.Name,
		Discord:    p.Discord,
		Supervisor: p.Supervisor,
	}
}

func toPlayersResponse(players []domain.Player) playersResponse {
	out := make([]playerResponse, len(players))
	for i, p := range players {
		out[i] = toPlayerResponse(p)
	}
	return playersResponse{Players: out}
}
