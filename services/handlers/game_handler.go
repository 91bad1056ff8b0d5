package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/emberholm-legacy/ember_api/dto"
	"github.com/emberholm-legacy/ember_api/shared"
)

type GameHandler struct {
	gameSvc GameServiceInterface
}

func NewGameHandler(gameSvc GameServiceInterface) *GameHandler {
	return &GameHandler{
		gameSvc: gameSvc,
	}
}

// @Summary Get global stats
// @Description Get global progression stats and guild ranking
// @Tags stats
// @Accept json
// @Produce json
// @Success 200 {object} shared.Response{data=dto.StatsResponse}
// @Router /api/v1/stats [get]
func (h *GameHandler) GetStats(c *fiber.Ctx) error {
	stats, err := h.gameSvc.GetStats()
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", stats)
}

// @Summary Get guild roster
// @Description Get the full guild roster document
// @Tags guilds
// @Accept json
// @Produce json
// @Success 200 {object} shared.Response{data=[]model.Guild}
// @Router /api/v1/guilds [get]
func (h *GameHandler) GetGuilds(c *fiber.Ctx) error {
	guilds, err := h.gameSvc.GetGuilds()
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", guilds)
}

// @Summary Get mission rotation
// @Description Get the current mission catalog
// @Tags missions
// @Accept json
// @Produce json
// @Success 200 {object} shared.Response{data=[]model.Mission}
// @Router /api/v1/missions [get]
func (h *GameHandler) GetMissions(c *fiber.Ctx) error {
	return shared.ResponseJSON(c, fiber.StatusOK, "Success", h.gameSvc.Missions())
}

// @Summary Get player profile
// @Description Get a wallet's player profile, creating it on first reference, with passive gains applied
// @Tags player
// @Accept json
// @Produce json
// @Param wallet path string true "Wallet address"
// @Success 200 {object} shared.Response{data=model.Player}
// @Router /api/v1/player/{wallet} [get]
func (h *GameHandler) GetPlayer(c *fiber.Ctx) error {
	wallet := c.Params("wallet")

	player, err := h.gameSvc.GetPlayer(wallet)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", player)
}

// @Summary Spend XP for energy
// @Description Trade a hero's experience for an early energy recharge
// @Tags player
// @Accept json
// @Produce json
// @Param spendRequest body dto.SpendXPRequest true "Spend request"
// @Success 200 {object} shared.Response{data=dto.SpendXPResponse}
// @Router /api/v1/player/spend_xp_for_energy [post]
func (h *GameHandler) SpendXPForEnergy(c *fiber.Ctx) error {
	var req dto.SpendXPRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Invalid request")
	}

	if err := req.Validate(); err != nil {
		validationResp := dto.CreateValidationErrorResponse(err)
		return c.Status(fiber.StatusBadRequest).JSON(validationResp)
	}

	result, err := h.gameSvc.SpendXPForEnergy(req)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", result)
}

// @Summary Execute mission
// @Description Send a hero on a catalog mission
// @Tags missions
// @Accept json
// @Produce json
// @Param executeRequest body dto.ExecuteMissionRequest true "Execute request"
// @Success 200 {object} shared.Response{data=dto.ExecuteMissionResponse}
// @Router /api/v1/mission/execute [post]
func (h *GameHandler) ExecuteMission(c *fiber.Ctx) error {
	var req dto.ExecuteMissionRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Invalid request")
	}

	if err := req.Validate(); err != nil {
		validationResp := dto.CreateValidationErrorResponse(err)
		return c.Status(fiber.StatusBadRequest).JSON(validationResp)
	}

	result, err := h.gameSvc.ExecuteMission(req)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", result)
}
