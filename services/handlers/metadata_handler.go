package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/emberholm-legacy/ember_api/shared"
)

type MetadataHandler struct {
	metadataSvc MetadataServiceInterface
}

func NewMetadataHandler(metadataSvc MetadataServiceInterface) *MetadataHandler {
	return &MetadataHandler{
		metadataSvc: metadataSvc,
	}
}

// @Summary Get token metadata
// @Description Get marketplace metadata for a token: static profile merged with live progression state
// @Tags metadata
// @Accept json
// @Produce json
// @Param tokenId path string true "Token ID"
// @Success 200 {object} dto.TokenMetadataResponse
// @Router /api/v1/metadata/{tokenId} [get]
func (h *MetadataHandler) GetTokenMetadata(c *fiber.Ctx) error {
	tokenID := c.Params("tokenId")
	if tokenID == "" {
		return shared.NewBadRequestError(nil, "Token ID is required")
	}

	meta, err := h.metadataSvc.GetTokenMetadata(tokenID)
	if err != nil {
		return err
	}

	// Marketplaces expect the bare object, not the response envelope.
	return c.Status(fiber.StatusOK).JSON(meta)
}
