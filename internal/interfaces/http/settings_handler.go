package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/comandaki/comanda-api/internal/application/dto"
	"github.com/comandaki/comanda-api/internal/application/usecase"
	"github.com/comandaki/comanda-api/internal/domain"
)

// SettingsHandler trata as configurações do deployment (teto de desconto).
type SettingsHandler struct {
	uc *usecase.SettingsUseCase
}

// NewSettingsHandler constrói o handler.
func NewSettingsHandler(uc *usecase.SettingsUseCase) *SettingsHandler {
	return &SettingsHandler{uc: uc}
}

// GetDiscountLimit godoc
// @Summary      Obter teto do desconto de caixa
// @Tags         settings
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DiscountLimitResponse
// @Router       /api/settings/discount-limit [get]
func (h *SettingsHandler) GetDiscountLimit(c *fiber.Ctx) error {
	out, err := h.uc.GetDiscountLimit()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// SetDiscountLimit godoc
// @Summary      Configurar teto do desconto de caixa
// @Tags         settings
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.DiscountLimitRequest  true  "Tipo e valor do teto"
// @Success      200   {object}  dto.DiscountLimitResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/settings/discount-limit [put]
func (h *SettingsHandler) SetDiscountLimit(c *fiber.Ctx) error {
	var in dto.DiscountLimitRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.SetDiscountLimit(in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
