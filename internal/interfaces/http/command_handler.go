package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/despensa-api/internal/application/dto"
	"github.com/jhoicas/despensa-api/internal/application/usecase"
	"github.com/jhoicas/despensa-api/internal/domain"
)

// CommandHandler maneja los comandos de mutación de colaboradores externos
// (venta POS simulada, voz parseada, escaneo decodificado).
type CommandHandler struct {
	uc *usecase.CommandUseCase
}

// NewCommandHandler construye el handler.
func NewCommandHandler(uc *usecase.CommandUseCase) *CommandHandler {
	return &CommandHandler{uc: uc}
}

// ApplySale godoc
// @Summary      Deducción de venta POS
// @Description  Coincide por nombre (plegado de mayúsculas y tildes) y deduce
//
//	el uso estimado; la cantidad se recorta a 0, nunca queda negativa.
//
// @Tags         commands
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SaleCommandRequest  true  "item_name, quantity"
// @Success      200  {object}  dto.ItemResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/commands/sale [post]
func (h *CommandHandler) ApplySale(c *fiber.Ctx) error {
	var in dto.SaleCommandRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	item, err := h.uc.ApplySaleDeduction(in)
	return respondCommand(c, item, err)
}

// ApplyVoice godoc
// @Summary      Comando de voz parseado (add | subtract)
// @Tags         commands
// @Accept       json
// @Produce      json
// @Param        body  body  dto.VoiceCommandRequest  true  "action, keyword, quantity"
// @Success      200  {object}  dto.ItemResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/commands/voice [post]
func (h *CommandHandler) ApplyVoice(c *fiber.Ctx) error {
	var in dto.VoiceCommandRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	item, err := h.uc.ApplyVoiceCommand(in)
	return respondCommand(c, item, err)
}

// ApplyScan godoc
// @Summary      Alta por escaneo decodificado
// @Description  Estima el peso por contenedor con la tabla de densidades y crea
//
//	el ítem como granel seco con cantidad 1.
//
// @Tags         commands
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ScanCommandRequest  true  "container_type, fill_percent, good_name, cost_per_unit"
// @Success      201  {object}  dto.ItemResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/commands/scan [post]
func (h *CommandHandler) ApplyScan(c *fiber.Ctx) error {
	var in dto.ScanCommandRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	item, err := h.uc.ApplyScan(in)
	if err != nil {
		return respondCommand(c, nil, err)
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

// respondCommand mapeo común de errores de comandos a códigos HTTP.
func respondCommand(c *fiber.Ctx, item *dto.ItemResponse, err error) error {
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		if errors.Is(err, domain.ErrNoMatch) || errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(item)
}
