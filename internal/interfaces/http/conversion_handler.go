package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/despensa-api/internal/application/dto"
	"github.com/jhoicas/despensa-api/internal/domain/conversion"
)

// ConversionHandler expone el convertidor peso/volumen de granel seco.
// Granos y contenedores desconocidos degradan a los valores por defecto de la
// tabla; nunca son error.
type ConversionHandler struct {
	converter *conversion.Converter
}

// NewConversionHandler construye el handler.
func NewConversionHandler(converter *conversion.Converter) *ConversionHandler {
	return &ConversionHandler{converter: converter}
}

// EstimateWeight godoc
// @Summary      Peso estimado de un contenedor parcialmente lleno
// @Tags         conversion
// @Produce      json
// @Param        container     query  string   true  "Etiqueta del contenedor"
// @Param        fill_percent  query  number   true  "Nivel de llenado 0-100"
// @Param        good          query  string   true  "Nombre del grano"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/conversion/estimate-weight [get]
func (h *ConversionHandler) EstimateWeight(c *fiber.Ctx) error {
	fill, err := strconv.ParseFloat(c.Query("fill_percent", "100"), 64)
	if err != nil || fill < 0 || fill > 100 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "fill_percent fuera de [0, 100]"})
	}
	container := c.Query("container")
	good := c.Query("good")
	weight := h.converter.EstimateWeight(container, fill, good)
	return c.JSON(fiber.Map{
		"container":      container,
		"capacity_cups":  h.converter.Capacity(container),
		"fill_percent":   fill,
		"good":           good,
		"density":        h.converter.Density(good),
		"estimated_lbs":  weight,
	})
}

// EstimateVolume godoc
// @Summary      Volumen estimado que ocupa un peso de grano
// @Tags         conversion
// @Produce      json
// @Param        weight  query  number  true  "Peso en lbs"
// @Param        good    query  string  true  "Nombre del grano"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/conversion/estimate-volume [get]
func (h *ConversionHandler) EstimateVolume(c *fiber.Ctx) error {
	weight, err := strconv.ParseFloat(c.Query("weight"), 64)
	if err != nil || weight < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "weight debe ser un número >= 0"})
	}
	good := c.Query("good")
	return c.JSON(fiber.Map{
		"good":           good,
		"weight_lbs":     weight,
		"density":        h.converter.Density(good),
		"estimated_cups": h.converter.EstimateVolume(weight, good),
	})
}

// RecommendContainer godoc
// @Summary      Contenedor más pequeño que alcanza para un peso de grano
// @Tags         conversion
// @Produce      json
// @Param        weight  query  number  true  "Peso en lbs"
// @Param        good    query  string  true  "Nombre del grano"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/conversion/recommend-container [get]
func (h *ConversionHandler) RecommendContainer(c *fiber.Ctx) error {
	weight, err := strconv.ParseFloat(c.Query("weight"), 64)
	if err != nil || weight < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "weight debe ser un número >= 0"})
	}
	good := c.Query("good")
	rec := h.converter.RecommendContainer(good, weight)
	return c.JSON(fiber.Map{
		"good":          good,
		"weight_lbs":    weight,
		"container":     rec.Label,
		"capacity_cups": rec.Cups,
	})
}
