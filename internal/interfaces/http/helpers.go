package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Granja-api/internal/application/dto"
	"github.com/jhoicas/Granja-api/internal/domain"
)

// formatoFecha formato de fechas en la API (solo día, sin hora).
const formatoFecha = "2006-01-02"

// parseFecha parsea una fecha "YYYY-MM-DD" en UTC.
func parseFecha(s string) (time.Time, error) {
	return time.ParseInLocation(formatoFecha, s, time.UTC)
}

// parseCorte lee el query param "corte" (fecha de corte de los reportes).
// Sin el parámetro se usa la fecha de hoy: el reloj vive en el borde HTTP,
// nunca dentro del motor de cálculo.
func parseCorte(c *fiber.Ctx) (time.Time, error) {
	s := c.Query("corte")
	if s == "" {
		now := time.Now().UTC()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	return parseFecha(s)
}

// respondDomainError traduce los errores sentinela del dominio a códigos HTTP.
func respondDomainError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidState):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INVALID_STATE", Message: err.Error()})
	case errors.Is(err, domain.ErrCorralOccupied):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CORRAL_OCUPADO", Message: err.Error()})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: err.Error()})
	case errors.Is(err, domain.ErrDataIntegrity):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "DATA_INTEGRITY", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
