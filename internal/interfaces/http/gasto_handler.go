package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Granja-api/internal/application/dto"
	"github.com/jhoicas/Granja-api/internal/application/usecase"
)

// GastoHandler maneja las peticiones HTTP de los dos ledgers de gastos:
// directos (por lote) y mensuales compartidos.
type GastoHandler struct {
	uc *usecase.GastoUseCase
}

// NewGastoHandler construye el handler.
func NewGastoHandler(uc *usecase.GastoUseCase) *GastoHandler {
	return &GastoHandler{uc: uc}
}

// CreateDirecto godoc
// @Summary      Registrar gasto directo de un lote
// @Tags         gastos
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del lote"
// @Param        body  body  dto.RegistrarGastoDirectoRequest  true  "fecha, concepto, tipo, monto"
// @Success      201  {object}  dto.GastoDirectoResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/lotes/{id}/gastos [post]
func (h *GastoHandler) CreateDirecto(c *fiber.Ctx) error {
	var in dto.RegistrarGastoDirectoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	fecha, err := parseFecha(in.Fecha)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "fecha inválida (YYYY-MM-DD)"})
	}
	gasto, err := h.uc.RegistrarGastoDirecto(c.Context(), usecase.RegistrarGastoDirectoInput{
		LoteID:        c.Params("id"),
		Fecha:         fecha,
		Concepto:      in.Concepto,
		Tipo:          in.Tipo,
		Monto:         in.Monto,
		Observaciones: in.Observaciones,
	})
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToGastoDirectoResponse(gasto))
}

// ListDirectos godoc
// @Summary      Listar gastos directos de un lote
// @Tags         gastos
// @Produce      json
// @Param        id  path  string  true  "ID del lote"
// @Success      200  {array}  dto.GastoDirectoResponse
// @Router       /api/lotes/{id}/gastos [get]
func (h *GastoHandler) ListDirectos(c *fiber.Ctx) error {
	gastos, err := h.uc.ListGastosDirectos(c.Context(), c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	items := make([]dto.GastoDirectoResponse, 0, len(gastos))
	for i := range gastos {
		items = append(items, dto.ToGastoDirectoResponse(&gastos[i]))
	}
	return c.JSON(items)
}

// DeleteDirecto godoc
// @Summary      Eliminar un gasto directo
// @Description  Solo mientras el lote del gasto siga activo.
// @Tags         gastos
// @Produce      json
// @Param        id  path  string  true  "ID del gasto"
// @Success      204  "sin contenido"
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/gastos/directos/{id} [delete]
func (h *GastoHandler) DeleteDirecto(c *fiber.Ctx) error {
	if err := h.uc.EliminarGastoDirecto(c.Context(), c.Params("id")); err != nil {
		return respondDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// CreateMensual godoc
// @Summary      Registrar gasto mensual compartido
// @Tags         gastos
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegistrarGastoMensualRequest  true  "mes, anio, concepto, tipo, monto"
// @Success      201  {object}  dto.GastoMensualResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/gastos/mensuales [post]
func (h *GastoHandler) CreateMensual(c *fiber.Ctx) error {
	var in dto.RegistrarGastoMensualRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	gasto, err := h.uc.RegistrarGastoMensual(c.Context(), usecase.RegistrarGastoMensualInput{
		Mes:           in.Mes,
		Anio:          in.Anio,
		Concepto:      in.Concepto,
		Tipo:          in.Tipo,
		Monto:         in.Monto,
		Observaciones: in.Observaciones,
	})
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToGastoMensualResponse(gasto))
}

// ListMensuales godoc
// @Summary      Listar gastos compartidos de un mes
// @Tags         gastos
// @Produce      json
// @Param        anio  query  int  true  "Año"
// @Param        mes   query  int  true  "Mes (1-12)"
// @Success      200  {array}  dto.GastoMensualResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/gastos/mensuales [get]
func (h *GastoHandler) ListMensuales(c *fiber.Ctx) error {
	anio, err := strconv.Atoi(c.Query("anio"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "anio inválido"})
	}
	mes, err := strconv.Atoi(c.Query("mes"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "mes inválido"})
	}
	gastos, err := h.uc.ListGastosMensuales(c.Context(), anio, mes)
	if err != nil {
		return respondDomainError(c, err)
	}
	items := make([]dto.GastoMensualResponse, 0, len(gastos))
	for i := range gastos {
		items = append(items, dto.ToGastoMensualResponse(&gastos[i]))
	}
	return c.JSON(items)
}

// DeleteMensual godoc
// @Summary      Eliminar un gasto mensual compartido
// @Tags         gastos
// @Produce      json
// @Param        id  path  string  true  "ID del gasto"
// @Success      204  "sin contenido"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/gastos/mensuales/{id} [delete]
func (h *GastoHandler) DeleteMensual(c *fiber.Ctx) error {
	if err := h.uc.EliminarGastoMensual(c.Context(), c.Params("id")); err != nil {
		return respondDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
