package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Granja-api/internal/application/dto"
	"github.com/jhoicas/Granja-api/internal/application/lifecycle"
)

// LoteHandler maneja las peticiones HTTP del ciclo de vida de lotes y sus
// registros (consumo, mortalidad, cosechas).
type LoteHandler struct {
	uc *lifecycle.LoteUseCase
}

// NewLoteHandler construye el handler.
func NewLoteHandler(uc *lifecycle.LoteUseCase) *LoteHandler {
	return &LoteHandler{uc: uc}
}

// Create godoc
// @Summary      Crear lote con corrales asignados
// @Tags         lotes
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateLoteRequest  true  "numero_lote, fecha_inicio, animales_iniciales, machos+hembras, costo_lechones, corrales_ids"
// @Success      201  {object}  dto.LoteResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/lotes [post]
func (h *LoteHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateLoteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	fechaInicio, err := parseFecha(in.FechaInicio)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "fecha_inicio inválida (YYYY-MM-DD)"})
	}

	lote, err := h.uc.CrearLote(c.Context(), lifecycle.CrearLoteInput{
		NumeroLote:          in.NumeroLote,
		FechaInicio:         fechaInicio,
		AnimalesIniciales:   in.AnimalesIniciales,
		PesoPromedioInicial: in.PesoPromedioInicial,
		CantidadMachos:      in.CantidadMachos,
		CantidadHembras:     in.CantidadHembras,
		CostoLechones:       in.CostoLechones,
		Observaciones:       in.Observaciones,
		CorralesIDs:         in.CorralesIDs,
	})
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToLoteResponse(lote))
}

// GetByID godoc
// @Summary      Obtener un lote por ID
// @Tags         lotes
// @Produce      json
// @Param        id  path  string  true  "ID del lote"
// @Success      200  {object}  dto.LoteResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/lotes/{id} [get]
func (h *LoteHandler) GetByID(c *fiber.Ctx) error {
	lote, err := h.uc.GetLote(c.Context(), c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(dto.ToLoteResponse(lote))
}

// List godoc
// @Summary      Listar lotes
// @Tags         lotes
// @Produce      json
// @Param        limit   query  int  false  "Tamaño de página (default 20)"
// @Param        offset  query  int  false  "Desplazamiento"
// @Success      200  {object}  dto.LoteListResponse
// @Router       /api/lotes [get]
func (h *LoteHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	page.DefaultPage()

	lotes, err := h.uc.ListLotes(c.Context(), page.Limit, page.Offset)
	if err != nil {
		return respondDomainError(c, err)
	}
	items := make([]dto.LoteResponse, 0, len(lotes))
	for _, l := range lotes {
		items = append(items, dto.ToLoteResponse(l))
	}
	return c.JSON(dto.LoteListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	})
}

// Update godoc
// @Summary      Editar un lote activo
// @Tags         lotes
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del lote"
// @Param        body  body  dto.UpdateLoteRequest  true  "campos editables"
// @Success      200  {object}  dto.LoteResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/lotes/{id} [put]
func (h *LoteHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateLoteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	lote, err := h.uc.ActualizarLote(c.Context(), c.Params("id"), lifecycle.ActualizarLoteInput{
		NumeroLote:    in.NumeroLote,
		Observaciones: in.Observaciones,
	})
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(dto.ToLoteResponse(lote))
}

// Cerrar godoc
// @Summary      Cerrar un lote explícitamente
// @Tags         lotes
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del lote"
// @Param        body  body  dto.CerrarLoteRequest  true  "fecha_cierre"
// @Success      200  {object}  dto.LoteResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/lotes/{id}/cerrar [post]
func (h *LoteHandler) Cerrar(c *fiber.Ctx) error {
	var in dto.CerrarLoteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	fechaCierre, err := parseFecha(in.FechaCierre)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "fecha_cierre inválida (YYYY-MM-DD)"})
	}
	lote, err := h.uc.CerrarLote(c.Context(), c.Params("id"), fechaCierre)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(dto.ToLoteResponse(lote))
}

// RegistrarConsumo godoc
// @Summary      Registrar consumo de alimento de un lote
// @Tags         registros
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del lote"
// @Param        body  body  dto.RegistrarConsumoRequest  true  "alimento_id, fecha, cantidad_bultos"
// @Success      201  {object}  dto.ConsumoResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/lotes/{id}/consumos [post]
func (h *LoteHandler) RegistrarConsumo(c *fiber.Ctx) error {
	var in dto.RegistrarConsumoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	fecha, err := parseFecha(in.Fecha)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "fecha inválida (YYYY-MM-DD)"})
	}
	consumo, err := h.uc.RegistrarConsumo(c.Context(), lifecycle.RegistrarConsumoInput{
		LoteID:         c.Params("id"),
		AlimentoID:     in.AlimentoID,
		Fecha:          fecha,
		CantidadBultos: in.CantidadBultos,
		Observaciones:  in.Observaciones,
	})
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToConsumoResponse(consumo))
}

// RegistrarMortalidad godoc
// @Summary      Registrar bajas de un lote
// @Tags         registros
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del lote"
// @Param        body  body  dto.RegistrarMortalidadRequest  true  "fecha, cantidad, causa"
// @Success      201  {object}  dto.MortalidadResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/lotes/{id}/mortalidad [post]
func (h *LoteHandler) RegistrarMortalidad(c *fiber.Ctx) error {
	var in dto.RegistrarMortalidadRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	fecha, err := parseFecha(in.Fecha)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "fecha inválida (YYYY-MM-DD)"})
	}
	mortalidad, err := h.uc.RegistrarMortalidad(c.Context(), lifecycle.RegistrarMortalidadInput{
		LoteID:         c.Params("id"),
		Fecha:          fecha,
		Cantidad:       in.Cantidad,
		PesoPromedioKg: in.PesoPromedioKg,
		Causa:          in.Causa,
		Observaciones:  in.Observaciones,
	})
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToMortalidadResponse(mortalidad))
}

// RegistrarCosecha godoc
// @Summary      Registrar una cosecha (venta) de un lote
// @Description  Con es_ultima_cosecha=true el lote se cierra automáticamente
//
//	con la fecha de la cosecha y se liberan sus corrales.
//
// @Tags         registros
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del lote"
// @Param        body  body  dto.RegistrarCosechaRequest  true  "fecha, tipo, cantidad_animales, peso_total_kg, es_ultima_cosecha"
// @Success      201  {object}  dto.CosechaResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/lotes/{id}/cosechas [post]
func (h *LoteHandler) RegistrarCosecha(c *fiber.Ctx) error {
	var in dto.RegistrarCosechaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	fecha, err := parseFecha(in.Fecha)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "fecha inválida (YYYY-MM-DD)"})
	}
	cosecha, err := h.uc.RegistrarCosecha(c.Context(), lifecycle.RegistrarCosechaInput{
		LoteID:           c.Params("id"),
		Fecha:            fecha,
		Tipo:             in.Tipo,
		CantidadAnimales: in.CantidadAnimales,
		PesoTotalKg:      in.PesoTotalKg,
		EsUltimaCosecha:  in.EsUltimaCosecha,
		Observaciones:    in.Observaciones,
	})
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToCosechaResponse(cosecha))
}

// EliminarConsumo godoc
// @Summary      Eliminar un registro de consumo (solo con el lote activo)
// @Tags         registros
// @Param        id  path  string  true  "ID del registro de consumo"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/consumos/{id} [delete]
func (h *LoteHandler) EliminarConsumo(c *fiber.Ctx) error {
	if err := h.uc.EliminarConsumo(c.Context(), c.Params("id")); err != nil {
		return respondDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// EliminarMortalidad godoc
// @Summary      Eliminar un registro de mortalidad (solo con el lote activo)
// @Tags         registros
// @Param        id  path  string  true  "ID del registro de mortalidad"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/mortalidad/{id} [delete]
func (h *LoteHandler) EliminarMortalidad(c *fiber.Ctx) error {
	if err := h.uc.EliminarMortalidad(c.Context(), c.Params("id")); err != nil {
		return respondDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// EliminarCosecha godoc
// @Summary      Eliminar una cosecha (solo con el lote activo)
// @Tags         registros
// @Param        id  path  string  true  "ID de la cosecha"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/cosechas/{id} [delete]
func (h *LoteHandler) EliminarCosecha(c *fiber.Ctx) error {
	if err := h.uc.EliminarCosecha(c.Context(), c.Params("id")); err != nil {
		return respondDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
