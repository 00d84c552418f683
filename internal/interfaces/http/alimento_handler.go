package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Granja-api/internal/application/dto"
	"github.com/jhoicas/Granja-api/internal/application/usecase"
)

// AlimentoHandler maneja las peticiones HTTP del catálogo de alimentos.
type AlimentoHandler struct {
	uc *usecase.AlimentoUseCase
}

// NewAlimentoHandler construye el handler.
func NewAlimentoHandler(uc *usecase.AlimentoUseCase) *AlimentoHandler {
	return &AlimentoHandler{uc: uc}
}

// Create godoc
// @Summary      Crear alimento
// @Tags         alimentos
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateAlimentoRequest  true  "nombre, tipo, costo_por_bulto, peso_bulto_kg"
// @Success      201  {object}  dto.AlimentoResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/alimentos [post]
func (h *AlimentoHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateAlimentoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	alimento, err := h.uc.Crear(c.Context(), usecase.CrearAlimentoInput{
		Nombre:        in.Nombre,
		Tipo:          in.Tipo,
		CostoPorBulto: in.CostoPorBulto,
		PesoBultoKg:   in.PesoBultoKg,
	})
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToAlimentoResponse(alimento))
}

// GetByID godoc
// @Summary      Obtener un alimento por ID
// @Tags         alimentos
// @Produce      json
// @Param        id  path  string  true  "ID del alimento"
// @Success      200  {object}  dto.AlimentoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/alimentos/{id} [get]
func (h *AlimentoHandler) GetByID(c *fiber.Ctx) error {
	alimento, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(dto.ToAlimentoResponse(alimento))
}

// List godoc
// @Summary      Listar alimentos
// @Tags         alimentos
// @Produce      json
// @Param        limit   query  int  false  "Tamaño de página (default 20)"
// @Param        offset  query  int  false  "Desplazamiento"
// @Success      200  {array}  dto.AlimentoResponse
// @Router       /api/alimentos [get]
func (h *AlimentoHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	page.DefaultPage()

	alimentos, err := h.uc.List(c.Context(), page.Limit, page.Offset)
	if err != nil {
		return respondDomainError(c, err)
	}
	items := make([]dto.AlimentoResponse, 0, len(alimentos))
	for _, a := range alimentos {
		items = append(items, dto.ToAlimentoResponse(a))
	}
	return c.JSON(items)
}

// Update godoc
// @Summary      Editar un alimento
// @Description  Desactivarlo bloquea consumos nuevos sin tocar el histórico.
// @Tags         alimentos
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del alimento"
// @Param        body  body  dto.UpdateAlimentoRequest  true  "campos editables"
// @Success      200  {object}  dto.AlimentoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/alimentos/{id} [put]
func (h *AlimentoHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateAlimentoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	alimento, err := h.uc.Actualizar(c.Context(), c.Params("id"), usecase.ActualizarAlimentoInput{
		Nombre:        in.Nombre,
		Tipo:          in.Tipo,
		CostoPorBulto: in.CostoPorBulto,
		PesoBultoKg:   in.PesoBultoKg,
		Activo:        in.Activo,
	})
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(dto.ToAlimentoResponse(alimento))
}
