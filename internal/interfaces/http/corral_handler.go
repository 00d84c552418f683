package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Granja-api/internal/application/dto"
	"github.com/jhoicas/Granja-api/internal/application/usecase"
)

// CorralHandler maneja las peticiones HTTP de corrales.
type CorralHandler struct {
	uc *usecase.CorralUseCase
}

// NewCorralHandler construye el handler.
func NewCorralHandler(uc *usecase.CorralUseCase) *CorralHandler {
	return &CorralHandler{uc: uc}
}

// Create godoc
// @Summary      Crear corral
// @Tags         corrales
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCorralRequest  true  "nombre, area_m2"
// @Success      201  {object}  dto.CorralResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/corrales [post]
func (h *CorralHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCorralRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	corral, err := h.uc.Crear(c.Context(), in.Nombre, in.AreaM2)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToCorralResponse(corral))
}

// GetByID godoc
// @Summary      Obtener un corral por ID
// @Tags         corrales
// @Produce      json
// @Param        id  path  string  true  "ID del corral"
// @Success      200  {object}  dto.CorralResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/corrales/{id} [get]
func (h *CorralHandler) GetByID(c *fiber.Ctx) error {
	corral, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(dto.ToCorralResponse(corral))
}

// List godoc
// @Summary      Listar corrales
// @Tags         corrales
// @Produce      json
// @Param        limit   query  int  false  "Tamaño de página (default 20)"
// @Param        offset  query  int  false  "Desplazamiento"
// @Success      200  {array}  dto.CorralResponse
// @Router       /api/corrales [get]
func (h *CorralHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	page.DefaultPage()

	corrales, err := h.uc.List(c.Context(), page.Limit, page.Offset)
	if err != nil {
		return respondDomainError(c, err)
	}
	items := make([]dto.CorralResponse, 0, len(corrales))
	for _, corral := range corrales {
		items = append(items, dto.ToCorralResponse(corral))
	}
	return c.JSON(items)
}

// Update godoc
// @Summary      Editar un corral
// @Tags         corrales
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del corral"
// @Param        body  body  dto.UpdateCorralRequest  true  "campos editables"
// @Success      200  {object}  dto.CorralResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/corrales/{id} [put]
func (h *CorralHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCorralRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	corral, err := h.uc.Actualizar(c.Context(), c.Params("id"), usecase.ActualizarCorralInput{
		Nombre: in.Nombre,
		AreaM2: in.AreaM2,
		Activo: in.Activo,
	})
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(dto.ToCorralResponse(corral))
}
