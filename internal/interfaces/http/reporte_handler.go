package http

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Granja-api/internal/application/dto"
	"github.com/jhoicas/Granja-api/internal/application/reporting"
)

// ReporteHandler maneja las peticiones HTTP de reportes: costos, indicadores,
// prorrateo mensual y exportación a PDF. Todos aceptan ?corte=YYYY-MM-DD; sin
// el parámetro se usa la fecha de hoy.
type ReporteHandler struct {
	uc *reporting.ReporteUseCase
}

// NewReporteHandler construye el handler.
func NewReporteHandler(uc *reporting.ReporteUseCase) *ReporteHandler {
	return &ReporteHandler{uc: uc}
}

// GetCostos godoc
// @Summary      Desglose de costos de un lote
// @Tags         reportes
// @Produce      json
// @Param        id     path   string  true   "ID del lote"
// @Param        corte  query  string  false  "Fecha de corte YYYY-MM-DD (default hoy)"
// @Success      200  {object}  costing.DesgloseCostos
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/lotes/{id}/costos [get]
func (h *ReporteHandler) GetCostos(c *fiber.Ctx) error {
	corte, err := parseCorte(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "corte inválido (YYYY-MM-DD)"})
	}
	costos, err := h.uc.GetDesgloseCostos(c.Context(), c.Params("id"), corte)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(costos)
}

// GetIndicadores godoc
// @Summary      Indicadores de eficiencia de un lote
// @Tags         reportes
// @Produce      json
// @Param        id     path   string  true   "ID del lote"
// @Param        corte  query  string  false  "Fecha de corte YYYY-MM-DD (default hoy)"
// @Success      200  {object}  costing.ReporteIndicadores
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/lotes/{id}/indicadores [get]
func (h *ReporteHandler) GetIndicadores(c *fiber.Ctx) error {
	corte, err := parseCorte(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "corte inválido (YYYY-MM-DD)"})
	}
	indicadores, err := h.uc.GetIndicadores(c.Context(), c.Params("id"), corte)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(indicadores)
}

// GetProrrateoMes godoc
// @Summary      Prorrateo de un mes calendario para un lote
// @Tags         reportes
// @Produce      json
// @Param        id     path   string  true   "ID del lote"
// @Param        anio   query  int     true   "Año"
// @Param        mes    query  int     true   "Mes (1-12)"
// @Param        corte  query  string  false  "Fecha de corte YYYY-MM-DD (default hoy)"
// @Success      200  {object}  costing.ProrrateoMes
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/lotes/{id}/prorrateo [get]
func (h *ReporteHandler) GetProrrateoMes(c *fiber.Ctx) error {
	anio, err := strconv.Atoi(c.Query("anio"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "anio inválido"})
	}
	mes, err := strconv.Atoi(c.Query("mes"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "mes inválido"})
	}
	corte, err := parseCorte(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "corte inválido (YYYY-MM-DD)"})
	}
	resumen, advertencias, err := h.uc.GetProrrateoMes(c.Context(), c.Params("id"), anio, mes, corte)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(fiber.Map{
		"prorrateo":    resumen,
		"advertencias": advertencias,
	})
}

// ExportarPDF godoc
// @Summary      Reporte de costos e indicadores en PDF
// @Tags         reportes
// @Produce      application/pdf
// @Param        id     path   string  true   "ID del lote"
// @Param        corte  query  string  false  "Fecha de corte YYYY-MM-DD (default hoy)"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/lotes/{id}/costos/pdf [get]
func (h *ReporteHandler) ExportarPDF(c *fiber.Ctx) error {
	corte, err := parseCorte(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "corte inválido (YYYY-MM-DD)"})
	}
	loteID := c.Params("id")
	pdfBytes, err := h.uc.ExportarCostosPDF(c.Context(), loteID, corte)
	if err != nil {
		return respondDomainError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="costos-%s.pdf"`, loteID))
	return c.Send(pdfBytes)
}
