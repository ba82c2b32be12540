package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/contaflow-api/internal/application/dto"
	"github.com/jhoicas/contaflow-api/internal/application/reports"
	"github.com/jhoicas/contaflow-api/internal/domain"
)

// ReportHandler maneja los informes mensuales de cumplimiento.
type ReportHandler struct {
	uc *reports.ReportUseCase
}

// NewReportHandler construye el handler de informes.
func NewReportHandler(uc *reports.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Monthly godoc
// @Summary      Informe mensual de cumplimiento (JSON)
// @Tags         reports
// @Produce      json
// @Param        company_id  query  string  true  "ID de la empresa"
// @Param        year        query  int     true  "Año"
// @Param        month       query  int     true  "Mes (1-12)"
// @Success      200  {object}  dto.MonthlyReportResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/reports/monthly [get]
func (h *ReportHandler) Monthly(c *fiber.Ctx) error {
	companyID, year, month, errResp := reportParams(c)
	if errResp != nil {
		return c.Status(fiber.StatusBadRequest).JSON(*errResp)
	}
	out, err := h.uc.Monthly(c.Context(), companyID, GetUserID(c), year, month)
	if err != nil {
		return reportError(c, err)
	}
	return c.JSON(out)
}

// MonthlyPDF godoc
// @Summary      Informe mensual de cumplimiento (PDF)
// @Tags         reports
// @Produce      application/pdf
// @Param        company_id  query  string  true  "ID de la empresa"
// @Param        year        query  int     true  "Año"
// @Param        month       query  int     true  "Mes (1-12)"
// @Success      200  {file}    binary
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/reports/monthly/pdf [get]
func (h *ReportHandler) MonthlyPDF(c *fiber.Ctx) error {
	companyID, year, month, errResp := reportParams(c)
	if errResp != nil {
		return c.Status(fiber.StatusBadRequest).JSON(*errResp)
	}
	pdfBytes, err := h.uc.MonthlyPDF(c.Context(), companyID, GetUserID(c), year, month)
	if err != nil {
		return reportError(c, err)
	}
	filename := fmt.Sprintf("raport-%s-%04d-%02d.pdf", companyID, year, month)
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}

func reportParams(c *fiber.Ctx) (companyID string, year, month int, errResp *dto.ErrorResponse) {
	companyID = c.Query("company_id")
	year = c.QueryInt("year", 0)
	month = c.QueryInt("month", 0)
	if companyID == "" || year == 0 || month == 0 {
		return "", 0, 0, &dto.ErrorResponse{Code: "VALIDATION", Message: "company_id, year y month son requeridos"}
	}
	return companyID, year, month, nil
}

func reportError(c *fiber.Ctx, err error) error {
	if err == domain.ErrNotFound {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "empresa no encontrada"})
	}
	if err == domain.ErrInvalidInput {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "year o month fuera de rango"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
