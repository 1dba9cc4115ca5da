package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/comandaki/comanda-api/internal/application/dto"
	"github.com/comandaki/comanda-api/internal/application/reporting"
	"github.com/comandaki/comanda-api/internal/domain"
)

// ReportHandler trata o relatório financeiro do período.
type ReportHandler struct {
	uc *reporting.UseCase
}

// NewReportHandler constrói o handler.
func NewReportHandler(uc *reporting.UseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Sales godoc
// @Summary      Relatório de vendas do período
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        start_date  query  string  true  "Data inicial (YYYY-MM-DD)"
// @Param        end_date    query  string  true  "Data final (YYYY-MM-DD, inclusiva)"
// @Success      200  {object}  dto.SalesReportResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/sales [get]
func (h *ReportHandler) Sales(c *fiber.Ctx) error {
	in := dto.SalesReportRequest{
		StartDate: c.Query("start_date"),
		EndDate:   c.Query("end_date"),
	}
	out, err := h.uc.SalesReport(c.UserContext(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "start_date e end_date devem ser YYYY-MM-DD, com end_date >= start_date"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// SalesPDF godoc
// @Summary      Relatório de vendas em PDF
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Param        start_date  query  string  true  "Data inicial (YYYY-MM-DD)"
// @Param        end_date    query  string  true  "Data final (YYYY-MM-DD, inclusiva)"
// @Success      200  {file}  binary
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/sales/pdf [get]
func (h *ReportHandler) SalesPDF(c *fiber.Ctx) error {
	in := dto.SalesReportRequest{
		StartDate: c.Query("start_date"),
		EndDate:   c.Query("end_date"),
	}
	pdfBytes, err := h.uc.SalesReportPDF(c.UserContext(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "start_date e end_date devem ser YYYY-MM-DD, com end_date >= start_date"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="vendas_%s_%s.pdf"`, in.StartDate, in.EndDate))
	return c.Send(pdfBytes)
}
