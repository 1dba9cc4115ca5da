// Package reporting monta o relatório financeiro do período a partir das
// comandas fechadas, com exportação em PDF para fechamento de caixa.
package reporting

import (
	"context"
	"time"

	"github.com/comandaki/comanda-api/internal/application/dto"
	"github.com/comandaki/comanda-api/internal/domain"
	"github.com/comandaki/comanda-api/internal/domain/repository"
)

// PDFGenerator porta para a geração do PDF do relatório (Maroto na infra).
type PDFGenerator interface {
	GenerateSalesReportPDF(ctx context.Context, report *dto.SalesReportResponse) ([]byte, error)
}

// UseCase relatório de vendas por período.
type UseCase struct {
	reportRepo repository.ReportRepository
	pdfGen     PDFGenerator
}

// NewUseCase constrói o caso de uso.
func NewUseCase(reportRepo repository.ReportRepository, pdfGen PDFGenerator) *UseCase {
	return &UseCase{reportRepo: reportRepo, pdfGen: pdfGen}
}

// SalesReport consolida as vendas do período (datas YYYY-MM-DD inclusivas,
// fuso local do servidor).
func (uc *UseCase) SalesReport(ctx context.Context, in dto.SalesReportRequest) (*dto.SalesReportResponse, error) {
	start, end, err := parsePeriod(in)
	if err != nil {
		return nil, err
	}

	summary, err := uc.reportRepo.GetSalesSummary(ctx, start, end)
	if err != nil {
		return nil, err
	}
	byMethod, err := uc.reportRepo.GetSalesByPaymentMethod(ctx, start, end)
	if err != nil {
		return nil, err
	}

	out := &dto.SalesReportResponse{
		StartDate:     in.StartDate,
		EndDate:       in.EndDate,
		OrderCount:    summary.OrderCount,
		GrossTotal:    summary.GrossTotal,
		DiscountTotal: summary.DiscountTotal,
		NetTotal:      summary.NetTotal,
		ByMethod:      make([]dto.PaymentMethodSalesResponse, 0, len(byMethod)),
	}
	for _, m := range byMethod {
		out.ByMethod = append(out.ByMethod, dto.PaymentMethodSalesResponse{
			PaymentMethod: m.PaymentMethod,
			OrderCount:    m.OrderCount,
			GrossTotal:    m.GrossTotal,
			DiscountTotal: m.DiscountTotal,
			NetTotal:      m.NetTotal,
		})
	}
	return out, nil
}

// SalesReportPDF gera o PDF do relatório do período.
func (uc *UseCase) SalesReportPDF(ctx context.Context, in dto.SalesReportRequest) ([]byte, error) {
	report, err := uc.SalesReport(ctx, in)
	if err != nil {
		return nil, err
	}
	return uc.pdfGen.GenerateSalesReportPDF(ctx, report)
}

func parsePeriod(in dto.SalesReportRequest) (time.Time, time.Time, error) {
	start, err := time.ParseInLocation("2006-01-02", in.StartDate, time.Local)
	if err != nil {
		return time.Time{}, time.Time{}, domain.ErrInvalidInput
	}
	end, err := time.ParseInLocation("2006-01-02", in.EndDate, time.Local)
	if err != nil {
		return time.Time{}, time.Time{}, domain.ErrInvalidInput
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, domain.ErrInvalidInput
	}
	// Fim inclusivo: soma um dia e consulta com < end.
	return start, end.AddDate(0, 0, 1), nil
}
