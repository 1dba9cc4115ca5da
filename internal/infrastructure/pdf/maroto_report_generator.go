// Package pdf implementa a geração do relatório de vendas em PDF para
// fechamento de caixa.
//
// Layout da página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nome do restaurante │ Período do relatório          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMO: Comandas / Bruto / Descontos / Líquido              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABELA: Forma de pagamento | Comandas | Bruto | Líquido     │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/comandaki/comanda-api/internal/application/dto"
	"github.com/comandaki/comanda-api/internal/application/reporting"
)

var _ reporting.PDFGenerator = (*MarotoReportGenerator)(nil)

// ── Paleta de cores ───────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 160, Green: 45, Blue: 35}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoReportGenerator implementa reporting.PDFGenerator usando Maroto v2.
type MarotoReportGenerator struct {
	restaurantName string
}

// NewMarotoReportGenerator constrói o gerador com o nome exibido no cabeçalho.
func NewMarotoReportGenerator(restaurantName string) *MarotoReportGenerator {
	return &MarotoReportGenerator{restaurantName: restaurantName}
}

// GenerateSalesReportPDF gera o PDF do relatório e devolve os bytes.
func (g *MarotoReportGenerator) GenerateSalesReportPDF(_ context.Context, report *dto.SalesReportResponse) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Relatório de Vendas", true).
		WithAuthor(g.restaurantName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, method := range report.ByMethod {
		m.AddRows(methodRow(method))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow())

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Seções ────────────────────────────────────────────────────────────────────

// headerRow: nome do restaurante (esq) e período (dir).
func (g *MarotoReportGenerator) headerRow(report *dto.SalesReportResponse) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New(g.restaurantName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Relatório de Vendas", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("PERÍODO", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(report.StartDate+" a "+report.EndDate, props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 7,
			}),
		),
	)
}

// summaryRow: totais consolidados do período.
func summaryRow(report *dto.SalesReportResponse) core.Row {
	return row.New(14).Add(
		summaryCol("COMANDAS", fmt.Sprintf("%d", report.OrderCount)),
		summaryCol("BRUTO", "R$ "+report.GrossTotal.StringFixed(2)),
		summaryCol("DESCONTOS", "R$ "+report.DiscountTotal.StringFixed(2)),
		summaryCol("LÍQUIDO", "R$ "+report.NetTotal.StringFixed(2)),
	)
}

func summaryCol(label, value string) core.Col {
	return col.New(3).Add(
		text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
		}),
		text.New(value, props.Text{Size: 11, Top: 7}),
	)
}

// tableHeaderRow: cabeçalho da tabela por forma de pagamento.
func tableHeaderRow() core.Row {
	header := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 1,
		}))
	}
	return row.New(7).Add(
		header("FORMA DE PAGAMENTO", 4, align.Left),
		header("COMANDAS", 2, align.Right),
		header("BRUTO", 2, align.Right),
		header("DESCONTOS", 2, align.Right),
		header("LÍQUIDO", 2, align.Right),
	)
}

// methodRow: uma linha da tabela.
func methodRow(m dto.PaymentMethodSalesResponse) core.Row {
	cell := func(value string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(value, props.Text{Size: 9, Align: a, Top: 1}))
	}
	return row.New(6).Add(
		cell(m.PaymentMethod, 4, align.Left),
		cell(fmt.Sprintf("%d", m.OrderCount), 2, align.Right),
		cell("R$ "+m.GrossTotal.StringFixed(2), 2, align.Right),
		cell("R$ "+m.DiscountTotal.StringFixed(2), 2, align.Right),
		cell("R$ "+m.NetTotal.StringFixed(2), 2, align.Right),
	)
}

// footerRow: data de geração.
func footerRow() core.Row {
	return row.New(6).Add(
		col.New(12).Add(
			text.New("Gerado em "+time.Now().Format("02/01/2006 15:04"), props.Text{
				Size: 7, Align: align.Right, Color: colorGray, Top: 1,
			}),
		),
	)
}
