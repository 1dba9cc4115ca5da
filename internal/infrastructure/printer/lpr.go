// Package printer é o adaptador da impressora térmica de recibos.
//
// A integração LPR real ainda não saiu do papel: o cliente atual sempre
// devolve ErrPrinterNotConfigured e o chamador degrada para log. A interface
// já é a definitiva para quando o hardware chegar.
package printer

import (
	"context"
	"errors"

	"github.com/comandaki/comanda-api/internal/application/billing"
	"github.com/comandaki/comanda-api/pkg/config"
)

var _ billing.Printer = (*LPRClient)(nil)

// ErrPrinterNotConfigured indica que não há impressora configurada ou que a
// integração ainda não está disponível.
var ErrPrinterNotConfigured = errors.New("impressora não configurada")

// LPRClient cliente de fila LPR (RFC 1179) para impressoras térmicas de rede.
type LPRClient struct {
	cfg config.PrinterConfig
}

// NewLPRClient constrói o cliente com a configuração da fila.
func NewLPRClient(cfg config.PrinterConfig) *LPRClient {
	return &LPRClient{cfg: cfg}
}

// Print envia o texto para a fila de impressão.
//
// TODO: implementar o protocolo LPR quando a impressora do balcão for
// instalada. Até lá toda impressão falha de forma controlada.
func (c *LPRClient) Print(ctx context.Context, text string) error {
	if !c.cfg.Enabled || c.cfg.Host == "" {
		return ErrPrinterNotConfigured
	}
	return ErrPrinterNotConfigured
}
