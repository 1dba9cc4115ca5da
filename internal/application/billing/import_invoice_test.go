package billing_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comandaki/comanda-api/internal/application/billing"
	"github.com/comandaki/comanda-api/internal/domain"
	"github.com/comandaki/comanda-api/internal/domain/entity"
	"github.com/comandaki/comanda-api/internal/domain/nfe"
	"github.com/comandaki/comanda-api/pkg/logger"
)

// Nota com duas linhas: a primeira casa com o insumo "pão de hambúrguer" já
// cadastrado, a segunda não tem insumo correspondente.
const xmlNotaCompra = `<?xml version="1.0" encoding="UTF-8"?>
<nfeProc xmlns="http://www.portalfiscal.inf.br/nfe" versao="4.00">
  <NFe>
    <infNFe Id="NFe35240812345678000199550010000012341000012349" versao="4.00">
      <ide>
        <nNF>1234</nNF>
        <serie>1</serie>
        <dhEmi>2024-08-15T10:30:00-03:00</dhEmi>
      </ide>
      <emit>
        <CNPJ>12345678000199</CNPJ>
        <xNome>Distribuidora Boa Mesa LTDA</xNome>
      </emit>
      <det nItem="1">
        <prod>
          <xProd>Pão de Hambúrguer</xProd>
          <qCom>20</qCom>
          <uCom>UN</uCom>
          <vUnCom>2.25</vUnCom>
          <vProd>45.00</vProd>
        </prod>
      </det>
      <det nItem="2">
        <prod>
          <xProd>Óleo de Soja 900ml</xProd>
          <qCom>5</qCom>
          <uCom>UN</uCom>
          <vUnCom>8.00</vUnCom>
          <vProd>40.00</vProd>
        </prod>
      </det>
      <total>
        <ICMSTot>
          <vProd>85.00</vProd>
          <vTotTrib>10.20</vTotTrib>
          <vNF>85.00</vNF>
        </ICMSTot>
      </total>
    </infNFe>
  </NFe>
</nfeProc>`

type importFixture struct {
	uc          *billing.ImportInvoiceUseCase
	invoiceRepo *fakeInvoiceRepo
	movRepo     *fakeMovementRepo
	itemRepo    *fakeStockItemRepo
}

func newImportFixture(t *testing.T) *importFixture {
	t.Helper()

	pao := &entity.StockItem{ID: "pao", Name: "Pão de Hambúrguer", Unit: "UN", Quantity: dec("10"), Cost: dec("1.50")}
	itemRepo := &fakeStockItemRepo{
		byID:   map[string]*entity.StockItem{"pao": pao},
		byNorm: map[string]*entity.StockItem{"pao de hamburguer": pao},
	}
	invoiceRepo := newFakeInvoiceRepo()
	movRepo := &fakeMovementRepo{}
	txRunner := &fakeTxRunner{invoiceRepo: invoiceRepo, movRepo: movRepo, itemRepo: itemRepo}
	log := logger.New(logger.Config{Env: "test", Level: "error"})

	return &importFixture{
		uc:          billing.NewImportInvoiceUseCase(txRunner, invoiceRepo, log),
		invoiceRepo: invoiceRepo,
		movRepo:     movRepo,
		itemRepo:    itemRepo,
	}
}

func TestImport_NotaComEntradaDeEstoque(t *testing.T) {
	f := newImportFixture(t)

	out, err := f.uc.Import(context.Background(), "user-1", "nota.xml", []byte(xmlNotaCompra))
	require.NoError(t, err)

	assert.Equal(t, 1, out.StockedItems, "só o pão casa com insumo cadastrado")
	assert.Equal(t, 1, out.UnmatchedItems, "o óleo fica só na nota")
	assert.Equal(t, "1234", out.Invoice.Number)
	assert.Equal(t, "35240812345678000199550010000012341000012349", out.Invoice.AccessKey)
	assert.Equal(t, "2024-08-15", out.Invoice.IssueDate)
	require.Len(t, out.Invoice.Items, 2)
	assert.Equal(t, "pao", out.Invoice.Items[0].StockItemID, "linha casada aponta para o insumo")
	assert.Empty(t, out.Invoice.Items[1].StockItemID)

	// Movimento de entrada da linha casada.
	require.Len(t, f.movRepo.created, 1)
	mov := f.movRepo.created[0]
	assert.Equal(t, entity.MovementEntrada, mov.Type)
	assert.True(t, mov.Quantity.Equal(dec("20")))
	assert.True(t, mov.UnitCost.Equal(dec("2.25")))
	assert.Equal(t, "compra NF-e 1234", mov.Reason)
	assert.Equal(t, "user-1", mov.CreatedBy)

	// Saldo 10 a R$ 1.50 + entrada de 20 a R$ 2.25 = 30 unidades a custo médio R$ 2.
	pao := f.itemRepo.byID["pao"]
	assert.True(t, pao.Quantity.Equal(dec("30")), "quantidade após a entrada: %s", pao.Quantity)
	assert.True(t, pao.Cost.Equal(dec("2")), "custo médio ponderado: %s", pao.Cost)

	assert.Equal(t, 1, f.invoiceRepo.created, "nota persistida junto com a entrada")
}

func TestImport_ChaveDeAcessoDuplicada(t *testing.T) {
	f := newImportFixture(t)

	_, err := f.uc.Import(context.Background(), "user-1", "nota.xml", []byte(xmlNotaCompra))
	require.NoError(t, err)

	_, err = f.uc.Import(context.Background(), "user-1", "nota.xml", []byte(xmlNotaCompra))
	assert.ErrorIs(t, err, domain.ErrDuplicate, "mesma chave de acesso não importa duas vezes")
	assert.Equal(t, 1, f.invoiceRepo.created)
	assert.Len(t, f.movRepo.created, 1, "a segunda tentativa não movimenta estoque")
}

func TestImport_ValidacaoDeArquivo(t *testing.T) {
	f := newImportFixture(t)
	ctx := context.Background()

	_, err := f.uc.Import(ctx, "user-1", "nota.pdf", []byte(xmlNotaCompra))
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "só XML é aceito")

	_, err = f.uc.Import(ctx, "user-1", "nota.xml", nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "arquivo vazio é rejeitado")

	grande := make([]byte, billing.MaxInvoiceFileSize+1)
	_, err = f.uc.Import(ctx, "user-1", "nota.xml", grande)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "acima de 10 MB é rejeitado")
}

func TestImport_XMLInvalido(t *testing.T) {
	f := newImportFixture(t)

	_, err := f.uc.Import(context.Background(), "user-1", "nota.xml", []byte("<NFe><infNFe>"))
	assert.ErrorIs(t, err, nfe.ErrMalformedXML)
	assert.Zero(t, f.invoiceRepo.created, "nada é persistido quando o parse falha")
}

func TestImport_CharsetLatin1(t *testing.T) {
	f := newImportFixture(t)

	// Mesmo produto com acentos em Latin-1, como exportam ERPs antigos.
	latin1 := []byte("<?xml version=\"1.0\" encoding=\"ISO-8859-1\"?>" +
		"<NFe><infNFe Id=\"NFe35240812345678000199550010000000771000000779\">" +
		"<ide><nNF>77</nNF><serie>1</serie><dEmi>01/08/2024</dEmi></ide>" +
		"<emit><CNPJ>12345678000199</CNPJ><xNome>Padaria S\xe3o Jo\xe3o</xNome></emit>" +
		"<det nItem=\"1\"><prod><xProd>P\xe3o de Hamb\xfarguer</xProd>" +
		"<qCom>20</qCom><uCom>UN</uCom><vUnCom>2.25</vUnCom><vProd>45.00</vProd></prod></det>" +
		"</infNFe></NFe>")

	out, err := f.uc.Import(context.Background(), "user-1", "nota.xml", latin1)
	require.NoError(t, err)
	assert.Equal(t, "Padaria São João", out.Invoice.SupplierName)
	assert.Equal(t, "2024-08-01", out.Invoice.IssueDate)
	assert.Equal(t, 1, out.StockedItems, "o nome acentuado casa com o insumo normalizado")
}

func TestImport_GetEList(t *testing.T) {
	f := newImportFixture(t)

	out, err := f.uc.Import(context.Background(), "user-1", "nota.xml", []byte(xmlNotaCompra))
	require.NoError(t, err)

	got, err := f.uc.Get(out.Invoice.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, out.Invoice.AccessKey, got.AccessKey)
	assert.Len(t, got.Items, 2)

	missing, err := f.uc.Get("ghost")
	require.NoError(t, err)
	assert.Nil(t, missing, "nota inexistente devolve nil sem erro")

	list, err := f.uc.List(20, 0)
	require.NoError(t, err)
	assert.Len(t, list.Items, 1)
}
