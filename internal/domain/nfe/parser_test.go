package nfe_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comandaki/comanda-api/internal/domain/nfe"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fixtures
//
// XML mínimo com namespace oficial, no formato nfeProc, do jeito que a SEFAZ
// exporta. As variações (sem namespace, sem envelope, campos faltando) derivam
// deste.
// ──────────────────────────────────────────────────────────────────────────────

const xmlCompleta = `<?xml version="1.0" encoding="UTF-8"?>
<nfeProc xmlns="http://www.portalfiscal.inf.br/nfe" versao="4.00">
  <NFe>
    <infNFe Id="NFe35240312345678000199550010000001231000001234" versao="4.00">
      <ide>
        <nNF>123</nNF>
        <serie>1</serie>
        <dhEmi>2024-03-15T10:30:00-03:00</dhEmi>
      </ide>
      <emit>
        <CNPJ>12345678000199</CNPJ>
        <xNome>Distribuidora Alimentos Ltda</xNome>
        <enderEmit>
          <xLgr>Rua das Laranjeiras</xLgr>
          <nro>100</nro>
          <xBairro>Centro</xBairro>
          <xMun>São Paulo</xMun>
          <UF>SP</UF>
          <CEP>01000000</CEP>
        </enderEmit>
      </emit>
      <det nItem="1">
        <prod>
          <xProd>Queijo Mussarela</xProd>
          <qCom>4.0000</qCom>
          <uCom>KG</uCom>
          <vUnCom>32.50</vUnCom>
          <vProd>130.00</vProd>
        </prod>
      </det>
      <det nItem="2">
        <prod>
          <xProd>Farinha de Trigo</xProd>
          <qCom>10.0000</qCom>
          <uCom>KG</uCom>
          <vUnCom>5.20</vUnCom>
          <vProd>52.00</vProd>
        </prod>
      </det>
      <total>
        <ICMSTot>
          <vProd>182.00</vProd>
          <vTotTrib>21.84</vTotTrib>
          <vNF>182.00</vNF>
        </ICMSTot>
      </total>
    </infNFe>
  </NFe>
</nfeProc>`

const xmlSemNamespace = `<?xml version="1.0"?>
<NFe>
  <infNFe Id="NFe35240312345678000199550010000001231000001234">
    <ide><nNF>77</nNF><serie>2</serie><dEmi>15/03/2024</dEmi></ide>
    <emit><CPF>12345678901</CPF><xFant>Mercadinho do Zé</xFant></emit>
    <det><prod><xProd>Widget</xProd><qCom>2</qCom><vUnCom>12,50</vUnCom></prod></det>
  </infNFe>
</NFe>`

// ──────────────────────────────────────────────────────────────────────────────
// Caminho feliz
// ──────────────────────────────────────────────────────────────────────────────

func TestParse_NotaCompleta(t *testing.T) {
	inv, err := nfe.Parse(xmlCompleta)
	require.NoError(t, err, "nota completa e bem formada deve parsear sem erro")

	assert.Equal(t, "123", inv.Number)
	assert.Equal(t, "1", inv.Series)
	assert.Equal(t, "35240312345678000199550010000001231000001234", inv.AccessKey,
		"a chave de acesso deve vir sem o prefixo NFe")
	assert.Equal(t, "Distribuidora Alimentos Ltda", inv.SupplierName)
	assert.Equal(t, "12345678000199", inv.SupplierTaxID)
	assert.Equal(t, "2024-03-15", inv.IssueDate, "dhEmi deve ser normalizado para YYYY-MM-DD")

	require.Len(t, inv.Items, 2, "um item por det, na ordem do documento")
	assert.Equal(t, "Queijo Mussarela", inv.Items[0].ProductName)
	assert.Equal(t, "KG", inv.Items[0].Unit)
	assert.True(t, inv.Items[0].Quantity.Equal(decimal.NewFromInt(4)))
	assert.True(t, inv.Items[0].UnitPrice.Equal(decimal.RequireFromString("32.50")))
	assert.Equal(t, "Farinha de Trigo", inv.Items[1].ProductName)

	assert.True(t, inv.Subtotal.Equal(decimal.RequireFromString("182.00")))
	assert.True(t, inv.Taxes.Equal(decimal.RequireFromString("21.84")))
	assert.True(t, inv.Total.Equal(decimal.RequireFromString("182.00")))
}

func TestParse_SemNamespaceEFormatosLegados(t *testing.T) {
	inv, err := nfe.Parse(xmlSemNamespace)
	require.NoError(t, err, "nota sem namespace também deve parsear")

	assert.Equal(t, "77", inv.Number)
	assert.Equal(t, "Mercadinho do Zé", inv.SupplierName, "xFant é o fallback de xNome")
	assert.Equal(t, "12345678901", inv.SupplierTaxID, "CPF é o fallback de CNPJ")
	assert.Equal(t, "2024-03-15", inv.IssueDate, "dEmi em DD/MM/YYYY deve ser reordenado")

	require.Len(t, inv.Items, 1)
	item := inv.Items[0]
	assert.True(t, item.UnitPrice.Equal(decimal.RequireFromString("12.5")),
		"vírgula decimal deve ser aceita")
	assert.Equal(t, nfe.UnidadePadrao, item.Unit, "uCom ausente assume a unidade padrão")
	assert.True(t, item.TotalPrice.Equal(decimal.NewFromInt(25)),
		"total ausente deve ser derivado de preço unitário x quantidade")
}

func TestParse_Idempotente(t *testing.T) {
	inv1, err1 := nfe.Parse(xmlCompleta)
	inv2, err2 := nfe.Parse(xmlCompleta)
	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Equal(t, inv1, inv2, "o mesmo XML deve sempre produzir o mesmo resultado")
}

func TestParse_EnderecoDoEmitente(t *testing.T) {
	inv, err := nfe.Parse(xmlCompleta)
	require.NoError(t, err)
	assert.Equal(t, "Rua das Laranjeiras, 100, Centro, São Paulo, SP, 01000000",
		inv.SupplierAddress, "o endereço junta só os fragmentos presentes")
}

// ──────────────────────────────────────────────────────────────────────────────
// Falhas estruturais: cada uma com seu motivo próprio
// ──────────────────────────────────────────────────────────────────────────────

func TestParse_XMLMalFormado(t *testing.T) {
	_, err := nfe.Parse("<nfeProc><NFe></nfeProc>")
	require.Error(t, err)
	assert.ErrorIs(t, err, nfe.ErrMalformedXML)
}

func TestParse_SemElementoNFe(t *testing.T) {
	_, err := nfe.Parse(`<nfeProc xmlns="http://www.portalfiscal.inf.br/nfe"><protNFe/></nfeProc>`)
	require.Error(t, err)
	assert.ErrorIs(t, err, nfe.ErrMissingNFe)
}

func TestParse_SemInfNFe(t *testing.T) {
	_, err := nfe.Parse(`<NFe xmlns="http://www.portalfiscal.inf.br/nfe"><assinatura/></NFe>`)
	require.Error(t, err)
	assert.ErrorIs(t, err, nfe.ErrMissingInfNFe)
}

func TestParse_DadosInsuficientes(t *testing.T) {
	casos := map[string]string{
		"sem número": `<NFe><infNFe>
			<emit><xNome>Fornecedor</xNome></emit>
			<det><prod><xProd>Item</xProd><qCom>1</qCom><vProd>10</vProd></prod></det>
		</infNFe></NFe>`,
		"sem emitente": `<NFe><infNFe>
			<ide><nNF>1</nNF></ide>
			<det><prod><xProd>Item</xProd><qCom>1</qCom><vProd>10</vProd></prod></det>
		</infNFe></NFe>`,
		"sem itens": `<NFe><infNFe>
			<ide><nNF>1</nNF></ide>
			<emit><xNome>Fornecedor</xNome></emit>
		</infNFe></NFe>`,
	}
	for nome, xml := range casos {
		t.Run(nome, func(t *testing.T) {
			_, err := nfe.Parse(xml)
			require.Error(t, err)
			assert.ErrorIs(t, err, nfe.ErrInsufficientData,
				"nota sem número, emitente ou itens deve falhar com o motivo combinado")
		})
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Regras de linha e de totais
// ──────────────────────────────────────────────────────────────────────────────

func TestParse_LinhaInvalidaEhDescartada(t *testing.T) {
	xml := `<NFe><infNFe Id="NFe123">
		<ide><nNF>9</nNF></ide>
		<emit><xNome>Fornecedor</xNome></emit>
		<det><prod><xProd></xProd><qCom>3</qCom><vProd>30</vProd></prod></det>
		<det><prod><xProd>Sem quantidade</xProd><qCom>0</qCom><vProd>10</vProd></prod></det>
		<det><prod><xProd>Válido</xProd><qCom>2</qCom><vProd>20</vProd></prod></det>
	</infNFe></NFe>`
	inv, err := nfe.Parse(xml)
	require.NoError(t, err, "linhas inválidas não derrubam a nota")
	require.Len(t, inv.Items, 1, "só a linha válida deve sobrar")
	assert.Equal(t, "Válido", inv.Items[0].ProductName)
	assert.True(t, inv.Items[0].UnitPrice.Equal(decimal.NewFromInt(10)),
		"preço unitário ausente deve ser derivado do total / quantidade")
}

func TestParse_TotalCaiParaSubtotal(t *testing.T) {
	xml := `<NFe><infNFe>
		<ide><nNF>5</nNF></ide>
		<emit><xNome>Fornecedor</xNome></emit>
		<det><prod><xProd>Item</xProd><qCom>1</qCom><vProd>40</vProd></prod></det>
		<total><ICMSTot><vProd>40.00</vProd></ICMSTot></total>
	</infNFe></NFe>`
	inv, err := nfe.Parse(xml)
	require.NoError(t, err)
	assert.True(t, inv.Total.Equal(decimal.RequireFromString("40.00")),
		"vNF ausente cai para o subtotal")
	assert.True(t, inv.Taxes.IsZero())
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers exportados
// ──────────────────────────────────────────────────────────────────────────────

func TestParseDecimal(t *testing.T) {
	assert.True(t, nfe.ParseDecimal("12,50").Equal(decimal.RequireFromString("12.5")))
	assert.True(t, nfe.ParseDecimal(" 7.25 ").Equal(decimal.RequireFromString("7.25")))
	assert.True(t, nfe.ParseDecimal("").IsZero(), "vazio vira zero")
	assert.True(t, nfe.ParseDecimal("abc").IsZero(), "ilegível vira zero, não erro")
}

func TestNormalizeDate(t *testing.T) {
	assert.Equal(t, "2024-03-15", nfe.NormalizeDate("2024-03-15T10:30:00-03:00"))
	assert.Equal(t, "2024-03-15", nfe.NormalizeDate("15/03/2024"))
	assert.Equal(t, "2024-03-15", nfe.NormalizeDate("2024-03-15"))
	assert.Equal(t, "15.03.2024", nfe.NormalizeDate("15.03.2024"),
		"formato desconhecido passa inalterado")
}
