// Package nfe extrai os dados de uma NF-e (Nota Fiscal Eletrônica) a partir do
// XML exportado pela SEFAZ, no formato nfeProc (nota + protocolo) ou NFe puro.
//
// O parser é deliberadamente tolerante: exportações reais variam em completude
// e em uso de namespace, então cada campo é buscado primeiro no namespace
// oficial da NF-e e depois sem namespace, e campos numéricos ilegíveis viram
// zero em vez de derrubar a importação inteira (ver ParseDecimal).
package nfe

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// Namespace oficial dos elementos da NF-e.
const Namespace = "http://www.portalfiscal.inf.br/nfe"

// UnidadePadrao é a unidade comercial assumida quando uCom está ausente.
const UnidadePadrao = "UN"

// Motivos de falha do parse. Sempre devolvidos como valor, nunca como panic:
// XML de nota fiscal é entrada não confiável.
var (
	ErrMalformedXML     = errors.New("XML inválido ou mal formado")
	ErrMissingNFe       = errors.New("elemento NFe não encontrado no documento")
	ErrMissingInfNFe    = errors.New("elemento infNFe não encontrado na NFe")
	ErrInsufficientData = errors.New("nota fiscal com dados insuficientes (número, emitente ou itens)")
)

// Invoice é o resultado transitório do parse. A persistência é responsabilidade
// de quem chama (ver application/billing).
type Invoice struct {
	Number          string
	Series          string
	AccessKey       string // Id do infNFe sem o prefixo "NFe"
	SupplierName    string
	SupplierTaxID   string
	SupplierAddress string
	IssueDate       string // YYYY-MM-DD
	Items           []Item
	Subtotal        decimal.Decimal
	Taxes           decimal.Decimal
	Total           decimal.Decimal
}

// Item é uma linha de produto da nota (um det/prod do XML).
type Item struct {
	ProductName string
	Quantity    decimal.Decimal
	Unit        string
	UnitPrice   decimal.Decimal
	TotalPrice  decimal.Decimal
}

// Parse converte o texto XML de uma NF-e em Invoice.
//
// Checagens estruturais, nesta ordem e cada uma com seu motivo próprio:
// XML bem formado; elemento NFe (direto ou dentro de nfeProc); elemento infNFe.
// Após a extração, a nota só é válida com número, emitente e ao menos um item
// — faltando qualquer um, ErrInsufficientData (motivo único combinado, igual
// ao comportamento histórico do importador).
func Parse(xmlText string) (inv *Invoice, err error) {
	// Entrada não confiável: qualquer panic do motor XML vira erro de parse.
	defer func() {
		if r := recover(); r != nil {
			inv = nil
			err = fmt.Errorf("falha interna ao processar XML: %v", r)
		}
	}()

	doc := etree.NewDocument()
	doc.ReadSettings.CharsetReader = charsetReader
	if perr := doc.ReadFromString(xmlText); perr != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedXML, perr)
	}
	root := doc.Root()
	if root == nil {
		return nil, ErrMalformedXML
	}

	nfeEl := root
	if root.Tag != "NFe" {
		// Formato nfeProc: a NFe fica aninhada no envelope do protocolo.
		nfeEl = childByTag(root, "NFe")
	}
	if nfeEl == nil {
		return nil, ErrMissingNFe
	}

	infEl := nfeEl
	if nfeEl.Tag != "infNFe" {
		infEl = childByTag(nfeEl, "infNFe")
	}
	if infEl == nil {
		return nil, ErrMissingInfNFe
	}

	inv = &Invoice{}

	// Bloco de identificação (ide)
	if ide := childByTag(infEl, "ide"); ide != nil {
		inv.Number = childText(ide, "nNF")
		inv.Series = childText(ide, "serie")
		rawDate := childText(ide, "dhEmi")
		if rawDate == "" {
			rawDate = childText(ide, "dEmi")
		}
		inv.IssueDate = NormalizeDate(rawDate)
	}

	// Chave de acesso: atributo Id do infNFe, sem o prefixo literal "NFe".
	if id := infEl.SelectAttrValue("Id", ""); id != "" {
		inv.AccessKey = strings.TrimPrefix(id, "NFe")
	}

	// Bloco do emitente (emit)
	if emit := childByTag(infEl, "emit"); emit != nil {
		inv.SupplierName = childText(emit, "xNome")
		if inv.SupplierName == "" {
			inv.SupplierName = childText(emit, "xFant")
		}
		inv.SupplierTaxID = childText(emit, "CNPJ")
		if inv.SupplierTaxID == "" {
			inv.SupplierTaxID = childText(emit, "CPF")
		}
		if ender := childByTag(emit, "enderEmit"); ender != nil {
			inv.SupplierAddress = joinAddress(
				childText(ender, "xLgr"),
				childText(ender, "nro"),
				childText(ender, "xBairro"),
				childText(ender, "xMun"),
				childText(ender, "UF"),
				childText(ender, "CEP"),
			)
		}
	}

	// Linhas de produto: um item por det/prod, na ordem do documento.
	for _, det := range infEl.ChildElements() {
		if det.Tag != "det" {
			continue
		}
		prod := childByTag(det, "prod")
		if prod == nil {
			continue
		}
		item := Item{
			ProductName: childText(prod, "xProd"),
			Quantity:    ParseDecimal(childText(prod, "qCom")),
			Unit:        childText(prod, "uCom"),
			UnitPrice:   ParseDecimal(childText(prod, "vUnCom")),
			TotalPrice:  ParseDecimal(childText(prod, "vProd")),
		}
		if item.Unit == "" {
			item.Unit = UnidadePadrao
		}
		// Linha sem nome ou sem quantidade positiva é descartada em silêncio,
		// não é motivo de falha da nota inteira.
		if item.ProductName == "" || !item.Quantity.IsPositive() {
			continue
		}
		// Um preço ausente é derivado do outro.
		if item.UnitPrice.IsZero() && item.TotalPrice.IsPositive() {
			item.UnitPrice = item.TotalPrice.Div(item.Quantity)
		} else if item.TotalPrice.IsZero() && item.UnitPrice.IsPositive() {
			item.TotalPrice = item.UnitPrice.Mul(item.Quantity)
		}
		inv.Items = append(inv.Items, item)
	}

	// Totais (total/ICMSTot). vNF ausente cai para o subtotal, que por sua vez
	// cai para zero.
	if total := childByTag(infEl, "total"); total != nil {
		if icms := childByTag(total, "ICMSTot"); icms != nil {
			inv.Subtotal = ParseDecimal(childText(icms, "vProd"))
			inv.Taxes = ParseDecimal(childText(icms, "vTotTrib"))
			if raw := childText(icms, "vNF"); raw != "" {
				inv.Total = ParseDecimal(raw)
			} else {
				inv.Total = inv.Subtotal
			}
		}
	}

	if inv.Number == "" || inv.SupplierName == "" || len(inv.Items) == 0 {
		return nil, ErrInsufficientData
	}
	return inv, nil
}

// ParseDecimal converte um campo numérico da NF-e trocando vírgula decimal por
// ponto. Valor ilegível vira zero: política de leniência deliberada, já que as
// exportações fiscais variam em completude — não "corrigir" para erro.
func ParseDecimal(s string) decimal.Decimal {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", "."))
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// NormalizeDate normaliza a data de emissão para YYYY-MM-DD.
// dhEmi vem como timestamp ISO-8601 (fica a parte da data); dEmi legado pode
// vir como DD/MM/YYYY (reordenado). Qualquer outro formato passa inalterado —
// quem importa decide se registra a inconsistência.
func NormalizeDate(raw string) string {
	raw = strings.TrimSpace(raw)
	if idx := strings.Index(raw, "T"); idx >= 0 {
		return raw[:idx]
	}
	if strings.Contains(raw, "/") {
		parts := strings.Split(raw, "/")
		if len(parts) == 3 {
			return parts[2] + "-" + parts[1] + "-" + parts[0]
		}
	}
	return raw
}

// charsetReader aceita XML declarado em ISO-8859-1/Latin-1, comum em
// exportações antigas de ERP.
func charsetReader(charset string, input io.Reader) (io.Reader, error) {
	if strings.EqualFold(charset, "ISO-8859-1") || strings.EqualFold(charset, "ISO8859-1") ||
		strings.EqualFold(charset, "latin1") {
		return transform.NewReader(input, charmap.ISO8859_1.NewDecoder()), nil
	}
	return input, nil
}

// childByTag devolve o primeiro filho com o nome local dado: tenta primeiro no
// namespace oficial da NF-e e depois sem namespace. Exportações da SEFAZ usam o
// namespace como default; recortes e ferramentas de terceiros às vezes omitem.
func childByTag(e *etree.Element, tag string) *etree.Element {
	for _, child := range e.ChildElements() {
		if child.Tag == tag && child.NamespaceURI() == Namespace {
			return child
		}
	}
	for _, child := range e.ChildElements() {
		if child.Tag == tag {
			return child
		}
	}
	return nil
}

// childText devolve o texto (trim) do primeiro filho com o nome local dado.
func childText(e *etree.Element, tag string) string {
	child := childByTag(e, tag)
	if child == nil {
		return ""
	}
	return strings.TrimSpace(child.Text())
}

// joinAddress monta o endereço do emitente descartando fragmentos vazios.
func joinAddress(parts ...string) string {
	var kept []string
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, ", ")
}
