package http

import (
	"errors"
	"io"

	"github.com/gofiber/fiber/v2"

	"github.com/comandaki/comanda-api/internal/application/billing"
	"github.com/comandaki/comanda-api/internal/application/dto"
	"github.com/comandaki/comanda-api/internal/domain"
	"github.com/comandaki/comanda-api/internal/domain/nfe"
)

// InvoiceHandler trata a importação e consulta de notas de compra (XML NF-e).
type InvoiceHandler struct {
	uc *billing.ImportInvoiceUseCase
}

// NewInvoiceHandler constrói o handler.
func NewInvoiceHandler(uc *billing.ImportInvoiceUseCase) *InvoiceHandler {
	return &InvoiceHandler{uc: uc}
}

// Import godoc
// @Summary      Importar XML de NF-e de compra
// @Description  Upload multipart do XML. Linhas que casam com insumos existentes entram no estoque automaticamente.
// @Tags         invoices
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Arquivo .xml da NF-e"
// @Success      201   {object}  dto.ImportInvoiceResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/invoices/import [post]
func (h *InvoiceHandler) Import(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_FILE", Message: "campo file (multipart) é obrigatório"})
	}
	if fileHeader.Size > billing.MaxInvoiceFileSize {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "FILE_TOO_LARGE", Message: "arquivo acima de 10 MB"})
	}
	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: "não foi possível ler o arquivo"})
	}
	defer file.Close()
	content, err := io.ReadAll(io.LimitReader(file, billing.MaxInvoiceFileSize+1))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: "não foi possível ler o arquivo"})
	}

	out, err := h.uc.Import(c.UserContext(), GetUserID(c), fileHeader.Filename, content)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		case errors.Is(err, domain.ErrDuplicate):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "nota com essa chave de acesso já foi importada"})
		case isParseError(err):
			// Falha de parse do XML: motivo específico do parser no corpo.
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "INVALID_NFE", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func isParseError(err error) bool {
	return errors.Is(err, nfe.ErrMalformedXML) ||
		errors.Is(err, nfe.ErrMissingNFe) ||
		errors.Is(err, nfe.ErrMissingInfNFe) ||
		errors.Is(err, nfe.ErrInsufficientData)
}

// Get godoc
// @Summary      Obter nota importada com itens
// @Tags         invoices
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID da nota"
// @Success      200  {object}  dto.PurchaseInvoiceResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/invoices/{id} [get]
func (h *InvoiceHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "nota não encontrada"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar notas importadas
// @Tags         invoices
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Limite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {object}  dto.PurchaseInvoiceListResponse
// @Router       /api/invoices [get]
func (h *InvoiceHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.List(limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
