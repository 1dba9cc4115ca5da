package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/comandaki/comanda-api/internal/application/dto"
	"github.com/comandaki/comanda-api/internal/domain"
	"github.com/comandaki/comanda-api/internal/domain/entity"
	"github.com/comandaki/comanda-api/internal/domain/repository"
)

// TableUseCase casos de uso de mesas do salão.
type TableUseCase struct {
	tableRepo repository.TableRepository
}

// NewTableUseCase constrói o caso de uso.
func NewTableUseCase(tableRepo repository.TableRepository) *TableUseCase {
	return &TableUseCase{tableRepo: tableRepo}
}

// Create registra uma mesa nova (livre).
func (uc *TableUseCase) Create(number int) (*dto.TableResponse, error) {
	if number <= 0 {
		return nil, domain.ErrInvalidInput
	}
	t := &entity.Table{
		ID:        uuid.New().String(),
		Number:    number,
		Status:    entity.TableStatusLivre,
		UpdatedAt: time.Now(),
	}
	if err := uc.tableRepo.Create(t); err != nil {
		return nil, err
	}
	return toTableResponse(t), nil
}

// List lista todas as mesas com status atual.
func (uc *TableUseCase) List() ([]dto.TableResponse, error) {
	list, err := uc.tableRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.TableResponse, 0, len(list))
	for _, t := range list {
		out = append(out, *toTableResponse(t))
	}
	return out, nil
}

// MarkClosing marca a mesa como "fechando" (conta pedida).
func (uc *TableUseCase) MarkClosing(id string) error {
	t, err := uc.tableRepo.GetByID(id)
	if err != nil {
		return err
	}
	if t == nil {
		return domain.ErrNotFound
	}
	if t.Status != entity.TableStatusOcupada {
		return domain.ErrConflict
	}
	return uc.tableRepo.UpdateStatus(id, entity.TableStatusFechando, t.OrderID)
}

func toTableResponse(t *entity.Table) *dto.TableResponse {
	return &dto.TableResponse{
		ID:      t.ID,
		Number:  t.Number,
		Status:  t.Status,
		OrderID: t.OrderID,
	}
}
