package entity

import "time"

// Estados de uma mesa.
const (
	TableStatusLivre    = "livre"
	TableStatusOcupada  = "ocupada"
	TableStatusFechando = "fechando" // conta pedida, aguardando pagamento
)

// Table representa uma mesa do salão.
type Table struct {
	ID        string
	Number    int
	Status    string
	OrderID   string // comanda aberta atual; vazio quando livre
	UpdatedAt time.Time
}
