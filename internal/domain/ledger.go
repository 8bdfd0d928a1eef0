package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PointsLedgerEntry é um lançamento imutável no extrato de pontos. Lançamentos
// positivos representam pontos ganhos; negativos representam resgates.
// A soma dos lançamentos de um usuário é o seu saldo de pontos
type PointsLedgerEntry struct {
	ID          string    `json:"id"`
	UserID      int       `json:"user_id"`
	DealID      *string   `json:"deal_id,omitempty"`
	Points      int       `json:"points"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// IsEarning retorna verdadeiro se o lançamento representa pontos ganhos.
// Resgates (deltas negativos) não contam para o ranking
func (e *PointsLedgerEntry) IsEarning() bool {
	return e.Points > 0
}

// GoalsLedgerEntry é um lançamento imutável no extrato de metas. O mês/ano de
// atribuição vem da data de fechamento da negociação, nunca da data de
// aprovação, para que vendas retroativas contem no período correto
type GoalsLedgerEntry struct {
	ID             string          `json:"id"`
	UserID         int             `json:"user_id"`
	DealID         string          `json:"deal_id"`
	Goals          decimal.Decimal `json:"goals"`
	Month          int             `json:"month"`
	Year           int             `json:"year"`
	RegionConfigID string          `json:"region_config_id"`
	Description    string          `json:"description"`
	CreatedAt      time.Time       `json:"created_at"`
}

type PointsBalanceResponse struct {
	UserID int `json:"user_id"`
	Points int `json:"points"`
}

type RedeemPointsRequest struct {
	Points      int    `json:"points"`
	Description string `json:"description"`
}
