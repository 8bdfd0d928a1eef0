package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de negociação
const (
	DealTypeNewCustomer = "new_customer"
	DealTypeRenewal     = "renewal"
)

// Status possíveis de uma negociação
const (
	DealStatusPending  = "pending"
	DealStatusApproved = "approved"
	DealStatusRejected = "rejected"
)

// Deal representa uma venda registrada por um vendedor, sujeita à aprovação
// administrativa antes de gerar pontos e metas
type Deal struct {
	ID           string          `json:"id"`
	UserID       int             `json:"user_id"`
	Type         string          `json:"type"`
	Value        decimal.Decimal `json:"value"`
	Status       string          `json:"status"`
	PointsEarned int             `json:"points_earned"`
	GoalsEarned  decimal.Decimal `json:"goals_earned"`
	ApproverID   *int            `json:"approver_id,omitempty"`
	ApprovedAt   *time.Time      `json:"approved_at,omitempty"`
	CloseDate    time.Time       `json:"close_date"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// IsApproved retorna verdadeiro se a negociação já foi aprovada
func (d *Deal) IsApproved() bool {
	return d.Status == DealStatusApproved
}

type CreateDealRequest struct {
	Type      string          `json:"type"`
	Value     decimal.Decimal `json:"value"`
	CloseDate string          `json:"close_date"` // Formato yyyy-mm-dd
}

type DealDecisionResponse struct {
	Deal    *Deal  `json:"deal"`
	Message string `json:"message"`
}
