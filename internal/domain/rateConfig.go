package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegionConfig define as taxas de conversão de valor de venda em metas para a
// tupla (região, categoria, subcategoria). A subcategoria é opcional: uma
// configuração com subcategoria nula só atende usuários sem sub-região
type RegionConfig struct {
	ID                  string          `json:"id"`
	Region              string          `json:"region"`
	Category            string          `json:"category"`
	Subcategory         *string         `json:"subcategory"`
	NewCustomerGoalRate decimal.Decimal `json:"new_customer_goal_rate"`
	RenewalGoalRate     decimal.Decimal `json:"renewal_goal_rate"`
	MonthlyGoalTarget   decimal.Decimal `json:"monthly_goal_target"`
	Active              bool            `json:"active"`
	CreatedAt           time.Time       `json:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at"`
}

// PointsConfig define as taxas de conversão de valor de venda em pontos por
// região (reais por ponto). No máximo uma configuração ativa por região
type PointsConfig struct {
	ID              string          `json:"id"`
	Region          string          `json:"region"`
	NewCustomerRate decimal.Decimal `json:"new_customer_rate"`
	RenewalRate     decimal.Decimal `json:"renewal_rate"`
	Active          bool            `json:"active"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

type UpsertRegionConfigRequest struct {
	ID                  *string         `json:"id"`
	Region              string          `json:"region"`
	Category            string          `json:"category"`
	Subcategory         *string         `json:"subcategory"`
	NewCustomerGoalRate decimal.Decimal `json:"new_customer_goal_rate"`
	RenewalGoalRate     decimal.Decimal `json:"renewal_goal_rate"`
	MonthlyGoalTarget   decimal.Decimal `json:"monthly_goal_target"`
	Active              *bool           `json:"active"`
}

type UpsertPointsConfigRequest struct {
	ID              *string         `json:"id"`
	Region          string          `json:"region"`
	NewCustomerRate decimal.Decimal `json:"new_customer_rate"`
	RenewalRate     decimal.Decimal `json:"renewal_rate"`
	Active          *bool           `json:"active"`
}
