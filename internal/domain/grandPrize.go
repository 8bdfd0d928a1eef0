package domain

import "time"

// Tipos de critério de premiação
const (
	CriteriaTypePoints   = "points"
	CriteriaTypeDeals    = "deals"
	CriteriaTypeCombined = "combined"
	CriteriaTypeTopGoals = "top_goals"
)

// FilterAll é o valor sentinela que desativa um filtro do critério
const FilterAll = "all"

// GrandPrizeCriteria define quem concorre ao prêmio principal e como os
// concorrentes são pontuados. No máximo um critério pode estar ativo no
// sistema; a ativação de um novo desativa os demais na camada de dados
type GrandPrizeCriteria struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Type         string     `json:"type"`
	Region       *string    `json:"region"`
	Segment      *string    `json:"segment"`
	Category     *string    `json:"category"`
	SubRegion    *string    `json:"sub_region"`
	MinPoints    *int       `json:"min_points"`
	MinDeals     *int       `json:"min_deals"`
	PointsWeight int        `json:"points_weight"`
	DealsWeight  int        `json:"deals_weight"`
	StartDate    *time.Time `json:"start_date"`
	EndDate      *time.Time `json:"end_date"`
	Active       bool       `json:"active"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

type CreateCriteriaRequest struct {
	Name         string  `json:"name"`
	Type         string  `json:"type"`
	Region       *string `json:"region"`
	Segment      *string `json:"segment"`
	Category     *string `json:"category"`
	SubRegion    *string `json:"sub_region"`
	MinPoints    *int    `json:"min_points"`
	MinDeals     *int    `json:"min_deals"`
	PointsWeight int     `json:"points_weight"`
	DealsWeight  int     `json:"deals_weight"`
	StartDate    *string `json:"start_date"` // Formato yyyy-mm-dd
	EndDate      *string `json:"end_date"`   // Formato yyyy-mm-dd
	Active       bool    `json:"active"`
}
