// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import "time"

// RankingEntry é o resumo por usuário produzido pelo motor de ranking.
// Derivado sob demanda, nunca persistido
type RankingEntry struct {
	UserID   int     `json:"user_id"`
	UserName string  `json:"user_name"`
	Points   int     `json:"points"`
	Deals    int     `json:"deals"`
	Score    float64 `json:"score"`
	Position int     `json:"position"` // Posição 1-based; empates recebem posições consecutivas
}

type RankingResponse struct {
	CriteriaID   string         `json:"criteria_id"`
	CriteriaName string         `json:"criteria_name"`
	Ranking      []RankingEntry `json:"ranking"`
	GeneratedAt  time.Time      `json:"generated_at"`
}

// UserDealAggregate é o agregado intermediário do ranking: total de pontos e
// quantidade de negociações aprovadas por usuário
type UserDealAggregate struct {
	UserID    int
	UserName  string
	Region    string
	Category  string
	SubRegion *string
	Segment   *string
	Points    int
	Deals     int
}
