package domain

import "time"

// RecalculationResult resume uma execução do recálculo de pontos: quantas
// negociações foram atualizadas e os erros individuais coletados. Uma falha
// em uma negociação não interrompe o processamento das demais
type RecalculationResult struct {
	UpdatedDeals int       `json:"updated_deals"`
	Errors       []string  `json:"errors"`
	StartedAt    time.Time `json:"started_at"`
	FinishedAt   time.Time `json:"finished_at"`
}
