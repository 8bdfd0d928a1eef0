package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-gamification-api/internal/usecases/ranking"
	"github.com/vfg2006/sales-gamification-api/pkg/apiErrors"
)

// GetActiveRanking retorna o ranking calculado para o critério de premiação ativo
func GetActiveRanking(service ranking.RankingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response, err := service.GetActiveRanking()
		if err != nil {
			logrus.Error("Erro ao calcular ranking ativo:", err)
			writeRankingError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		err = json.NewEncoder(w).Encode(response)
		if err != nil {
			logrus.Error("Erro ao enviar resposta do ranking:", err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// GetRankingByCriteria retorna o ranking calculado para um critério específico
func GetRankingByCriteria(service ranking.RankingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		criteriaID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if criteriaID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do critério não fornecido", nil)
			return
		}

		response, err := service.GetRanking(criteriaID)
		if err != nil {
			logrus.Error("Erro ao calcular ranking:", err)
			writeRankingError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		err = json.NewEncoder(w).Encode(response)
		if err != nil {
			logrus.Error("Erro ao enviar resposta do ranking:", err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

func writeRankingError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ranking.ErrCriteriaNotFound):
		apiErrors.WriteError(w, apiErrors.ErrCriteriaNotFound, "Critério de premiação não encontrado", nil)
	case errors.Is(err, ranking.ErrNoActiveCriteria):
		apiErrors.WriteError(w, apiErrors.ErrCriteriaNotFound, "Nenhum critério de premiação ativo", nil)
	default:
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao calcular ranking", nil)
	}
}
