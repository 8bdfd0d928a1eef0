package handler

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-gamification-api/internal/scheduler"
	"github.com/vfg2006/sales-gamification-api/pkg/apiErrors"
)

// RunRecalculation dispara manualmente o recálculo de pontos de todas as negociações
func RunRecalculation(service *scheduler.RecalculationSyncService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunRecalculation")

		if service == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de recálculo não disponível", nil)
			return
		}

		result, err := service.RunNow(r.Context())
		if err != nil {
			logrus.Error("Erro ao executar recálculo:", err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
			return
		}

		// RunNow retorna nil quando já existe uma execução em andamento
		if result == nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusConflict)
			_ = json.NewEncoder(w).Encode(map[string]string{
				"message": "Recálculo já está em execução",
			})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		err = json.NewEncoder(w).Encode(result)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// GetRecalculationStatus retorna o status do job de recálculo
func GetRecalculationStatus(service *scheduler.RecalculationSyncService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if service == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de recálculo não disponível", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(service.Status()); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}
