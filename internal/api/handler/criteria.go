package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-gamification-api/internal/domain"
	"github.com/vfg2006/sales-gamification-api/internal/usecases/configuring"
	"github.com/vfg2006/sales-gamification-api/pkg/apiErrors"
)

// ListCriterias lista os critérios de premiação cadastrados
func ListCriterias(service configuring.ConfigService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		criterias, err := service.ListCriterias()
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar critérios de premiação", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		err = json.NewEncoder(w).Encode(criterias)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// CreateCriteria cadastra um novo critério de premiação
func CreateCriteria(service configuring.ConfigService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateCriteria")

		var request *domain.CreateCriteriaRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		criteria, err := service.CreateCriteria(request)
		if err != nil {
			logrus.Error(err)
			writeConfigError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		err = json.NewEncoder(w).Encode(criteria)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// ActivateCriteria ativa um critério de premiação, desativando os demais
func ActivateCriteria(service configuring.ConfigService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ActivateCriteria")

		criteriaID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if criteriaID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do critério não fornecido", nil)
			return
		}

		if err := service.ActivateCriteria(criteriaID); err != nil {
			logrus.Error(err)
			writeConfigError(w, err)
			return
		}

		response := map[string]any{
			"message": "Critério ativado com sucesso",
			"id":      criteriaID,
		}
		json.NewEncoder(w).Encode(response)
	}
}
