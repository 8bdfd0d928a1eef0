package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-gamification-api/internal/domain"
	"github.com/vfg2006/sales-gamification-api/internal/usecases/configuring"
	"github.com/vfg2006/sales-gamification-api/pkg/apiErrors"
)

// ListRegionConfigs lista as configurações de metas por região e categoria
func ListRegionConfigs(service configuring.ConfigService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		configs, err := service.ListRegionConfigs()
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar configurações de metas", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		err = json.NewEncoder(w).Encode(configs)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// UpsertRegionConfig cria ou atualiza uma configuração de metas
func UpsertRegionConfig(service configuring.ConfigService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpsertRegionConfig")

		var request *domain.UpsertRegionConfigRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		config, err := service.UpsertRegionConfig(request)
		if err != nil {
			logrus.Error(err)
			writeConfigError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		err = json.NewEncoder(w).Encode(config)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// ListPointsConfigs lista as configurações de taxa de pontos por região
func ListPointsConfigs(service configuring.ConfigService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		configs, err := service.ListPointsConfigs()
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar configurações de pontos", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		err = json.NewEncoder(w).Encode(configs)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// UpsertPointsConfig cria ou atualiza a taxa de pontos de uma região
func UpsertPointsConfig(service configuring.ConfigService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpsertPointsConfig")

		var request *domain.UpsertPointsConfigRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		config, err := service.UpsertPointsConfig(request)
		if err != nil {
			logrus.Error(err)
			writeConfigError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		err = json.NewEncoder(w).Encode(config)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

func writeConfigError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, configuring.ErrRegionRequired),
		errors.Is(err, configuring.ErrCategoryRequired),
		errors.Is(err, configuring.ErrNameRequired),
		errors.Is(err, configuring.ErrInvalidRate),
		errors.Is(err, configuring.ErrInvalidCriteriaType),
		errors.Is(err, configuring.ErrInvalidWeightSplit),
		errors.Is(err, configuring.ErrInvalidDateWindow):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)
	case errors.Is(err, configuring.ErrCriteriaNotFound):
		apiErrors.WriteError(w, apiErrors.ErrCriteriaNotFound, "Critério de premiação não encontrado", nil)
	default:
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao salvar configuração", nil)
	}
}
