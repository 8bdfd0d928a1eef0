package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-gamification-api/internal/domain"
	"github.com/vfg2006/sales-gamification-api/internal/usecases/dealing"
	"github.com/vfg2006/sales-gamification-api/pkg/apiErrors"
	"github.com/vfg2006/sales-gamification-api/pkg/middleware"
)

// CreateDeal registra uma nova negociação para o vendedor autenticado
func CreateDeal(service dealing.DealService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateDeal")

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		var request *domain.CreateDealRequest

		// Decodificar o corpo da requisição
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		deal, err := service.CreateDeal(userClaims.UserID, request)
		if err != nil {
			logrus.Error(err)
			writeDealError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		err = json.NewEncoder(w).Encode(deal)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// GetDeal retorna uma negociação pelo ID
func GetDeal(service dealing.DealService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dealID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if dealID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da negociação não fornecido", nil)
			return
		}

		deal, err := service.GetDeal(dealID)
		if err != nil {
			logrus.Error(err)
			writeDealError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		err = json.NewEncoder(w).Encode(deal)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// ListDeals lista as negociações. Administradores e supervisores enxergam
// todas, vendedores apenas as próprias.
func ListDeals(service dealing.DealService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		var (
			deals []*domain.Deal
			err   error
		)

		if userClaims.UserRoleID == middleware.RoleSeller {
			deals, err = service.ListDealsByUser(userClaims.UserID)
		} else {
			deals, err = service.ListDeals()
		}
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar negociações", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		err = json.NewEncoder(w).Encode(deals)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// ApproveDeal aprova uma negociação pendente e credita pontos e metas
func ApproveDeal(service dealing.DealService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ApproveDeal")

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		dealID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if dealID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da negociação não fornecido", nil)
			return
		}

		deal, err := service.Approve(r.Context(), dealID, userClaims.UserID)
		if err != nil {
			logrus.Error(err)
			writeDealError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		err = json.NewEncoder(w).Encode(deal)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// RejectDeal rejeita uma negociação e estorna eventuais lançamentos
func RejectDeal(service dealing.DealService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RejectDeal")

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		dealID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if dealID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da negociação não fornecido", nil)
			return
		}

		deal, err := service.Reject(r.Context(), dealID, userClaims.UserID)
		if err != nil {
			logrus.Error(err)
			writeDealError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		err = json.NewEncoder(w).Encode(deal)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// DeleteDeal remove uma negociação e seus lançamentos no razão
func DeleteDeal(service dealing.DealService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - DeleteDeal")

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		dealID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if dealID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da negociação não fornecido", nil)
			return
		}

		if err := service.DeleteDeal(r.Context(), dealID, userClaims.UserID); err != nil {
			logrus.Error(err)
			writeDealError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// GetPointsBalance retorna o saldo de pontos do usuário autenticado
func GetPointsBalance(service dealing.DealService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		balance, err := service.GetBalance(userClaims.UserID)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar saldo de pontos", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		err = json.NewEncoder(w).Encode(balance)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// RedeemPoints debita pontos do saldo do usuário autenticado
func RedeemPoints(service dealing.DealService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RedeemPoints")

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		var request *domain.RedeemPointsRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		if err := service.RedeemPoints(r.Context(), userClaims.UserID, request); err != nil {
			logrus.Error(err)
			writeDealError(w, err)
			return
		}

		response := map[string]any{
			"message": "Pontos resgatados com sucesso",
			"points":  request.Points,
		}

		w.Header().Set("Content-Type", "application/json")
		err := json.NewEncoder(w).Encode(response)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// writeDealError traduz erros do caso de uso de negociações para a resposta HTTP
func writeDealError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, dealing.ErrDealNotFound):
		apiErrors.WriteError(w, apiErrors.ErrDealNotFound, "Negociação não encontrada", nil)
	case errors.Is(err, dealing.ErrUserNotFound):
		apiErrors.WriteError(w, apiErrors.ErrUserNotFound, "Vendedor não encontrado", nil)
	case errors.Is(err, dealing.ErrInvalidDealType),
		errors.Is(err, dealing.ErrInvalidDealValue),
		errors.Is(err, dealing.ErrInvalidCloseDate),
		errors.Is(err, dealing.ErrInvalidRedeemAmount):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)
	case errors.Is(err, dealing.ErrInsufficientPoints):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Saldo de pontos insuficiente", nil)
	default:
		var dealErr *dealing.DealError
		if errors.As(err, &dealErr) {
			apiErrors.WriteError(w, dealErr.Code, dealErr.Details, nil)
			return
		}

		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao processar negociação", nil)
	}
}
