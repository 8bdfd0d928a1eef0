// Package dealing orquestra o ciclo de vida das negociações: criação,
// aprovação, rejeição e os lançamentos de pontos e metas decorrentes
package dealing

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-gamification-api/infrastructure/audit"
	"github.com/vfg2006/sales-gamification-api/infrastructure/notifier"
	"github.com/vfg2006/sales-gamification-api/infrastructure/repository"
	"github.com/vfg2006/sales-gamification-api/internal/domain"
	"github.com/vfg2006/sales-gamification-api/internal/usecases/accruing"
	"github.com/vfg2006/sales-gamification-api/pkg/apiErrors"
	"github.com/vfg2006/sales-gamification-api/pkg/utils"
)

// TxRunner executa uma função dentro de uma transação do banco.
// Implementado por postgres.Connection
type TxRunner interface {
	RunInTransaction(ctx context.Context, fn func(*sql.Tx) error) error
}

type DealService interface {
	CreateDeal(userID int, request *domain.CreateDealRequest) (*domain.Deal, error)
	GetDeal(dealID string) (*domain.Deal, error)
	ListDeals() ([]*domain.Deal, error)
	ListDealsByUser(userID int) ([]*domain.Deal, error)
	Approve(ctx context.Context, dealID string, approverID int) (*domain.Deal, error)
	Reject(ctx context.Context, dealID string, approverID int) (*domain.Deal, error)
	DeleteDeal(ctx context.Context, dealID string, actorID int) error
	GetBalance(userID int) (*domain.PointsBalanceResponse, error)
	RedeemPoints(ctx context.Context, userID int, request *domain.RedeemPointsRequest) error
}

type Service struct {
	txRunner       TxRunner
	dealRepo       repository.DealRepository
	ledgerRepo     repository.LedgerRepository
	rateConfigRepo repository.RateConfigRepository
	userRepo       repository.UserRepository
	notifier       notifier.Notifier
	auditor        audit.Recorder
}

func NewService(
	txRunner TxRunner,
	dealRepo repository.DealRepository,
	ledgerRepo repository.LedgerRepository,
	rateConfigRepo repository.RateConfigRepository,
	userRepo repository.UserRepository,
	notifierService notifier.Notifier,
	auditor audit.Recorder,
) DealService {
	return &Service{
		txRunner:       txRunner,
		dealRepo:       dealRepo,
		ledgerRepo:     ledgerRepo,
		rateConfigRepo: rateConfigRepo,
		userRepo:       userRepo,
		notifier:       notifierService,
		auditor:        auditor,
	}
}

func (s *Service) CreateDeal(userID int, request *domain.CreateDealRequest) (*domain.Deal, error) {
	if request.Type != domain.DealTypeNewCustomer && request.Type != domain.DealTypeRenewal {
		return nil, NewDealError(ErrInvalidDealType, apiErrors.ErrInvalidFormat, fmt.Sprintf("tipo %q não reconhecido", request.Type))
	}

	if request.Value.LessThanOrEqual(decimal.Zero) {
		return nil, NewDealError(ErrInvalidDealValue, apiErrors.ErrInvalidRequest, "o valor da negociação deve ser maior que zero")
	}

	closeDate, err := utils.ParseDate(request.CloseDate)
	if err != nil || request.CloseDate == "" {
		return nil, NewDealError(ErrInvalidCloseDate, apiErrors.ErrInvalidFormat, "data de fechamento deve estar no formato yyyy-mm-dd")
	}

	dealID, err := utils.GenerateID()
	if err != nil {
		return nil, NewDealError(err, apiErrors.ErrInternalServer, "falha ao gerar identificador da negociação")
	}

	deal := &domain.Deal{
		ID:          dealID,
		UserID:      userID,
		Type:        request.Type,
		Value:       request.Value,
		Status:      domain.DealStatusPending,
		GoalsEarned: decimal.Zero,
		CloseDate:   *closeDate,
	}

	if err := s.dealRepo.CreateDeal(deal); err != nil {
		return nil, NewDealError(err, apiErrors.ErrDatabaseOperation, "falha ao salvar negociação")
	}

	return deal, nil
}

func (s *Service) GetDeal(dealID string) (*domain.Deal, error) {
	deal, err := s.dealRepo.GetDealByID(dealID)
	if err != nil {
		return nil, NewDealError(err, apiErrors.ErrDatabaseOperation, "falha ao buscar negociação")
	}

	if deal == nil {
		return nil, NewDealErrorWithID(ErrDealNotFound, apiErrors.ErrDealNotFound, dealID, "negociação não encontrada")
	}

	return deal, nil
}

func (s *Service) ListDeals() ([]*domain.Deal, error) {
	return s.dealRepo.ListDeals()
}

func (s *Service) ListDealsByUser(userID int) ([]*domain.Deal, error) {
	return s.dealRepo.ListDealsByUser(userID)
}

// Approve aprova a negociação, calcula os acúmulos e grava os lançamentos nos
// extratos. A sequência retrair-e-regravar roda em uma única transação com a
// linha da negociação travada, então reaprovar uma negociação já aprovada não
// duplica lançamentos
func (s *Service) Approve(ctx context.Context, dealID string, approverID int) (*domain.Deal, error) {
	deal, err := s.GetDeal(dealID)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetUserByID(deal.UserID)
	if err != nil {
		return nil, NewDealError(err, apiErrors.ErrDatabaseOperation, "falha ao buscar vendedor da negociação")
	}

	if user == nil {
		return nil, NewDealErrorWithID(ErrUserNotFound, apiErrors.ErrUserNotFound, dealID, "vendedor da negociação não encontrado")
	}

	points, goals, regionConfig, err := s.computeAccrual(deal, user)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	deal.Status = domain.DealStatusApproved
	deal.PointsEarned = points
	deal.GoalsEarned = goals.Round(2)
	deal.ApproverID = &approverID
	deal.ApprovedAt = &now

	err = s.txRunner.RunInTransaction(ctx, func(tx *sql.Tx) error {
		locked, err := s.dealRepo.GetDealForUpdate(tx, dealID)
		if err != nil {
			return err
		}

		if locked == nil {
			return ErrDealNotFound
		}

		// Retrai antes de regravar: o extrato nunca acumula lançamentos
		// duplicados para a mesma negociação
		if err := s.ledgerRepo.DeleteEntriesByDeal(tx, dealID); err != nil {
			return err
		}

		if err := s.dealRepo.UpdateDealDecision(tx, deal); err != nil {
			return err
		}

		return s.recordAccrual(tx, deal, points, goals, regionConfig)
	})
	if err != nil {
		if err == ErrDealNotFound {
			return nil, NewDealErrorWithID(ErrDealNotFound, apiErrors.ErrDealNotFound, dealID, "negociação não encontrada")
		}
		return nil, NewDealErrorWithID(err, apiErrors.ErrDatabaseOperation, dealID, "falha ao aprovar negociação")
	}

	s.notifyAsync(deal.UserID, notifier.KindDealApproved, map[string]interface{}{
		"deal_id": deal.ID,
		"points":  deal.PointsEarned,
		"goals":   deal.GoalsEarned.String(),
	})

	return deal, nil
}

// Reject rejeita a negociação. Nenhum acúmulo é gerado
func (s *Service) Reject(ctx context.Context, dealID string, approverID int) (*domain.Deal, error) {
	deal, err := s.GetDeal(dealID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	deal.Status = domain.DealStatusRejected
	deal.PointsEarned = 0
	deal.GoalsEarned = decimal.Zero
	deal.ApproverID = &approverID
	deal.ApprovedAt = &now

	err = s.txRunner.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if err := s.ledgerRepo.DeleteEntriesByDeal(tx, dealID); err != nil {
			return err
		}

		return s.dealRepo.UpdateDealDecision(tx, deal)
	})
	if err != nil {
		return nil, NewDealErrorWithID(err, apiErrors.ErrDatabaseOperation, dealID, "falha ao rejeitar negociação")
	}

	s.notifyAsync(deal.UserID, notifier.KindDealRejected, map[string]interface{}{
		"deal_id": deal.ID,
	})

	return deal, nil
}

// DeleteDeal exclui a negociação e seus lançamentos, gravando antes o snapshot
// de auditoria. Falha na auditoria não impede a exclusão
func (s *Service) DeleteDeal(ctx context.Context, dealID string, actorID int) error {
	deal, err := s.GetDeal(dealID)
	if err != nil {
		return err
	}

	if err := s.auditor.Record(ctx, audit.Entry{
		Entity:   "deal",
		EntityID: deal.ID,
		Action:   "delete",
		ActorID:  actorID,
		Snapshot: deal,
	}); err != nil {
		logrus.WithError(err).Warn("Erro ao gravar auditoria da exclusão, prosseguindo")
	}

	err = s.txRunner.RunInTransaction(ctx, func(tx *sql.Tx) error {
		return s.ledgerRepo.DeleteEntriesByDeal(tx, dealID)
	})
	if err != nil {
		return NewDealErrorWithID(err, apiErrors.ErrDatabaseOperation, dealID, "falha ao excluir lançamentos da negociação")
	}

	if err := s.dealRepo.DeleteDeal(dealID); err != nil {
		return NewDealErrorWithID(err, apiErrors.ErrDatabaseOperation, dealID, "falha ao excluir negociação")
	}

	return nil
}

func (s *Service) GetBalance(userID int) (*domain.PointsBalanceResponse, error) {
	total, err := s.ledgerRepo.SumPointsByUser(userID)
	if err != nil {
		return nil, NewDealError(err, apiErrors.ErrDatabaseOperation, "falha ao consultar saldo de pontos")
	}

	return &domain.PointsBalanceResponse{
		UserID: userID,
		Points: total,
	}, nil
}

// RedeemPoints registra um resgate como lançamento negativo no extrato de
// pontos, sem referência a negociação. Resgates não contam para o ranking
func (s *Service) RedeemPoints(ctx context.Context, userID int, request *domain.RedeemPointsRequest) error {
	if request.Points <= 0 {
		return NewDealError(ErrInvalidRedeemAmount, apiErrors.ErrInvalidRequest, "a quantidade de pontos deve ser maior que zero")
	}

	balance, err := s.GetBalance(userID)
	if err != nil {
		return err
	}

	if balance.Points < request.Points {
		return NewDealError(ErrInsufficientPoints, apiErrors.ErrInvalidRequest,
			fmt.Sprintf("saldo atual %d, resgate solicitado %d", balance.Points, request.Points))
	}

	entryID, err := utils.GenerateID()
	if err != nil {
		return NewDealError(err, apiErrors.ErrInternalServer, "falha ao gerar identificador do lançamento")
	}

	description := request.Description
	if description == "" {
		description = "Resgate de pontos"
	}

	entry := &domain.PointsLedgerEntry{
		ID:          entryID,
		UserID:      userID,
		Points:      -request.Points,
		Description: description,
	}

	if err := s.ledgerRepo.InsertPointsEntry(nil, entry); err != nil {
		return NewDealError(err, apiErrors.ErrDatabaseOperation, "falha ao registrar resgate")
	}

	s.notifyAsync(userID, notifier.KindPointsRedeemed, map[string]interface{}{
		"points": request.Points,
	})

	return nil
}

// computeAccrual calcula pontos e metas da negociação com a configuração
// vigente. Configuração regional não resolvida não é erro: gera aviso e zero
// metas
func (s *Service) computeAccrual(deal *domain.Deal, user *domain.User) (int, decimal.Decimal, *domain.RegionConfig, error) {
	pointsConfig, err := s.rateConfigRepo.GetActivePointsConfigByRegion(user.Region)
	if err != nil {
		return 0, decimal.Zero, nil, NewDealError(err, apiErrors.ErrDatabaseOperation, "falha ao buscar configuração de pontos")
	}

	if pointsConfig == nil {
		logrus.Warnf("Sem configuração de pontos ativa para a região %q, negociação %s acumula zero pontos", user.Region, deal.ID)
	}

	points := accruing.CalculatePoints(deal.Type, deal.Value, pointsConfig)

	goals := decimal.Zero
	var regionConfig *domain.RegionConfig

	if user.Region != "" && user.Category != "" {
		regionConfigs, err := s.rateConfigRepo.ListActiveRegionConfigs()
		if err != nil {
			return 0, decimal.Zero, nil, NewDealError(err, apiErrors.ErrDatabaseOperation, "falha ao buscar configurações regionais")
		}

		regionConfig = accruing.ResolveRegionConfig(regionConfigs, user.Region, user.Category, user.SubRegion)
		if regionConfig == nil {
			logrus.Warnf("Configuração regional não resolvida para (%s, %s), negociação %s acumula zero metas",
				user.Region, user.Category, deal.ID)
		} else {
			goals = accruing.CalculateGoals(deal.Type, deal.Value, regionConfig)
		}
	}

	return points, goals, regionConfig, nil
}

// recordAccrual grava os lançamentos nos extratos: um de pontos quando há
// pontos e um de metas quando há metas e uma configuração foi resolvida.
// O mês/ano do lançamento de metas vem da data de fechamento da negociação
func (s *Service) recordAccrual(tx *sql.Tx, deal *domain.Deal, points int, goals decimal.Decimal, regionConfig *domain.RegionConfig) error {
	if points > 0 {
		entryID, err := utils.GenerateID()
		if err != nil {
			return err
		}

		entry := &domain.PointsLedgerEntry{
			ID:          entryID,
			UserID:      deal.UserID,
			DealID:      &deal.ID,
			Points:      points,
			Description: fmt.Sprintf("Pontos da negociação %s", deal.ID),
		}

		if err := s.ledgerRepo.InsertPointsEntry(tx, entry); err != nil {
			return err
		}
	}

	if goals.GreaterThan(decimal.Zero) && regionConfig != nil {
		entryID, err := utils.GenerateID()
		if err != nil {
			return err
		}

		entry := &domain.GoalsLedgerEntry{
			ID:             entryID,
			UserID:         deal.UserID,
			DealID:         deal.ID,
			Goals:          goals.Round(2),
			Month:          int(deal.CloseDate.Month()),
			Year:           deal.CloseDate.Year(),
			RegionConfigID: regionConfig.ID,
			Description:    fmt.Sprintf("Metas da negociação %s", deal.ID),
		}

		if err := s.ledgerRepo.InsertGoalsEntry(tx, entry); err != nil {
			return err
		}
	}

	return nil
}

// notifyAsync emite a notificação em background. Falhas são apenas logadas,
// nunca revertem a operação que as originou
func (s *Service) notifyAsync(userID int, kind string, payload map[string]interface{}) {
	go func() {
		if err := s.notifier.Notify(context.Background(), userID, kind, payload); err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"user_id": userID,
				"kind":    kind,
			}).Warn("Erro ao emitir notificação")
		}
	}()
}
