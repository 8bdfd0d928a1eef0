// Package recalculating re-deriva os pontos de todas as negociações a partir
// da configuração de taxas vigente. Usado após uma mudança de taxa, para não
// exigir reaprovação manual de cada negociação
package recalculating

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-gamification-api/infrastructure/repository"
	"github.com/vfg2006/sales-gamification-api/internal/domain"
	"github.com/vfg2006/sales-gamification-api/internal/usecases/accruing"
	"github.com/vfg2006/sales-gamification-api/pkg/utils"
)

// TxRunner executa uma função dentro de uma transação do banco.
// Implementado por postgres.Connection
type TxRunner interface {
	RunInTransaction(ctx context.Context, fn func(*sql.Tx) error) error
}

type RecalculationService interface {
	RecalculateAll(ctx context.Context) (*domain.RecalculationResult, error)
}

type Service struct {
	txRunner       TxRunner
	dealRepo       repository.DealRepository
	ledgerRepo     repository.LedgerRepository
	rateConfigRepo repository.RateConfigRepository
	userRepo       repository.UserRepository
}

func NewService(
	txRunner TxRunner,
	dealRepo repository.DealRepository,
	ledgerRepo repository.LedgerRepository,
	rateConfigRepo repository.RateConfigRepository,
	userRepo repository.UserRepository,
) RecalculationService {
	return &Service{
		txRunner:       txRunner,
		dealRepo:       dealRepo,
		ledgerRepo:     ledgerRepo,
		rateConfigRepo: rateConfigRepo,
		userRepo:       userRepo,
	}
}

// RecalculateAll percorre todas as negociações recomputando os pontos com a
// configuração atual. A operação é idempotente: uma segunda execução sem
// mudança de configuração não altera nada. Cada negociação é processada na
// sua própria transação com lock de linha, então o recálculo pode rodar em
// paralelo com novas aprovações sem tocar lançamentos de outras negociações
func (s *Service) RecalculateAll(ctx context.Context) (*domain.RecalculationResult, error) {
	result := &domain.RecalculationResult{
		Errors:    make([]string, 0),
		StartedAt: time.Now(),
	}

	deals, err := s.dealRepo.ListDeals()
	if err != nil {
		return nil, fmt.Errorf("erro ao listar negociações para recálculo: %w", err)
	}

	pointsConfigByRegion, err := s.loadPointsConfigs()
	if err != nil {
		return nil, err
	}

	userRegions := make(map[int]string)

	for _, deal := range deals {
		region, ok := userRegions[deal.UserID]
		if !ok {
			user, err := s.userRepo.GetUserByID(deal.UserID)
			if err != nil {
				result.Errors = append(result.Errors, fmt.Sprintf("deal %s: erro ao buscar vendedor: %v", deal.ID, err))
				continue
			}
			if user == nil {
				result.Errors = append(result.Errors, fmt.Sprintf("deal %s: vendedor %d não encontrado", deal.ID, deal.UserID))
				continue
			}
			region = user.Region
			userRegions[deal.UserID] = region
		}

		updated, err := s.recalculateDeal(ctx, deal, pointsConfigByRegion[region])
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("deal %s: %v", deal.ID, err))
			continue
		}

		if updated {
			result.UpdatedDeals++
		}
	}

	result.FinishedAt = time.Now()

	logrus.WithFields(logrus.Fields{
		"updated_deals": result.UpdatedDeals,
		"errors":        len(result.Errors),
		"duration":      result.FinishedAt.Sub(result.StartedAt).String(),
	}).Info("Recálculo de pontos concluído")

	return result, nil
}

func (s *Service) loadPointsConfigs() (map[string]*domain.PointsConfig, error) {
	configs, err := s.rateConfigRepo.ListPointsConfigs()
	if err != nil {
		return nil, fmt.Errorf("erro ao listar configurações de pontos: %w", err)
	}

	byRegion := make(map[string]*domain.PointsConfig)
	for _, cfg := range configs {
		if cfg.Active {
			byRegion[cfg.Region] = cfg
		}
	}

	return byRegion, nil
}

// recalculateDeal trata uma única negociação e informa se houve atualização.
// Negociações aprovadas com pontos divergentes têm os lançamentos retraídos e
// regravados; negociações não aprovadas com pontos residuais são zeradas
func (s *Service) recalculateDeal(ctx context.Context, deal *domain.Deal, pointsConfig *domain.PointsConfig) (bool, error) {
	newPoints := accruing.CalculatePoints(deal.Type, deal.Value, pointsConfig)

	if deal.IsApproved() {
		if newPoints == deal.PointsEarned {
			return false, nil
		}

		err := s.txRunner.RunInTransaction(ctx, func(tx *sql.Tx) error {
			locked, err := s.dealRepo.GetDealForUpdate(tx, deal.ID)
			if err != nil {
				return err
			}

			if locked == nil || !locked.IsApproved() {
				// A negociação mudou desde a listagem; a próxima execução trata
				return nil
			}

			if err := s.ledgerRepo.DeletePointsEntriesByDeal(tx, deal.ID); err != nil {
				return err
			}

			if newPoints > 0 {
				entryID, err := utils.GenerateID()
				if err != nil {
					return err
				}

				entry := &domain.PointsLedgerEntry{
					ID:          entryID,
					UserID:      locked.UserID,
					DealID:      &deal.ID,
					Points:      newPoints,
					Description: fmt.Sprintf("Pontos da negociação %s (recálculo)", deal.ID),
				}

				if err := s.ledgerRepo.InsertPointsEntry(tx, entry); err != nil {
					return err
				}
			}

			return s.dealRepo.UpdateDealPoints(tx, deal.ID, newPoints)
		})
		if err != nil {
			return false, err
		}

		return true, nil
	}

	// Não aprovada: pontos residuais de um estado anterior são zerados e os
	// lançamentos órfãos removidos
	if deal.PointsEarned == 0 {
		return false, nil
	}

	err := s.txRunner.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if err := s.ledgerRepo.DeletePointsEntriesByDeal(tx, deal.ID); err != nil {
			return err
		}

		return s.dealRepo.UpdateDealPoints(tx, deal.ID, 0)
	})
	if err != nil {
		return false, err
	}

	return true, nil
}
