// Package configuring trata o CRUD das configurações de taxas e dos critérios
// de premiação. As validações de escrita acontecem aqui, na borda: o motor de
// acúmulo e o ranking assumem que os dados persistidos já passaram por elas
package configuring

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-gamification-api/infrastructure/repository"
	"github.com/vfg2006/sales-gamification-api/internal/domain"
	"github.com/vfg2006/sales-gamification-api/pkg/apiErrors"
	"github.com/vfg2006/sales-gamification-api/pkg/utils"
)

type ConfigService interface {
	ListRegionConfigs() ([]*domain.RegionConfig, error)
	UpsertRegionConfig(request *domain.UpsertRegionConfigRequest) (*domain.RegionConfig, error)
	ListPointsConfigs() ([]*domain.PointsConfig, error)
	UpsertPointsConfig(request *domain.UpsertPointsConfigRequest) (*domain.PointsConfig, error)
	ListCriterias() ([]*domain.GrandPrizeCriteria, error)
	CreateCriteria(request *domain.CreateCriteriaRequest) (*domain.GrandPrizeCriteria, error)
	ActivateCriteria(criteriaID string) error
}

type Service struct {
	rateConfigRepo repository.RateConfigRepository
	criteriaRepo   repository.GrandPrizeCriteriaRepository
}

func NewService(
	rateConfigRepo repository.RateConfigRepository,
	criteriaRepo repository.GrandPrizeCriteriaRepository,
) ConfigService {
	return &Service{
		rateConfigRepo: rateConfigRepo,
		criteriaRepo:   criteriaRepo,
	}
}

func (s *Service) ListRegionConfigs() ([]*domain.RegionConfig, error) {
	return s.rateConfigRepo.ListRegionConfigs()
}

func (s *Service) UpsertRegionConfig(request *domain.UpsertRegionConfigRequest) (*domain.RegionConfig, error) {
	if request.Region == "" {
		return nil, NewConfigError(ErrRegionRequired, apiErrors.ErrMissingRequiredData, "região é obrigatória")
	}

	if request.Category == "" {
		return nil, NewConfigError(ErrCategoryRequired, apiErrors.ErrMissingRequiredData, "categoria é obrigatória")
	}

	if request.NewCustomerGoalRate.LessThanOrEqual(decimal.Zero) || request.RenewalGoalRate.LessThanOrEqual(decimal.Zero) {
		return nil, NewConfigError(ErrInvalidRate, apiErrors.ErrInvalidRequest, "taxas de metas devem ser maiores que zero")
	}

	cfg := &domain.RegionConfig{
		Region:              request.Region,
		Category:            request.Category,
		Subcategory:         request.Subcategory,
		NewCustomerGoalRate: request.NewCustomerGoalRate,
		RenewalGoalRate:     request.RenewalGoalRate,
		MonthlyGoalTarget:   request.MonthlyGoalTarget,
		Active:              true,
	}

	if request.Active != nil {
		cfg.Active = *request.Active
	}

	if request.ID != nil && *request.ID != "" {
		cfg.ID = *request.ID
	} else {
		id, err := utils.GenerateID()
		if err != nil {
			return nil, NewConfigError(err, apiErrors.ErrInternalServer, "falha ao gerar identificador")
		}
		cfg.ID = id
	}

	if err := s.rateConfigRepo.UpsertRegionConfig(cfg); err != nil {
		return nil, NewConfigError(err, apiErrors.ErrDatabaseOperation, "falha ao salvar configuração regional")
	}

	return cfg, nil
}

func (s *Service) ListPointsConfigs() ([]*domain.PointsConfig, error) {
	return s.rateConfigRepo.ListPointsConfigs()
}

func (s *Service) UpsertPointsConfig(request *domain.UpsertPointsConfigRequest) (*domain.PointsConfig, error) {
	if request.Region == "" {
		return nil, NewConfigError(ErrRegionRequired, apiErrors.ErrMissingRequiredData, "região é obrigatória")
	}

	if request.NewCustomerRate.LessThanOrEqual(decimal.Zero) || request.RenewalRate.LessThanOrEqual(decimal.Zero) {
		return nil, NewConfigError(ErrInvalidRate, apiErrors.ErrInvalidRequest, "taxas de pontos devem ser maiores que zero")
	}

	cfg := &domain.PointsConfig{
		Region:          request.Region,
		NewCustomerRate: request.NewCustomerRate,
		RenewalRate:     request.RenewalRate,
		Active:          true,
	}

	if request.Active != nil {
		cfg.Active = *request.Active
	}

	if request.ID != nil && *request.ID != "" {
		cfg.ID = *request.ID
	} else {
		id, err := utils.GenerateID()
		if err != nil {
			return nil, NewConfigError(err, apiErrors.ErrInternalServer, "falha ao gerar identificador")
		}
		cfg.ID = id
	}

	if err := s.rateConfigRepo.UpsertPointsConfig(cfg); err != nil {
		return nil, NewConfigError(err, apiErrors.ErrDatabaseOperation, "falha ao salvar configuração de pontos")
	}

	return cfg, nil
}

func (s *Service) ListCriterias() ([]*domain.GrandPrizeCriteria, error) {
	return s.criteriaRepo.ListCriterias()
}

// CreateCriteria valida e persiste um critério de premiação. A soma dos pesos
// do tipo combined é validada aqui, nunca no motor de ranking, que usa os
// pesos como estão
func (s *Service) CreateCriteria(request *domain.CreateCriteriaRequest) (*domain.GrandPrizeCriteria, error) {
	if request.Name == "" {
		return nil, NewConfigError(ErrNameRequired, apiErrors.ErrMissingRequiredData, "nome do critério é obrigatório")
	}

	switch request.Type {
	case domain.CriteriaTypePoints, domain.CriteriaTypeDeals, domain.CriteriaTypeCombined, domain.CriteriaTypeTopGoals:
	default:
		return nil, NewConfigError(ErrInvalidCriteriaType, apiErrors.ErrInvalidFormat, "tipo deve ser points, deals, combined ou top_goals")
	}

	if request.Type == domain.CriteriaTypeCombined && request.PointsWeight+request.DealsWeight != 100 {
		return nil, NewConfigError(ErrInvalidWeightSplit, apiErrors.ErrInvalidRequest, "pesos de pontos e negociações devem somar 100")
	}

	startDate, err := parseOptionalDate(request.StartDate)
	if err != nil {
		return nil, NewConfigError(ErrInvalidDateWindow, apiErrors.ErrInvalidFormat, "data inicial deve estar no formato yyyy-mm-dd")
	}

	endDate, err := parseOptionalDate(request.EndDate)
	if err != nil {
		return nil, NewConfigError(ErrInvalidDateWindow, apiErrors.ErrInvalidFormat, "data final deve estar no formato yyyy-mm-dd")
	}

	if startDate != nil && endDate != nil && endDate.Before(*startDate) {
		return nil, NewConfigError(ErrInvalidDateWindow, apiErrors.ErrInvalidRequest, "data final anterior à data inicial")
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, NewConfigError(err, apiErrors.ErrInternalServer, "falha ao gerar identificador")
	}

	criteria := &domain.GrandPrizeCriteria{
		ID:           id,
		Name:         request.Name,
		Type:         request.Type,
		Region:       request.Region,
		Segment:      request.Segment,
		Category:     request.Category,
		SubRegion:    request.SubRegion,
		MinPoints:    request.MinPoints,
		MinDeals:     request.MinDeals,
		PointsWeight: request.PointsWeight,
		DealsWeight:  request.DealsWeight,
		StartDate:    startDate,
		EndDate:      endDate,
		Active:       request.Active,
	}

	if err := s.criteriaRepo.CreateCriteria(criteria); err != nil {
		return nil, NewConfigError(err, apiErrors.ErrDatabaseOperation, "falha ao salvar critério")
	}

	return criteria, nil
}

func (s *Service) ActivateCriteria(criteriaID string) error {
	criteria, err := s.criteriaRepo.GetCriteriaByID(criteriaID)
	if err != nil {
		return NewConfigError(err, apiErrors.ErrDatabaseOperation, "falha ao buscar critério")
	}

	if criteria == nil {
		return NewConfigError(ErrCriteriaNotFound, apiErrors.ErrCriteriaNotFound, "critério não encontrado")
	}

	if err := s.criteriaRepo.ActivateCriteria(criteriaID); err != nil {
		return NewConfigError(err, apiErrors.ErrDatabaseOperation, "falha ao ativar critério")
	}

	return nil
}

func parseOptionalDate(value *string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}

	date, err := time.Parse("2006-01-02", *value)
	if err != nil {
		return nil, err
	}

	return &date, nil
}
