// Package ranking implementa o motor de ranking: agrega os extratos e as
// negociações aprovadas, aplica os filtros do critério de premiação e produz
// a lista ordenada de concorrentes
package ranking

import (
	"sort"
	"time"

	"github.com/vfg2006/sales-gamification-api/infrastructure/repository"
	"github.com/vfg2006/sales-gamification-api/internal/domain"
	"github.com/vfg2006/sales-gamification-api/pkg/utils"
)

type RankingService interface {
	GetRanking(criteriaID string) (*domain.RankingResponse, error)
	GetActiveRanking() (*domain.RankingResponse, error)
	Evaluate(criteria *domain.GrandPrizeCriteria) ([]domain.RankingEntry, error)
}

type Service struct {
	criteriaRepo repository.GrandPrizeCriteriaRepository
	dealRepo     repository.DealRepository
	ledgerRepo   repository.LedgerRepository
}

func NewService(
	criteriaRepo repository.GrandPrizeCriteriaRepository,
	dealRepo repository.DealRepository,
	ledgerRepo repository.LedgerRepository,
) RankingService {
	return &Service{
		criteriaRepo: criteriaRepo,
		dealRepo:     dealRepo,
		ledgerRepo:   ledgerRepo,
	}
}

func (s *Service) GetRanking(criteriaID string) (*domain.RankingResponse, error) {
	criteria, err := s.criteriaRepo.GetCriteriaByID(criteriaID)
	if err != nil {
		return nil, err
	}

	if criteria == nil {
		return nil, ErrCriteriaNotFound
	}

	return s.buildResponse(criteria)
}

func (s *Service) GetActiveRanking() (*domain.RankingResponse, error) {
	criteria, err := s.criteriaRepo.GetActiveCriteria()
	if err != nil {
		return nil, err
	}

	if criteria == nil {
		return nil, ErrNoActiveCriteria
	}

	return s.buildResponse(criteria)
}

func (s *Service) buildResponse(criteria *domain.GrandPrizeCriteria) (*domain.RankingResponse, error) {
	entries, err := s.Evaluate(criteria)
	if err != nil {
		return nil, err
	}

	return &domain.RankingResponse{
		CriteriaID:   criteria.ID,
		CriteriaName: criteria.Name,
		Ranking:      entries,
		GeneratedAt:  time.Now(),
	}, nil
}

// Evaluate produz o ranking para o critério: agrega, filtra, pontua e ordena.
// Um critério sem nenhum usuário elegível produz lista vazia, não erro
func (s *Service) Evaluate(criteria *domain.GrandPrizeCriteria) ([]domain.RankingEntry, error) {
	aggregates, err := s.dealRepo.AggregateApprovedByUser(criteria.StartDate, criteria.EndDate)
	if err != nil {
		return nil, err
	}

	eligible := make([]*domain.UserDealAggregate, 0, len(aggregates))
	for _, agg := range aggregates {
		if s.matchesCriteria(agg, criteria) {
			eligible = append(eligible, agg)
		}
	}

	scores, err := s.scoreAggregates(eligible, criteria)
	if err != nil {
		return nil, err
	}

	// Ordenação estável por pontuação decrescente. Empates NÃO são colapsados:
	// pontuações iguais recebem posições consecutivas distintas, na ordem
	// estável de entrada
	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].rawScore > scores[j].rawScore
	})

	entries := make([]domain.RankingEntry, 0, len(scores))
	for i, sc := range scores {
		entries = append(entries, domain.RankingEntry{
			UserID:   sc.aggregate.UserID,
			UserName: sc.aggregate.UserName,
			Points:   sc.aggregate.Points,
			Deals:    sc.aggregate.Deals,
			Score:    utils.RoundWithTwoDecimalPlace(sc.rawScore),
			Position: i + 1,
		})
	}

	return entries, nil
}

type scoredAggregate struct {
	aggregate *domain.UserDealAggregate
	rawScore  float64
}

func (s *Service) scoreAggregates(aggregates []*domain.UserDealAggregate, criteria *domain.GrandPrizeCriteria) ([]*scoredAggregate, error) {
	var goalsByUser map[int]float64

	if criteria.Type == domain.CriteriaTypeTopGoals {
		sums, err := s.ledgerRepo.SumGoalsByUser(criteria.StartDate, criteria.EndDate)
		if err != nil {
			return nil, err
		}

		goalsByUser = make(map[int]float64, len(sums))
		for _, sum := range sums {
			goalsByUser[sum.UserID] = sum.Goals.InexactFloat64()
		}
	}

	scores := make([]*scoredAggregate, 0, len(aggregates))
	for _, agg := range aggregates {
		scores = append(scores, &scoredAggregate{
			aggregate: agg,
			rawScore:  scoreFor(agg, criteria, goalsByUser),
		})
	}

	return scores, nil
}

// scoreFor aplica a função de pontuação do critério. Para o tipo combined os
// pesos são usados como estão: a validação de que somam 100 acontece na
// criação do critério, não aqui
func scoreFor(agg *domain.UserDealAggregate, criteria *domain.GrandPrizeCriteria, goalsByUser map[int]float64) float64 {
	switch criteria.Type {
	case domain.CriteriaTypeDeals:
		return float64(agg.Deals)
	case domain.CriteriaTypeCombined:
		return float64(agg.Points)*float64(criteria.PointsWeight)/100 +
			float64(agg.Deals)*float64(criteria.DealsWeight)/100
	case domain.CriteriaTypeTopGoals:
		return goalsByUser[agg.UserID]
	default:
		return float64(agg.Points)
	}
}

// matchesCriteria aplica os filtros do critério como predicados independentes
// combinados com E lógico. Filtro ausente ou com o sentinela "all" não
// restringe
func (s *Service) matchesCriteria(agg *domain.UserDealAggregate, criteria *domain.GrandPrizeCriteria) bool {
	if !filterMatches(criteria.Region, agg.Region) {
		return false
	}

	if !filterMatches(criteria.Category, agg.Category) {
		return false
	}

	if !optionalFilterMatches(criteria.Segment, agg.Segment) {
		return false
	}

	if !optionalFilterMatches(criteria.SubRegion, agg.SubRegion) {
		return false
	}

	if criteria.MinPoints != nil && agg.Points < *criteria.MinPoints {
		return false
	}

	if criteria.MinDeals != nil && agg.Deals < *criteria.MinDeals {
		return false
	}

	return true
}

func filterMatches(filter *string, value string) bool {
	if filter == nil || *filter == "" || *filter == domain.FilterAll {
		return true
	}

	return *filter == value
}

func optionalFilterMatches(filter *string, value *string) bool {
	if filter == nil || *filter == "" || *filter == domain.FilterAll {
		return true
	}

	if value == nil {
		return false
	}

	return *filter == *value
}
