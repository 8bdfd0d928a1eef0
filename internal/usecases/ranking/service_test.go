package ranking

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/sales-gamification-api/infrastructure/repository"
	"github.com/vfg2006/sales-gamification-api/infrastructure/repository/mocks"
	"github.com/vfg2006/sales-gamification-api/internal/domain"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func newTestService(t *testing.T) (*Service, *mocks.MockGrandPrizeCriteriaRepository, *mocks.MockDealRepository, *mocks.MockLedgerRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	criteriaRepo := mocks.NewMockGrandPrizeCriteriaRepository(ctrl)
	dealRepo := mocks.NewMockDealRepository(ctrl)
	ledgerRepo := mocks.NewMockLedgerRepository(ctrl)

	service := &Service{
		criteriaRepo: criteriaRepo,
		dealRepo:     dealRepo,
		ledgerRepo:   ledgerRepo,
	}

	return service, criteriaRepo, dealRepo, ledgerRepo
}

func aggregate(userID int, name, region string, points, deals int) *domain.UserDealAggregate {
	return &domain.UserDealAggregate{
		UserID:   userID,
		UserName: name,
		Region:   region,
		Category: "novo",
		Points:   points,
		Deals:    deals,
	}
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name       string
		criteria   *domain.GrandPrizeCriteria
		aggregates []*domain.UserDealAggregate
		setup      func(ledgerRepo *mocks.MockLedgerRepository)
		validate   func(t *testing.T, entries []domain.RankingEntry)
	}{
		{
			name:     "Critério por pontos ordena decrescente com posições consecutivas",
			criteria: &domain.GrandPrizeCriteria{ID: "GP0001", Type: domain.CriteriaTypePoints},
			aggregates: []*domain.UserDealAggregate{
				aggregate(1, "Ana", "Sul", 120, 3),
				aggregate(2, "Bruno", "Sul", 300, 1),
				aggregate(3, "Carla", "Sul", 80, 5),
			},
			validate: func(t *testing.T, entries []domain.RankingEntry) {
				assert.Len(t, entries, 3)
				assert.Equal(t, 2, entries[0].UserID)
				assert.Equal(t, 1, entries[0].Position)
				assert.Equal(t, 300.0, entries[0].Score)
				assert.Equal(t, 1, entries[1].UserID)
				assert.Equal(t, 2, entries[1].Position)
				assert.Equal(t, 3, entries[2].UserID)
				assert.Equal(t, 3, entries[2].Position)
			},
		},
		{
			name:     "Empate em pontuação mantém a ordem de entrada com posições distintas",
			criteria: &domain.GrandPrizeCriteria{ID: "GP0001", Type: domain.CriteriaTypePoints},
			aggregates: []*domain.UserDealAggregate{
				aggregate(1, "Ana", "Sul", 200, 3),
				aggregate(2, "Bruno", "Sul", 200, 1),
				aggregate(3, "Carla", "Sul", 150, 5),
			},
			validate: func(t *testing.T, entries []domain.RankingEntry) {
				assert.Len(t, entries, 3)
				assert.Equal(t, 1, entries[0].UserID)
				assert.Equal(t, 1, entries[0].Position)
				assert.Equal(t, 2, entries[1].UserID)
				assert.Equal(t, 2, entries[1].Position)
				assert.Equal(t, entries[0].Score, entries[1].Score)
				assert.Equal(t, 3, entries[2].Position)
			},
		},
		{
			name: "Critério combinado pondera pontos e negociações",
			criteria: &domain.GrandPrizeCriteria{
				ID:           "GP0002",
				Type:         domain.CriteriaTypeCombined,
				PointsWeight: 60,
				DealsWeight:  40,
			},
			aggregates: []*domain.UserDealAggregate{
				aggregate(1, "Ana", "Sul", 100, 10),
			},
			validate: func(t *testing.T, entries []domain.RankingEntry) {
				assert.Len(t, entries, 1)
				// 100*0.6 + 10*0.4
				assert.Equal(t, 64.0, entries[0].Score)
				assert.Equal(t, 100, entries[0].Points)
				assert.Equal(t, 10, entries[0].Deals)
			},
		},
		{
			name:     "Critério por negociações ignora os pontos na ordenação",
			criteria: &domain.GrandPrizeCriteria{ID: "GP0003", Type: domain.CriteriaTypeDeals},
			aggregates: []*domain.UserDealAggregate{
				aggregate(1, "Ana", "Sul", 500, 2),
				aggregate(2, "Bruno", "Sul", 100, 7),
			},
			validate: func(t *testing.T, entries []domain.RankingEntry) {
				assert.Equal(t, 2, entries[0].UserID)
				assert.Equal(t, 7.0, entries[0].Score)
				assert.Equal(t, 1, entries[1].UserID)
			},
		},
		{
			name: "Piso de pontos exclui quem fica abaixo do mínimo",
			criteria: &domain.GrandPrizeCriteria{
				ID:        "GP0004",
				Type:      domain.CriteriaTypePoints,
				MinPoints: intPtr(500),
			},
			aggregates: []*domain.UserDealAggregate{
				aggregate(1, "Ana", "Sul", 499, 3),
				aggregate(2, "Bruno", "Sul", 500, 1),
			},
			validate: func(t *testing.T, entries []domain.RankingEntry) {
				assert.Len(t, entries, 1)
				assert.Equal(t, 2, entries[0].UserID)
			},
		},
		{
			name: "Filtro de região restringe e o sentinela all não restringe",
			criteria: &domain.GrandPrizeCriteria{
				ID:       "GP0005",
				Type:     domain.CriteriaTypePoints,
				Region:   strPtr("Sul"),
				Category: strPtr(domain.FilterAll),
			},
			aggregates: []*domain.UserDealAggregate{
				aggregate(1, "Ana", "Sul", 100, 1),
				aggregate(2, "Bruno", "Norte", 300, 2),
			},
			validate: func(t *testing.T, entries []domain.RankingEntry) {
				assert.Len(t, entries, 1)
				assert.Equal(t, 1, entries[0].UserID)
			},
		},
		{
			name: "Filtro de segmento exclui usuário sem segmento definido",
			criteria: &domain.GrandPrizeCriteria{
				ID:      "GP0006",
				Type:    domain.CriteriaTypePoints,
				Segment: strPtr("varejo"),
			},
			aggregates: []*domain.UserDealAggregate{
				{UserID: 1, UserName: "Ana", Region: "Sul", Category: "novo", Segment: strPtr("varejo"), Points: 50, Deals: 1},
				{UserID: 2, UserName: "Bruno", Region: "Sul", Category: "novo", Segment: nil, Points: 400, Deals: 2},
				{UserID: 3, UserName: "Carla", Region: "Sul", Category: "novo", Segment: strPtr("corporativo"), Points: 200, Deals: 1},
			},
			validate: func(t *testing.T, entries []domain.RankingEntry) {
				assert.Len(t, entries, 1)
				assert.Equal(t, 1, entries[0].UserID)
			},
		},
		{
			name: "Critério top_goals pontua pela soma de metas do extrato",
			criteria: &domain.GrandPrizeCriteria{
				ID:   "GP0007",
				Type: domain.CriteriaTypeTopGoals,
			},
			aggregates: []*domain.UserDealAggregate{
				aggregate(1, "Ana", "Sul", 500, 2),
				aggregate(2, "Bruno", "Sul", 100, 7),
			},
			setup: func(ledgerRepo *mocks.MockLedgerRepository) {
				ledgerRepo.EXPECT().
					SumGoalsByUser(gomock.Any(), gomock.Any()).
					Return([]*repository.UserGoalsSum{
						{UserID: 1, Goals: decimal.NewFromFloat(33.33)},
						{UserID: 2, Goals: decimal.NewFromFloat(80)},
					}, nil)
			},
			validate: func(t *testing.T, entries []domain.RankingEntry) {
				assert.Equal(t, 2, entries[0].UserID)
				assert.Equal(t, 80.0, entries[0].Score)
				assert.Equal(t, 1, entries[1].UserID)
				assert.Equal(t, 33.33, entries[1].Score)
			},
		},
		{
			name:       "Nenhum elegível produz lista vazia, não erro",
			criteria:   &domain.GrandPrizeCriteria{ID: "GP0008", Type: domain.CriteriaTypePoints},
			aggregates: []*domain.UserDealAggregate{},
			validate: func(t *testing.T, entries []domain.RankingEntry) {
				assert.NotNil(t, entries)
				assert.Len(t, entries, 0)
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			service, _, dealRepo, ledgerRepo := newTestService(t)

			dealRepo.EXPECT().
				AggregateApprovedByUser(test.criteria.StartDate, test.criteria.EndDate).
				Return(test.aggregates, nil)

			if test.setup != nil {
				test.setup(ledgerRepo)
			}

			entries, err := service.Evaluate(test.criteria)

			assert.NoError(t, err)
			test.validate(t, entries)
		})
	}
}

func TestGetRanking(t *testing.T) {
	t.Run("Critério inexistente retorna erro específico", func(t *testing.T) {
		service, criteriaRepo, _, _ := newTestService(t)

		criteriaRepo.EXPECT().GetCriteriaByID("GP9999").Return(nil, nil)

		response, err := service.GetRanking("GP9999")

		assert.Nil(t, response)
		assert.ErrorIs(t, err, ErrCriteriaNotFound)
	})

	t.Run("Critério existente produz ranking identificado", func(t *testing.T) {
		service, criteriaRepo, dealRepo, _ := newTestService(t)

		criteria := &domain.GrandPrizeCriteria{
			ID:   "GP0001",
			Name: "Campanha do trimestre",
			Type: domain.CriteriaTypePoints,
		}

		criteriaRepo.EXPECT().GetCriteriaByID("GP0001").Return(criteria, nil)
		dealRepo.EXPECT().
			AggregateApprovedByUser(gomock.Any(), gomock.Any()).
			Return([]*domain.UserDealAggregate{aggregate(1, "Ana", "Sul", 100, 1)}, nil)

		response, err := service.GetRanking("GP0001")

		assert.NoError(t, err)
		assert.Equal(t, "GP0001", response.CriteriaID)
		assert.Equal(t, "Campanha do trimestre", response.CriteriaName)
		assert.Len(t, response.Ranking, 1)
		assert.False(t, response.GeneratedAt.IsZero())
	})
}

func TestGetActiveRanking(t *testing.T) {
	t.Run("Sem critério ativo retorna erro específico", func(t *testing.T) {
		service, criteriaRepo, _, _ := newTestService(t)

		criteriaRepo.EXPECT().GetActiveCriteria().Return(nil, nil)

		response, err := service.GetActiveRanking()

		assert.Nil(t, response)
		assert.ErrorIs(t, err, ErrNoActiveCriteria)
	})

	t.Run("Critério ativo produz o ranking corrente", func(t *testing.T) {
		service, criteriaRepo, dealRepo, _ := newTestService(t)

		criteria := &domain.GrandPrizeCriteria{
			ID:     "GP0002",
			Name:   "Prêmio anual",
			Type:   domain.CriteriaTypeDeals,
			Active: true,
		}

		criteriaRepo.EXPECT().GetActiveCriteria().Return(criteria, nil)
		dealRepo.EXPECT().
			AggregateApprovedByUser(gomock.Any(), gomock.Any()).
			Return([]*domain.UserDealAggregate{aggregate(2, "Bruno", "Norte", 40, 4)}, nil)

		response, err := service.GetActiveRanking()

		assert.NoError(t, err)
		assert.Equal(t, "GP0002", response.CriteriaID)
		assert.Equal(t, 4.0, response.Ranking[0].Score)
	})
}
