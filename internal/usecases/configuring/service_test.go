package configuring

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/sales-gamification-api/infrastructure/repository/mocks"
	"github.com/vfg2006/sales-gamification-api/internal/domain"
)

func strPtr(s string) *string { return &s }

func newTestService(t *testing.T) (*Service, *mocks.MockRateConfigRepository, *mocks.MockGrandPrizeCriteriaRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	rateConfigRepo := mocks.NewMockRateConfigRepository(ctrl)
	criteriaRepo := mocks.NewMockGrandPrizeCriteriaRepository(ctrl)

	service := &Service{
		rateConfigRepo: rateConfigRepo,
		criteriaRepo:   criteriaRepo,
	}

	return service, rateConfigRepo, criteriaRepo
}

func TestUpsertRegionConfig(t *testing.T) {
	tests := []struct {
		name        string
		request     *domain.UpsertRegionConfigRequest
		setup       func(rateConfigRepo *mocks.MockRateConfigRepository)
		expectedErr error
		validate    func(t *testing.T, cfg *domain.RegionConfig)
	}{
		{
			name: "Configuração válida é persistida ativa com identificador gerado",
			request: &domain.UpsertRegionConfigRequest{
				Region:              "Sudeste",
				Category:            "novo",
				NewCustomerGoalRate: decimal.NewFromInt(2000),
				RenewalGoalRate:     decimal.NewFromInt(2500),
				MonthlyGoalTarget:   decimal.NewFromInt(100),
			},
			setup: func(rateConfigRepo *mocks.MockRateConfigRepository) {
				rateConfigRepo.EXPECT().
					UpsertRegionConfig(gomock.Any()).
					DoAndReturn(func(cfg *domain.RegionConfig) error {
						assert.NotEmpty(t, cfg.ID)
						assert.True(t, cfg.Active)
						return nil
					})
			},
			validate: func(t *testing.T, cfg *domain.RegionConfig) {
				assert.Equal(t, "Sudeste", cfg.Region)
				assert.Len(t, cfg.ID, 6)
			},
		},
		{
			name: "Identificador informado é reaproveitado na atualização",
			request: &domain.UpsertRegionConfigRequest{
				ID:                  strPtr("RC0001"),
				Region:              "Sul",
				Category:            "renovacao",
				NewCustomerGoalRate: decimal.NewFromInt(1800),
				RenewalGoalRate:     decimal.NewFromInt(2200),
			},
			setup: func(rateConfigRepo *mocks.MockRateConfigRepository) {
				rateConfigRepo.EXPECT().UpsertRegionConfig(gomock.Any()).Return(nil)
			},
			validate: func(t *testing.T, cfg *domain.RegionConfig) {
				assert.Equal(t, "RC0001", cfg.ID)
			},
		},
		{
			name: "Região ausente é rejeitada",
			request: &domain.UpsertRegionConfigRequest{
				Category:            "novo",
				NewCustomerGoalRate: decimal.NewFromInt(2000),
				RenewalGoalRate:     decimal.NewFromInt(2500),
			},
			expectedErr: ErrRegionRequired,
		},
		{
			name: "Categoria ausente é rejeitada",
			request: &domain.UpsertRegionConfigRequest{
				Region:              "Sul",
				NewCustomerGoalRate: decimal.NewFromInt(2000),
				RenewalGoalRate:     decimal.NewFromInt(2500),
			},
			expectedErr: ErrCategoryRequired,
		},
		{
			name: "Taxa zerada é rejeitada",
			request: &domain.UpsertRegionConfigRequest{
				Region:              "Sul",
				Category:            "novo",
				NewCustomerGoalRate: decimal.Zero,
				RenewalGoalRate:     decimal.NewFromInt(2500),
			},
			expectedErr: ErrInvalidRate,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			service, rateConfigRepo, _ := newTestService(t)

			if test.setup != nil {
				test.setup(rateConfigRepo)
			}

			cfg, err := service.UpsertRegionConfig(test.request)

			if test.expectedErr != nil {
				assert.ErrorIs(t, err, test.expectedErr)
				assert.Nil(t, cfg)
				return
			}

			assert.NoError(t, err)
			test.validate(t, cfg)
		})
	}
}

func TestUpsertPointsConfig(t *testing.T) {
	t.Run("Configuração válida é persistida", func(t *testing.T) {
		service, rateConfigRepo, _ := newTestService(t)

		rateConfigRepo.EXPECT().
			UpsertPointsConfig(gomock.Any()).
			DoAndReturn(func(cfg *domain.PointsConfig) error {
				assert.Equal(t, "Nordeste", cfg.Region)
				assert.True(t, cfg.NewCustomerRate.Equal(decimal.NewFromInt(1000)))
				assert.True(t, cfg.Active)
				return nil
			})

		cfg, err := service.UpsertPointsConfig(&domain.UpsertPointsConfigRequest{
			Region:          "Nordeste",
			NewCustomerRate: decimal.NewFromInt(1000),
			RenewalRate:     decimal.NewFromInt(1200),
		})

		assert.NoError(t, err)
		assert.Len(t, cfg.ID, 6)
	})

	t.Run("Flag de ativação explícita desativa a configuração", func(t *testing.T) {
		service, rateConfigRepo, _ := newTestService(t)

		inactive := false
		rateConfigRepo.EXPECT().
			UpsertPointsConfig(gomock.Any()).
			DoAndReturn(func(cfg *domain.PointsConfig) error {
				assert.False(t, cfg.Active)
				return nil
			})

		_, err := service.UpsertPointsConfig(&domain.UpsertPointsConfigRequest{
			Region:          "Nordeste",
			NewCustomerRate: decimal.NewFromInt(1000),
			RenewalRate:     decimal.NewFromInt(1200),
			Active:          &inactive,
		})

		assert.NoError(t, err)
	})

	t.Run("Taxa negativa é rejeitada", func(t *testing.T) {
		service, _, _ := newTestService(t)

		cfg, err := service.UpsertPointsConfig(&domain.UpsertPointsConfigRequest{
			Region:          "Nordeste",
			NewCustomerRate: decimal.NewFromInt(-10),
			RenewalRate:     decimal.NewFromInt(1200),
		})

		assert.ErrorIs(t, err, ErrInvalidRate)
		assert.Nil(t, cfg)
	})
}

func TestCreateCriteria(t *testing.T) {
	tests := []struct {
		name        string
		request     *domain.CreateCriteriaRequest
		setup       func(criteriaRepo *mocks.MockGrandPrizeCriteriaRepository)
		expectedErr error
		validate    func(t *testing.T, criteria *domain.GrandPrizeCriteria)
	}{
		{
			name: "Critério combinado com pesos somando 100 é aceito",
			request: &domain.CreateCriteriaRequest{
				Name:         "Campanha do trimestre",
				Type:         domain.CriteriaTypeCombined,
				PointsWeight: 60,
				DealsWeight:  40,
				StartDate:    strPtr("2026-01-01"),
				EndDate:      strPtr("2026-03-31"),
			},
			setup: func(criteriaRepo *mocks.MockGrandPrizeCriteriaRepository) {
				criteriaRepo.EXPECT().CreateCriteria(gomock.Any()).Return(nil)
			},
			validate: func(t *testing.T, criteria *domain.GrandPrizeCriteria) {
				assert.Len(t, criteria.ID, 6)
				assert.Equal(t, 60, criteria.PointsWeight)
				assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), *criteria.StartDate)
				assert.Equal(t, time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC), *criteria.EndDate)
			},
		},
		{
			name: "Critério sem janela de datas é aceito",
			request: &domain.CreateCriteriaRequest{
				Name: "Prêmio anual",
				Type: domain.CriteriaTypePoints,
			},
			setup: func(criteriaRepo *mocks.MockGrandPrizeCriteriaRepository) {
				criteriaRepo.EXPECT().CreateCriteria(gomock.Any()).Return(nil)
			},
			validate: func(t *testing.T, criteria *domain.GrandPrizeCriteria) {
				assert.Nil(t, criteria.StartDate)
				assert.Nil(t, criteria.EndDate)
			},
		},
		{
			name: "Nome ausente é rejeitado",
			request: &domain.CreateCriteriaRequest{
				Type: domain.CriteriaTypePoints,
			},
			expectedErr: ErrNameRequired,
		},
		{
			name: "Tipo desconhecido é rejeitado",
			request: &domain.CreateCriteriaRequest{
				Name: "Campanha",
				Type: "revenue",
			},
			expectedErr: ErrInvalidCriteriaType,
		},
		{
			name: "Pesos que não somam 100 são rejeitados no tipo combinado",
			request: &domain.CreateCriteriaRequest{
				Name:         "Campanha",
				Type:         domain.CriteriaTypeCombined,
				PointsWeight: 70,
				DealsWeight:  40,
			},
			expectedErr: ErrInvalidWeightSplit,
		},
		{
			name: "Data final anterior à inicial é rejeitada",
			request: &domain.CreateCriteriaRequest{
				Name:      "Campanha",
				Type:      domain.CriteriaTypePoints,
				StartDate: strPtr("2026-03-01"),
				EndDate:   strPtr("2026-01-01"),
			},
			expectedErr: ErrInvalidDateWindow,
		},
		{
			name: "Data fora do formato yyyy-mm-dd é rejeitada",
			request: &domain.CreateCriteriaRequest{
				Name:      "Campanha",
				Type:      domain.CriteriaTypePoints,
				StartDate: strPtr("01/03/2026"),
			},
			expectedErr: ErrInvalidDateWindow,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			service, _, criteriaRepo := newTestService(t)

			if test.setup != nil {
				test.setup(criteriaRepo)
			}

			criteria, err := service.CreateCriteria(test.request)

			if test.expectedErr != nil {
				assert.ErrorIs(t, err, test.expectedErr)
				assert.Nil(t, criteria)
				return
			}

			assert.NoError(t, err)
			test.validate(t, criteria)
		})
	}
}

func TestActivateCriteria(t *testing.T) {
	t.Run("Critério existente é ativado", func(t *testing.T) {
		service, _, criteriaRepo := newTestService(t)

		gomock.InOrder(
			criteriaRepo.EXPECT().
				GetCriteriaByID("GP0001").
				Return(&domain.GrandPrizeCriteria{ID: "GP0001"}, nil),
			criteriaRepo.EXPECT().ActivateCriteria("GP0001").Return(nil),
		)

		err := service.ActivateCriteria("GP0001")

		assert.NoError(t, err)
	})

	t.Run("Critério inexistente retorna erro específico", func(t *testing.T) {
		service, _, criteriaRepo := newTestService(t)

		criteriaRepo.EXPECT().GetCriteriaByID("GP9999").Return(nil, nil)

		err := service.ActivateCriteria("GP9999")

		assert.ErrorIs(t, err, ErrCriteriaNotFound)
	})
}
