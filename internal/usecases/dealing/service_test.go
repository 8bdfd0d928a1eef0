package dealing

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	auditmocks "github.com/vfg2006/sales-gamification-api/infrastructure/audit/mocks"
	notifiermocks "github.com/vfg2006/sales-gamification-api/infrastructure/notifier/mocks"
	"github.com/vfg2006/sales-gamification-api/infrastructure/repository/mocks"
	"github.com/vfg2006/sales-gamification-api/internal/domain"
	"go.uber.org/mock/gomock"
)

// stubTxRunner executa a função da transação diretamente, sem banco
type stubTxRunner struct{}

func (stubTxRunner) RunInTransaction(_ context.Context, fn func(*sql.Tx) error) error {
	return fn(nil)
}

// noopNotifier evita corrida entre a goroutine de notificação e o fim do teste
type noopNotifier struct{}

func (noopNotifier) Notify(context.Context, int, string, map[string]interface{}) error {
	return nil
}

func seller(region, category string, subRegion *string) *domain.User {
	return &domain.User{
		ID:        10,
		Name:      "Maria",
		Region:    region,
		Category:  category,
		SubRegion: subRegion,
		Active:    true,
		RoleID:    3,
	}
}

func pendingDeal(id string, value string) *domain.Deal {
	return &domain.Deal{
		ID:        id,
		UserID:    10,
		Type:      domain.DealTypeNewCustomer,
		Value:     decimal.RequireFromString(value),
		Status:    domain.DealStatusPending,
		CloseDate: time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
	}
}

func activePointsConfig() *domain.PointsConfig {
	return &domain.PointsConfig{
		ID:              "PC0001",
		Region:          "Sudeste",
		NewCustomerRate: decimal.RequireFromString("1000"),
		RenewalRate:     decimal.RequireFromString("1200"),
		Active:          true,
	}
}

func activeRegionConfigs() []*domain.RegionConfig {
	return []*domain.RegionConfig{
		{
			ID:                  "RC0001",
			Region:              "Sudeste",
			Category:            "Varejo",
			NewCustomerGoalRate: decimal.RequireFromString("2000"),
			RenewalGoalRate:     decimal.RequireFromString("2500"),
			Active:              true,
		},
	}
}

func newTestService(ctrl *gomock.Controller) (*Service, *mocks.MockDealRepository, *mocks.MockLedgerRepository, *mocks.MockRateConfigRepository, *mocks.MockUserRepository) {
	dealRepo := mocks.NewMockDealRepository(ctrl)
	ledgerRepo := mocks.NewMockLedgerRepository(ctrl)
	rateConfigRepo := mocks.NewMockRateConfigRepository(ctrl)
	userRepo := mocks.NewMockUserRepository(ctrl)

	service := &Service{
		txRunner:       stubTxRunner{},
		dealRepo:       dealRepo,
		ledgerRepo:     ledgerRepo,
		rateConfigRepo: rateConfigRepo,
		userRepo:       userRepo,
		notifier:       noopNotifier{},
		auditor:        nil,
	}

	return service, dealRepo, ledgerRepo, rateConfigRepo, userRepo
}

func TestCreateDeal(t *testing.T) {
	tests := []struct {
		name     string
		request  *domain.CreateDealRequest
		setup    func(dealRepo *mocks.MockDealRepository)
		wantErr  error
		validate func(t *testing.T, deal *domain.Deal)
	}{
		{
			name: "Negociação válida nasce pendente e sem acúmulos",
			request: &domain.CreateDealRequest{
				Type:      domain.DealTypeNewCustomer,
				Value:     decimal.RequireFromString("50000"),
				CloseDate: "2026-03-15",
			},
			setup: func(dealRepo *mocks.MockDealRepository) {
				dealRepo.EXPECT().CreateDeal(gomock.Any()).Return(nil)
			},
			validate: func(t *testing.T, deal *domain.Deal) {
				assert.Equal(t, domain.DealStatusPending, deal.Status)
				assert.Equal(t, 0, deal.PointsEarned)
				assert.True(t, deal.GoalsEarned.IsZero())
				assert.Len(t, deal.ID, 6)
			},
		},
		{
			name: "Tipo desconhecido é rejeitado",
			request: &domain.CreateDealRequest{
				Type:      "indicacao",
				Value:     decimal.RequireFromString("50000"),
				CloseDate: "2026-03-15",
			},
			wantErr: ErrInvalidDealType,
		},
		{
			name: "Valor zero é rejeitado",
			request: &domain.CreateDealRequest{
				Type:      domain.DealTypeRenewal,
				Value:     decimal.Zero,
				CloseDate: "2026-03-15",
			},
			wantErr: ErrInvalidDealValue,
		},
		{
			name: "Data de fechamento em formato inválido é rejeitada",
			request: &domain.CreateDealRequest{
				Type:      domain.DealTypeRenewal,
				Value:     decimal.RequireFromString("1000"),
				CloseDate: "15/03/2026",
			},
			wantErr: ErrInvalidCloseDate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service, dealRepo, _, _, _ := newTestService(ctrl)
			if tt.setup != nil {
				tt.setup(dealRepo)
			}

			deal, err := service.CreateDeal(10, tt.request)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, deal)
				return
			}

			assert.NoError(t, err)
			tt.validate(t, deal)
		})
	}
}

func TestApprove(t *testing.T) {
	tests := []struct {
		name     string
		dealID   string
		setup    func(dealRepo *mocks.MockDealRepository, ledgerRepo *mocks.MockLedgerRepository, rateConfigRepo *mocks.MockRateConfigRepository, userRepo *mocks.MockUserRepository)
		wantErr  error
		validate func(t *testing.T, deal *domain.Deal)
	}{
		{
			name:   "Aprovação credita pontos e metas com retração prévia",
			dealID: "DL0001",
			setup: func(dealRepo *mocks.MockDealRepository, ledgerRepo *mocks.MockLedgerRepository, rateConfigRepo *mocks.MockRateConfigRepository, userRepo *mocks.MockUserRepository) {
				deal := pendingDeal("DL0001", "160000")

				dealRepo.EXPECT().GetDealByID("DL0001").Return(deal, nil)
				userRepo.EXPECT().GetUserByID(10).Return(seller("Sudeste", "Varejo", nil), nil)
				rateConfigRepo.EXPECT().GetActivePointsConfigByRegion("Sudeste").Return(activePointsConfig(), nil)
				rateConfigRepo.EXPECT().ListActiveRegionConfigs().Return(activeRegionConfigs(), nil)

				gomock.InOrder(
					dealRepo.EXPECT().GetDealForUpdate(gomock.Any(), "DL0001").Return(deal, nil),
					ledgerRepo.EXPECT().DeleteEntriesByDeal(gomock.Any(), "DL0001").Return(nil),
					dealRepo.EXPECT().UpdateDealDecision(gomock.Any(), gomock.Any()).Return(nil),
					ledgerRepo.EXPECT().InsertPointsEntry(gomock.Any(), gomock.Any()).
						DoAndReturn(func(_ *sql.Tx, entry *domain.PointsLedgerEntry) error {
							assert.Equal(t, 160, entry.Points)
							assert.Equal(t, 10, entry.UserID)
							if assert.NotNil(t, entry.DealID) {
								assert.Equal(t, "DL0001", *entry.DealID)
							}
							return nil
						}),
					ledgerRepo.EXPECT().InsertGoalsEntry(gomock.Any(), gomock.Any()).
						DoAndReturn(func(_ *sql.Tx, entry *domain.GoalsLedgerEntry) error {
							assert.True(t, decimal.RequireFromString("80").Equal(entry.Goals))
							assert.Equal(t, 3, entry.Month)
							assert.Equal(t, 2026, entry.Year)
							assert.Equal(t, "RC0001", entry.RegionConfigID)
							return nil
						}),
				)
			},
			validate: func(t *testing.T, deal *domain.Deal) {
				assert.Equal(t, domain.DealStatusApproved, deal.Status)
				assert.Equal(t, 160, deal.PointsEarned)
				assert.True(t, decimal.RequireFromString("80").Equal(deal.GoalsEarned))
				if assert.NotNil(t, deal.ApproverID) {
					assert.Equal(t, 1, *deal.ApproverID)
				}
				assert.NotNil(t, deal.ApprovedAt)
			},
		},
		{
			name:   "Configuração regional não resolvida aprova com zero metas",
			dealID: "DL0002",
			setup: func(dealRepo *mocks.MockDealRepository, ledgerRepo *mocks.MockLedgerRepository, rateConfigRepo *mocks.MockRateConfigRepository, userRepo *mocks.MockUserRepository) {
				deal := pendingDeal("DL0002", "50000")

				dealRepo.EXPECT().GetDealByID("DL0002").Return(deal, nil)
				userRepo.EXPECT().GetUserByID(10).Return(seller("Norte", "Serviços", nil), nil)
				rateConfigRepo.EXPECT().GetActivePointsConfigByRegion("Norte").Return(activePointsConfig(), nil)
				rateConfigRepo.EXPECT().ListActiveRegionConfigs().Return(activeRegionConfigs(), nil)

				dealRepo.EXPECT().GetDealForUpdate(gomock.Any(), "DL0002").Return(deal, nil)
				ledgerRepo.EXPECT().DeleteEntriesByDeal(gomock.Any(), "DL0002").Return(nil)
				dealRepo.EXPECT().UpdateDealDecision(gomock.Any(), gomock.Any()).Return(nil)
				// Apenas o lançamento de pontos é gravado
				ledgerRepo.EXPECT().InsertPointsEntry(gomock.Any(), gomock.Any()).Return(nil)
			},
			validate: func(t *testing.T, deal *domain.Deal) {
				assert.Equal(t, domain.DealStatusApproved, deal.Status)
				assert.Equal(t, 50, deal.PointsEarned)
				assert.True(t, deal.GoalsEarned.IsZero())
			},
		},
		{
			name:   "Sem configuração de pontos ativa aprova com zero pontos e zero metas",
			dealID: "DL0003",
			setup: func(dealRepo *mocks.MockDealRepository, ledgerRepo *mocks.MockLedgerRepository, rateConfigRepo *mocks.MockRateConfigRepository, userRepo *mocks.MockUserRepository) {
				deal := pendingDeal("DL0003", "50000")

				dealRepo.EXPECT().GetDealByID("DL0003").Return(deal, nil)
				userRepo.EXPECT().GetUserByID(10).Return(seller("Norte", "", nil), nil)
				rateConfigRepo.EXPECT().GetActivePointsConfigByRegion("Norte").Return(nil, nil)

				dealRepo.EXPECT().GetDealForUpdate(gomock.Any(), "DL0003").Return(deal, nil)
				ledgerRepo.EXPECT().DeleteEntriesByDeal(gomock.Any(), "DL0003").Return(nil)
				dealRepo.EXPECT().UpdateDealDecision(gomock.Any(), gomock.Any()).Return(nil)
				// Nenhum lançamento é gravado
			},
			validate: func(t *testing.T, deal *domain.Deal) {
				assert.Equal(t, domain.DealStatusApproved, deal.Status)
				assert.Equal(t, 0, deal.PointsEarned)
				assert.True(t, deal.GoalsEarned.IsZero())
			},
		},
		{
			name:   "Negociação inexistente retorna erro",
			dealID: "DL0404",
			setup: func(dealRepo *mocks.MockDealRepository, _ *mocks.MockLedgerRepository, _ *mocks.MockRateConfigRepository, _ *mocks.MockUserRepository) {
				dealRepo.EXPECT().GetDealByID("DL0404").Return(nil, nil)
			},
			wantErr: ErrDealNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service, dealRepo, ledgerRepo, rateConfigRepo, userRepo := newTestService(ctrl)
			tt.setup(dealRepo, ledgerRepo, rateConfigRepo, userRepo)

			deal, err := service.Approve(context.Background(), tt.dealID, 1)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			assert.NoError(t, err)
			tt.validate(t, deal)
		})
	}
}

func TestReject(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, dealRepo, ledgerRepo, _, _ := newTestService(ctrl)

	deal := pendingDeal("DL0005", "50000")
	dealRepo.EXPECT().GetDealByID("DL0005").Return(deal, nil)

	// A rejeição também retrai lançamentos antigos: cobre o caso de uma
	// negociação aprovada ser revertida para rejeitada
	gomock.InOrder(
		ledgerRepo.EXPECT().DeleteEntriesByDeal(gomock.Any(), "DL0005").Return(nil),
		dealRepo.EXPECT().UpdateDealDecision(gomock.Any(), gomock.Any()).Return(nil),
	)

	result, err := service.Reject(context.Background(), "DL0005", 1)
	assert.NoError(t, err)
	assert.Equal(t, domain.DealStatusRejected, result.Status)
	assert.Equal(t, 0, result.PointsEarned)
	assert.True(t, result.GoalsEarned.IsZero())
}

func TestDeleteDeal_RecordsAuditBeforeDeleting(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, dealRepo, ledgerRepo, _, _ := newTestService(ctrl)
	auditor := auditmocks.NewMockRecorder(ctrl)
	service.auditor = auditor

	deal := pendingDeal("DL0006", "50000")
	dealRepo.EXPECT().GetDealByID("DL0006").Return(deal, nil)

	gomock.InOrder(
		auditor.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil),
		ledgerRepo.EXPECT().DeleteEntriesByDeal(gomock.Any(), "DL0006").Return(nil),
		dealRepo.EXPECT().DeleteDeal("DL0006").Return(nil),
	)

	err := service.DeleteDeal(context.Background(), "DL0006", 1)
	assert.NoError(t, err)
}

func TestDeleteDeal_AuditFailureDoesNotBlock(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, dealRepo, ledgerRepo, _, _ := newTestService(ctrl)
	auditor := auditmocks.NewMockRecorder(ctrl)
	service.auditor = auditor

	deal := pendingDeal("DL0007", "50000")
	dealRepo.EXPECT().GetDealByID("DL0007").Return(deal, nil)
	auditor.EXPECT().Record(gomock.Any(), gomock.Any()).Return(assert.AnError)
	ledgerRepo.EXPECT().DeleteEntriesByDeal(gomock.Any(), "DL0007").Return(nil)
	dealRepo.EXPECT().DeleteDeal("DL0007").Return(nil)

	err := service.DeleteDeal(context.Background(), "DL0007", 1)
	assert.NoError(t, err)
}

func TestRedeemPoints(t *testing.T) {
	tests := []struct {
		name    string
		request *domain.RedeemPointsRequest
		setup   func(ledgerRepo *mocks.MockLedgerRepository)
		wantErr error
	}{
		{
			name:    "Resgate dentro do saldo grava lançamento negativo sem negociação",
			request: &domain.RedeemPointsRequest{Points: 200, Description: "Troca por prêmio"},
			setup: func(ledgerRepo *mocks.MockLedgerRepository) {
				ledgerRepo.EXPECT().SumPointsByUser(10).Return(500, nil)
				ledgerRepo.EXPECT().InsertPointsEntry(gomock.Nil(), gomock.Any()).
					DoAndReturn(func(_ *sql.Tx, entry *domain.PointsLedgerEntry) error {
						assert.Equal(t, -200, entry.Points)
						assert.Nil(t, entry.DealID)
						assert.Equal(t, "Troca por prêmio", entry.Description)
						return nil
					})
			},
		},
		{
			name:    "Resgate acima do saldo é rejeitado",
			request: &domain.RedeemPointsRequest{Points: 600},
			setup: func(ledgerRepo *mocks.MockLedgerRepository) {
				ledgerRepo.EXPECT().SumPointsByUser(10).Return(500, nil)
			},
			wantErr: ErrInsufficientPoints,
		},
		{
			name:    "Quantidade não positiva é rejeitada",
			request: &domain.RedeemPointsRequest{Points: 0},
			wantErr: ErrInvalidRedeemAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service, _, ledgerRepo, _, _ := newTestService(ctrl)
			if tt.setup != nil {
				tt.setup(ledgerRepo)
			}

			err := service.RedeemPoints(context.Background(), 10, tt.request)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			assert.NoError(t, err)
		})
	}
}

// A notificação de aprovação é emitida em background e nunca bloqueia a resposta
func TestApprove_EmitsNotification(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, dealRepo, ledgerRepo, rateConfigRepo, userRepo := newTestService(ctrl)

	notified := make(chan struct{})
	mockNotifier := notifiermocks.NewMockNotifier(ctrl)
	mockNotifier.EXPECT().
		Notify(gomock.Any(), 10, "deal_approved", gomock.Any()).
		DoAndReturn(func(context.Context, int, string, map[string]interface{}) error {
			close(notified)
			return nil
		})
	service.notifier = mockNotifier

	deal := pendingDeal("DL0008", "50000")
	dealRepo.EXPECT().GetDealByID("DL0008").Return(deal, nil)
	userRepo.EXPECT().GetUserByID(10).Return(seller("Sudeste", "Varejo", nil), nil)
	rateConfigRepo.EXPECT().GetActivePointsConfigByRegion("Sudeste").Return(activePointsConfig(), nil)
	rateConfigRepo.EXPECT().ListActiveRegionConfigs().Return(activeRegionConfigs(), nil)
	dealRepo.EXPECT().GetDealForUpdate(gomock.Any(), "DL0008").Return(deal, nil)
	ledgerRepo.EXPECT().DeleteEntriesByDeal(gomock.Any(), "DL0008").Return(nil)
	dealRepo.EXPECT().UpdateDealDecision(gomock.Any(), gomock.Any()).Return(nil)
	ledgerRepo.EXPECT().InsertPointsEntry(gomock.Any(), gomock.Any()).Return(nil)
	ledgerRepo.EXPECT().InsertGoalsEntry(gomock.Any(), gomock.Any()).Return(nil)

	_, err := service.Approve(context.Background(), "DL0008", 1)
	assert.NoError(t, err)

	select {
	case <-notified:
	case <-time.After(2 * time.Second):
		t.Fatal("notificação de aprovação não foi emitida")
	}
}

func TestApprove_NotificationFailureDoesNotFailApproval(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, dealRepo, ledgerRepo, rateConfigRepo, userRepo := newTestService(ctrl)

	notified := make(chan struct{})
	mockNotifier := notifiermocks.NewMockNotifier(ctrl)
	mockNotifier.EXPECT().
		Notify(gomock.Any(), 10, "deal_approved", gomock.Any()).
		DoAndReturn(func(context.Context, int, string, map[string]interface{}) error {
			close(notified)
			return assert.AnError
		})
	service.notifier = mockNotifier

	deal := pendingDeal("DL0009", "50000")
	dealRepo.EXPECT().GetDealByID("DL0009").Return(deal, nil)
	userRepo.EXPECT().GetUserByID(10).Return(seller("Sudeste", "Varejo", nil), nil)
	rateConfigRepo.EXPECT().GetActivePointsConfigByRegion("Sudeste").Return(activePointsConfig(), nil)
	rateConfigRepo.EXPECT().ListActiveRegionConfigs().Return(activeRegionConfigs(), nil)
	dealRepo.EXPECT().GetDealForUpdate(gomock.Any(), "DL0009").Return(deal, nil)
	ledgerRepo.EXPECT().DeleteEntriesByDeal(gomock.Any(), "DL0009").Return(nil)
	dealRepo.EXPECT().UpdateDealDecision(gomock.Any(), gomock.Any()).Return(nil)
	ledgerRepo.EXPECT().InsertPointsEntry(gomock.Any(), gomock.Any()).Return(nil)
	ledgerRepo.EXPECT().InsertGoalsEntry(gomock.Any(), gomock.Any()).Return(nil)

	approved, err := service.Approve(context.Background(), "DL0009", 1)

	assert.NoError(t, err)
	assert.Equal(t, domain.DealStatusApproved, approved.Status)

	select {
	case <-notified:
	case <-time.After(2 * time.Second):
		t.Fatal("notificação de aprovação não foi emitida")
	}
}
