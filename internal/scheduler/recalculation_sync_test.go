package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/vfg2006/sales-gamification-api/internal/domain"
)

type stubRecalculationService struct {
	fn func(ctx context.Context) (*domain.RecalculationResult, error)
}

func (s *stubRecalculationService) RecalculateAll(ctx context.Context) (*domain.RecalculationResult, error) {
	return s.fn(ctx)
}

func TestRecalculationSyncService_RunNow(t *testing.T) {
	result := &domain.RecalculationResult{
		UpdatedDeals: 3,
		StartedAt:    time.Now(),
		FinishedAt:   time.Now(),
	}

	service := &RecalculationSyncService{
		recalculation: &stubRecalculationService{
			fn: func(ctx context.Context) (*domain.RecalculationResult, error) {
				return result, nil
			},
		},
		config: RecalculationSyncConfig{CronSchedule: "0 2 * * *", SyncEnabled: true},
	}

	got, err := service.RunNow(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 3, got.UpdatedDeals)

	status := service.Status()
	assert.Equal(t, false, status["running"])
	assert.Equal(t, result, status["last_result"])
	assert.NotNil(t, status["last_started_at"])
	assert.NotNil(t, status["last_completed_at"])
}

func TestRecalculationSyncService_RunNow_RejectsOverlappingExecution(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})

	service := &RecalculationSyncService{
		recalculation: &stubRecalculationService{
			fn: func(ctx context.Context) (*domain.RecalculationResult, error) {
				close(started)
				<-release
				return &domain.RecalculationResult{UpdatedDeals: 1}, nil
			},
		},
		config: RecalculationSyncConfig{CronSchedule: "0 2 * * *", SyncEnabled: true},
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, err := service.RunNow(context.Background())
		assert.NoError(t, err)
	}()

	select {
	case <-started:
	case <-time.After(2 * time.Second):
		t.Fatal("primeira execução não iniciou")
	}

	// Segunda chamada enquanto a primeira ainda executa: rejeitada sem erro
	got, err := service.RunNow(context.Background())
	assert.NoError(t, err)
	assert.Nil(t, got)

	close(release)

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("primeira execução não terminou")
	}
}

func TestRecalculationSyncService_Start_DisabledByConfig(t *testing.T) {
	service := &RecalculationSyncService{
		recalculation: &stubRecalculationService{
			fn: func(ctx context.Context) (*domain.RecalculationResult, error) {
				t.Fatal("recálculo não deveria ser disparado com o cron desabilitado")
				return nil, nil
			},
		},
		config: RecalculationSyncConfig{CronSchedule: "0 2 * * *", SyncEnabled: false},
	}

	err := service.Start(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, false, service.Status()["running"])
}
