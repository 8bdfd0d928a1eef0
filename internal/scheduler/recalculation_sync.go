// Package scheduler contém o serviço de agendamento do recálculo de pontos
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-gamification-api/internal/config"
	"github.com/vfg2006/sales-gamification-api/internal/domain"
	"github.com/vfg2006/sales-gamification-api/internal/usecases/recalculating"
)

type RecalculationSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// RecalculationSyncService agenda e dispara o recálculo de pontos. Também
// atende o disparo manual via endpoint administrativo, garantindo uma única
// execução por vez
type RecalculationSyncService struct {
	scheduler           *gocron.Scheduler
	recalculation       recalculating.RecalculationService
	config              RecalculationSyncConfig
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastResult          *domain.RecalculationResult
}

func NewRecalculationSyncService(
	recalculation recalculating.RecalculationService,
	cfg *config.Config,
) *RecalculationSyncService {
	syncConfig := RecalculationSyncConfig{
		CronSchedule: cfg.RecalculationSync.CronSchedule,
		SyncEnabled:  cfg.RecalculationSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"enabled":       syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de recálculo de pontos carregada")

	return &RecalculationSyncService{
		scheduler:     scheduler,
		recalculation: recalculation,
		config:        syncConfig,
	}
}

func (s *RecalculationSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Cron de recálculo de pontos desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de recálculo de pontos")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if _, err := s.RunNow(ctx); err != nil {
			logrus.WithError(err).Error("Erro no recálculo agendado de pontos")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar recálculo de pontos: %w", err)
	}

	s.scheduler.StartAsync()

	// Para o cron quando o contexto da aplicação for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de recálculo de pontos")
		s.scheduler.Stop()
	}()

	return nil
}

// RunNow executa o recálculo imediatamente. Execuções sobrepostas são
// rejeitadas: a segunda chamada retorna sem fazer nada
func (s *RecalculationSyncService) RunNow(ctx context.Context) (*domain.RecalculationResult, error) {
	s.syncMutex.Lock()

	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Warn("Recálculo de pontos já está em execução")
		return nil, nil
	}

	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando recálculo de pontos")

	result, err := s.recalculation.RecalculateAll(ctx)
	if err != nil {
		return nil, err
	}

	s.syncMutex.Lock()
	s.lastResult = result
	s.syncMutex.Unlock()

	return result, nil
}

// Status retorna o estado atual do agendador para o endpoint administrativo
func (s *RecalculationSyncService) Status() map[string]interface{} {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	status := map[string]interface{}{
		"enabled":       s.config.SyncEnabled,
		"cron_schedule": s.config.CronSchedule,
		"running":       s.syncRunning,
	}

	if !s.lastSyncStartedAt.IsZero() {
		status["last_started_at"] = s.lastSyncStartedAt
	}

	if !s.lastSyncCompletedAt.IsZero() {
		status["last_completed_at"] = s.lastSyncCompletedAt
	}

	if s.lastResult != nil {
		status["last_result"] = s.lastResult
	}

	return status
}
