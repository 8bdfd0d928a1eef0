package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-gamification-api/infrastructure/audit"
	"github.com/vfg2006/sales-gamification-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-gamification-api/infrastructure/notifier"
	"github.com/vfg2006/sales-gamification-api/infrastructure/repository"
	"github.com/vfg2006/sales-gamification-api/internal/api"
	"github.com/vfg2006/sales-gamification-api/internal/config"
	"github.com/vfg2006/sales-gamification-api/internal/scheduler"
	"github.com/vfg2006/sales-gamification-api/internal/usecases/authenticating"
	"github.com/vfg2006/sales-gamification-api/internal/usecases/configuring"
	"github.com/vfg2006/sales-gamification-api/internal/usecases/dealing"
	"github.com/vfg2006/sales-gamification-api/internal/usecases/ranking"
	"github.com/vfg2006/sales-gamification-api/internal/usecases/recalculating"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	userRepo := repository.NewUserRepository(pgConn)
	dealRepo := repository.NewDealRepository(pgConn)
	ledgerRepo := repository.NewLedgerRepository(pgConn)
	rateConfigRepo := repository.NewRateConfigRepository(pgConn)
	criteriaRepo := repository.NewGrandPrizeCriteriaRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)

	notifierService := notifier.NewLogNotifier()
	auditor := audit.NewPostgresRecorder(pgConn)

	dealService := dealing.NewService(
		pgConn,
		dealRepo,
		ledgerRepo,
		rateConfigRepo,
		userRepo,
		notifierService,
		auditor,
	)

	rankingService := ranking.NewService(criteriaRepo, dealRepo, ledgerRepo)

	configService := configuring.NewService(rateConfigRepo, criteriaRepo)

	recalculationService := recalculating.NewService(
		pgConn,
		dealRepo,
		ledgerRepo,
		rateConfigRepo,
		userRepo,
	)

	// Inicializa o agendador de recálculo de pontos
	recalculationSyncService := scheduler.NewRecalculationSyncService(recalculationService, cfg)

	if err := recalculationSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de recálculo de pontos")
	} else {
		logrus.Info("Agendador de recálculo de pontos iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		dealService,
		rankingService,
		configService,
		authenticator,
		recalculationSyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
