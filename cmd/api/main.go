package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-metrics-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-metrics-api/infrastructure/repository"
	"github.com/vfg2006/sales-metrics-api/internal/api"
	"github.com/vfg2006/sales-metrics-api/internal/config"
	"github.com/vfg2006/sales-metrics-api/internal/scheduler"
	"github.com/vfg2006/sales-metrics-api/internal/usecases/authenticating"
	"github.com/vfg2006/sales-metrics-api/internal/usecases/reporting"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// O handle do ledger é criado uma única vez e passado explicitamente
	// a cada repositório; nenhum estado global de conexão
	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	metricsRepo := repository.NewSalesMetricsRepository(pgConn)
	aggregationRepo := repository.NewRevenueAggregationRepository(pgConn)
	rankingRepo := repository.NewRankingRepository(pgConn)
	paymentRepo := repository.NewPaymentAnalysisRepository(pgConn)
	monthlyRepo := repository.NewMonthlyRevenueRepository(pgConn)
	customerRepo := repository.NewCustomerInsightsRepository(pgConn)

	reportService := reporting.NewService(
		metricsRepo,
		aggregationRepo,
		rankingRepo,
		paymentRepo,
		monthlyRepo,
		customerRepo,
	)

	authenticator := authenticating.NewService(cfg)

	dailyReportService := scheduler.NewDailyReportService(reportService, cfg)
	if err := dailyReportService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador do relatório diário")
	} else {
		logrus.Info("Agendador do relatório diário iniciado com sucesso")
	}

	server, err := api.New(cfg, reportService, authenticator)
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
