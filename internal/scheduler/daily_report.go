// Package scheduler agenda o relatório diário de KPIs registrado em log.
// O job é somente leitura: nada é materializado ou cacheado, cada
// execução recalcula as métricas do estado corrente do ledger.
package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-metrics-api/internal/config"
	"github.com/vfg2006/sales-metrics-api/internal/usecases/reporting"
)

// DailyReportConfig representa a configuração do agendador do relatório diário
type DailyReportConfig struct {
	CronSchedule string
	Enabled      bool
}

// DailyReportService gerencia o agendamento e execução do relatório diário
type DailyReportService struct {
	scheduler     *gocron.Scheduler
	config        DailyReportConfig
	reportService reporting.Reporter
	runMutex      sync.Mutex
	lastRunAt     time.Time
}

// NewDailyReportService cria uma nova instância do serviço de relatório diário
func NewDailyReportService(
	reportService reporting.Reporter,
	appConfig *config.Config,
) *DailyReportService {
	reportConfig := DailyReportConfig{
		CronSchedule: appConfig.DailyReport.CronSchedule,
		Enabled:      appConfig.DailyReport.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": reportConfig.CronSchedule,
		"enabled":       reportConfig.Enabled,
	}).Info("Configuração do agendador do relatório diário carregada")

	return &DailyReportService{
		scheduler:     scheduler,
		config:        reportConfig,
		reportService: reportService,
	}
}

// Start inicia o agendador
func (s *DailyReportService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Agendador do relatório diário desabilitado por configuração")
		return nil
	}

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.RunOnce()
	})
	if err != nil {
		return err
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		s.scheduler.Stop()
	}()

	return nil
}

// RunOnce executa o relatório imediatamente. Usado pelo cron e
// disponível para execução manual.
func (s *DailyReportService) RunOnce() {
	s.runMutex.Lock()
	defer s.runMutex.Unlock()

	startTime := time.Now()

	overview, err := s.reportService.Overview()
	if err != nil {
		logrus.WithError(err).Error("Erro ao montar o relatório diário")
		return
	}

	variation, err := s.reportService.MonthlyVariation()
	if err != nil {
		logrus.WithError(err).Error("Erro ao calcular a variação mensal do relatório diário")
		return
	}

	fields := logrus.Fields{
		"total_revenue":     overview.TotalRevenue,
		"quantity_sold":     overview.QuantitySold,
		"average_ticket":    overview.AverageTicket,
		"customer_count":    overview.CustomerCount,
		"top_product":       overview.TopProduct,
		"preferred_payment": overview.PreferredPayment,
		"peak_weekday":      overview.PeakWeekday,
		"peak_hour":         overview.PeakHour,
		"current_month":     variation.CurrentMonth,
		"previous_month":    variation.PreviousMonth,
		"duration":          time.Since(startTime).String(),
	}

	if variation.Variation != nil {
		fields["variation_percent"] = *variation.Variation
	} else {
		fields["undefined_growth"] = variation.UndefinedGrowth
	}

	logrus.WithFields(fields).Info("Relatório diário de vendas")

	s.lastRunAt = startTime
}

// LastRunAt retorna o horário da última execução concluída
func (s *DailyReportService) LastRunAt() time.Time {
	s.runMutex.Lock()
	defer s.runMutex.Unlock()
	return s.lastRunAt
}
