package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/MHDGouse/Inventory-Backend/infrastructure/repository"
	"github.com/MHDGouse/Inventory-Backend/internal/config"
	"github.com/MHDGouse/Inventory-Backend/internal/domain"
	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
)

// StockAlertConfig representa a configuração do agendador de alertas de estoque
type StockAlertConfig struct {
	CronSchedule      string
	LowStockThreshold float64
	ExpiryWindowDays  int
	Enabled           bool
}

// StockAlertService verifica periodicamente produtos com estoque baixo ou perto do vencimento
type StockAlertService struct {
	scheduler           *gocron.Scheduler
	config              StockAlertConfig
	productRepo         repository.ProductRepository
	now                 func() time.Time
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastReport          *domain.StockAlertReport
}

func NewStockAlertService(productRepo repository.ProductRepository, appConfig *config.Config) *StockAlertService {
	alertConfig := StockAlertConfig{
		CronSchedule:      appConfig.StockAlert.CronSchedule,
		LowStockThreshold: appConfig.StockAlert.LowStockThreshold,
		ExpiryWindowDays:  appConfig.StockAlert.ExpiryWindowDays,
		Enabled:           appConfig.StockAlert.Enabled,
	}

	location := appConfig.Analytics.Location
	if location == nil {
		location = time.Local
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule":       alertConfig.CronSchedule,
		"low_stock_threshold": alertConfig.LowStockThreshold,
		"expiry_window_days":  alertConfig.ExpiryWindowDays,
		"alert_enabled":       alertConfig.Enabled,
	}).Info("Configuração do agendador de alertas de estoque carregada")

	return &StockAlertService{
		scheduler:   gocron.NewScheduler(location),
		config:      alertConfig,
		productRepo: productRepo,
		now:         time.Now,
	}
}

// Start inicia o agendador
func (s *StockAlertService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Alertas de estoque desabilitados por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de alertas de estoque")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.checkStock(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar alertas de estoque: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de alertas de estoque")
		s.scheduler.Stop()
	}()

	return nil
}

// BuildReport consulta os produtos candidatos e classifica o motivo de cada alerta
func (s *StockAlertService) BuildReport(ctx context.Context) (*domain.StockAlertReport, error) {
	now := s.now()
	expiresBefore := now.AddDate(0, 0, s.config.ExpiryWindowDays)

	products, err := s.productRepo.ListStockAlertCandidates(ctx, s.config.LowStockThreshold, expiresBefore)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar produtos para alerta de estoque: %w", err)
	}

	report := &domain.StockAlertReport{
		GeneratedAt:       now,
		LowStockThreshold: s.config.LowStockThreshold,
		ExpiryWindowDays:  s.config.ExpiryWindowDays,
		Alerts:            make([]*domain.StockAlert, 0, len(products)),
	}

	for _, product := range products {
		reasons := classifyProduct(product, s.config.LowStockThreshold, now, expiresBefore)
		if len(reasons) == 0 {
			continue
		}

		report.Alerts = append(report.Alerts, &domain.StockAlert{
			ProductID:  product.ID,
			Name:       product.Name,
			Category:   product.Category,
			Quantity:   product.Quantity,
			ExpiryDate: product.ExpiryDate,
			Reasons:    reasons,
		})
	}

	return report, nil
}

func classifyProduct(product *domain.Product, threshold float64, now, expiresBefore time.Time) []domain.StockAlertReason {
	reasons := make([]domain.StockAlertReason, 0, 2)

	if product.Quantity <= threshold {
		reasons = append(reasons, domain.AlertLowStock)
	}

	if product.ExpiryDate != nil {
		switch {
		case product.ExpiryDate.Before(now):
			reasons = append(reasons, domain.AlertExpired)
		case !product.ExpiryDate.After(expiresBefore):
			reasons = append(reasons, domain.AlertExpiring)
		}
	}

	return reasons
}

func (s *StockAlertService) checkStock(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Verificação de estoque já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = s.now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	report, err := s.BuildReport(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro ao gerar relatório de alertas de estoque")
		return
	}

	for _, alert := range report.Alerts {
		logrus.WithFields(logrus.Fields{
			"product_id":   alert.ProductID,
			"product_name": alert.Name,
			"quantity":     alert.Quantity,
			"reasons":      alert.Reasons,
		}).Warn("Produto requer atenção no estoque")
	}

	s.syncMutex.Lock()
	s.lastReport = report
	s.lastSyncCompletedAt = s.now()
	s.syncMutex.Unlock()

	logrus.WithField("alerts", len(report.Alerts)).Info("Verificação de estoque concluída")
}

// TriggerManualSync dispara a verificação fora do horário agendado
func (s *StockAlertService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Verificação de estoque já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando verificação manual de estoque")
	go s.checkStock(context.Background())
}

// GetStatus retorna o status atual do agendador
func (s *StockAlertService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	lastAlerts := 0
	if s.lastReport != nil {
		lastAlerts = len(s.lastReport.Alerts)
	}

	return map[string]any{
		"sync_enabled":           s.config.Enabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"low_stock_threshold":    s.config.LowStockThreshold,
		"expiry_window_days":     s.config.ExpiryWindowDays,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_alert_count":       lastAlerts,
	}
}
