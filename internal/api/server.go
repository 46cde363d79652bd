package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MHDGouse/Inventory-Backend/internal/api/handler"
	"github.com/MHDGouse/Inventory-Backend/internal/api/handler/router"
	"github.com/MHDGouse/Inventory-Backend/internal/config"
	"github.com/MHDGouse/Inventory-Backend/internal/usecases/analyzing"
	"github.com/MHDGouse/Inventory-Backend/internal/usecases/cataloging"
	"github.com/MHDGouse/Inventory-Backend/internal/usecases/selling"
	"github.com/MHDGouse/Inventory-Backend/internal/usecases/stocking"
	"github.com/MHDGouse/Inventory-Backend/pkg/middleware"
	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
)

type Server struct {
	httpServer *http.Server
}

// Services agrupa as dependências expostas pela API
type Services struct {
	DB         handler.Pinger
	Cataloger  cataloging.Cataloger
	Seller     selling.Seller
	Stocker    stocking.Stocker
	Analyzer   analyzing.Analyzer
	StockAlert StockAlertJob
}

// StockAlertJob é o agendador de alertas, consultado sob demanda e disparado manualmente
type StockAlertJob interface {
	handler.StockReporter
	handler.ManualJob
}

func New(config *config.Config, services Services) (*Server, error) {
	rt := NewRouter(config, services)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           rt,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

// NewRouter monta as rotas com a cadeia de middlewares global
func NewRouter(config *config.Config, services Services) http.Handler {
	cronServices := handler.CronJobServices{}
	if services.StockAlert != nil {
		cronServices.StockAlertService = services.StockAlert
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck(services.DB)...),
		router.WithRoutes(handler.Products(services.Cataloger)...),
		router.WithRoutes(handler.Sales(services.Seller)...),
		router.WithRoutes(handler.Inventory(services.Stocker)...),
		router.WithRoutes(handler.Analytics(services.Analyzer)...),
		router.WithRoutes(handler.Alerts(services.StockAlert)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(config.Cors.AllowedOrigins),
	}

	return alice.New(middlewares...).Then(rt)
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	// Canal para aguardar sinais de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	// Aguardar pelo sinal ou pelo cancelamento do contexto
	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	// Define timeout para desligamento
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	// Log de início do desligamento
	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	logrus.Info("Executando operações de limpeza antes do desligamento")

	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
