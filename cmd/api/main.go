package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/MHDGouse/Inventory-Backend/infrastructure/database/postgres"
	"github.com/MHDGouse/Inventory-Backend/infrastructure/repository"
	"github.com/MHDGouse/Inventory-Backend/internal/api"
	"github.com/MHDGouse/Inventory-Backend/internal/config"
	"github.com/MHDGouse/Inventory-Backend/internal/scheduler"
	"github.com/MHDGouse/Inventory-Backend/internal/usecases/analyzing"
	"github.com/MHDGouse/Inventory-Backend/internal/usecases/cataloging"
	"github.com/MHDGouse/Inventory-Backend/internal/usecases/selling"
	"github.com/MHDGouse/Inventory-Backend/internal/usecases/stocking"
	"github.com/sirupsen/logrus"
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

	productRepo := repository.NewProductRepository(pgConn)
	saleRepo := repository.NewSaleRepository(pgConn)
	inventoryRepo := repository.NewInventoryRepository(pgConn)

	stockAlertService := scheduler.NewStockAlertService(productRepo, cfg)
	if err := stockAlertService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de alertas de estoque")
	} else {
		logrus.Info("Agendador de alertas de estoque iniciado com sucesso")
	}

	server, err := api.New(cfg, api.Services{
		DB:         pgConn,
		Cataloger:  cataloging.NewService(productRepo),
		Seller:     selling.NewService(saleRepo, productRepo, cfg),
		Stocker:    stocking.NewService(inventoryRepo, productRepo),
		Analyzer:   analyzing.NewService(saleRepo, cfg),
		StockAlert: stockAlertService,
	})
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})

	// O diretório do fonte pode não existir no binário implantado
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		return
	}
	if err := os.Chdir(path.Dir(file)); err != nil {
		logrus.WithError(err).Debug("Mantendo o diretório de trabalho atual")
	}
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
