package analyzing

import (
	"context"
	"time"

	"github.com/MHDGouse/Inventory-Backend/infrastructure/repository"
	"github.com/MHDGouse/Inventory-Backend/internal/config"
	"github.com/MHDGouse/Inventory-Backend/internal/domain"
	"github.com/MHDGouse/Inventory-Backend/pkg/apiErrors"
	"github.com/MHDGouse/Inventory-Backend/pkg/log"
)

type Analyzer interface {
	Summary(ctx context.Context, filters domain.AnalyticsFilters) (*domain.SummaryMetrics, error)
	ProductAnalytics(ctx context.Context, filters domain.AnalyticsFilters) ([]domain.ProductMetrics, error)
	CategoryAnalytics(ctx context.Context, filters domain.AnalyticsFilters) ([]domain.CategoryMetrics, error)
	TimeSeries(ctx context.Context, period domain.Period, filters domain.AnalyticsFilters) ([]domain.TimeSeriesPoint, error)
	TopPerformingProducts(ctx context.Context, limit int, filters domain.AnalyticsFilters) ([]domain.ProductMetrics, error)
	ProfitTrends(ctx context.Context, filters domain.AnalyticsFilters) (*domain.ProfitTrend, error)
	Compare(ctx context.Context, request domain.ComparisonRequest) (*domain.ComparisonResult, error)
	DefaultTopLimit() int
	Location() *time.Location
}

type Service struct {
	saleRepository repository.SaleRepository
	cfg            config.Analytics
	now            func() time.Time
}

func NewService(saleRepository repository.SaleRepository, cfg *config.Config) Analyzer {
	analyticsCfg := cfg.Analytics
	if analyticsCfg.Location == nil {
		analyticsCfg.Location = time.UTC
	}

	return &Service{
		saleRepository: saleRepository,
		cfg:            analyticsCfg,
		now:            time.Now,
	}
}

func (s *Service) DefaultTopLimit() int {
	return s.cfg.DefaultTopLimit
}

func (s *Service) Location() *time.Location {
	return s.cfg.Location
}

// fetchSales busca as vendas do filtro; requireData transforma conjunto vazio em ErrNoSalesData
func (s *Service) fetchSales(ctx context.Context, filters domain.AnalyticsFilters, requireData bool) ([]*domain.Sale, error) {
	query, err := BuildSalesQuery(filters, s.cfg.Location)
	if err != nil {
		return nil, err
	}

	sales, err := s.saleRepository.FindSales(ctx, query)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao buscar vendas para análise")
		return nil, NewAnalyticsError(ErrFetchSales, apiErrors.ErrDatabaseOperation, err.Error())
	}

	if requireData && len(sales) == 0 {
		return nil, NewAnalyticsError(ErrNoSalesData, apiErrors.ErrResourceNotFound, "")
	}

	return sales, nil
}

func (s *Service) Summary(ctx context.Context, filters domain.AnalyticsFilters) (*domain.SummaryMetrics, error) {
	sales, err := s.fetchSales(ctx, filters, true)
	if err != nil {
		return nil, err
	}

	metrics := CalculateMetrics(sales)
	return &metrics, nil
}

func (s *Service) ProductAnalytics(ctx context.Context, filters domain.AnalyticsFilters) ([]domain.ProductMetrics, error) {
	sales, err := s.fetchSales(ctx, filters, true)
	if err != nil {
		return nil, err
	}

	return GroupByProduct(sales), nil
}

func (s *Service) CategoryAnalytics(ctx context.Context, filters domain.AnalyticsFilters) ([]domain.CategoryMetrics, error) {
	sales, err := s.fetchSales(ctx, filters, true)
	if err != nil {
		return nil, err
	}

	return GroupByCategory(sales), nil
}

func (s *Service) TimeSeries(ctx context.Context, period domain.Period, filters domain.AnalyticsFilters) ([]domain.TimeSeriesPoint, error) {
	if _, err := ParsePeriod(string(period)); err != nil {
		return nil, err
	}

	sales, err := s.fetchSales(ctx, filters, true)
	if err != nil {
		return nil, err
	}

	return GroupByPeriod(sales, period, s.cfg.Location), nil
}

func (s *Service) TopPerformingProducts(ctx context.Context, limit int, filters domain.AnalyticsFilters) ([]domain.ProductMetrics, error) {
	if limit <= 0 {
		return nil, NewAnalyticsError(ErrInvalidLimit, apiErrors.ErrInvalidRequest, "limit deve ser um inteiro positivo")
	}

	sales, err := s.fetchSales(ctx, filters, true)
	if err != nil {
		return nil, err
	}

	return TopProducts(sales, limit), nil
}

// ProfitTrends compara o lucro do período atual com o período anterior derivado
func (s *Service) ProfitTrends(ctx context.Context, filters domain.AnalyticsFilters) (*domain.ProfitTrend, error) {
	if err := validateFilters(filters); err != nil {
		return nil, err
	}

	periods := ComparisonPeriods(filters, s.now(), s.cfg.ComparisonWindowDays, s.cfg.Location)

	current, previous, err := s.periodMetrics(ctx, periods)
	if err != nil {
		return nil, err
	}

	return &domain.ProfitTrend{
		CurrentPeriod:    current.TotalProfit,
		PreviousPeriod:   previous.TotalProfit,
		PercentageChange: CalculatePercentageChange(previous.TotalProfit, current.TotalProfit),
	}, nil
}

// Compare usa previousFilters quando informado; caso contrário deriva o período anterior
func (s *Service) Compare(ctx context.Context, request domain.ComparisonRequest) (*domain.ComparisonResult, error) {
	currentFilters := domain.AnalyticsFilters{}
	if request.CurrentFilters != nil {
		currentFilters = *request.CurrentFilters
	}

	if err := validateFilters(currentFilters); err != nil {
		return nil, err
	}

	var periods domain.ComparisonPeriods
	if request.PreviousFilters != nil {
		if err := validateFilters(*request.PreviousFilters); err != nil {
			return nil, err
		}
		periods = domain.ComparisonPeriods{
			Current:  currentFilters,
			Previous: *request.PreviousFilters,
		}
	} else {
		periods = ComparisonPeriods(currentFilters, s.now(), s.cfg.ComparisonWindowDays, s.cfg.Location)
	}

	current, previous, err := s.periodMetrics(ctx, periods)
	if err != nil {
		return nil, err
	}

	return &domain.ComparisonResult{
		Current:           current,
		Previous:          previous,
		PercentageChanges: percentageChanges(previous, current),
	}, nil
}

// periodMetrics calcula as métricas de cada período; períodos vazios geram métricas zeradas
func (s *Service) periodMetrics(ctx context.Context, periods domain.ComparisonPeriods) (domain.SummaryMetrics, domain.SummaryMetrics, error) {
	currentSales, err := s.fetchSales(ctx, periods.Current, false)
	if err != nil {
		return domain.SummaryMetrics{}, domain.SummaryMetrics{}, err
	}

	previousSales, err := s.fetchSales(ctx, periods.Previous, false)
	if err != nil {
		return domain.SummaryMetrics{}, domain.SummaryMetrics{}, err
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"analytics_current_sales":  len(currentSales),
		"analytics_previous_sales": len(previousSales),
	}).Debug("Períodos de comparação carregados")

	return CalculateMetrics(currentSales), CalculateMetrics(previousSales), nil
}
