package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/pflag"
	"github.com/vaccination-dashboard/internal/config"
	"github.com/vaccination-dashboard/internal/domain/repository"
	"github.com/vaccination-dashboard/internal/pkg/logger"
	"github.com/vaccination-dashboard/internal/pkg/metrics"
	"github.com/vaccination-dashboard/internal/repository/file"
	"github.com/vaccination-dashboard/internal/repository/postgres"
	"github.com/vaccination-dashboard/internal/usecase"
	"github.com/vaccination-dashboard/internal/usecase/dto"
	"go.uber.org/zap"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// inspect - загружает данные так же, как API, и печатает выбор целиком.
// Числа выводятся в эстонской локали.
func main() {
	year := pflag.IntP("year", "y", 0, "year (default: latest)")
	disease := pflag.StringP("disease", "d", "", "disease (default: first)")
	region := pflag.StringP("region", "r", "", "region (default: national aggregate)")
	dump := pflag.Bool("dump", false, "dump detail and trend structures with spew")
	pflag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	var metricRepo repository.MetricRepository = file.NewMetricRepository(&cfg.Data, log)
	if cfg.Data.Source == config.SourcePostgres {
		db, err := postgres.New(&cfg.Database, log)
		if err != nil {
			log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
		}
		defer db.Close()
		metricRepo = postgres.NewMetricRepository(db, &cfg.Data)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	ds, err := usecase.LoadDataset(ctx, metricRepo, file.NewGeometryRepository(&cfg.Data, log), usecase.DatasetOptions{
		RegionColumn: cfg.Data.RegionColumn,
		YearColumn:   cfg.Data.YearColumn,
		Geometry: usecase.GeometryOptions{
			CountyNameProperty:     cfg.Data.CountyNameProperty,
			SettlementNameProperty: cfg.Data.SettlementNameProperty,
			ExtraCities:            cfg.Data.ExtraCities,
			AggregateLabel:         cfg.Data.AggregateLabel,
		},
	}, log)
	if err != nil {
		log.Fatal("Failed to load dataset", zap.Error(err))
	}

	uc := usecase.NewDashboardUseCase(ds, cfg.Trend.WindowSize, metrics.NewManager(), log)

	opts := uc.Options()
	req := dto.SelectionRequest{Year: opts.Defaults.Year, Disease: opts.Defaults.Disease, Region: opts.Defaults.Region}
	if *year != 0 {
		req.Year = *year
	}
	if *disease != "" {
		req.Disease = *disease
	}
	if *region != "" {
		req.Region = *region
	}

	p := message.NewPrinter(language.Estonian)

	fmt.Printf("Years:    %v\n", opts.Years)
	fmt.Printf("Diseases: %v\n", opts.Diseases)
	fmt.Printf("Regions:  %d\n\n", len(opts.Regions))

	resp, err := uc.Dashboard(req)
	if err != nil {
		log.Fatal("Failed to build dashboard", zap.Error(err))
	}

	fmt.Printf("%s, %d\n", resp.Map.Disease, resp.Map.Year)
	fmt.Printf("%-24s %-10s %12s %12s\n", "Region", "Kind", "Rate", "Cases")
	for _, row := range resp.Map.Rows {
		fmt.Printf("%-24s %-10s %12s %12s\n", row.Region, row.Kind, rateOrDash(p, row.VaccinationRate), countOrDash(p, row.IncidenceCount))
	}

	fmt.Printf("\n%s: rate %s, cases %s\n", resp.Detail.Region, display(resp.Detail.Vaccination), display(resp.Detail.Incidence))
	for _, w := range resp.Detail.Warnings {
		fmt.Printf("warning: %s\n", w)
	}

	if resp.Trend.Empty {
		fmt.Printf("trend: %s\n", resp.Trend.Note)
	} else {
		fmt.Printf("trend %v:\n", resp.Trend.Window)
		for _, pt := range resp.Trend.Points {
			fmt.Printf("  %d %s\n", pt.Year, rateOrDash(p, pt.VaccinationRate))
		}
	}

	if *dump {
		spew.Dump(resp.Detail, resp.Trend)
	}
}

func rateOrDash(p *message.Printer, v *float64) string {
	if v == nil {
		return "-"
	}
	return p.Sprintf("%.1f", *v)
}

func countOrDash(p *message.Printer, v *float64) string {
	if v == nil {
		return "-"
	}
	return p.Sprintf("%d", usecase.CaseCount(*v))
}

func display(v dto.MetricValue) string {
	if !v.Available {
		return v.Message
	}
	return v.Display
}
