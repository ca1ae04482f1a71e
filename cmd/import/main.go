package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/pflag"
	"github.com/vaccination-dashboard/internal/config"
	"github.com/vaccination-dashboard/internal/pkg/logger"
	"github.com/vaccination-dashboard/internal/repository/file"
	"github.com/vaccination-dashboard/internal/repository/postgres"
	"github.com/vaccination-dashboard/internal/usecase"
	"go.uber.org/zap"
)

// import - переносит таблицы вакцинации и заболеваемости из xlsx/csv в metric_values
func main() {
	vaccinationFile := pflag.String("vaccination", "", "vaccination table (xlsx or csv), overrides DATA_VACCINATION_FILE")
	incidenceFile := pflag.String("incidence", "", "incidence table (xlsx or csv), overrides DATA_INCIDENCE_FILE")
	timeout := pflag.Duration("timeout", 5*time.Minute, "import timeout")
	pflag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *vaccinationFile != "" {
		cfg.Data.VaccinationFile = *vaccinationFile
	}
	if *incidenceFile != "" {
		cfg.Data.IncidenceFile = *incidenceFile
	}

	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if err := db.EnsureSchema(ctx); err != nil {
		log.Fatal("Failed to prepare schema", zap.Error(err))
	}

	result, err := usecase.ImportDataset(ctx,
		file.NewMetricRepository(&cfg.Data, log),
		postgres.NewMetricWriter(db),
		cfg.Data.RegionColumn,
		cfg.Data.YearColumn,
		log,
	)
	if err != nil {
		log.Fatal("Import failed", zap.Error(err))
	}

	log.Info("Import finished",
		zap.String("vaccination_file", cfg.Data.VaccinationFile),
		zap.String("incidence_file", cfg.Data.IncidenceFile),
		zap.Int64("vaccination_values", result.Vaccination),
		zap.Int64("incidence_values", result.Incidence),
	)
}
