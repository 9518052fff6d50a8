package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/prasetya/siaklake/internal/config"
	"github.com/prasetya/siaklake/internal/export"
	"github.com/prasetya/siaklake/internal/generator"
	"github.com/prasetya/siaklake/internal/lakehouse"
	"github.com/prasetya/siaklake/internal/pkg/logger"
	"github.com/prasetya/siaklake/internal/warehouse"
)

// Stage order is fixed; requesting load without generate reuses nothing
// from disk, so each run regenerates from scratch before any database
// stage.
var stageOrder = []string{"generate", "export", "load", "transform", "publish"}

func main() {
	configPath := flag.String("config", "configs/config.yaml", "path to configuration file")
	stagesFlag := flag.String("stages", "generate,export", "comma-separated stages to run (generate,export,load,transform,publish)")
	seed := flag.Int64("seed", 0, "randomness seed; 0 uses the current time")
	dropFirst := flag.Bool("drop", false, "drop all warehouse tables before loading")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		logger.Debug().Err(err).Msg("No .env file loaded")
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logger.Configure(logger.Config{
		Level:  logger.LogLevel(cfg.Logging.Level),
		Pretty: cfg.Logging.Format != "json",
	})

	stages, err := parseStages(*stagesFlag)
	if err != nil {
		logger.Fatal().Err(err).Msg("Invalid stages flag")
	}

	if err := run(cfg, stages, *seed, *dropFirst); err != nil {
		logger.Fatal().Err(err).Msg("Pipeline failed")
	}
	logger.Info().Msg("Pipeline completed")
}

func run(cfg *config.Config, stages map[string]bool, seed int64, dropFirst bool) error {
	ctx := context.Background()

	rng := generator.NewRand()
	if seed != 0 {
		rng = rand.New(rand.NewSource(seed))
	}

	var ds *generator.Dataset
	var err error
	if stages["generate"] {
		ds, err = generator.Generate(generator.Counts{
			Faculties:      cfg.Generator.Faculties,
			Programs:       cfg.Generator.Programs,
			Lecturers:      cfg.Generator.Lecturers,
			Students:       cfg.Generator.Students,
			Rooms:          cfg.Generator.Rooms,
			Courses:        cfg.Generator.Courses,
			Semesters:      cfg.Generator.Semesters,
			ClassSchedules: cfg.Generator.ClassSchedules,
			Registrations:  cfg.Generator.Registrations,
			Attendance:     cfg.Generator.Attendance,
			StartYear:      cfg.Generator.StartYear,
			EndYear:        cfg.Generator.EndYear,
		}, rng)
		if err != nil {
			return fmt.Errorf("generate stage: %w", err)
		}
	}

	if stages["export"] {
		if ds == nil {
			return fmt.Errorf("export stage requires the generate stage")
		}
		if err := export.WriteDataset(ds, cfg.Export.OutputDir, export.Format(cfg.Export.Format)); err != nil {
			return fmt.Errorf("export stage: %w", err)
		}
	}

	var db *warehouse.PostgresDB
	needsDB := stages["load"] || stages["transform"] || stages["publish"]
	if needsDB {
		db, err = warehouse.NewPostgresDB(cfg)
		if err != nil {
			return fmt.Errorf("database connection: %w", err)
		}
		defer db.Close()
	}

	if stages["load"] {
		if ds == nil {
			return fmt.Errorf("load stage requires the generate stage")
		}
		if dropFirst {
			if err := db.DropSchema(ctx); err != nil {
				return fmt.Errorf("drop schema: %w", err)
			}
		}
		if err := db.CreateSchema(ctx); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
		if err := db.LoadDataset(ctx, ds); err != nil {
			return fmt.Errorf("load stage: %w", err)
		}
	}

	if stages["transform"] {
		if err := db.Transform(ctx); err != nil {
			return fmt.Errorf("transform stage: %w", err)
		}
	}

	if stages["publish"] {
		publisher, err := lakehouse.NewPublisher(cfg)
		if err != nil {
			return fmt.Errorf("publisher setup: %w", err)
		}
		if err := publisher.PublishStarSchema(ctx, db); err != nil {
			return fmt.Errorf("publish stage: %w", err)
		}
	}

	return nil
}

func parseStages(raw string) (map[string]bool, error) {
	known := map[string]bool{}
	for _, stage := range stageOrder {
		known[stage] = true
	}

	stages := map[string]bool{}
	for _, stage := range strings.Split(raw, ",") {
		stage = strings.TrimSpace(stage)
		if stage == "" {
			continue
		}
		if !known[stage] {
			return nil, fmt.Errorf("unknown stage %q (valid: %s)", stage, strings.Join(stageOrder, ", "))
		}
		stages[stage] = true
	}
	if len(stages) == 0 {
		fmt.Fprintln(os.Stderr, "no stages requested")
		os.Exit(2)
	}
	return stages, nil
}
