package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/2beens/gymsession/internal/config"
	"github.com/2beens/gymsession/internal/db"
	"github.com/2beens/gymsession/internal/logging"
	"github.com/2beens/gymsession/internal/store"
	"github.com/2beens/gymsession/internal/workout"
	"github.com/2beens/gymsession/pkg"

	log "github.com/sirupsen/logrus"
	"go.uber.org/multierr"
)

// exports all workouts and routines into a json document, or imports one
// usage:
//
//	workout_transfer -mode export -file backup.json
//	workout_transfer -mode import -file backup.json
func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	mode := flag.String("mode", "export", "export | import")
	filePath := flag.String("file", "", "document path (empty for stdout / stdin)")
	flag.Parse()

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		log.Fatalf("load config: %s", err)
	}

	logging.Setup(logging.LoggerSetupParams{
		LogToStdout: true,
		LogLevel:    cfg.LogLevel,
	})
	// keep stdout clean for the exported document
	log.SetOutput(os.Stderr)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost: cfg.PostgresHost,
		DBPort: cfg.PostgresPort,
		DBName: cfg.PostgresDBName,
	})
	if err != nil {
		log.Fatalf("new db pool: %s", err)
	}
	defer dbPool.Close()

	transfer := store.NewTransfer(store.NewRepo(dbPool), time.Now, workout.NewUUID)

	switch *mode {
	case "export":
		err = export(ctx, transfer, *filePath)
	case "import":
		err = importDocument(ctx, transfer, *filePath)
	default:
		err = fmt.Errorf("unknown mode: %s", *mode)
	}
	if err != nil {
		log.Errorf("%s failed: %s", *mode, err)
		dbPool.Close()
		os.Exit(1)
	}
}

func export(ctx context.Context, transfer *store.Transfer, filePath string) error {
	doc, err := transfer.Export(ctx)
	if err != nil {
		return err
	}

	var out io.Writer = os.Stdout
	if filePath != "" {
		f, err := os.Create(filePath)
		if err != nil {
			return fmt.Errorf("create file: %w", err)
		}
		defer func() {
			if err := f.Close(); err != nil {
				log.Errorf("close [%s]: %s", filePath, err)
			}
		}()
		out = f
	}

	if err := store.WriteDocument(out, *doc); err != nil {
		return fmt.Errorf("write document: %w", err)
	}

	log.Infof("exported %d workouts and %d routines", len(doc.Workouts), len(doc.Routines))
	return nil
}

func importDocument(ctx context.Context, transfer *store.Transfer, filePath string) error {
	var in io.Reader = os.Stdin
	if filePath != "" {
		if exists, err := pkg.PathExists(filePath, false); err != nil || !exists {
			return fmt.Errorf("document [%s] not found", filePath)
		}
		f, err := os.Open(filePath)
		if err != nil {
			return fmt.Errorf("open file: %w", err)
		}
		defer func() {
			if err := f.Close(); err != nil {
				log.Errorf("close [%s]: %s", filePath, err)
			}
		}()
		in = f
	}

	doc, err := store.ReadDocument(in)
	if err != nil {
		return err
	}

	result, err := transfer.Import(ctx, doc)
	for _, itemErr := range multierr.Errors(err) {
		log.Warnf("skipped: %s", itemErr)
	}

	log.Infof("imported %d workouts and %d routines", result.Workouts, result.Routines)
	if result.Workouts == 0 && result.Routines == 0 && err != nil {
		return err
	}
	return nil
}
