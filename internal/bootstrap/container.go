package bootstrap

import (
	"context"
	"fmt"
	"io"

	"feature-feedback-board/internal/config"
	"feature-feedback-board/internal/pkg/idgen"
	"feature-feedback-board/internal/pkg/logger"
	"feature-feedback-board/internal/repository/memory"
	"feature-feedback-board/internal/seed"
	"feature-feedback-board/internal/service"
	"feature-feedback-board/internal/shell"
	"feature-feedback-board/pkg/board"
)

type Container struct {
	Logger         logger.ILogger
	FeatureService service.IFeatureService
	Shell          *shell.Shell
}

// NewContainer wires one board. out receives shell output and console logs.
func NewContainer(cfg *config.Config, out io.Writer) (*Container, error) {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.IsProduction(), nil)
	return newContainer(cfg, sysLogger, out)
}

func newContainer(cfg *config.Config, sysLogger logger.ILogger, out io.Writer) (*Container, error) {
	ids, err := idgen.FromStrategy(cfg.Board.IdStrategy)
	if err != nil {
		return nil, err
	}
	order, err := board.ParseSortOrder(cfg.Board.DefaultSort)
	if err != nil {
		return nil, fmt.Errorf("BOARD_DEFAULT_SORT: %w", err)
	}

	// 2. Store & Services
	store := memory.NewFeatureStore(ids)
	featureService := service.NewFeatureService(
		store,
		memory.NewProjectionCache(),
		sysLogger,
		service.WithSort(order),
	)

	// 3. Optional fixture
	if cfg.Board.SeedFile != "" {
		reqs, err := seed.LoadFile(cfg.Board.SeedFile)
		if err != nil {
			return nil, err
		}
		count, err := featureService.Import(context.Background(), reqs)
		if err != nil {
			return nil, fmt.Errorf("seed %s: %w", cfg.Board.SeedFile, err)
		}
		sysLogger.Info("Bootstrap", "Fixture loaded", map[string]interface{}{"path": cfg.Board.SeedFile, "count": count})
	}

	return &Container{
		Logger:         sysLogger,
		FeatureService: featureService,
		Shell:          shell.New(featureService, sysLogger, out, cfg.App.NoColor),
	}, nil
}
