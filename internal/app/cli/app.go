package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"payroll/internal/console"
	"payroll/internal/domain/payroll"
	"payroll/internal/domain/reports"
	"payroll/internal/platform/config"
	cryptoutil "payroll/internal/platform/crypto"
	"payroll/internal/platform/metrics"
)

type App struct {
	Config    config.Config
	SessionID string
	Registry  *payroll.Registry

	logger   *zap.Logger
	metrics  *metrics.Collector
	exporter *reports.Exporter
	in       io.Reader
	out      io.Writer
}

func New(cfg config.Config, logger *zap.Logger, in io.Reader, out io.Writer) (*App, error) {
	sessionID := uuid.NewString()
	logger = logger.With(zap.String("session", sessionID))

	var collector *metrics.Collector
	if cfg.Metrics.Enabled {
		collector = metrics.New()
	}

	var exporter *reports.Exporter
	if cfg.ExportEnabled() {
		crypto, err := cryptoutil.New(cfg.Export.Key)
		if err != nil {
			return nil, fmt.Errorf("export key: %w", err)
		}
		exporter = reports.NewExporter(cfg.Export, crypto, collector, logger)
	}

	return &App{
		Config:    cfg,
		SessionID: sessionID,
		Registry:  payroll.NewRegistry(),
		logger:    logger,
		metrics:   collector,
		exporter:  exporter,
		in:        in,
		out:       out,
	}, nil
}

// Run drives one interactive session, then exports the report if configured.
func (a *App) Run(ctx context.Context) error {
	a.logger.Info("session started", zap.Bool("export", a.exporter != nil))

	session := console.NewSession(a.in, a.out, a.Registry, a.logger, a.metrics)
	if err := console.NewDriver(session).Run(ctx); err != nil {
		return fmt.Errorf("console: %w", err)
	}

	if a.exporter != nil {
		paths, err := a.exporter.Export(a.SessionID, a.Registry.Employees())
		if err != nil {
			return fmt.Errorf("export report: %w", err)
		}
		for _, path := range paths {
			fmt.Fprintf(a.out, "Report exported to %s\n", path)
		}
	}

	a.logger.Info("session finished",
		zap.Int("employees", a.Registry.Len()),
		zap.String("totalPay", a.Registry.TotalPay().StringFixed(2)),
		zap.Any("metrics", a.metrics.Snapshot()),
	)
	return nil
}
