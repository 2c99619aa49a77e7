package reports

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"payroll/internal/domain/payroll"
	"payroll/internal/platform/config"
	cryptoutil "payroll/internal/platform/crypto"
	"payroll/internal/platform/metrics"
)

// Exporter writes the session's report to export.dir when the session ends.
// Files are output only and are never read back.
type Exporter struct {
	dir     string
	formats []string
	crypto  *cryptoutil.Service
	metrics *metrics.Collector
	logger  *zap.Logger
	now     func() time.Time
}

func NewExporter(cfg config.ExportConfig, crypto *cryptoutil.Service, collector *metrics.Collector, logger *zap.Logger) *Exporter {
	return &Exporter{
		dir:     cfg.Dir,
		formats: cfg.Formats,
		crypto:  crypto,
		metrics: collector,
		logger:  logger,
		now:     time.Now,
	}
}

// Export writes one file per configured format named payroll-<session>.<ext>
// and returns the written paths. An empty registry writes nothing.
func (e *Exporter) Export(sessionID string, employees []payroll.Employee) ([]string, error) {
	if len(employees) == 0 || e.dir == "" {
		return nil, nil
	}
	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		return nil, fmt.Errorf("create export dir: %w", err)
	}

	var paths []string
	for _, format := range e.formats {
		var buf bytes.Buffer
		switch format {
		case config.FormatPDF:
			if err := WritePDF(&buf, employees, e.now()); err != nil {
				return paths, fmt.Errorf("render pdf: %w", err)
			}
		case config.FormatCSV:
			if err := WriteCSV(&buf, employees); err != nil {
				return paths, fmt.Errorf("render csv: %w", err)
			}
		default:
			return paths, fmt.Errorf("unsupported export format %q", format)
		}

		path, err := e.write(filepath.Join(e.dir, "payroll-"+sessionID+"."+format), buf.Bytes())
		if err != nil {
			return paths, err
		}
		e.metrics.RecordExport(format)
		e.logger.Info("report exported", zap.String("format", format), zap.String("path", path), zap.Int("employees", len(employees)))
		paths = append(paths, path)
	}
	return paths, nil
}

func (e *Exporter) write(path string, data []byte) (string, error) {
	if e.crypto != nil && e.crypto.Configured() {
		encrypted, err := e.crypto.Encrypt(data)
		if err != nil {
			return "", fmt.Errorf("encrypt export: %w", err)
		}
		path += ".enc"
		if err := os.WriteFile(path, encrypted, 0o600); err != nil {
			return "", fmt.Errorf("write export: %w", err)
		}
		return path, nil
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write export: %w", err)
	}
	return path, nil
}
