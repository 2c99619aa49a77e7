package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"payroll/internal/platform/config"
	"payroll/internal/platform/logging"
)

// flag name -> config key
var flagKeys = map[string]string{
	"log-level":     "log.level",
	"log-format":    "log.format",
	"log-file":      "log.file",
	"no-color":      "no_color",
	"export-dir":    "export.dir",
	"export-format": "export.formats",
}

func NewRootCmd() *cobra.Command {
	v := viper.New()
	var configFile string

	cmd := &cobra.Command{
		Use:   "payroll",
		Short: "Interactive payroll record manager",
		Long: `payroll collects full-time, part-time and contractual employee records
from the console, validates every field, and prints a payroll report.

Records live in memory for the current run only. When an export directory is
configured the final report is also written as PDF and/or CSV on exit.

Every flag can also be set with a PAYROLL_ environment variable, for example
PAYROLL_LOG_LEVEL=debug or PAYROLL_EXPORT_KEY=<key>.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(v, configFile)
			if err != nil {
				return err
			}
			if cfg.NoColor {
				color.NoColor = true
			}

			logger, err := logging.New(cfg.Log)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			app, err := New(cfg, logger, cmd.InOrStdin(), cmd.OutOrStdout())
			if err != nil {
				return err
			}
			return app.Run(cmd.Context())
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&configFile, "config", "", "Optional config file (yaml, json or toml)")
	flags.String("log-level", "warn", "Log level: debug, info, warn or error")
	flags.String("log-format", "json", "Log format: json or console")
	flags.String("log-file", "", "Write logs to this file instead of stderr")
	flags.Bool("no-color", false, "Disable colored output")
	flags.String("export-dir", "", "Write the final report to this directory on exit")
	flags.StringSlice("export-format", []string{config.FormatPDF, config.FormatCSV}, "Export formats: pdf, csv")

	if err := bindFlags(v, flags); err != nil {
		panic(err)
	}
	return cmd
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for name, key := range flagKeys {
		if err := v.BindPFlag(key, flags.Lookup(name)); err != nil {
			return fmt.Errorf("bind flag %s: %w", name, err)
		}
	}
	return nil
}
