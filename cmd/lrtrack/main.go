package main

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"

	"github.com/ddvk/lrtrack/internal/config"
)

var Version = "dev"

type app struct {
	configPath string
	verbose    bool
	cfg        *config.Config
}

func setupLogging(cfg *config.Config, verbose bool) {
	formatter := &prefixed.TextFormatter{
		TimestampFormat:  "2006-01-02 15:04:05",
		FullTimestamp:    true,
		ForceFormatting:  true,
		ForceColors:      cfg.Logging.Colors,
		DisableColors:    !cfg.Logging.Colors,
		DisableTimestamp: !cfg.Logging.Timestamp,
	}
	log.SetFormatter(formatter)
	log.SetOutput(os.Stderr)
	log.SetLevel(cfg.LogLevel())
	if verbose {
		log.SetLevel(log.DebugLevel)
	}
}

func newRootCommand() *cobra.Command {
	a := &app{}
	cmd := &cobra.Command{
		Use:           "lrtrack",
		Short:         "Inspect and convert line rider track files",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.configPath)
			if err != nil {
				return err
			}
			a.cfg = cfg
			setupLogging(cfg, a.verbose)
			return nil
		},
	}
	cmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "path to a TOML config file")
	cmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")

	cmd.AddCommand(newInspectCommand(a))
	cmd.AddCommand(newConvertCommand(a))
	return cmd
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		log.Fatal(err)
	}
}
