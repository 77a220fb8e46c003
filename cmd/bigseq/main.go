// Command bigseq inspects sequence backing files and benchmarks sequences.
//
// Every flag can also be set through the environment as BIGSEQ_<FLAG>, with
// dashes replaced by underscores, or through a config file given with
// --config.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/hupe1980/bigseq"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var cmdMain = &cobra.Command{
	Use:               "bigseq",
	Short:             "Inspect and benchmark disk-backed int64 sequences",
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

var flagMain struct {
	Config   string
	LogLevel string
}

// cfg resolves flags, environment and config file, in that order.
var cfg = viper.New()

func init() {
	cmdMain.PersistentFlags().StringVar(&flagMain.Config, "config", "", "Config file (yaml, toml or json)")
	cmdMain.PersistentFlags().StringVar(&flagMain.LogLevel, "log-level", "", "Log level (debug, info, warn, error); empty disables logging")
}

func main() {
	if err := cmdMain.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadConfig(cmd *cobra.Command, _ []string) error {
	cfg.SetEnvPrefix("BIGSEQ")
	cfg.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	cfg.AutomaticEnv()

	var bindErr error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if err := cfg.BindPFlag(f.Name, f); err != nil && bindErr == nil {
			bindErr = err
		}
	})
	if bindErr != nil {
		return bindErr
	}

	if path := cfg.GetString("config"); path != "" {
		cfg.SetConfigFile(path)
		if err := cfg.ReadInConfig(); err != nil {
			return fmt.Errorf("read config: %w", err)
		}
	}
	return nil
}

func newLogger() (*bigseq.Logger, error) {
	level := cfg.GetString("log-level")
	if level == "" {
		return bigseq.NoopLogger(), nil
	}

	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("--log-level: %w", err)
	}
	return bigseq.NewTextLogger(l), nil
}
