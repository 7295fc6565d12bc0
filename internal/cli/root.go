// Package cli implements matchctl, the operator tool for the match cache and
// weight tables.
package cli

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/yoockh/workmatch/internal/bootstrap"
	"github.com/yoockh/workmatch/internal/logger"
	"github.com/yoockh/workmatch/internal/services"
)

const app = "matchctl"

// backend is what the commands need from the wired services.
type backend struct {
	match   services.MatchService
	inv     services.Invalidator
	weights services.WeightService
}

// connect is replaced in tests.
var connect = func(log *logrus.Logger) (*backend, error) {
	svc, err := bootstrap.Build(log, false)
	if err != nil {
		return nil, err
	}
	return &backend{match: svc.Match, inv: svc.Inv, weights: svc.Weight}, nil
}

// envKeys maps config file keys to the environment the stores read.
var envKeys = map[string]string{
	"postgres-uri": "POSTGRES_URI",
	"mongo-uri":    "MONGO_URI",
	"mongo-db":     "MONGO_DB",
	"redis-addr":   "REDIS_ADDR",
	"log-level":    "LOG_LEVEL",
}

// Execute runs matchctl with os.Args.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	var cfgFile string

	root := &cobra.Command{
		Use:           app,
		Short:         "matchctl recomputes, invalidates and tunes worker-job matches",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return initConfig(cfgFile)
		},
	}

	root.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is matchctl.yaml in current directory)")
	root.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	_ = viper.BindPFlag("debug", root.PersistentFlags().Lookup("debug"))

	root.AddCommand(newRecomputeCmd(), newInvalidateCmd(), newWeightsCmd(), newVersionCmd())
	return root
}

// initConfig loads matchctl.yaml when present and exports its values as
// environment variables unless they are already set.
func initConfig(cfgFile string) error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app)
		viper.SetConfigType("yaml")
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return err
		}
	}

	for key, env := range envKeys {
		if os.Getenv(env) != "" {
			continue
		}
		if v := strings.TrimSpace(viper.GetString(key)); v != "" {
			if err := os.Setenv(env, v); err != nil {
				return err
			}
		}
	}
	return nil
}

func newLogger() *logrus.Logger {
	l := logger.New()
	l.SetOutput(os.Stderr)
	if viper.GetBool("debug") {
		l.SetLevel(logrus.DebugLevel)
	}
	return l
}

// withBackend connects the stores and runs fn.
func withBackend(cmd *cobra.Command, fn func(ctx context.Context, b *backend) (any, error)) error {
	b, err := connect(newLogger())
	if err != nil {
		return err
	}
	out, err := fn(cmd.Context(), b)
	if err != nil {
		return err
	}
	return printJSON(cmd.OutOrStdout(), out)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
