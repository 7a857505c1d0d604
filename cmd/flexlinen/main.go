package main

import (
	"context"
	"os"
	"time"

	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/phenrril/flexlinen/internal/config"
)

var cfg config.Config

var rootCmd = &cobra.Command{
	Use:           "flexlinen",
	Short:         "FlexLinen storefront backend",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}
		setupLogging(cfg)
		return nil
	},
}

// setupLogging writes JSON lines in production and a console view
// elsewhere.
func setupLogging(c config.Config) {
	zerolog.TimeFieldFormat = time.RFC3339
	if c.IsProduction() {
		zlog.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	} else {
		zlog.Logger = zlog.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	}
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil || c.LogLevel == "" {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
}

func main() {
	rootCmd.AddCommand(serveCmd, productsCmd, exportCmd)
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		zlog.Fatal().Err(err).Msg("flexlinen")
	}
}
