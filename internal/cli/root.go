// Package cli wires the coriolis commands: the interactive window and the
// headless snapshot renderer.
package cli

import (
	"context"
	"fmt"
	"net/http"
	_ "net/http/pprof"

	"coriolis-view/internal/config"
	"coriolis-view/internal/logging"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Version is overridden at build time with -ldflags.
var Version = "dev"

// WindowRunner opens the window and blocks until it is closed.
type WindowRunner func(ctx context.Context, settings *config.Settings, logger *zap.Logger) error

// options is the state shared by the root command and its children.
type options struct {
	cfgFile   string
	pprofAddr string
	settings  *config.Settings
}

// NewRootCommand builds the command tree. run is called by the root
// command itself.
func NewRootCommand(run WindowRunner) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:           "coriolis",
		Short:         "Rotating-beam Coriolis visualization with top and front views.",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			settings, err := loadSettings(cmd, opts.cfgFile)
			if err != nil {
				logging.InitializeLogger(config.NewDefaultSettings().Logger)
				return err
			}
			opts.settings = settings
			logging.InitializeLogger(settings.Logger)
			logging.GetLogger().Debug("configuration loaded", zap.String("version", Version))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger()
			if opts.pprofAddr != "" {
				go func() {
					logger.Info("pprof listening", zap.String("addr", opts.pprofAddr))
					if err := http.ListenAndServe(opts.pprofAddr, nil); err != nil {
						logger.Warn("pprof listener stopped", zap.Error(err))
					}
				}()
			}
			if err := run(cmd.Context(), opts.settings, logger); err != nil {
				return fmt.Errorf("window: %w", err)
			}
			return nil
		},
	}
	cmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)

	pf := cmd.PersistentFlags()
	pf.StringVarP(&opts.cfgFile, "config", "c", "", "config file (default is ./coriolis.yaml)")
	pf.Float64("angular-speed", config.DefaultAngularSpeed, "initial beam angular speed in rad/s")
	pf.String("log-level", "info", "log level (debug, info, warn, error)")
	cmd.Flags().StringVar(&opts.pprofAddr, "pprof", "", "serve net/http/pprof on this address, e.g. localhost:6060")

	cmd.AddCommand(newSnapshotCommand(opts))
	return cmd
}

// flagKeys maps persistent flags to their config keys.
var flagKeys = map[string]string{
	"angular-speed": "simulation.angular_speed",
	"log-level":     "logger.level",
}

func loadSettings(cmd *cobra.Command, cfgFile string) (*config.Settings, error) {
	v := config.NewViper(cfgFile)
	if err := bindFlags(v, cmd); err != nil {
		return nil, err
	}
	return config.Load(v)
}

func bindFlags(v *viper.Viper, cmd *cobra.Command) error {
	for name, key := range flagKeys {
		f := cmd.Flags().Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("failed to bind --%s: %w", name, err)
		}
	}
	return nil
}
