package main

import (
	"context"
	"time"

	"github.com/spf13/cobra"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/kbukum/objectid/config"
	"github.com/kbukum/objectid/errors"
	"github.com/kbukum/objectid/logger"
	"github.com/kbukum/objectid/objectid"
	"github.com/kbukum/objectid/observability"
	"github.com/kbukum/objectid/version"
)

const serviceName = "objectid"

// Config is the objectid CLI configuration file layout.
type Config struct {
	config.ServiceConfig `yaml:",inline" mapstructure:",squash"`
	Objects              objectid.Config           `yaml:"objects" mapstructure:"objects"`
	Metrics              observability.MeterConfig `yaml:"metrics" mapstructure:"metrics"`
}

// ApplyDefaults fills in defaults for every section.
func (c *Config) ApplyDefaults() {
	if c.Name == "" {
		c.Name = serviceName
	}
	c.ServiceConfig.ApplyDefaults()
	c.Objects.ApplyDefaults()
	c.Metrics.ApplyDefaults()
}

// Validate checks every section.
func (c *Config) Validate() error {
	if err := c.ServiceConfig.Validate(); err != nil {
		return errors.InvalidArgument(err.Error())
	}
	if err := c.Metrics.Validate(); err != nil {
		return errors.InvalidArgument(err.Error())
	}
	return c.Objects.Validate()
}

// app carries state shared by subcommands once the root pre-run has loaded
// configuration.
type app struct {
	configFile string
	logLevel   string

	cfg    Config
	codec  *objectid.Codec
	meters *sdkmetric.MeterProvider
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "objectid",
		Short:         "Mint, validate and inspect opaque object identifiers",
		Version:       version.Short(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.configFile, "config", "", "Path to config.yml (default: search standard locations)")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(newMintCmd(a))
	rootCmd.AddCommand(newTypeCmd(a))
	rootCmd.AddCommand(newInspectCmd(a))
	rootCmd.AddCommand(newHashCmd(a))
	rootCmd.AddCommand(newTypesCmd(a))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// setup loads configuration, initializes logging and builds the codec.
func (a *app) setup(cmd *cobra.Command) error {
	var opts []config.LoaderOption
	if a.configFile != "" {
		opts = append(opts, config.WithConfigFile(a.configFile))
	}

	a.cfg = Config{}
	if err := config.LoadConfig(serviceName, &a.cfg, opts...); err != nil {
		return errors.InvalidArgument(err.Error())
	}
	if cmd.Flags().Changed("log-level") {
		a.cfg.Logging.Level = a.logLevel
	}
	a.cfg.ApplyDefaults()
	if err := a.cfg.Validate(); err != nil {
		return err
	}

	logger.Init(a.cfg.Logging)

	var codecOpts []objectid.Option
	if a.cfg.Metrics.Enabled {
		metrics, err := a.initMetrics(cmd.Context())
		if err != nil {
			return err
		}
		codecOpts = append(codecOpts, objectid.WithMetrics(metrics))
	}

	codec, err := a.cfg.Objects.Build(codecOpts...)
	if err != nil {
		return err
	}
	a.codec = codec

	logger.Get("cli").Debug("configuration loaded", logger.Fields(
		"environment", a.cfg.Environment,
		"hash", a.cfg.Objects.Hash,
		"types", len(a.cfg.Objects.Types),
	))
	return nil
}

func (a *app) initMetrics(ctx context.Context) (*objectid.Metrics, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	mp, err := observability.InitMeter(ctx, a.cfg.Metrics, observability.Service{
		Name:        a.cfg.Name,
		Version:     version.Short(),
		Environment: a.cfg.Environment,
	})
	if err != nil {
		return nil, err
	}
	a.meters = mp
	return objectid.NewMetrics(mp.Meter(serviceName))
}

// close flushes pending metrics. It runs after every command, including
// failed ones, so rejections are exported too.
func (a *app) close() {
	if err := observability.Shutdown(a.meters, 5*time.Second); err != nil {
		logger.Get("cli").Warn("metrics not flushed", logger.ErrorFields("shutdown", err))
	}
	a.meters = nil
}
