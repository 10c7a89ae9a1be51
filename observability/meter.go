package observability

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"

	"github.com/kbukum/objectid/logger"
	"github.com/kbukum/objectid/security"
)

// MeterConfig configures metric export.
type MeterConfig struct {
	// Enabled turns on OTLP export. When false no provider is created.
	Enabled bool `yaml:"enabled" mapstructure:"enabled"`
	// Endpoint is the OTLP HTTP endpoint host:port (e.g., "localhost:4318").
	Endpoint string `yaml:"endpoint" mapstructure:"endpoint"`
	// Insecure allows plain HTTP (for development).
	Insecure bool `yaml:"insecure" mapstructure:"insecure"`
	// TLS configures a private CA or client certificate for the collector.
	TLS security.TLSConfig `yaml:"tls" mapstructure:"tls"`
	// Interval is the metric export interval.
	Interval time.Duration `yaml:"interval" mapstructure:"interval"`
}

// ApplyDefaults fills the endpoint and export interval.
func (c *MeterConfig) ApplyDefaults() {
	if c.Endpoint == "" {
		c.Endpoint = "localhost:4318"
	}
	if c.Interval == 0 {
		c.Interval = 15 * time.Second
	}
}

// Validate checks the configuration.
func (c *MeterConfig) Validate() error {
	if c.Interval < 0 {
		return fmt.Errorf("metrics.interval must not be negative (got: %s)", c.Interval)
	}
	if c.Enabled && c.Endpoint == "" {
		return fmt.Errorf("metrics.endpoint is required when metrics are enabled")
	}
	if c.Insecure && c.TLS.IsEnabled() {
		return fmt.Errorf("metrics.insecure cannot be combined with metrics.tls")
	}
	if err := c.TLS.Validate(); err != nil {
		return fmt.Errorf("metrics.%w", err)
	}
	return nil
}

// Service identifies the process in exported telemetry.
type Service struct {
	Name        string
	Version     string
	Environment string
}

// NewResource describes svc for exported telemetry.
func NewResource(svc Service) (*resource.Resource, error) {
	return resource.Merge(
		resource.Default(),
		resource.NewSchemaless(
			semconv.ServiceName(svc.Name),
			semconv.ServiceVersion(svc.Version),
			attribute.String("environment", svc.Environment),
		),
	)
}

// NewMeterProvider builds a provider for svc that feeds every reader.
func NewMeterProvider(svc Service, readers ...sdkmetric.Reader) (*sdkmetric.MeterProvider, error) {
	res, err := NewResource(svc)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}
	opts := []sdkmetric.Option{sdkmetric.WithResource(res)}
	for _, r := range readers {
		opts = append(opts, sdkmetric.WithReader(r))
	}
	return sdkmetric.NewMeterProvider(opts...), nil
}

// InitMeter creates a provider that periodically pushes to the configured
// OTLP endpoint. Shut it down on exit to flush pending data.
func InitMeter(ctx context.Context, cfg MeterConfig, svc Service) (*sdkmetric.MeterProvider, error) {
	tlsCfg, err := cfg.TLS.Build()
	if err != nil {
		return nil, fmt.Errorf("metrics: %w", err)
	}

	opts := []otlpmetrichttp.Option{
		otlpmetrichttp.WithEndpoint(cfg.Endpoint),
	}
	switch {
	case tlsCfg != nil:
		opts = append(opts, otlpmetrichttp.WithTLSClientConfig(tlsCfg))
	case cfg.Insecure:
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}

	exporter, err := otlpmetrichttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating metric exporter: %w", err)
	}

	var readerOpts []sdkmetric.PeriodicReaderOption
	if cfg.Interval > 0 {
		readerOpts = append(readerOpts, sdkmetric.WithInterval(cfg.Interval))
	}

	mp, err := NewMeterProvider(svc, sdkmetric.NewPeriodicReader(exporter, readerOpts...))
	if err != nil {
		return nil, err
	}

	logger.Get("observability").Debug("meter initialized", logger.Fields(
		logger.FieldService, svc.Name,
		"endpoint", cfg.Endpoint,
		"interval", cfg.Interval.String(),
	))
	return mp, nil
}

// Shutdown flushes and stops mp, waiting at most timeout.
func Shutdown(mp *sdkmetric.MeterProvider, timeout time.Duration) error {
	if mp == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := mp.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutting down meter provider: %w", err)
	}
	return nil
}
