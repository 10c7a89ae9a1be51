// Package observability sets up OpenTelemetry metric export.
//
// Instruments live with the code they measure (see objectid.NewMetrics);
// this package only builds the MeterProvider they are created on.
//
//	mp, err := observability.InitMeter(ctx, cfg.Metrics, observability.Service{Name: "objectid"})
//	defer observability.Shutdown(mp, 5*time.Second)
//	metrics, err := objectid.NewMetrics(mp.Meter("objectid"))
package observability
