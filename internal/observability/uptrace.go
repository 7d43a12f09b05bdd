package observability

import (
	"context"
	"strings"

	"github.com/riskibarqy/courtside/internal/config"
	"github.com/riskibarqy/courtside/internal/platform/logging"
	"github.com/uptrace/uptrace-go/uptrace"
	"go.opentelemetry.io/otel/attribute"
)

// InitUptrace configures the global OpenTelemetry providers. A missing DSN
// leaves the no-op providers in place.
func InitUptrace(cfg config.Config, logger *logging.Logger) (func(context.Context) error, error) {
	if logger == nil {
		logger = logging.Default()
	}
	noop := func(context.Context) error { return nil }

	switch {
	case !cfg.UptraceEnabled:
		logger.Debug("uptrace disabled")
		return noop, nil
	case strings.TrimSpace(cfg.UptraceDSN) == "":
		logger.Warn("uptrace enabled without a dsn, tracing stays off")
		return noop, nil
	}

	uptrace.ConfigureOpentelemetry(
		uptrace.WithDSN(cfg.UptraceDSN),
		uptrace.WithServiceName(cfg.ServiceName),
		uptrace.WithServiceVersion(cfg.ServiceVersion),
		uptrace.WithDeploymentEnvironment(cfg.AppEnv),
		uptrace.WithResourceAttributes(
			attribute.String("courtside.data_source", cfg.DataSource),
			attribute.Int("courtside.current_season", cfg.CurrentSeason),
		),
	)

	logger.Info("uptrace enabled", "service_name", cfg.ServiceName, "service_version", cfg.ServiceVersion, "environment", cfg.AppEnv)
	return uptrace.Shutdown, nil
}
