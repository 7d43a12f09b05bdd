package observability

import (
	"context"
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/riskibarqy/courtside/internal/config"
	"github.com/riskibarqy/courtside/internal/platform/logging"
)

// Stack owns the tracing, profiling and pprof lifecycles of one process.
type Stack struct {
	logger          *logging.Logger
	shutdownTracing func(context.Context) error
	stopProfiler    func() error
	pprof           *http.Server
}

// Start brings up every enabled component. On failure the components that
// already started are torn down before returning.
func Start(cfg config.Config, logger *logging.Logger) (*Stack, error) {
	if logger == nil {
		logger = logging.Default()
	}
	s := &Stack{
		logger:          logger,
		shutdownTracing: func(context.Context) error { return nil },
		stopProfiler:    func() error { return nil },
	}

	var err error
	if s.shutdownTracing, err = InitUptrace(cfg, logger); err != nil {
		return nil, errors.Wrap(err, "init uptrace")
	}
	if s.stopProfiler, err = InitPyroscope(cfg, logger); err != nil {
		_ = s.Shutdown(context.Background())
		return nil, errors.Wrap(err, "init pyroscope")
	}
	if s.pprof, err = StartPprofServer(cfg, logger); err != nil {
		_ = s.Shutdown(context.Background())
		return nil, errors.Wrap(err, "start pprof")
	}
	return s, nil
}

// Shutdown stops components in reverse start order and reports every failure.
func (s *Stack) Shutdown(ctx context.Context) error {
	if s == nil {
		return nil
	}

	var err error
	if stopErr := StopPprofServer(ctx, s.pprof, s.logger); stopErr != nil {
		err = errors.CombineErrors(err, errors.Wrap(stopErr, "stop pprof"))
	}
	if s.stopProfiler != nil {
		if stopErr := s.stopProfiler(); stopErr != nil {
			err = errors.CombineErrors(err, errors.Wrap(stopErr, "stop pyroscope"))
		}
	}
	if s.shutdownTracing != nil {
		if stopErr := s.shutdownTracing(ctx); stopErr != nil {
			err = errors.CombineErrors(err, errors.Wrap(stopErr, "shutdown uptrace"))
		}
	}
	return err
}
