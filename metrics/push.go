package metrics

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/prometheus/client_golang/prometheus/push"
	"go.uber.org/zap"
)

// PushConfig configures pushing metrics to a prometheus pushgateway.
type PushConfig struct {
	URL      string            `mapstructure:"push-url"`
	Job      string            `mapstructure:"push-job"`
	Username string            `mapstructure:"push-username"`
	Password string            `mapstructure:"push-password"`
	Headers  map[string]string `mapstructure:"push-headers"`

	Retries      int           `mapstructure:"push-retries"`
	RetryWaitMin time.Duration `mapstructure:"push-retry-wait-min"`
	RetryWaitMax time.Duration `mapstructure:"push-retry-wait-max"`
}

// DefaultPushConfig returns a config with pushing disabled.
func DefaultPushConfig() PushConfig {
	return PushConfig{
		Job:          "inflation",
		Retries:      3,
		RetryWaitMin: 500 * time.Millisecond,
		RetryWaitMax: 5 * time.Second,
	}
}

// Enabled returns true if a pushgateway is configured.
func (c PushConfig) Enabled() bool {
	return len(c.URL) > 0
}

type retryableHTTPLogger struct {
	inner *zap.Logger
}

func (r retryableHTTPLogger) Error(format string, args ...any) {
	r.inner.Sugar().Errorw(format, args...)
}

func (r retryableHTTPLogger) Info(format string, args ...any) {
	r.inner.Sugar().Infow(format, args...)
}

func (r retryableHTTPLogger) Warn(format string, args ...any) {
	r.inner.Sugar().Warnw(format, args...)
}

func (r retryableHTTPLogger) Debug(format string, args ...any) {
	r.inner.Sugar().Debugw(format, args...)
}

func newClient(logger *zap.Logger, cfg PushConfig) *http.Client {
	client := retryablehttp.NewClient()
	client.RetryMax = cfg.Retries
	client.RetryWaitMin = cfg.RetryWaitMin
	client.RetryWaitMax = cfg.RetryWaitMax
	client.Logger = retryableHTTPLogger{logger}
	return client.StandardClient()
}

// Push sends the current value of every metric in Registry to the pushgateway once.
// Metrics are grouped by the given labels. Failed requests are retried as configured.
func Push(ctx context.Context, logger *zap.Logger, cfg PushConfig, grouping map[string]string) error {
	header := http.Header{}
	for k, v := range cfg.Headers {
		header.Add(k, v)
	}
	pusher := push.New(cfg.URL, cfg.Job).
		Gatherer(Registry).
		Header(header).
		Client(newClient(logger, cfg))
	for name, value := range grouping {
		pusher = pusher.Grouping(name, value)
	}
	if cfg.Username != "" && cfg.Password != "" {
		pusher = pusher.BasicAuth(cfg.Username, cfg.Password)
	}
	if err := pusher.PushContext(ctx); err != nil {
		return fmt.Errorf("push metrics to %s: %w", cfg.URL, err)
	}
	return nil
}
