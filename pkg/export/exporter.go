package export

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dd0wney/cluso-compliance/pkg/document"
	"github.com/dd0wney/cluso-compliance/pkg/logging"
	"github.com/dd0wney/cluso-compliance/pkg/metrics"
)

// backoffSchedule is the wait before each retry; the store is tried once
// plus once per schedule entry
var backoffSchedule = []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}

const maxAttempts = 4

// Result is the structured outcome of one export
type Result struct {
	Success  bool   `json:"success"`
	Location string `json:"location,omitempty"`
	Attempts int    `json:"attempts"`
	Error    string `json:"error,omitempty"`
}

// Exporter renders a document, seals the bytes, and persists the artifact
// with bounded retry on transient store failures
type Exporter struct {
	Renderer Renderer
	Store    ArtifactStore
	Sealer   *Sealer
	Logger   logging.Logger
	Metrics  *metrics.Registry

	// sleep is injectable so retry tests do not wait out real backoff
	sleep func(ctx context.Context, d time.Duration) error
}

// NewExporter wires an exporter with a no-op sealer if none is given
func NewExporter(renderer Renderer, store ArtifactStore) *Exporter {
	return &Exporter{
		Renderer: renderer,
		Store:    store,
		Sealer:   &Sealer{},
		Logger:   logging.NewDefaultLogger(),
		Metrics:  metrics.Default(),
	}
}

// Export runs the render-seal-store pipeline. Render and seal failures are
// content problems and never retry; store failures retry up to three times
// with 1s/2s/4s backoff unless classified non-retryable.
func (e *Exporter) Export(ctx context.Context, doc *document.SSPDocument, name string) Result {
	logger := e.logger()

	data, err := e.Renderer.Render(doc)
	if err != nil {
		return e.fail(logger, 0, fmt.Errorf("render: %w", err))
	}

	sealed := data
	if e.Sealer != nil {
		sealed, err = e.Sealer.Seal(data)
		if err != nil {
			return e.fail(logger, 0, fmt.Errorf("seal: %w", err))
		}
	}

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if attempt > 1 {
			if e.Metrics != nil {
				e.Metrics.RecordExportAttempt("retry", true)
			}
			if err := e.wait(ctx, backoffSchedule[attempt-2]); err != nil {
				return e.fail(logger, attempt-1, err)
			}
		}

		location, err := e.Store.Put(ctx, name, e.Renderer.ContentType(), sealed)
		if err == nil {
			if e.Metrics != nil {
				e.Metrics.RecordExportAttempt("success", false)
			}
			logger.Info("artifact exported",
				logging.Component("export"),
				logging.String("location", location),
				logging.Int("attempts", attempt),
				logging.Int("bytes", len(sealed)))
			return Result{Success: true, Location: location, Attempts: attempt}
		}

		lastErr = err
		if !retryable(err) {
			logger.Warn("export failed without retry",
				logging.Component("export"),
				logging.Err(err))
			return e.fail(logger, attempt, err)
		}
		logger.Warn("export attempt failed",
			logging.Component("export"),
			logging.Int("attempt", attempt),
			logging.Err(err))
	}

	return e.fail(logger, maxAttempts, lastErr)
}

// retryable classifies store failures. Validation-class failures and
// explicit timeouts surface immediately; everything else is assumed
// transient.
func retryable(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "validation") || strings.Contains(msg, "invalid") {
		return false
	}
	if strings.Contains(msg, "timeout") || strings.Contains(msg, "timed out") {
		return false
	}
	return true
}

func (e *Exporter) fail(logger logging.Logger, attempts int, err error) Result {
	if e.Metrics != nil {
		e.Metrics.RecordExportAttempt("failure", false)
	}
	logger.Error("export failed",
		logging.Component("export"),
		logging.Int("attempts", attempts),
		logging.Err(err))
	return Result{Success: false, Attempts: attempts, Error: err.Error()}
}

func (e *Exporter) wait(ctx context.Context, d time.Duration) error {
	if e.sleep != nil {
		return e.sleep(ctx, d)
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (e *Exporter) logger() logging.Logger {
	if e.Logger != nil {
		return e.Logger
	}
	return logging.NewNopLogger()
}
