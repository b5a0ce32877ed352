// Package observability provides logging, metrics, and tracing helpers
// for maptel registries.
//
// Features:
//   - Structured logging via slog (Go stdlib)
//   - Metrics via OpenTelemetry
//   - Tracing via OpenTelemetry
//
// All features are opt-in and have no-op implementations when disabled.
package observability

import (
	"log/slog"
	"time"
)

// EnrichLogger adds registry context to a logger.
// Returns a new logger with registry_id and handle fields.
//
// Example:
//
//	enriched := EnrichLogger(logger, "reg-1a2b3c4d", 3)
//	enriched.Info("seeding") // includes registry_id, handle
func EnrichLogger(logger *slog.Logger, registryID string, handle uint64) *slog.Logger {
	if logger == nil {
		return nil
	}
	return logger.With(
		slog.String("registry_id", registryID),
		slog.Uint64("handle", handle),
	)
}

// LogTableCreated logs allocation of a new table.
func LogTableCreated(logger *slog.Logger, registryID string, handle uint64) {
	if logger == nil {
		return
	}
	logger.Debug("table created",
		slog.String("registry_id", registryID),
		slog.Uint64("handle", handle),
	)
}

// LogTableDestroyed logs release of a table and the entries it held.
func LogTableDestroyed(logger *slog.Logger, registryID string, handle uint64, entries int) {
	if logger == nil {
		return
	}
	logger.Debug("table destroyed",
		slog.String("registry_id", registryID),
		slog.Uint64("handle", handle),
		slog.Int("entries", entries),
	)
}

// LogInsert logs a mapping insert.
func LogInsert(logger *slog.Logger, handle uint64, source, destination string) {
	if logger == nil {
		return
	}
	logger.Debug("mapping inserted",
		slog.Uint64("handle", handle),
		slog.String("source", source),
		slog.String("destination", destination),
	)
}

// LogErase logs removal of a mapping.
func LogErase(logger *slog.Logger, handle uint64, source string) {
	if logger == nil {
		return
	}
	logger.Debug("mapping erased",
		slog.Uint64("handle", handle),
		slog.String("source", source),
	)
}

// LogEraseMissing logs an erase of a key the table does not hold.
func LogEraseMissing(logger *slog.Logger, handle uint64, source string) {
	if logger == nil {
		return
	}
	logger.Debug("nothing to erase",
		slog.Uint64("handle", handle),
		slog.String("source", source),
	)
}

// LogResolve logs a completed resolution.
func LogResolve(logger *slog.Logger, handle uint64, source, result string, steps int) {
	if logger == nil {
		return
	}
	logger.Debug("number resolved",
		slog.Uint64("handle", handle),
		slog.String("source", source),
		slog.String("result", result),
		slog.Int("steps", steps),
	)
}

// LogCycle logs a resolution abandoned because of a cycle.
func LogCycle(logger *slog.Logger, handle uint64, source string, steps int) {
	if logger == nil {
		return
	}
	logger.Info("cycle detected",
		slog.Uint64("handle", handle),
		slog.String("source", source),
		slog.Int("steps", steps),
	)
}

// LogOperationError logs an operation rejected by validation.
func LogOperationError(logger *slog.Logger, op string, handle uint64, err error) {
	if logger == nil {
		return
	}
	logger.Warn("operation rejected",
		slog.String("operation", op),
		slog.Uint64("handle", handle),
		slog.String("error", err.Error()),
	)
}

// TimedOperation measures the duration of an operation.
// Returns a function that, when called, returns the elapsed time.
//
// Example:
//
//	done := TimedOperation()
//	// ... do work ...
//	elapsed := done()
func TimedOperation() func() time.Duration {
	start := time.Now()
	return func() time.Duration {
		return time.Since(start)
	}
}
