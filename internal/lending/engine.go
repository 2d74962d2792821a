package lending

import (
	"errors"
	"math"
	"time"
)

const (
	logMsgOperation             = "lending operation: "
	logMsgTransactionRecorded   = "transaction recorded"
	logMsgTransactionRejected   = "transaction rejected"
	logMsgHoldPlaced            = "hold placed"
	logMsgHoldCanceled          = "hold canceled"
	logMsgHoldPromoted          = "hold promoted"
	logMsgNoEligibleHold        = "no eligible hold to promote"
	logAttrError                = "error"
	logAttrMemberID             = "member_id"
	logAttrBookID               = "book_id"
	logAttrHoldID               = "hold_id"
	logAttrKind                 = "kind"
	logAttrEntryCount           = "entry_count"
	logAttrDurationMS           = "duration_ms"
	metricTransactionsTotal     = "lending_transactions_total"
	metricHoldsPlacedTotal      = "lending_holds_placed_total"
	metricHoldsPromotedTotal    = "lending_holds_promoted_total"
	metricOperationDuration     = "lending_operation_duration_seconds"
	metricLabelKind             = "kind"
	metricLabelOutcome          = "outcome"
	metricLabelOperation        = "operation"
	metricOutcomeSuccess        = "success"
	metricOutcomeRejected       = "rejected"
	metricOutcomeError          = "error"
	operationRecordTransaction  = "record_transaction"
	operationPlaceHold          = "place_hold"
	operationCancelHold         = "cancel_hold"
)

var ErrNilUnitOfWork = errors.New("nil unit of work supplied")

// Engine validates state transitions against the catalog, appends to the
// ledger, and promotes holds. All mutations of book status flow exclusively
// through it.
type Engine struct {
	uow     UnitOfWork
	logger  Logger
	metrics MetricsCollector
	clock   func() time.Time
}

// Option defines a functional option for configuring an Engine.
type Option func(*Engine)

// WithLogger sets the logger for the Engine.
func WithLogger(logger Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithMetrics sets the metrics collector for the Engine.
func WithMetrics(metrics MetricsCollector) Option {
	return func(e *Engine) {
		e.metrics = metrics
	}
}

// WithClock overrides the engine's time source. Intended for tests that need
// deterministic due dates and hold expiry.
func WithClock(clock func() time.Time) Option {
	return func(e *Engine) {
		e.clock = clock
	}
}

// NewEngine creates an Engine executing every operation through the given
// unit of work.
func NewEngine(uow UnitOfWork, options ...Option) (Engine, error) {
	if uow == nil {
		return Engine{}, ErrNilUnitOfWork
	}

	engine := Engine{
		uow:   uow,
		clock: time.Now,
	}

	for _, option := range options {
		option(&engine)
	}

	return engine, nil
}

func (e Engine) now() time.Time {
	return e.clock().UTC()
}

// logOperation logs operational information at info level if a logger is configured.
func (e Engine) logOperation(action string, args ...any) {
	if e.logger != nil {
		e.logger.Info(logMsgOperation+action, args...)
	}
}

// logRejection logs a rejected precondition at debug level if a logger is configured.
func (e Engine) logRejection(action string, args ...any) {
	if e.logger != nil {
		e.logger.Debug(logMsgOperation+action, args...)
	}
}

func (e Engine) countOutcome(metric string, labels map[string]string) {
	if e.metrics != nil {
		e.metrics.IncrementCounter(metric, labels)
	}
}

func (e Engine) recordDuration(operation string, start time.Time) {
	if e.metrics != nil {
		e.metrics.RecordDuration(
			metricOperationDuration,
			time.Since(start),
			map[string]string{metricLabelOperation: operation},
		)
	}
}

// durationToMilliseconds converts a time.Duration to float64 milliseconds with 3 decimal places.
func durationToMilliseconds(d time.Duration) float64 {
	return math.Round(float64(d.Nanoseconds())/1e6*1000) / 1000
}
