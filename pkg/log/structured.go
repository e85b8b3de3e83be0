package log

import (
	"context"
	"fmt"
	"time"

	"github.com/4kternos/fitting-room/pkg/requestid"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// StructuredLogger logs the lifecycle of an operation (start, steps, outcome)
// as key-value pairs on top of the global zap logger.
type StructuredLogger struct {
	name   string
	fields []any
}

// NewDebugLogger returns a logger emitting operation traces at debug level. Errors are logged at error level.
func NewDebugLogger(name string) *StructuredLogger {
	return &StructuredLogger{name: name}
}

// WithContext attaches the request ID carried by ctx, if any.
func (l *StructuredLogger) WithContext(ctx context.Context) *StructuredLogger {
	fields := append([]any{}, l.fields...)
	if id := requestid.FromContext(ctx); id != "" {
		fields = append(fields, "request_id", id)
	}
	return &StructuredLogger{name: l.name, fields: fields}
}

// Operation starts building the trace of the named operation.
func (l *StructuredLogger) Operation(name string) *OperationBuilder {
	return &OperationBuilder{
		logger: l,
		name:   name,
		fields: append([]any{}, l.fields...),
	}
}

func (l *StructuredLogger) sugar() *zap.SugaredLogger {
	return zap.S().Named(l.name)
}

type OperationBuilder struct {
	logger *StructuredLogger
	name   string
	fields []any
}

func (b *OperationBuilder) WithString(key, value string) *OperationBuilder {
	b.fields = append(b.fields, key, value)
	return b
}

func (b *OperationBuilder) WithInt(key string, value int) *OperationBuilder {
	b.fields = append(b.fields, key, value)
	return b
}

func (b *OperationBuilder) WithFloat(key string, value float64) *OperationBuilder {
	b.fields = append(b.fields, key, value)
	return b
}

func (b *OperationBuilder) WithBool(key string, value bool) *OperationBuilder {
	b.fields = append(b.fields, key, value)
	return b
}

func (b *OperationBuilder) WithUUID(key string, value uuid.UUID) *OperationBuilder {
	b.fields = append(b.fields, key, value.String())
	return b
}

func (b *OperationBuilder) WithParam(key string, value any) *OperationBuilder {
	b.fields = append(b.fields, key, value)
	return b
}

// Build logs the start of the operation and returns its tracer.
func (b *OperationBuilder) Build() *OperationTracer {
	t := &OperationTracer{
		logger:    b.logger,
		operation: b.name,
		fields:    append([]any{"operation", b.name}, b.fields...),
		started:   time.Now(),
	}
	t.logger.sugar().Debugw("operation started", t.fields...)
	return t
}

type OperationTracer struct {
	logger    *StructuredLogger
	operation string
	fields    []any
	started   time.Time
}

func (t *OperationTracer) Step(name string) *Event {
	return t.event(eventStep, fmt.Sprintf("step %s", name), nil)
}

func (t *OperationTracer) Success() *Event {
	return t.event(eventSuccess, "operation succeeded", nil).
		WithParam("duration_ms", time.Since(t.started).Milliseconds())
}

func (t *OperationTracer) Error(err error) *Event {
	return t.event(eventError, "operation failed", err).
		WithParam("duration_ms", time.Since(t.started).Milliseconds())
}

func (t *OperationTracer) event(kind eventKind, msg string, err error) *Event {
	fields := append([]any{}, t.fields...)
	if err != nil {
		fields = append(fields, "error", err)
	}
	return &Event{logger: t.logger, kind: kind, msg: msg, fields: fields}
}

type eventKind int

const (
	eventStep eventKind = iota
	eventSuccess
	eventError
)

// Event is a single trace entry. Nothing is written until Log is called.
type Event struct {
	logger *StructuredLogger
	kind   eventKind
	msg    string
	fields []any
}

func (e *Event) WithString(key, value string) *Event {
	e.fields = append(e.fields, key, value)
	return e
}

func (e *Event) WithInt(key string, value int) *Event {
	e.fields = append(e.fields, key, value)
	return e
}

func (e *Event) WithBool(key string, value bool) *Event {
	e.fields = append(e.fields, key, value)
	return e
}

func (e *Event) WithUUID(key string, value uuid.UUID) *Event {
	e.fields = append(e.fields, key, value.String())
	return e
}

func (e *Event) WithParam(key string, value any) *Event {
	e.fields = append(e.fields, key, value)
	return e
}

func (e *Event) Log() {
	l := e.logger.sugar()
	if e.kind == eventError {
		l.Errorw(e.msg, e.fields...)
		return
	}
	l.Debugw(e.msg, e.fields...)
}
