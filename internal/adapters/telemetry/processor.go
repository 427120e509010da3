package telemetry

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/modres/internal/core/ports"
)

// LogProcessor implements sdktrace.SpanProcessor by logging every finished span at debug level.
type LogProcessor struct {
	logger ports.Logger
}

// NewLogProcessor returns a new LogProcessor.
func NewLogProcessor(logger ports.Logger) *LogProcessor {
	return &LogProcessor{logger: logger}
}

// OnStart does nothing.
func (p *LogProcessor) OnStart(_ context.Context, _ sdktrace.ReadWriteSpan) {}

// OnEnd logs the span name, its duration and its attributes.
func (p *LogProcessor) OnEnd(s sdktrace.ReadOnlySpan) {
	if p.logger == nil || !s.SpanContext().IsValid() {
		return
	}

	args := make([]any, 0, 2*len(s.Attributes())+4)
	args = append(args, "duration", s.EndTime().Sub(s.StartTime()).Round(time.Microsecond).String())
	for _, kv := range s.Attributes() {
		args = append(args, string(kv.Key), kv.Value.Emit())
	}
	if s.Status().Code == codes.Error {
		args = append(args, "error", s.Status().Description)
	}

	p.logger.Debug("span "+s.Name(), args...)
}

// ForceFlush does nothing.
func (p *LogProcessor) ForceFlush(_ context.Context) error {
	return nil
}

// Shutdown does nothing.
func (p *LogProcessor) Shutdown(_ context.Context) error {
	return nil
}

// Install registers a global TracerProvider feeding the given processors and returns it.
// Callers shut the provider down when done.
func Install(processors ...sdktrace.SpanProcessor) *sdktrace.TracerProvider {
	opts := make([]sdktrace.TracerProviderOption, 0, len(processors))
	for _, sp := range processors {
		opts = append(opts, sdktrace.WithSpanProcessor(sp))
	}
	tp := sdktrace.NewTracerProvider(opts...)
	otel.SetTracerProvider(tp)
	return tp
}
