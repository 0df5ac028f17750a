package telemetry

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// TraceHeader carries the trace id back to callers.
const TraceHeader = "X-Trace-ID"

type httpInstruments struct {
	duration metric.Float64Histogram
	total    metric.Int64Counter
	active   metric.Int64UpDownCounter
}

func newHTTPInstruments() (*httpInstruments, error) {
	meter := otel.Meter(instrumentationName)

	duration, err := meter.Float64Histogram(
		"http.server.request.duration",
		metric.WithDescription("HTTP request duration in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	total, err := meter.Int64Counter(
		"http.server.request.total",
		metric.WithDescription("Total number of HTTP requests"),
	)
	if err != nil {
		return nil, err
	}

	active, err := meter.Int64UpDownCounter(
		"http.server.active_requests",
		metric.WithDescription("Number of in-flight HTTP requests"),
	)
	if err != nil {
		return nil, err
	}

	return &httpInstruments{duration: duration, total: total, active: active}, nil
}

// Middleware returns the otelgin tracer followed by a handler that records
// request metrics and echoes the trace id in TraceHeader.
func Middleware(serviceName string) []gin.HandlerFunc {
	inst, err := newHTTPInstruments()
	if err != nil {
		otel.Handle(err)
	}

	return []gin.HandlerFunc{otelgin.Middleware(serviceName), record(inst)}
}

func record(inst *httpInstruments) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		start := time.Now()
		route := attribute.String("http.route", c.FullPath())
		method := attribute.String("http.method", c.Request.Method)

		if inst != nil {
			inFlight := metric.WithAttributes(method, route)
			inst.active.Add(ctx, 1, inFlight)
			defer inst.active.Add(ctx, -1, inFlight)
		}

		if id := TraceID(ctx); id != "" {
			c.Header(TraceHeader, id)
		}

		c.Next()

		if inst == nil {
			return
		}

		done := metric.WithAttributes(method, route, attribute.Int("http.status_code", c.Writer.Status()))
		inst.duration.Record(ctx, time.Since(start).Seconds(), done)
		inst.total.Add(ctx, 1, done)
	}
}
