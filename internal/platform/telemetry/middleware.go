package telemetry

import (
	"errors"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen/corgi-bot/internal/platform/logging"
)

// TraceIDHeader echoes the trace of a sampled request back to the caller.
const TraceIDHeader = "X-Trace-ID"

// httpInstruments are the request instruments on the global meter. Any of
// them may be nil when the meter refused to create it.
type httpInstruments struct {
	duration metric.Float64Histogram
	total    metric.Int64Counter
	inFlight metric.Int64UpDownCounter
}

func newHTTPInstruments() *httpInstruments {
	meter := otel.Meter(instrumentationName)

	duration, durErr := meter.Float64Histogram("http.server.request.duration",
		metric.WithDescription("Time spent answering a chat host request"),
		metric.WithUnit("s"),
	)
	total, totalErr := meter.Int64Counter("http.server.request.total",
		metric.WithDescription("Requests answered"),
	)
	inFlight, inFlightErr := meter.Int64UpDownCounter("http.server.active_requests",
		metric.WithDescription("Requests being answered"),
	)

	if err := errors.Join(durErr, totalErr, inFlightErr); err != nil {
		otel.Handle(err)
	}

	return &httpInstruments{duration: duration, total: total, inFlight: inFlight}
}

// Instrument records request metrics, tags the span with the community
// route parameter and, for traced requests, sets X-Trace-ID and adds
// trace_id to the request logger. Mount it after TracingMiddleware.
func Instrument() gin.HandlerFunc {
	inst := newHTTPInstruments()

	return func(c *gin.Context) {
		start := time.Now()
		ctx := c.Request.Context()
		span := trace.SpanFromContext(ctx)

		if id, err := strconv.ParseInt(c.Param("communityID"), 10, 64); err == nil {
			span.SetAttributes(CommunityKey.Int64(id))
		}

		if sc := span.SpanContext(); sc.HasTraceID() {
			traceID := sc.TraceID().String()
			c.Header(TraceIDHeader, traceID)
			c.Request = c.Request.WithContext(logging.WithTraceID(ctx, traceID))
		}

		route := metric.WithAttributes(
			attribute.String("http.method", c.Request.Method),
			attribute.String("http.route", c.FullPath()),
		)

		if inst.inFlight != nil {
			inst.inFlight.Add(ctx, 1, route)
			defer inst.inFlight.Add(ctx, -1, route)
		}

		c.Next()

		status := metric.WithAttributes(attribute.Int("http.status_code", c.Writer.Status()))

		if inst.duration != nil {
			inst.duration.Record(ctx, time.Since(start).Seconds(), route, status)
		}

		if inst.total != nil {
			inst.total.Add(ctx, 1, route, status)
		}
	}
}

// TracingMiddleware starts a server span per request.
func TracingMiddleware(serviceName string) gin.HandlerFunc {
	return otelgin.Middleware(serviceName)
}
