// Package content resolves clinic content from the document store into view models that
// are always fully populated. Every accessor issues one query and merges the result with
// the injected default tables: singletons field by field, collections wholesale.
package content

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/occlusa/dental-web/internal/images"
	"github.com/occlusa/dental-web/internal/platform/observability"
	"github.com/occlusa/dental-web/internal/store"
)

const defaultTimeout = 5 * time.Second

var tracer = otel.Tracer("github.com/occlusa/dental-web/internal/content")

// Result is an accessor outcome. Data is always complete; Err reports the store failure
// that forced a fallback, if any.
type Result[T any] struct {
	Data    T     `json:"data"`
	Loading bool  `json:"loading"`
	Err     error `json:"-"`
}

// Resolver reads content categories from a store.
type Resolver struct {
	client   store.Client
	defaults Defaults
	images   images.Builder
	logger   *zap.Logger
	timeout  time.Duration
}

// Option customises a Resolver.
type Option func(*Resolver)

// WithDefaults replaces the built-in default tables.
func WithDefaults(d Defaults) Option {
	return func(r *Resolver) {
		r.defaults = clone(d)
	}
}

// WithLogger sets the logger used for fallback warnings.
func WithLogger(logger *zap.Logger) Option {
	return func(r *Resolver) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithImages sets the image URL builder.
func WithImages(b images.Builder) Option {
	return func(r *Resolver) {
		r.images = b
	}
}

// WithTimeout bounds every store query.
func WithTimeout(d time.Duration) Option {
	return func(r *Resolver) {
		if d > 0 {
			r.timeout = d
		}
	}
}

// New constructs a Resolver. A nil client behaves like an empty store.
func New(client store.Client, opts ...Option) *Resolver {
	if client == nil {
		client = store.NewMemory()
	}
	r := &Resolver{
		client:   client,
		defaults: DefaultTables(),
		logger:   zap.NewNop(),
		timeout:  defaultTimeout,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

// Defaults returns a copy of the tables the resolver falls back to.
func (r *Resolver) Defaults() Defaults {
	return clone(r.defaults)
}

// fetch runs one store query. Failures are logged and returned so callers can surface them
// on Result.Err while rendering defaults.
func (r *Resolver) fetch(ctx context.Context, category string, q store.Query) ([]fields, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	ctx, span := tracer.Start(ctx, "content."+category, trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()
	span.SetAttributes(
		attribute.String("content.category", category),
		attribute.String("content.type", q.Type),
	)

	docs, err := r.client.Query(ctx, q)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "store query failed")
		span.AddEvent("content.fallback", trace.WithAttributes(
			attribute.String("content.category", category),
			attribute.String("reason", "store_error"),
		))
		r.loggerFor(ctx).Warn("content store query failed, using defaults",
			zap.String("category", category),
			zap.String("type", q.Type),
			zap.Error(err),
		)
		return nil, err
	}

	out := toFieldsList(docs)
	span.SetAttributes(
		attribute.Int("content.documents", len(out)),
		attribute.Bool("content.fallback", len(out) == 0),
	)
	return out, nil
}

func (r *Resolver) loggerFor(ctx context.Context) *zap.Logger {
	if logger := observability.FromContext(ctx); logger != observability.NoopLogger() {
		return logger
	}
	return r.logger
}

// imageURL resolves ref at width, falling back to placeholder.
func (r *Resolver) imageURL(ref *images.Ref, width int, placeholder string) string {
	return r.images.URLOr(ref, width, placeholder)
}

func done[T any](data T, err error) Result[T] {
	return Result[T]{Data: data, Err: err}
}
