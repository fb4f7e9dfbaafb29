package observability

import (
	"context"
	"io"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	"github.com/softpaws/petstore-api/internal/domains/pets/domain"
	"github.com/softpaws/petstore-api/internal/domains/pets/ports"
)

const tracerName = "github.com/softpaws/petstore-api/internal/domains/pets/adapters/observability/service"

// Service decorates the pets application port with tracing, logging, and
// metrics.
type Service struct {
	inner   ports.Service
	tracer  trace.Tracer
	logger  *slog.Logger
	metrics serviceMetrics
}

type Option func(*Service)

// WithLogger injects a slog logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithTracer injects a tracer implementation.
func WithTracer(tr trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = tr
	}
}

// WithMeter injects the meter used to create service metrics instruments.
func WithMeter(m metric.Meter) Option {
	return func(s *Service) {
		s.metrics = newServiceMetrics(m)
	}
}

// New wires a decorator around the core service.
func New(inner ports.Service, opts ...Option) ports.Service {
	s := &Service{
		inner:   inner,
		tracer:  nooptrace.NewTracerProvider().Tracer(tracerName),
		logger:  defaultLogger(),
		metrics: newServiceMetrics(nil),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if s.tracer == nil {
		s.tracer = nooptrace.NewTracerProvider().Tracer(tracerName)
	}
	if s.logger == nil {
		s.logger = defaultLogger()
	}
	return s
}

func (s *Service) Create(ctx context.Context, pet *domain.Pet) (*domain.Pet, error) {
	ctx, span := s.startSpan(ctx, "Service.Create", attribute.Int64("pet.id", petID(pet)))
	defer span.End()

	s.logInfo(ctx, "creating pet", slog.Int64("pet.id", petID(pet)))
	result, err := s.inner.Create(ctx, pet)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to create pet", slog.Int64("pet.id", petID(pet)))
	}
	if result != nil {
		s.metrics.recordCreated(ctx, result.Status)
		s.logInfo(ctx, "pet created", slog.Int64("pet.id", result.ID), slog.String("status", string(result.Status)))
	}
	return result, nil
}

func (s *Service) Update(ctx context.Context, pet *domain.Pet) (*domain.Pet, error) {
	ctx, span := s.startSpan(ctx, "Service.Update", attribute.Int64("pet.id", petID(pet)))
	defer span.End()

	result, err := s.inner.Update(ctx, pet)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to update pet", slog.Int64("pet.id", petID(pet)))
	}
	if result != nil {
		s.metrics.recordUpdated(ctx, result.Status)
		s.logInfo(ctx, "pet updated", slog.Int64("pet.id", result.ID), slog.String("status", string(result.Status)))
	}
	return result, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Pet, error) {
	ctx, span := s.startSpan(ctx, "Service.GetByID", attribute.Int64("pet.id", id))
	defer span.End()

	result, err := s.inner.GetByID(ctx, id)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to load pet", slog.Int64("pet.id", id))
	}
	return result, nil
}

func (s *Service) FindByStatus(ctx context.Context, status domain.Status) ([]*domain.Pet, error) {
	ctx, span := s.startSpan(ctx, "Service.FindByStatus", attribute.String("pet.status", string(status)))
	defer span.End()

	result, err := s.inner.FindByStatus(ctx, status)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to find pets by status", slog.String("status", string(status)))
	}
	span.SetAttributes(attribute.Int("pet.result.count", len(result)))
	return result, nil
}

func (s *Service) FindByTags(ctx context.Context, tags []string) ([]*domain.Pet, error) {
	ctx, span := s.startSpan(ctx, "Service.FindByTags", attribute.StringSlice("pet.tags", tags))
	defer span.End()

	result, err := s.inner.FindByTags(ctx, tags)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to find pets by tags")
	}
	span.SetAttributes(attribute.Int("pet.result.count", len(result)))
	return result, nil
}

func (s *Service) UpdateFields(ctx context.Context, id int64, name string, status domain.Status) (*domain.Pet, error) {
	ctx, span := s.startSpan(ctx, "Service.UpdateFields", attribute.Int64("pet.id", id))
	defer span.End()

	result, err := s.inner.UpdateFields(ctx, id, name, status)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to update pet fields", slog.Int64("pet.id", id))
	}
	if result != nil {
		s.metrics.recordUpdated(ctx, result.Status)
		s.logInfo(ctx, "pet fields updated", slog.Int64("pet.id", id), slog.String("status", string(result.Status)))
	}
	return result, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	ctx, span := s.startSpan(ctx, "Service.Delete", attribute.Int64("pet.id", id))
	defer span.End()

	if err := s.inner.Delete(ctx, id); err != nil {
		return s.handleError(ctx, span, err, "failed to delete pet", slog.Int64("pet.id", id))
	}
	s.metrics.recordDeleted(ctx)
	s.logInfo(ctx, "pet deleted", slog.Int64("pet.id", id))
	return nil
}

func (s *Service) AddPhoto(ctx context.Context, id int64, url string) (*domain.Pet, error) {
	ctx, span := s.startSpan(ctx, "Service.AddPhoto", attribute.Int64("pet.id", id))
	defer span.End()

	result, err := s.inner.AddPhoto(ctx, id, url)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to add pet photo", slog.Int64("pet.id", id))
	}
	if result != nil {
		s.logInfo(ctx, "pet photo added", slog.Int64("pet.id", id), slog.Int("photo.count", len(result.PhotoURLs)))
	}
	return result, nil
}

func petID(pet *domain.Pet) int64 {
	if pet == nil {
		return 0
	}
	return pet.ID
}

func (s *Service) startSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	tracer := s.tracer
	if tracer == nil {
		tracer = nooptrace.NewTracerProvider().Tracer(tracerName)
	}
	return tracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

func (s *Service) logInfo(ctx context.Context, msg string, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, msg, attrs...)
}

func (s *Service) handleError(ctx context.Context, span trace.Span, err error, msg string, attrs ...slog.Attr) error {
	if err == nil {
		return nil
	}
	if span != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	if s.logger != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
		s.logger.LogAttrs(ctx, slog.LevelError, msg, attrs...)
	}
	return err
}

func defaultLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type serviceMetrics struct {
	petsCreated metric.Int64Counter
	petsUpdated metric.Int64Counter
	petsDeleted metric.Int64Counter
}

func newServiceMetrics(m metric.Meter) serviceMetrics {
	if m == nil {
		return serviceMetrics{}
	}
	petsCreated, _ := m.Int64Counter("pets.service.created", metric.WithDescription("Number of pets created"))
	petsUpdated, _ := m.Int64Counter("pets.service.updated", metric.WithDescription("Number of pets updated"))
	petsDeleted, _ := m.Int64Counter("pets.service.deleted", metric.WithDescription("Number of pets deleted"))
	return serviceMetrics{
		petsCreated: petsCreated,
		petsUpdated: petsUpdated,
		petsDeleted: petsDeleted,
	}
}

func (m serviceMetrics) recordCreated(ctx context.Context, status domain.Status) {
	addCounter(ctx, m.petsCreated, 1, attribute.String("pet.status", string(status)))
}

func (m serviceMetrics) recordUpdated(ctx context.Context, status domain.Status) {
	addCounter(ctx, m.petsUpdated, 1, attribute.String("pet.status", string(status)))
}

func (m serviceMetrics) recordDeleted(ctx context.Context) {
	addCounter(ctx, m.petsDeleted, 1)
}

func addCounter(ctx context.Context, counter metric.Int64Counter, value int64, attrs ...attribute.KeyValue) {
	if counter == nil {
		return
	}
	counter.Add(ctx, value, metric.WithAttributes(attrs...))
}

var _ ports.Service = (*Service)(nil)
