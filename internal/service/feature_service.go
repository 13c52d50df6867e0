// FILE: internal/service/feature_service.go
package service

import (
	"context"
	"fmt"

	"feature-feedback-board/internal/dto"
	"feature-feedback-board/internal/mapper"
	"feature-feedback-board/internal/pkg/logger"
	"feature-feedback-board/internal/pkg/validation"
	"feature-feedback-board/internal/repository/contract"
	"feature-feedback-board/internal/repository/memory"
	"feature-feedback-board/internal/repository/specification"
	"feature-feedback-board/pkg/board"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const moduleName = "FeatureService"

type IFeatureService interface {
	Create(ctx context.Context, req *dto.CreateFeatureRequest) (*dto.FeatureResponse, error)
	Import(ctx context.Context, reqs []dto.ImportFeatureRequest) (int, error)
	Vote(ctx context.Context, id string) *dto.FeatureResponse
	SetStatus(ctx context.Context, req *dto.SetStatusRequest) (*dto.FeatureResponse, error)
	List(ctx context.Context) *dto.FeatureListResponse
	SetFilter(ctx context.Context, raw string) error
	SetSort(ctx context.Context, raw string) error
	Select(ctx context.Context, id string)
	ClearSelection(ctx context.Context)
	Selected(ctx context.Context) *dto.FeatureResponse
}

type Option func(*featureService)

func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(s *featureService) {
		s.tracer = tp.Tracer("feature-feedback-board/internal/service")
	}
}

func WithSort(order board.SortOrder) Option {
	return func(s *featureService) {
		s.sort = order
	}
}

// featureService holds what the page shell used to keep in component state:
// the store, the list controls and the selection. Callers share one instance.
type featureService struct {
	store     contract.FeatureStore
	cache     *memory.ProjectionCache
	logger    logger.ILogger
	mapper    *mapper.FeatureMapper
	tracer    trace.Tracer
	filter    board.Filter
	sort      board.SortOrder
	selection board.Selection
}

func NewFeatureService(
	store contract.FeatureStore,
	cache *memory.ProjectionCache,
	logger logger.ILogger,
	opts ...Option,
) IFeatureService {
	s := &featureService{
		store:  store,
		cache:  cache,
		logger: logger,
		mapper: mapper.NewFeatureMapper(),
		tracer: otel.Tracer("feature-feedback-board/internal/service"),
		filter: board.ShowAll(),
		sort:   board.SortVotesDesc,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *featureService) start(ctx context.Context, op string) (context.Context, trace.Span) {
	return s.tracer.Start(ctx, moduleName+"."+op)
}

func (s *featureService) Create(ctx context.Context, req *dto.CreateFeatureRequest) (*dto.FeatureResponse, error) {
	_, span := s.start(ctx, "Create")
	defer span.End()

	payload, err := validation.ValidateFeature(req.Title, req.Description, string(req.Status))
	if err != nil {
		span.SetStatus(codes.Error, "validation failed")
		s.logger.Debug(moduleName, "Feature rejected by validation", map[string]interface{}{"error": err.Error()})
		return nil, err
	}

	feature, err := s.store.Create(payload)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		s.logger.Error(moduleName, "Failed to create feature", map[string]interface{}{"error": err})
		return nil, fmt.Errorf("create feature: %w", err)
	}

	// A new submission becomes the detail target and the list goes back to "all"
	s.selection.Select(feature.Id)
	s.filter = board.ShowAll()

	span.SetAttributes(attribute.String("feature.id", feature.Id))
	s.logger.Info(moduleName, "Feature created", map[string]interface{}{
		"id":     feature.Id,
		"title":  feature.Title,
		"status": feature.Status.String(),
	})
	return s.mapper.ToResponse(feature), nil
}

// Import validates every record before handing the batch to the store.
func (s *featureService) Import(ctx context.Context, reqs []dto.ImportFeatureRequest) (int, error) {
	_, span := s.start(ctx, "Import")
	defer span.End()

	valid := make([]dto.ImportFeatureRequest, 0, len(reqs))
	for i, req := range reqs {
		checked, err := validation.ValidateImport(req)
		if err != nil {
			span.SetStatus(codes.Error, "validation failed")
			return 0, fmt.Errorf("record %d: %w", i, err)
		}
		valid = append(valid, checked)
	}

	imported, err := s.store.Import(valid)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return 0, fmt.Errorf("import features: %w", err)
	}

	span.SetAttributes(attribute.Int("feature.count", len(imported)))
	s.logger.Info(moduleName, "Features imported", map[string]interface{}{"count": len(imported)})
	return len(imported), nil
}

// Vote returns the updated feature, or nil when id is unknown.
func (s *featureService) Vote(ctx context.Context, id string) *dto.FeatureResponse {
	_, span := s.start(ctx, "Vote")
	defer span.End()
	span.SetAttributes(attribute.String("feature.id", id))

	if !s.store.Vote(id) {
		s.logger.Debug(moduleName, "Vote ignored, feature not found", map[string]interface{}{"id": id})
		return nil
	}
	return s.find(id)
}

// SetStatus returns the updated feature, or nil when id is unknown. Only an
// unrecognised status is an error.
func (s *featureService) SetStatus(ctx context.Context, req *dto.SetStatusRequest) (*dto.FeatureResponse, error) {
	_, span := s.start(ctx, "SetStatus")
	defer span.End()
	span.SetAttributes(attribute.String("feature.id", req.Id))

	status, err := validation.ValidateStatus(req.Status)
	if err != nil {
		span.SetStatus(codes.Error, "validation failed")
		return nil, err
	}

	if !s.store.SetStatus(req.Id, status) {
		s.logger.Debug(moduleName, "Status change ignored, feature not found", map[string]interface{}{"id": req.Id})
		return nil, nil
	}

	s.logger.Info(moduleName, "Feature status changed", map[string]interface{}{"id": req.Id, "status": status.String()})
	return s.find(req.Id), nil
}

func (s *featureService) find(id string) *dto.FeatureResponse {
	feature, ok := s.store.FindOne(specification.ByID{ID: id})
	if !ok {
		return nil
	}
	return s.mapper.ToResponse(feature)
}

func (s *featureService) List(ctx context.Context) *dto.FeatureListResponse {
	_, span := s.start(ctx, "List")
	defer span.End()

	revision := s.store.Revision()
	items, hit := s.cache.Get(revision, s.filter, s.sort)
	if !hit {
		items = board.Project(s.store.All(), s.filter, s.sort)
		s.cache.Save(revision, s.filter, s.sort, items)
	}
	span.SetAttributes(
		attribute.Bool("projection.cache_hit", hit),
		attribute.String("projection.filter", s.filter.String()),
		attribute.String("projection.sort", s.sort.String()),
	)

	return &dto.FeatureListResponse{
		Features: s.mapper.ToResponses(items),
		Filter:   s.filter.String(),
		Sort:     s.sort.String(),
		Total:    s.store.Count(),
		Matched:  len(items),
	}
}

func (s *featureService) SetFilter(ctx context.Context, raw string) error {
	_, span := s.start(ctx, "SetFilter")
	defer span.End()

	filter, err := board.ParseFilter(raw)
	if err != nil {
		return err
	}
	s.filter = filter
	return nil
}

func (s *featureService) SetSort(ctx context.Context, raw string) error {
	_, span := s.start(ctx, "SetSort")
	defer span.End()

	order, err := board.ParseSortOrder(raw)
	if err != nil {
		return err
	}
	s.sort = order
	return nil
}

func (s *featureService) Select(ctx context.Context, id string) {
	_, span := s.start(ctx, "Select")
	defer span.End()
	span.SetAttributes(attribute.String("feature.id", id))

	s.selection.Select(id)
}

func (s *featureService) ClearSelection(ctx context.Context) {
	_, span := s.start(ctx, "ClearSelection")
	defer span.End()

	s.selection.Clear()
}

// Selected resolves the selection against the live store, or nil.
func (s *featureService) Selected(ctx context.Context) *dto.FeatureResponse {
	_, span := s.start(ctx, "Selected")
	defer span.End()

	feature, ok := s.selection.Resolve(s.store.All())
	if !ok {
		return nil
	}
	return s.mapper.ToResponse(feature)
}
