package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/4kternos/fitting-room/internal/sizing"
	"github.com/4kternos/fitting-room/internal/store"
	"github.com/4kternos/fitting-room/internal/store/model"
	"github.com/4kternos/fitting-room/pkg/log"
	"github.com/4kternos/fitting-room/pkg/metrics"
	"github.com/google/uuid"
)

// Fitting is a session together with the sizes derived from its current measurements.
type Fitting struct {
	Session        model.FittingSession
	Recommendation sizing.SuitRecommendation
	Summary        string
}

func newFitting(session model.FittingSession) *Fitting {
	rec := sizing.CalculateSuitSize(session.Measurements())
	return &Fitting{
		Session:        session,
		Recommendation: rec,
		Summary:        sizing.Summary(rec),
	}
}

// MeasurementsUpdate carries a partial change of a session's measurements. Nil fields are left untouched.
type MeasurementsUpdate struct {
	Height      *float64
	Weight      *float64
	Age         *float64
	ChestAdjust *int
	WaistAdjust *int
	HipAdjust   *int
}

func (u MeasurementsUpdate) Apply(m sizing.Measurements) sizing.Measurements {
	if u.Height != nil {
		m.Height = *u.Height
	}
	if u.Weight != nil {
		m.Weight = *u.Weight
	}
	if u.Age != nil {
		m.Age = *u.Age
	}
	if u.ChestAdjust != nil {
		m.ChestAdjust = *u.ChestAdjust
	}
	if u.WaistAdjust != nil {
		m.WaistAdjust = *u.WaistAdjust
	}
	if u.HipAdjust != nil {
		m.HipAdjust = *u.HipAdjust
	}
	return m
}

type FittingServiceOption func(*FittingService)

// WithClock replaces the wall clock used to stamp and expire sessions.
func WithClock(now func() time.Time) FittingServiceOption {
	return func(s *FittingService) {
		s.now = now
	}
}

// FittingService turns measurements into suit recommendations and keeps the
// short-lived fitting sessions a form works against.
type FittingService struct {
	store  store.Store
	ttl    time.Duration
	now    func() time.Time
	logger *log.StructuredLogger
}

func NewFittingService(store store.Store, ttl time.Duration, opts ...FittingServiceOption) *FittingService {
	s := &FittingService{
		store:  store,
		ttl:    ttl,
		now:    time.Now,
		logger: log.NewDebugLogger("fitting_service"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// clock returns the current time in UTC so stored timestamps compare consistently.
func (s *FittingService) clock() time.Time {
	return s.now().UTC()
}

func (s *FittingService) Recommend(ctx context.Context, m sizing.Measurements) sizing.SuitRecommendation {
	tracer := s.logger.WithContext(ctx).Operation("recommend").
		WithFloat("weight", m.Weight).
		WithInt("chest_adjust", m.ChestAdjust).
		Build()

	rec := sizing.CalculateSuitSize(m)
	metrics.IncreaseRecommendationsTotalMetric(rec.Jacket)

	tracer.Success().WithInt("jacket", rec.Jacket).WithInt("trousers", rec.Trousers).Log()
	return rec
}

// CreateSession opens a session. A nil m starts the session from the form defaults.
func (s *FittingService) CreateSession(ctx context.Context, m *sizing.Measurements) (*Fitting, error) {
	measurements := sizing.DefaultMeasurements()
	if m != nil {
		measurements = *m
	}

	tracer := s.logger.WithContext(ctx).Operation("create_session").
		WithBool("defaults", m == nil).
		Build()

	session := model.NewFittingSession(uuid.New(), measurements, s.clock().Add(s.ttl))
	created, err := s.store.Session().Create(ctx, session)
	if err != nil {
		tracer.Error(err).Log()
		return nil, fmt.Errorf("failed to create fitting session: %w", err)
	}

	metrics.IncreaseSessionEventsTotalMetric(metrics.SessionCreated, 1)

	fitting := newFitting(*created)
	tracer.Success().
		WithUUID("session_id", created.ID).
		WithInt("jacket", fitting.Recommendation.Jacket).
		Log()
	return fitting, nil
}

// GetSession returns a live session. Expired sessions are reported as not found even before the reaper removes them.
func (s *FittingService) GetSession(ctx context.Context, id uuid.UUID) (*Fitting, error) {
	tracer := s.logger.WithContext(ctx).Operation("get_session").
		WithUUID("session_id", id).
		Build()

	session, err := s.getLiveSession(ctx, id)
	if err != nil {
		tracer.Error(err).Log()
		return nil, err
	}

	tracer.Success().Log()
	return newFitting(*session), nil
}

// UpdateSession applies a partial change to a live session and extends its expiration.
func (s *FittingService) UpdateSession(ctx context.Context, id uuid.UUID, update MeasurementsUpdate) (*Fitting, error) {
	tracer := s.logger.WithContext(ctx).Operation("update_session").
		WithUUID("session_id", id).
		Build()

	ctx, err := s.store.NewTransactionContext(ctx)
	if err != nil {
		tracer.Error(err).Log()
		return nil, err
	}
	defer func() {
		_, _ = store.Rollback(ctx)
	}()

	session, err := s.getLiveSession(ctx, id)
	if err != nil {
		tracer.Error(err).Log()
		return nil, err
	}

	session.SetMeasurements(update.Apply(session.Measurements()))
	session.ExpiresAt = s.clock().Add(s.ttl)
	tracer.Step("apply_update").WithParam("measurements", session.Measurements()).Log()

	updated, err := s.store.Session().Update(ctx, *session)
	if err != nil {
		tracer.Error(err).Log()
		if errors.Is(err, store.ErrRecordNotFound) {
			return nil, NewErrSessionNotFound(id)
		}
		return nil, fmt.Errorf("failed to update fitting session: %w", err)
	}

	if _, err := store.Commit(ctx); err != nil {
		tracer.Error(err).Log()
		return nil, err
	}

	metrics.IncreaseSessionEventsTotalMetric(metrics.SessionUpdated, 1)

	fitting := newFitting(*updated)
	tracer.Success().WithInt("jacket", fitting.Recommendation.Jacket).Log()
	return fitting, nil
}

// DeleteSession discards a session and returns its last state.
func (s *FittingService) DeleteSession(ctx context.Context, id uuid.UUID) (*Fitting, error) {
	tracer := s.logger.WithContext(ctx).Operation("delete_session").
		WithUUID("session_id", id).
		Build()

	ctx, err := s.store.NewTransactionContext(ctx)
	if err != nil {
		tracer.Error(err).Log()
		return nil, err
	}
	defer func() {
		_, _ = store.Rollback(ctx)
	}()

	session, err := s.store.Session().Get(ctx, id)
	if err != nil {
		tracer.Error(err).Log()
		if errors.Is(err, store.ErrRecordNotFound) {
			return nil, NewErrSessionNotFound(id)
		}
		return nil, fmt.Errorf("failed to get fitting session: %w", err)
	}

	if err := s.store.Session().Delete(ctx, id); err != nil {
		tracer.Error(err).Log()
		if errors.Is(err, store.ErrRecordNotFound) {
			return nil, NewErrSessionNotFound(id)
		}
		return nil, fmt.Errorf("failed to delete fitting session: %w", err)
	}

	if _, err := store.Commit(ctx); err != nil {
		tracer.Error(err).Log()
		return nil, err
	}

	metrics.IncreaseSessionEventsTotalMetric(metrics.SessionDeleted, 1)

	tracer.Success().Log()
	return newFitting(*session), nil
}

// ReapExpired deletes every session past its expiration and returns how many were removed.
func (s *FittingService) ReapExpired(ctx context.Context) (int, error) {
	tracer := s.logger.WithContext(ctx).Operation("reap_expired_sessions").Build()

	deleted, err := s.store.Session().DeleteExpired(ctx, s.clock())
	if err != nil {
		tracer.Error(err).Log()
		return 0, fmt.Errorf("failed to delete expired sessions: %w", err)
	}

	metrics.IncreaseSessionEventsTotalMetric(metrics.SessionExpired, int(deleted))

	tracer.Success().WithInt("deleted", int(deleted)).Log()
	return int(deleted), nil
}

func (s *FittingService) getLiveSession(ctx context.Context, id uuid.UUID) (*model.FittingSession, error) {
	session, err := s.store.Session().Get(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return nil, NewErrSessionNotFound(id)
		}
		return nil, fmt.Errorf("failed to get fitting session: %w", err)
	}

	if session.Expired(s.clock()) {
		return nil, NewErrSessionNotFound(id)
	}

	return session, nil
}
