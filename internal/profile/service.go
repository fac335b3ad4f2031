package profile

import (
	"context"
	"fmt"
	"time"

	"github.com/2beens/fittracker/internal/telemetry/metrics"
	"github.com/2beens/fittracker/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
)

// Service hands out user profiles. A user without a stored profile gets the
// default one, which is saved on first read.
type Service struct {
	store   Store
	metrics *metrics.Manager

	Now func() time.Time
}

func NewService(store Store, metricsManager *metrics.Manager) *Service {
	return &Service{
		store:   store,
		metrics: metricsManager,
		Now:     time.Now,
	}
}

func (s *Service) Get(ctx context.Context, userID string) (_ *UserProfile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.profile.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if userID == "" {
		return nil, ErrEmptyUserID
	}

	p, err := s.store.GetProfile(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	if p != nil {
		return p, nil
	}

	def := NewDefaultProfile(s.Now())
	if err := s.store.SaveProfile(ctx, userID, def); err != nil {
		return nil, fmt.Errorf("save default profile: %w", err)
	}
	log.Debugf("created default profile for user [%s]", userID)
	return &def, nil
}

// Update applies a partial update on top of the current (or default) profile.
func (s *Service) Update(ctx context.Context, userID string, patch Patch) (_ *UserProfile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.profile.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if userID == "" {
		return nil, ErrEmptyUserID
	}
	if err := patch.Validate(); err != nil {
		return nil, err
	}

	current, err := s.store.GetProfile(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	if current == nil {
		def := NewDefaultProfile(s.Now())
		current = &def
	}

	updated := patch.Apply(*current)
	updated.UpdatedAt = s.Now().UTC()
	if err := s.store.SaveProfile(ctx, userID, updated); err != nil {
		return nil, fmt.Errorf("save profile: %w", err)
	}
	if s.metrics != nil {
		s.metrics.CounterProfileUpdates.Inc()
	}
	return &updated, nil
}
