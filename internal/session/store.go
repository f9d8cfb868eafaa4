package session

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/kode4food/timebox"

	"github.com/advier-web/parkmanager-tool-new-sub001/pkg/api"
	"github.com/advier-web/parkmanager-tool-new-sub001/pkg/events"
	"github.com/advier-web/parkmanager-tool-new-sub001/pkg/log"
)

type (
	// Store persists wizard sessions as event-sourced aggregates
	Store struct {
		exec  *timebox.Executor[*api.WizardState]
		newID func() api.SessionID
		hooks []ResetHook
	}

	// ResetHook runs after a session was reset. Failures are logged and
	// otherwise ignored
	ResetHook func(context.Context, api.SessionID) error

	// Aggregator is the timebox aggregator for wizard state
	Aggregator = timebox.Aggregator[*api.WizardState]
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrInvalidPark     = errors.New("invalid business park")
)

// NewStore creates a session store on top of a timebox store. Every raised
// event is also published on the store's timebox EventHub, where watchers
// consume it per session
func NewStore(store *timebox.Store) *Store {
	return &Store{
		exec: timebox.NewExecutor(
			store, events.NewSessionState, events.SessionAppliers,
		),
		newID: func() api.SessionID {
			return api.SessionID(uuid.New().String())
		},
	}
}

// OnReset registers a hook that runs after every reset
func (s *Store) OnReset(h ResetHook) {
	s.hooks = append(s.hooks, h)
}

// Start creates a new, empty session
func (s *Store) Start(ctx context.Context) (*api.WizardState, error) {
	id := s.newID()
	st, err := s.exec.Exec(ctx, events.SessionKey(id),
		func(st *api.WizardState, ag *Aggregator) error {
			return events.Raise(ag, api.EventTypeSessionStarted,
				api.SessionStartedEvent{SessionID: id},
			)
		},
	)
	if err != nil {
		return nil, err
	}
	slog.Info("Session started",
		log.SessionID(id))
	return st, nil
}

// Get rehydrates a session from its events
func (s *Store) Get(
	ctx context.Context, id api.SessionID,
) (*api.WizardState, error) {
	st, err := s.exec.Exec(ctx, events.SessionKey(id),
		func(*api.WizardState, *Aggregator) error {
			return nil
		},
	)
	if err != nil {
		return nil, err
	}
	if st.ID == "" {
		return nil, ErrSessionNotFound
	}
	return st, nil
}

// UpdatePark replaces the business park metadata after validating it
func (s *Store) UpdatePark(
	ctx context.Context, id api.SessionID, park api.BusinessPark,
) (*api.WizardState, error) {
	if err := park.Validate(); err != nil {
		return nil, errors.Join(ErrInvalidPark, err)
	}
	return s.raise(ctx, id, api.EventTypeParkUpdated,
		api.ParkUpdatedEvent{Park: park},
	)
}

// ToggleReason selects or deselects a reason
func (s *Store) ToggleReason(
	ctx context.Context, id api.SessionID, reason api.ReasonID,
) (*api.WizardState, error) {
	return s.raise(ctx, id, api.EventTypeReasonToggled,
		api.ReasonToggledEvent{ReasonID: reason},
	)
}

// ToggleSolution selects or deselects a solution. Deselecting drops the
// solution's variant choice
func (s *Store) ToggleSolution(
	ctx context.Context, id api.SessionID, sol api.SolutionID,
) (*api.WizardState, error) {
	return s.raise(ctx, id, api.EventTypeSolutionToggled,
		api.SolutionToggledEvent{SolutionID: sol},
	)
}

// SetVariant chooses a variant for a selected solution. Choices for
// solutions that are not selected leave the session unchanged
func (s *Store) SetVariant(
	ctx context.Context, id api.SessionID, sol api.SolutionID,
	variant api.VariantID,
) (*api.WizardState, error) {
	return s.raise(ctx, id, api.EventTypeVariantSet,
		api.VariantSetEvent{SolutionID: sol, VariantID: variant},
	)
}

// SetGovernanceModel chooses the governance model
func (s *Store) SetGovernanceModel(
	ctx context.Context, id api.SessionID, gm api.GovernanceModelID,
) (*api.WizardState, error) {
	return s.raise(ctx, id, api.EventTypeGovernanceModelSet,
		api.GovernanceModelSetEvent{GovernanceModelID: gm},
	)
}

// Reset empties a session and then runs the reset hooks
func (s *Store) Reset(
	ctx context.Context, id api.SessionID,
) (*api.WizardState, error) {
	st, err := s.raise(ctx, id, api.EventTypeSessionReset,
		api.SessionResetEvent{},
	)
	if err != nil {
		return nil, err
	}
	for _, h := range s.hooks {
		if err := h(ctx, id); err != nil {
			slog.Warn("Session reset hook failed",
				log.SessionID(id),
				log.Error(err))
		}
	}
	return st, nil
}

func (s *Store) raise(
	ctx context.Context, id api.SessionID, et api.EventType, data any,
) (*api.WizardState, error) {
	st, err := s.exec.Exec(ctx, events.SessionKey(id),
		func(st *api.WizardState, ag *Aggregator) error {
			if st.ID == "" {
				return ErrSessionNotFound
			}
			return events.Raise(ag, et, data)
		},
	)
	if err != nil {
		return nil, err
	}
	slog.Debug("Session updated",
		log.SessionID(id),
		slog.String("event_type", string(et)))
	return st, nil
}
