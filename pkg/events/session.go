package events

import (
	"github.com/kode4food/timebox"

	"github.com/advier-web/parkmanager-tool-new-sub001/pkg/api"
)

const SessionPrefix = "session"

var SessionAppliers = makeSessionAppliers()

// NewSessionState creates an empty wizard state with initialized collections
func NewSessionState() *api.WizardState {
	return api.NewWizardState()
}

// SessionKey returns the aggregate ID under which a session's events live
func SessionKey(id api.SessionID) timebox.AggregateID {
	return timebox.NewAggregateID(SessionPrefix, timebox.ID(id))
}

// IsSessionEvent returns true if the event is for a session aggregate
func IsSessionEvent(ev *timebox.Event) bool {
	return len(ev.AggregateID) >= 2 && ev.AggregateID[0] == SessionPrefix
}

func makeSessionAppliers() timebox.Appliers[*api.WizardState] {
	return MakeAppliers(map[api.EventType]timebox.Applier[*api.WizardState]{
		api.EventTypeSessionStarted:     timebox.MakeApplier(sessionStarted),
		api.EventTypeParkUpdated:        timebox.MakeApplier(parkUpdated),
		api.EventTypeReasonToggled:      timebox.MakeApplier(reasonToggled),
		api.EventTypeSolutionToggled:    timebox.MakeApplier(solutionToggled),
		api.EventTypeVariantSet:         timebox.MakeApplier(variantSet),
		api.EventTypeGovernanceModelSet: timebox.MakeApplier(governanceSet),
		api.EventTypeSessionReset:       timebox.MakeApplier(sessionReset),
	})
}

func sessionStarted(
	st *api.WizardState, ev *timebox.Event, data api.SessionStartedEvent,
) *api.WizardState {
	return st.
		SetID(data.SessionID).
		SetCreatedAt(ev.Timestamp).
		SetLastUpdated(ev.Timestamp)
}

func parkUpdated(
	st *api.WizardState, ev *timebox.Event, data api.ParkUpdatedEvent,
) *api.WizardState {
	return st.
		SetPark(data.Park).
		SetLastUpdated(ev.Timestamp)
}

func reasonToggled(
	st *api.WizardState, ev *timebox.Event, data api.ReasonToggledEvent,
) *api.WizardState {
	return st.
		ToggleReason(data.ReasonID).
		SetLastUpdated(ev.Timestamp)
}

func solutionToggled(
	st *api.WizardState, ev *timebox.Event, data api.SolutionToggledEvent,
) *api.WizardState {
	return st.
		ToggleSolution(data.SolutionID).
		SetLastUpdated(ev.Timestamp)
}

func variantSet(
	st *api.WizardState, ev *timebox.Event, data api.VariantSetEvent,
) *api.WizardState {
	return st.
		SetVariant(data.SolutionID, data.VariantID).
		SetLastUpdated(ev.Timestamp)
}

func governanceSet(
	st *api.WizardState, ev *timebox.Event, data api.GovernanceModelSetEvent,
) *api.WizardState {
	return st.
		SetGovernanceModel(data.GovernanceModelID).
		SetLastUpdated(ev.Timestamp)
}

func sessionReset(
	st *api.WizardState, ev *timebox.Event, _ api.SessionResetEvent,
) *api.WizardState {
	return st.
		Reset().
		SetLastUpdated(ev.Timestamp)
}
