package api

type (
	// EventType identifies the kind of a session event
	EventType string

	// SessionStartedEvent is emitted when a new wizard session is created
	SessionStartedEvent struct {
		SessionID SessionID `json:"session_id"`
	}

	// ParkUpdatedEvent is emitted when business park metadata is entered
	ParkUpdatedEvent struct {
		Park BusinessPark `json:"park"`
	}

	// ReasonToggledEvent is emitted when a reason is selected or deselected
	ReasonToggledEvent struct {
		ReasonID ReasonID `json:"reason_id"`
	}

	// SolutionToggledEvent is emitted when a solution is selected or
	// deselected
	SolutionToggledEvent struct {
		SolutionID SolutionID `json:"solution_id"`
	}

	// VariantSetEvent is emitted when a variant is chosen for a solution
	VariantSetEvent struct {
		SolutionID SolutionID `json:"solution_id"`
		VariantID  VariantID  `json:"variant_id"`
	}

	// GovernanceModelSetEvent is emitted when a governance model is chosen
	GovernanceModelSetEvent struct {
		GovernanceModelID GovernanceModelID `json:"governance_model_id"`
	}

	// SessionResetEvent is emitted when the user starts over
	SessionResetEvent struct{}
)

const (
	EventTypeSessionStarted     EventType = "session_started"
	EventTypeParkUpdated        EventType = "park_updated"
	EventTypeReasonToggled      EventType = "reason_toggled"
	EventTypeSolutionToggled    EventType = "solution_toggled"
	EventTypeVariantSet         EventType = "variant_set"
	EventTypeGovernanceModelSet EventType = "governance_model_set"
	EventTypeSessionReset       EventType = "session_reset"
)
