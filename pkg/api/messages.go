package api

type (
	// SessionResponse returns a wizard state with its progress
	SessionResponse struct {
		State    *WizardState `json:"state"`
		Progress *Progress    `json:"progress"`
	}

	// Progress reports how far the wizard can proceed for a state
	Progress struct {
		Current           Step         `json:"current"`
		Reachable         []Step       `json:"reachable"`
		MissingVariants   []SolutionID `json:"missing_variants,omitempty"`
		AllVariantsChosen bool         `json:"all_variants_chosen"`
	}

	// SetVariantRequest chooses a variant for a selected solution
	SetVariantRequest struct {
		VariantID VariantID `json:"variant_id"`
	}

	// SetGovernanceModelRequest chooses the governance model
	SetGovernanceModelRequest struct {
		GovernanceModelID GovernanceModelID `json:"governance_model_id"`
	}

	// ReasonGroup lists the reasons of one category in display order
	ReasonGroup struct {
		Category *Category `json:"category"`
		Reasons  []*Reason `json:"reasons"`
	}

	// ReasonGroupsResponse contains grouped reasons
	ReasonGroupsResponse struct {
		Groups []*ReasonGroup `json:"groups"`
		Count  int            `json:"count"`
	}

	// SolutionsListResponse contains solutions in display order
	SolutionsListResponse struct {
		Solutions []*Solution `json:"solutions"`
		Count     int         `json:"count"`
	}

	// GovernanceModelsListResponse contains governance models in display
	// order
	GovernanceModelsListResponse struct {
		GovernanceModels []*GovernanceModel `json:"governance_models"`
		Count            int                `json:"count"`
	}

	// Recommendation ranks a solution by the selected reasons it addresses
	Recommendation struct {
		Solution *Solution  `json:"solution"`
		Matches  []ReasonID `json:"matches"`
		Score    int        `json:"score"`
	}

	// RecommendationsResponse contains ranked solutions for a session
	RecommendationsResponse struct {
		Recommendations []*Recommendation `json:"recommendations"`
		Count           int               `json:"count"`
	}

	// ComparisonRow lists the variants of one selected solution for the
	// comparison table, with the chosen one marked
	ComparisonRow struct {
		Solution *Solution  `json:"solution"`
		Variants []*Variant `json:"variants"`
		Chosen   VariantID  `json:"chosen,omitempty"`
	}

	// ComparisonResponse contains the comparison table for a session
	ComparisonResponse struct {
		Rows  []*ComparisonRow `json:"rows"`
		Count int              `json:"count"`
	}

	// HealthResponse provides service health information
	HealthResponse struct {
		Service string `json:"service"`
		Version string `json:"version"`
		Status  string `json:"status"`
		Error   string `json:"error,omitempty"`
	}

	// MessageResponse contains a simple message string
	MessageResponse struct {
		Message string `json:"message"`
	}

	// ErrorResponse contains error details for failed requests
	ErrorResponse struct {
		Error  string `json:"error"`
		Status int    `json:"status,omitempty"`
	}

	// SubscribeRequest is sent by a WebSocket client to control the stream
	SubscribeRequest struct {
		Type string `json:"type"`
	}

	// SessionEvent is pushed to WebSocket watchers when a session changes
	SessionEvent struct {
		Type      string       `json:"type"`
		State     *WizardState `json:"state"`
		Progress  *Progress    `json:"progress"`
		Timestamp int64        `json:"timestamp"`
	}
)
