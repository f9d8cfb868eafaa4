package api

import (
	"maps"
	"time"

	"github.com/advier-web/parkmanager-tool-new-sub001/pkg/util"
)

// WizardState holds everything a user selected while walking through the
// wizard. Transitions never mutate the receiver; each returns a new state
type WizardState struct {
	CreatedAt       time.Time                `json:"created_at"`
	LastUpdated     time.Time                `json:"last_updated"`
	Reasons         util.Set[ReasonID]       `json:"reasons"`
	Solutions       util.Set[SolutionID]     `json:"solutions"`
	Variants        map[SolutionID]VariantID `json:"variants"`
	Park            BusinessPark             `json:"park"`
	ID              SessionID                `json:"id"`
	GovernanceModel GovernanceModelID        `json:"governance_model,omitempty"`
}

// NewWizardState creates an empty wizard state with initialized collections
func NewWizardState() *WizardState {
	return &WizardState{
		Reasons:   util.Set[ReasonID]{},
		Solutions: util.Set[SolutionID]{},
		Variants:  map[SolutionID]VariantID{},
		Park: BusinessPark{
			TrafficTypes: util.Set[TrafficType]{},
		},
	}
}

// SetID returns a new WizardState bound to the given session
func (st *WizardState) SetID(id SessionID) *WizardState {
	res := *st
	res.ID = id
	return &res
}

// SetCreatedAt returns a new WizardState with the creation timestamp set
func (st *WizardState) SetCreatedAt(t time.Time) *WizardState {
	res := *st
	res.CreatedAt = t
	return &res
}

// SetLastUpdated returns a new WizardState with the last updated timestamp set
func (st *WizardState) SetLastUpdated(t time.Time) *WizardState {
	res := *st
	res.LastUpdated = t
	return &res
}

// SetPark returns a new WizardState with the business park metadata replaced
func (st *WizardState) SetPark(p BusinessPark) *WizardState {
	res := *st
	res.Park = p.Clone()
	return &res
}

// ToggleReason returns a new WizardState with the reason selected if it was
// not, or deselected if it was
func (st *WizardState) ToggleReason(id ReasonID) *WizardState {
	res := *st
	res.Reasons = st.Reasons.Toggle(id)
	return &res
}

// ToggleSolution returns a new WizardState with the solution selected if it
// was not, or deselected if it was. Deselecting a solution also drops its
// variant choice
func (st *WizardState) ToggleSolution(id SolutionID) *WizardState {
	res := *st
	res.Solutions = st.Solutions.Toggle(id)
	if !res.Solutions.Contains(id) {
		if _, ok := st.Variants[id]; ok {
			res.Variants = maps.Clone(st.Variants)
			delete(res.Variants, id)
		}
	}
	return &res
}

// SetVariant returns a new WizardState with the variant chosen for the
// solution. A variant for a solution that is not selected is ignored, and an
// empty variant clears the choice
func (st *WizardState) SetVariant(sol SolutionID, v VariantID) *WizardState {
	if !st.Solutions.Contains(sol) {
		return st
	}
	res := *st
	res.Variants = maps.Clone(st.Variants)
	if res.Variants == nil {
		res.Variants = map[SolutionID]VariantID{}
	}
	if v == "" {
		delete(res.Variants, sol)
	} else {
		res.Variants[sol] = v
	}
	return &res
}

// SetGovernanceModel returns a new WizardState with the governance model
// chosen. An empty ID clears the choice
func (st *WizardState) SetGovernanceModel(id GovernanceModelID) *WizardState {
	res := *st
	res.GovernanceModel = id
	return &res
}

// Reset returns an empty WizardState that keeps only the session identity
// and its creation time
func (st *WizardState) Reset() *WizardState {
	return NewWizardState().
		SetID(st.ID).
		SetCreatedAt(st.CreatedAt)
}

// VariantFor returns the variant chosen for a selected solution
func (st *WizardState) VariantFor(id SolutionID) (VariantID, bool) {
	if !st.Solutions.Contains(id) {
		return "", false
	}
	v, ok := st.Variants[id]
	return v, ok
}

// IsEmpty reports whether nothing has been selected or entered yet
func (st *WizardState) IsEmpty() bool {
	return st.Reasons.IsEmpty() && st.Solutions.IsEmpty() &&
		len(st.Variants) == 0 && st.GovernanceModel == "" &&
		st.Park.CompanyCount == 0 && st.Park.EmployeeCount == 0 &&
		st.Park.TrafficTypes.IsEmpty() && st.Park.PickupPreference == ""
}
