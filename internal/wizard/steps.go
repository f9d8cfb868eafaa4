package wizard

import (
	"slices"

	"github.com/advier-web/parkmanager-tool-new-sub001/pkg/api"
)

// CanEnter reports whether the wizard may show the given step for a state.
// Each step requires every earlier step to be satisfied
func CanEnter(step api.Step, st *api.WizardState) bool {
	idx := slices.Index(api.Steps, step)
	if idx < 0 {
		return false
	}
	for _, s := range api.Steps[:idx+1] {
		if !satisfied(s, st) {
			return false
		}
	}
	return true
}

// Progress reports the steps reachable for a state and the furthest of them
func Progress(st *api.WizardState) *api.Progress {
	res := &api.Progress{
		Current:           api.StepPark,
		Reachable:         []api.Step{},
		MissingVariants:   MissingVariants(st),
		AllVariantsChosen: AllVariantsChosen(st),
	}
	for _, s := range api.Steps {
		if !satisfied(s, st) {
			break
		}
		res.Reachable = append(res.Reachable, s)
		res.Current = s
	}
	return res
}

// satisfied checks only the entry condition of one step
func satisfied(step api.Step, st *api.WizardState) bool {
	switch step {
	case api.StepPark:
		return true
	case api.StepReasons:
		return st.Park.IsComplete()
	case api.StepSolutions:
		return !st.Reasons.IsEmpty()
	case api.StepVariants:
		return !st.Solutions.IsEmpty()
	case api.StepGovernance:
		return AllVariantsChosen(st)
	case api.StepSummary:
		return st.GovernanceModel != ""
	default:
		return false
	}
}
