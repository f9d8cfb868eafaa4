package assert

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/advier-web/parkmanager-tool-new-sub001/internal/config"
	"github.com/advier-web/parkmanager-tool-new-sub001/internal/wizard"
	"github.com/advier-web/parkmanager-tool-new-sub001/pkg/api"
)

// Wrapper wraps testify assertions with wizard-specific helpers
type Wrapper struct {
	*testing.T
	*assert.Assertions
	Require *require.Assertions
}

// DefaultRetryInterval is the default polling interval for Eventually checks
const DefaultRetryInterval = 10 * time.Millisecond

// New creates a new test assertion wrapper with both assert and require from
// testify plus wizard-specific helpers
func New(t *testing.T) *Wrapper {
	return &Wrapper{
		T:          t,
		Assertions: assert.New(t),
		Require:    require.New(t),
	}
}

// ConfigValid asserts that a configuration is valid
func (w *Wrapper) ConfigValid(cfg *config.Config) {
	w.Helper()
	w.NoError(cfg.Validate())
	w.True(cfg.APIPort > 0 && cfg.APIPort <= config.MaxTCPPort)
	w.True(cfg.ContentCacheSize > 0)
}

// ConfigInvalid asserts that a configuration is invalid
func (w *Wrapper) ConfigInvalid(cfg *config.Config, contains string) {
	w.Helper()
	err := cfg.Validate()
	w.Error(err)
	if err != nil && contains != "" {
		w.Contains(err.Error(), contains)
	}
}

// Selected asserts that a state has exactly the given reasons and solutions
// selected
func (w *Wrapper) Selected(
	st *api.WizardState, reasons []api.ReasonID, solutions []api.SolutionID,
) {
	w.Helper()
	w.ElementsMatch(reasons, st.Reasons.Sorted(), "selected reasons")
	w.ElementsMatch(solutions, st.Solutions.Sorted(), "selected solutions")
}

// VariantsReconciled asserts that every variant entry belongs to a selected
// solution
func (w *Wrapper) VariantsReconciled(st *api.WizardState) {
	w.Helper()
	for sol := range st.Variants {
		w.True(st.Solutions.Contains(sol),
			"variant recorded for unselected solution: %s", sol)
	}
}

// AtStep asserts the furthest step a state can reach
func (w *Wrapper) AtStep(st *api.WizardState, expected api.Step) {
	w.Helper()
	w.Equal(expected, wizard.Progress(st).Current)
}

// Eventually runs a condition repeatedly until it passes or times out
func (w *Wrapper) Eventually(
	condition func() bool, timeout time.Duration, msg string, args ...any,
) {
	w.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if condition() {
			return
		}
		time.Sleep(DefaultRetryInterval)
	}
	w.Fail(msg, args...)
}
