package wizard_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/advier-web/parkmanager-tool-new-sub001/internal/assert/helpers"
	"github.com/advier-web/parkmanager-tool-new-sub001/internal/wizard"
	"github.com/advier-web/parkmanager-tool-new-sub001/pkg/api"
)

func TestGroupReasons(t *testing.T) {
	groups := wizard.GroupReasons(helpers.NewTestContent())
	require.Len(t, groups, 3)

	assert.Equal(t, api.CategoryID("cat-env"), groups[0].Category.ID)
	assert.Equal(t, []api.ReasonID{"reason-co2"}, reasonIDs(groups[0].Reasons))

	assert.Equal(t, api.CategoryID("cat-access"), groups[1].Category.ID)
	assert.Equal(t,
		[]api.ReasonID{"reason-parking", "reason-transit"},
		reasonIDs(groups[1].Reasons),
	)

	assert.Same(t, wizard.Uncategorised, groups[2].Category)
	assert.Equal(t, []api.ReasonID{"reason-other"}, reasonIDs(groups[2].Reasons))
}

func TestGroupReasonsSkipsEmptyCategories(t *testing.T) {
	c := helpers.NewTestContent()
	c.Categories = append(c.Categories, &api.Category{
		ID: "cat-empty", Name: "Leeg", Order: helpers.Order(0),
	})
	c.Reasons = c.Reasons[:3]

	groups := wizard.GroupReasons(c)
	require.Len(t, groups, 2)
	for _, g := range groups {
		assert.NotEqual(t, api.CategoryID("cat-empty"), g.Category.ID)
		assert.NotSame(t, wizard.Uncategorised, g.Category)
	}
}

func TestGroupReasonsEmptyContent(t *testing.T) {
	groups := wizard.GroupReasons(&api.Content{})
	assert.NotNil(t, groups)
	assert.Empty(t, groups)
}

func TestSelectedReasons(t *testing.T) {
	c := helpers.NewTestContent()
	st := api.NewWizardState().
		ToggleReason("reason-transit").
		ToggleReason("reason-parking").
		ToggleReason("reason-deleted")

	assert.Equal(t,
		[]api.ReasonID{"reason-parking", "reason-transit"},
		reasonIDs(wizard.SelectedReasons(st, c)),
	)
}
