package helpers

import (
	"time"

	"github.com/advier-web/parkmanager-tool-new-sub001/pkg/api"
	"github.com/advier-web/parkmanager-tool-new-sub001/pkg/util"
)

// TestFetchedAt is the fetch time stamped on NewTestContent
var TestFetchedAt = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

// NewTestContent creates a small but complete content set: two categories,
// four reasons (one of them uncategorised), three solutions with variants,
// and two governance models
func NewTestContent() *api.Content {
	return &api.Content{
		FetchedAt: TestFetchedAt,
		Locale:    "nl",
		Categories: []*api.Category{
			{ID: "cat-access", Name: "Bereikbaarheid", Order: Order(2)},
			{ID: "cat-env", Name: "Duurzaamheid", Order: Order(1)},
		},
		Reasons: []*api.Reason{
			{
				ID:       "reason-parking",
				Title:    "Parkeerdruk",
				Summary:  "Te weinig parkeerplaatsen",
				Category: "cat-access",
				Order:    Order(1),
			},
			{
				ID:       "reason-transit",
				Title:    "Slechte OV-verbinding",
				Category: "cat-access",
			},
			{
				ID:       "reason-co2",
				Title:    "CO2-reductie",
				Category: "cat-env",
			},
			{
				ID:       "reason-other",
				Title:    "Imago",
				Category: "cat-missing",
			},
		},
		Solutions: []*api.Solution{
			{
				ID:          "sol-shuttle",
				Slug:        "pendelbus",
				Title:       "Pendelbus",
				Summary:     "Een pendelbus tussen station en park",
				Description: "## Werking\n\nDe bus rijdt **elk kwartier**.",
				Benefits:    "- Minder auto's\n- Betere bereikbaarheid",
				Challenges:  "1. Kosten\n2. Bezetting",
				Reasons:     []api.ReasonID{"reason-parking", "reason-transit"},
				Variants:    []api.VariantID{"var-shuttle-own"},
				Order:       Order(1),
			},
			{
				ID:      "sol-bikes",
				Slug:    "deelfietsen",
				Title:   "Deelfietsen",
				Summary: "Deelfietsen op het park",
				Reasons: []api.ReasonID{
					"reason-parking", "reason-transit", "reason-co2",
				},
				Order: Order(2),
			},
			{
				ID:    "sol-carpool",
				Title: "Carpoolplatform",
			},
		},
		Variants: []*api.Variant{
			{
				ID:       "var-shuttle-own",
				Solution: "sol-shuttle",
				Title:    "Eigen bus",
				Costs:    "| Post | Bedrag |\n|---|---|\n| Bus | 80.000 |",
				Order:    Order(2),
			},
			{
				ID:       "var-shuttle-hired",
				Solution: "sol-shuttle",
				Title:    "Ingehuurde bus",
				Order:    Order(1),
			},
			{
				ID:       "var-bikes-dock",
				Solution: "sol-bikes",
				Title:    "Met docking stations",
				Pros:     "- Ordelijk",
				Cons:     "- Duur",
			},
			{
				ID:       "var-carpool-app",
				Solution: "sol-carpool",
				Title:    "App",
			},
		},
		GovernanceModels: []*api.GovernanceModel{
			{
				ID:    "gov-association",
				Title: "Vereniging",
				Order: Order(1),
			},
			{
				ID:          "gov-foundation",
				Title:       "Stichting",
				Description: "<table><tr><th>Kenmerk</th></tr><tr><td>Bestuur</td></tr></table>",
			},
		},
	}
}

// NewTestPark creates complete business park metadata
func NewTestPark() api.BusinessPark {
	return api.BusinessPark{
		TrafficTypes:     util.SetOf(api.TrafficCommute, api.TrafficVisitors),
		PickupPreference: api.PickupCollective,
		CompanyCount:     40,
		EmployeeCount:    1200,
	}
}

// NewCompleteState creates a session state that reaches the summary step
func NewCompleteState(id api.SessionID) *api.WizardState {
	return api.NewWizardState().
		SetID(id).
		SetCreatedAt(TestFetchedAt).
		SetLastUpdated(TestFetchedAt).
		SetPark(NewTestPark()).
		ToggleReason("reason-parking").
		ToggleReason("reason-co2").
		ToggleSolution("sol-shuttle").
		ToggleSolution("sol-bikes").
		SetVariant("sol-shuttle", "var-shuttle-hired").
		SetVariant("sol-bikes", "var-bikes-dock").
		SetGovernanceModel("gov-association")
}

// Order returns a pointer to a display order value
func Order(i int) *int {
	return &i
}
