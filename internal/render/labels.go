package render

import (
	"strings"

	"github.com/advier-web/parkmanager-tool-new-sub001/pkg/api"
)

type labels struct {
	creator         string
	factsheet       string
	summary         string
	description     string
	benefits        string
	challenges      string
	variants        string
	costs           string
	organisation    string
	pros            string
	cons            string
	park            string
	companies       string
	employees       string
	traffic         string
	pickup          string
	reasons         string
	solutions       string
	chosenVariant   string
	noVariant       string
	governance      string
	comparison      string
	solution        string
	variant         string
	chosen          string
	yes             string
	none            string
	trafficTypes    map[api.TrafficType]string
	pickupPreferred map[api.PickupPreference]string
}

var dutch = &labels{
	creator:       "Parkmanager Tool",
	factsheet:     "Factsheet",
	summary:       "Samenvatting",
	description:   "Beschrijving",
	benefits:      "Voordelen",
	challenges:    "Uitdagingen",
	variants:      "Varianten",
	costs:         "Kosten",
	organisation:  "Organisatie",
	pros:          "Pluspunten",
	cons:          "Minpunten",
	park:          "Bedrijventerrein",
	companies:     "Aantal bedrijven",
	employees:     "Aantal werknemers",
	traffic:       "Verkeerssoorten",
	pickup:        "Ophaalvoorkeur",
	reasons:       "Aanleidingen",
	solutions:     "Gekozen oplossingen",
	chosenVariant: "Gekozen variant",
	noVariant:     "Nog geen variant gekozen",
	governance:    "Governancemodel",
	comparison:    "Vergelijking van varianten",
	solution:      "Oplossing",
	variant:       "Variant",
	chosen:        "Gekozen",
	yes:           "Ja",
	none:          "Geen",
	trafficTypes: map[api.TrafficType]string{
		api.TrafficCommute:   "Woon-werkverkeer",
		api.TrafficBusiness:  "Zakelijk verkeer",
		api.TrafficVisitors:  "Bezoekers",
		api.TrafficLogistics: "Logistiek",
	},
	pickupPreferred: map[api.PickupPreference]string{
		api.PickupIndividual: "Individueel",
		api.PickupCollective: "Collectief",
		api.PickupNone:       "Geen voorkeur",
	},
}

var english = &labels{
	creator:       "Parkmanager Tool",
	factsheet:     "Factsheet",
	summary:       "Summary",
	description:   "Description",
	benefits:      "Benefits",
	challenges:    "Challenges",
	variants:      "Variants",
	costs:         "Costs",
	organisation:  "Organisation",
	pros:          "Pros",
	cons:          "Cons",
	park:          "Business park",
	companies:     "Companies",
	employees:     "Employees",
	traffic:       "Traffic types",
	pickup:        "Pickup preference",
	reasons:       "Reasons",
	solutions:     "Chosen solutions",
	chosenVariant: "Chosen variant",
	noVariant:     "No variant chosen yet",
	governance:    "Governance model",
	comparison:    "Variant comparison",
	solution:      "Solution",
	variant:       "Variant",
	chosen:        "Chosen",
	yes:           "Yes",
	none:          "None",
	trafficTypes: map[api.TrafficType]string{
		api.TrafficCommute:   "Commuting",
		api.TrafficBusiness:  "Business travel",
		api.TrafficVisitors:  "Visitors",
		api.TrafficLogistics: "Logistics",
	},
	pickupPreferred: map[api.PickupPreference]string{
		api.PickupIndividual: "Individual",
		api.PickupCollective: "Collective",
		api.PickupNone:       "No preference",
	},
}

// labelsFor picks English labels for English locales and Dutch otherwise
func labelsFor(locale string) *labels {
	if strings.HasPrefix(strings.ToLower(locale), "en") {
		return english
	}
	return dutch
}

func (l *labels) trafficList(p *api.BusinessPark) string {
	var res []string
	for _, t := range p.TrafficTypes.Sorted() {
		if name, ok := l.trafficTypes[t]; ok {
			res = append(res, name)
		} else {
			res = append(res, string(t))
		}
	}
	if len(res) == 0 {
		return l.none
	}
	return strings.Join(res, ", ")
}

func (l *labels) pickupName(p api.PickupPreference) string {
	if name, ok := l.pickupPreferred[p]; ok {
		return name
	}
	return l.none
}
