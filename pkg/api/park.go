package api

import (
	"errors"
	"fmt"

	"github.com/advier-web/parkmanager-tool-new-sub001/pkg/util"
)

type (
	// TrafficType names a kind of traffic the business park generates
	TrafficType string

	// PickupPreference describes how employees prefer to pick up shared
	// vehicles or be picked up by a shuttle
	PickupPreference string

	// BusinessPark holds the metadata a user enters in the first wizard step
	BusinessPark struct {
		TrafficTypes     util.Set[TrafficType] `json:"traffic_types"`
		PickupPreference PickupPreference      `json:"pickup_preference,omitempty"`
		CompanyCount     int                   `json:"company_count"`
		EmployeeCount    int                   `json:"employee_count"`
	}
)

const (
	TrafficCommute   TrafficType = "commute"
	TrafficBusiness  TrafficType = "business"
	TrafficVisitors  TrafficType = "visitors"
	TrafficLogistics TrafficType = "logistics"
)

const (
	PickupUnset      PickupPreference = ""
	PickupIndividual PickupPreference = "individual"
	PickupCollective PickupPreference = "collective"
	PickupNone       PickupPreference = "none"
)

var (
	ErrNegativeCompanyCount    = errors.New("company count cannot be negative")
	ErrNegativeEmployeeCount   = errors.New("employee count cannot be negative")
	ErrInvalidTrafficType      = errors.New("invalid traffic type")
	ErrInvalidPickupPreference = errors.New("invalid pickup preference")
)

var (
	validTrafficTypes = util.SetOf(
		TrafficCommute,
		TrafficBusiness,
		TrafficVisitors,
		TrafficLogistics,
	)

	validPickupPreferences = util.SetOf(
		PickupUnset,
		PickupIndividual,
		PickupCollective,
		PickupNone,
	)
)

// Validate checks that the counts are non-negative and that every traffic
// type and the pickup preference are known values
func (p *BusinessPark) Validate() error {
	if p.CompanyCount < 0 {
		return ErrNegativeCompanyCount
	}
	if p.EmployeeCount < 0 {
		return ErrNegativeEmployeeCount
	}
	for _, tt := range p.TrafficTypes.Sorted() {
		if !validTrafficTypes.Contains(tt) {
			return fmt.Errorf("%w: %s", ErrInvalidTrafficType, tt)
		}
	}
	if !validPickupPreferences.Contains(p.PickupPreference) {
		return fmt.Errorf("%w: %s",
			ErrInvalidPickupPreference, p.PickupPreference)
	}
	return nil
}

// IsComplete reports whether enough park data was entered to move on to the
// reasons step
func (p *BusinessPark) IsComplete() bool {
	return p.CompanyCount > 0 && p.EmployeeCount > 0 &&
		!p.TrafficTypes.IsEmpty() && p.Validate() == nil
}

// Clone returns a deep copy of the park metadata
func (p *BusinessPark) Clone() BusinessPark {
	res := *p
	res.TrafficTypes = p.TrafficTypes.Clone()
	return res
}
