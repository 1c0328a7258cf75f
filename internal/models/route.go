// Package models defines the depot records: bus routes and user accounts.
package models

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/busdepot/internal/common"
	"github.com/dmitrijs2005/busdepot/internal/timex"
)

// Route is one scheduled bus service. Number is the natural key, but
// duplicates are tolerated.
type Route struct {
	Number      string      `json:"route_number"`
	BusType     string      `json:"bus_type"`
	Destination string      `json:"destination"`
	Departure   timex.Clock `json:"departure_time"`
	Arrival     timex.Clock `json:"arrival_time"`
}

func (r Route) String() string {
	return fmt.Sprintf("Route №%s | Type: %s | Destination point: %s | Departure time: %s | Arrival time: %s",
		r.Number, r.BusType, r.Destination, r.Departure, r.Arrival)
}

// RoutePatch is a partial route update. Nil fields keep their current value.
type RoutePatch struct {
	BusType     *string
	Destination *string
	Departure   *timex.Clock
	Arrival     *timex.Clock
}

// Apply returns r with every non-nil patch field written over it.
func (p RoutePatch) Apply(r Route) Route {
	if p.BusType != nil {
		r.BusType = *p.BusType
	}
	if p.Destination != nil {
		r.Destination = *p.Destination
	}
	if p.Departure != nil {
		r.Departure = *p.Departure
	}
	if p.Arrival != nil {
		r.Arrival = *p.Arrival
	}
	return r
}

// IsEmpty reports whether the patch changes nothing.
func (p RoutePatch) IsEmpty() bool {
	return p.BusType == nil && p.Destination == nil && p.Departure == nil && p.Arrival == nil
}

// RouteField names a searchable/sortable route attribute.
type RouteField string

const (
	RouteFieldNumber      RouteField = "number"
	RouteFieldBusType     RouteField = "type"
	RouteFieldDestination RouteField = "destination"
)

// ParseRouteField accepts the field name in any case.
func ParseRouteField(s string) (RouteField, error) {
	switch f := RouteField(strings.ToLower(strings.TrimSpace(s))); f {
	case RouteFieldNumber, RouteFieldBusType, RouteFieldDestination:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", common.ErrUnknownField, s)
	}
}

// Value extracts the field's string value from r.
func (f RouteField) Value(r Route) (string, error) {
	switch f {
	case RouteFieldNumber:
		return r.Number, nil
	case RouteFieldBusType:
		return r.BusType, nil
	case RouteFieldDestination:
		return r.Destination, nil
	default:
		return "", fmt.Errorf("%w: %q", common.ErrUnknownField, string(f))
	}
}
