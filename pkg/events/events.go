package events

import (
	"github.com/kode4food/timebox"

	"github.com/advier-web/parkmanager-tool-new-sub001/pkg/api"
)

// MakeAppliers converts an applier table keyed by api.EventType into the
// form a timebox executor expects
func MakeAppliers[T any](
	app map[api.EventType]timebox.Applier[T],
) timebox.Appliers[T] {
	res := map[timebox.EventType]timebox.Applier[T]{}
	for et, fn := range app {
		res[timebox.EventType(et)] = fn
	}
	return res
}

// Raise marshals an event and raises it through the aggregator
func Raise[T, E any](
	ag *timebox.Aggregator[T], eventType api.EventType, event E,
) error {
	return timebox.Raise(ag, timebox.EventType(eventType), event)
}
