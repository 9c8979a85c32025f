package repository

import (
	"errors"
	"time"
)

// ErrNotFound is returned when a lookup by public identifier matches nothing.
var ErrNotFound = errors.New("record not found")

// QueryObserver receives the duration of each store round trip.
type QueryObserver interface {
	ObserveDBQuery(label string, duration time.Duration)
}

func observe(o QueryObserver, label string, start time.Time) {
	if o == nil {
		return
	}
	o.ObserveDBQuery(label, time.Since(start))
}
