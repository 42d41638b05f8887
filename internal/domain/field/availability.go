package field

import (
	"time"

	"github.com/google/uuid"
)

// Window is a requested time window with both ends already timezone-aware.
type Window struct {
	Start time.Time
	End   time.Time
}

// Overlaps uses half-open [start, end) semantics.
func (w Window) Overlaps(start, end time.Time) bool {
	return start.Before(w.End) && end.After(w.Start)
}

// WithinHours compares wall-clock times only. The calendar date of the window is ignored,
// unlike booking validation which anchors the operating window on the booking's start date.
func (w Window) WithinHours(opening, closing TimeOfDay) bool {
	return !opening.After(ClockOf(w.Start)) && !closing.Before(ClockOf(w.End))
}

type AvailabilityFilter struct {
	DistrictID *uuid.UUID
	Window     *Window
	Origin     *Coordinates
}

// FilterAvailable evaluates an availability filter over fields held in memory.
// bookings maps a field id to the windows already booked on it.
func FilterAvailable(fields []*Field, bookings map[uuid.UUID][]Window, f AvailabilityFilter) []*Field {
	out := make([]*Field, 0, len(fields))
	for _, fld := range fields {
		if f.DistrictID != nil && fld.districtID != *f.DistrictID {
			continue
		}
		if f.Window != nil {
			if !f.Window.WithinHours(fld.opening, fld.closing) || isBooked(bookings[fld.id], *f.Window) {
				continue
			}
		}
		out = append(out, fld)
	}

	if f.Origin != nil {
		SortByProximity(out, *f.Origin, (*Field).Coordinates)
	}
	return out
}

func isBooked(booked []Window, w Window) bool {
	for _, b := range booked {
		if w.Overlaps(b.Start, b.End) {
			return true
		}
	}
	return false
}
