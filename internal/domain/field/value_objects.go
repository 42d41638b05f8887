package field

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

var (
	ErrInvalidTimeOfDay       = errors.New("time of day must be formatted as hh:mm[:ss]")
	ErrInvalidBookingDuration = errors.New("min booking duration must be a positive whole number of seconds")
	ErrInvalidHourlyRate      = errors.New("hourly rate must be a non-negative amount with at most 2 decimal places")
	ErrInvalidLatitude        = errors.New("latitude must be between -90 and 90")
	ErrInvalidLongitude       = errors.New("longitude must be between -180 and 180")
)

const (
	DefaultMinBookingDuration = time.Hour
	// MaxBookingUnit is the longest minimum duration the min_booking_seconds column can hold.
	MaxBookingUnit = math.MaxInt32 * time.Second
	maxHourlyRateCents        = 99999999 // NUMERIC(8,2)
)

// TimeOfDay is a wall-clock time without a date, kept at whole-second precision.
type TimeOfDay struct {
	sinceMidnight time.Duration
}

func NewTimeOfDay(hour, minute, second int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 || second < 0 || second > 59 {
		return TimeOfDay{}, ErrInvalidTimeOfDay
	}
	d := time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute + time.Duration(second)*time.Second
	return TimeOfDay{sinceMidnight: d}, nil
}

// ParseTimeOfDay accepts "15:04" and "15:04:05".
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) < 2 || len(parts) > 3 {
		return TimeOfDay{}, ErrInvalidTimeOfDay
	}
	nums := make([]int, 3)
	for i, p := range parts {
		if len(p) != 2 {
			return TimeOfDay{}, ErrInvalidTimeOfDay
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			return TimeOfDay{}, ErrInvalidTimeOfDay
		}
		nums[i] = n
	}
	return NewTimeOfDay(nums[0], nums[1], nums[2])
}

// TimeOfDayFromDuration rebuilds a value read from storage.
func TimeOfDayFromDuration(d time.Duration) (TimeOfDay, error) {
	if d < 0 || d >= 24*time.Hour {
		return TimeOfDay{}, ErrInvalidTimeOfDay
	}
	return TimeOfDay{sinceMidnight: d.Truncate(time.Second)}, nil
}

// ClockOf returns the wall-clock part of t in t's own location.
func ClockOf(t time.Time) TimeOfDay {
	h, m, s := t.Clock()
	return TimeOfDay{sinceMidnight: time.Duration(h)*time.Hour + time.Duration(m)*time.Minute + time.Duration(s)*time.Second}
}

func (t TimeOfDay) SinceMidnight() time.Duration { return t.sinceMidnight }

// On anchors t to the calendar date of day, as seen in loc.
func (t TimeOfDay) On(day time.Time, loc *time.Location) time.Time {
	d := day.In(loc)
	h, m, s := t.parts()
	return time.Date(d.Year(), d.Month(), d.Day(), h, m, s, 0, loc)
}

func (t TimeOfDay) Before(other TimeOfDay) bool { return t.sinceMidnight < other.sinceMidnight }
func (t TimeOfDay) After(other TimeOfDay) bool  { return t.sinceMidnight > other.sinceMidnight }

func (t TimeOfDay) String() string {
	h, m, s := t.parts()
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

func (t TimeOfDay) parts() (int, int, int) {
	secs := int(t.sinceMidnight / time.Second)
	return secs / 3600, secs % 3600 / 60, secs % 60
}

// BookingUnit is the minimum booking duration of a field. Bookings must last a whole multiple of it.
type BookingUnit struct {
	d time.Duration
}

func NewBookingUnit(d time.Duration) (BookingUnit, error) {
	if d <= 0 || d > MaxBookingUnit || d%time.Second != 0 {
		return BookingUnit{}, ErrInvalidBookingDuration
	}
	return BookingUnit{d: d}, nil
}

// ParseBookingUnit accepts "[D ]HH:MM:SS" and "HH:MM".
func ParseBookingUnit(s string) (BookingUnit, error) {
	const maxSecs = int64(MaxBookingUnit / time.Second)

	s = strings.TrimSpace(s)
	var days int64
	if i := strings.IndexByte(s, ' '); i > 0 {
		n, err := strconv.ParseInt(s[:i], 10, 64)
		if err != nil || n < 0 || n > maxSecs/86400 {
			return BookingUnit{}, ErrInvalidBookingDuration
		}
		days = n
		s = strings.TrimSpace(s[i+1:])
	}

	parts := strings.Split(s, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return BookingUnit{}, ErrInvalidBookingDuration
	}
	var secs int64
	units := []int64{3600, 60, 1}
	for i, p := range parts {
		n, err := strconv.ParseInt(p, 10, 64)
		if err != nil || n < 0 || n > maxSecs || (i > 0 && n > 59) {
			return BookingUnit{}, ErrInvalidBookingDuration
		}
		secs += n * units[i]
	}
	secs += days * 86400
	if secs > maxSecs {
		return BookingUnit{}, ErrInvalidBookingDuration
	}
	return NewBookingUnit(time.Duration(secs) * time.Second)
}

func (u BookingUnit) Duration() time.Duration { return u.d }
func (u BookingUnit) Seconds() int64          { return int64(u.d / time.Second) }
func (u BookingUnit) Minutes() int64          { return u.Seconds() / 60 }

func (u BookingUnit) String() string {
	secs := u.Seconds()
	days := secs / 86400
	secs %= 86400
	hms := fmt.Sprintf("%02d:%02d:%02d", secs/3600, secs%3600/60, secs%60)
	if days > 0 {
		return fmt.Sprintf("%d %s", days, hms)
	}
	return hms
}

// HourlyRate is stored in cents.
type HourlyRate struct {
	cents int64
}

func NewHourlyRate(cents int64) (HourlyRate, error) {
	if cents < 0 || cents > maxHourlyRateCents {
		return HourlyRate{}, ErrInvalidHourlyRate
	}
	return HourlyRate{cents: cents}, nil
}

// ParseHourlyRate parses a decimal amount such as "60", "60.5" or "60.00".
func ParseHourlyRate(s string) (HourlyRate, error) {
	s = strings.TrimSpace(s)
	whole, frac, hasFrac := strings.Cut(s, ".")
	if whole == "" || (hasFrac && (frac == "" || len(frac) > 2)) {
		return HourlyRate{}, ErrInvalidHourlyRate
	}
	w, err := strconv.ParseInt(whole, 10, 64)
	if err != nil || w < 0 {
		return HourlyRate{}, ErrInvalidHourlyRate
	}
	var f int64
	if hasFrac {
		if len(frac) == 1 {
			frac += "0"
		}
		f, err = strconv.ParseInt(frac, 10, 64)
		if err != nil || f < 0 {
			return HourlyRate{}, ErrInvalidHourlyRate
		}
	}
	return NewHourlyRate(w*100 + f)
}

func (r HourlyRate) Cents() int64 { return r.cents }

func (r HourlyRate) String() string {
	return fmt.Sprintf("%d.%02d", r.cents/100, r.cents%100)
}

type Coordinates struct {
	latitude  float64
	longitude float64
}

func NewCoordinates(latitude, longitude float64) (Coordinates, error) {
	if math.IsNaN(latitude) || latitude < -90 || latitude > 90 {
		return Coordinates{}, ErrInvalidLatitude
	}
	if math.IsNaN(longitude) || longitude < -180 || longitude > 180 {
		return Coordinates{}, ErrInvalidLongitude
	}
	return Coordinates{latitude: latitude, longitude: longitude}, nil
}

func (c Coordinates) Latitude() float64  { return c.latitude }
func (c Coordinates) Longitude() float64 { return c.longitude }
