//go:build unit

package booking_test

import (
	"testing"
	"time"

	"football-field-booking/internal/domain/booking"
	"football-field-booking/internal/domain/field"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var tashkent = time.FixedZone("UZT", 5*60*60)

func at(day, hour, minute int) time.Time {
	return time.Date(2030, time.June, day, hour, minute, 0, 0, tashkent)
}

func mustTime(t *testing.T, s string) field.TimeOfDay {
	t.Helper()
	tod, err := field.ParseTimeOfDay(s)
	require.NoError(t, err)
	return tod
}

func rules(t *testing.T, opening, closing string, unit time.Duration) field.BookingRules {
	t.Helper()
	u, err := field.NewBookingUnit(unit)
	require.NoError(t, err)
	return field.BookingRules{Opening: mustTime(t, opening), Closing: mustTime(t, closing), Unit: u}
}

type validateCase struct {
	name     string
	slot     booking.TimeSlot
	rules    field.BookingRules
	existing []booking.Existing
	exclude  *uuid.UUID
	errIs    error
	message  string
}

func TestValidator_Validate(t *testing.T) {
	now := at(10, 8, 0)
	standard := rules(t, "08:00", "22:00", time.Hour)
	v := booking.NewValidator(tashkent)

	selfID := uuid.New()
	afternoon := []booking.Existing{{ID: selfID, Start: at(11, 14, 0), End: at(11, 16, 0)}}

	cases := []validateCase{
		{
			name:  "営業時間内の2時間予約OK",
			slot:  booking.NewTimeSlot(at(11, 9, 0), at(11, 11, 0)),
			rules: standard,
		},
		{
			name:    "開始時刻が現在と同じNG",
			slot:    booking.NewTimeSlot(now, now.Add(time.Hour)),
			rules:   standard,
			errIs:   booking.ErrInvalidTiming,
			message: "Start time must be in the future.",
		},
		{
			name:    "過去の開始時刻は逆転より先に判定される",
			slot:    booking.NewTimeSlot(at(9, 12, 0), at(9, 10, 0)),
			rules:   standard,
			errIs:   booking.ErrInvalidTiming,
			message: "Start time must be in the future.",
		},
		{
			name:    "終了が開始と同じNG",
			slot:    booking.NewTimeSlot(at(11, 9, 0), at(11, 9, 0)),
			rules:   standard,
			errIs:   booking.ErrInvalidTiming,
			message: "End time must be after start time.",
		},
		{
			name:    "最小時間未満NG",
			slot:    booking.NewTimeSlot(at(11, 9, 0), at(11, 9, 30)),
			rules:   standard,
			errIs:   booking.ErrDurationPolicyViolation,
			message: "Booking duration must be at least 60 minutes.",
		},
		{
			name:    "最小時間の倍数でないNG",
			slot:    booking.NewTimeSlot(at(11, 9, 0), at(11, 10, 30)),
			rules:   standard,
			errIs:   booking.ErrDurationPolicyViolation,
			message: "Booking duration must be a multiple of the minimum booking duration (60 minutes).",
		},
		{
			name:    "1ナノ秒のずれも倍数違反",
			slot:    booking.NewTimeSlot(at(11, 9, 0), at(11, 10, 0).Add(time.Nanosecond)),
			rules:   standard,
			errIs:   booking.ErrDurationPolicyViolation,
			message: "Booking duration must be a multiple of the minimum booking duration (60 minutes).",
		},
		{
			name:  "90分単位で3時間OK",
			slot:  booking.NewTimeSlot(at(11, 9, 0), at(11, 12, 0)),
			rules: rules(t, "08:00", "22:00", 90*time.Minute),
		},
		{
			name:    "90分単位で2時間NG",
			slot:    booking.NewTimeSlot(at(11, 9, 0), at(11, 11, 0)),
			rules:   rules(t, "08:00", "22:00", 90*time.Minute),
			errIs:   booking.ErrDurationPolicyViolation,
			message: "Booking duration must be a multiple of the minimum booking duration (90 minutes).",
		},
		{
			name:    "開店前NG",
			slot:    booking.NewTimeSlot(at(11, 7, 0), at(11, 8, 0)),
			rules:   standard,
			errIs:   booking.ErrOutsideOperatingHours,
			message: "Booking times must be within the field's working hours.",
		},
		{
			name:    "閉店後にかかるNG",
			slot:    booking.NewTimeSlot(at(11, 21, 0), at(11, 23, 0)),
			rules:   standard,
			errIs:   booking.ErrOutsideOperatingHours,
			message: "Booking times must be within the field's working hours.",
		},
		{
			name:  "開店から閉店までちょうどOK",
			slot:  booking.NewTimeSlot(at(11, 8, 0), at(11, 22, 0)),
			rules: standard,
		},
		{
			name:    "日付をまたぐ予約は常にNG",
			slot:    booking.NewTimeSlot(at(11, 22, 0), at(12, 1, 0)),
			rules:   rules(t, "00:00", "23:00", time.Hour),
			errIs:   booking.ErrOutsideOperatingHours,
			message: "Booking times must be within the field's working hours.",
		},
		{
			name:    "時間が短くかつ営業時間外なら時間違反が先",
			slot:    booking.NewTimeSlot(at(11, 6, 0), at(11, 6, 30)),
			rules:   standard,
			errIs:   booking.ErrDurationPolicyViolation,
			message: "Booking duration must be at least 60 minutes.",
		},
		{
			name:     "既存予約と重なるNG",
			slot:     booking.NewTimeSlot(at(11, 15, 0), at(11, 17, 0)),
			rules:    standard,
			existing: afternoon,
			errIs:    booking.ErrOverlapConflict,
			message:  "This field is already booked for the given time.",
		},
		{
			name:     "同一区間の重複NG",
			slot:     booking.NewTimeSlot(at(11, 14, 0), at(11, 16, 0)),
			rules:    standard,
			existing: afternoon,
			errIs:    booking.ErrOverlapConflict,
			message:  "This field is already booked for the given time.",
		},
		{
			name:     "連続する予約は重ならないOK",
			slot:     booking.NewTimeSlot(at(11, 16, 0), at(11, 18, 0)),
			rules:    standard,
			existing: afternoon,
		},
		{
			name:     "再検証時は自分自身を除外するOK",
			slot:     booking.NewTimeSlot(at(11, 14, 0), at(11, 16, 0)),
			rules:    standard,
			existing: afternoon,
			exclude:  &selfID,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := v.Validate(c.slot, c.rules, c.existing, now, c.exclude)
			if c.errIs == nil {
				require.NoError(t, err)
				return
			}

			require.ErrorIs(t, err, c.errIs)
			var ve *booking.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, c.message, ve.Message())
		})
	}
}

func TestValidator_AnchorsHoursInConfiguredZone(t *testing.T) {
	v := booking.NewValidator(tashkent)
	now := at(10, 0, 0)
	standard := rules(t, "08:00", "22:00", time.Hour)

	t.Run("UTCで与えられても現地時刻で判定する", func(t *testing.T) {
		// 04:00Z is 09:00 in Tashkent
		start := time.Date(2030, time.June, 11, 4, 0, 0, 0, time.UTC)
		err := v.Validate(booking.NewTimeSlot(start, start.Add(2*time.Hour)), standard, nil, now, nil)
		require.NoError(t, err)
	})

	t.Run("UTCでは営業時間内でも現地では深夜NG", func(t *testing.T) {
		// 20:00Z is 01:00 the next day in Tashkent
		start := time.Date(2030, time.June, 10, 20, 0, 0, 0, time.UTC)
		err := v.Validate(booking.NewTimeSlot(start, start.Add(time.Hour)), standard, nil, now, nil)
		require.ErrorIs(t, err, booking.ErrOutsideOperatingHours)
	})
}

// Validation anchors the operating window on the start date while the availability filter
// compares clock times only. A slot crossing midnight shows the difference.
func TestValidator_DateAnchoringDiffersFromAvailability(t *testing.T) {
	v := booking.NewValidator(tashkent)
	open := rules(t, "00:00", "23:00", time.Hour)
	slot := booking.NewTimeSlot(at(11, 22, 0), at(12, 0, 0))

	err := v.Validate(slot, open, nil, at(10, 0, 0), nil)
	require.ErrorIs(t, err, booking.ErrOutsideOperatingHours)

	w := field.Window{Start: slot.Start(), End: slot.End()}
	assert.True(t, w.WithinHours(open.Opening, open.Closing))
}

func TestValidator_AcceptedBookingsSatisfyInvariants(t *testing.T) {
	v := booking.NewValidator(tashkent)
	now := at(10, 8, 0)

	for _, unit := range []time.Duration{30 * time.Minute, time.Hour, 90 * time.Minute, 2 * time.Hour} {
		r := rules(t, "06:00", "23:00", unit)
		for startMin := 0; startMin < 24*60; startMin += 30 {
			for length := 15 * time.Minute; length <= 6*time.Hour; length += 15 * time.Minute {
				start := at(11, 0, 0).Add(time.Duration(startMin) * time.Minute)
				end := start.Add(length)
				if err := v.Validate(booking.NewTimeSlot(start, end), r, nil, now, nil); err != nil {
					continue
				}

				opening := r.Opening.On(start, tashkent)
				closing := r.Closing.On(start, tashkent)
				assert.True(t, end.After(start))
				assert.True(t, start.After(now))
				assert.GreaterOrEqual(t, length, unit)
				assert.Zero(t, length%unit)
				assert.False(t, start.Before(opening))
				assert.False(t, end.After(closing))
			}
		}
	}
}

func TestTimeSlot_Overlaps(t *testing.T) {
	slot := booking.NewTimeSlot(at(11, 14, 0), at(11, 16, 0))

	assert.True(t, slot.Overlaps(at(11, 15, 0), at(11, 17, 0)))
	assert.True(t, slot.Overlaps(at(11, 13, 0), at(11, 17, 0)))
	assert.True(t, slot.Overlaps(at(11, 14, 30), at(11, 15, 0)))
	assert.False(t, slot.Overlaps(at(11, 16, 0), at(11, 18, 0)))
	assert.False(t, slot.Overlaps(at(11, 12, 0), at(11, 14, 0)))
	assert.Equal(t, 2*time.Hour, slot.Duration())
}
