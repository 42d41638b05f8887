package pgconv

import (
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const microsPerDay = int64(24 * time.Hour / time.Microsecond)

var ErrInvalidTimeOfDay = errors.New("invalid time-of-day value in pgtype.Time")

func UUIDPtrFromPgtype(pu pgtype.UUID) *uuid.UUID {
	if !pu.Valid {
		return nil
	}
	id := uuid.UUID(pu.Bytes)
	return &id
}

func UUIDToPgtype(id uuid.UUID) pgtype.UUID {
	return pgtype.UUID{Bytes: id, Valid: true}
}

func UUIDPtrToPgtype(id *uuid.UUID) pgtype.UUID {
	if id == nil {
		return pgtype.UUID{Valid: false}
	}
	return pgtype.UUID{Bytes: *id, Valid: true}
}

func StringPtrToPgtype(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{Valid: false}
	}
	return pgtype.Text{String: *s, Valid: true}
}

func TimeFromPgtype(pt pgtype.Timestamptz) time.Time {
	return pt.Time
}

func TimeToPgtype(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}

func TimePtrToPgtype(t *time.Time) pgtype.Timestamptz {
	if t == nil {
		return pgtype.Timestamptz{Valid: false}
	}
	return TimeToPgtype(*t)
}

// SinceMidnightFromPgtype converts a postgres `time` column into the offset from midnight.
func SinceMidnightFromPgtype(pt pgtype.Time) (time.Duration, error) {
	if !pt.Valid || pt.Microseconds < 0 || pt.Microseconds > microsPerDay {
		return 0, ErrInvalidTimeOfDay
	}
	return time.Duration(pt.Microseconds) * time.Microsecond, nil
}

func SinceMidnightToPgtype(d time.Duration) pgtype.Time {
	return pgtype.Time{Microseconds: int64(d / time.Microsecond), Valid: true}
}

// IsNoRows checks if the error is a "no rows" error from either sql or pgx
func IsNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows)
}
