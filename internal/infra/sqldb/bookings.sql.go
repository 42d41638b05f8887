package sqldb

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const bookingColumns = `b.id, b.field_id, b.user_id, b.start_time, b.end_time, b.created_at`

func scanBooking(row rowScanner, i *Booking, extra ...any) error {
	dest := []any{
		&i.ID,
		&i.FieldID,
		&i.UserID,
		&i.StartTime,
		&i.EndTime,
		&i.CreatedAt,
	}
	return row.Scan(append(dest, extra...)...)
}

func scanBookingView(row rowScanner) (BookingView, error) {
	var i BookingView
	err := scanBooking(row, &i.Booking, &i.FieldName, &i.FieldOwnerID)
	return i, err
}

const createBooking = `-- name: CreateBooking :one
INSERT INTO bookings AS b (id, field_id, user_id, start_time, end_time, created_at)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING ` + bookingColumns

type CreateBookingParams struct {
	ID        uuid.UUID          `json:"id"`
	FieldID   uuid.UUID          `json:"field_id"`
	UserID    uuid.UUID          `json:"user_id"`
	StartTime pgtype.Timestamptz `json:"start_time"`
	EndTime   pgtype.Timestamptz `json:"end_time"`
	CreatedAt pgtype.Timestamptz `json:"created_at"`
}

func (q *Queries) CreateBooking(ctx context.Context, db DBTX, arg CreateBookingParams) (Booking, error) {
	row := db.QueryRow(ctx, createBooking,
		arg.ID,
		arg.FieldID,
		arg.UserID,
		arg.StartTime,
		arg.EndTime,
		arg.CreatedAt,
	)
	var i Booking
	err := scanBooking(row, &i)
	return i, err
}

const listOverlappingBookings = `-- name: ListOverlappingBookings :many
SELECT ` + bookingColumns + `
FROM bookings b
WHERE b.field_id = $1
  AND b.start_time < $3
  AND b.end_time > $2
ORDER BY b.start_time`

type ListOverlappingBookingsParams struct {
	FieldID   uuid.UUID          `json:"field_id"`
	StartTime pgtype.Timestamptz `json:"start_time"`
	EndTime   pgtype.Timestamptz `json:"end_time"`
}

func (q *Queries) ListOverlappingBookings(ctx context.Context, db DBTX, arg ListOverlappingBookingsParams) ([]Booking, error) {
	rows, err := db.Query(ctx, listOverlappingBookings, arg.FieldID, arg.StartTime, arg.EndTime)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []Booking{}
	for rows.Next() {
		var i Booking
		if err := scanBooking(rows, &i); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const getBookingViewByID = `-- name: GetBookingViewByID :one
SELECT ` + bookingColumns + `, f.name, f.owner_id
FROM bookings b
JOIN fields f ON f.id = b.field_id
WHERE b.id = $1`

func (q *Queries) GetBookingViewByID(ctx context.Context, db DBTX, id uuid.UUID) (BookingView, error) {
	return scanBookingView(db.QueryRow(ctx, getBookingViewByID, id))
}

const listBookingViews = `-- name: ListBookingViews :many
SELECT ` + bookingColumns + `, f.name, f.owner_id
FROM bookings b
JOIN fields f ON f.id = b.field_id
WHERE (($1::uuid IS NULL AND $2::uuid IS NULL)
       OR b.user_id = $1::uuid
       OR f.owner_id = $2::uuid)
  AND ($3::text IS NULL OR f.name = $3::text)
  AND ($4::timestamptz IS NULL OR b.start_time = $4::timestamptz)
  AND ($5::timestamptz IS NULL OR b.end_time = $5::timestamptz)
ORDER BY b.start_time DESC, b.id`

// ListBookingViewsParams matches bookings made by UserID or placed on fields owned by
// FieldOwnerID. Leaving both unset lists every booking. The remaining members are
// exact-match filters applied on top.
type ListBookingViewsParams struct {
	UserID       pgtype.UUID        `json:"user_id"`
	FieldOwnerID pgtype.UUID        `json:"field_owner_id"`
	FieldName    pgtype.Text        `json:"field_name"`
	StartTime    pgtype.Timestamptz `json:"start_time"`
	EndTime      pgtype.Timestamptz `json:"end_time"`
}

func (q *Queries) ListBookingViews(ctx context.Context, db DBTX, arg ListBookingViewsParams) ([]BookingView, error) {
	rows, err := db.Query(ctx, listBookingViews,
		arg.UserID,
		arg.FieldOwnerID,
		arg.FieldName,
		arg.StartTime,
		arg.EndTime,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []BookingView{}
	for rows.Next() {
		i, err := scanBookingView(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const deleteBooking = `-- name: DeleteBooking :execrows
DELETE FROM bookings WHERE id = $1`

func (q *Queries) DeleteBooking(ctx context.Context, db DBTX, id uuid.UUID) (int64, error) {
	result, err := db.Exec(ctx, deleteBooking, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}
