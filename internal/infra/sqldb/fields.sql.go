package sqldb

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const fieldColumns = `f.id, f.owner_id, f.name, f.address, f.district_id, f.contact, f.hourly_rate_cents,
    f.description, f.opening_time, f.closing_time, f.min_booking_seconds, f.latitude, f.longitude,
    f.created_at, f.updated_at`

const fieldViewFrom = `
FROM fields f
JOIN districts d ON d.id = f.district_id
JOIN cities c ON c.id = d.city_id
JOIN regions r ON r.id = c.region_id`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanField(row rowScanner, i *Field, extra ...any) error {
	dest := []any{
		&i.ID,
		&i.OwnerID,
		&i.Name,
		&i.Address,
		&i.DistrictID,
		&i.Contact,
		&i.HourlyRateCents,
		&i.Description,
		&i.OpeningTime,
		&i.ClosingTime,
		&i.MinBookingSeconds,
		&i.Latitude,
		&i.Longitude,
		&i.CreatedAt,
		&i.UpdatedAt,
	}
	return row.Scan(append(dest, extra...)...)
}

func scanFieldView(row rowScanner) (FieldView, error) {
	var i FieldView
	err := scanField(row, &i.Field, &i.DistrictName, &i.CityName, &i.RegionName)
	return i, err
}

const createField = `-- name: CreateField :one
INSERT INTO fields (
    id, owner_id, name, address, district_id, contact, hourly_rate_cents, description,
    opening_time, closing_time, min_booking_seconds, latitude, longitude, created_at, updated_at
) VALUES (
    $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15
)
RETURNING id`

type CreateFieldParams struct {
	ID                uuid.UUID          `json:"id"`
	OwnerID           uuid.UUID          `json:"owner_id"`
	Name              string             `json:"name"`
	Address           string             `json:"address"`
	DistrictID        uuid.UUID          `json:"district_id"`
	Contact           string             `json:"contact"`
	HourlyRateCents   int64              `json:"hourly_rate_cents"`
	Description       string             `json:"description"`
	OpeningTime       pgtype.Time        `json:"opening_time"`
	ClosingTime       pgtype.Time        `json:"closing_time"`
	MinBookingSeconds int32              `json:"min_booking_seconds"`
	Latitude          float64            `json:"latitude"`
	Longitude         float64            `json:"longitude"`
	CreatedAt         pgtype.Timestamptz `json:"created_at"`
	UpdatedAt         pgtype.Timestamptz `json:"updated_at"`
}

func (q *Queries) CreateField(ctx context.Context, db DBTX, arg CreateFieldParams) (uuid.UUID, error) {
	row := db.QueryRow(ctx, createField,
		arg.ID,
		arg.OwnerID,
		arg.Name,
		arg.Address,
		arg.DistrictID,
		arg.Contact,
		arg.HourlyRateCents,
		arg.Description,
		arg.OpeningTime,
		arg.ClosingTime,
		arg.MinBookingSeconds,
		arg.Latitude,
		arg.Longitude,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	var id uuid.UUID
	err := row.Scan(&id)
	return id, err
}

const updateField = `-- name: UpdateField :execrows
UPDATE fields SET
    name = $2,
    address = $3,
    district_id = $4,
    contact = $5,
    hourly_rate_cents = $6,
    description = $7,
    opening_time = $8,
    closing_time = $9,
    min_booking_seconds = $10,
    latitude = $11,
    longitude = $12,
    updated_at = $13
WHERE id = $1`

type UpdateFieldParams struct {
	ID                uuid.UUID          `json:"id"`
	Name              string             `json:"name"`
	Address           string             `json:"address"`
	DistrictID        uuid.UUID          `json:"district_id"`
	Contact           string             `json:"contact"`
	HourlyRateCents   int64              `json:"hourly_rate_cents"`
	Description       string             `json:"description"`
	OpeningTime       pgtype.Time        `json:"opening_time"`
	ClosingTime       pgtype.Time        `json:"closing_time"`
	MinBookingSeconds int32              `json:"min_booking_seconds"`
	Latitude          float64            `json:"latitude"`
	Longitude         float64            `json:"longitude"`
	UpdatedAt         pgtype.Timestamptz `json:"updated_at"`
}

func (q *Queries) UpdateField(ctx context.Context, db DBTX, arg UpdateFieldParams) (int64, error) {
	result, err := db.Exec(ctx, updateField,
		arg.ID,
		arg.Name,
		arg.Address,
		arg.DistrictID,
		arg.Contact,
		arg.HourlyRateCents,
		arg.Description,
		arg.OpeningTime,
		arg.ClosingTime,
		arg.MinBookingSeconds,
		arg.Latitude,
		arg.Longitude,
		arg.UpdatedAt,
	)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const deleteField = `-- name: DeleteField :execrows
DELETE FROM fields WHERE id = $1`

func (q *Queries) DeleteField(ctx context.Context, db DBTX, id uuid.UUID) (int64, error) {
	result, err := db.Exec(ctx, deleteField, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const getFieldForShare = `-- name: GetFieldForShare :one
SELECT ` + fieldColumns + `
FROM fields f
WHERE f.id = $1
FOR SHARE`

// GetFieldForShare locks the row against concurrent updates until the transaction ends.
func (q *Queries) GetFieldForShare(ctx context.Context, db DBTX, id uuid.UUID) (Field, error) {
	var i Field
	err := scanField(db.QueryRow(ctx, getFieldForShare, id), &i)
	return i, err
}

const getFieldForUpdate = `-- name: GetFieldForUpdate :one
SELECT ` + fieldColumns + `
FROM fields f
WHERE f.id = $1
FOR UPDATE`

func (q *Queries) GetFieldForUpdate(ctx context.Context, db DBTX, id uuid.UUID) (Field, error) {
	var i Field
	err := scanField(db.QueryRow(ctx, getFieldForUpdate, id), &i)
	return i, err
}

const getFieldViewByID = `-- name: GetFieldViewByID :one
SELECT ` + fieldColumns + `, d.name, c.name, r.name` + fieldViewFrom + `
WHERE f.id = $1`

func (q *Queries) GetFieldViewByID(ctx context.Context, db DBTX, id uuid.UUID) (FieldView, error) {
	return scanFieldView(db.QueryRow(ctx, getFieldViewByID, id))
}

const listFieldViews = `-- name: ListFieldViews :many
SELECT ` + fieldColumns + `, d.name, c.name, r.name` + fieldViewFrom + `
WHERE ($1::uuid IS NULL OR f.owner_id = $1::uuid)
  AND ($2::text IS NULL OR f.name = $2::text)
  AND ($3::text IS NULL OR f.address = $3::text)
ORDER BY f.created_at DESC, f.id`

type ListFieldViewsParams struct {
	OwnerID pgtype.UUID `json:"owner_id"`
	Name    pgtype.Text `json:"name"`
	Address pgtype.Text `json:"address"`
}

func (q *Queries) ListFieldViews(ctx context.Context, db DBTX, arg ListFieldViewsParams) ([]FieldView, error) {
	rows, err := db.Query(ctx, listFieldViews, arg.OwnerID, arg.Name, arg.Address)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []FieldView{}
	for rows.Next() {
		i, err := scanFieldView(rows)
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

const listAvailableFieldViews = `-- name: ListAvailableFieldViews :many
SELECT ` + fieldColumns + `, d.name, c.name, r.name` + fieldViewFrom + `
WHERE ($1::uuid IS NULL OR f.district_id = $1::uuid)
  AND ($2::timestamptz IS NULL OR (
        NOT EXISTS (
            SELECT 1 FROM bookings b
            WHERE b.field_id = f.id
              AND b.start_time < $3::timestamptz
              AND b.end_time > $2::timestamptz
        )
        AND f.opening_time <= $4::time
        AND f.closing_time >= $5::time
  ))
ORDER BY f.created_at, f.id`

// ListAvailableFieldViewsParams leaves the window unset to skip the booking and hours filters.
// StartClock and EndClock are the wall-clock times of the window ends.
type ListAvailableFieldViewsParams struct {
	DistrictID  pgtype.UUID        `json:"district_id"`
	WindowStart pgtype.Timestamptz `json:"window_start"`
	WindowEnd   pgtype.Timestamptz `json:"window_end"`
	StartClock  pgtype.Time        `json:"start_clock"`
	EndClock    pgtype.Time        `json:"end_clock"`
}

func (q *Queries) ListAvailableFieldViews(ctx context.Context, db DBTX, arg ListAvailableFieldViewsParams) ([]FieldView, error) {
	rows, err := db.Query(ctx, listAvailableFieldViews,
		arg.DistrictID,
		arg.WindowStart,
		arg.WindowEnd,
		arg.StartClock,
		arg.EndClock,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []FieldView{}
	for rows.Next() {
		i, err := scanFieldView(rows)
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
