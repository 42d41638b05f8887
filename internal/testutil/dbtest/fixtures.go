//go:build integration

package dbtest

import (
	"context"
	"testing"
	"time"

	"football-field-booking/internal/domain/booking"
	"football-field-booking/internal/domain/field"
	"football-field-booking/internal/infra/repository"
	"football-field-booking/internal/infra/sqldb"
	"football-field-booking/internal/testutil/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// InsertField stores the field the builder describes and returns it with its stored id.
func InsertField(t *testing.T, pool *pgxpool.Pool, b *builder.FieldBuilder) *field.Field {
	t.Helper()

	f, err := b.BuildDomain()
	require.NoError(t, err)

	repo := repository.NewFieldRepository(sqldb.New(), pool)
	_, err = repo.Create(context.Background(), pool, f)
	require.NoError(t, err, "フィールドの投入に失敗")
	return f
}

// InsertBooking stores a booking directly, skipping slot validation.
func InsertBooking(t *testing.T, pool *pgxpool.Pool, fieldID, userID uuid.UUID, start, end time.Time) uuid.UUID {
	t.Helper()

	repo := repository.NewBookingRepository(sqldb.New(), pool)
	b := booking.NewBooking(fieldID, userID, booking.NewTimeSlot(start, end), time.Now())
	id, err := repo.Create(context.Background(), pool, b)
	require.NoError(t, err, "予約の投入に失敗")
	return id
}

// ResetDB empties every table except the seeded district hierarchy.
func ResetDB(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_, err := pool.Exec(ctx, "TRUNCATE bookings, field_images, fields RESTART IDENTITY CASCADE")
	require.NoError(t, err, "Failed to reset database state")
}

func CountBookings(t *testing.T, pool *pgxpool.Pool, fieldID uuid.UUID) int {
	t.Helper()

	var n int
	err := pool.QueryRow(context.Background(), "SELECT count(*) FROM bookings WHERE field_id = $1", fieldID).Scan(&n)
	require.NoError(t, err)
	return n
}
