package shared

import (
	"context"
	"time"

	"football-field-booking/internal/domain/booking"
	"football-field-booking/internal/domain/field"
	"football-field-booking/internal/infra/sqldb"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinSerializable: Same as Within at SERIALIZABLE isolation, for check-then-insert flows
	WithinSerializable(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqldb.DBTX) error) error
}

type Tx interface {
	Fields() FieldRepository
	Bookings() BookingRepository
	Reads() CommandReads
	DB() sqldb.DBTX
}

// CommandReads always hit the database inside the current transaction. Nothing here is cached.
type CommandReads interface {
	// FieldForBooking takes a shared row lock so the field cannot change until commit.
	FieldForBooking(ctx context.Context, id uuid.UUID) (*field.Field, error)
	FieldForUpdate(ctx context.Context, id uuid.UUID) (*field.Field, error)
	OverlappingBookings(ctx context.Context, fieldID uuid.UUID, start, end time.Time) ([]booking.Existing, error)
	BookingByID(ctx context.Context, id uuid.UUID) (*BookingSnapshot, error)
}

type FieldRepository interface {
	Create(ctx context.Context, tx sqldb.DBTX, f *field.Field) (uuid.UUID, error)
	Update(ctx context.Context, tx sqldb.DBTX, f *field.Field) error
	Delete(ctx context.Context, tx sqldb.DBTX, id uuid.UUID) error
}

type BookingRepository interface {
	Create(ctx context.Context, tx sqldb.DBTX, b *booking.Booking) (uuid.UUID, error)
	Delete(ctx context.Context, tx sqldb.DBTX, id uuid.UUID) error
}
