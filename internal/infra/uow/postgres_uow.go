package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"football-field-booking/internal/domain/booking"
	"football-field-booking/internal/domain/field"
	"football-field-booking/internal/infra"
	"football-field-booking/internal/infra/repository"
	"football-field-booking/internal/infra/repository/converter"
	"football-field-booking/internal/infra/sqldb"
	"football-field-booking/internal/pkg/errs"
	"football-field-booking/internal/pkg/pgconv"
	"football-field-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool *pgxpool.Pool
	q    *sqldb.Queries
}

func NewPostgresUoW(pool *pgxpool.Pool, q *sqldb.Queries) shared.UnitOfWork {
	return &PostgresUoW{
		pool: pool,
		q:    q,
	}
}

// ReadCommitted prevents dirty reads while allowing concurrent writes
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

// Serializable makes a read-check-insert sequence behave as if run alone. Conflicting
// transactions fail with 40001 and are retried below.
func (u *PostgresUoW) WithinSerializable(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable}, fn)
}

// Read-only transaction for consistent multi-table snapshots
func (u *PostgresUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqldb.DBTX) error) error {
	return u.runReadOnlyTx(ctx, pgx.TxOptions{AccessMode: pgx.ReadOnly}, fn)
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	const maxRetries = 3
	base := 100 * time.Millisecond

	for attempt := 0; attempt <= maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		tx := &pgTx{
			dbtx: pgxTx,
			uow:  u,
		}

		err = fn(ctx, tx)
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !shouldRetry(err, attempt, maxRetries) {
			if attempt == maxRetries && isRetryableError(err) {
				slog.Error("transaction failed after max retries",
					"attempts", attempt+1,
					"error", err.Error())
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		waitTime := calculateBackoff(attempt, base)

		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

func (u *PostgresUoW) runReadOnlyTx(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, db sqldb.DBTX) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, options)
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}

	defer func() {
		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("failed to rollback read-only transaction", "error", rollbackErr.Error())
			}
		}
	}()

	if err := fn(ctx, pgxTx); err != nil {
		return err
	}

	return pgxTx.Commit(ctx)
}

func shouldRetry(err error, attempt, maxRetries int) bool {
	return isRetryableError(err) && attempt < maxRetries
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// Fallback to a simple calculation if crypto/rand fails
		return 0
	}
	// Safe conversion: mask high bit to ensure positive int64
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- Intentionally safe conversion after masking
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx sqldb.DBTX
	uow  *PostgresUoW

	// Lazy-initialized repositories
	fieldRepo    shared.FieldRepository
	bookingRepo  shared.BookingRepository
	commandReads shared.CommandReads
}

func (t *pgTx) DB() sqldb.DBTX {
	return t.dbtx
}

func (t *pgTx) Fields() shared.FieldRepository {
	if t.fieldRepo == nil {
		t.fieldRepo = repository.NewFieldRepository(t.uow.q, t.dbtx)
	}
	return t.fieldRepo
}

func (t *pgTx) Bookings() shared.BookingRepository {
	if t.bookingRepo == nil {
		t.bookingRepo = repository.NewBookingRepository(t.uow.q, t.dbtx)
	}
	return t.bookingRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = &commandReads{
			q:    t.uow.q,
			dbtx: t.dbtx,
		}
	}
	return t.commandReads
}

// commandReads never caches: every call reads the row as the transaction sees it now.
type commandReads struct {
	q    *sqldb.Queries
	dbtx sqldb.DBTX
}

func (r *commandReads) FieldForBooking(ctx context.Context, id uuid.UUID) (*field.Field, error) {
	row, err := r.q.GetFieldForShare(ctx, r.dbtx, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock field for booking", err)
	}
	return r.toField(ctx, row)
}

func (r *commandReads) FieldForUpdate(ctx context.Context, id uuid.UUID) (*field.Field, error) {
	row, err := r.q.GetFieldForUpdate(ctx, r.dbtx, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock field for update", err)
	}
	return r.toField(ctx, row)
}

func (r *commandReads) toField(ctx context.Context, row sqldb.Field) (*field.Field, error) {
	images, err := r.q.ListFieldImagesByFieldIDs(ctx, r.dbtx, []uuid.UUID{row.ID})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list field images", err)
	}
	urls := make([]string, len(images))
	for i, img := range images {
		urls[i] = img.Url
	}

	f, err := converter.FieldFromRow(row, urls)
	if err != nil {
		return nil, infra.WrapRepoErr("stored field is invalid", err, infra.KindDBFailure)
	}
	return f, nil
}

func (r *commandReads) OverlappingBookings(ctx context.Context, fieldID uuid.UUID, start, end time.Time) ([]booking.Existing, error) {
	rows, err := r.q.ListOverlappingBookings(ctx, r.dbtx, sqldb.ListOverlappingBookingsParams{
		FieldID:   fieldID,
		StartTime: pgconv.TimeToPgtype(start),
		EndTime:   pgconv.TimeToPgtype(end),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list overlapping bookings", err)
	}
	return converter.ExistingFromRows(rows), nil
}

func (r *commandReads) BookingByID(ctx context.Context, id uuid.UUID) (*shared.BookingSnapshot, error) {
	row, err := r.q.GetBookingViewByID(ctx, r.dbtx, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get booking", err)
	}
	return &shared.BookingSnapshot{
		ID:           row.ID,
		FieldID:      row.FieldID,
		UserID:       row.UserID,
		FieldOwnerID: row.FieldOwnerID,
		StartTime:    pgconv.TimeFromPgtype(row.StartTime),
		EndTime:      pgconv.TimeFromPgtype(row.EndTime),
	}, nil
}
