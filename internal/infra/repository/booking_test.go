//go:build unit

package repository_test

import (
	"context"
	"testing"

	"football-field-booking/internal/infra"
	"football-field-booking/internal/infra/repository"
	"football-field-booking/internal/infra/sqldb"
	repositorymock "football-field-booking/internal/mock/repository"
	"football-field-booking/internal/testutil/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestBookingRepository_Create(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name             string
		dbErr            error
		expectKind       infra.RepositoryErrorKind
		expectConstraint string
	}{
		{name: "success: booking created"},
		{
			name:             "error: identical slot violates the unique key",
			dbErr:            &pgconn.PgError{Code: "23505", ConstraintName: "bookings_field_slot_key"},
			expectKind:       infra.KindDuplicateKey,
			expectConstraint: "bookings_field_slot_key",
		},
		{
			name:             "error: overlapping slot violates the exclusion constraint",
			dbErr:            &pgconn.PgError{Code: "23P01", ConstraintName: "bookings_no_overlap"},
			expectKind:       infra.KindExclusionViolated,
			expectConstraint: "bookings_no_overlap",
		},
		{
			name:       "error: database error",
			dbErr:      errDBConnectionLost,
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewBookingRepository(mockQueries, mockDB)

			b := builder.NewBookingBuilder().BuildDomain()
			mockQueries.EXPECT().CreateBooking(ctx, gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, _ sqldb.DBTX, arg sqldb.CreateBookingParams) (sqldb.Booking, error) {
					assert.Equal(t, b.ID(), arg.ID)
					assert.True(t, arg.StartTime.Time.Equal(b.Slot().Start()))
					assert.True(t, arg.EndTime.Time.Equal(b.Slot().End()))
					if tc.dbErr != nil {
						return sqldb.Booking{}, tc.dbErr
					}
					return sqldb.Booking{ID: arg.ID, FieldID: arg.FieldID, UserID: arg.UserID}, nil
				})

			id, err := repo.Create(ctx, mockDB, b)

			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				if tc.expectConstraint != "" {
					var repoErr infra.RepositoryError
					require.ErrorAs(t, err, &repoErr)
					assert.Equal(t, tc.expectConstraint, repoErr.Constraint)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, b.ID(), id)
		})
	}
}

func TestBookingRepository_Delete(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	testCases := []struct {
		name       string
		rows       int64
		dbErr      error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success: booking deleted", rows: 1},
		{name: "error: booking not found", rows: 0, expectKind: infra.KindNotFound},
		{name: "error: database error", dbErr: errDBConnectionLost, expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewBookingRepository(mockQueries, mockDB)

			mockQueries.EXPECT().DeleteBooking(ctx, gomock.Any(), id).Return(tc.rows, tc.dbErr)

			err := repo.Delete(ctx, mockDB, id)

			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				return
			}
			require.NoError(t, err)
		})
	}
}
