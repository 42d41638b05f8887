//go:build unit

package readstore_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"football-field-booking/internal/domain/field"
	"football-field-booking/internal/infra"
	"football-field-booking/internal/infra/readstore"
	"football-field-booking/internal/infra/sqldb"
	readstoremock "football-field-booking/internal/mock/readstore"
	sharedmock "football-field-booking/internal/mock/shared"
	"football-field-booking/internal/testutil/builder"
	"football-field-booking/internal/usecase/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var errDBConnectionLost = errors.New("database connection lost")

// readOnly expects one read-only transaction and runs its callback against db.
func readOnly(ctrl *gomock.Controller, db sqldb.DBTX) *sharedmock.MockUnitOfWork {
	m := sharedmock.NewMockUnitOfWork(ctrl)
	m.EXPECT().WithinReadOnly(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, sqldb.DBTX) error) error {
			return fn(ctx, db)
		})
	return m
}

// =============================================================================
// FindByID Tests
// =============================================================================

func TestFieldReadStore_FindByID(t *testing.T) {
	ctx := context.Background()
	b := builder.NewFieldBuilder().With(func(b *builder.FieldBuilder) {
		b.Images = []string{"https://cdn.example.com/1.jpg", "https://cdn.example.com/2.jpg"}
	})

	testCases := []struct {
		name       string
		setupMock  func(*readstoremock.MockFieldReadQueries)
		expectKind infra.RepositoryErrorKind
	}{
		{
			name: "success: field found with images",
			setupMock: func(m *readstoremock.MockFieldReadQueries) {
				m.EXPECT().GetFieldViewByID(ctx, gomock.Any(), b.ID).Return(b.BuildViewRow(t), nil)
				m.EXPECT().ListFieldImagesByFieldIDs(ctx, gomock.Any(), []uuid.UUID{b.ID}).Return([]sqldb.FieldImage{
					{FieldID: b.ID, Url: "https://cdn.example.com/1.jpg", Position: 0},
					{FieldID: b.ID, Url: "https://cdn.example.com/2.jpg", Position: 1},
				}, nil)
			},
		},
		{
			name: "error: field not found",
			setupMock: func(m *readstoremock.MockFieldReadQueries) {
				m.EXPECT().GetFieldViewByID(ctx, gomock.Any(), b.ID).Return(sqldb.FieldView{}, pgx.ErrNoRows)
			},
			expectKind: infra.KindNotFound,
		},
		{
			name: "error: database error",
			setupMock: func(m *readstoremock.MockFieldReadQueries) {
				m.EXPECT().GetFieldViewByID(ctx, gomock.Any(), b.ID).Return(sqldb.FieldView{}, errDBConnectionLost)
			},
			expectKind: infra.KindDBFailure,
		},
		{
			name: "error: corrupt stored row",
			setupMock: func(m *readstoremock.MockFieldReadQueries) {
				row := b.BuildViewRow(t)
				row.MinBookingSeconds = 0
				m.EXPECT().GetFieldViewByID(ctx, gomock.Any(), b.ID).Return(row, nil)
				m.EXPECT().ListFieldImagesByFieldIDs(ctx, gomock.Any(), gomock.Any()).Return(nil, nil)
			},
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := readstoremock.NewMockFieldReadQueries(ctrl)
			store := readstore.NewFieldReadStore(mockQueries, readOnly(ctrl, &mockDBTX{}))
			tc.setupMock(mockQueries)

			result, err := store.FindByID(ctx, b.ID)

			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				assert.Nil(t, result, "result should be nil when error occurs")
				return
			}
			require.NoError(t, err)
			want := b.BuildView(t)
			if diff := cmp.Diff(want, result, cmp.AllowUnexported(field.TimeOfDay{}, field.BookingUnit{}, field.HourlyRate{}, field.Coordinates{})); diff != "" {
				t.Errorf("FieldView mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFieldReadStore_ReadOnlySnapshot(t *testing.T) {
	ctx := context.Background()

	t.Run("success: row and images are read through the same transaction", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		b := builder.NewFieldBuilder()
		snapshot := &mockDBTX{name: "snapshot"}
		mockQueries := readstoremock.NewMockFieldReadQueries(ctrl)
		store := readstore.NewFieldReadStore(mockQueries, readOnly(ctrl, snapshot))

		mockQueries.EXPECT().GetFieldViewByID(ctx, gomock.Any(), b.ID).
			DoAndReturn(func(_ context.Context, db sqldb.DBTX, _ uuid.UUID) (sqldb.FieldView, error) {
				assert.Same(t, snapshot, db)
				return b.BuildViewRow(t), nil
			})
		mockQueries.EXPECT().ListFieldImagesByFieldIDs(ctx, gomock.Any(), []uuid.UUID{b.ID}).
			DoAndReturn(func(_ context.Context, db sqldb.DBTX, _ []uuid.UUID) ([]sqldb.FieldImage, error) {
				assert.Same(t, snapshot, db)
				return nil, nil
			})

		_, err := store.FindByID(ctx, b.ID)
		require.NoError(t, err)
	})

	t.Run("error: transaction cannot start", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := readstoremock.NewMockFieldReadQueries(ctrl)
		tx := sharedmock.NewMockUnitOfWork(ctrl)
		tx.EXPECT().WithinReadOnly(gomock.Any(), gomock.Any()).Return(errDBConnectionLost)
		store := readstore.NewFieldReadStore(mockQueries, tx)

		result, err := store.List(ctx, queries.FieldListCriteria{})
		require.ErrorIs(t, err, errDBConnectionLost)
		assert.Nil(t, result)
	})
}

// =============================================================================
// List Tests
// =============================================================================

func TestFieldReadStore_List(t *testing.T) {
	ctx := context.Background()

	t.Run("owner filter and exact matches are passed through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := readstoremock.NewMockFieldReadQueries(ctrl)
		store := readstore.NewFieldReadStore(mockQueries, readOnly(ctrl, &mockDBTX{}))

		ownerID := uuid.New()
		name := "Bunyodkor Arena"
		mockQueries.EXPECT().ListFieldViews(ctx, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqldb.DBTX, arg sqldb.ListFieldViewsParams) ([]sqldb.FieldView, error) {
				assert.True(t, arg.OwnerID.Valid)
				assert.Equal(t, ownerID, uuid.UUID(arg.OwnerID.Bytes))
				assert.Equal(t, name, arg.Name.String)
				assert.False(t, arg.Address.Valid)
				return []sqldb.FieldView{}, nil
			})

		result, err := store.List(ctx, queries.FieldListCriteria{OwnerID: &ownerID, Name: &name})
		require.NoError(t, err)
		assert.Empty(t, result)
		assert.NotNil(t, result)
	})

	t.Run("images are grouped per field", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := readstoremock.NewMockFieldReadQueries(ctrl)
		store := readstore.NewFieldReadStore(mockQueries, readOnly(ctrl, &mockDBTX{}))

		first := builder.NewFieldBuilder()
		second := builder.NewFieldBuilder()
		mockQueries.EXPECT().ListFieldViews(ctx, gomock.Any(), gomock.Any()).
			Return([]sqldb.FieldView{first.BuildViewRow(t), second.BuildViewRow(t)}, nil)
		mockQueries.EXPECT().ListFieldImagesByFieldIDs(ctx, gomock.Any(), []uuid.UUID{first.ID, second.ID}).
			Return([]sqldb.FieldImage{{FieldID: second.ID, Url: "https://cdn.example.com/s.jpg"}}, nil)

		result, err := store.List(ctx, queries.FieldListCriteria{})
		require.NoError(t, err)
		require.Len(t, result, 2)
		assert.Equal(t, []string{}, result[0].Images)
		assert.Equal(t, []string{"https://cdn.example.com/s.jpg"}, result[1].Images)
	})
}

// =============================================================================
// FindAvailable Tests
// =============================================================================

func TestFieldReadStore_FindAvailable(t *testing.T) {
	ctx := context.Background()
	uzt := time.FixedZone("UZT", 5*60*60)

	t.Run("window is sent with wall-clock times of its own offset", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := readstoremock.NewMockFieldReadQueries(ctrl)
		store := readstore.NewFieldReadStore(mockQueries, readOnly(ctrl, &mockDBTX{}))

		districtID := builder.ChilonzorDistrictID
		window := field.Window{
			Start: time.Date(2030, 6, 11, 14, 0, 0, 0, uzt),
			End:   time.Date(2030, 6, 11, 16, 30, 0, 0, uzt),
		}
		mockQueries.EXPECT().ListAvailableFieldViews(ctx, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqldb.DBTX, arg sqldb.ListAvailableFieldViewsParams) ([]sqldb.FieldView, error) {
				assert.Equal(t, districtID, uuid.UUID(arg.DistrictID.Bytes))
				assert.True(t, arg.WindowStart.Time.Equal(window.Start))
				assert.True(t, arg.WindowEnd.Time.Equal(window.End))
				assert.Equal(t, (14 * time.Hour).Microseconds(), arg.StartClock.Microseconds)
				assert.Equal(t, (16*time.Hour + 30*time.Minute).Microseconds(), arg.EndClock.Microseconds)
				return nil, nil
			})

		result, err := store.FindAvailable(ctx, queries.AvailabilityCriteria{DistrictID: &districtID, Window: &window})
		require.NoError(t, err)
		assert.Empty(t, result)
	})

	t.Run("no window leaves the time filters unset", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := readstoremock.NewMockFieldReadQueries(ctrl)
		store := readstore.NewFieldReadStore(mockQueries, readOnly(ctrl, &mockDBTX{}))

		mockQueries.EXPECT().ListAvailableFieldViews(ctx, gomock.Any(), sqldb.ListAvailableFieldViewsParams{}).Return(nil, nil)

		_, err := store.FindAvailable(ctx, queries.AvailabilityCriteria{})
		require.NoError(t, err)
	})

	t.Run("database error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := readstoremock.NewMockFieldReadQueries(ctrl)
		store := readstore.NewFieldReadStore(mockQueries, readOnly(ctrl, &mockDBTX{}))

		mockQueries.EXPECT().ListAvailableFieldViews(ctx, gomock.Any(), gomock.Any()).Return(nil, errDBConnectionLost)

		_, err := store.FindAvailable(ctx, queries.AvailabilityCriteria{})
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

type mockDBTX struct {
	name string
}

func (m *mockDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *mockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (m *mockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}
