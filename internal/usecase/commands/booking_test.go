//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"football-field-booking/internal/domain/booking"
	"football-field-booking/internal/domain/user"
	"football-field-booking/internal/infra"
	"football-field-booking/internal/infra/sqldb"
	"football-field-booking/internal/pkg/clock"
	"football-field-booking/internal/testutil/builder"
	"football-field-booking/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var errDBConnectionLost = errors.New("database connection lost")

func TestBookingCommands_Create(t *testing.T) {
	ctx := context.Background()
	now := time.Now().In(builder.Tashkent)
	fb := builder.NewFieldBuilder()
	stored := fb.BuildStored(t)
	booker := user.Actor{ID: uuid.New(), Role: user.RoleUser}

	slot := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
		b.FieldID = fb.ID
		b.UserID = booker.ID
	})
	req := commands.CreateBookingRequest{FieldID: fb.ID, Start: slot.Start, End: slot.End}

	overlapping := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
		b.FieldID = fb.ID
		b.Start, b.End = slot.Start, slot.End
	}).At(10, 12).BuildExisting()

	testCases := []struct {
		name      string
		actor     user.Actor
		req       commands.CreateBookingRequest
		setup     func(*uowFixture)
		expectErr error
		expectMsg string
	}{
		{
			name:  "基本成功ケース",
			actor: booker,
			req:   req,
			setup: func(f *uowFixture) {
				f.expectSerializable()
				f.reads.EXPECT().FieldForBooking(gomock.Any(), fb.ID).Return(stored, nil)
				f.reads.EXPECT().OverlappingBookings(gomock.Any(), fb.ID, req.Start, req.End).Return(nil, nil)
				f.bookings.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, _ sqldb.DBTX, b *booking.Booking) (uuid.UUID, error) {
						assert.Equal(t, fb.ID, b.FieldID())
						assert.Equal(t, booker.ID, b.UserID())
						assert.True(t, b.Slot().Start().Equal(req.Start))
						assert.True(t, b.Slot().End().Equal(req.End))
						return b.ID(), nil
					})
			},
		},
		{
			name:  "オーナーも予約できる",
			actor: user.Actor{ID: uuid.New(), Role: user.RoleOwner},
			req:   req,
			setup: func(f *uowFixture) {
				f.expectSerializable()
				f.reads.EXPECT().FieldForBooking(gomock.Any(), fb.ID).Return(stored, nil)
				f.reads.EXPECT().OverlappingBookings(gomock.Any(), fb.ID, req.Start, req.End).Return(nil, nil)
				f.bookings.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(uuid.New(), nil)
			},
		},
		{
			name:      "ゲストは予約できない",
			actor:     user.Guest(),
			req:       req,
			setup:     func(f *uowFixture) {},
			expectErr: commands.ErrForbidden,
		},
		{
			name:  "存在しないフィールド",
			actor: booker,
			req:   req,
			setup: func(f *uowFixture) {
				f.expectSerializable()
				f.reads.EXPECT().FieldForBooking(gomock.Any(), fb.ID).
					Return(nil, infra.WrapRepoErr("failed to lock field for booking", pgx.ErrNoRows))
			},
			expectErr: commands.ErrFieldNotFound,
		},
		{
			name:  "過去の開始時刻は保存しない",
			actor: booker,
			req: commands.CreateBookingRequest{
				FieldID: fb.ID,
				Start:   now.Add(-2 * time.Hour),
				End:     now.Add(-time.Hour),
			},
			setup: func(f *uowFixture) {
				f.expectSerializable()
				f.reads.EXPECT().FieldForBooking(gomock.Any(), fb.ID).Return(stored, nil)
				f.reads.EXPECT().OverlappingBookings(gomock.Any(), fb.ID, gomock.Any(), gomock.Any()).Return(nil, nil)
			},
			expectErr: booking.ErrInvalidTiming,
			expectMsg: booking.MsgStartInPast,
		},
		{
			name:  "既存の予約と重なる",
			actor: booker,
			req:   req,
			setup: func(f *uowFixture) {
				f.expectSerializable()
				f.reads.EXPECT().FieldForBooking(gomock.Any(), fb.ID).Return(stored, nil)
				f.reads.EXPECT().OverlappingBookings(gomock.Any(), fb.ID, req.Start, req.End).
					Return([]booking.Existing{overlapping}, nil)
			},
			expectErr: booking.ErrOverlapConflict,
			expectMsg: booking.MsgAlreadyBooked,
		},
		{
			name:  "書き込み時の排他制約違反は重複として扱う",
			actor: booker,
			req:   req,
			setup: func(f *uowFixture) {
				f.expectSerializable()
				f.reads.EXPECT().FieldForBooking(gomock.Any(), fb.ID).Return(stored, nil)
				f.reads.EXPECT().OverlappingBookings(gomock.Any(), fb.ID, req.Start, req.End).Return(nil, nil)
				f.bookings.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(uuid.Nil, infra.WrapRepoErr("failed to create booking", &pgconn.PgError{Code: "23P01"}))
			},
			expectErr: booking.ErrOverlapConflict,
			expectMsg: booking.MsgAlreadyBooked,
		},
		{
			name:  "書き込み時の一意制約違反は重複として扱う",
			actor: booker,
			req:   req,
			setup: func(f *uowFixture) {
				f.expectSerializable()
				f.reads.EXPECT().FieldForBooking(gomock.Any(), fb.ID).Return(stored, nil)
				f.reads.EXPECT().OverlappingBookings(gomock.Any(), fb.ID, req.Start, req.End).Return(nil, nil)
				f.bookings.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(uuid.Nil, infra.WrapRepoErr("failed to create booking", &pgconn.PgError{Code: "23505"}))
			},
			expectErr: booking.ErrOverlapConflict,
		},
		{
			name:  "DBエラーはそのまま返す",
			actor: booker,
			req:   req,
			setup: func(f *uowFixture) {
				f.expectSerializable()
				f.reads.EXPECT().FieldForBooking(gomock.Any(), fb.ID).Return(stored, nil)
				f.reads.EXPECT().OverlappingBookings(gomock.Any(), fb.ID, req.Start, req.End).Return(nil, nil)
				f.bookings.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(uuid.Nil, infra.WrapRepoErr("failed to create booking", errDBConnectionLost))
			},
			expectErr: errDBConnectionLost,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newUoWFixture(t)
			tc.setup(f)
			uc := commands.NewBookingUseCase(f.uow, clock.NewMockClock(now), booking.NewValidator(builder.Tashkent))

			res, err := uc.Create(ctx, tc.req, tc.actor)
			if tc.expectErr != nil {
				require.ErrorIs(t, err, tc.expectErr)
				assert.Nil(t, res)
				if tc.expectMsg != "" {
					var ve *booking.ValidationError
					require.ErrorAs(t, err, &ve)
					assert.Equal(t, tc.expectMsg, ve.Message())
				}
				return
			}
			require.NoError(t, err)
			require.NotNil(t, res)
			assert.NotEqual(t, uuid.Nil, res.BookingID)
		})
	}
}

func TestBookingCommands_Delete(t *testing.T) {
	ctx := context.Background()
	b := builder.NewBookingBuilder()
	snap := b.BuildSnapshot()

	testCases := []struct {
		name      string
		actor     user.Actor
		setup     func(*uowFixture)
		expectErr error
	}{
		{
			name:  "予約者は削除できる",
			actor: user.Actor{ID: b.UserID, Role: user.RoleUser},
			setup: func(f *uowFixture) {
				f.reads.EXPECT().BookingByID(gomock.Any(), b.ID).Return(snap, nil)
				f.bookings.EXPECT().Delete(gomock.Any(), gomock.Any(), b.ID).Return(nil)
			},
		},
		{
			name:  "フィールドのオーナーは削除できる",
			actor: user.Actor{ID: b.FieldOwnerID, Role: user.RoleOwner},
			setup: func(f *uowFixture) {
				f.reads.EXPECT().BookingByID(gomock.Any(), b.ID).Return(snap, nil)
				f.bookings.EXPECT().Delete(gomock.Any(), gomock.Any(), b.ID).Return(nil)
			},
		},
		{
			name:  "管理者は削除できる",
			actor: user.Actor{ID: uuid.New(), Role: user.RoleAdmin},
			setup: func(f *uowFixture) {
				f.reads.EXPECT().BookingByID(gomock.Any(), b.ID).Return(snap, nil)
				f.bookings.EXPECT().Delete(gomock.Any(), gomock.Any(), b.ID).Return(nil)
			},
		},
		{
			name:  "他人の予約は削除できない",
			actor: user.Actor{ID: uuid.New(), Role: user.RoleUser},
			setup: func(f *uowFixture) {
				f.reads.EXPECT().BookingByID(gomock.Any(), b.ID).Return(snap, nil)
			},
			expectErr: commands.ErrForbidden,
		},
		{
			name:  "存在しない予約",
			actor: user.Actor{ID: b.UserID, Role: user.RoleUser},
			setup: func(f *uowFixture) {
				f.reads.EXPECT().BookingByID(gomock.Any(), b.ID).
					Return(nil, infra.WrapRepoErr("failed to get booking", pgx.ErrNoRows))
			},
			expectErr: commands.ErrBookingNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newUoWFixture(t)
			f.expectWithin()
			tc.setup(f)
			uc := commands.NewBookingUseCase(f.uow, clock.NewMockClock(time.Now()), booking.NewValidator(builder.Tashkent))

			err := uc.Delete(ctx, b.ID, tc.actor)
			if tc.expectErr != nil {
				require.ErrorIs(t, err, tc.expectErr)
				return
			}
			require.NoError(t, err)
		})
	}
}
