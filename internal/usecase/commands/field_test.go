//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"football-field-booking/internal/domain/field"
	"football-field-booking/internal/domain/user"
	"football-field-booking/internal/infra"
	"football-field-booking/internal/infra/sqldb"
	"football-field-booking/internal/pkg/clock"
	"football-field-booking/internal/pkg/errs"
	"football-field-booking/internal/testutil/builder"
	"football-field-booking/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func ptr[T any](v T) *T { return &v }

func TestFieldCommands_Create(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2030, 6, 1, 12, 0, 0, 0, time.UTC)
	owner := user.Actor{ID: uuid.New(), Role: user.RoleOwner}

	testCases := []struct {
		name      string
		actor     user.Actor
		mutate    func(*commands.CreateFieldRequest)
		setup     func(*uowFixture)
		expectErr error
	}{
		{
			name:  "基本成功ケース",
			actor: owner,
			setup: func(f *uowFixture) {
				f.expectWithin()
				f.fields.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, _ sqldb.DBTX, fl *field.Field) (uuid.UUID, error) {
						assert.Equal(t, owner.ID, fl.OwnerID())
						assert.Equal(t, "Bunyodkor Arena", fl.Name())
						assert.Equal(t, int64(6000), fl.HourlyRate().Cents())
						assert.Equal(t, time.Hour, fl.Unit().Duration())
						assert.Equal(t, now, fl.CreatedAt())
						return fl.ID(), nil
					})
			},
		},
		{
			name:   "最小予約時間を省略すると1時間",
			actor:  owner,
			mutate: func(r *commands.CreateFieldRequest) { r.MinBookingDuration = "" },
			setup: func(f *uowFixture) {
				f.expectWithin()
				f.fields.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, _ sqldb.DBTX, fl *field.Field) (uuid.UUID, error) {
						assert.Equal(t, field.DefaultMinBookingDuration, fl.Unit().Duration())
						return fl.ID(), nil
					})
			},
		},
		{
			name:      "一般ユーザーは作成できない",
			actor:     user.Actor{ID: uuid.New(), Role: user.RoleUser},
			setup:     func(f *uowFixture) {},
			expectErr: commands.ErrForbidden,
		},
		{
			name:      "管理者も作成できない",
			actor:     user.Actor{ID: uuid.New(), Role: user.RoleAdmin},
			setup:     func(f *uowFixture) {},
			expectErr: commands.ErrForbidden,
		},
		{
			name:      "料金が不正",
			actor:     owner,
			mutate:    func(r *commands.CreateFieldRequest) { r.HourlyRate = "-1" },
			setup:     func(f *uowFixture) {},
			expectErr: field.ErrInvalidHourlyRate,
		},
		{
			name:      "緯度が範囲外",
			actor:     owner,
			mutate:    func(r *commands.CreateFieldRequest) { r.Latitude = 91 },
			setup:     func(f *uowFixture) {},
			expectErr: field.ErrInvalidLatitude,
		},
		{
			name:      "名前が空",
			actor:     owner,
			mutate:    func(r *commands.CreateFieldRequest) { r.Name = "  " },
			setup:     func(f *uowFixture) {},
			expectErr: field.ErrEmptyFieldName,
		},
		{
			name:  "存在しない地区",
			actor: owner,
			setup: func(f *uowFixture) {
				f.expectWithin()
				f.fields.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(uuid.Nil, infra.WrapRepoErr("failed to create field", &pgconn.PgError{Code: "23503"}))
			},
			expectErr: commands.ErrDistrictNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newUoWFixture(t)
			tc.setup(f)
			req := builder.NewFieldBuilder().BuildCreateCommand()
			if tc.mutate != nil {
				tc.mutate(&req)
			}

			res, err := commands.NewFieldUseCase(f.uow, clock.NewMockClock(now)).Create(ctx, req, tc.actor)
			if tc.expectErr != nil {
				require.ErrorIs(t, err, tc.expectErr)
				assert.Nil(t, res)
				return
			}
			require.NoError(t, err)
			assert.NotEqual(t, uuid.Nil, res.FieldID)
		})
	}

	t.Run("検証エラーはドメイン検証エラーとして識別できる", func(t *testing.T) {
		f := newUoWFixture(t)
		req := builder.NewFieldBuilder().BuildCreateCommand()
		req.OpeningTime = "25:00"

		_, err := commands.NewFieldUseCase(f.uow, clock.NewMockClock(now)).Create(ctx, req, owner)
		assert.True(t, errs.Is(err, commands.ErrDomainValidation))
		require.ErrorIs(t, err, field.ErrInvalidTimeOfDay)
	})

	t.Run("保存できない長さの最小予約時間はトランザクションを開始しない", func(t *testing.T) {
		f := newUoWFixture(t)
		req := builder.NewFieldBuilder().BuildCreateCommand()
		req.MinBookingDuration = "30000 00:00:00"

		res, err := commands.NewFieldUseCase(f.uow, clock.NewMockClock(now)).Create(ctx, req, owner)
		assert.Nil(t, res)
		assert.True(t, errs.Is(err, commands.ErrDomainValidation))
		require.ErrorIs(t, err, field.ErrInvalidBookingDuration)
	})
}

func TestFieldCommands_Update(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2030, 6, 1, 12, 0, 0, 0, time.UTC)
	fb := builder.NewFieldBuilder()
	owner := user.Actor{ID: fb.OwnerID, Role: user.RoleOwner}

	testCases := []struct {
		name      string
		actor     user.Actor
		req       commands.UpdateFieldRequest
		setup     func(*uowFixture)
		expectErr error
	}{
		{
			name:  "指定した項目だけ更新する",
			actor: owner,
			req: commands.UpdateFieldRequest{
				Name:       ptr("Pakhtakor Mini"),
				HourlyRate: ptr("75.50"),
				Latitude:   ptr(41.31),
			},
			setup: func(f *uowFixture) {
				f.reads.EXPECT().FieldForUpdate(gomock.Any(), fb.ID).Return(fb.BuildStored(t), nil)
				f.fields.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, _ sqldb.DBTX, fl *field.Field) error {
						assert.Equal(t, "Pakhtakor Mini", fl.Name())
						assert.Equal(t, int64(7550), fl.HourlyRate().Cents())
						assert.Equal(t, 41.31, fl.Coordinates().Latitude())
						assert.Equal(t, fb.Longitude, fl.Coordinates().Longitude())
						assert.Equal(t, fb.Address, fl.Address())
						assert.Equal(t, fb.Images, fl.Images())
						assert.Equal(t, now, fl.UpdatedAt())
						return nil
					})
			},
		},
		{
			name:  "画像を置き換える",
			actor: owner,
			req:   commands.UpdateFieldRequest{Images: &[]string{"https://cdn.example.com/new.jpg"}},
			setup: func(f *uowFixture) {
				f.reads.EXPECT().FieldForUpdate(gomock.Any(), fb.ID).Return(fb.BuildStored(t), nil)
				f.fields.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, _ sqldb.DBTX, fl *field.Field) error {
						assert.Equal(t, []string{"https://cdn.example.com/new.jpg"}, fl.Images())
						return nil
					})
			},
		},
		{
			name:  "他のオーナーは更新できない",
			actor: user.Actor{ID: uuid.New(), Role: user.RoleOwner},
			req:   commands.UpdateFieldRequest{Name: ptr("x")},
			setup: func(f *uowFixture) {
				f.reads.EXPECT().FieldForUpdate(gomock.Any(), fb.ID).Return(fb.BuildStored(t), nil)
			},
			expectErr: commands.ErrForbidden,
		},
		{
			name:  "存在しないフィールド",
			actor: owner,
			req:   commands.UpdateFieldRequest{Name: ptr("x")},
			setup: func(f *uowFixture) {
				f.reads.EXPECT().FieldForUpdate(gomock.Any(), fb.ID).
					Return(nil, infra.WrapRepoErr("failed to lock field for update", pgx.ErrNoRows))
			},
			expectErr: commands.ErrFieldNotFound,
		},
		{
			name:  "経度が範囲外",
			actor: owner,
			req:   commands.UpdateFieldRequest{Longitude: ptr(181.0)},
			setup: func(f *uowFixture) {
				f.reads.EXPECT().FieldForUpdate(gomock.Any(), fb.ID).Return(fb.BuildStored(t), nil)
			},
			expectErr: field.ErrInvalidLongitude,
		},
		{
			name:  "空の名前には更新できない",
			actor: owner,
			req:   commands.UpdateFieldRequest{Name: ptr("")},
			setup: func(f *uowFixture) {
				f.reads.EXPECT().FieldForUpdate(gomock.Any(), fb.ID).Return(fb.BuildStored(t), nil)
			},
			expectErr: field.ErrEmptyFieldName,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newUoWFixture(t)
			f.expectWithin()
			tc.setup(f)

			err := commands.NewFieldUseCase(f.uow, clock.NewMockClock(now)).Update(ctx, fb.ID, tc.req, tc.actor)
			if tc.expectErr != nil {
				require.ErrorIs(t, err, tc.expectErr)
				return
			}
			require.NoError(t, err)
		})
	}

	t.Run("不正な時刻はトランザクションを開始しない", func(t *testing.T) {
		f := newUoWFixture(t)
		err := commands.NewFieldUseCase(f.uow, clock.NewMockClock(now)).
			Update(ctx, fb.ID, commands.UpdateFieldRequest{ClosingTime: ptr("late")}, owner)
		require.ErrorIs(t, err, field.ErrInvalidTimeOfDay)
	})

	t.Run("保存できない長さの最小予約時間は更新しない", func(t *testing.T) {
		f := newUoWFixture(t)
		err := commands.NewFieldUseCase(f.uow, clock.NewMockClock(now)).
			Update(ctx, fb.ID, commands.UpdateFieldRequest{MinBookingDuration: ptr("24855 03:14:08")}, owner)
		assert.True(t, errs.Is(err, commands.ErrDomainValidation))
		require.ErrorIs(t, err, field.ErrInvalidBookingDuration)
	})
}

func TestFieldCommands_Delete(t *testing.T) {
	ctx := context.Background()
	fb := builder.NewFieldBuilder()

	testCases := []struct {
		name      string
		actor     user.Actor
		setup     func(*uowFixture)
		expectErr error
	}{
		{
			name:  "オーナーは削除できる",
			actor: user.Actor{ID: fb.OwnerID, Role: user.RoleOwner},
			setup: func(f *uowFixture) {
				f.reads.EXPECT().FieldForUpdate(gomock.Any(), fb.ID).Return(fb.BuildStored(t), nil)
				f.fields.EXPECT().Delete(gomock.Any(), gomock.Any(), fb.ID).Return(nil)
			},
		},
		{
			name:  "他のオーナーは削除できない",
			actor: user.Actor{ID: uuid.New(), Role: user.RoleOwner},
			setup: func(f *uowFixture) {
				f.reads.EXPECT().FieldForUpdate(gomock.Any(), fb.ID).Return(fb.BuildStored(t), nil)
			},
			expectErr: commands.ErrForbidden,
		},
		{
			name:  "所有者IDでもユーザーロールなら削除できない",
			actor: user.Actor{ID: fb.OwnerID, Role: user.RoleUser},
			setup: func(f *uowFixture) {
				f.reads.EXPECT().FieldForUpdate(gomock.Any(), fb.ID).Return(fb.BuildStored(t), nil)
			},
			expectErr: commands.ErrForbidden,
		},
		{
			name:  "削除中に消えていた",
			actor: user.Actor{ID: fb.OwnerID, Role: user.RoleOwner},
			setup: func(f *uowFixture) {
				f.reads.EXPECT().FieldForUpdate(gomock.Any(), fb.ID).Return(fb.BuildStored(t), nil)
				f.fields.EXPECT().Delete(gomock.Any(), gomock.Any(), fb.ID).
					Return(infra.WrapRepoErr("field not found", nil, infra.KindNotFound))
			},
			expectErr: commands.ErrFieldNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newUoWFixture(t)
			f.expectWithin()
			tc.setup(f)

			err := commands.NewFieldUseCase(f.uow, clock.NewMockClock(time.Now())).Delete(ctx, fb.ID, tc.actor)
			if tc.expectErr != nil {
				require.ErrorIs(t, err, tc.expectErr)
				return
			}
			require.NoError(t, err)
		})
	}
}
