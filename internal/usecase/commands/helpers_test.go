//go:build unit

package commands_test

import (
	"context"
	"testing"

	sharedmock "football-field-booking/internal/mock/shared"
	"football-field-booking/internal/usecase/shared"

	"go.uber.org/mock/gomock"
)

type uowFixture struct {
	uow      *sharedmock.MockUnitOfWork
	tx       *sharedmock.MockTx
	reads    *sharedmock.MockCommandReads
	fields   *sharedmock.MockFieldRepository
	bookings *sharedmock.MockBookingRepository
}

func newUoWFixture(t *testing.T) *uowFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &uowFixture{
		uow:      sharedmock.NewMockUnitOfWork(ctrl),
		tx:       sharedmock.NewMockTx(ctrl),
		reads:    sharedmock.NewMockCommandReads(ctrl),
		fields:   sharedmock.NewMockFieldRepository(ctrl),
		bookings: sharedmock.NewMockBookingRepository(ctrl),
	}
	f.tx.EXPECT().Reads().Return(f.reads).AnyTimes()
	f.tx.EXPECT().Fields().Return(f.fields).AnyTimes()
	f.tx.EXPECT().Bookings().Return(f.bookings).AnyTimes()
	f.tx.EXPECT().DB().Return(nil).AnyTimes()
	return f
}

func (f *uowFixture) run(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
	return fn(ctx, f.tx)
}

func (f *uowFixture) expectWithin() {
	f.uow.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(f.run)
}

func (f *uowFixture) expectSerializable() {
	f.uow.EXPECT().WithinSerializable(gomock.Any(), gomock.Any()).DoAndReturn(f.run)
}
