package commands_test

import (
	"testing"
	"time"

	"dispatch/internal/core/application/session"
	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func courierWithWallet(t *testing.T, walletCents int64) *courier.Courier {
	t.Helper()
	payPolicy, err := courier.NewFixedPayPolicy(testMoney(t, 850))
	require.NoError(t, err)

	wallet := testMoney(t, walletCents)
	c, err := courier.RestoreCourier(
		kernel.NewUUID(), "John Doe", testLocation(t, 5, 7),
		courier.StatusOnline, payPolicy, wallet, nil, nil)
	require.NoError(t, err)
	return c
}

func TestRequestAdvanceCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	testCourier := courierWithWallet(t, 12540)
	actor, err := session.NewCourierSession(testCourier.ID())
	require.NoError(t, err)

	cmd, err := commands.NewRequestAdvanceCommand(testCourier.ID(), testMoney(t, 5000), actor)
	require.NoError(t, err)

	courierRepo := new(MockCourierRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CourierRepository").Return(courierRepo).Once(),
		courierRepo.On("Get", ctx, testCourier.ID()).Return(testCourier, nil).Once(),
		courierRepo.On("Update", ctx, mock.AnythingOfType("*courier.Courier")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCourierUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRequestAdvanceCommandHandler(factory, session.Policy{})
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, testCourier.PendingAdvance())
	assert.Equal(t, int64(5000), testCourier.PendingAdvance().Cents())
	// The wallet is only debited at approval.
	assert.Equal(t, int64(12540), testCourier.Wallet().Cents())
	courierRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestRequestAdvanceCommandHandler_Handle_OtherCourierNotAuthorized(t *testing.T) {
	ctx := t.Context()

	targetID := kernel.NewUUID()
	actor, err := session.NewCourierSession(kernel.NewUUID())
	require.NoError(t, err)

	cmd, err := commands.NewRequestAdvanceCommand(targetID, testMoney(t, 5000), actor)
	require.NoError(t, err)

	factory := new(MockCourierUoWFactory)
	handler := commands.NewRequestAdvanceCommandHandler(factory, session.Policy{})
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, session.ErrNotAuthorized)
	factory.AssertNotCalled(t, "Create")
}

func TestRequestAdvanceCommandHandler_Handle_ImpersonatedWritesBlocked(t *testing.T) {
	ctx := t.Context()

	targetID := kernel.NewUUID()
	actor, err := session.NewImpersonatedSession(targetID)
	require.NoError(t, err)

	cmd, err := commands.NewRequestAdvanceCommand(targetID, testMoney(t, 5000), actor)
	require.NoError(t, err)

	factory := new(MockCourierUoWFactory)
	handler := commands.NewRequestAdvanceCommandHandler(factory, session.Policy{})
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, session.ErrImpersonationIsReadOnly)
	factory.AssertNotCalled(t, "Create")
}

func TestRequestAdvanceCommandHandler_Handle_ImpersonatedWritesAllowedByPolicy(t *testing.T) {
	ctx := t.Context()

	testCourier := courierWithWallet(t, 12540)
	actor, err := session.NewImpersonatedSession(testCourier.ID())
	require.NoError(t, err)

	cmd, err := commands.NewRequestAdvanceCommand(testCourier.ID(), testMoney(t, 5000), actor)
	require.NoError(t, err)

	courierRepo := new(MockCourierRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CourierRepository").Return(courierRepo).Once(),
		courierRepo.On("Get", ctx, testCourier.ID()).Return(testCourier, nil).Once(),
		courierRepo.On("Update", ctx, mock.AnythingOfType("*courier.Courier")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCourierUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRequestAdvanceCommandHandler(
		factory, session.Policy{AllowImpersonatedWrites: true})
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, testCourier.PendingAdvance())
}

func TestRequestAdvanceCommandHandler_Handle_ExceedsBalance(t *testing.T) {
	ctx := t.Context()

	testCourier := courierWithWallet(t, 12540)
	actor, err := session.NewCourierSession(testCourier.ID())
	require.NoError(t, err)

	cmd, err := commands.NewRequestAdvanceCommand(testCourier.ID(), testMoney(t, 20000), actor)
	require.NoError(t, err)

	courierRepo := new(MockCourierRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CourierRepository").Return(courierRepo).Once(),
		courierRepo.On("Get", ctx, testCourier.ID()).Return(testCourier, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCourierUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRequestAdvanceCommandHandler(factory, session.Policy{})
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, courier.ErrAdvanceExceedsBalance)
	assert.Nil(t, testCourier.PendingAdvance())
	courierRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestRequestAdvanceCommandHandler_Handle_SecondRequestWhilePending(t *testing.T) {
	ctx := t.Context()

	testCourier := courierWithWallet(t, 12540)
	require.NoError(t, testCourier.RequestAdvance(testMoney(t, 3000), time.Now().UTC()))

	actor, err := session.NewCourierSession(testCourier.ID())
	require.NoError(t, err)

	cmd, err := commands.NewRequestAdvanceCommand(testCourier.ID(), testMoney(t, 2000), actor)
	require.NoError(t, err)

	courierRepo := new(MockCourierRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CourierRepository").Return(courierRepo).Once(),
		courierRepo.On("Get", ctx, testCourier.ID()).Return(testCourier, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCourierUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRequestAdvanceCommandHandler(factory, session.Policy{})
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, courier.ErrAdvancePending)
}
