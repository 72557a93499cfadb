package commands_test

import (
	"context"
	"errors"
	"testing"

	"grabee/internal/core/application/usecases/commands"
	"grabee/internal/core/domain/model/kernel"
	"grabee/internal/core/domain/model/reward"
	"grabee/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRewardUoW struct{ mock.Mock }

func (m *MockRewardUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRewardUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRewardUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRewardUoW) RewardLedgerRepository() ports.RewardLedgerRepository {
	args := m.Called()
	return args.Get(0).(ports.RewardLedgerRepository)
}

type MockRewardUoWFactory struct{ mock.Mock }

func (m *MockRewardUoWFactory) Create() commands.RewardUoW {
	args := m.Called()
	return args.Get(0).(commands.RewardUoW)
}

func testCredit(t *testing.T) reward.Credit {
	t.Helper()
	credit, err := reward.NewCredit(kernel.NewUUID(), kernel.NewUUID(), reward.PointsPerDelivery)
	require.NoError(t, err)
	return credit
}

func TestReconcileRewardsCommandHandler_Handle_NothingToRepair(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewReconcileRewardsCommand()
	require.NoError(t, err)

	ledger := new(MockRewardLedgerRepository)
	uow := new(MockRewardUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RewardLedgerRepository").Return(ledger).Once(),
		ledger.On("FindUncreditedDeliveries", ctx).Return([]reward.Credit{}, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRewardUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewReconcileRewardsCommandHandler(factory)
	applied, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Zero(t, applied)
	ledger.AssertNotCalled(t, "Credit", mock.Anything, mock.Anything)
}

func TestReconcileRewardsCommandHandler_Handle_AppliesMissingCredits(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewReconcileRewardsCommand()
	require.NoError(t, err)

	creditA := testCredit(t)
	creditB := testCredit(t)

	ledger := new(MockRewardLedgerRepository)
	uow := new(MockRewardUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RewardLedgerRepository").Return(ledger).Once(),
		ledger.On("FindUncreditedDeliveries", ctx).Return([]reward.Credit{creditA, creditB}, nil).Once(),
		ledger.On("Credit", ctx, creditA).Return(true, nil).Once(),
		ledger.On("Credit", ctx, creditB).Return(true, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRewardUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewReconcileRewardsCommandHandler(factory)
	applied, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, 2, applied)
	ledger.AssertExpectations(t)
}

func TestReconcileRewardsCommandHandler_Handle_SkipsRacedCredits(t *testing.T) {
	ctx := t.Context()
	// A live completion credited one of the orders between the sweep's
	// read and its write. The idempotent Credit reports false and the
	// sweep counts only the credit it actually applied.
	cmd, err := commands.NewReconcileRewardsCommand()
	require.NoError(t, err)

	creditA := testCredit(t)
	creditB := testCredit(t)

	ledger := new(MockRewardLedgerRepository)
	uow := new(MockRewardUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RewardLedgerRepository").Return(ledger).Once(),
		ledger.On("FindUncreditedDeliveries", ctx).Return([]reward.Credit{creditA, creditB}, nil).Once(),
		ledger.On("Credit", ctx, creditA).Return(false, nil).Once(),
		ledger.On("Credit", ctx, creditB).Return(true, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRewardUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewReconcileRewardsCommandHandler(factory)
	applied, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, 1, applied)
}

func TestReconcileRewardsCommandHandler_Handle_FindError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewReconcileRewardsCommand()
	require.NoError(t, err)

	ledger := new(MockRewardLedgerRepository)
	uow := new(MockRewardUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RewardLedgerRepository").Return(ledger).Once(),
		ledger.On("FindUncreditedDeliveries", ctx).Return(nil, errors.New("query error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRewardUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewReconcileRewardsCommandHandler(factory)
	applied, err := h.Handle(ctx, cmd)
	require.EqualError(t, err, "query error")
	require.Zero(t, applied)
}

func TestReconcileRewardsCommandHandler_Handle_CreditError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewReconcileRewardsCommand()
	require.NoError(t, err)

	credit := testCredit(t)

	ledger := new(MockRewardLedgerRepository)
	uow := new(MockRewardUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RewardLedgerRepository").Return(ledger).Once(),
		ledger.On("FindUncreditedDeliveries", ctx).Return([]reward.Credit{credit}, nil).Once(),
		ledger.On("Credit", ctx, credit).Return(false, errors.New("credit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRewardUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewReconcileRewardsCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.EqualError(t, err, "credit error")
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
