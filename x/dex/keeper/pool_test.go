package keeper_test

import (
	"testing"

	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	"github.com/stretchr/testify/require"

	testkeeper "github.com/soonlabs/soondex/testutil/keeper"
	"github.com/soonlabs/soondex/x/dex/types"
)

func TestInitializePool(t *testing.T) {
	k, bank, ctx := testkeeper.DexKeeper(t)

	params := k.GetParams(ctx)
	fund(bank, creatorAddr, params.PoolCreationFee)

	pool, err := k.InitializePool(ctx, creatorAddr, denomX, denomY, 25, 500)
	require.NoError(t, err)
	require.Equal(t, uint64(1), pool.Id)
	require.Equal(t, denomX, pool.TokenX)
	require.Equal(t, denomY, pool.TokenY)
	require.True(t, pool.ReserveX.IsZero())
	require.True(t, pool.ReserveY.IsZero())
	require.True(t, pool.LpSupply.IsZero())
	require.Equal(t, creatorAddr.String(), pool.Authority)
	require.Equal(t, creatorAddr.String(), pool.SuperAdmin)
	require.Equal(t, []string{creatorAddr.String()}, pool.Admins)

	// Creation fee lands with the fee collector.
	collector := authtypes.NewModuleAddress(authtypes.FeeCollectorName)
	require.Equal(t, params.PoolCreationFee.Amount,
		bank.GetBalance(ctx, collector, params.PoolCreationFee.Denom).Amount)
	require.True(t, bank.GetBalance(ctx, creatorAddr, params.PoolCreationFee.Denom).Amount.IsZero())

	// Pair index resolves and the counter advanced.
	id, found := k.GetPoolIDByPair(ctx, denomX, denomY)
	require.True(t, found)
	require.Equal(t, pool.Id, id)
	require.Equal(t, uint64(2), k.PeekNextPoolID(ctx))
}

func TestInitializePoolValidation(t *testing.T) {
	k, bank, ctx := testkeeper.DexKeeper(t)

	params := k.GetParams(ctx)
	fund(bank, creatorAddr, params.PoolCreationFee)

	_, err := k.InitializePool(ctx, creatorAddr, "", denomY, 25, 500)
	require.ErrorIs(t, err, types.ErrInvalidTokenPair)

	_, err = k.InitializePool(ctx, creatorAddr, denomX, denomX, 25, 500)
	require.ErrorIs(t, err, types.ErrInvalidTokenPair)

	_, err = k.InitializePool(ctx, creatorAddr, denomX, denomY, params.MaxFeeRateBps+1, 500)
	require.ErrorIs(t, err, types.ErrInvalidInput)

	_, err = k.InitializePool(ctx, creatorAddr, denomX, denomY, 25, types.BpsDenominator+1)
	require.ErrorIs(t, err, types.ErrInvalidInput)
}

func TestInitializePoolDuplicatePair(t *testing.T) {
	k, bank, ctx := testkeeper.DexKeeper(t)

	setupPool(t, k, bank, ctx, 25, 500)

	params := k.GetParams(ctx)
	fund(bank, creatorAddr, params.PoolCreationFee)
	_, err := k.InitializePool(ctx, creatorAddr, denomX, denomY, 25, 500)
	require.ErrorIs(t, err, types.ErrPoolAlreadyExists)

	// Reversed denoms register the same canonical pair.
	fund(bank, creatorAddr, params.PoolCreationFee)
	_, err = k.InitializePool(ctx, creatorAddr, denomY, denomX, 25, 500)
	require.ErrorIs(t, err, types.ErrPoolAlreadyExists)
}

func TestInitializePoolInsufficientFee(t *testing.T) {
	k, _, ctx := testkeeper.DexKeeper(t)

	_, err := k.InitializePool(ctx, creatorAddr, denomX, denomY, 25, 500)
	require.ErrorIs(t, err, types.ErrInsufficientFunds)

	// Nothing was written.
	require.Empty(t, k.GetAllPools(ctx))
	require.Equal(t, uint64(1), k.PeekNextPoolID(ctx))
}

func TestGetAllPools(t *testing.T) {
	k, bank, ctx := testkeeper.DexKeeper(t)

	params := k.GetParams(ctx)
	fund(bank, creatorAddr, params.PoolCreationFee)
	fund(bank, creatorAddr, params.PoolCreationFee)

	_, err := k.InitializePool(ctx, creatorAddr, denomX, denomY, 25, 500)
	require.NoError(t, err)
	_, err = k.InitializePool(ctx, creatorAddr, denomX, "uusd", 30, 0)
	require.NoError(t, err)

	pools := k.GetAllPools(ctx)
	require.Len(t, pools, 2)
	require.Equal(t, uint64(1), pools[0].Id)
	require.Equal(t, uint64(2), pools[1].Id)

	require.True(t, pools[0].Validate() == nil)
	require.True(t, pools[1].Validate() == nil)

	_, found := k.GetPool(ctx, 99)
	require.False(t, found)
}
