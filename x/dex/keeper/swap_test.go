package keeper_test

import (
	"testing"
	"time"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	testkeeper "github.com/soonlabs/soondex/testutil/keeper"
	"github.com/soonlabs/soondex/x/dex/types"
)

func TestExecuteSwap(t *testing.T) {
	k, bank, ctx := testkeeper.DexKeeper(t)
	poolID := setupPool(t, k, bank, ctx, 25, 500)
	addLiquidity(t, k, bank, ctx, poolID, 1000, 1000)

	// fee = max(1, floor(100*25/10000)) = 1, netIn = 99,
	// out = 1000 - floor(1000000/1099) = 1000 - 909 = 91.
	fund(bank, traderAddr, coin(denomX, 100))
	amountOut, fee, err := k.ExecuteSwap(ctx, traderAddr, poolID, denomX, denomY, math.NewInt(100), math.ZeroInt())
	require.NoError(t, err)
	require.Equal(t, math.NewInt(91), amountOut)
	require.Equal(t, math.NewInt(1), fee)

	require.True(t, bank.GetBalance(ctx, traderAddr, denomX).Amount.IsZero())
	require.Equal(t, math.NewInt(91), bank.GetBalance(ctx, traderAddr, denomY).Amount)

	pool, _ := k.GetPool(ctx, poolID)
	require.Equal(t, math.NewInt(1100), pool.ReserveX)
	require.Equal(t, math.NewInt(909), pool.ReserveY)
	require.Equal(t, math.NewInt(100), pool.Volume24h)
	require.Equal(t, math.NewInt(1), pool.Fees24h)
}

func TestExecuteSwapStakerAccrual(t *testing.T) {
	k, bank, ctx := testkeeper.DexKeeper(t)
	poolID := setupPool(t, k, bank, ctx, 25, 500)
	addLiquidity(t, k, bank, ctx, poolID, 100000, 100000)

	// fee = floor(10000*25/10000) = 25, staker share = floor(25*3/25) = 3.
	fund(bank, traderAddr, coin(denomX, 10000))
	_, fee, err := k.ExecuteSwap(ctx, traderAddr, poolID, denomX, denomY, math.NewInt(10000), math.ZeroInt())
	require.NoError(t, err)
	require.Equal(t, math.NewInt(25), fee)

	pool, _ := k.GetPool(ctx, poolID)
	require.Equal(t, math.NewInt(3), pool.StakingRewardsAccrued)

	// The LP share stays on the curve: netIn 9975 + feeLp 22.
	require.Equal(t, math.NewInt(109997), pool.ReserveX)
}

func TestExecuteSwapReverseDirection(t *testing.T) {
	k, bank, ctx := testkeeper.DexKeeper(t)
	poolID := setupPool(t, k, bank, ctx, 25, 500)
	addLiquidity(t, k, bank, ctx, poolID, 100000, 100000)

	fund(bank, traderAddr, coin(denomY, 10000))
	amountOut, _, err := k.ExecuteSwap(ctx, traderAddr, poolID, denomY, denomX, math.NewInt(10000), math.ZeroInt())
	require.NoError(t, err)
	require.True(t, amountOut.IsPositive())
	require.Equal(t, amountOut, bank.GetBalance(ctx, traderAddr, denomX).Amount)

	// Fee paid in token Y converts to X units at the pre-swap spot price.
	pool, _ := k.GetPool(ctx, poolID)
	require.Equal(t, math.NewInt(3), pool.StakingRewardsAccrued)
}

func TestExecuteSwapErrors(t *testing.T) {
	k, bank, ctx := testkeeper.DexKeeper(t)
	poolID := setupPool(t, k, bank, ctx, 25, 500)

	fund(bank, traderAddr, coin(denomX, 1000))

	// Empty pool.
	_, _, err := k.ExecuteSwap(ctx, traderAddr, poolID, denomX, denomY, math.NewInt(100), math.ZeroInt())
	require.ErrorIs(t, err, types.ErrNoLiquidity)

	addLiquidity(t, k, bank, ctx, poolID, 1000, 1000)

	_, _, err = k.ExecuteSwap(ctx, traderAddr, 99, denomX, denomY, math.NewInt(100), math.ZeroInt())
	require.ErrorIs(t, err, types.ErrPoolNotFound)

	_, _, err = k.ExecuteSwap(ctx, traderAddr, poolID, "unknown", denomY, math.NewInt(100), math.ZeroInt())
	require.ErrorIs(t, err, types.ErrInvalidTokenPair)

	_, _, err = k.ExecuteSwap(ctx, traderAddr, poolID, denomX, denomY, math.ZeroInt(), math.ZeroInt())
	require.ErrorIs(t, err, types.ErrInvalidInput)

	// One unit is eaten whole by the minimum fee.
	_, _, err = k.ExecuteSwap(ctx, traderAddr, poolID, denomX, denomY, math.OneInt(), math.ZeroInt())
	require.ErrorIs(t, err, types.ErrInvalidInput)

	// The quote would pay out 91; demanding more trips the slippage bound.
	_, _, err = k.ExecuteSwap(ctx, traderAddr, poolID, denomX, denomY, math.NewInt(100), math.NewInt(92))
	require.ErrorIs(t, err, types.ErrExcessiveSlippage)
}

func TestVolumeWindowReset(t *testing.T) {
	k, bank, ctx := testkeeper.DexKeeper(t)
	poolID := setupPool(t, k, bank, ctx, 25, 500)
	addLiquidity(t, k, bank, ctx, poolID, 100000, 100000)

	fund(bank, traderAddr, coin(denomX, 2000))
	_, _, err := k.ExecuteSwap(ctx, traderAddr, poolID, denomX, denomY, math.NewInt(1000), math.ZeroInt())
	require.NoError(t, err)

	pool, _ := k.GetPool(ctx, poolID)
	require.Equal(t, math.NewInt(1000), pool.Volume24h)

	// Inside the window the counters keep accumulating.
	laterCtx := ctx.WithBlockTime(ctx.BlockTime().Add(time.Hour))
	_, _, err = k.ExecuteSwap(laterCtx, traderAddr, poolID, denomX, denomY, math.NewInt(500), math.ZeroInt())
	require.NoError(t, err)

	pool, _ = k.GetPool(ctx, poolID)
	require.Equal(t, math.NewInt(1500), pool.Volume24h)

	// A day later the window rolls over before the swap is counted.
	fund(bank, traderAddr, coin(denomX, 500))
	nextDayCtx := ctx.WithBlockTime(ctx.BlockTime().Add(25 * time.Hour))
	_, _, err = k.ExecuteSwap(nextDayCtx, traderAddr, poolID, denomX, denomY, math.NewInt(500), math.ZeroInt())
	require.NoError(t, err)

	pool, _ = k.GetPool(ctx, poolID)
	require.Equal(t, math.NewInt(500), pool.Volume24h)
	require.Equal(t, nextDayCtx.BlockTime().Unix(), pool.LastVolumeReset)
}

func TestSimulateSwap(t *testing.T) {
	k, bank, ctx := testkeeper.DexKeeper(t)
	poolID := setupPool(t, k, bank, ctx, 25, 500)
	addLiquidity(t, k, bank, ctx, poolID, 1000, 1000)

	amountOut, fee, err := k.SimulateSwap(ctx, poolID, denomX, denomY, math.NewInt(100))
	require.NoError(t, err)
	require.Equal(t, math.NewInt(91), amountOut)
	require.Equal(t, math.NewInt(1), fee)

	// Simulation leaves reserves untouched.
	pool, _ := k.GetPool(ctx, poolID)
	require.Equal(t, math.NewInt(1000), pool.ReserveX)
	require.Equal(t, math.NewInt(1000), pool.ReserveY)
	require.True(t, pool.Volume24h.IsZero())
}

func TestGetSpotPrice(t *testing.T) {
	k, bank, ctx := testkeeper.DexKeeper(t)
	poolID := setupPool(t, k, bank, ctx, 25, 500)

	_, err := k.GetSpotPrice(ctx, poolID, denomX)
	require.ErrorIs(t, err, types.ErrNoLiquidity)

	addLiquidity(t, k, bank, ctx, poolID, 10000, 40000)

	price, err := k.GetSpotPrice(ctx, poolID, denomX)
	require.NoError(t, err)
	require.Equal(t, math.LegacyNewDec(4), price)

	price, err = k.GetSpotPrice(ctx, poolID, denomY)
	require.NoError(t, err)
	require.Equal(t, math.LegacyNewDecWithPrec(25, 2), price)

	_, err = k.GetSpotPrice(ctx, poolID, "unknown")
	require.ErrorIs(t, err, types.ErrInvalidTokenPair)
}
