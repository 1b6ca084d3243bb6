package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/soonlabs/soondex/x/dex/types"
)

// SwapQuote is the priced outcome of a swap against current reserves.
type SwapQuote struct {
	AmountOut math.Int
	Fee       math.Int
	FeeLp     math.Int
	FeeStaker math.Int
	NetIn     math.Int
}

// quoteSwap prices amountIn against the pool's constant-product curve.
//
// The fee is charged on the input side: floor(amountIn * feeRateBps / 10000),
// with a minimum of one unit whenever the pool charges a nonzero rate. The
// fee splits 22/25 to liquidity providers (stays in reserves) and 3/25 to the
// staking reward pot.
func quoteSwap(pool types.Pool, reserveIn, reserveOut, amountIn math.Int) (SwapQuote, error) {
	fee := math.ZeroInt()
	if pool.FeeRateBps > 0 {
		var err error
		fee, err = SafeMulDiv(amountIn, math.NewIntFromUint64(pool.FeeRateBps), math.NewInt(types.BpsDenominator))
		if err != nil {
			return SwapQuote{}, err
		}
		if fee.IsZero() {
			fee = math.OneInt()
		}
	}

	netIn, err := SafeSub(amountIn, fee)
	if err != nil || !netIn.IsPositive() {
		return SwapQuote{}, types.ErrInvalidInput.Wrapf("amount in %s does not cover the fee %s", amountIn, fee)
	}

	feeStaker, err := SafeMulDiv(fee, math.NewInt(types.StakerFeeShare), math.NewInt(types.FeeShareDenominator))
	if err != nil {
		return SwapQuote{}, err
	}
	feeLp, err := SafeSub(fee, feeStaker)
	if err != nil {
		return SwapQuote{}, err
	}

	// amountOut = reserveOut - floor(k / (reserveIn + netIn))
	k, err := SafeMul(reserveIn, reserveOut)
	if err != nil {
		return SwapQuote{}, err
	}
	newReserveIn, err := SafeAdd(reserveIn, netIn)
	if err != nil {
		return SwapQuote{}, err
	}
	quotient, err := SafeQuo(k, newReserveIn)
	if err != nil {
		return SwapQuote{}, err
	}
	amountOut, err := SafeSub(reserveOut, quotient)
	if err != nil {
		return SwapQuote{}, err
	}

	return SwapQuote{
		AmountOut: amountOut,
		Fee:       fee,
		FeeLp:     feeLp,
		FeeStaker: feeStaker,
		NetIn:     netIn,
	}, nil
}

// swapDirection resolves the in/out reserves for a token pair, rejecting
// tokens the pool does not trade.
func swapDirection(pool types.Pool, tokenIn, tokenOut string) (reserveIn, reserveOut math.Int, err error) {
	switch {
	case tokenIn == pool.TokenX && tokenOut == pool.TokenY:
		return pool.ReserveX, pool.ReserveY, nil
	case tokenIn == pool.TokenY && tokenOut == pool.TokenX:
		return pool.ReserveY, pool.ReserveX, nil
	default:
		return math.Int{}, math.Int{}, types.ErrInvalidTokenPair.Wrapf(
			"pool %d trades %s/%s, not %s/%s", pool.Id, pool.TokenX, pool.TokenY, tokenIn, tokenOut)
	}
}

// rollVolumeWindow lazily resets the pool's 24h counters once the window
// has elapsed. Called at the start of every swap.
func rollVolumeWindow(pool *types.Pool, now int64) {
	if now-pool.LastVolumeReset >= types.SecondsPerDay {
		pool.Volume24h = math.ZeroInt()
		pool.Fees24h = math.ZeroInt()
		pool.LastVolumeReset = now
	}
}

// ExecuteSwap swaps amountIn of tokenIn for tokenOut against the pool.
// Returns the output amount and the fee charged.
func (k Keeper) ExecuteSwap(ctx context.Context, trader sdk.AccAddress, poolID uint64, tokenIn, tokenOut string, amountIn, minAmountOut math.Int) (math.Int, math.Int, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	// 1. Load pool and resolve direction
	pool, found := k.GetPool(ctx, poolID)
	if !found {
		return math.Int{}, math.Int{}, types.ErrPoolNotFound.Wrapf("pool %d", poolID)
	}

	if !amountIn.IsPositive() {
		return math.Int{}, math.Int{}, types.ErrInvalidInput.Wrap("amount in must be positive")
	}

	reserveIn, reserveOut, err := swapDirection(pool, tokenIn, tokenOut)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}
	if !reserveIn.IsPositive() || !reserveOut.IsPositive() {
		return math.Int{}, math.Int{}, types.ErrNoLiquidity.Wrapf("pool %d has empty reserves", poolID)
	}

	rollVolumeWindow(&pool, sdkCtx.BlockTime().Unix())

	// 2. Price the swap
	quote, err := quoteSwap(pool, reserveIn, reserveOut, amountIn)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}
	if !quote.AmountOut.IsPositive() {
		return math.Int{}, math.Int{}, types.ErrInvalidInput.Wrap("amount in too small to produce output")
	}
	if quote.AmountOut.GTE(reserveOut) {
		return math.Int{}, math.Int{}, types.ErrNoLiquidity.Wrapf("swap would drain pool %d", poolID)
	}
	if quote.AmountOut.LT(minAmountOut) {
		return math.Int{}, math.Int{}, types.ErrExcessiveSlippage.Wrapf(
			"amount out %s below minimum %s", quote.AmountOut, minAmountOut)
	}

	// 3. The staker fee share leaves the curve; it is tracked in token X
	// units, converting at the pre-swap spot price when paid in token Y.
	stakerAccrual := quote.FeeStaker
	if tokenIn == pool.TokenY && quote.FeeStaker.IsPositive() {
		stakerAccrual, err = SafeMulDiv(quote.FeeStaker, pool.ReserveX, pool.ReserveY)
		if err != nil {
			return math.Int{}, math.Int{}, err
		}
	}

	// 4. Apply reserve updates: the net input plus the LP fee share stays
	// on the curve; only the staker share leaves it.
	curveIn, err := SafeAdd(quote.NetIn, quote.FeeLp)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}
	newReserveIn, err := SafeAdd(reserveIn, curveIn)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}
	newReserveOut, err := SafeSub(reserveOut, quote.AmountOut)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}

	if tokenIn == pool.TokenX {
		pool.ReserveX = newReserveIn
		pool.ReserveY = newReserveOut
	} else {
		pool.ReserveY = newReserveIn
		pool.ReserveX = newReserveOut
	}

	pool.StakingRewardsAccrued, err = SafeAdd(pool.StakingRewardsAccrued, stakerAccrual)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}
	pool.Volume24h, err = SafeAdd(pool.Volume24h, amountIn)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}
	pool.Fees24h, err = SafeAdd(pool.Fees24h, quote.Fee)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}

	if err := k.SetPool(ctx, pool); err != nil {
		return math.Int{}, math.Int{}, err
	}

	// 5. Settle with the trader
	if err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, trader, types.ModuleName,
		sdk.NewCoins(sdk.NewCoin(tokenIn, amountIn))); err != nil {
		return math.Int{}, math.Int{}, types.ErrInsufficientFunds.Wrapf("swap input: %s", err)
	}
	if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, trader,
		sdk.NewCoins(sdk.NewCoin(tokenOut, quote.AmountOut))); err != nil {
		return math.Int{}, math.Int{}, types.ErrInsufficientFunds.Wrapf("swap output: %s", err)
	}

	// 6. Emit event
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeTokensSwapped,
			sdk.NewAttribute(types.AttributeKeyPoolID, fmt.Sprintf("%d", poolID)),
			sdk.NewAttribute(types.AttributeKeyTrader, trader.String()),
			sdk.NewAttribute(types.AttributeKeyTokenIn, tokenIn),
			sdk.NewAttribute(types.AttributeKeyTokenOut, tokenOut),
			sdk.NewAttribute(types.AttributeKeyAmountIn, amountIn.String()),
			sdk.NewAttribute(types.AttributeKeyAmountOut, quote.AmountOut.String()),
			sdk.NewAttribute(types.AttributeKeyFee, quote.Fee.String()),
		),
	)

	recordSwap()

	return quote.AmountOut, quote.Fee, nil
}

// SimulateSwap prices a swap without touching state.
func (k Keeper) SimulateSwap(ctx context.Context, poolID uint64, tokenIn, tokenOut string, amountIn math.Int) (math.Int, math.Int, error) {
	pool, found := k.GetPool(ctx, poolID)
	if !found {
		return math.Int{}, math.Int{}, types.ErrPoolNotFound.Wrapf("pool %d", poolID)
	}

	if !amountIn.IsPositive() {
		return math.Int{}, math.Int{}, types.ErrInvalidInput.Wrap("amount in must be positive")
	}

	reserveIn, reserveOut, err := swapDirection(pool, tokenIn, tokenOut)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}
	if !reserveIn.IsPositive() || !reserveOut.IsPositive() {
		return math.Int{}, math.Int{}, types.ErrNoLiquidity.Wrapf("pool %d has empty reserves", poolID)
	}

	quote, err := quoteSwap(pool, reserveIn, reserveOut, amountIn)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}
	return quote.AmountOut, quote.Fee, nil
}

// GetSpotPrice returns the instantaneous price of tokenIn denominated in the
// opposite pool token.
func (k Keeper) GetSpotPrice(ctx context.Context, poolID uint64, tokenIn string) (math.LegacyDec, error) {
	pool, found := k.GetPool(ctx, poolID)
	if !found {
		return math.LegacyDec{}, types.ErrPoolNotFound.Wrapf("pool %d", poolID)
	}
	if !pool.ReserveX.IsPositive() || !pool.ReserveY.IsPositive() {
		return math.LegacyDec{}, types.ErrNoLiquidity.Wrapf("pool %d has empty reserves", poolID)
	}

	switch tokenIn {
	case pool.TokenX:
		return math.LegacyNewDecFromInt(pool.ReserveY).QuoInt(pool.ReserveX), nil
	case pool.TokenY:
		return math.LegacyNewDecFromInt(pool.ReserveX).QuoInt(pool.ReserveY), nil
	default:
		return math.LegacyDec{}, types.ErrInvalidTokenPair.Wrapf("pool %d does not trade %s", poolID, tokenIn)
	}
}
