package keeper

import (
	"context"
	"encoding/json"
	"fmt"

	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/soonlabs/soondex/x/dex/types"
)

// GetLpPosition returns a provider's liquidity position in a pool
func (k Keeper) GetLpPosition(ctx context.Context, poolID uint64, owner string) (types.LpPosition, bool) {
	bz := k.getStore(ctx).Get(LpPositionKey(poolID, owner))
	if bz == nil {
		return types.LpPosition{}, false
	}

	var pos types.LpPosition
	if err := json.Unmarshal(bz, &pos); err != nil {
		return types.LpPosition{}, false
	}
	return pos, true
}

// SetLpPosition stores a liquidity position
func (k Keeper) SetLpPosition(ctx context.Context, pos types.LpPosition) error {
	bz, err := json.Marshal(pos)
	if err != nil {
		return fmt.Errorf("marshal position %d/%s: %w", pos.PoolId, pos.Owner, err)
	}
	k.getStore(ctx).Set(LpPositionKey(pos.PoolId, pos.Owner), bz)
	return nil
}

// DeleteLpPosition removes a liquidity position
func (k Keeper) DeleteLpPosition(ctx context.Context, poolID uint64, owner string) {
	k.getStore(ctx).Delete(LpPositionKey(poolID, owner))
}

// GetAllLpPositions returns every liquidity position in the store
func (k Keeper) GetAllLpPositions(ctx context.Context) []types.LpPosition {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, LpPositionKeyPrefix)
	defer iterator.Close()

	var positions []types.LpPosition
	for ; iterator.Valid(); iterator.Next() {
		var pos types.LpPosition
		if err := json.Unmarshal(iterator.Value(), &pos); err != nil {
			continue
		}
		positions = append(positions, pos)
	}
	return positions
}

// AddLiquidity deposits both pool tokens and mints LP shares.
//
// The first deposit mints floor(sqrt(amountX * amountY)) shares. Later
// deposits mint proportionally to the lesser side; when the deposit-ratio
// policy is enforced the deposit must match the reserve ratio exactly.
func (k Keeper) AddLiquidity(ctx context.Context, provider sdk.AccAddress, poolID uint64, amountX, amountY, minShares math.Int) (math.Int, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	params := k.GetParams(ctx)

	// 1. Load pool
	pool, found := k.GetPool(ctx, poolID)
	if !found {
		return math.Int{}, types.ErrPoolNotFound.Wrapf("pool %d", poolID)
	}

	if !amountX.IsPositive() || !amountY.IsPositive() {
		return math.Int{}, types.ErrInvalidInput.Wrap("deposit amounts must be positive")
	}

	// 2. Compute shares to mint
	var shares math.Int
	if pool.LpSupply.IsZero() {
		product, err := SafeMul(amountX, amountY)
		if err != nil {
			return math.Int{}, err
		}
		shares, err = IntegerSqrt(product)
		if err != nil {
			return math.Int{}, err
		}
		if shares.LT(params.MinInitialLiquidity) {
			return math.Int{}, types.ErrInvalidInput.Wrapf(
				"initial shares %s below minimum %s", shares, params.MinInitialLiquidity)
		}
	} else {
		if params.EnforceDepositRatio {
			// amountX / amountY must equal reserveX / reserveY exactly
			lhs, err := SafeMul(amountX, pool.ReserveY)
			if err != nil {
				return math.Int{}, err
			}
			rhs, err := SafeMul(amountY, pool.ReserveX)
			if err != nil {
				return math.Int{}, err
			}
			if !lhs.Equal(rhs) {
				return math.Int{}, types.ErrInvalidTokenRatio.Wrapf(
					"deposit %s/%s does not match reserve ratio %s/%s",
					amountX, amountY, pool.ReserveX, pool.ReserveY)
			}
		}

		sharesX, err := SafeMulDiv(amountX, pool.LpSupply, pool.ReserveX)
		if err != nil {
			return math.Int{}, err
		}
		sharesY, err := SafeMulDiv(amountY, pool.LpSupply, pool.ReserveY)
		if err != nil {
			return math.Int{}, err
		}
		shares = math.MinInt(sharesX, sharesY)
	}

	if shares.IsZero() {
		return math.Int{}, types.ErrNoLiquidity.Wrap("deposit too small to mint shares")
	}
	if shares.LT(minShares) {
		return math.Int{}, types.ErrExcessiveSlippage.Wrapf("shares %s below minimum %s", shares, minShares)
	}

	// 3. Update pool state
	newReserveX, err := SafeAdd(pool.ReserveX, amountX)
	if err != nil {
		return math.Int{}, err
	}
	newReserveY, err := SafeAdd(pool.ReserveY, amountY)
	if err != nil {
		return math.Int{}, err
	}
	newSupply, err := SafeAdd(pool.LpSupply, shares)
	if err != nil {
		return math.Int{}, err
	}
	pool.ReserveX = newReserveX
	pool.ReserveY = newReserveY
	pool.LpSupply = newSupply

	if err := k.SetPool(ctx, pool); err != nil {
		return math.Int{}, err
	}

	// 4. Update position
	pos, found := k.GetLpPosition(ctx, poolID, provider.String())
	if !found {
		pos = types.LpPosition{
			PoolId: poolID,
			Owner:  provider.String(),
			Shares: math.ZeroInt(),
		}
	}
	pos.Shares, err = SafeAdd(pos.Shares, shares)
	if err != nil {
		return math.Int{}, err
	}
	pos.LastRewardClaim = sdkCtx.BlockTime().Unix()
	if err := k.SetLpPosition(ctx, pos); err != nil {
		return math.Int{}, err
	}

	// 5. Escrow the deposit
	deposit := sdk.NewCoins(
		sdk.NewCoin(pool.TokenX, amountX),
		sdk.NewCoin(pool.TokenY, amountY),
	)
	if err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, provider, types.ModuleName, deposit); err != nil {
		return math.Int{}, types.ErrInsufficientFunds.Wrapf("deposit: %s", err)
	}

	// 6. Emit event
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeLiquidityProvided,
			sdk.NewAttribute(types.AttributeKeyPoolID, fmt.Sprintf("%d", poolID)),
			sdk.NewAttribute(types.AttributeKeyProvider, provider.String()),
			sdk.NewAttribute(types.AttributeKeyAmountX, amountX.String()),
			sdk.NewAttribute(types.AttributeKeyAmountY, amountY.String()),
			sdk.NewAttribute(types.AttributeKeyShares, shares.String()),
		),
	)

	recordLiquidityAdded()

	return shares, nil
}

// RemoveLiquidity burns LP shares for a proportional slice of both reserves.
func (k Keeper) RemoveLiquidity(ctx context.Context, provider sdk.AccAddress, poolID uint64, shares math.Int) (math.Int, math.Int, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	// 1. Load pool and position
	pool, found := k.GetPool(ctx, poolID)
	if !found {
		return math.Int{}, math.Int{}, types.ErrPoolNotFound.Wrapf("pool %d", poolID)
	}

	if !shares.IsPositive() {
		return math.Int{}, math.Int{}, types.ErrInvalidInput.Wrap("shares must be positive")
	}

	pos, found := k.GetLpPosition(ctx, poolID, provider.String())
	if !found || pos.Shares.LT(shares) {
		held := math.ZeroInt()
		if found {
			held = pos.Shares
		}
		return math.Int{}, math.Int{}, types.ErrInsufficientShares.Wrapf("requested %s, holding %s", shares, held)
	}

	if pool.LpSupply.LT(shares) {
		return math.Int{}, math.Int{}, types.ErrInvalidPoolState.Wrapf(
			"shares %s exceed pool supply %s", shares, pool.LpSupply)
	}

	// 2. Proportional amounts, floored
	amountX, err := SafeMulDiv(shares, pool.ReserveX, pool.LpSupply)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}
	amountY, err := SafeMulDiv(shares, pool.ReserveY, pool.LpSupply)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}

	// 3. Update pool state
	pool.ReserveX, err = SafeSub(pool.ReserveX, amountX)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}
	pool.ReserveY, err = SafeSub(pool.ReserveY, amountY)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}
	pool.LpSupply, err = SafeSub(pool.LpSupply, shares)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}
	if err := k.SetPool(ctx, pool); err != nil {
		return math.Int{}, math.Int{}, err
	}

	// 4. Update or delete the position
	pos.Shares, err = SafeSub(pos.Shares, shares)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}
	if pos.Shares.IsZero() {
		k.DeleteLpPosition(ctx, poolID, provider.String())
	} else {
		pos.LastRewardClaim = sdkCtx.BlockTime().Unix()
		if err := k.SetLpPosition(ctx, pos); err != nil {
			return math.Int{}, math.Int{}, err
		}
	}

	// 5. Pay out from escrow
	payout := sdk.NewCoins(
		sdk.NewCoin(pool.TokenX, amountX),
		sdk.NewCoin(pool.TokenY, amountY),
	)
	if !payout.IsZero() {
		if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, provider, payout); err != nil {
			return math.Int{}, math.Int{}, types.ErrInsufficientFunds.Wrapf("withdrawal: %s", err)
		}
	}

	// 6. Emit event
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeLiquidityRemoved,
			sdk.NewAttribute(types.AttributeKeyPoolID, fmt.Sprintf("%d", poolID)),
			sdk.NewAttribute(types.AttributeKeyProvider, provider.String()),
			sdk.NewAttribute(types.AttributeKeyShares, shares.String()),
			sdk.NewAttribute(types.AttributeKeyAmountX, amountX.String()),
			sdk.NewAttribute(types.AttributeKeyAmountY, amountY.String()),
		),
	)

	recordLiquidityRemoved()

	return amountX, amountY, nil
}
