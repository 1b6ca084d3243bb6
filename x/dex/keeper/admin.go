package keeper

import (
	"context"
	"fmt"

	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/soonlabs/soondex/x/dex/types"
)

// ManageAdmin adds or removes an address from the pool's admin set. Only
// the pool's super admin may change the set, which is capped at three seats.
func (k Keeper) ManageAdmin(ctx context.Context, authority sdk.AccAddress, poolID uint64, admin string, isAdd bool) error {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	pool, found := k.GetPool(ctx, poolID)
	if !found {
		return types.ErrPoolNotFound.Wrapf("pool %d", poolID)
	}

	if authority.String() != pool.SuperAdmin {
		return types.ErrUnauthorized.Wrapf("only the super admin may manage admins of pool %d", poolID)
	}

	if _, err := sdk.AccAddressFromBech32(admin); err != nil {
		return types.ErrInvalidAddress.Wrapf("admin address: %s", err)
	}

	if isAdd {
		if pool.HasAdmin(admin) {
			return types.ErrAdminAlreadyExists.Wrapf("%s is already an admin of pool %d", admin, poolID)
		}
		if len(pool.Admins) >= types.MaxAdmins {
			return types.ErrMaxAdminLimitReached.Wrapf("pool %d already has %d admins", poolID, types.MaxAdmins)
		}
		pool.Admins = append(pool.Admins, admin)
	} else {
		if !pool.HasAdmin(admin) {
			return types.ErrAdminDoesntExist.Wrapf("%s is not an admin of pool %d", admin, poolID)
		}
		kept := make([]string, 0, len(pool.Admins)-1)
		for _, a := range pool.Admins {
			if a != admin {
				kept = append(kept, a)
			}
		}
		pool.Admins = kept
	}

	if err := k.SetPool(ctx, pool); err != nil {
		return err
	}

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeAdminUpdated,
			sdk.NewAttribute(types.AttributeKeyPoolID, fmt.Sprintf("%d", poolID)),
			sdk.NewAttribute(types.AttributeKeyAuthority, authority.String()),
			sdk.NewAttribute(types.AttributeKeyAdmin, admin),
			sdk.NewAttribute(types.AttributeKeyIsAdded, fmt.Sprintf("%t", isAdd)),
		),
	)

	return nil
}

// RemovePool deletes an empty pool. The pool must hold no reserves, LP
// shares, stakes, or resting orders. Any undistributed fee revenue
// earmarked for stakers is paid to the caller.
func (k Keeper) RemovePool(ctx context.Context, authority sdk.AccAddress, poolID uint64) error {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	pool, found := k.GetPool(ctx, poolID)
	if !found {
		return types.ErrPoolNotFound.Wrapf("pool %d", poolID)
	}

	if authority.String() != pool.Authority && authority.String() != pool.SuperAdmin {
		return types.ErrUnauthorized.Wrapf("only the authority or super admin may remove pool %d", poolID)
	}

	if !pool.IsEmpty() {
		return types.ErrPoolNotEmpty.Wrapf(
			"pool %d still holds reserves %s/%s and %s shares",
			poolID, pool.ReserveX, pool.ReserveY, pool.LpSupply)
	}
	if pool.TotalStaked.IsPositive() {
		return types.ErrPoolNotEmpty.Wrapf("pool %d still has %s staked", poolID, pool.TotalStaked)
	}
	if orders := k.GetPoolOrders(ctx, poolID); len(orders) > 0 {
		return types.ErrPoolNotEmpty.Wrapf("pool %d still has %d resting orders", poolID, len(orders))
	}

	// Pay out the residual reward accrual before deleting the record.
	residual := pool.StakingRewardsAccrued
	if residual.IsPositive() {
		if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, authority,
			sdk.NewCoins(sdk.NewCoin(pool.TokenX, residual))); err != nil {
			return types.ErrInsufficientFunds.Wrapf("residual payout: %s", err)
		}
	}

	store := k.getStore(ctx)
	store.Delete(PoolKey(poolID))
	store.Delete(PoolPairKey(pool.TokenX, pool.TokenY))
	k.deletePoolRecords(ctx, StakePoolPrefix(poolID))
	k.deletePoolRecords(ctx, LpPositionPoolPrefix(poolID))

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypePoolRemoved,
			sdk.NewAttribute(types.AttributeKeyPoolID, fmt.Sprintf("%d", poolID)),
			sdk.NewAttribute(types.AttributeKeyAuthority, authority.String()),
			sdk.NewAttribute(types.AttributeKeyReward, residual.String()),
		),
	)

	recordPoolRemoved()

	return nil
}

// deletePoolRecords removes every record under a pool-scoped prefix.
// Emptied stake records survive full withdrawal, so pool deletion sweeps
// them explicitly.
func (k Keeper) deletePoolRecords(ctx context.Context, prefix []byte) {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, prefix)
	defer iterator.Close()

	var keys [][]byte
	for ; iterator.Valid(); iterator.Next() {
		keys = append(keys, append([]byte(nil), iterator.Key()...))
	}
	for _, key := range keys {
		store.Delete(key)
	}
}
