package keeper

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"

	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/soonlabs/soondex/x/dex/types"
)

// GetNextPoolID returns the next pool ID and increments the counter
func (k Keeper) GetNextPoolID(ctx context.Context) uint64 {
	store := k.getStore(ctx)
	bz := store.Get(NextPoolIdKey)

	var poolID uint64
	if bz == nil {
		poolID = 1
	} else {
		poolID = binary.BigEndian.Uint64(bz)
	}

	nextBz := make([]byte, 8)
	binary.BigEndian.PutUint64(nextBz, poolID+1)
	store.Set(NextPoolIdKey, nextBz)

	return poolID
}

// SetNextPoolID sets the next pool ID counter
func (k Keeper) SetNextPoolID(ctx context.Context, poolID uint64) {
	store := k.getStore(ctx)
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, poolID)
	store.Set(NextPoolIdKey, bz)
}

// PeekNextPoolID reads the counter without incrementing it.
func (k Keeper) PeekNextPoolID(ctx context.Context) uint64 {
	bz := k.getStore(ctx).Get(NextPoolIdKey)
	if bz == nil {
		return 1
	}
	return binary.BigEndian.Uint64(bz)
}

// GetPool returns a pool by ID
func (k Keeper) GetPool(ctx context.Context, poolID uint64) (types.Pool, bool) {
	store := k.getStore(ctx)
	bz := store.Get(PoolKey(poolID))
	if bz == nil {
		return types.Pool{}, false
	}

	var pool types.Pool
	if err := json.Unmarshal(bz, &pool); err != nil {
		return types.Pool{}, false
	}
	return pool, true
}

// SetPool stores a pool and its pair index entry
func (k Keeper) SetPool(ctx context.Context, pool types.Pool) error {
	bz, err := json.Marshal(pool)
	if err != nil {
		return fmt.Errorf("marshal pool %d: %w", pool.Id, err)
	}

	store := k.getStore(ctx)
	store.Set(PoolKey(pool.Id), bz)

	idBz := make([]byte, 8)
	binary.BigEndian.PutUint64(idBz, pool.Id)
	store.Set(PoolPairKey(pool.TokenX, pool.TokenY), idBz)
	return nil
}

// GetPoolIDByPair returns the pool ID registered for a token pair
func (k Keeper) GetPoolIDByPair(ctx context.Context, tokenX, tokenY string) (uint64, bool) {
	bz := k.getStore(ctx).Get(PoolPairKey(tokenX, tokenY))
	if bz == nil {
		return 0, false
	}
	return binary.BigEndian.Uint64(bz), true
}

// GetAllPools returns every pool in the store, ordered by ID
func (k Keeper) GetAllPools(ctx context.Context) []types.Pool {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, PoolKeyPrefix)
	defer iterator.Close()

	var pools []types.Pool
	for ; iterator.Valid(); iterator.Next() {
		var pool types.Pool
		if err := json.Unmarshal(iterator.Value(), &pool); err != nil {
			continue
		}
		pools = append(pools, pool)
	}
	return pools
}

// InitializePool creates a new exchange pool with empty reserves.
// The creator becomes the pool authority, super admin, and sole admin, and
// pays the pool creation fee to the fee collector.
func (k Keeper) InitializePool(ctx context.Context, creator sdk.AccAddress, tokenX, tokenY string, feeRateBps, rewardRateBps uint64) (types.Pool, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	params := k.GetParams(ctx)

	// 1. Input validation
	if tokenX == "" || tokenY == "" {
		return types.Pool{}, types.ErrInvalidTokenPair.Wrap("token denoms cannot be empty")
	}
	if tokenX == tokenY {
		return types.Pool{}, types.ErrInvalidTokenPair.Wrap("cannot create pool with identical tokens")
	}
	if feeRateBps > params.MaxFeeRateBps {
		return types.Pool{}, types.ErrInvalidInput.Wrapf("fee rate %d exceeds maximum %d bps", feeRateBps, params.MaxFeeRateBps)
	}
	if rewardRateBps > types.BpsDenominator {
		return types.Pool{}, types.ErrInvalidInput.Wrapf("reward rate %d exceeds %d bps", rewardRateBps, types.BpsDenominator)
	}

	// 2. Reject duplicate pools for the pair
	if existingID, found := k.GetPoolIDByPair(ctx, tokenX, tokenY); found {
		return types.Pool{}, types.ErrPoolAlreadyExists.Wrapf("pool %d already exists for pair %s/%s", existingID, tokenX, tokenY)
	}

	// 3. Charge the creation fee
	if params.PoolCreationFee.IsPositive() {
		if err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, creator, k.feeCollectorName, sdk.NewCoins(params.PoolCreationFee)); err != nil {
			return types.Pool{}, types.ErrInsufficientFunds.Wrapf("pool creation fee: %s", err)
		}
	}

	// 4. Create and store the pool
	poolID := k.GetNextPoolID(ctx)
	pool := types.Pool{
		Id:                    poolID,
		TokenX:                tokenX,
		TokenY:                tokenY,
		ReserveX:              math.ZeroInt(),
		ReserveY:              math.ZeroInt(),
		LpSupply:              math.ZeroInt(),
		FeeRateBps:            feeRateBps,
		RewardRateBps:         rewardRateBps,
		TotalStaked:           math.ZeroInt(),
		StakingRewardsAccrued: math.ZeroInt(),
		Volume24h:             math.ZeroInt(),
		Fees24h:               math.ZeroInt(),
		LastVolumeReset:       sdkCtx.BlockTime().Unix(),
		Authority:             creator.String(),
		SuperAdmin:            creator.String(),
		Admins:                []string{creator.String()},
		OrderSeq:              0,
	}

	if err := k.SetPool(ctx, pool); err != nil {
		return types.Pool{}, err
	}

	// 5. Emit event
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypePoolInitialized,
			sdk.NewAttribute(types.AttributeKeyPoolID, fmt.Sprintf("%d", poolID)),
			sdk.NewAttribute(types.AttributeKeyCreator, creator.String()),
			sdk.NewAttribute(types.AttributeKeyTokenX, tokenX),
			sdk.NewAttribute(types.AttributeKeyTokenY, tokenY),
			sdk.NewAttribute(types.AttributeKeyFeeRate, fmt.Sprintf("%d", feeRateBps)),
			sdk.NewAttribute(types.AttributeKeyRewardRate, fmt.Sprintf("%d", rewardRateBps)),
		),
	)

	recordPoolCreated()

	return pool, nil
}
