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

// GetStake returns a staker's position in a pool
func (k Keeper) GetStake(ctx context.Context, poolID uint64, owner string) (types.UserStake, bool) {
	bz := k.getStore(ctx).Get(StakeKey(poolID, owner))
	if bz == nil {
		return types.UserStake{}, false
	}

	var stake types.UserStake
	if err := json.Unmarshal(bz, &stake); err != nil {
		return types.UserStake{}, false
	}
	return stake, true
}

// SetStake stores a staking position
func (k Keeper) SetStake(ctx context.Context, stake types.UserStake) error {
	bz, err := json.Marshal(stake)
	if err != nil {
		return fmt.Errorf("marshal stake %d/%s: %w", stake.PoolId, stake.Owner, err)
	}
	k.getStore(ctx).Set(StakeKey(stake.PoolId, stake.Owner), bz)
	return nil
}

// GetAllStakes returns every staking position in the store
func (k Keeper) GetAllStakes(ctx context.Context) []types.UserStake {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, StakeKeyPrefix)
	defer iterator.Close()

	var stakes []types.UserStake
	for ; iterator.Valid(); iterator.Next() {
		var stake types.UserStake
		if err := json.Unmarshal(iterator.Value(), &stake); err != nil {
			continue
		}
		stakes = append(stakes, stake)
	}
	return stakes
}

// CalculateStakingReward computes the time-weighted reward for a stake held
// over duration seconds.
//
// reward = floor(staked * rateBps * duration / 10000), scaled by 9/10 once
// the stake has been held strictly longer than one year. Non-positive
// durations earn nothing.
func CalculateStakingReward(staked math.Int, rateBps uint64, duration int64) (math.Int, error) {
	if duration <= 0 || staked.IsZero() || rateBps == 0 {
		return math.ZeroInt(), nil
	}

	rateDur := math.NewIntFromUint64(rateBps).Mul(math.NewInt(duration))
	reward, err := SafeMulDiv(staked, rateDur, math.NewInt(types.BpsDenominator))
	if err != nil {
		return math.Int{}, err
	}

	if duration > types.SecondsPerYear {
		reward, err = SafeMulDiv(reward, math.NewInt(9), math.NewInt(10))
		if err != nil {
			return math.Int{}, err
		}
	}
	return reward, nil
}

// checkpointStake folds the reward accrued since the last checkpoint into
// RewardsEarned and restarts the clock.
func checkpointStake(stake *types.UserStake, rateBps uint64, now int64) error {
	if stake.AmountStaked.IsPositive() {
		pending, err := CalculateStakingReward(stake.AmountStaked, rateBps, now-stake.LastStakeTimestamp)
		if err != nil {
			return err
		}
		stake.RewardsEarned, err = SafeAdd(stake.RewardsEarned, pending)
		if err != nil {
			return err
		}
	}
	stake.LastStakeTimestamp = now
	return nil
}

// Stake locks amount of the pool's token X into the staking program.
// Rewards accrued so far are checkpointed before the stake grows.
func (k Keeper) Stake(ctx context.Context, staker sdk.AccAddress, poolID uint64, amount math.Int) error {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	now := sdkCtx.BlockTime().Unix()

	pool, found := k.GetPool(ctx, poolID)
	if !found {
		return types.ErrPoolNotFound.Wrapf("pool %d", poolID)
	}
	if !amount.IsPositive() {
		return types.ErrInvalidInput.Wrap("stake amount must be positive")
	}

	stake, found := k.GetStake(ctx, poolID, staker.String())
	if !found {
		stake = types.UserStake{
			PoolId:        poolID,
			Owner:         staker.String(),
			AmountStaked:  math.ZeroInt(),
			RewardsEarned: math.ZeroInt(),
		}
	}

	if err := checkpointStake(&stake, pool.RewardRateBps, now); err != nil {
		return err
	}

	var err error
	stake.AmountStaked, err = SafeAdd(stake.AmountStaked, amount)
	if err != nil {
		return err
	}
	if err := k.SetStake(ctx, stake); err != nil {
		return err
	}

	pool.TotalStaked, err = SafeAdd(pool.TotalStaked, amount)
	if err != nil {
		return err
	}
	if err := k.SetPool(ctx, pool); err != nil {
		return err
	}

	if err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, staker, types.ModuleName,
		sdk.NewCoins(sdk.NewCoin(pool.TokenX, amount))); err != nil {
		return types.ErrInsufficientFunds.Wrapf("stake deposit: %s", err)
	}

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeTokensStaked,
			sdk.NewAttribute(types.AttributeKeyPoolID, fmt.Sprintf("%d", poolID)),
			sdk.NewAttribute(types.AttributeKeyStaker, staker.String()),
			sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
			sdk.NewAttribute(types.AttributeKeyTimestamp, fmt.Sprintf("%d", now)),
		),
	)

	recordStake()

	return nil
}

// Unstake withdraws amount of the staked token plus the rewards attributable
// to the withdrawn portion. The rest of the accrual stays checkpointed with
// the remaining stake, whose reward clock restarts.
func (k Keeper) Unstake(ctx context.Context, staker sdk.AccAddress, poolID uint64, amount math.Int) (math.Int, math.Int, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	now := sdkCtx.BlockTime().Unix()

	pool, found := k.GetPool(ctx, poolID)
	if !found {
		return math.Int{}, math.Int{}, types.ErrPoolNotFound.Wrapf("pool %d", poolID)
	}
	if !amount.IsPositive() {
		return math.Int{}, math.Int{}, types.ErrInvalidInput.Wrap("unstake amount must be positive")
	}

	stake, found := k.GetStake(ctx, poolID, staker.String())
	if !found || stake.AmountStaked.LT(amount) {
		held := math.ZeroInt()
		if found {
			held = stake.AmountStaked
		}
		return math.Int{}, math.Int{}, types.ErrInsufficientStake.Wrapf("requested %s, staked %s", amount, held)
	}

	if err := checkpointStake(&stake, pool.RewardRateBps, now); err != nil {
		return math.Int{}, math.Int{}, err
	}

	// Only the withdrawn portion's share of the accrual is paid out.
	reward, err := SafeMulDiv(stake.RewardsEarned, amount, stake.AmountStaked)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}
	stake.RewardsEarned, err = SafeSub(stake.RewardsEarned, reward)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}

	stake.AmountStaked, err = SafeSub(stake.AmountStaked, amount)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}
	if err := k.SetStake(ctx, stake); err != nil {
		return math.Int{}, math.Int{}, err
	}

	pool.TotalStaked, err = SafeSub(pool.TotalStaked, amount)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}
	k.drawDownRewardAccrual(&pool, reward)
	if err := k.SetPool(ctx, pool); err != nil {
		return math.Int{}, math.Int{}, err
	}

	payout, err := SafeAdd(amount, reward)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}
	if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, staker,
		sdk.NewCoins(sdk.NewCoin(pool.TokenX, payout))); err != nil {
		return math.Int{}, math.Int{}, types.ErrInsufficientFunds.Wrapf("unstake payout: %s", err)
	}

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeTokensWithdrawn,
			sdk.NewAttribute(types.AttributeKeyPoolID, fmt.Sprintf("%d", poolID)),
			sdk.NewAttribute(types.AttributeKeyStaker, staker.String()),
			sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
			sdk.NewAttribute(types.AttributeKeyReward, reward.String()),
		),
	)

	recordUnstake()

	return amount, reward, nil
}

// ClaimRewards pays out all rewards accrued so far without touching the
// stake. A staker with nothing accrued succeeds and is paid zero; a caller
// with no stake record at all fails with ErrNoRewardsAvailable.
func (k Keeper) ClaimRewards(ctx context.Context, staker sdk.AccAddress, poolID uint64) (math.Int, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	now := sdkCtx.BlockTime().Unix()

	pool, found := k.GetPool(ctx, poolID)
	if !found {
		return math.Int{}, types.ErrPoolNotFound.Wrapf("pool %d", poolID)
	}

	stake, found := k.GetStake(ctx, poolID, staker.String())
	if !found {
		return math.Int{}, types.ErrNoRewardsAvailable.Wrapf("%s has no stake in pool %d", staker, poolID)
	}

	if err := checkpointStake(&stake, pool.RewardRateBps, now); err != nil {
		return math.Int{}, err
	}

	reward := stake.RewardsEarned
	stake.RewardsEarned = math.ZeroInt()
	if err := k.SetStake(ctx, stake); err != nil {
		return math.Int{}, err
	}

	if reward.IsPositive() {
		k.drawDownRewardAccrual(&pool, reward)
		if err := k.SetPool(ctx, pool); err != nil {
			return math.Int{}, err
		}
		if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, staker,
			sdk.NewCoins(sdk.NewCoin(pool.TokenX, reward))); err != nil {
			return math.Int{}, types.ErrInsufficientFunds.Wrapf("reward payout: %s", err)
		}
	}

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeRewardsClaimed,
			sdk.NewAttribute(types.AttributeKeyPoolID, fmt.Sprintf("%d", poolID)),
			sdk.NewAttribute(types.AttributeKeyStaker, staker.String()),
			sdk.NewAttribute(types.AttributeKeyReward, reward.String()),
		),
	)

	recordRewardsClaimed()

	return reward, nil
}

// drawDownRewardAccrual reduces the fee-funded reward pot by the amount paid
// out, clamping at zero when rate-based rewards outrun fee revenue.
func (k Keeper) drawDownRewardAccrual(pool *types.Pool, paid math.Int) {
	if pool.StakingRewardsAccrued.GTE(paid) {
		pool.StakingRewardsAccrued = pool.StakingRewardsAccrued.Sub(paid)
	} else {
		pool.StakingRewardsAccrued = math.ZeroInt()
	}
}
