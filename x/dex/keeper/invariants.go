package keeper

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/soonlabs/soondex/x/dex/types"
)

// RegisterInvariants registers all DEX invariants
func RegisterInvariants(ir sdk.InvariantRegistry, k Keeper) {
	ir.RegisterRoute(types.ModuleName, "pool-reserves", PoolReservesInvariant(k))
	ir.RegisterRoute(types.ModuleName, "pool-shares", PoolSharesInvariant(k))
	ir.RegisterRoute(types.ModuleName, "staking-consistency", StakingConsistencyInvariant(k))
	ir.RegisterRoute(types.ModuleName, "order-state", OrderStateInvariant(k))
}

// AllInvariants runs all invariants of the DEX module
func AllInvariants(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		res, stop := PoolReservesInvariant(k)(ctx)
		if stop {
			return res, stop
		}

		res, stop = PoolSharesInvariant(k)(ctx)
		if stop {
			return res, stop
		}

		res, stop = StakingConsistencyInvariant(k)(ctx)
		if stop {
			return res, stop
		}

		return OrderStateInvariant(k)(ctx)
	}
}

// PoolReservesInvariant checks that the module escrow covers every pool's
// reserves and that no pool carries a negative or inconsistent balance.
func PoolReservesInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			msg   string
			count int
		)

		moduleAddr := k.GetModuleAddress()
		for _, pool := range k.GetAllPools(ctx) {
			if err := pool.Validate(); err != nil {
				count++
				msg += fmt.Sprintf("pool %d: invalid state: %s\n", pool.Id, err)
				continue
			}

			// Multiple pools can share a denom, so the check is >= not ==.
			balanceX := k.bankKeeper.GetBalance(ctx, moduleAddr, pool.TokenX)
			balanceY := k.bankKeeper.GetBalance(ctx, moduleAddr, pool.TokenY)

			if balanceX.Amount.LT(pool.ReserveX) {
				count++
				msg += fmt.Sprintf("pool %d: module balance for %s (%s) < reserve (%s)\n",
					pool.Id, pool.TokenX, balanceX.Amount, pool.ReserveX)
			}
			if balanceY.Amount.LT(pool.ReserveY) {
				count++
				msg += fmt.Sprintf("pool %d: module balance for %s (%s) < reserve (%s)\n",
					pool.Id, pool.TokenY, balanceY.Amount, pool.ReserveY)
			}
		}

		broken := count != 0
		return sdk.FormatInvariant(
			types.ModuleName, "pool-reserves",
			fmt.Sprintf("found %d reserve violations\n%s", count, msg),
		), broken
	}
}

// PoolSharesInvariant checks that every pool's LP supply equals the sum of
// its providers' positions.
func PoolSharesInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			msg   string
			count int
		)

		positionSums := make(map[uint64]math.Int)
		for _, pos := range k.GetAllLpPositions(ctx) {
			sum, ok := positionSums[pos.PoolId]
			if !ok {
				sum = math.ZeroInt()
			}
			positionSums[pos.PoolId] = sum.Add(pos.Shares)
		}

		for _, pool := range k.GetAllPools(ctx) {
			sum, ok := positionSums[pool.Id]
			if !ok {
				sum = math.ZeroInt()
			}
			if !sum.Equal(pool.LpSupply) {
				count++
				msg += fmt.Sprintf("pool %d: position shares sum %s != lp supply %s\n",
					pool.Id, sum, pool.LpSupply)
			}
		}

		broken := count != 0
		return sdk.FormatInvariant(
			types.ModuleName, "pool-shares",
			fmt.Sprintf("found %d share accounting violations\n%s", count, msg),
		), broken
	}
}

// StakingConsistencyInvariant checks that every pool's TotalStaked equals
// the sum of its stakers' positions and that no stake is negative.
func StakingConsistencyInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			msg   string
			count int
		)

		stakeSums := make(map[uint64]math.Int)
		for _, stake := range k.GetAllStakes(ctx) {
			if stake.AmountStaked.IsNegative() || stake.RewardsEarned.IsNegative() {
				count++
				msg += fmt.Sprintf("stake %d/%s: negative amount or rewards\n", stake.PoolId, stake.Owner)
				continue
			}
			sum, ok := stakeSums[stake.PoolId]
			if !ok {
				sum = math.ZeroInt()
			}
			stakeSums[stake.PoolId] = sum.Add(stake.AmountStaked)
		}

		for _, pool := range k.GetAllPools(ctx) {
			sum, ok := stakeSums[pool.Id]
			if !ok {
				sum = math.ZeroInt()
			}
			if !sum.Equal(pool.TotalStaked) {
				count++
				msg += fmt.Sprintf("pool %d: stake sum %s != total staked %s\n",
					pool.Id, sum, pool.TotalStaked)
			}
		}

		broken := count != 0
		return sdk.FormatInvariant(
			types.ModuleName, "staking-consistency",
			fmt.Sprintf("found %d staking accounting violations\n%s", count, msg),
		), broken
	}
}

// OrderStateInvariant checks that every resting order is structurally valid
// and references an existing pool.
func OrderStateInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			msg   string
			count int
		)

		for _, order := range k.GetAllOrders(ctx) {
			if err := order.Validate(); err != nil {
				count++
				msg += fmt.Sprintf("order %d/%d: %s\n", order.PoolId, order.Id, err)
				continue
			}
			if _, found := k.GetPool(ctx, order.PoolId); !found {
				count++
				msg += fmt.Sprintf("order %d/%d: pool missing\n", order.PoolId, order.Id)
			}
		}

		broken := count != 0
		return sdk.FormatInvariant(
			types.ModuleName, "order-state",
			fmt.Sprintf("found %d invalid orders\n%s", count, msg),
		), broken
	}
}
