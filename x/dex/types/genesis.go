package types

import (
	"fmt"
)

// GenesisState holds the full module state for import/export.
type GenesisState struct {
	Params      Params       `json:"params"`
	Pools       []Pool       `json:"pools"`
	NextPoolId  uint64       `json:"next_pool_id"`
	LpPositions []LpPosition `json:"lp_positions"`
	Stakes      []UserStake  `json:"stakes"`
	Orders      []Order      `json:"orders"`
}

// DefaultGenesis returns the default genesis state for the DEX module.
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params:      DefaultParams(),
		Pools:       []Pool{},
		NextPoolId:  1,
		LpPositions: []LpPosition{},
		Stakes:      []UserStake{},
		Orders:      []Order{},
	}
}

// Validate ensures the genesis state is well-formed.
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return err
	}

	if gs.NextPoolId == 0 {
		return fmt.Errorf("next pool id must be positive")
	}

	poolIds := make(map[uint64]bool, len(gs.Pools))
	pairs := make(map[string]bool, len(gs.Pools))
	for _, pool := range gs.Pools {
		if err := pool.Validate(); err != nil {
			return fmt.Errorf("invalid pool %d: %w", pool.Id, err)
		}
		if pool.Id >= gs.NextPoolId {
			return fmt.Errorf("pool id %d not below next pool id %d", pool.Id, gs.NextPoolId)
		}
		if poolIds[pool.Id] {
			return fmt.Errorf("duplicate pool id %d", pool.Id)
		}
		poolIds[pool.Id] = true

		pair := pool.TokenX + "/" + pool.TokenY
		if pool.TokenY < pool.TokenX {
			pair = pool.TokenY + "/" + pool.TokenX
		}
		if pairs[pair] {
			return fmt.Errorf("duplicate pool for pair %s", pair)
		}
		pairs[pair] = true
	}

	for _, pos := range gs.LpPositions {
		if !poolIds[pos.PoolId] {
			return fmt.Errorf("liquidity position references unknown pool %d", pos.PoolId)
		}
		if pos.Owner == "" {
			return fmt.Errorf("liquidity position in pool %d missing owner", pos.PoolId)
		}
		if pos.Shares.IsNil() || !pos.Shares.IsPositive() {
			return fmt.Errorf("liquidity position for %s in pool %d must hold positive shares", pos.Owner, pos.PoolId)
		}
	}

	for _, stake := range gs.Stakes {
		if !poolIds[stake.PoolId] {
			return fmt.Errorf("stake references unknown pool %d", stake.PoolId)
		}
		if stake.Owner == "" {
			return fmt.Errorf("stake in pool %d missing owner", stake.PoolId)
		}
		if stake.AmountStaked.IsNil() || stake.AmountStaked.IsNegative() {
			return fmt.Errorf("stake for %s in pool %d has negative amount", stake.Owner, stake.PoolId)
		}
		if stake.RewardsEarned.IsNil() || stake.RewardsEarned.IsNegative() {
			return fmt.Errorf("stake for %s in pool %d has negative rewards", stake.Owner, stake.PoolId)
		}
	}

	orderKeys := make(map[string]bool, len(gs.Orders))
	for _, order := range gs.Orders {
		if !poolIds[order.PoolId] {
			return fmt.Errorf("order %d references unknown pool %d", order.Id, order.PoolId)
		}
		if err := order.Validate(); err != nil {
			return fmt.Errorf("invalid order %d in pool %d: %w", order.Id, order.PoolId, err)
		}
		key := fmt.Sprintf("%d/%d", order.PoolId, order.Id)
		if orderKeys[key] {
			return fmt.Errorf("duplicate order %d in pool %d", order.Id, order.PoolId)
		}
		orderKeys[key] = true
	}

	return nil
}
