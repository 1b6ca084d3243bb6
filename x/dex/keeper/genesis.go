package keeper

import (
	"context"
	"fmt"

	"github.com/soonlabs/soondex/x/dex/types"
)

// InitGenesis initializes the module state from a genesis state.
func (k Keeper) InitGenesis(ctx context.Context, genState types.GenesisState) error {
	if err := genState.Validate(); err != nil {
		return fmt.Errorf("invalid dex genesis state: %w", err)
	}

	if err := k.SetParams(ctx, genState.Params); err != nil {
		return err
	}

	k.SetNextPoolID(ctx, genState.NextPoolId)

	for _, pool := range genState.Pools {
		if err := k.SetPool(ctx, pool); err != nil {
			return err
		}
	}
	for _, pos := range genState.LpPositions {
		if err := k.SetLpPosition(ctx, pos); err != nil {
			return err
		}
	}
	for _, stake := range genState.Stakes {
		if err := k.SetStake(ctx, stake); err != nil {
			return err
		}
	}
	for _, order := range genState.Orders {
		if err := k.SetOrder(ctx, order); err != nil {
			return err
		}
	}

	return nil
}

// ExportGenesis exports the module state to a genesis state.
func (k Keeper) ExportGenesis(ctx context.Context) *types.GenesisState {
	return &types.GenesisState{
		Params:      k.GetParams(ctx),
		Pools:       k.GetAllPools(ctx),
		NextPoolId:  k.PeekNextPoolID(ctx),
		LpPositions: k.GetAllLpPositions(ctx),
		Stakes:      k.GetAllStakes(ctx),
		Orders:      k.GetAllOrders(ctx),
	}
}
