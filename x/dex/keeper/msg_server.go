package keeper

import (
	"context"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/soonlabs/soondex/x/dex/types"
)

type msgServer struct {
	Keeper
}

// NewMsgServerImpl returns an implementation of the dex MsgServer interface
func NewMsgServerImpl(keeper Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

var _ types.MsgServer = msgServer{}

// InitializePool handles the creation of a new exchange pool
func (ms msgServer) InitializePool(goCtx context.Context, msg *types.MsgInitializePool) (*types.MsgInitializePoolResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("InitializePool: validate: %w", err)
	}

	creator, err := sdk.AccAddressFromBech32(msg.Creator)
	if err != nil {
		return nil, fmt.Errorf("InitializePool: invalid creator address: %w", err)
	}

	pool, err := ms.Keeper.InitializePool(goCtx, creator, msg.TokenX, msg.TokenY, msg.FeeRateBps, msg.RewardRateBps)
	if err != nil {
		return nil, fmt.Errorf("InitializePool: %w", err)
	}

	return &types.MsgInitializePoolResponse{
		PoolId: pool.Id,
	}, nil
}

// AddLiquidity handles depositing both tokens into a pool
func (ms msgServer) AddLiquidity(goCtx context.Context, msg *types.MsgAddLiquidity) (*types.MsgAddLiquidityResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("AddLiquidity: validate: %w", err)
	}

	provider, err := sdk.AccAddressFromBech32(msg.Provider)
	if err != nil {
		return nil, fmt.Errorf("AddLiquidity: invalid provider address: %w", err)
	}

	shares, err := ms.Keeper.AddLiquidity(goCtx, provider, msg.PoolId, msg.AmountX, msg.AmountY, msg.MinShares)
	if err != nil {
		return nil, fmt.Errorf("AddLiquidity: %w", err)
	}

	return &types.MsgAddLiquidityResponse{
		SharesMinted: shares,
	}, nil
}

// RemoveLiquidity handles burning LP shares for pool tokens
func (ms msgServer) RemoveLiquidity(goCtx context.Context, msg *types.MsgRemoveLiquidity) (*types.MsgRemoveLiquidityResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("RemoveLiquidity: validate: %w", err)
	}

	provider, err := sdk.AccAddressFromBech32(msg.Provider)
	if err != nil {
		return nil, fmt.Errorf("RemoveLiquidity: invalid provider address: %w", err)
	}

	amountX, amountY, err := ms.Keeper.RemoveLiquidity(goCtx, provider, msg.PoolId, msg.Shares)
	if err != nil {
		return nil, fmt.Errorf("RemoveLiquidity: %w", err)
	}

	return &types.MsgRemoveLiquidityResponse{
		AmountX: amountX,
		AmountY: amountY,
	}, nil
}

// SwapTokens handles constant-product swaps
func (ms msgServer) SwapTokens(goCtx context.Context, msg *types.MsgSwapTokens) (*types.MsgSwapTokensResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("SwapTokens: validate: %w", err)
	}

	trader, err := sdk.AccAddressFromBech32(msg.Trader)
	if err != nil {
		return nil, fmt.Errorf("SwapTokens: invalid trader address: %w", err)
	}

	amountOut, fee, err := ms.Keeper.ExecuteSwap(goCtx, trader, msg.PoolId, msg.TokenIn, msg.TokenOut, msg.AmountIn, msg.MinAmountOut)
	if err != nil {
		return nil, fmt.Errorf("SwapTokens: %w", err)
	}

	return &types.MsgSwapTokensResponse{
		AmountOut: amountOut,
		Fee:       fee,
	}, nil
}

// PlaceOrder handles resting a limit order on the book
func (ms msgServer) PlaceOrder(goCtx context.Context, msg *types.MsgPlaceOrder) (*types.MsgPlaceOrderResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("PlaceOrder: validate: %w", err)
	}

	owner, err := sdk.AccAddressFromBech32(msg.Owner)
	if err != nil {
		return nil, fmt.Errorf("PlaceOrder: invalid owner address: %w", err)
	}

	orderID, err := ms.Keeper.PlaceOrder(goCtx, owner, msg.PoolId, msg.Side, msg.Amount, msg.Price)
	if err != nil {
		return nil, fmt.Errorf("PlaceOrder: %w", err)
	}

	return &types.MsgPlaceOrderResponse{
		OrderId: orderID,
	}, nil
}

// CancelOrder handles cancelling a resting limit order
func (ms msgServer) CancelOrder(goCtx context.Context, msg *types.MsgCancelOrder) (*types.MsgCancelOrderResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("CancelOrder: validate: %w", err)
	}

	owner, err := sdk.AccAddressFromBech32(msg.Owner)
	if err != nil {
		return nil, fmt.Errorf("CancelOrder: invalid owner address: %w", err)
	}

	refund, err := ms.Keeper.CancelOrder(goCtx, owner, msg.PoolId, msg.OrderId)
	if err != nil {
		return nil, fmt.Errorf("CancelOrder: %w", err)
	}

	return &types.MsgCancelOrderResponse{
		Refund: refund,
	}, nil
}

// MatchOrders handles running a matching pass over a pool's book
func (ms msgServer) MatchOrders(goCtx context.Context, msg *types.MsgMatchOrders) (*types.MsgMatchOrdersResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("MatchOrders: validate: %w", err)
	}

	caller, err := sdk.AccAddressFromBech32(msg.Caller)
	if err != nil {
		return nil, fmt.Errorf("MatchOrders: invalid caller address: %w", err)
	}

	matchCount, err := ms.Keeper.MatchOrders(goCtx, caller, msg.PoolId)
	if err != nil {
		return nil, fmt.Errorf("MatchOrders: %w", err)
	}

	return &types.MsgMatchOrdersResponse{
		MatchCount: matchCount,
	}, nil
}

// Stake handles locking tokens into a pool's staking program
func (ms msgServer) Stake(goCtx context.Context, msg *types.MsgStake) (*types.MsgStakeResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("Stake: validate: %w", err)
	}

	staker, err := sdk.AccAddressFromBech32(msg.Staker)
	if err != nil {
		return nil, fmt.Errorf("Stake: invalid staker address: %w", err)
	}

	if err := ms.Keeper.Stake(goCtx, staker, msg.PoolId, msg.Amount); err != nil {
		return nil, fmt.Errorf("Stake: %w", err)
	}

	return &types.MsgStakeResponse{}, nil
}

// Unstake handles withdrawing staked tokens plus accrued rewards
func (ms msgServer) Unstake(goCtx context.Context, msg *types.MsgUnstake) (*types.MsgUnstakeResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("Unstake: validate: %w", err)
	}

	staker, err := sdk.AccAddressFromBech32(msg.Staker)
	if err != nil {
		return nil, fmt.Errorf("Unstake: invalid staker address: %w", err)
	}

	amount, reward, err := ms.Keeper.Unstake(goCtx, staker, msg.PoolId, msg.Amount)
	if err != nil {
		return nil, fmt.Errorf("Unstake: %w", err)
	}

	return &types.MsgUnstakeResponse{
		Amount: amount,
		Reward: reward,
	}, nil
}

// ClaimRewards handles claiming accrued staking rewards
func (ms msgServer) ClaimRewards(goCtx context.Context, msg *types.MsgClaimRewards) (*types.MsgClaimRewardsResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("ClaimRewards: validate: %w", err)
	}

	staker, err := sdk.AccAddressFromBech32(msg.Staker)
	if err != nil {
		return nil, fmt.Errorf("ClaimRewards: invalid staker address: %w", err)
	}

	reward, err := ms.Keeper.ClaimRewards(goCtx, staker, msg.PoolId)
	if err != nil {
		return nil, fmt.Errorf("ClaimRewards: %w", err)
	}

	return &types.MsgClaimRewardsResponse{
		Reward: reward,
	}, nil
}

// ManageAdmin handles adding or removing a pool admin
func (ms msgServer) ManageAdmin(goCtx context.Context, msg *types.MsgManageAdmin) (*types.MsgManageAdminResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("ManageAdmin: validate: %w", err)
	}

	authority, err := sdk.AccAddressFromBech32(msg.Authority)
	if err != nil {
		return nil, fmt.Errorf("ManageAdmin: invalid authority address: %w", err)
	}

	if err := ms.Keeper.ManageAdmin(goCtx, authority, msg.PoolId, msg.Admin, msg.IsAdd); err != nil {
		return nil, fmt.Errorf("ManageAdmin: %w", err)
	}

	return &types.MsgManageAdminResponse{}, nil
}

// RemovePool handles deleting an empty pool
func (ms msgServer) RemovePool(goCtx context.Context, msg *types.MsgRemovePool) (*types.MsgRemovePoolResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("RemovePool: validate: %w", err)
	}

	authority, err := sdk.AccAddressFromBech32(msg.Authority)
	if err != nil {
		return nil, fmt.Errorf("RemovePool: invalid authority address: %w", err)
	}

	if err := ms.Keeper.RemovePool(goCtx, authority, msg.PoolId); err != nil {
		return nil, fmt.Errorf("RemovePool: %w", err)
	}

	return &types.MsgRemovePoolResponse{}, nil
}
