package types

import (
	"context"

	"cosmossdk.io/math"
)

// MsgServer defines the message server interface
type MsgServer interface {
	InitializePool(context.Context, *MsgInitializePool) (*MsgInitializePoolResponse, error)
	AddLiquidity(context.Context, *MsgAddLiquidity) (*MsgAddLiquidityResponse, error)
	RemoveLiquidity(context.Context, *MsgRemoveLiquidity) (*MsgRemoveLiquidityResponse, error)
	SwapTokens(context.Context, *MsgSwapTokens) (*MsgSwapTokensResponse, error)
	PlaceOrder(context.Context, *MsgPlaceOrder) (*MsgPlaceOrderResponse, error)
	CancelOrder(context.Context, *MsgCancelOrder) (*MsgCancelOrderResponse, error)
	MatchOrders(context.Context, *MsgMatchOrders) (*MsgMatchOrdersResponse, error)
	Stake(context.Context, *MsgStake) (*MsgStakeResponse, error)
	Unstake(context.Context, *MsgUnstake) (*MsgUnstakeResponse, error)
	ClaimRewards(context.Context, *MsgClaimRewards) (*MsgClaimRewardsResponse, error)
	ManageAdmin(context.Context, *MsgManageAdmin) (*MsgManageAdminResponse, error)
	RemovePool(context.Context, *MsgRemovePool) (*MsgRemovePoolResponse, error)
}

// Response types

// MsgInitializePoolResponse defines the response for InitializePool
type MsgInitializePoolResponse struct {
	PoolId uint64 `json:"pool_id"`
}

// MsgAddLiquidityResponse defines the response for AddLiquidity
type MsgAddLiquidityResponse struct {
	SharesMinted math.Int `json:"shares_minted"`
}

// MsgRemoveLiquidityResponse defines the response for RemoveLiquidity
type MsgRemoveLiquidityResponse struct {
	AmountX math.Int `json:"amount_x"`
	AmountY math.Int `json:"amount_y"`
}

// MsgSwapTokensResponse defines the response for SwapTokens
type MsgSwapTokensResponse struct {
	AmountOut math.Int `json:"amount_out"`
	Fee       math.Int `json:"fee"`
}

// MsgPlaceOrderResponse defines the response for PlaceOrder
type MsgPlaceOrderResponse struct {
	OrderId uint64 `json:"order_id"`
}

// MsgCancelOrderResponse defines the response for CancelOrder
type MsgCancelOrderResponse struct {
	Refund math.Int `json:"refund"`
}

// MsgMatchOrdersResponse defines the response for MatchOrders
type MsgMatchOrdersResponse struct {
	MatchCount uint64 `json:"match_count"`
}

// MsgStakeResponse defines the response for Stake
type MsgStakeResponse struct{}

// MsgUnstakeResponse defines the response for Unstake
type MsgUnstakeResponse struct {
	Amount math.Int `json:"amount"`
	Reward math.Int `json:"reward"`
}

// MsgClaimRewardsResponse defines the response for ClaimRewards
type MsgClaimRewardsResponse struct {
	Reward math.Int `json:"reward"`
}

// MsgManageAdminResponse defines the response for ManageAdmin
type MsgManageAdminResponse struct{}

// MsgRemovePoolResponse defines the response for RemovePool
type MsgRemovePoolResponse struct{}
