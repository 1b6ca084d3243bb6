package types

// Event types for the DEX module
const (
	EventTypePoolInitialized       = "pool_initialized"
	EventTypePoolRemoved           = "pool_removed"
	EventTypeAdminUpdated          = "admin_updated"
	EventTypeLiquidityProvided     = "liquidity_provided"
	EventTypeLiquidityRemoved      = "liquidity_removed"
	EventTypeTokensSwapped         = "tokens_swapped"
	EventTypeOrderPlaced           = "order_placed"
	EventTypeOrderCancelled        = "order_cancelled"
	EventTypeOrdersMatched         = "orders_matched"
	EventTypeOrderMatchingComplete = "order_matching_complete"
	EventTypeTokensStaked          = "tokens_staked"
	EventTypeTokensWithdrawn       = "tokens_withdrawn"
	EventTypeRewardsClaimed        = "rewards_claimed"
)

// Event attribute keys
const (
	AttributeKeyPoolID      = "pool_id"
	AttributeKeyCreator     = "creator"
	AttributeKeyAuthority   = "authority"
	AttributeKeyProvider    = "provider"
	AttributeKeyTrader      = "trader"
	AttributeKeyStaker      = "staker"
	AttributeKeyAdmin       = "admin"
	AttributeKeyIsAdded     = "is_added"
	AttributeKeyTokenX      = "token_x"
	AttributeKeyTokenY      = "token_y"
	AttributeKeyTokenIn     = "token_in"
	AttributeKeyTokenOut    = "token_out"
	AttributeKeyAmountX     = "amount_x"
	AttributeKeyAmountY     = "amount_y"
	AttributeKeyAmountIn    = "amount_in"
	AttributeKeyAmountOut   = "amount_out"
	AttributeKeyAmount      = "amount"
	AttributeKeyShares      = "shares"
	AttributeKeyFee         = "fee"
	AttributeKeyFeeRate     = "fee_rate"
	AttributeKeyRewardRate  = "reward_rate"
	AttributeKeyOrderID     = "order_id"
	AttributeKeySide        = "side"
	AttributeKeyPrice       = "price"
	AttributeKeyRefund      = "refund"
	AttributeKeyMatched     = "matched"
	AttributeKeyMatchCount  = "match_count"
	AttributeKeyBuyOrderID  = "buy_order_id"
	AttributeKeySellOrderID = "sell_order_id"
	AttributeKeyReward      = "reward"
	AttributeKeyTimestamp   = "timestamp"
)
