package types

import (
	"fmt"

	"cosmossdk.io/math"
)

// OrderSide is the side of a resting limit order.
//
// Buy orders escrow the quote token (token Y) and bid for the base token;
// sell orders escrow the base token (token X). The enum is closed so the
// matching logic stays exhaustive.
type OrderSide uint8

const (
	// OrderSideBuy bids for token X, paying token Y.
	OrderSideBuy OrderSide = 1

	// OrderSideSell offers token X, asking token Y.
	OrderSideSell OrderSide = 2
)

// Validate checks the side is a known enum value.
func (s OrderSide) Validate() error {
	if s != OrderSideBuy && s != OrderSideSell {
		return ErrInvalidInput.Wrapf("unknown order side %d", s)
	}
	return nil
}

func (s OrderSide) String() string {
	switch s {
	case OrderSideBuy:
		return "buy"
	case OrderSideSell:
		return "sell"
	default:
		return fmt.Sprintf("side(%d)", uint8(s))
	}
}

// Pool is the per-token-pair ledger record. Reserves, the LP share supply,
// staking totals, the order sequence and the rolling volume window all live
// here and are only mutated by the message currently holding the pool.
type Pool struct {
	Id                    uint64   `json:"id"`
	TokenX                string   `json:"token_x"`
	TokenY                string   `json:"token_y"`
	ReserveX              math.Int `json:"reserve_x"`
	ReserveY              math.Int `json:"reserve_y"`
	LpSupply              math.Int `json:"lp_supply"`
	FeeRateBps            uint64   `json:"fee_rate_bps"`
	RewardRateBps         uint64   `json:"reward_rate_bps"`
	TotalStaked           math.Int `json:"total_staked"`
	StakingRewardsAccrued math.Int `json:"staking_rewards_accrued"`
	Volume24h             math.Int `json:"volume_24h"`
	Fees24h               math.Int `json:"fees_24h"`
	LastVolumeReset       int64    `json:"last_volume_reset"`
	Authority             string   `json:"authority"`
	SuperAdmin            string   `json:"super_admin"`
	Admins                []string `json:"admins"`
	OrderSeq              uint64   `json:"order_seq"`
}

// HasAdmin reports whether addr is in the pool's admin set.
func (p *Pool) HasAdmin(addr string) bool {
	for _, a := range p.Admins {
		if a == addr {
			return true
		}
	}
	return false
}

// IsEmpty reports whether the pool holds no reserves and no LP supply.
func (p *Pool) IsEmpty() bool {
	return p.ReserveX.IsZero() && p.ReserveY.IsZero() && p.LpSupply.IsZero()
}

// Validate checks structural pool invariants. lp_supply == 0 must hold
// exactly when both reserves are zero.
func (p *Pool) Validate() error {
	if p.Id == 0 {
		return ErrInvalidPoolState.Wrap("pool id must be positive")
	}
	if p.TokenX == "" || p.TokenY == "" {
		return ErrInvalidTokenPair.Wrap("token denoms cannot be empty")
	}
	if p.TokenX == p.TokenY {
		return ErrInvalidTokenPair.Wrap("token denoms must be different")
	}
	if p.FeeRateBps > BpsDenominator {
		return ErrInvalidInput.Wrapf("fee rate %d exceeds %d bps", p.FeeRateBps, BpsDenominator)
	}
	if p.RewardRateBps > BpsDenominator {
		return ErrInvalidInput.Wrapf("reward rate %d exceeds %d bps", p.RewardRateBps, BpsDenominator)
	}
	if len(p.Admins) > MaxAdmins {
		return ErrMaxAdminLimitReached.Wrapf("%d admins exceed limit %d", len(p.Admins), MaxAdmins)
	}
	if p.ReserveX.IsNil() || p.ReserveY.IsNil() || p.LpSupply.IsNil() {
		return ErrInvalidPoolState.Wrap("nil reserve or supply")
	}
	if p.ReserveX.IsNegative() || p.ReserveY.IsNegative() || p.LpSupply.IsNegative() {
		return ErrInvalidPoolState.Wrap("negative reserve or supply")
	}
	suppliedEmpty := p.ReserveX.IsZero() && p.ReserveY.IsZero()
	if p.LpSupply.IsZero() != suppliedEmpty {
		return ErrInvalidPoolState.Wrapf(
			"lp supply %s inconsistent with reserves %s/%s",
			p.LpSupply, p.ReserveX, p.ReserveY)
	}
	return nil
}

// LpPosition records one provider's share balance in a pool. Created on
// first deposit, removed once the balance reaches zero.
type LpPosition struct {
	PoolId          uint64   `json:"pool_id"`
	Owner           string   `json:"owner"`
	Shares          math.Int `json:"shares"`
	LastRewardClaim int64    `json:"last_reward_claim"`
}

// UserStake records one staker's position in a pool. Created lazily on the
// first stake and zeroed, not deleted, on full withdrawal.
type UserStake struct {
	PoolId             uint64   `json:"pool_id"`
	Owner              string   `json:"owner"`
	AmountStaked       math.Int `json:"amount_staked"`
	LastStakeTimestamp int64    `json:"last_stake_timestamp"`
	RewardsEarned      math.Int `json:"rewards_earned"`
}

// Order is a resting limit order. Amount is the original size in token X
// units, Price is token Y per token X, Fulfilled never exceeds Amount.
type Order struct {
	Id        uint64    `json:"id"`
	PoolId    uint64    `json:"pool_id"`
	Owner     string    `json:"owner"`
	Side      OrderSide `json:"side"`
	Amount    math.Int  `json:"amount"`
	Price     math.Int  `json:"price"`
	Fulfilled math.Int  `json:"fulfilled"`
}

// Remaining returns the unfilled size of the order.
func (o *Order) Remaining() math.Int {
	return o.Amount.Sub(o.Fulfilled)
}

// IsActive reports whether the order still has unfilled size.
func (o *Order) IsActive() bool {
	return o.Fulfilled.LT(o.Amount)
}

// Validate checks structural order invariants.
func (o *Order) Validate() error {
	if err := o.Side.Validate(); err != nil {
		return err
	}
	if o.Amount.IsNil() || !o.Amount.IsPositive() {
		return ErrInvalidOrderAmount.Wrap("order amount must be positive")
	}
	if o.Price.IsNil() || !o.Price.IsPositive() {
		return ErrInvalidInput.Wrap("order price must be positive")
	}
	if o.Fulfilled.IsNil() || o.Fulfilled.IsNegative() || o.Fulfilled.GT(o.Amount) {
		return ErrInvalidOrderAmount.Wrapf("fulfilled %s out of range for amount %s", o.Fulfilled, o.Amount)
	}
	if o.Owner == "" {
		return ErrInvalidAddress.Wrap("order owner cannot be empty")
	}
	return nil
}
