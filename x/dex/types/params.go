package types

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Default parameter values.
var (
	DefaultEnforceDepositRatio = true
	DefaultMinInitialLiquidity = math.NewInt(1000)
	DefaultMaxFeeRateBps       = uint64(5000)
	DefaultPoolCreationFee     = sdk.NewCoin("usoon", math.NewInt(150000000))
)

// Params holds the module's governance-adjustable configuration.
type Params struct {
	// EnforceDepositRatio requires follow-up deposits to match the current
	// reserve ratio exactly. When false, shares are minted from the lesser
	// side and the full deposit is added to the reserves.
	EnforceDepositRatio bool `json:"enforce_deposit_ratio"`

	// MinInitialLiquidity is the smallest share amount the first deposit
	// into a pool may mint.
	MinInitialLiquidity math.Int `json:"min_initial_liquidity"`

	// MaxFeeRateBps caps the per-pool swap fee rate.
	MaxFeeRateBps uint64 `json:"max_fee_rate_bps"`

	// PoolCreationFee is charged to the pool creator and routed to the
	// fee collector.
	PoolCreationFee sdk.Coin `json:"pool_creation_fee"`
}

// DefaultParams returns the default module parameters.
func DefaultParams() Params {
	return Params{
		EnforceDepositRatio: DefaultEnforceDepositRatio,
		MinInitialLiquidity: DefaultMinInitialLiquidity,
		MaxFeeRateBps:       DefaultMaxFeeRateBps,
		PoolCreationFee:     DefaultPoolCreationFee,
	}
}

// Validate performs basic validation of the parameters.
func (p Params) Validate() error {
	if p.MinInitialLiquidity.IsNil() || p.MinInitialLiquidity.IsNegative() {
		return fmt.Errorf("min initial liquidity cannot be nil or negative: %s", p.MinInitialLiquidity)
	}
	if p.MaxFeeRateBps > BpsDenominator {
		return fmt.Errorf("max fee rate %d exceeds %d bps", p.MaxFeeRateBps, BpsDenominator)
	}
	if err := p.PoolCreationFee.Validate(); err != nil {
		return fmt.Errorf("invalid pool creation fee: %w", err)
	}
	return nil
}
