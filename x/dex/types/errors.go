package types

import (
	"cosmossdk.io/errors"
)

// DEX module sentinel errors
var (
	ErrMathOverflow         = errors.Register(ModuleName, 1, "mathematical operation overflow")
	ErrInvalidInput         = errors.Register(ModuleName, 2, "invalid input")
	ErrInsufficientFunds    = errors.Register(ModuleName, 3, "insufficient funds")
	ErrInsufficientStake    = errors.Register(ModuleName, 4, "insufficient stake balance")
	ErrInsufficientShares   = errors.Register(ModuleName, 5, "insufficient liquidity shares")
	ErrInvalidTokenPair     = errors.Register(ModuleName, 6, "invalid token or token pair")
	ErrExcessiveSlippage    = errors.Register(ModuleName, 7, "slippage tolerance exceeded")
	ErrUnauthorized         = errors.Register(ModuleName, 8, "unauthorized access")
	ErrPoolNotEmpty         = errors.Register(ModuleName, 9, "pool is not empty")
	ErrNoLiquidity          = errors.Register(ModuleName, 10, "no liquidity provided")
	ErrNoRewardsAvailable   = errors.Register(ModuleName, 11, "no rewards available to claim")
	ErrAdminAlreadyExists   = errors.Register(ModuleName, 12, "admin already exists")
	ErrAdminDoesntExist     = errors.Register(ModuleName, 13, "admin doesn't exist")
	ErrMaxAdminLimitReached = errors.Register(ModuleName, 14, "maximum admin limit reached")
	ErrOrderNotFound        = errors.Register(ModuleName, 15, "order not found")
	ErrPoolNotFound         = errors.Register(ModuleName, 16, "pool not found")
	ErrPoolAlreadyExists    = errors.Register(ModuleName, 17, "pool already exists")
	ErrInvalidTokenRatio    = errors.Register(ModuleName, 18, "invalid token ratio")
	ErrInvalidOrderAmount   = errors.Register(ModuleName, 19, "invalid order amount")
	ErrInvalidPoolState     = errors.Register(ModuleName, 20, "invalid pool state")
	ErrInvalidAddress       = errors.Register(ModuleName, 21, "invalid address")
)
