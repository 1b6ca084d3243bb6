package keeper

import (
	"math/big"

	"cosmossdk.io/math"

	"github.com/soonlabs/soondex/x/dex/types"
)

// Overflow-safe arithmetic for the DEX module. All ledger amounts live in
// the unsigned 64-bit domain; intermediates may exceed it (big.Int carries
// them losslessly) but any final result above 2^64−1 is rejected.

var maxUint64 = new(big.Int).SetUint64(^uint64(0))

func checkedResult(result *big.Int) (math.Int, error) {
	if result.Sign() < 0 {
		return math.Int{}, types.ErrMathOverflow.Wrap("negative result")
	}
	if result.Cmp(maxUint64) > 0 {
		return math.Int{}, types.ErrMathOverflow.Wrapf("result %s exceeds maximum value", result)
	}
	return math.NewIntFromBigInt(result), nil
}

// SafeAdd adds two math.Int values with overflow checking
func SafeAdd(a, b math.Int) (math.Int, error) {
	result := new(big.Int).Add(a.BigInt(), b.BigInt())
	return checkedResult(result)
}

// SafeSub subtracts two math.Int values with underflow checking
func SafeSub(a, b math.Int) (math.Int, error) {
	if a.LT(b) {
		return math.Int{}, types.ErrMathOverflow.Wrapf("cannot subtract %s from %s", b, a)
	}
	result := new(big.Int).Sub(a.BigInt(), b.BigInt())
	return checkedResult(result)
}

// SafeMul multiplies two math.Int values with overflow checking
func SafeMul(a, b math.Int) (math.Int, error) {
	if a.IsZero() || b.IsZero() {
		return math.ZeroInt(), nil
	}
	result := new(big.Int).Mul(a.BigInt(), b.BigInt())
	return checkedResult(result)
}

// SafeQuo divides two math.Int values with division by zero checking
func SafeQuo(a, b math.Int) (math.Int, error) {
	if b.IsZero() {
		return math.Int{}, types.ErrMathOverflow.Wrap("division by zero")
	}
	result := new(big.Int).Quo(a.BigInt(), b.BigInt())
	return checkedResult(result)
}

// SafeMulDiv performs floor((a * b) / c). The double-width intermediate is
// never range-checked; only the quotient must fit the 64-bit domain.
func SafeMulDiv(a, b, c math.Int) (math.Int, error) {
	if c.IsZero() {
		return math.Int{}, types.ErrMathOverflow.Wrap("division by zero")
	}
	intermediate := new(big.Int).Mul(a.BigInt(), b.BigInt())
	result := intermediate.Quo(intermediate, c.BigInt())
	return checkedResult(result)
}

// IntegerSqrt returns floor(sqrt(v)) for a non-negative value.
func IntegerSqrt(v math.Int) (math.Int, error) {
	if v.IsNegative() {
		return math.Int{}, types.ErrMathOverflow.Wrapf("square root of negative value %s", v)
	}
	result := new(big.Int).Sqrt(v.BigInt())
	return math.NewIntFromBigInt(result), nil
}
