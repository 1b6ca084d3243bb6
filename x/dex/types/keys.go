package types

const (
	// ModuleName defines the module name
	ModuleName = "dex"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// RouterKey defines the module's message routing key
	RouterKey = ModuleName

	// QuerierRoute defines the module's query routing key
	QuerierRoute = ModuleName
)

// SecondsPerDay is the length of the rolling volume/fee window.
const SecondsPerDay = 86400

// SecondsPerYear is the stake duration beyond which diminishing returns apply.
const SecondsPerYear = 31536000

// MaxAdmins bounds the pool admin set.
const MaxAdmins = 3

// BpsDenominator is the basis-point denominator for all rates.
const BpsDenominator = 10000

// Swap fee split: of every fee unit collected, LpFeeShare parts stay in the
// pool reserves for liquidity providers and StakerFeeShare parts accrue to
// the staking reward pot. LpFeeShare + StakerFeeShare == FeeShareDenominator.
const (
	LpFeeShare          = 22
	StakerFeeShare      = 3
	FeeShareDenominator = 25
)
