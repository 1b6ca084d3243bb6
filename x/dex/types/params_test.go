package types_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/soonlabs/soondex/x/dex/types"
)

func TestDefaultParams(t *testing.T) {
	params := types.DefaultParams()
	require.NoError(t, params.Validate())
	require.True(t, params.EnforceDepositRatio)
	require.Equal(t, math.NewInt(1000), params.MinInitialLiquidity)
	require.Equal(t, uint64(5000), params.MaxFeeRateBps)
	require.Equal(t, "usoon", params.PoolCreationFee.Denom)
}

func TestParamsValidate(t *testing.T) {
	params := types.DefaultParams()
	params.MinInitialLiquidity = math.NewInt(-1)
	require.Error(t, params.Validate())

	params = types.DefaultParams()
	params.MaxFeeRateBps = types.BpsDenominator + 1
	require.Error(t, params.Validate())

	params = types.DefaultParams()
	params.PoolCreationFee = sdk.Coin{Denom: "bad denom!", Amount: math.NewInt(1)}
	require.Error(t, params.Validate())
}
