package types_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/soonlabs/soondex/x/dex/types"
)

var otherAddr = sdk.AccAddress([]byte("other_address_______")).String()

func TestMsgInitializePoolValidateBasic(t *testing.T) {
	tests := []struct {
		name    string
		msg     *types.MsgInitializePool
		wantErr bool
	}{
		{"valid", types.NewMsgInitializePool(testAddr, "atom", "musd", 25, 500), false},
		{"bad creator", types.NewMsgInitializePool("bogus", "atom", "musd", 25, 500), true},
		{"empty token", types.NewMsgInitializePool(testAddr, "", "musd", 25, 500), true},
		{"identical tokens", types.NewMsgInitializePool(testAddr, "atom", "atom", 25, 500), true},
		{"fee rate too high", types.NewMsgInitializePool(testAddr, "atom", "musd", types.BpsDenominator+1, 500), true},
		{"reward rate too high", types.NewMsgInitializePool(testAddr, "atom", "musd", 25, types.BpsDenominator+1), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.msg.ValidateBasic()
			if tc.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestMsgAddLiquidityValidateBasic(t *testing.T) {
	valid := types.NewMsgAddLiquidity(testAddr, 1, math.NewInt(1000), math.NewInt(4000), math.ZeroInt())
	require.NoError(t, valid.ValidateBasic())

	require.Error(t, types.NewMsgAddLiquidity("bogus", 1, math.NewInt(1000), math.NewInt(4000), math.ZeroInt()).ValidateBasic())
	require.Error(t, types.NewMsgAddLiquidity(testAddr, 0, math.NewInt(1000), math.NewInt(4000), math.ZeroInt()).ValidateBasic())
	require.Error(t, types.NewMsgAddLiquidity(testAddr, 1, math.ZeroInt(), math.NewInt(4000), math.ZeroInt()).ValidateBasic())
	require.Error(t, types.NewMsgAddLiquidity(testAddr, 1, math.NewInt(1000), math.NewInt(4000), math.NewInt(-1)).ValidateBasic())
}

func TestMsgRemoveLiquidityValidateBasic(t *testing.T) {
	require.NoError(t, types.NewMsgRemoveLiquidity(testAddr, 1, math.NewInt(100)).ValidateBasic())
	require.Error(t, types.NewMsgRemoveLiquidity("bogus", 1, math.NewInt(100)).ValidateBasic())
	require.Error(t, types.NewMsgRemoveLiquidity(testAddr, 1, math.ZeroInt()).ValidateBasic())
}

func TestMsgSwapTokensValidateBasic(t *testing.T) {
	valid := types.NewMsgSwapTokens(testAddr, 1, "atom", "musd", math.NewInt(100), math.ZeroInt())
	require.NoError(t, valid.ValidateBasic())

	require.Error(t, types.NewMsgSwapTokens("bogus", 1, "atom", "musd", math.NewInt(100), math.ZeroInt()).ValidateBasic())
	require.Error(t, types.NewMsgSwapTokens(testAddr, 0, "atom", "musd", math.NewInt(100), math.ZeroInt()).ValidateBasic())
	require.Error(t, types.NewMsgSwapTokens(testAddr, 1, "atom", "atom", math.NewInt(100), math.ZeroInt()).ValidateBasic())
	require.Error(t, types.NewMsgSwapTokens(testAddr, 1, "atom", "musd", math.ZeroInt(), math.ZeroInt()).ValidateBasic())
	require.Error(t, types.NewMsgSwapTokens(testAddr, 1, "atom", "musd", math.NewInt(100), math.NewInt(-1)).ValidateBasic())
}

func TestMsgPlaceOrderValidateBasic(t *testing.T) {
	valid := types.NewMsgPlaceOrder(testAddr, 1, types.OrderSideBuy, math.NewInt(10), math.NewInt(100))
	require.NoError(t, valid.ValidateBasic())

	require.Error(t, types.NewMsgPlaceOrder("bogus", 1, types.OrderSideBuy, math.NewInt(10), math.NewInt(100)).ValidateBasic())
	require.Error(t, types.NewMsgPlaceOrder(testAddr, 1, types.OrderSide(5), math.NewInt(10), math.NewInt(100)).ValidateBasic())
	require.Error(t, types.NewMsgPlaceOrder(testAddr, 1, types.OrderSideBuy, math.ZeroInt(), math.NewInt(100)).ValidateBasic())
	require.Error(t, types.NewMsgPlaceOrder(testAddr, 1, types.OrderSideBuy, math.NewInt(10), math.ZeroInt()).ValidateBasic())
}

func TestMsgCancelOrderValidateBasic(t *testing.T) {
	require.NoError(t, types.NewMsgCancelOrder(testAddr, 1, 1).ValidateBasic())
	require.Error(t, types.NewMsgCancelOrder("bogus", 1, 1).ValidateBasic())
	require.Error(t, types.NewMsgCancelOrder(testAddr, 0, 1).ValidateBasic())
	require.Error(t, types.NewMsgCancelOrder(testAddr, 1, 0).ValidateBasic())
}

func TestMsgMatchOrdersValidateBasic(t *testing.T) {
	require.NoError(t, types.NewMsgMatchOrders(testAddr, 1).ValidateBasic())
	require.Error(t, types.NewMsgMatchOrders("bogus", 1).ValidateBasic())
	require.Error(t, types.NewMsgMatchOrders(testAddr, 0).ValidateBasic())
}

func TestMsgStakingValidateBasic(t *testing.T) {
	require.NoError(t, types.NewMsgStake(testAddr, 1, math.NewInt(100)).ValidateBasic())
	require.Error(t, types.NewMsgStake(testAddr, 1, math.ZeroInt()).ValidateBasic())

	require.NoError(t, types.NewMsgUnstake(testAddr, 1, math.NewInt(100)).ValidateBasic())
	require.Error(t, types.NewMsgUnstake(testAddr, 1, math.NewInt(-1)).ValidateBasic())

	require.NoError(t, types.NewMsgClaimRewards(testAddr, 1).ValidateBasic())
	require.Error(t, types.NewMsgClaimRewards("bogus", 1).ValidateBasic())
}

func TestMsgManageAdminValidateBasic(t *testing.T) {
	require.NoError(t, types.NewMsgManageAdmin(testAddr, 1, otherAddr, true).ValidateBasic())
	require.Error(t, types.NewMsgManageAdmin("bogus", 1, otherAddr, true).ValidateBasic())
	require.Error(t, types.NewMsgManageAdmin(testAddr, 1, "bogus", true).ValidateBasic())
	require.Error(t, types.NewMsgManageAdmin(testAddr, 0, otherAddr, true).ValidateBasic())
}

func TestMsgRemovePoolValidateBasic(t *testing.T) {
	require.NoError(t, types.NewMsgRemovePool(testAddr, 1).ValidateBasic())
	require.Error(t, types.NewMsgRemovePool("bogus", 1).ValidateBasic())
	require.Error(t, types.NewMsgRemovePool(testAddr, 0).ValidateBasic())
}

func TestMsgRouteAndSigners(t *testing.T) {
	msg := types.NewMsgSwapTokens(testAddr, 1, "atom", "musd", math.NewInt(100), math.ZeroInt())

	require.Equal(t, types.RouterKey, msg.Route())
	require.Equal(t, "swap_tokens", msg.Type())

	signers := msg.GetSigners()
	require.Len(t, signers, 1)
	require.Equal(t, testAddr, signers[0].String())

	require.NotEmpty(t, msg.GetSignBytes())
}
