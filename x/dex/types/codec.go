package types

import (
	"github.com/cosmos/cosmos-sdk/codec"
	cdctypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// RegisterCodec registers the necessary interfaces and concrete types
func RegisterCodec(cdc *codec.LegacyAmino) {
	cdc.RegisterConcrete(&MsgInitializePool{}, "dex/MsgInitializePool", nil)
	cdc.RegisterConcrete(&MsgAddLiquidity{}, "dex/MsgAddLiquidity", nil)
	cdc.RegisterConcrete(&MsgRemoveLiquidity{}, "dex/MsgRemoveLiquidity", nil)
	cdc.RegisterConcrete(&MsgSwapTokens{}, "dex/MsgSwapTokens", nil)
	cdc.RegisterConcrete(&MsgPlaceOrder{}, "dex/MsgPlaceOrder", nil)
	cdc.RegisterConcrete(&MsgCancelOrder{}, "dex/MsgCancelOrder", nil)
	cdc.RegisterConcrete(&MsgMatchOrders{}, "dex/MsgMatchOrders", nil)
	cdc.RegisterConcrete(&MsgStake{}, "dex/MsgStake", nil)
	cdc.RegisterConcrete(&MsgUnstake{}, "dex/MsgUnstake", nil)
	cdc.RegisterConcrete(&MsgClaimRewards{}, "dex/MsgClaimRewards", nil)
	cdc.RegisterConcrete(&MsgManageAdmin{}, "dex/MsgManageAdmin", nil)
	cdc.RegisterConcrete(&MsgRemovePool{}, "dex/MsgRemovePool", nil)
}

// RegisterInterfaces registers the module's interfaces with the interface registry
func RegisterInterfaces(registry cdctypes.InterfaceRegistry) {
	registry.RegisterImplementations((*sdk.Msg)(nil),
		&MsgInitializePool{},
		&MsgAddLiquidity{},
		&MsgRemoveLiquidity{},
		&MsgSwapTokens{},
		&MsgPlaceOrder{},
		&MsgCancelOrder{},
		&MsgMatchOrders{},
		&MsgStake{},
		&MsgUnstake{},
		&MsgClaimRewards{},
		&MsgManageAdmin{},
		&MsgRemovePool{},
	)
}

var (
	amino     = codec.NewLegacyAmino()
	ModuleCdc = codec.NewAminoCodec(amino)
)

func init() {
	RegisterCodec(amino)
	amino.Seal()
}
