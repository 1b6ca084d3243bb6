package types

import "fmt"

// Hand-rolled gogoproto plumbing for the message types. sdk.Msg is an alias
// for proto.Message, so every message carries Reset/String/ProtoMessage and a
// stable type name for the interface registry.

func (msg *MsgInitializePool) Reset()         { *msg = MsgInitializePool{} }
func (msg *MsgInitializePool) String() string { return fmt.Sprintf("%+v", *msg) }
func (msg *MsgInitializePool) ProtoMessage()  {}
func (msg *MsgInitializePool) XXX_MessageName() string {
	return "soondex.dex.v1.MsgInitializePool"
}

func (msg *MsgAddLiquidity) Reset()         { *msg = MsgAddLiquidity{} }
func (msg *MsgAddLiquidity) String() string { return fmt.Sprintf("%+v", *msg) }
func (msg *MsgAddLiquidity) ProtoMessage()  {}
func (msg *MsgAddLiquidity) XXX_MessageName() string {
	return "soondex.dex.v1.MsgAddLiquidity"
}

func (msg *MsgRemoveLiquidity) Reset()         { *msg = MsgRemoveLiquidity{} }
func (msg *MsgRemoveLiquidity) String() string { return fmt.Sprintf("%+v", *msg) }
func (msg *MsgRemoveLiquidity) ProtoMessage()  {}
func (msg *MsgRemoveLiquidity) XXX_MessageName() string {
	return "soondex.dex.v1.MsgRemoveLiquidity"
}

func (msg *MsgSwapTokens) Reset()         { *msg = MsgSwapTokens{} }
func (msg *MsgSwapTokens) String() string { return fmt.Sprintf("%+v", *msg) }
func (msg *MsgSwapTokens) ProtoMessage()  {}
func (msg *MsgSwapTokens) XXX_MessageName() string {
	return "soondex.dex.v1.MsgSwapTokens"
}

func (msg *MsgPlaceOrder) Reset()         { *msg = MsgPlaceOrder{} }
func (msg *MsgPlaceOrder) String() string { return fmt.Sprintf("%+v", *msg) }
func (msg *MsgPlaceOrder) ProtoMessage()  {}
func (msg *MsgPlaceOrder) XXX_MessageName() string {
	return "soondex.dex.v1.MsgPlaceOrder"
}

func (msg *MsgCancelOrder) Reset()         { *msg = MsgCancelOrder{} }
func (msg *MsgCancelOrder) String() string { return fmt.Sprintf("%+v", *msg) }
func (msg *MsgCancelOrder) ProtoMessage()  {}
func (msg *MsgCancelOrder) XXX_MessageName() string {
	return "soondex.dex.v1.MsgCancelOrder"
}

func (msg *MsgMatchOrders) Reset()         { *msg = MsgMatchOrders{} }
func (msg *MsgMatchOrders) String() string { return fmt.Sprintf("%+v", *msg) }
func (msg *MsgMatchOrders) ProtoMessage()  {}
func (msg *MsgMatchOrders) XXX_MessageName() string {
	return "soondex.dex.v1.MsgMatchOrders"
}

func (msg *MsgStake) Reset()         { *msg = MsgStake{} }
func (msg *MsgStake) String() string { return fmt.Sprintf("%+v", *msg) }
func (msg *MsgStake) ProtoMessage()  {}
func (msg *MsgStake) XXX_MessageName() string {
	return "soondex.dex.v1.MsgStake"
}

func (msg *MsgUnstake) Reset()         { *msg = MsgUnstake{} }
func (msg *MsgUnstake) String() string { return fmt.Sprintf("%+v", *msg) }
func (msg *MsgUnstake) ProtoMessage()  {}
func (msg *MsgUnstake) XXX_MessageName() string {
	return "soondex.dex.v1.MsgUnstake"
}

func (msg *MsgClaimRewards) Reset()         { *msg = MsgClaimRewards{} }
func (msg *MsgClaimRewards) String() string { return fmt.Sprintf("%+v", *msg) }
func (msg *MsgClaimRewards) ProtoMessage()  {}
func (msg *MsgClaimRewards) XXX_MessageName() string {
	return "soondex.dex.v1.MsgClaimRewards"
}

func (msg *MsgManageAdmin) Reset()         { *msg = MsgManageAdmin{} }
func (msg *MsgManageAdmin) String() string { return fmt.Sprintf("%+v", *msg) }
func (msg *MsgManageAdmin) ProtoMessage()  {}
func (msg *MsgManageAdmin) XXX_MessageName() string {
	return "soondex.dex.v1.MsgManageAdmin"
}

func (msg *MsgRemovePool) Reset()         { *msg = MsgRemovePool{} }
func (msg *MsgRemovePool) String() string { return fmt.Sprintf("%+v", *msg) }
func (msg *MsgRemovePool) ProtoMessage()  {}
func (msg *MsgRemovePool) XXX_MessageName() string {
	return "soondex.dex.v1.MsgRemovePool"
}
