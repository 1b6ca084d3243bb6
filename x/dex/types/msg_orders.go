package types

import (
	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var (
	_ sdk.Msg = &MsgPlaceOrder{}
	_ sdk.Msg = &MsgCancelOrder{}
	_ sdk.Msg = &MsgMatchOrders{}
)

// MsgPlaceOrder defines a message to place a resting limit order
type MsgPlaceOrder struct {
	Owner  string    `json:"owner"`
	PoolId uint64    `json:"pool_id"`
	Side   OrderSide `json:"side"`
	Amount math.Int  `json:"amount"`
	Price  math.Int  `json:"price"`
}

// NewMsgPlaceOrder creates a new MsgPlaceOrder instance
func NewMsgPlaceOrder(owner string, poolId uint64, side OrderSide, amount, price math.Int) *MsgPlaceOrder {
	return &MsgPlaceOrder{
		Owner:  owner,
		PoolId: poolId,
		Side:   side,
		Amount: amount,
		Price:  price,
	}
}

// Route implements the sdk.Msg interface
func (msg MsgPlaceOrder) Route() string {
	return RouterKey
}

// Type implements the sdk.Msg interface
func (msg MsgPlaceOrder) Type() string {
	return "place_order"
}

// GetSigners implements the sdk.Msg interface
func (msg MsgPlaceOrder) GetSigners() []sdk.AccAddress {
	owner, err := sdk.AccAddressFromBech32(msg.Owner)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{owner}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgPlaceOrder) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgPlaceOrder) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Owner); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid owner address: %s", err)
	}

	if msg.PoolId == 0 {
		return sdkerrors.Wrap(ErrInvalidInput, "pool id must be positive")
	}

	if err := msg.Side.Validate(); err != nil {
		return err
	}

	if msg.Amount.IsNil() || !msg.Amount.IsPositive() {
		return sdkerrors.Wrap(ErrInvalidOrderAmount, "order amount must be positive")
	}

	if msg.Price.IsNil() || !msg.Price.IsPositive() {
		return sdkerrors.Wrap(ErrInvalidInput, "order price must be positive")
	}

	return nil
}

// MsgCancelOrder defines a message to cancel a resting limit order
type MsgCancelOrder struct {
	Owner   string `json:"owner"`
	PoolId  uint64 `json:"pool_id"`
	OrderId uint64 `json:"order_id"`
}

// NewMsgCancelOrder creates a new MsgCancelOrder instance
func NewMsgCancelOrder(owner string, poolId, orderId uint64) *MsgCancelOrder {
	return &MsgCancelOrder{
		Owner:   owner,
		PoolId:  poolId,
		OrderId: orderId,
	}
}

// Route implements the sdk.Msg interface
func (msg MsgCancelOrder) Route() string {
	return RouterKey
}

// Type implements the sdk.Msg interface
func (msg MsgCancelOrder) Type() string {
	return "cancel_order"
}

// GetSigners implements the sdk.Msg interface
func (msg MsgCancelOrder) GetSigners() []sdk.AccAddress {
	owner, err := sdk.AccAddressFromBech32(msg.Owner)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{owner}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgCancelOrder) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgCancelOrder) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Owner); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid owner address: %s", err)
	}

	if msg.PoolId == 0 {
		return sdkerrors.Wrap(ErrInvalidInput, "pool id must be positive")
	}

	if msg.OrderId == 0 {
		return sdkerrors.Wrap(ErrInvalidInput, "order id must be positive")
	}

	return nil
}

// MsgMatchOrders defines a message to run a matching pass over a pool's book
type MsgMatchOrders struct {
	Caller string `json:"caller"`
	PoolId uint64 `json:"pool_id"`
}

// NewMsgMatchOrders creates a new MsgMatchOrders instance
func NewMsgMatchOrders(caller string, poolId uint64) *MsgMatchOrders {
	return &MsgMatchOrders{
		Caller: caller,
		PoolId: poolId,
	}
}

// Route implements the sdk.Msg interface
func (msg MsgMatchOrders) Route() string {
	return RouterKey
}

// Type implements the sdk.Msg interface
func (msg MsgMatchOrders) Type() string {
	return "match_orders"
}

// GetSigners implements the sdk.Msg interface
func (msg MsgMatchOrders) GetSigners() []sdk.AccAddress {
	caller, err := sdk.AccAddressFromBech32(msg.Caller)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{caller}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgMatchOrders) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgMatchOrders) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Caller); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid caller address: %s", err)
	}

	if msg.PoolId == 0 {
		return sdkerrors.Wrap(ErrInvalidInput, "pool id must be positive")
	}

	return nil
}
