package types

import (
	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var _ sdk.Msg = &MsgSwapTokens{}

// MsgSwapTokens defines a message to swap one pool token for the other
type MsgSwapTokens struct {
	Trader       string   `json:"trader"`
	PoolId       uint64   `json:"pool_id"`
	TokenIn      string   `json:"token_in"`
	TokenOut     string   `json:"token_out"`
	AmountIn     math.Int `json:"amount_in"`
	MinAmountOut math.Int `json:"min_amount_out"`
}

// NewMsgSwapTokens creates a new MsgSwapTokens instance
func NewMsgSwapTokens(trader string, poolId uint64, tokenIn, tokenOut string, amountIn, minAmountOut math.Int) *MsgSwapTokens {
	return &MsgSwapTokens{
		Trader:       trader,
		PoolId:       poolId,
		TokenIn:      tokenIn,
		TokenOut:     tokenOut,
		AmountIn:     amountIn,
		MinAmountOut: minAmountOut,
	}
}

// Route implements the sdk.Msg interface
func (msg MsgSwapTokens) Route() string {
	return RouterKey
}

// Type implements the sdk.Msg interface
func (msg MsgSwapTokens) Type() string {
	return "swap_tokens"
}

// GetSigners implements the sdk.Msg interface
func (msg MsgSwapTokens) GetSigners() []sdk.AccAddress {
	trader, err := sdk.AccAddressFromBech32(msg.Trader)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{trader}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgSwapTokens) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgSwapTokens) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Trader); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid trader address: %s", err)
	}

	if msg.PoolId == 0 {
		return sdkerrors.Wrap(ErrInvalidInput, "pool id must be positive")
	}

	if msg.TokenIn == "" || msg.TokenOut == "" {
		return sdkerrors.Wrap(ErrInvalidTokenPair, "token denominations cannot be empty")
	}

	if msg.TokenIn == msg.TokenOut {
		return sdkerrors.Wrap(ErrInvalidTokenPair, "cannot swap a token for itself")
	}

	if msg.AmountIn.IsNil() || !msg.AmountIn.IsPositive() {
		return sdkerrors.Wrap(ErrInvalidInput, "amount in must be positive")
	}

	if msg.MinAmountOut.IsNil() || msg.MinAmountOut.IsNegative() {
		return sdkerrors.Wrap(ErrInvalidInput, "min amount out cannot be negative")
	}

	return nil
}
