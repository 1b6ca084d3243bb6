package types

import (
	sdkerrors "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var (
	_ sdk.Msg = &MsgInitializePool{}
	_ sdk.Msg = &MsgManageAdmin{}
	_ sdk.Msg = &MsgRemovePool{}
)

// MsgInitializePool defines a message to create a new exchange pool
type MsgInitializePool struct {
	Creator       string `json:"creator"`
	TokenX        string `json:"token_x"`
	TokenY        string `json:"token_y"`
	FeeRateBps    uint64 `json:"fee_rate_bps"`
	RewardRateBps uint64 `json:"reward_rate_bps"`
}

// NewMsgInitializePool creates a new MsgInitializePool instance
func NewMsgInitializePool(creator, tokenX, tokenY string, feeRateBps, rewardRateBps uint64) *MsgInitializePool {
	return &MsgInitializePool{
		Creator:       creator,
		TokenX:        tokenX,
		TokenY:        tokenY,
		FeeRateBps:    feeRateBps,
		RewardRateBps: rewardRateBps,
	}
}

// Route implements the sdk.Msg interface
func (msg MsgInitializePool) Route() string {
	return RouterKey
}

// Type implements the sdk.Msg interface
func (msg MsgInitializePool) Type() string {
	return "initialize_pool"
}

// GetSigners implements the sdk.Msg interface
func (msg MsgInitializePool) GetSigners() []sdk.AccAddress {
	creator, err := sdk.AccAddressFromBech32(msg.Creator)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{creator}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgInitializePool) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgInitializePool) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Creator); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid creator address: %s", err)
	}

	if msg.TokenX == "" || msg.TokenY == "" {
		return sdkerrors.Wrap(ErrInvalidTokenPair, "token denominations cannot be empty")
	}

	if msg.TokenX == msg.TokenY {
		return sdkerrors.Wrap(ErrInvalidTokenPair, "token denominations must be different")
	}

	if msg.FeeRateBps > BpsDenominator {
		return sdkerrors.Wrapf(ErrInvalidInput, "fee rate %d exceeds %d bps", msg.FeeRateBps, BpsDenominator)
	}

	if msg.RewardRateBps > BpsDenominator {
		return sdkerrors.Wrapf(ErrInvalidInput, "reward rate %d exceeds %d bps", msg.RewardRateBps, BpsDenominator)
	}

	return nil
}

// MsgManageAdmin defines a message to add or remove a pool admin
type MsgManageAdmin struct {
	Authority string `json:"authority"`
	PoolId    uint64 `json:"pool_id"`
	Admin     string `json:"admin"`
	IsAdd     bool   `json:"is_add"`
}

// NewMsgManageAdmin creates a new MsgManageAdmin instance
func NewMsgManageAdmin(authority string, poolId uint64, admin string, isAdd bool) *MsgManageAdmin {
	return &MsgManageAdmin{
		Authority: authority,
		PoolId:    poolId,
		Admin:     admin,
		IsAdd:     isAdd,
	}
}

// Route implements the sdk.Msg interface
func (msg MsgManageAdmin) Route() string {
	return RouterKey
}

// Type implements the sdk.Msg interface
func (msg MsgManageAdmin) Type() string {
	return "manage_admin"
}

// GetSigners implements the sdk.Msg interface
func (msg MsgManageAdmin) GetSigners() []sdk.AccAddress {
	authority, err := sdk.AccAddressFromBech32(msg.Authority)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{authority}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgManageAdmin) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgManageAdmin) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid authority address: %s", err)
	}

	if _, err := sdk.AccAddressFromBech32(msg.Admin); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid admin address: %s", err)
	}

	if msg.PoolId == 0 {
		return sdkerrors.Wrap(ErrInvalidInput, "pool id must be positive")
	}

	return nil
}

// MsgRemovePool defines a message to delete an empty pool
type MsgRemovePool struct {
	Authority string `json:"authority"`
	PoolId    uint64 `json:"pool_id"`
}

// NewMsgRemovePool creates a new MsgRemovePool instance
func NewMsgRemovePool(authority string, poolId uint64) *MsgRemovePool {
	return &MsgRemovePool{
		Authority: authority,
		PoolId:    poolId,
	}
}

// Route implements the sdk.Msg interface
func (msg MsgRemovePool) Route() string {
	return RouterKey
}

// Type implements the sdk.Msg interface
func (msg MsgRemovePool) Type() string {
	return "remove_pool"
}

// GetSigners implements the sdk.Msg interface
func (msg MsgRemovePool) GetSigners() []sdk.AccAddress {
	authority, err := sdk.AccAddressFromBech32(msg.Authority)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{authority}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgRemovePool) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgRemovePool) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid authority address: %s", err)
	}

	if msg.PoolId == 0 {
		return sdkerrors.Wrap(ErrInvalidInput, "pool id must be positive")
	}

	return nil
}
