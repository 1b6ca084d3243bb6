package types

import (
	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var (
	_ sdk.Msg = &MsgStake{}
	_ sdk.Msg = &MsgUnstake{}
	_ sdk.Msg = &MsgClaimRewards{}
)

// MsgStake defines a message to lock tokens into a pool's staking program
type MsgStake struct {
	Staker string   `json:"staker"`
	PoolId uint64   `json:"pool_id"`
	Amount math.Int `json:"amount"`
}

// NewMsgStake creates a new MsgStake instance
func NewMsgStake(staker string, poolId uint64, amount math.Int) *MsgStake {
	return &MsgStake{
		Staker: staker,
		PoolId: poolId,
		Amount: amount,
	}
}

// Route implements the sdk.Msg interface
func (msg MsgStake) Route() string {
	return RouterKey
}

// Type implements the sdk.Msg interface
func (msg MsgStake) Type() string {
	return "stake"
}

// GetSigners implements the sdk.Msg interface
func (msg MsgStake) GetSigners() []sdk.AccAddress {
	staker, err := sdk.AccAddressFromBech32(msg.Staker)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{staker}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgStake) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgStake) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Staker); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid staker address: %s", err)
	}

	if msg.PoolId == 0 {
		return sdkerrors.Wrap(ErrInvalidInput, "pool id must be positive")
	}

	if msg.Amount.IsNil() || !msg.Amount.IsPositive() {
		return sdkerrors.Wrap(ErrInvalidInput, "stake amount must be positive")
	}

	return nil
}

// MsgUnstake defines a message to withdraw staked tokens plus rewards
type MsgUnstake struct {
	Staker string   `json:"staker"`
	PoolId uint64   `json:"pool_id"`
	Amount math.Int `json:"amount"`
}

// NewMsgUnstake creates a new MsgUnstake instance
func NewMsgUnstake(staker string, poolId uint64, amount math.Int) *MsgUnstake {
	return &MsgUnstake{
		Staker: staker,
		PoolId: poolId,
		Amount: amount,
	}
}

// Route implements the sdk.Msg interface
func (msg MsgUnstake) Route() string {
	return RouterKey
}

// Type implements the sdk.Msg interface
func (msg MsgUnstake) Type() string {
	return "unstake"
}

// GetSigners implements the sdk.Msg interface
func (msg MsgUnstake) GetSigners() []sdk.AccAddress {
	staker, err := sdk.AccAddressFromBech32(msg.Staker)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{staker}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgUnstake) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgUnstake) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Staker); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid staker address: %s", err)
	}

	if msg.PoolId == 0 {
		return sdkerrors.Wrap(ErrInvalidInput, "pool id must be positive")
	}

	if msg.Amount.IsNil() || !msg.Amount.IsPositive() {
		return sdkerrors.Wrap(ErrInvalidInput, "unstake amount must be positive")
	}

	return nil
}

// MsgClaimRewards defines a message to claim accrued staking rewards
type MsgClaimRewards struct {
	Staker string `json:"staker"`
	PoolId uint64 `json:"pool_id"`
}

// NewMsgClaimRewards creates a new MsgClaimRewards instance
func NewMsgClaimRewards(staker string, poolId uint64) *MsgClaimRewards {
	return &MsgClaimRewards{
		Staker: staker,
		PoolId: poolId,
	}
}

// Route implements the sdk.Msg interface
func (msg MsgClaimRewards) Route() string {
	return RouterKey
}

// Type implements the sdk.Msg interface
func (msg MsgClaimRewards) Type() string {
	return "claim_rewards"
}

// GetSigners implements the sdk.Msg interface
func (msg MsgClaimRewards) GetSigners() []sdk.AccAddress {
	staker, err := sdk.AccAddressFromBech32(msg.Staker)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{staker}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgClaimRewards) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgClaimRewards) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Staker); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid staker address: %s", err)
	}

	if msg.PoolId == 0 {
		return sdkerrors.Wrap(ErrInvalidInput, "pool id must be positive")
	}

	return nil
}
