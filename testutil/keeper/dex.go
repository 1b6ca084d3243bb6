package keeper

import (
	"context"
	"testing"
	"time"

	"cosmossdk.io/log"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	"github.com/cosmos/cosmos-sdk/codec"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	"github.com/stretchr/testify/require"

	"github.com/soonlabs/soondex/x/dex/keeper"
	"github.com/soonlabs/soondex/x/dex/types"
)

// MockBankKeeper is an in-memory bank keeper tracking real balances so
// transfer failures abort operations the same way they would on-chain.
type MockBankKeeper struct {
	balances map[string]sdk.Coins
}

// NewMockBankKeeper creates an empty mock bank keeper
func NewMockBankKeeper() *MockBankKeeper {
	return &MockBankKeeper{balances: make(map[string]sdk.Coins)}
}

// FundAccount credits an account with coins out of thin air
func (m *MockBankKeeper) FundAccount(addr sdk.AccAddress, amt sdk.Coins) {
	m.balances[addr.String()] = m.balances[addr.String()].Add(amt...)
}

func (m *MockBankKeeper) send(from, to sdk.AccAddress, amt sdk.Coins) error {
	fromBalance := m.balances[from.String()]
	newBalance, negative := fromBalance.SafeSub(amt...)
	if negative {
		return types.ErrInsufficientFunds.Wrapf("%s has %s, needs %s", from, fromBalance, amt)
	}
	m.balances[from.String()] = newBalance
	m.balances[to.String()] = m.balances[to.String()].Add(amt...)
	return nil
}

// SendCoinsFromAccountToModule implements types.BankKeeper
func (m *MockBankKeeper) SendCoinsFromAccountToModule(_ context.Context, senderAddr sdk.AccAddress, recipientModule string, amt sdk.Coins) error {
	return m.send(senderAddr, authtypes.NewModuleAddress(recipientModule), amt)
}

// SendCoinsFromModuleToAccount implements types.BankKeeper
func (m *MockBankKeeper) SendCoinsFromModuleToAccount(_ context.Context, senderModule string, recipientAddr sdk.AccAddress, amt sdk.Coins) error {
	return m.send(authtypes.NewModuleAddress(senderModule), recipientAddr, amt)
}

// SendCoinsFromModuleToModule implements types.BankKeeper
func (m *MockBankKeeper) SendCoinsFromModuleToModule(_ context.Context, senderModule, recipientModule string, amt sdk.Coins) error {
	return m.send(authtypes.NewModuleAddress(senderModule), authtypes.NewModuleAddress(recipientModule), amt)
}

// GetBalance implements types.BankKeeper
func (m *MockBankKeeper) GetBalance(_ context.Context, addr sdk.AccAddress, denom string) sdk.Coin {
	coin := sdk.Coin{Denom: denom, Amount: m.balances[addr.String()].AmountOf(denom)}
	return coin
}

// SpendableCoins implements types.BankKeeper
func (m *MockBankKeeper) SpendableCoins(_ context.Context, addr sdk.AccAddress) sdk.Coins {
	return m.balances[addr.String()]
}

// DexKeeper creates a test keeper for the DEX module backed by an in-memory
// store and the mock bank keeper.
func DexKeeper(t testing.TB) (keeper.Keeper, *MockBankKeeper, sdk.Context) {
	storeKey := storetypes.NewKVStoreKey(types.StoreKey)

	db := dbm.NewMemDB()
	stateStore := store.NewCommitMultiStore(db, log.NewNopLogger(), metrics.NewNoOpMetrics())
	stateStore.MountStoreWithDB(storeKey, storetypes.StoreTypeIAVL, db)
	require.NoError(t, stateStore.LoadLatestVersion())

	registry := codectypes.NewInterfaceRegistry()
	cdc := codec.NewProtoCodec(registry)

	bank := NewMockBankKeeper()
	k := keeper.NewKeeper(cdc, storeKey, bank)

	ctx := sdk.NewContext(stateStore, cmtproto.Header{
		Time: time.Unix(1_700_000_000, 0),
	}, false, log.NewNopLogger())

	require.NoError(t, k.InitGenesis(ctx, *types.DefaultGenesis()))

	return *k, bank, ctx
}
