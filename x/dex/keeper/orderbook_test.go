package keeper_test

import (
	"testing"
	"time"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	testkeeper "github.com/soonlabs/soondex/testutil/keeper"
	"github.com/soonlabs/soondex/x/dex/types"
)

func TestPlaceOrder(t *testing.T) {
	k, bank, ctx := testkeeper.DexKeeper(t)
	poolID := setupPool(t, k, bank, ctx, 25, 500)

	// A buy locks quantity * price of the quote token.
	fund(bank, buyerAddr, coin(denomY, 1100))
	buyID, err := k.PlaceOrder(ctx, buyerAddr, poolID, types.OrderSideBuy, math.NewInt(10), math.NewInt(110))
	require.NoError(t, err)
	require.Equal(t, uint64(1), buyID)
	require.True(t, bank.GetBalance(ctx, buyerAddr, denomY).Amount.IsZero())

	// A sell locks the base quantity.
	fund(bank, sellerAddr, coin(denomX, 10))
	sellID, err := k.PlaceOrder(ctx, sellerAddr, poolID, types.OrderSideSell, math.NewInt(10), math.NewInt(100))
	require.NoError(t, err)
	require.Equal(t, uint64(2), sellID)
	require.True(t, bank.GetBalance(ctx, sellerAddr, denomX).Amount.IsZero())

	order, found := k.GetOrder(ctx, poolID, buyID)
	require.True(t, found)
	require.Equal(t, buyerAddr.String(), order.Owner)
	require.Equal(t, types.OrderSideBuy, order.Side)
	require.True(t, order.Fulfilled.IsZero())
	require.Equal(t, math.NewInt(10), order.Remaining())

	require.Len(t, k.GetPoolOrders(ctx, poolID), 2)
}

func TestPlaceOrderValidation(t *testing.T) {
	k, bank, ctx := testkeeper.DexKeeper(t)
	poolID := setupPool(t, k, bank, ctx, 25, 500)

	_, err := k.PlaceOrder(ctx, buyerAddr, 99, types.OrderSideBuy, math.NewInt(10), math.NewInt(100))
	require.ErrorIs(t, err, types.ErrPoolNotFound)

	_, err = k.PlaceOrder(ctx, buyerAddr, poolID, types.OrderSide(9), math.NewInt(10), math.NewInt(100))
	require.ErrorIs(t, err, types.ErrInvalidInput)

	_, err = k.PlaceOrder(ctx, buyerAddr, poolID, types.OrderSideBuy, math.ZeroInt(), math.NewInt(100))
	require.ErrorIs(t, err, types.ErrInvalidOrderAmount)

	_, err = k.PlaceOrder(ctx, buyerAddr, poolID, types.OrderSideBuy, math.NewInt(10), math.ZeroInt())
	require.ErrorIs(t, err, types.ErrInvalidInput)

	// Unfunded owner cannot post collateral.
	_, err = k.PlaceOrder(ctx, buyerAddr, poolID, types.OrderSideBuy, math.NewInt(10), math.NewInt(100))
	require.ErrorIs(t, err, types.ErrInsufficientFunds)
}

func TestCancelOrder(t *testing.T) {
	k, bank, ctx := testkeeper.DexKeeper(t)
	poolID := setupPool(t, k, bank, ctx, 25, 500)

	fund(bank, buyerAddr, coin(denomY, 1100))
	orderID, err := k.PlaceOrder(ctx, buyerAddr, poolID, types.OrderSideBuy, math.NewInt(10), math.NewInt(110))
	require.NoError(t, err)

	// Only the owner may cancel.
	_, err = k.CancelOrder(ctx, sellerAddr, poolID, orderID)
	require.ErrorIs(t, err, types.ErrUnauthorized)

	refund, err := k.CancelOrder(ctx, buyerAddr, poolID, orderID)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(1100), refund)
	require.Equal(t, math.NewInt(1100), bank.GetBalance(ctx, buyerAddr, denomY).Amount)

	_, found := k.GetOrder(ctx, poolID, orderID)
	require.False(t, found)

	_, err = k.CancelOrder(ctx, buyerAddr, poolID, orderID)
	require.ErrorIs(t, err, types.ErrOrderNotFound)
}

func TestMatchOrders(t *testing.T) {
	k, bank, ctx := testkeeper.DexKeeper(t)
	poolID := setupPool(t, k, bank, ctx, 25, 500)
	addLiquidity(t, k, bank, ctx, poolID, 10000, 10000)

	fund(bank, buyerAddr, coin(denomY, 1100))
	_, err := k.PlaceOrder(ctx, buyerAddr, poolID, types.OrderSideBuy, math.NewInt(10), math.NewInt(110))
	require.NoError(t, err)

	fund(bank, sellerAddr, coin(denomX, 10))
	_, err = k.PlaceOrder(ctx, sellerAddr, poolID, types.OrderSideSell, math.NewInt(10), math.NewInt(100))
	require.NoError(t, err)

	matched, err := k.MatchOrders(ctx, traderAddr, poolID)
	require.NoError(t, err)
	require.Equal(t, uint64(1), matched)

	// Execution at the floored midpoint (110+100)/2 = 105:
	//   base fee  = floor(10*25/10000)   = 0
	//   quote fee = floor(1050*25/10000) = 2
	// The buyer receives the base leg plus the 10*(110-105) = 50 escrowed
	// above the execution price; the seller receives 1050-2.
	require.Equal(t, math.NewInt(10), bank.GetBalance(ctx, buyerAddr, denomX).Amount)
	require.Equal(t, math.NewInt(50), bank.GetBalance(ctx, buyerAddr, denomY).Amount)
	require.Equal(t, math.NewInt(1048), bank.GetBalance(ctx, sellerAddr, denomY).Amount)

	// Trade fees accrue to the reserves, and the matched size and fees
	// roll into the 24h counters.
	pool, _ := k.GetPool(ctx, poolID)
	require.Equal(t, math.NewInt(10000), pool.ReserveX)
	require.Equal(t, math.NewInt(10002), pool.ReserveY)
	require.Equal(t, math.NewInt(10), pool.Volume24h)
	require.Equal(t, math.NewInt(2), pool.Fees24h)

	// Both orders filled and pruned.
	require.Empty(t, k.GetPoolOrders(ctx, poolID))
}

func TestMatchOrdersRollsVolumeWindow(t *testing.T) {
	k, bank, ctx := testkeeper.DexKeeper(t)
	poolID := setupPool(t, k, bank, ctx, 25, 500)
	addLiquidity(t, k, bank, ctx, poolID, 10000, 10000)

	// Seed the window with swap activity.
	fund(bank, traderAddr, coin(denomX, 1000))
	_, _, err := k.ExecuteSwap(ctx, traderAddr, poolID, denomX, denomY, math.NewInt(1000), math.ZeroInt())
	require.NoError(t, err)

	pool, _ := k.GetPool(ctx, poolID)
	require.Equal(t, math.NewInt(1000), pool.Volume24h)

	fund(bank, buyerAddr, coin(denomY, 1100))
	_, err = k.PlaceOrder(ctx, buyerAddr, poolID, types.OrderSideBuy, math.NewInt(10), math.NewInt(110))
	require.NoError(t, err)
	fund(bank, sellerAddr, coin(denomX, 10))
	_, err = k.PlaceOrder(ctx, sellerAddr, poolID, types.OrderSideSell, math.NewInt(10), math.NewInt(100))
	require.NoError(t, err)

	// A day later the pass resets the window before counting its matches.
	laterCtx := ctx.WithBlockTime(ctx.BlockTime().Add(25 * time.Hour))
	matched, err := k.MatchOrders(laterCtx, traderAddr, poolID)
	require.NoError(t, err)
	require.Equal(t, uint64(1), matched)

	pool, _ = k.GetPool(ctx, poolID)
	require.Equal(t, math.NewInt(10), pool.Volume24h)
	require.Equal(t, math.NewInt(2), pool.Fees24h)
	require.Equal(t, laterCtx.BlockTime().Unix(), pool.LastVolumeReset)
}

func TestMatchOrdersPartialFill(t *testing.T) {
	k, bank, ctx := testkeeper.DexKeeper(t)
	poolID := setupPool(t, k, bank, ctx, 25, 500)
	addLiquidity(t, k, bank, ctx, poolID, 10000, 10000)

	fund(bank, buyerAddr, coin(denomY, 1000))
	buyID, err := k.PlaceOrder(ctx, buyerAddr, poolID, types.OrderSideBuy, math.NewInt(10), math.NewInt(100))
	require.NoError(t, err)

	fund(bank, sellerAddr, coin(denomX, 4))
	_, err = k.PlaceOrder(ctx, sellerAddr, poolID, types.OrderSideSell, math.NewInt(4), math.NewInt(100))
	require.NoError(t, err)

	matched, err := k.MatchOrders(ctx, traderAddr, poolID)
	require.NoError(t, err)
	require.Equal(t, uint64(1), matched)

	// The sell is gone; the buy rests with its fill recorded.
	buy, found := k.GetOrder(ctx, poolID, buyID)
	require.True(t, found)
	require.Equal(t, math.NewInt(4), buy.Fulfilled)
	require.Equal(t, math.NewInt(6), buy.Remaining())
	require.Len(t, k.GetPoolOrders(ctx, poolID), 1)

	// A later sell completes the fill.
	fund(bank, sellerAddr, coin(denomX, 6))
	_, err = k.PlaceOrder(ctx, sellerAddr, poolID, types.OrderSideSell, math.NewInt(6), math.NewInt(100))
	require.NoError(t, err)

	matched, err = k.MatchOrders(ctx, traderAddr, poolID)
	require.NoError(t, err)
	require.Equal(t, uint64(1), matched)
	require.Empty(t, k.GetPoolOrders(ctx, poolID))
	require.Equal(t, math.NewInt(10), bank.GetBalance(ctx, buyerAddr, denomX).Amount)
}

func TestMatchOrdersNoCross(t *testing.T) {
	k, bank, ctx := testkeeper.DexKeeper(t)
	poolID := setupPool(t, k, bank, ctx, 25, 500)

	fund(bank, buyerAddr, coin(denomY, 900))
	_, err := k.PlaceOrder(ctx, buyerAddr, poolID, types.OrderSideBuy, math.NewInt(10), math.NewInt(90))
	require.NoError(t, err)

	fund(bank, sellerAddr, coin(denomX, 10))
	_, err = k.PlaceOrder(ctx, sellerAddr, poolID, types.OrderSideSell, math.NewInt(10), math.NewInt(100))
	require.NoError(t, err)

	// Bid below ask: the pass succeeds with zero matches and leaves the
	// book intact.
	matched, err := k.MatchOrders(ctx, traderAddr, poolID)
	require.NoError(t, err)
	require.Equal(t, uint64(0), matched)
	require.Len(t, k.GetPoolOrders(ctx, poolID), 2)
}

func TestMatchOrdersEmptyBook(t *testing.T) {
	k, bank, ctx := testkeeper.DexKeeper(t)
	poolID := setupPool(t, k, bank, ctx, 25, 500)

	_, err := k.MatchOrders(ctx, traderAddr, poolID)
	require.ErrorIs(t, err, types.ErrInvalidOrderAmount)
}

func TestMatchOrdersPriority(t *testing.T) {
	k, bank, ctx := testkeeper.DexKeeper(t)
	poolID := setupPool(t, k, bank, ctx, 0, 500)

	// Two sells at the same price: the earlier one trades first.
	firstSeller := sellerAddr
	secondSeller := traderAddr
	fund(bank, firstSeller, coin(denomX, 5))
	firstID, err := k.PlaceOrder(ctx, firstSeller, poolID, types.OrderSideSell, math.NewInt(5), math.NewInt(100))
	require.NoError(t, err)
	fund(bank, secondSeller, coin(denomX, 5))
	secondID, err := k.PlaceOrder(ctx, secondSeller, poolID, types.OrderSideSell, math.NewInt(5), math.NewInt(100))
	require.NoError(t, err)

	fund(bank, buyerAddr, coin(denomY, 500))
	_, err = k.PlaceOrder(ctx, buyerAddr, poolID, types.OrderSideBuy, math.NewInt(5), math.NewInt(100))
	require.NoError(t, err)

	matched, err := k.MatchOrders(ctx, stakerAddr, poolID)
	require.NoError(t, err)
	require.Equal(t, uint64(1), matched)

	// First in, first filled.
	_, found := k.GetOrder(ctx, poolID, firstID)
	require.False(t, found)
	second, found := k.GetOrder(ctx, poolID, secondID)
	require.True(t, found)
	require.True(t, second.Fulfilled.IsZero())
	require.Equal(t, math.NewInt(500), bank.GetBalance(ctx, firstSeller, denomY).Amount)
}

func TestGetOrderBookSorting(t *testing.T) {
	k, bank, ctx := testkeeper.DexKeeper(t)
	poolID := setupPool(t, k, bank, ctx, 25, 500)

	fund(bank, buyerAddr, coin(denomY, 10000))
	for _, price := range []int64{90, 110, 100} {
		_, err := k.PlaceOrder(ctx, buyerAddr, poolID, types.OrderSideBuy, math.NewInt(10), math.NewInt(price))
		require.NoError(t, err)
	}

	fund(bank, sellerAddr, coin(denomX, 30))
	for _, price := range []int64{130, 120, 140} {
		_, err := k.PlaceOrder(ctx, sellerAddr, poolID, types.OrderSideSell, math.NewInt(10), math.NewInt(price))
		require.NoError(t, err)
	}

	buys, sells := k.GetOrderBook(ctx, poolID)
	require.Len(t, buys, 3)
	require.Len(t, sells, 3)

	require.Equal(t, math.NewInt(110), buys[0].Price)
	require.Equal(t, math.NewInt(100), buys[1].Price)
	require.Equal(t, math.NewInt(90), buys[2].Price)

	require.Equal(t, math.NewInt(120), sells[0].Price)
	require.Equal(t, math.NewInt(130), sells[1].Price)
	require.Equal(t, math.NewInt(140), sells[2].Price)
}
