package keeper

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/soonlabs/soondex/x/dex/types"
)

// GetOrder returns a limit order by pool and order ID
func (k Keeper) GetOrder(ctx context.Context, poolID, orderID uint64) (types.Order, bool) {
	bz := k.getStore(ctx).Get(OrderKey(poolID, orderID))
	if bz == nil {
		return types.Order{}, false
	}

	var order types.Order
	if err := json.Unmarshal(bz, &order); err != nil {
		return types.Order{}, false
	}
	return order, true
}

// SetOrder stores a limit order
func (k Keeper) SetOrder(ctx context.Context, order types.Order) error {
	bz, err := json.Marshal(order)
	if err != nil {
		return fmt.Errorf("marshal order %d/%d: %w", order.PoolId, order.Id, err)
	}
	k.getStore(ctx).Set(OrderKey(order.PoolId, order.Id), bz)
	return nil
}

// DeleteOrder removes a limit order
func (k Keeper) DeleteOrder(ctx context.Context, poolID, orderID uint64) {
	k.getStore(ctx).Delete(OrderKey(poolID, orderID))
}

// GetPoolOrders returns all resting orders for a pool in ascending order ID
// order, which is also placement order.
func (k Keeper) GetPoolOrders(ctx context.Context, poolID uint64) []types.Order {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, OrderPoolPrefix(poolID))
	defer iterator.Close()

	var orders []types.Order
	for ; iterator.Valid(); iterator.Next() {
		var order types.Order
		if err := json.Unmarshal(iterator.Value(), &order); err != nil {
			continue
		}
		orders = append(orders, order)
	}
	return orders
}

// GetAllOrders returns every resting order in the store
func (k Keeper) GetAllOrders(ctx context.Context) []types.Order {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, OrderKeyPrefix)
	defer iterator.Close()

	var orders []types.Order
	for ; iterator.Valid(); iterator.Next() {
		var order types.Order
		if err := json.Unmarshal(iterator.Value(), &order); err != nil {
			continue
		}
		orders = append(orders, order)
	}
	return orders
}

// GetOrderBook returns the pool's book split by side: buys sorted by
// descending price, sells by ascending price. Ties keep placement order.
func (k Keeper) GetOrderBook(ctx context.Context, poolID uint64) (buys, sells []types.Order) {
	for _, order := range k.GetPoolOrders(ctx, poolID) {
		switch order.Side {
		case types.OrderSideBuy:
			buys = append(buys, order)
		case types.OrderSideSell:
			sells = append(sells, order)
		}
	}

	sort.SliceStable(buys, func(i, j int) bool {
		return buys[i].Price.GT(buys[j].Price)
	})
	sort.SliceStable(sells, func(i, j int) bool {
		return sells[i].Price.LT(sells[j].Price)
	})
	return buys, sells
}

// orderEscrow returns the amount and denom locked for an order's unfilled
// remainder. Buys lock quote tokens at the limit price, sells lock base.
func orderEscrow(pool types.Pool, order types.Order, quantity math.Int) (math.Int, string, error) {
	if order.Side == types.OrderSideBuy {
		locked, err := SafeMul(quantity, order.Price)
		if err != nil {
			return math.Int{}, "", err
		}
		return locked, pool.TokenY, nil
	}
	return quantity, pool.TokenX, nil
}

// PlaceOrder rests a limit order on the pool's book, escrowing the full
// collateral up front. Returns the assigned order ID.
func (k Keeper) PlaceOrder(ctx context.Context, owner sdk.AccAddress, poolID uint64, side types.OrderSide, amount, price math.Int) (uint64, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	// 1. Load pool and validate
	pool, found := k.GetPool(ctx, poolID)
	if !found {
		return 0, types.ErrPoolNotFound.Wrapf("pool %d", poolID)
	}
	if err := side.Validate(); err != nil {
		return 0, err
	}
	if !amount.IsPositive() {
		return 0, types.ErrInvalidOrderAmount.Wrap("order amount must be positive")
	}
	if !price.IsPositive() {
		return 0, types.ErrInvalidInput.Wrap("order price must be positive")
	}

	// 2. Assign the next pool-scoped order ID
	orderID := pool.OrderSeq + 1
	pool.OrderSeq = orderID
	if err := k.SetPool(ctx, pool); err != nil {
		return 0, err
	}

	order := types.Order{
		Id:        orderID,
		PoolId:    poolID,
		Owner:     owner.String(),
		Side:      side,
		Amount:    amount,
		Price:     price,
		Fulfilled: math.ZeroInt(),
	}
	if err := k.SetOrder(ctx, order); err != nil {
		return 0, err
	}

	// 3. Escrow the collateral
	locked, denom, err := orderEscrow(pool, order, amount)
	if err != nil {
		return 0, err
	}
	if err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, owner, types.ModuleName,
		sdk.NewCoins(sdk.NewCoin(denom, locked))); err != nil {
		return 0, types.ErrInsufficientFunds.Wrapf("order collateral: %s", err)
	}

	// 4. Emit event
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeOrderPlaced,
			sdk.NewAttribute(types.AttributeKeyPoolID, fmt.Sprintf("%d", poolID)),
			sdk.NewAttribute(types.AttributeKeyOrderID, fmt.Sprintf("%d", orderID)),
			sdk.NewAttribute(types.AttributeKeyTrader, owner.String()),
			sdk.NewAttribute(types.AttributeKeySide, side.String()),
			sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
			sdk.NewAttribute(types.AttributeKeyPrice, price.String()),
		),
	)

	recordOrderPlaced()

	return orderID, nil
}

// CancelOrder removes an order from the book and refunds the escrow backing
// its unfilled remainder. Only the order owner may cancel.
func (k Keeper) CancelOrder(ctx context.Context, owner sdk.AccAddress, poolID, orderID uint64) (math.Int, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	pool, found := k.GetPool(ctx, poolID)
	if !found {
		return math.Int{}, types.ErrPoolNotFound.Wrapf("pool %d", poolID)
	}

	order, found := k.GetOrder(ctx, poolID, orderID)
	if !found {
		return math.Int{}, types.ErrOrderNotFound.Wrapf("order %d in pool %d", orderID, poolID)
	}
	if order.Owner != owner.String() {
		return math.Int{}, types.ErrUnauthorized.Wrapf("order %d belongs to %s", orderID, order.Owner)
	}

	refund, denom, err := orderEscrow(pool, order, order.Remaining())
	if err != nil {
		return math.Int{}, err
	}

	k.DeleteOrder(ctx, poolID, orderID)

	if refund.IsPositive() {
		if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, owner,
			sdk.NewCoins(sdk.NewCoin(denom, refund))); err != nil {
			return math.Int{}, types.ErrInsufficientFunds.Wrapf("order refund: %s", err)
		}
	}

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeOrderCancelled,
			sdk.NewAttribute(types.AttributeKeyPoolID, fmt.Sprintf("%d", poolID)),
			sdk.NewAttribute(types.AttributeKeyOrderID, fmt.Sprintf("%d", orderID)),
			sdk.NewAttribute(types.AttributeKeyRefund, refund.String()),
		),
	)

	recordOrderCancelled()

	return refund, nil
}

// MatchOrders runs one crossing pass over the pool's book.
//
// Buys are walked from the highest price, sells from the lowest. Each cross
// fills min of the two remainders at the floored midpoint of the two limit
// prices, applying fills immediately so no order can settle past its size.
// Trade fees on both legs are credited to the pool reserves, matched size
// and fees roll into the 24h counters, and buyers are refunded the escrow
// locked above the execution price. Fully filled orders are pruned from
// the book.
func (k Keeper) MatchOrders(ctx context.Context, caller sdk.AccAddress, poolID uint64) (uint64, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	pool, found := k.GetPool(ctx, poolID)
	if !found {
		return 0, types.ErrPoolNotFound.Wrapf("pool %d", poolID)
	}

	rollVolumeWindow(&pool, sdkCtx.BlockTime().Unix())

	buys, sells := k.GetOrderBook(ctx, poolID)
	if len(buys)+len(sells) == 0 {
		return 0, types.ErrInvalidOrderAmount.Wrapf("pool %d has no orders to match", poolID)
	}

	feeRate := math.NewIntFromUint64(pool.FeeRateBps)
	bps := math.NewInt(types.BpsDenominator)

	var matchCount uint64
	bi, si := 0, 0
	for bi < len(buys) && si < len(sells) {
		buy := &buys[bi]
		sell := &sells[si]

		// Past this point no remaining pair can cross.
		if buy.Price.LT(sell.Price) {
			break
		}

		quantity := math.MinInt(buy.Remaining(), sell.Remaining())
		if !quantity.IsPositive() {
			if !buy.IsActive() {
				bi++
			}
			if !sell.IsActive() {
				si++
			}
			continue
		}

		// Execution price is the floored midpoint of the two limits.
		priceSum, err := SafeAdd(buy.Price, sell.Price)
		if err != nil {
			return 0, err
		}
		execPrice, err := SafeQuo(priceSum, math.NewInt(2))
		if err != nil {
			return 0, err
		}

		quoteAmount, err := SafeMul(quantity, execPrice)
		if err != nil {
			return 0, err
		}

		feeBase, err := SafeMulDiv(quantity, feeRate, bps)
		if err != nil {
			return 0, err
		}
		feeQuote, err := SafeMulDiv(quoteAmount, feeRate, bps)
		if err != nil {
			return 0, err
		}

		buyerReceives, err := SafeSub(quantity, feeBase)
		if err != nil {
			return 0, err
		}
		sellerReceives, err := SafeSub(quoteAmount, feeQuote)
		if err != nil {
			return 0, err
		}

		// Buyer escrowed quantity * buy.Price; anything above the execution
		// price is returned.
		improvement, err := SafeSub(buy.Price, execPrice)
		if err != nil {
			return 0, err
		}
		buyerRefund, err := SafeMul(quantity, improvement)
		if err != nil {
			return 0, err
		}

		// Apply fills immediately so later crosses see the updated sizes.
		buy.Fulfilled, err = SafeAdd(buy.Fulfilled, quantity)
		if err != nil {
			return 0, err
		}
		sell.Fulfilled, err = SafeAdd(sell.Fulfilled, quantity)
		if err != nil {
			return 0, err
		}

		// Trade fees accrue to the pool reserves.
		pool.ReserveX, err = SafeAdd(pool.ReserveX, feeBase)
		if err != nil {
			return 0, err
		}
		pool.ReserveY, err = SafeAdd(pool.ReserveY, feeQuote)
		if err != nil {
			return 0, err
		}

		// Matched size and both fee legs count toward the 24h window.
		pool.Volume24h, err = SafeAdd(pool.Volume24h, quantity)
		if err != nil {
			return 0, err
		}
		feeTotal, err := SafeAdd(feeBase, feeQuote)
		if err != nil {
			return 0, err
		}
		pool.Fees24h, err = SafeAdd(pool.Fees24h, feeTotal)
		if err != nil {
			return 0, err
		}

		// Settle both legs from escrow.
		buyerAddr, err := sdk.AccAddressFromBech32(buy.Owner)
		if err != nil {
			return 0, types.ErrInvalidAddress.Wrapf("order %d owner: %s", buy.Id, err)
		}
		sellerAddr, err := sdk.AccAddressFromBech32(sell.Owner)
		if err != nil {
			return 0, types.ErrInvalidAddress.Wrapf("order %d owner: %s", sell.Id, err)
		}

		if buyerReceives.IsPositive() {
			if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, buyerAddr,
				sdk.NewCoins(sdk.NewCoin(pool.TokenX, buyerReceives))); err != nil {
				return 0, types.ErrInsufficientFunds.Wrapf("buy settlement: %s", err)
			}
		}
		if buyerRefund.IsPositive() {
			if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, buyerAddr,
				sdk.NewCoins(sdk.NewCoin(pool.TokenY, buyerRefund))); err != nil {
				return 0, types.ErrInsufficientFunds.Wrapf("buy refund: %s", err)
			}
		}
		if sellerReceives.IsPositive() {
			if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, sellerAddr,
				sdk.NewCoins(sdk.NewCoin(pool.TokenY, sellerReceives))); err != nil {
				return 0, types.ErrInsufficientFunds.Wrapf("sell settlement: %s", err)
			}
		}

		matchCount++

		sdkCtx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeOrdersMatched,
				sdk.NewAttribute(types.AttributeKeyPoolID, fmt.Sprintf("%d", poolID)),
				sdk.NewAttribute(types.AttributeKeyBuyOrderID, fmt.Sprintf("%d", buy.Id)),
				sdk.NewAttribute(types.AttributeKeySellOrderID, fmt.Sprintf("%d", sell.Id)),
				sdk.NewAttribute(types.AttributeKeyMatched, quantity.String()),
				sdk.NewAttribute(types.AttributeKeyPrice, execPrice.String()),
			),
		)

		if !buy.IsActive() {
			bi++
		}
		if !sell.IsActive() {
			si++
		}
	}

	// Persist fills, pruning fully filled orders.
	for i := range buys {
		if err := k.persistMatchedOrder(ctx, buys[i]); err != nil {
			return 0, err
		}
	}
	for i := range sells {
		if err := k.persistMatchedOrder(ctx, sells[i]); err != nil {
			return 0, err
		}
	}

	if err := k.SetPool(ctx, pool); err != nil {
		return 0, err
	}

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeOrderMatchingComplete,
			sdk.NewAttribute(types.AttributeKeyPoolID, fmt.Sprintf("%d", poolID)),
			sdk.NewAttribute(types.AttributeKeyCreator, caller.String()),
			sdk.NewAttribute(types.AttributeKeyMatchCount, fmt.Sprintf("%d", matchCount)),
		),
	)

	recordOrdersMatched(matchCount)

	return matchCount, nil
}

func (k Keeper) persistMatchedOrder(ctx context.Context, order types.Order) error {
	if order.IsActive() {
		return k.SetOrder(ctx, order)
	}
	k.DeleteOrder(ctx, order.PoolId, order.Id)
	return nil
}
