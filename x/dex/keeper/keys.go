package keeper

import (
	"encoding/binary"
)

// Store key prefixes.
//
// Pools are stored by id with a secondary pair index preventing duplicate
// pools per token pair. Positions, stakes and orders are stored under the
// owning pool so the matcher and genesis export can range over one pool's
// records without touching the rest of the store.
var (
	// PoolKeyPrefix is the prefix for primary pool storage (key: poolID).
	PoolKeyPrefix = []byte{0x01}

	// PoolPairKeyPrefix indexes pool ids by canonical token pair.
	// Key format: 0x02 || tokenA || 0x00 || tokenB (lexical order)
	PoolPairKeyPrefix = []byte{0x02}

	// NextPoolIdKey is the key for the next available pool id.
	NextPoolIdKey = []byte{0x03}

	// ParamsKey is the key for module parameters.
	ParamsKey = []byte{0x04}

	// LpPositionKeyPrefix is the prefix for liquidity positions.
	// Key format: 0x05 || poolID || ownerAddr
	LpPositionKeyPrefix = []byte{0x05}

	// StakeKeyPrefix is the prefix for staking positions.
	// Key format: 0x06 || poolID || ownerAddr
	StakeKeyPrefix = []byte{0x06}

	// OrderKeyPrefix is the prefix for resting limit orders.
	// Key format: 0x07 || poolID || orderID
	OrderKeyPrefix = []byte{0x07}
)

// PoolKey returns the store key for a pool
func PoolKey(poolID uint64) []byte {
	poolIDBytes := make([]byte, 8)
	binary.BigEndian.PutUint64(poolIDBytes, poolID)
	return append(PoolKeyPrefix, poolIDBytes...)
}

// PoolPairKey returns the pair index key for a token pair. The pair is
// canonicalized so (x, y) and (y, x) map to the same key.
func PoolPairKey(tokenX, tokenY string) []byte {
	a, b := tokenX, tokenY
	if b < a {
		a, b = b, a
	}
	key := append(PoolPairKeyPrefix, []byte(a)...)
	key = append(key, 0x00)
	return append(key, []byte(b)...)
}

// LpPositionKey returns the store key for a liquidity position
func LpPositionKey(poolID uint64, owner string) []byte {
	poolIDBytes := make([]byte, 8)
	binary.BigEndian.PutUint64(poolIDBytes, poolID)
	key := append(LpPositionKeyPrefix, poolIDBytes...)
	return append(key, []byte(owner)...)
}

// StakeKey returns the store key for a staking position
func StakeKey(poolID uint64, owner string) []byte {
	poolIDBytes := make([]byte, 8)
	binary.BigEndian.PutUint64(poolIDBytes, poolID)
	key := append(StakeKeyPrefix, poolIDBytes...)
	return append(key, []byte(owner)...)
}

// OrderKey returns the store key for a limit order
func OrderKey(poolID, orderID uint64) []byte {
	poolIDBytes := make([]byte, 8)
	binary.BigEndian.PutUint64(poolIDBytes, poolID)
	orderIDBytes := make([]byte, 8)
	binary.BigEndian.PutUint64(orderIDBytes, orderID)
	key := append(OrderKeyPrefix, poolIDBytes...)
	return append(key, orderIDBytes...)
}

// OrderPoolPrefix returns the iteration prefix covering one pool's orders
func OrderPoolPrefix(poolID uint64) []byte {
	poolIDBytes := make([]byte, 8)
	binary.BigEndian.PutUint64(poolIDBytes, poolID)
	return append(OrderKeyPrefix, poolIDBytes...)
}

// LpPositionPoolPrefix returns the iteration prefix covering one pool's positions
func LpPositionPoolPrefix(poolID uint64) []byte {
	poolIDBytes := make([]byte, 8)
	binary.BigEndian.PutUint64(poolIDBytes, poolID)
	return append(LpPositionKeyPrefix, poolIDBytes...)
}

// StakePoolPrefix returns the iteration prefix covering one pool's stakes
func StakePoolPrefix(poolID uint64) []byte {
	poolIDBytes := make([]byte, 8)
	binary.BigEndian.PutUint64(poolIDBytes, poolID)
	return append(StakeKeyPrefix, poolIDBytes...)
}
