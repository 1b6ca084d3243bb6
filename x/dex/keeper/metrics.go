package keeper

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// DEXMetrics holds all Prometheus metrics for the DEX module
type DEXMetrics struct {
	PoolsCreated    prometheus.Counter
	PoolsRemoved    prometheus.Counter
	SwapsTotal      prometheus.Counter
	LiquidityOps    *prometheus.CounterVec
	OrdersPlaced    prometheus.Counter
	OrdersCancelled prometheus.Counter
	OrdersMatched   prometheus.Counter
	StakingOps      *prometheus.CounterVec
}

var (
	dexMetricsOnce sync.Once
	dexMetrics     *DEXMetrics
)

// NewDEXMetrics creates and registers DEX metrics (singleton pattern)
func NewDEXMetrics() *DEXMetrics {
	dexMetricsOnce.Do(func() {
		dexMetrics = &DEXMetrics{
			PoolsCreated: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "soondex",
					Subsystem: "dex",
					Name:      "pool_creations_total",
					Help:      "Total number of pools created",
				},
			),
			PoolsRemoved: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "soondex",
					Subsystem: "dex",
					Name:      "pool_removals_total",
					Help:      "Total number of pools removed",
				},
			),
			SwapsTotal: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "soondex",
					Subsystem: "dex",
					Name:      "swaps_total",
					Help:      "Total number of swaps executed",
				},
			),
			LiquidityOps: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "soondex",
					Subsystem: "dex",
					Name:      "liquidity_operations_total",
					Help:      "Liquidity deposits and withdrawals",
				},
				[]string{"operation"},
			),
			OrdersPlaced: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "soondex",
					Subsystem: "dex",
					Name:      "orders_placed_total",
					Help:      "Total limit orders placed",
				},
			),
			OrdersCancelled: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "soondex",
					Subsystem: "dex",
					Name:      "orders_cancelled_total",
					Help:      "Total limit orders cancelled",
				},
			),
			OrdersMatched: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "soondex",
					Subsystem: "dex",
					Name:      "orders_matched_total",
					Help:      "Total order crosses settled",
				},
			),
			StakingOps: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "soondex",
					Subsystem: "dex",
					Name:      "staking_operations_total",
					Help:      "Staking deposits, withdrawals, and claims",
				},
				[]string{"operation"},
			),
		}
	})
	return dexMetrics
}

// GetDEXMetrics returns the singleton DEX metrics instance
func GetDEXMetrics() *DEXMetrics {
	if dexMetrics == nil {
		return NewDEXMetrics()
	}
	return dexMetrics
}

func recordPoolCreated() {
	if m := GetDEXMetrics(); m != nil {
		m.PoolsCreated.Inc()
	}
}

func recordPoolRemoved() {
	if m := GetDEXMetrics(); m != nil {
		m.PoolsRemoved.Inc()
	}
}

func recordSwap() {
	if m := GetDEXMetrics(); m != nil {
		m.SwapsTotal.Inc()
	}
}

func recordLiquidityAdded() {
	if m := GetDEXMetrics(); m != nil {
		m.LiquidityOps.WithLabelValues("add").Inc()
	}
}

func recordLiquidityRemoved() {
	if m := GetDEXMetrics(); m != nil {
		m.LiquidityOps.WithLabelValues("remove").Inc()
	}
}

func recordOrderPlaced() {
	if m := GetDEXMetrics(); m != nil {
		m.OrdersPlaced.Inc()
	}
}

func recordOrderCancelled() {
	if m := GetDEXMetrics(); m != nil {
		m.OrdersCancelled.Inc()
	}
}

func recordOrdersMatched(count uint64) {
	if m := GetDEXMetrics(); m != nil {
		m.OrdersMatched.Add(float64(count))
	}
}

func recordStake() {
	if m := GetDEXMetrics(); m != nil {
		m.StakingOps.WithLabelValues("stake").Inc()
	}
}

func recordUnstake() {
	if m := GetDEXMetrics(); m != nil {
		m.StakingOps.WithLabelValues("unstake").Inc()
	}
}

func recordRewardsClaimed() {
	if m := GetDEXMetrics(); m != nil {
		m.StakingOps.WithLabelValues("claim").Inc()
	}
}
