// Package metrics defines and registers all custom Prometheus metrics for the
// e-commerce API. It is the single source of truth for metric names, labels,
// and help strings; metrics register with the default registry at init time
// via promauto and are exposed on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "ecommerce"

// CartMutationsTotal counts cart mutation attempts that reached persistence.
// Labels:
//   - op: "add", "update", "remove", "clear"
//   - result: "ok" or "error"
var CartMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cart_mutations_total",
		Help:      "Total number of cart mutations, by operation and result.",
	},
	[]string{"op", "result"},
)

// StockRejectionsTotal counts cart mutations rejected because the requested
// quantity exceeded available stock.
var StockRejectionsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "stock_rejections_total",
		Help:      "Total number of cart mutations rejected for insufficient stock.",
	},
)

// TokenRenewalsTotal counts transparent access-token renewals driven by the
// refresh token.
// Label:
//   - result: "renewed" (new access token issued) or "rejected" (refresh
//     token unusable)
var TokenRenewalsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_renewals_total",
		Help:      "Total number of transparent access-token renewal attempts.",
	},
	[]string{"result"},
)

// ProductCacheTotal counts product snapshot cache lookups.
// Label:
//   - result: "hit" or "miss"
var ProductCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "product_cache_total",
		Help:      "Total number of product snapshot cache lookups, by result.",
	},
	[]string{"result"},
)
