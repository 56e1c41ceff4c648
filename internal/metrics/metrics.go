package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
)

type Metrics struct {
	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
	cartAdds       prometheus.Counter
	ordersPlaced   *prometheus.CounterVec
	orderRevenue   prometheus.Counter
}

// New builds the storefront collectors and registers them on reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		requestCounter: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "storefront_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		requestLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "storefront_http_request_duration_seconds",
				Help:    "HTTP request latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		cartAdds: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "storefront_cart_items_added_total",
			Help: "Units added to carts",
		}),
		ordersPlaced: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "storefront_orders_placed_total",
				Help: "Orders placed by payment method",
			},
			[]string{"payment_method"},
		),
		orderRevenue: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "storefront_order_revenue_rupiah_total",
			Help: "Sum of order totals in rupiah",
		}),
	}
	reg.MustRegister(m.requestCounter, m.requestLatency, m.cartAdds, m.ordersPlaced, m.orderRevenue)
	return m
}

// Middleware records count and latency per route pattern.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rc := chi.RouteContext(r.Context()); rc != nil && rc.RoutePattern() != "" {
			route = rc.RoutePattern()
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		m.requestCounter.WithLabelValues(r.Method, route, strconv.Itoa(status)).Inc()
		m.requestLatency.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}

func (m *Metrics) CartAdded(qty int) {
	if m == nil || qty <= 0 {
		return
	}
	m.cartAdds.Add(float64(qty))
}

func (m *Metrics) OrderPlaced(paymentMethod string, total int) {
	if m == nil {
		return
	}
	m.ordersPlaced.WithLabelValues(paymentMethod).Inc()
	m.orderRevenue.Add(float64(total))
}
