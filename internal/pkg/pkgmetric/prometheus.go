package pkgmetric

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "wsgate"

// Prometheus records service metrics on a dedicated registry.
type Prometheus struct {
	registry  *prometheus.Registry
	errors    *prometheus.CounterVec
	incidents prometheus.Counter
}

// NewPrometheus builds the registry with Go and process collectors plus the
// service counters.
func NewPrometheus() *Prometheus {
	reg := prometheus.NewRegistry()

	errs := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "errors_total",
		Help:      "Errors returned to callers, by message code and HTTP status.",
	}, []string{"code", "status"})

	incidents := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "incidents_dropped_total",
		Help:      "Internal error reports dropped because the incident bus was full or closed.",
	})

	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		errs,
		incidents,
	)

	return &Prometheus{registry: reg, errors: errs, incidents: incidents}
}

// ObserveError counts one error response.
func (p *Prometheus) ObserveError(code, status int) {
	p.errors.WithLabelValues(strconv.Itoa(code), strconv.Itoa(status)).Inc()
}

// ObserveDroppedIncident counts one incident that could not be queued.
func (p *Prometheus) ObserveDroppedIncident() {
	p.incidents.Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (p *Prometheus) Handler() http.Handler {
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{Registry: p.registry})
}
