// This file is part of floatpipe.
//
// floatpipe is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// floatpipe is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with floatpipe.  If not, see <https://www.gnu.org/licenses/>.

package bench

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics collects the results of every sweep as prometheus metrics. Each
// instance has its own registry. All metrics are labelled with the unit name.
//
// A nil Metrics is valid and discards everything.
type Metrics struct {
	registry *prometheus.Registry

	Ticks      *prometheus.CounterVec
	Stalls     *prometheus.CounterVec
	Checks     *prometheus.CounterVec
	Mismatches *prometheus.CounterVec
	Duration   *prometheus.HistogramVec
}

// NewMetrics is the preferred method of initialisation for the Metrics type.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),

		Ticks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "floatpipe_bench_ticks_total",
			Help: "Total number of ticks, including stalled ticks",
		}, []string{"unit"}),

		Stalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "floatpipe_bench_stalls_total",
			Help: "Total number of ticks with clock-enable deasserted",
		}, []string{"unit"}),

		Checks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "floatpipe_bench_checks_total",
			Help: "Total number of results compared with the model",
		}, []string{"unit"}),

		Mismatches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "floatpipe_bench_mismatches_total",
			Help: "Total number of results that did not match the model or reference",
		}, []string{"unit"}),

		Duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "floatpipe_bench_sweep_duration_seconds",
			Help:    "Duration of each sweep",
			Buckets: prometheus.DefBuckets,
		}, []string{"unit"}),
	}

	m.registry.MustRegister(m.Ticks, m.Stalls, m.Checks, m.Mismatches, m.Duration)

	return m
}

// Observe adds the Report to the metrics.
func (m *Metrics) Observe(r Report) {
	if m == nil {
		return
	}
	m.Ticks.WithLabelValues(r.Unit).Add(float64(r.Ticks))
	m.Stalls.WithLabelValues(r.Unit).Add(float64(r.Stalls))
	m.Checks.WithLabelValues(r.Unit).Add(float64(r.Checked))
	m.Mismatches.WithLabelValues(r.Unit).Add(float64(r.Mismatches))
	m.Duration.WithLabelValues(r.Unit).Observe(r.Duration.Seconds())
}

// Handler returns an http.Handler that serves the metrics.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
