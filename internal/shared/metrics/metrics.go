package metrics

import (
	"bytes"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/gin-gonic/gin"
)

var (
	scansStartedTotal    atomic.Uint64
	scansCompletedTotal  atomic.Uint64
	scansFailedTotal     atomic.Uint64
	scansNoFaceTotal     atomic.Uint64
	recommendationsTotal atomic.Uint64
	discoveryTotal       atomic.Uint64
	rateLimitedTotal     atomic.Uint64

	flowEventsMu sync.Mutex
	flowEvents   = map[flowEventKey]uint64{}

	scanDuration = newHistogram([]float64{25, 50, 100, 250, 500, 1000, 2000, 5000})
)

// IncScanStarted increments the started counter.
func IncScanStarted() {
	scansStartedTotal.Add(1)
}

// IncScanCompleted increments the completed counter.
func IncScanCompleted() {
	scansCompletedTotal.Add(1)
}

// IncScanFailed increments the failed counter.
func IncScanFailed() {
	scansFailedTotal.Add(1)
}

// IncScanNoFace counts scans rejected because no face was found.
func IncScanNoFace() {
	scansNoFaceTotal.Add(1)
}

// IncRecommendations counts generated recommendation sets.
func IncRecommendations() {
	recommendationsTotal.Add(1)
}

// IncDiscovery counts product discovery queries.
func IncDiscovery() {
	discoveryTotal.Add(1)
}

// IncRateLimited counts requests rejected by the rate limiter.
func IncRateLimited() {
	rateLimitedTotal.Add(1)
}

type flowEventKey struct {
	eventType, outcome string
}

// IncFlowEvent counts a flow session event by type and outcome. Callers must
// pass labels from a fixed set.
func IncFlowEvent(eventType, outcome string) {
	flowEventsMu.Lock()
	flowEvents[flowEventKey{eventType, outcome}]++
	flowEventsMu.Unlock()
}

// ObserveScanDurationMs records a scan duration in milliseconds.
func ObserveScanDurationMs(value float64) {
	if value < 0 {
		value = 0
	}
	scanDuration.Observe(value)
}

// Handler exposes metrics in Prometheus text format.
func Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Content-Type", "text/plain; version=0.0.4")
		c.String(http.StatusOK, Render())
	}
}

// Render renders metrics in Prometheus text format.
func Render() string {
	var buf bytes.Buffer
	writeCounter(&buf, "scans_started_total", "Total face scans started", scansStartedTotal.Load())
	writeCounter(&buf, "scans_completed_total", "Total face scans completed", scansCompletedTotal.Load())
	writeCounter(&buf, "scans_failed_total", "Total face scans failed", scansFailedTotal.Load())
	writeCounter(&buf, "scans_no_face_total", "Total face scans without a detected face", scansNoFaceTotal.Load())
	writeCounter(&buf, "recommendations_generated_total", "Total recommendation sets generated", recommendationsTotal.Load())
	writeCounter(&buf, "product_discovery_total", "Total product discovery queries", discoveryTotal.Load())
	writeCounter(&buf, "http_rate_limited_total", "Total requests rejected by rate limiting", rateLimitedTotal.Load())
	writeFlowEvents(&buf)
	writeHistogram(&buf, "scan_duration_ms", "Face scan duration in milliseconds", scanDuration.Snapshot())
	return buf.String()
}

func writeFlowEvents(buf *bytes.Buffer) {
	flowEventsMu.Lock()
	keys := make([]flowEventKey, 0, len(flowEvents))
	counts := make(map[flowEventKey]uint64, len(flowEvents))
	for k, v := range flowEvents {
		keys = append(keys, k)
		counts[k] = v
	}
	flowEventsMu.Unlock()
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].eventType != keys[j].eventType {
			return keys[i].eventType < keys[j].eventType
		}
		return keys[i].outcome < keys[j].outcome
	})

	fmt.Fprintf(buf, "# HELP flow_events_total Flow session events by type and outcome\n")
	fmt.Fprintf(buf, "# TYPE flow_events_total counter\n")
	for _, k := range keys {
		fmt.Fprintf(buf, "flow_events_total{type=%q,outcome=%q} %d\n", k.eventType, k.outcome, counts[k])
	}
}

type histogram struct {
	mu      sync.Mutex
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

type histogramSnapshot struct {
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

func newHistogram(buckets []float64) *histogram {
	return &histogram{
		buckets: buckets,
		counts:  make([]uint64, len(buckets)),
	}
}

func (h *histogram) Observe(value float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.count++
	h.sum += value
	for i, bound := range h.buckets {
		if value <= bound {
			h.counts[i]++
			break
		}
	}
}

func (h *histogram) Snapshot() histogramSnapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := histogramSnapshot{
		buckets: append([]float64(nil), h.buckets...),
		counts:  append([]uint64(nil), h.counts...),
		sum:     h.sum,
		count:   h.count,
	}
	return out
}

func writeCounter(buf *bytes.Buffer, name, help string, value uint64) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s counter\n", name)
	fmt.Fprintf(buf, "%s %d\n", name, value)
}

func writeHistogram(buf *bytes.Buffer, name, help string, snap histogramSnapshot) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s histogram\n", name)
	var cumulative uint64
	for i, bound := range snap.buckets {
		cumulative += snap.counts[i]
		fmt.Fprintf(buf, "%s_bucket{le=\"%s\"} %d\n", name, formatFloat(bound), cumulative)
	}
	fmt.Fprintf(buf, "%s_bucket{le=\"+Inf\"} %d\n", name, snap.count)
	fmt.Fprintf(buf, "%s_sum %s\n", name, formatFloat(snap.sum))
	fmt.Fprintf(buf, "%s_count %d\n", name, snap.count)
}

func formatFloat(value float64) string {
	if value == float64(int64(value)) {
		return strconv.FormatInt(int64(value), 10)
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}
