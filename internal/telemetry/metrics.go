package telemetry

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	FramesSent = promauto.NewCounter(prometheus.CounterOpts{
		Name: "framerelay_frames_sent_total",
		Help: "Frame payloads successfully written to the outbound pipe.",
	})
	FrameBytes = promauto.NewCounter(prometheus.CounterOpts{
		Name: "framerelay_frame_bytes_total",
		Help: "Bytes written to the outbound pipe, headers included.",
	})
	FrameWriteErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "framerelay_frame_write_errors_total",
		Help: "Writes to the outbound pipe that failed and invalidated the handle.",
	})
	FrameConnectErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "framerelay_frame_connect_errors_total",
		Help: "Failed connect attempts on the outbound pipe.",
	})
	TransformRecords = promauto.NewCounter(prometheus.CounterOpts{
		Name: "framerelay_transform_records_total",
		Help: "Complete 64-byte transform records decoded from the inbound pipe.",
	})
	TransformShortReads = promauto.NewCounter(prometheus.CounterOpts{
		Name: "framerelay_transform_short_reads_total",
		Help: "Inbound reads that ended mid-record and forced a reconnect.",
	})
	TransformDecodeCorruption = promauto.NewCounter(prometheus.CounterOpts{
		Name: "framerelay_transform_decode_corruption_total",
		Help: "Transform records substituted with the zero matrix on decode failure.",
	})
	TransformReconnects = promauto.NewCounter(prometheus.CounterOpts{
		Name: "framerelay_transform_reconnects_total",
		Help: "Reconnect cycles of the inbound transform pipe.",
	})
	DroppedUpdates = promauto.NewCounter(prometheus.CounterOpts{
		Name: "framerelay_dropped_transform_updates_total",
		Help: "Transform updates dropped because a subscriber buffer was full.",
	})
)

func Expose(port int) {
	go func() {
		http.Handle("/metrics", promhttp.Handler())
		_ = http.ListenAndServe(fmt.Sprintf(":%d", port), nil)
	}()
}
