package messaging

import (
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// 消息处理 Prometheus 指标
var (
	messageProcessedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "guide_platform",
			Subsystem: "mq",
			Name:      "messages_processed_total",
			Help:      "消息处理总数（按 topic 和结果区分）",
		},
		[]string{"service", "topic", "status"},
	)

	messageProcessDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "guide_platform",
			Subsystem: "mq",
			Name:      "message_process_duration_seconds",
			Help:      "消息处理耗时",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"service", "topic"},
	)
)

// newMetricsMiddleware 创建 Prometheus 指标中间件
// 统计每条消息的处理结果与耗时
func newMetricsMiddleware(serviceName string) message.HandlerMiddleware {
	return func(next message.HandlerFunc) message.HandlerFunc {
		return func(msg *message.Message) ([]*message.Message, error) {
			topic := msg.Metadata.Get("topic")
			start := time.Now()

			out, err := next(msg)

			status := "success"
			if err != nil {
				status = "error"
			}
			messageProcessedTotal.WithLabelValues(serviceName, topic, status).Inc()
			messageProcessDuration.WithLabelValues(serviceName, topic).
				Observe(time.Since(start).Seconds())

			return out, err
		}
	}
}
