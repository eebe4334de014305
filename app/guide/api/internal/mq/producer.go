package mq

import (
	"context"
	"encoding/json"
	"time"

	"guide-platform/common/messaging"

	"github.com/zeromicro/go-zero/core/logx"
)

// Producer 地陪服务消息发布器
// nil 安全：Producer 或 Client 为 nil 时所有方法静默返回
type Producer struct {
	client *messaging.Client
}

// NewProducer 创建消息发布器
func NewProducer(client *messaging.Client) *Producer {
	if client == nil {
		return nil
	}
	return &Producer{client: client}
}

// publishAsync 异步发布事件
// - 开新 goroutine，不阻塞调用方
// - defer recover 防 panic 传播
// - 3 秒超时防 goroutine 泄漏
// - 发布失败只记日志，不影响主业务
func (p *Producer) publishAsync(topic string, msgType string, payload interface{}) {
	if p == nil || p.client == nil {
		return
	}

	go func() {
		defer func() {
			if r := recover(); r != nil {
				logx.Errorf("[MQ-Producer] panic recovered: topic=%s, err=%v", topic, r)
			}
		}()

		inner, err := json.Marshal(payload)
		if err != nil {
			logx.Errorf("[MQ-Producer] 序列化失败: topic=%s, type=%s, err=%v", topic, msgType, err)
			return
		}

		data, err := json.Marshal(messaging.NewRawMessage(msgType, string(inner)))
		if err != nil {
			logx.Errorf("[MQ-Producer] 序列化失败: topic=%s, type=%s, err=%v", topic, msgType, err)
			return
		}

		pubCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()

		if err := p.client.Publish(pubCtx, topic, data); err != nil {
			logx.Errorf("[MQ-Producer] 发布失败: topic=%s, type=%s, err=%v", topic, msgType, err)
			return
		}

		logx.Infof("[MQ-Producer] 发布成功: topic=%s, type=%s, size=%d", topic, msgType, len(data))
	}()
}

// ==================== 申请事件（Guide MQ / Notify MQ 消费）====================

// PublishApplicationSubmitted 发布申请提交事件（触发 OCR 辅助识别）
func (p *Producer) PublishApplicationSubmitted(ctx context.Context, applicationID, applicantID int64,
	realName, idNumber, frontURL, backURL string) {
	p.publishAsync(messaging.TopicApplicationEvent, messaging.MsgTypeApplicationSubmitted,
		messaging.ApplicationSubmittedEvent{
			ApplicationID:  applicationID,
			ApplicantID:    applicantID,
			RealName:       realName,
			IDNumber:       idNumber,
			IDCardFrontURL: frontURL,
			IDCardBackURL:  backURL,
			Timestamp:      time.Now().Unix(),
		})
}

// PublishApplicationReviewed 发布审核结果事件
func (p *Producer) PublishApplicationReviewed(ctx context.Context, applicationID, applicantID int64,
	status, reason string) {
	p.publishAsync(messaging.TopicApplicationEvent, messaging.MsgTypeApplicationReviewed,
		messaging.ApplicationReviewedEvent{
			ApplicationID: applicationID,
			ApplicantID:   applicantID,
			Status:        status,
			Reason:        reason,
			Timestamp:     time.Now().Unix(),
		})
}

// Close 关闭 Producer 底层客户端
func (p *Producer) Close() error {
	if p == nil || p.client == nil {
		return nil
	}
	return p.client.Close()
}
