package mq

import (
	"context"
	"encoding/json"
	"time"

	"guide-platform/common/messaging"

	"github.com/zeromicro/go-zero/core/logx"
)

// Producer 订单服务消息发布器
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

// publishAsync 异步发布事件（核心方法）
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

// ==================== 订单事件（Notify MQ 消费）====================

// PublishOrderCreated 发布订单创建事件
func (p *Producer) PublishOrderCreated(ctx context.Context, orderNo string, customerID int64, serviceType, city string) {
	p.publishAsync(messaging.TopicOrderEvent, messaging.MsgTypeOrderCreated, messaging.OrderCreatedEvent{
		OrderNo:     orderNo,
		CustomerID:  customerID,
		ServiceType: serviceType,
		City:        city,
		Timestamp:   time.Now().Unix(),
	})
}

// PublishGuideAssigned 发布地陪分配事件
func (p *Producer) PublishGuideAssigned(ctx context.Context, orderNo string, customerID, guideID int64, autoAssign bool) {
	p.publishAsync(messaging.TopicOrderEvent, messaging.MsgTypeGuideAssigned, messaging.GuideAssignedEvent{
		OrderNo:    orderNo,
		CustomerID: customerID,
		GuideID:    guideID,
		AutoAssign: autoAssign,
		Timestamp:  time.Now().Unix(),
	})
}

// PublishPaymentCollected 发布收款事件
func (p *Producer) PublishPaymentCollected(ctx context.Context, orderNo string, customerID int64, kind, method string, amount float64) {
	p.publishAsync(messaging.TopicOrderEvent, messaging.MsgTypePaymentCollected, messaging.PaymentCollectedEvent{
		OrderNo:       orderNo,
		CustomerID:    customerID,
		PaymentKind:   kind,
		PaymentMethod: method,
		Amount:        amount,
		Timestamp:     time.Now().Unix(),
	})
}

// PublishOrderCompleted 发布订单完成事件
func (p *Producer) PublishOrderCompleted(ctx context.Context, orderNo string, customerID, guideID int64) {
	p.publishAsync(messaging.TopicOrderEvent, messaging.MsgTypeOrderCompleted, messaging.OrderCompletedEvent{
		OrderNo:    orderNo,
		CustomerID: customerID,
		GuideID:    guideID,
		Timestamp:  time.Now().Unix(),
	})
}

// PublishOrderCancelled 发布订单取消事件
func (p *Producer) PublishOrderCancelled(ctx context.Context, orderNo string, customerID int64, reason string, byRefund bool) {
	p.publishAsync(messaging.TopicOrderEvent, messaging.MsgTypeOrderCancelled, messaging.OrderCancelledEvent{
		OrderNo:    orderNo,
		CustomerID: customerID,
		Reason:     reason,
		ByRefund:   byRefund,
		Timestamp:  time.Now().Unix(),
	})
}

// PublishRefundRequested 发布退款申请事件
func (p *Producer) PublishRefundRequested(ctx context.Context, orderNo string, customerID int64, refundMethod string) {
	p.publishAsync(messaging.TopicOrderEvent, messaging.MsgTypeRefundRequested, messaging.RefundRequestedEvent{
		OrderNo:      orderNo,
		CustomerID:   customerID,
		RefundMethod: refundMethod,
		Timestamp:    time.Now().Unix(),
	})
}

// PublishRefundProcessed 发布退款处理结果事件
func (p *Producer) PublishRefundProcessed(ctx context.Context, orderNo string, customerID int64, approved bool, refundAmount float64, reason string) {
	p.publishAsync(messaging.TopicOrderEvent, messaging.MsgTypeRefundProcessed, messaging.RefundProcessedEvent{
		OrderNo:      orderNo,
		CustomerID:   customerID,
		Approved:     approved,
		RefundAmount: refundAmount,
		Reason:       reason,
		Timestamp:    time.Now().Unix(),
	})
}

// Close 关闭 Producer 底层客户端
func (p *Producer) Close() error {
	if p == nil || p.client == nil {
		return nil
	}
	return p.client.Close()
}
