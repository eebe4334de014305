/**
 * @projectName: GuidePlatform
 * @package: consumer
 * @className: OrderEventConsumer
 * @description: 订单事件消费者（解析 RawMessage → 按类型生成站内通知）
 * @version: 1.0
 *
 * 消息来源: Order 服务
 * Topic: order:events（RawMessage 信封格式）
 *
 * 解析失败直接 ack（重试无意义），写库失败返回错误触发重试。
 */

package consumer

import (
	"context"
	"encoding/json"
	"fmt"

	"guide-platform/app/notify/model"
	"guide-platform/common/messaging"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/zeromicro/go-zero/core/logx"
)

// OrderEventConsumer 订单事件消费者
type OrderEventConsumer struct {
	notificationModel model.INotificationModel
	logger            logx.Logger
}

// NewOrderEventConsumer 创建订单事件消费者
func NewOrderEventConsumer(notificationModel model.INotificationModel) *OrderEventConsumer {
	return &OrderEventConsumer{
		notificationModel: notificationModel,
		logger:            logx.WithContext(context.Background()),
	}
}

// Subscribe 订阅订单事件主题
func (c *OrderEventConsumer) Subscribe(msgClient *messaging.Client) {
	msgClient.Subscribe(messaging.TopicOrderEvent, "notify-order-handler", c.handleOrderEvent)
	c.logger.Infof("已订阅 %s 事件", messaging.TopicOrderEvent)
}

// handleOrderEvent 处理订单事件（RawMessage 信封格式）
func (c *OrderEventConsumer) handleOrderEvent(msg *message.Message) error {
	ctx := msg.Context()
	logger := logx.WithContext(ctx)

	var raw messaging.RawMessage
	if err := json.Unmarshal(msg.Payload, &raw); err != nil {
		logger.Errorf("[NotifyConsumer] 解析信封失败: %v", err)
		return nil
	}

	notification, err := c.buildNotification(raw)
	if err != nil {
		logger.Errorf("[NotifyConsumer] 解析事件数据失败: type=%s, err=%v", raw.Type, err)
		return nil
	}
	if notification == nil {
		// 未知消息类型，直接 ack
		logger.Infof("[NotifyConsumer] 忽略未知消息类型: %s", raw.Type)
		return nil
	}

	if err := c.notificationModel.Create(ctx, notification); err != nil {
		logger.Errorf("[NotifyConsumer] 写入通知失败: type=%s, userID=%d, err=%v",
			raw.Type, notification.UserID, err)
		return err // 触发重试
	}

	logger.Infof("[NotifyConsumer] 通知已写入: type=%s, userID=%d, bizRef=%s",
		raw.Type, notification.UserID, notification.BizRef)
	return nil
}

// buildNotification 按消息类型构造通知记录
// 返回 (nil, nil) 表示未知类型
func (c *OrderEventConsumer) buildNotification(raw messaging.RawMessage) (*model.Notification, error) {
	data := []byte(raw.Data)

	switch raw.Type {
	case messaging.MsgTypeOrderCreated:
		var e messaging.OrderCreatedEvent
		if err := json.Unmarshal(data, &e); err != nil {
			return nil, err
		}
		return orderNotification(e.CustomerID, e.OrderNo, "订单创建成功",
			fmt.Sprintf("您的订单 %s 已创建，请尽快选择地陪", e.OrderNo)), nil

	case messaging.MsgTypeGuideAssigned:
		var e messaging.GuideAssignedEvent
		if err := json.Unmarshal(data, &e); err != nil {
			return nil, err
		}
		title := "地陪已确认"
		if e.AutoAssign {
			title = "系统已为您派单"
		}
		return orderNotification(e.CustomerID, e.OrderNo, title,
			fmt.Sprintf("订单 %s 已确认地陪，待收取定金后开始服务", e.OrderNo)), nil

	case messaging.MsgTypePaymentCollected:
		var e messaging.PaymentCollectedEvent
		if err := json.Unmarshal(data, &e); err != nil {
			return nil, err
		}
		kind := "定金"
		if e.PaymentKind == "final" {
			kind = "尾款"
		}
		return orderNotification(e.CustomerID, e.OrderNo, "收款确认",
			fmt.Sprintf("订单 %s 已确认收取%s %.2f 元", e.OrderNo, kind, e.Amount)), nil

	case messaging.MsgTypeOrderCompleted:
		var e messaging.OrderCompletedEvent
		if err := json.Unmarshal(data, &e); err != nil {
			return nil, err
		}
		return orderNotification(e.CustomerID, e.OrderNo, "订单已完成",
			fmt.Sprintf("订单 %s 服务已完成，欢迎评价", e.OrderNo)), nil

	case messaging.MsgTypeOrderCancelled:
		var e messaging.OrderCancelledEvent
		if err := json.Unmarshal(data, &e); err != nil {
			return nil, err
		}
		content := fmt.Sprintf("订单 %s 已取消", e.OrderNo)
		if e.ByRefund {
			content = fmt.Sprintf("订单 %s 已取消，退款申请处理中", e.OrderNo)
		}
		return orderNotification(e.CustomerID, e.OrderNo, "订单已取消", content), nil

	case messaging.MsgTypeRefundRequested:
		var e messaging.RefundRequestedEvent
		if err := json.Unmarshal(data, &e); err != nil {
			return nil, err
		}
		return orderNotification(e.CustomerID, e.OrderNo, "退款申请已受理",
			fmt.Sprintf("订单 %s 的退款申请已提交，等待审核", e.OrderNo)), nil

	case messaging.MsgTypeRefundProcessed:
		var e messaging.RefundProcessedEvent
		if err := json.Unmarshal(data, &e); err != nil {
			return nil, err
		}
		if e.Approved {
			return orderNotification(e.CustomerID, e.OrderNo, "退款已通过",
				fmt.Sprintf("订单 %s 退款 %.2f 元已通过审核", e.OrderNo, e.RefundAmount)), nil
		}
		content := fmt.Sprintf("订单 %s 的退款申请未通过", e.OrderNo)
		if e.Reason != "" {
			content += "：" + e.Reason
		}
		return orderNotification(e.CustomerID, e.OrderNo, "退款被拒绝", content), nil
	}

	return nil, nil
}

// orderNotification 构造订单类通知
func orderNotification(userID int64, orderNo, title, content string) *model.Notification {
	return &model.Notification{
		UserID:  userID,
		Type:    model.NotifyTypeOrder,
		Title:   title,
		Content: content,
		BizRef:  orderNo,
	}
}
