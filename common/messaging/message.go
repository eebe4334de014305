/**
 * @projectName: GuidePlatform
 * @package: messaging
 * @className: message
 * @description: 通用消息格式与 Topic 定义
 * @version: 1.0
 *
 * 本文件定义了服务间消息通信的通用格式和类型常量。
 * 所有通过消息队列通信的服务都应使用这些定义。
 */

package messaging

// ==================== Topic 常量 ====================

const (
	// TopicOrderEvent 订单事件（通知服务消费）
	TopicOrderEvent = "order:events"

	// TopicApplicationEvent 地陪申请事件（通知服务、OCR 消费）
	TopicApplicationEvent = "application:events"
)

// ==================== 消息类型常量 ====================
// 用于消息路由，区分不同业务的处理器

const (
	// MsgTypeOrderCreated 订单创建
	MsgTypeOrderCreated = "order_created"
	// MsgTypeGuideAssigned 地陪已分配
	MsgTypeGuideAssigned = "guide_assigned"
	// MsgTypePaymentCollected 收款完成
	MsgTypePaymentCollected = "payment_collected"
	// MsgTypeOrderCompleted 订单完成
	MsgTypeOrderCompleted = "order_completed"
	// MsgTypeOrderCancelled 订单取消
	MsgTypeOrderCancelled = "order_cancelled"
	// MsgTypeRefundRequested 退款申请
	MsgTypeRefundRequested = "refund_requested"
	// MsgTypeRefundProcessed 退款处理结果
	MsgTypeRefundProcessed = "refund_processed"

	// MsgTypeApplicationSubmitted 地陪申请提交（触发 OCR 辅助识别）
	MsgTypeApplicationSubmitted = "application_submitted"
	// MsgTypeApplicationReviewed 地陪申请审核结果
	MsgTypeApplicationReviewed = "application_reviewed"
)

// ==================== 通用消息结构 ====================

// RawMessage 通用消息格式
// 所有服务发送消息时应使用此格式，便于消费者路由分发
//
// 消息示例:
//
//	{
//	  "type": "order_created",
//	  "data": "{\"order_no\":\"GD20260829...\",\"customer_id\":456}"
//	}
type RawMessage struct {
	// Type 消息类型，用于路由到不同处理器
	Type string `json:"type"`

	// Data 消息数据（JSON 字符串），具体格式由 Type 决定
	Data string `json:"data"`
}

// NewRawMessage 创建通用消息
func NewRawMessage(msgType string, data string) *RawMessage {
	return &RawMessage{
		Type: msgType,
		Data: data,
	}
}
