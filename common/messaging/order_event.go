/**
 * @projectName: GuidePlatform
 * @package: messaging
 * @className: order_event
 * @description: 订单事件数据定义
 * @version: 1.0
 */

package messaging

// OrderCreatedEvent 订单创建事件
// 消息来源: Order 服务；消费者: Notify 服务
type OrderCreatedEvent struct {
	OrderNo     string `json:"order_no"`
	CustomerID  int64  `json:"customer_id"`
	ServiceType string `json:"service_type"`
	City        string `json:"city"`
	Timestamp   int64  `json:"timestamp"`
}

// GuideAssignedEvent 地陪分配事件
type GuideAssignedEvent struct {
	OrderNo    string `json:"order_no"`
	CustomerID int64  `json:"customer_id"`
	GuideID    int64  `json:"guide_id"`
	AutoAssign bool   `json:"auto_assign"`
	Timestamp  int64  `json:"timestamp"`
}

// PaymentCollectedEvent 收款事件
type PaymentCollectedEvent struct {
	OrderNo       string  `json:"order_no"`
	CustomerID    int64   `json:"customer_id"`
	PaymentKind   string  `json:"payment_kind"`   // deposit | final
	PaymentMethod string  `json:"payment_method"` // cash | wechat | alipay | bank_transfer
	Amount        float64 `json:"amount"`
	Timestamp     int64   `json:"timestamp"`
}

// OrderCompletedEvent 订单完成事件
type OrderCompletedEvent struct {
	OrderNo    string `json:"order_no"`
	CustomerID int64  `json:"customer_id"`
	GuideID    int64  `json:"guide_id"`
	Timestamp  int64  `json:"timestamp"`
}

// OrderCancelledEvent 订单取消事件
type OrderCancelledEvent struct {
	OrderNo    string `json:"order_no"`
	CustomerID int64  `json:"customer_id"`
	Reason     string `json:"reason"`
	ByRefund   bool   `json:"by_refund"` // 是否因退款申请取消
	Timestamp  int64  `json:"timestamp"`
}

// RefundRequestedEvent 退款申请事件
type RefundRequestedEvent struct {
	OrderNo      string `json:"order_no"`
	CustomerID   int64  `json:"customer_id"`
	RefundMethod string `json:"refund_method"`
	Timestamp    int64  `json:"timestamp"`
}

// RefundProcessedEvent 退款处理结果事件
type RefundProcessedEvent struct {
	OrderNo      string  `json:"order_no"`
	CustomerID   int64   `json:"customer_id"`
	Approved     bool    `json:"approved"`
	RefundAmount float64 `json:"refund_amount"`
	Reason       string  `json:"reason"`
	Timestamp    int64   `json:"timestamp"`
}
