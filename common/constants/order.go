// ============================================================================
// 订单状态机
// ============================================================================
//
// 状态流转图：
//   pending(待接单) -> confirmed(已确认) -> in_progress(服务中) -> completed(已完成)
//   pending/confirmed -> cancelled(已取消)           [付款前可直接取消]
//   in_progress/completed -> cancelled               [仅通过退款申请]
//   cancelled -> refunded(已退款) | refund_rejected(退款被拒)
//   refund_rejected -> cancelled                     [重新提交退款申请]
//
// 历史遗留：早期客户端使用大写状态词汇（PENDING/CONFIRMED/...），
// 与小写规范词汇一一对应。内部统一使用小写，大写仅在边界处归一化。
//
// ============================================================================

package constants

import "strings"

// OrderStatus 订单状态（规范小写形式）
type OrderStatus string

const (
	// OrderStatusPending 已创建，未分配地陪
	OrderStatusPending OrderStatus = "pending"
	// OrderStatusConfirmed 已分配地陪，等待收取定金
	OrderStatusConfirmed OrderStatus = "confirmed"
	// OrderStatusInProgress 已收款，服务进行中
	OrderStatusInProgress OrderStatus = "in_progress"
	// OrderStatusCompleted 已完成（成功终态）
	OrderStatusCompleted OrderStatus = "completed"
	// OrderStatusCancelled 已取消（退款申请的中间停靠状态）
	OrderStatusCancelled OrderStatus = "cancelled"
	// OrderStatusRefunded 已退款（终态）
	OrderStatusRefunded OrderStatus = "refunded"
	// OrderStatusRefundRejected 退款被拒（可重新提交退款申请）
	OrderStatusRefundRejected OrderStatus = "refund_rejected"
)

// OrderStatusNameMap 状态名称映射（用于展示）
var OrderStatusNameMap = map[OrderStatus]string{
	OrderStatusPending:        "待接单",
	OrderStatusConfirmed:      "已确认",
	OrderStatusInProgress:     "服务中",
	OrderStatusCompleted:      "已完成",
	OrderStatusCancelled:      "已取消",
	OrderStatusRefunded:       "已退款",
	OrderStatusRefundRejected: "退款被拒",
}

// GetOrderStatusName 获取状态名称
func GetOrderStatusName(status OrderStatus) string {
	if name, ok := OrderStatusNameMap[status]; ok {
		return name
	}
	return "未知状态"
}

// legacyOrderStatusMap 大写遗留词汇 -> 规范小写词汇（一一对应）
var legacyOrderStatusMap = map[string]OrderStatus{
	"PENDING":         OrderStatusPending,
	"CONFIRMED":       OrderStatusConfirmed,
	"IN_PROGRESS":     OrderStatusInProgress,
	"COMPLETED":       OrderStatusCompleted,
	"CANCELLED":       OrderStatusCancelled,
	"REFUNDED":        OrderStatusRefunded,
	"REFUND_REJECTED": OrderStatusRefundRejected,
}

// NormalizeOrderStatus 将边界输入归一化为规范小写状态
// 返回: 规范状态, 是否为已声明的合法状态
func NormalizeOrderStatus(raw string) (OrderStatus, bool) {
	if status, ok := legacyOrderStatusMap[raw]; ok {
		return status, true
	}
	status := OrderStatus(strings.ToLower(raw))
	_, ok := OrderStatusNameMap[status]
	return status, ok
}

// OrderStatusTransitions 订单状态合法转换
// key: 当前状态, value: 可转换的目标状态列表
var OrderStatusTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:        {OrderStatusConfirmed, OrderStatusCancelled},
	OrderStatusConfirmed:      {OrderStatusInProgress, OrderStatusCancelled},
	OrderStatusInProgress:     {OrderStatusCompleted, OrderStatusCancelled},
	OrderStatusCompleted:      {OrderStatusCancelled},
	OrderStatusCancelled:      {OrderStatusRefunded, OrderStatusRefundRejected},
	OrderStatusRefundRejected: {OrderStatusCancelled},
}

// CanOrderTransition 检查状态转换是否合法
func CanOrderTransition(from, to OrderStatus) bool {
	allowedStates, ok := OrderStatusTransitions[from]
	if !ok {
		return false
	}
	for _, s := range allowedStates {
		if s == to {
			return true
		}
	}
	return false
}

// CanCancelDirectStatuses 可以直接取消的状态集合（未收款）
// in_progress/completed 只能走退款申请，不能直接取消
var CanCancelDirectStatuses = []OrderStatus{
	OrderStatusPending,
	OrderStatusConfirmed,
}

// CanRequestRefundStatuses 可以提交退款申请的状态集合（已收款）
var CanRequestRefundStatuses = []OrderStatus{
	OrderStatusInProgress,
	OrderStatusCompleted,
	OrderStatusRefundRejected,
}

// IsOrderInStatuses 检查状态是否在指定集合中
func IsOrderInStatuses(status OrderStatus, statuses []OrderStatus) bool {
	for _, s := range statuses {
		if status == s {
			return true
		}
	}
	return false
}

// CanCancelDirect 检查是否可以直接取消
func CanCancelDirect(status OrderStatus) bool {
	return IsOrderInStatuses(status, CanCancelDirectStatuses)
}

// CanRequestRefund 检查是否可以提交退款申请
func CanRequestRefund(status OrderStatus) bool {
	return IsOrderInStatuses(status, CanRequestRefundStatuses)
}

// IsOrderFinalStatus 检查是否为不再流转的终态
// completed 虽为成功终态，但仍可发起退款申请，因此不计入
func IsOrderFinalStatus(status OrderStatus) bool {
	return status == OrderStatusRefunded
}

// ==================== 支付方式 ====================

const (
	PaymentMethodCash         = "cash"          // 现金
	PaymentMethodWechat       = "wechat"        // 微信
	PaymentMethodAlipay       = "alipay"        // 支付宝
	PaymentMethodBankTransfer = "bank_transfer" // 银行转账
)

// PaymentMethodNameMap 支付方式名称映射
var PaymentMethodNameMap = map[string]string{
	PaymentMethodCash:         "现金",
	PaymentMethodWechat:       "微信",
	PaymentMethodAlipay:       "支付宝",
	PaymentMethodBankTransfer: "银行转账",
}

// IsValidPaymentMethod 检查支付方式是否合法
func IsValidPaymentMethod(method string) bool {
	_, ok := PaymentMethodNameMap[method]
	return ok
}

// ==================== 收款类型 ====================

const (
	PaymentKindDeposit = "deposit" // 定金（确认订单）
	PaymentKindFinal   = "final"   // 尾款（线下当面收取）
)

// ==================== 自动派单策略 ====================

const (
	// AssignPolicyLowestLoad 选择当前进行中订单最少的地陪（默认）
	AssignPolicyLowestLoad = "lowest_load"
	// AssignPolicyRandom 在候选集中随机选择
	AssignPolicyRandom = "random"
	// AssignPolicyFirstMatch 选择候选集中第一个（按注册时间）
	AssignPolicyFirstMatch = "first_match"
)

// IsValidAssignPolicy 检查派单策略是否合法
func IsValidAssignPolicy(policy string) bool {
	switch policy {
	case AssignPolicyLowestLoad, AssignPolicyRandom, AssignPolicyFirstMatch:
		return true
	}
	return false
}

// ==================== 投诉状态 ====================

const (
	ComplaintStatusOpen     = 0 // 待处理
	ComplaintStatusResolved = 1 // 已处理
	ComplaintStatusClosed   = 2 // 已关闭
)

// ComplaintStatusNameMap 投诉状态映射
var ComplaintStatusNameMap = map[int64]string{
	ComplaintStatusOpen:     "待处理",
	ComplaintStatusResolved: "已处理",
	ComplaintStatusClosed:   "已关闭",
}

// GetComplaintStatusName 获取投诉状态名称
func GetComplaintStatusName(status int64) string {
	if name, ok := ComplaintStatusNameMap[status]; ok {
		return name
	}
	return "未知状态"
}

// IsValidComplaintStatus 检查投诉处理结果状态是否合法
func IsValidComplaintStatus(status int64) bool {
	return status == ComplaintStatusResolved || status == ComplaintStatusClosed
}
