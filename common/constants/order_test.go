package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 全部声明状态，用于穷举检查
var allOrderStatuses = []OrderStatus{
	OrderStatusPending,
	OrderStatusConfirmed,
	OrderStatusInProgress,
	OrderStatusCompleted,
	OrderStatusCancelled,
	OrderStatusRefunded,
	OrderStatusRefundRejected,
}

func TestCanOrderTransition_DeclaredEdges(t *testing.T) {
	tests := []struct {
		name string
		from OrderStatus
		to   OrderStatus
		want bool
	}{
		{"下单后确认", OrderStatusPending, OrderStatusConfirmed, true},
		{"确认后收款开始服务", OrderStatusConfirmed, OrderStatusInProgress, true},
		{"服务完成", OrderStatusInProgress, OrderStatusCompleted, true},
		{"待接单直接取消", OrderStatusPending, OrderStatusCancelled, true},
		{"已确认直接取消", OrderStatusConfirmed, OrderStatusCancelled, true},
		{"服务中经退款申请取消", OrderStatusInProgress, OrderStatusCancelled, true},
		{"已完成经退款申请取消", OrderStatusCompleted, OrderStatusCancelled, true},
		{"退款通过", OrderStatusCancelled, OrderStatusRefunded, true},
		{"退款拒绝", OrderStatusCancelled, OrderStatusRefundRejected, true},
		{"退款被拒后重新申请", OrderStatusRefundRejected, OrderStatusCancelled, true},

		{"跳过确认直接服务", OrderStatusPending, OrderStatusInProgress, false},
		{"跳过收款直接完成", OrderStatusConfirmed, OrderStatusCompleted, false},
		{"已退款不再流转", OrderStatusRefunded, OrderStatusCancelled, false},
		{"取消后不能回到服务中", OrderStatusCancelled, OrderStatusInProgress, false},
		{"完成后不能回退", OrderStatusCompleted, OrderStatusInProgress, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanOrderTransition(tt.from, tt.to))
		})
	}
}

func TestCanOrderTransition_RefundedIsTerminal(t *testing.T) {
	// refunded 是唯一不再流转的终态
	for _, to := range allOrderStatuses {
		assert.False(t, CanOrderTransition(OrderStatusRefunded, to),
			"refunded 不应允许转换到 %s", to)
	}
	assert.True(t, IsOrderFinalStatus(OrderStatusRefunded))
	assert.False(t, IsOrderFinalStatus(OrderStatusCompleted))
}

func TestCanOrderTransition_UnknownStatus(t *testing.T) {
	assert.False(t, CanOrderTransition("unknown", OrderStatusConfirmed))
	assert.False(t, CanOrderTransition(OrderStatusPending, "unknown"))
}

func TestCanCancelDirect(t *testing.T) {
	// 付款前可以直接取消
	assert.True(t, CanCancelDirect(OrderStatusPending))
	assert.True(t, CanCancelDirect(OrderStatusConfirmed))

	// 已收款/已完成只能走退款申请
	assert.False(t, CanCancelDirect(OrderStatusInProgress))
	assert.False(t, CanCancelDirect(OrderStatusCompleted))
	assert.False(t, CanCancelDirect(OrderStatusCancelled))
	assert.False(t, CanCancelDirect(OrderStatusRefunded))
}

func TestCanRequestRefund(t *testing.T) {
	assert.True(t, CanRequestRefund(OrderStatusInProgress))
	assert.True(t, CanRequestRefund(OrderStatusCompleted))
	assert.True(t, CanRequestRefund(OrderStatusRefundRejected))

	// 未收款的订单没有退款可言
	assert.False(t, CanRequestRefund(OrderStatusPending))
	assert.False(t, CanRequestRefund(OrderStatusConfirmed))
	assert.False(t, CanRequestRefund(OrderStatusCancelled))
	assert.False(t, CanRequestRefund(OrderStatusRefunded))
}

func TestNormalizeOrderStatus(t *testing.T) {
	tests := []struct {
		raw    string
		want   OrderStatus
		wantOk bool
	}{
		{"pending", OrderStatusPending, true},
		{"in_progress", OrderStatusInProgress, true},
		{"PENDING", OrderStatusPending, true},
		{"IN_PROGRESS", OrderStatusInProgress, true},
		{"REFUND_REJECTED", OrderStatusRefundRejected, true},
		{"Completed", OrderStatusCompleted, true}, // 混合大小写按小写归一
		{"shipped", "shipped", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := NormalizeOrderStatus(tt.raw)
			assert.Equal(t, tt.wantOk, ok)
			if tt.wantOk {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestNormalizeOrderStatus_LegacyBehaviorIdentical(t *testing.T) {
	// 大写遗留词汇归一化后的转换行为与小写规范完全一致
	for legacy := range legacyOrderStatusMap {
		normalized, ok := NormalizeOrderStatus(legacy)
		require.True(t, ok, "遗留状态 %s 应可归一化", legacy)
		for _, to := range allOrderStatuses {
			assert.Equal(t,
				CanOrderTransition(legacyOrderStatusMap[legacy], to),
				CanOrderTransition(normalized, to),
				"legacy=%s to=%s", legacy, to)
		}
	}
}

func TestIsValidPaymentMethod(t *testing.T) {
	for _, m := range []string{PaymentMethodCash, PaymentMethodWechat, PaymentMethodAlipay, PaymentMethodBankTransfer} {
		assert.True(t, IsValidPaymentMethod(m))
	}
	assert.False(t, IsValidPaymentMethod("bitcoin"))
	assert.False(t, IsValidPaymentMethod(""))
}

func TestIsValidAssignPolicy(t *testing.T) {
	assert.True(t, IsValidAssignPolicy(AssignPolicyLowestLoad))
	assert.True(t, IsValidAssignPolicy(AssignPolicyRandom))
	assert.True(t, IsValidAssignPolicy(AssignPolicyFirstMatch))
	assert.False(t, IsValidAssignPolicy("round_robin"))
	assert.False(t, IsValidAssignPolicy(""))
}

func TestComplaintStatus(t *testing.T) {
	assert.Equal(t, "待处理", GetComplaintStatusName(ComplaintStatusOpen))
	assert.Equal(t, "未知状态", GetComplaintStatusName(99))

	assert.True(t, IsValidComplaintStatus(ComplaintStatusResolved))
	assert.True(t, IsValidComplaintStatus(ComplaintStatusClosed))
	assert.False(t, IsValidComplaintStatus(ComplaintStatusOpen))
}
