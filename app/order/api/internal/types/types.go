// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package types

// ==================== 订单创建 ====================

// CreateOrderReq 创建订单请求
type CreateOrderReq struct {
	ServiceType     string  `json:"serviceType" validate:"required"`
	StartTime       int64   `json:"startTime" validate:"required"` // Unix 秒
	DurationHours   int     `json:"durationHours" validate:"required,min=1"`
	City            string  `json:"city" validate:"required"`
	Area            string  `json:"area,optional"`
	Address         string  `json:"address,optional"`
	SpecialRequests string  `json:"specialRequests,optional"`
	DepositAmount   float64 `json:"depositAmount" validate:"required,gt=0"`
	TotalAmount     float64 `json:"totalAmount" validate:"required,gt=0"`
}

// CreateOrderResp 创建订单响应
type CreateOrderResp struct {
	OrderNo string `json:"orderNo"`
	Status  string `json:"status"`
}

// ==================== 订单详情/列表 ====================

// OrderInfo 订单信息
type OrderInfo struct {
	OrderNo         string  `json:"orderNo"`
	CustomerID      int64   `json:"customerId"`
	GuideID         int64   `json:"guideId"` // 0 表示未分配
	ServiceType     string  `json:"serviceType"`
	StartTime       int64   `json:"startTime"`
	DurationHours   int     `json:"durationHours"`
	City            string  `json:"city"`
	Area            string  `json:"area"`
	Address         string  `json:"address"`
	SpecialRequests string  `json:"specialRequests"`
	DepositAmount   float64 `json:"depositAmount"`
	TotalAmount     float64 `json:"totalAmount"`
	FinalAmount     float64 `json:"finalAmount"`
	PaidAmount      float64 `json:"paidAmount"`
	Status          string  `json:"status"`
	StatusName      string  `json:"statusName"`
	PaymentMethod   string  `json:"paymentMethod"`
	RefundAmount    float64 `json:"refundAmount"`
	CreatedAt       int64   `json:"createdAt"`
	CompletedAt     int64   `json:"completedAt"` // 0 表示未完成
}

// GetOrderReq 查询订单详情请求
type GetOrderReq struct {
	OrderNo string `path:"orderNo"`
}

// GetOrderResp 查询订单详情响应
type GetOrderResp struct {
	Order      OrderInfo       `json:"order"`
	StatusLogs []StatusLogInfo `json:"statusLogs"`
	Complaints []ComplaintInfo `json:"complaints"`
}

// StatusLogInfo 状态流转记录
type StatusLogInfo struct {
	FromStatus   string `json:"fromStatus"`
	ToStatus     string `json:"toStatus"`
	OperatorRole string `json:"operatorRole"`
	Remark       string `json:"remark"`
	CreatedAt    int64  `json:"createdAt"`
}

// ListOrderReq 订单列表请求（客户/地陪视角）
type ListOrderReq struct {
	Page     int `form:"page,default=1"`
	PageSize int `form:"pageSize,default=20"`
}

// ==================== 地陪选择与分配 ====================

// SelectGuideReq 客户选择地陪请求
type SelectGuideReq struct {
	OrderNo string `path:"orderNo"`
	GuideID int64  `json:"guideId" validate:"required,gt=0"`
}

// AssignGuideReq 管理员分配地陪请求
// guideId > 0 手动指定；guideId = 0 按策略自动派单
type AssignGuideReq struct {
	OrderNo string `path:"orderNo"`
	GuideID int64  `json:"guideId,optional"`
	Policy  string `json:"policy,optional"` // lowest_load | random | first_match
}

// AssignGuideResp 分配地陪响应
type AssignGuideResp struct {
	OrderNo string `json:"orderNo"`
	GuideID int64  `json:"guideId"`
	Status  string `json:"status"`
}

// ==================== 收款 ====================

// CollectPaymentReq 登记收款请求
type CollectPaymentReq struct {
	OrderNo       string  `path:"orderNo"`
	PaymentKind   string  `json:"paymentKind" validate:"required"`   // deposit | final
	PaymentMethod string  `json:"paymentMethod" validate:"required"` // cash | wechat | alipay | bank_transfer
	Amount        float64 `json:"amount" validate:"required,gt=0"`
	PaymentNotes  string  `json:"paymentNotes,optional"`
}

// CollectPaymentResp 登记收款响应
type CollectPaymentResp struct {
	OrderNo    string  `json:"orderNo"`
	Status     string  `json:"status"`
	PaidAmount float64 `json:"paidAmount"`
}

// ==================== 完成/取消/退款 ====================

// CompleteOrderReq 完成订单请求
type CompleteOrderReq struct {
	OrderNo string `path:"orderNo"`
}

// CancelOrderReq 取消订单请求（未收款前）
type CancelOrderReq struct {
	OrderNo string `path:"orderNo"`
	Reason  string `json:"reason,optional"`
}

// RequestRefundReq 退款申请请求
type RequestRefundReq struct {
	OrderNo       string `path:"orderNo"`
	RefundMethod  string `json:"refundMethod" validate:"required"` // wechat | alipay | bank_transfer
	RefundAccount string `json:"refundAccount" validate:"required"`
	Reason        string `json:"reason,optional"`
}

// ProcessRefundReq 管理员处理退款请求
type ProcessRefundReq struct {
	OrderNo      string  `path:"orderNo"`
	Approved     bool    `json:"approved"`
	RefundAmount float64 `json:"refundAmount,optional"` // 审批通过时必填，不得超过订单总额
	Reason       string  `json:"reason,optional"`
}

// ProcessRefundResp 处理退款响应
type ProcessRefundResp struct {
	OrderNo      string  `json:"orderNo"`
	Status       string  `json:"status"`
	RefundAmount float64 `json:"refundAmount"`
}

// ==================== 投诉 ====================

// CreateComplaintReq 提交投诉请求
type CreateComplaintReq struct {
	OrderNo string `path:"orderNo"`
	Content string `json:"content" validate:"required,min=5,max=1000"`
}

// ComplaintInfo 投诉信息
type ComplaintInfo struct {
	ID         int64  `json:"id"`
	OrderID    int64  `json:"orderId"`
	CustomerID int64  `json:"customerId"`
	GuideID    int64  `json:"guideId"`
	Content    string `json:"content"`
	Status     int64  `json:"status"`
	StatusName string `json:"statusName"`
	Resolution string `json:"resolution"`
	CreatedAt  int64  `json:"createdAt"`
}

// ListComplaintReq 投诉列表请求（管理员）
type ListComplaintReq struct {
	Status   int64 `form:"status,default=-1"` // -1 查全部
	Page     int   `form:"page,default=1"`
	PageSize int   `form:"pageSize,default=20"`
}

// ResolveComplaintReq 处理投诉请求
type ResolveComplaintReq struct {
	ID         int64  `path:"id"`
	Status     int64  `json:"status" validate:"required"` // 1-已处理 2-已关闭
	Resolution string `json:"resolution" validate:"required"`
}

// ==================== 管理员查询 ====================

// AdminListOrderReq 管理员订单列表请求
type AdminListOrderReq struct {
	Status   string `form:"status,optional"` // 为空查全部
	Page     int    `form:"page,default=1"`
	PageSize int    `form:"pageSize,default=20"`
}

// FinanceSummaryReq 财务汇总请求
type FinanceSummaryReq struct {
	BeginTime int64 `form:"beginTime"` // Unix 秒，0 表示不限
	EndTime   int64 `form:"endTime"`   // Unix 秒，0 表示当前时间
}

// FinanceSummaryResp 财务汇总响应
type FinanceSummaryResp struct {
	OrderCount     int64   `json:"orderCount"`
	PaidTotal      float64 `json:"paidTotal"`
	RefundedTotal  float64 `json:"refundedTotal"`
	CompletedCount int64   `json:"completedCount"`
	RefundedCount  int64   `json:"refundedCount"`
}
