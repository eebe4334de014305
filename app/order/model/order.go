/**
 * @projectName: GuidePlatform
 * @package: model
 * @className: Order
 * @description: 订单实体及数据访问层
 * @version: 1.0
 */

package model

import (
	"context"
	"database/sql"
	"time"

	"guide-platform/common/constants"

	"gorm.io/gorm"
)

// Order 订单实体
type Order struct {
	// ==================== 基础字段 ====================

	// 主键ID（数据库自增）
	ID int64 `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	// 订单号（对外展示的不透明标识）
	OrderNo string `gorm:"uniqueIndex:uk_order_no;column:order_no;size:64;not null" json:"order_no"`
	// 客户ID
	CustomerID int64 `gorm:"index:idx_customer;column:customer_id;not null" json:"customer_id"`

	// ==================== 需求字段 ====================

	// 服务类型（陪游/陪展/接机等）
	ServiceType string `gorm:"column:service_type;size:50;not null" json:"service_type"`
	// 服务开始时间
	StartTime time.Time `gorm:"column:start_time;not null" json:"start_time"`
	// 服务时长（小时）
	DurationHours int `gorm:"column:duration_hours;not null" json:"duration_hours"`
	// 服务城市
	City string `gorm:"index:idx_city;column:city;size:50;not null" json:"city"`
	// 服务区域
	Area string `gorm:"column:area;size:100" json:"area"`
	// 集合地址
	Address string `gorm:"column:address;size:255" json:"address"`
	// 特殊要求
	SpecialRequests string `gorm:"column:special_requests;size:500" json:"special_requests"`

	// ==================== 金额字段 ====================

	// 定金金额
	DepositAmount float64 `gorm:"column:deposit_amount;type:decimal(10,2);not null;default:0" json:"deposit_amount"`
	// 订单总额
	TotalAmount float64 `gorm:"column:total_amount;type:decimal(10,2);not null;default:0" json:"total_amount"`
	// 尾款金额
	FinalAmount float64 `gorm:"column:final_amount;type:decimal(10,2);not null;default:0" json:"final_amount"`

	// ==================== 状态机字段 ====================

	// 地陪ID（未分配时为空；一单至多一个地陪）
	GuideID sql.NullInt64 `gorm:"index:idx_guide;column:guide_id" json:"guide_id"`
	// 订单状态：pending/confirmed/in_progress/completed/cancelled/refunded/refund_rejected
	Status string `gorm:"index:idx_status;column:status;size:20;not null;default:'pending'" json:"status"`

	// ==================== 收款字段 ====================

	// 支付方式：cash/wechat/alipay/bank_transfer
	PaymentMethod string `gorm:"column:payment_method;size:20" json:"payment_method"`
	// 收款备注（线下收款凭证说明）
	PaymentNotes string `gorm:"column:payment_notes;size:500" json:"payment_notes"`
	// 已收款总额
	PaidAmount float64 `gorm:"column:paid_amount;type:decimal(10,2);not null;default:0" json:"paid_amount"`

	// ==================== 退款字段 ====================

	// 退款方式
	RefundMethod string `gorm:"column:refund_method;size:20" json:"refund_method"`
	// 退款收款账户信息
	RefundAccount string `gorm:"column:refund_account;size:255" json:"refund_account"`
	// 退款原因
	RefundReason string `gorm:"column:refund_reason;size:500" json:"refund_reason"`
	// 实际退款金额
	RefundAmount float64 `gorm:"column:refund_amount;type:decimal(10,2);not null;default:0" json:"refund_amount"`
	// 退款申请时间
	RefundRequestedAt *time.Time `gorm:"column:refund_requested_at" json:"refund_requested_at"`
	// 退款处理时间
	RefundProcessedAt *time.Time `gorm:"column:refund_processed_at" json:"refund_processed_at"`

	// ==================== 时间字段 ====================

	// 收款时间（首次收到定金）
	PaymentCollectedAt *time.Time `gorm:"column:payment_collected_at" json:"payment_collected_at"`
	// 完成时间
	CompletedAt *time.Time `gorm:"column:completed_at" json:"completed_at"`
	// 取消时间
	CancelledAt *time.Time `gorm:"column:cancelled_at" json:"cancelled_at"`
	// 创建时间
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	// 更新时间
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

// TableName 指定表名
func (Order) TableName() string {
	return "orders"
}

// ==================== 实体辅助方法 ====================

// GetStatus 获取规范化状态
func (o *Order) GetStatus() constants.OrderStatus {
	status, _ := constants.NormalizeOrderStatus(o.Status)
	return status
}

// GetStatusName 获取状态名称
func (o *Order) GetStatusName() string {
	return constants.GetOrderStatusName(o.GetStatus())
}

// HasGuide 是否已分配地陪
func (o *Order) HasGuide() bool {
	return o.GuideID.Valid && o.GuideID.Int64 > 0
}

// HasPayment 是否已收款
func (o *Order) HasPayment() bool {
	return o.PaidAmount > 0 && o.PaymentCollectedAt != nil
}

// HasPendingRefund 是否有待处理的退款申请
func (o *Order) HasPendingRefund() bool {
	return o.GetStatus() == constants.OrderStatusCancelled &&
		o.RefundRequestedAt != nil && o.RefundProcessedAt == nil
}

// ============================================================================
// 数据访问层接口定义
// ============================================================================

// FinanceSummary 财务对账汇总
type FinanceSummary struct {
	// 订单总数
	OrderCount int64 `json:"order_count"`
	// 已收款总额
	PaidTotal float64 `json:"paid_total"`
	// 已退款总额
	RefundedTotal float64 `json:"refunded_total"`
	// 已完成订单数
	CompletedCount int64 `json:"completed_count"`
	// 退款订单数
	RefundedCount int64 `json:"refunded_count"`
}

// IOrderModel 订单数据访问层接口
type IOrderModel interface {
	// ==================== 基础 CRUD ====================

	// Create 创建订单
	Create(ctx context.Context, order *Order) error
	// FindByID 根据主键ID查询
	FindByID(ctx context.Context, id int64) (*Order, error)
	// FindByOrderNo 根据订单号查询
	FindByOrderNo(ctx context.Context, orderNo string) (*Order, error)
	// Update 更新订单
	Update(ctx context.Context, order *Order) error

	// ==================== 状态更新 ====================

	// UpdateStatusGuarded 带状态前置条件的更新（防并发状态覆盖）
	// 仅当数据库中的当前状态等于 fromStatus 时更新；否则返回 (false, nil)
	UpdateStatusGuarded(ctx context.Context, id int64, fromStatus, toStatus constants.OrderStatus, updates map[string]interface{}) (bool, error)
	// AssignGuide 分配地陪（仅当尚未分配时生效）
	// 返回: 是否成功分配（false 表示已有地陪）
	AssignGuide(ctx context.Context, id int64, guideID int64) (bool, error)

	// ==================== 查询列表 ====================

	// FindByCustomerID 查询客户的订单（分页）
	FindByCustomerID(ctx context.Context, customerID int64, page, pageSize int) ([]*Order, int64, error)
	// FindByGuideID 查询地陪的订单（分页）
	FindByGuideID(ctx context.Context, guideID int64, page, pageSize int) ([]*Order, int64, error)
	// FindByStatus 根据状态查询列表（分页，status 为空查全部）
	FindByStatus(ctx context.Context, status constants.OrderStatus, page, pageSize int) ([]*Order, int64, error)
	// CountActiveByGuide 统计地陪进行中的订单数（confirmed/in_progress）
	CountActiveByGuide(ctx context.Context, guideID int64) (int64, error)

	// ==================== 财务对账 ====================

	// SummarizeFinance 按时间区间汇总财务数据
	SummarizeFinance(ctx context.Context, begin, end time.Time) (*FinanceSummary, error)
}

// ============================================================================
// 数据访问层实现
// ============================================================================

// 确保 OrderModel 实现 IOrderModel 接口
var _ IOrderModel = (*OrderModel)(nil)

// OrderModel 订单数据访问层
type OrderModel struct {
	db *gorm.DB
}

// NewOrderModel 创建订单Model实例
func NewOrderModel(db *gorm.DB) IOrderModel {
	return &OrderModel{db: db}
}

// ==================== 基础 CRUD ====================

// Create 创建订单
func (m *OrderModel) Create(ctx context.Context, order *Order) error {
	return m.db.WithContext(ctx).Create(order).Error
}

// FindByID 根据主键ID查询
func (m *OrderModel) FindByID(ctx context.Context, id int64) (*Order, error) {
	var order Order
	err := m.db.WithContext(ctx).First(&order, id).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// FindByOrderNo 根据订单号查询
func (m *OrderModel) FindByOrderNo(ctx context.Context, orderNo string) (*Order, error) {
	var order Order
	err := m.db.WithContext(ctx).Where("order_no = ?", orderNo).First(&order).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// Update 更新订单
func (m *OrderModel) Update(ctx context.Context, order *Order) error {
	return m.db.WithContext(ctx).Save(order).Error
}

// ==================== 状态更新 ====================

// UpdateStatusGuarded 带状态前置条件的更新
// WHERE 条件带上当前状态，并发请求只有一个能成功流转
func (m *OrderModel) UpdateStatusGuarded(
	ctx context.Context,
	id int64,
	fromStatus, toStatus constants.OrderStatus,
	updates map[string]interface{},
) (bool, error) {
	if updates == nil {
		updates = make(map[string]interface{})
	}
	updates["status"] = string(toStatus)
	result := m.db.WithContext(ctx).
		Model(&Order{}).
		Where("id = ? AND status = ?", id, string(fromStatus)).
		Updates(updates)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// AssignGuide 分配地陪（仅当尚未分配时生效）
func (m *OrderModel) AssignGuide(ctx context.Context, id int64, guideID int64) (bool, error) {
	result := m.db.WithContext(ctx).
		Model(&Order{}).
		Where("id = ? AND guide_id IS NULL", id).
		Update("guide_id", guideID)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// ==================== 查询列表 ====================

// FindByCustomerID 查询客户的订单（分页）
func (m *OrderModel) FindByCustomerID(
	ctx context.Context,
	customerID int64,
	page, pageSize int,
) ([]*Order, int64, error) {
	return m.findPage(ctx, m.db.WithContext(ctx).
		Model(&Order{}).
		Where("customer_id = ?", customerID), page, pageSize)
}

// FindByGuideID 查询地陪的订单（分页）
func (m *OrderModel) FindByGuideID(
	ctx context.Context,
	guideID int64,
	page, pageSize int,
) ([]*Order, int64, error) {
	return m.findPage(ctx, m.db.WithContext(ctx).
		Model(&Order{}).
		Where("guide_id = ?", guideID), page, pageSize)
}

// FindByStatus 根据状态查询列表（分页，status 为空查全部）
func (m *OrderModel) FindByStatus(
	ctx context.Context,
	status constants.OrderStatus,
	page, pageSize int,
) ([]*Order, int64, error) {
	query := m.db.WithContext(ctx).Model(&Order{})
	if status != "" {
		query = query.Where("status = ?", string(status))
	}
	return m.findPage(ctx, query, page, pageSize)
}

// CountActiveByGuide 统计地陪进行中的订单数
func (m *OrderModel) CountActiveByGuide(ctx context.Context, guideID int64) (int64, error) {
	var count int64
	err := m.db.WithContext(ctx).
		Model(&Order{}).
		Where("guide_id = ? AND status IN ?", guideID, []string{
			string(constants.OrderStatusConfirmed),
			string(constants.OrderStatusInProgress),
		}).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

// findPage 分页查询公共逻辑
func (m *OrderModel) findPage(
	ctx context.Context,
	query *gorm.DB,
	page, pageSize int,
) ([]*Order, int64, error) {
	var list []*Order
	var total int64
	// 统计总数
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	// 分页查询
	offset := (page - 1) * pageSize
	if err := query.Offset(offset).Limit(pageSize).Order("created_at DESC").Find(&list).Error; err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

// ==================== 财务对账 ====================

// SummarizeFinance 按时间区间汇总财务数据
func (m *OrderModel) SummarizeFinance(
	ctx context.Context,
	begin, end time.Time,
) (*FinanceSummary, error) {
	var summary FinanceSummary
	base := m.db.WithContext(ctx).
		Model(&Order{}).
		Where("created_at >= ? AND created_at < ?", begin, end)

	if err := base.Session(&gorm.Session{}).Count(&summary.OrderCount).Error; err != nil {
		return nil, err
	}

	row := base.Session(&gorm.Session{}).
		Select("COALESCE(SUM(paid_amount), 0), COALESCE(SUM(refund_amount), 0)").
		Row()
	if err := row.Scan(&summary.PaidTotal, &summary.RefundedTotal); err != nil {
		return nil, err
	}

	if err := base.Session(&gorm.Session{}).
		Where("status = ?", string(constants.OrderStatusCompleted)).
		Count(&summary.CompletedCount).Error; err != nil {
		return nil, err
	}

	if err := base.Session(&gorm.Session{}).
		Where("status = ?", string(constants.OrderStatusRefunded)).
		Count(&summary.RefundedCount).Error; err != nil {
		return nil, err
	}

	return &summary, nil
}
