package model

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// OrderStatusLog 订单状态流转日志
// 每次状态变更追加一条记录，用于审计与排查
type OrderStatusLog struct {
	ID int64 `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	// 订单ID
	OrderID int64 `gorm:"index:idx_order;column:order_id;not null" json:"order_id"`
	// 变更前状态（创建时为空）
	FromStatus string `gorm:"column:from_status;size:20" json:"from_status"`
	// 变更后状态
	ToStatus string `gorm:"column:to_status;size:20;not null" json:"to_status"`
	// 操作人ID（0 表示系统）
	OperatorID int64 `gorm:"column:operator_id;not null;default:0" json:"operator_id"`
	// 操作人角色：customer/guide/admin/system
	OperatorRole string `gorm:"column:operator_role;size:20" json:"operator_role"`
	// 备注（取消原因、退款原因等）
	Remark string `gorm:"column:remark;size:500" json:"remark"`
	// 创建时间
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

// TableName 指定表名
func (OrderStatusLog) TableName() string {
	return "order_status_logs"
}

// IOrderStatusLogModel 订单状态日志数据访问层接口
type IOrderStatusLogModel interface {
	// Create 追加一条状态流转记录
	Create(ctx context.Context, log *OrderStatusLog) error
	// FindByOrderID 查询订单的状态流转历史（按时间升序）
	FindByOrderID(ctx context.Context, orderID int64) ([]*OrderStatusLog, error)
}

var _ IOrderStatusLogModel = (*OrderStatusLogModel)(nil)

// OrderStatusLogModel 订单状态日志数据访问层
type OrderStatusLogModel struct {
	db *gorm.DB
}

// NewOrderStatusLogModel 创建状态日志Model实例
func NewOrderStatusLogModel(db *gorm.DB) IOrderStatusLogModel {
	return &OrderStatusLogModel{db: db}
}

// Create 追加一条状态流转记录
func (m *OrderStatusLogModel) Create(ctx context.Context, log *OrderStatusLog) error {
	return m.db.WithContext(ctx).Create(log).Error
}

// FindByOrderID 查询订单的状态流转历史
func (m *OrderStatusLogModel) FindByOrderID(ctx context.Context, orderID int64) ([]*OrderStatusLog, error) {
	var logs []*OrderStatusLog
	err := m.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("created_at ASC").
		Find(&logs).Error
	if err != nil {
		return nil, err
	}
	return logs, nil
}
