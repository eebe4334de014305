package model

import (
	"context"
	"time"

	"guide-platform/common/constants"

	"gorm.io/gorm"
)

// Complaint 投诉记录实体
type Complaint struct {
	ID int64 `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	// 关联订单ID
	OrderID int64 `gorm:"index:idx_order;column:order_id;not null" json:"order_id"`
	// 投诉人ID
	CustomerID int64 `gorm:"index:idx_customer;column:customer_id;not null" json:"customer_id"`
	// 被投诉地陪ID（可为 0，表示投诉平台服务）
	GuideID int64 `gorm:"column:guide_id;not null;default:0" json:"guide_id"`
	// 投诉内容
	Content string `gorm:"column:content;size:1000;not null" json:"content"`
	// 处理状态：0-待处理 1-已解决 2-已关闭
	Status int64 `gorm:"index:idx_status;column:status;not null;default:0" json:"status"`
	// 处理结果说明
	Resolution string `gorm:"column:resolution;size:1000" json:"resolution"`
	// 处理人ID
	HandlerID int64 `gorm:"column:handler_id;not null;default:0" json:"handler_id"`
	// 处理时间
	HandledAt *time.Time `gorm:"column:handled_at" json:"handled_at"`
	// 创建时间
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	// 更新时间
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

// TableName 指定表名
func (Complaint) TableName() string {
	return "complaints"
}

// GetStatusName 获取投诉状态名称
func (c *Complaint) GetStatusName() string {
	return constants.GetComplaintStatusName(c.Status)
}

// IsOpen 是否待处理
func (c *Complaint) IsOpen() bool {
	return c.Status == constants.ComplaintStatusOpen
}

// IComplaintModel 投诉数据访问层接口
type IComplaintModel interface {
	// Create 创建投诉
	Create(ctx context.Context, complaint *Complaint) error
	// FindByID 根据ID查询
	FindByID(ctx context.Context, id int64) (*Complaint, error)
	// FindByOrderID 查询订单关联的投诉
	FindByOrderID(ctx context.Context, orderID int64) ([]*Complaint, error)
	// FindByStatus 根据状态查询列表（分页，status 为 -1 查全部）
	FindByStatus(ctx context.Context, status int64, page, pageSize int) ([]*Complaint, int64, error)
	// Resolve 处理投诉（仅待处理状态可处理）
	Resolve(ctx context.Context, id int64, status int64, resolution string, handlerID int64) (bool, error)
}

var _ IComplaintModel = (*ComplaintModel)(nil)

// ComplaintModel 投诉数据访问层
type ComplaintModel struct {
	db *gorm.DB
}

// NewComplaintModel 创建投诉Model实例
func NewComplaintModel(db *gorm.DB) IComplaintModel {
	return &ComplaintModel{db: db}
}

// Create 创建投诉
func (m *ComplaintModel) Create(ctx context.Context, complaint *Complaint) error {
	return m.db.WithContext(ctx).Create(complaint).Error
}

// FindByID 根据ID查询
func (m *ComplaintModel) FindByID(ctx context.Context, id int64) (*Complaint, error) {
	var complaint Complaint
	err := m.db.WithContext(ctx).First(&complaint, id).Error
	if err != nil {
		return nil, err
	}
	return &complaint, nil
}

// FindByOrderID 查询订单关联的投诉
func (m *ComplaintModel) FindByOrderID(ctx context.Context, orderID int64) ([]*Complaint, error) {
	var list []*Complaint
	err := m.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("created_at DESC").
		Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

// FindByStatus 根据状态查询列表
func (m *ComplaintModel) FindByStatus(
	ctx context.Context,
	status int64,
	page, pageSize int,
) ([]*Complaint, int64, error) {
	query := m.db.WithContext(ctx).Model(&Complaint{})
	if status >= 0 {
		query = query.Where("status = ?", status)
	}
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var list []*Complaint
	offset := (page - 1) * pageSize
	if err := query.Offset(offset).Limit(pageSize).Order("created_at DESC").Find(&list).Error; err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

// Resolve 处理投诉
// WHERE 带上待处理状态，防止重复处理
func (m *ComplaintModel) Resolve(
	ctx context.Context,
	id int64,
	status int64,
	resolution string,
	handlerID int64,
) (bool, error) {
	now := time.Now()
	result := m.db.WithContext(ctx).
		Model(&Complaint{}).
		Where("id = ? AND status = ?", id, constants.ComplaintStatusOpen).
		Updates(map[string]interface{}{
			"status":     status,
			"resolution": resolution,
			"handler_id": handlerID,
			"handled_at": &now,
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
