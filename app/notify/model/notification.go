/**
 * @projectName: GuidePlatform
 * @package: model
 * @className: Notification
 * @description: 站内通知实体及数据访问层
 * @version: 1.0
 */

package model

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// 通知类型
const (
	NotifyTypeOrder       = "order"       // 订单相关
	NotifyTypeApplication = "application" // 入驻申请相关
)

// 已读状态
const (
	NotifyUnread = 0 // 未读
	NotifyRead   = 1 // 已读
)

// Notification 站内通知实体
// 由 Notify 消费者服务根据 MQ 事件写入
type Notification struct {
	ID int64 `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	// 接收用户ID
	UserID int64 `gorm:"index:idx_user;column:user_id;not null" json:"user_id"`
	// 通知类型：order/application
	Type string `gorm:"column:type;size:20;not null" json:"type"`
	// 标题
	Title string `gorm:"column:title;size:100;not null" json:"title"`
	// 内容
	Content string `gorm:"column:content;size:500" json:"content"`
	// 关联业务标识（订单号/申请ID）
	BizRef string `gorm:"column:biz_ref;size:64" json:"biz_ref"`
	// 已读状态：0-未读 1-已读
	ReadStatus int `gorm:"column:read_status;not null;default:0" json:"read_status"`
	// 创建时间
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

// TableName 指定表名
func (Notification) TableName() string {
	return "notifications"
}

// INotificationModel 通知数据访问层接口
type INotificationModel interface {
	// Create 写入通知
	Create(ctx context.Context, n *Notification) error
	// FindByUserID 查询用户通知（按时间倒序，分页）
	FindByUserID(ctx context.Context, userID int64, page, pageSize int) ([]*Notification, int64, error)
	// MarkAsRead 标记已读
	MarkAsRead(ctx context.Context, userID, id int64) error
	// CountUnread 统计未读数
	CountUnread(ctx context.Context, userID int64) (int64, error)
}

var _ INotificationModel = (*NotificationModel)(nil)

// NotificationModel 通知数据访问层
type NotificationModel struct {
	db *gorm.DB
}

// NewNotificationModel 创建通知Model实例
func NewNotificationModel(db *gorm.DB) INotificationModel {
	return &NotificationModel{db: db}
}

// Create 写入通知
func (m *NotificationModel) Create(ctx context.Context, n *Notification) error {
	return m.db.WithContext(ctx).Create(n).Error
}

// FindByUserID 查询用户通知
func (m *NotificationModel) FindByUserID(
	ctx context.Context,
	userID int64,
	page, pageSize int,
) ([]*Notification, int64, error) {
	query := m.db.WithContext(ctx).Model(&Notification{}).Where("user_id = ?", userID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var list []*Notification
	offset := (page - 1) * pageSize
	if err := query.Offset(offset).Limit(pageSize).Order("created_at DESC").Find(&list).Error; err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

// MarkAsRead 标记已读（限定本人通知）
func (m *NotificationModel) MarkAsRead(ctx context.Context, userID, id int64) error {
	return m.db.WithContext(ctx).
		Model(&Notification{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("read_status", NotifyRead).Error
}

// CountUnread 统计未读数
func (m *NotificationModel) CountUnread(ctx context.Context, userID int64) (int64, error) {
	var count int64
	err := m.db.WithContext(ctx).
		Model(&Notification{}).
		Where("user_id = ? AND read_status = ?", userID, NotifyUnread).
		Count(&count).Error
	return count, err
}
