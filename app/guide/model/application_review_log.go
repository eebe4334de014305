package model

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// ApplicationReviewLog 申请审核操作日志
// 每次审核动作（含机器评分）追加一条记录，构成申请的审核历史
type ApplicationReviewLog struct {
	ID int64 `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	// 申请ID
	ApplicationID int64 `gorm:"index:idx_application;column:application_id;not null" json:"application_id"`
	// 审核人ID（0 表示系统评分）
	ReviewerID int64 `gorm:"column:reviewer_id;not null;default:0" json:"reviewer_id"`
	// 操作类型：auto_review/approve/reject/need_more_info
	Operation string `gorm:"column:operation;size:20;not null" json:"operation"`
	// 变更前状态
	FromStatus string `gorm:"column:from_status;size:20" json:"from_status"`
	// 变更后状态
	ToStatus string `gorm:"column:to_status;size:20" json:"to_status"`
	// 机器评分得分（仅 auto_review）
	Score int `gorm:"column:score;not null;default:0" json:"score"`
	// 机器评分满分（仅 auto_review）
	MaxScore int `gorm:"column:max_score;not null;default:0" json:"max_score"`
	// 审核意见
	Comment string `gorm:"column:comment;size:1000" json:"comment"`
	// 创建时间
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

// TableName 指定表名
func (ApplicationReviewLog) TableName() string {
	return "application_review_logs"
}

// IApplicationReviewLogModel 审核日志数据访问层接口
type IApplicationReviewLogModel interface {
	// Create 追加一条审核记录
	Create(ctx context.Context, log *ApplicationReviewLog) error
	// FindByApplicationID 查询申请的审核历史（按时间升序）
	FindByApplicationID(ctx context.Context, applicationID int64) ([]*ApplicationReviewLog, error)
}

var _ IApplicationReviewLogModel = (*ApplicationReviewLogModel)(nil)

// ApplicationReviewLogModel 审核日志数据访问层
type ApplicationReviewLogModel struct {
	db *gorm.DB
}

// NewApplicationReviewLogModel 创建审核日志Model实例
func NewApplicationReviewLogModel(db *gorm.DB) IApplicationReviewLogModel {
	return &ApplicationReviewLogModel{db: db}
}

// Create 追加一条审核记录
func (m *ApplicationReviewLogModel) Create(ctx context.Context, log *ApplicationReviewLog) error {
	return m.db.WithContext(ctx).Create(log).Error
}

// FindByApplicationID 查询申请的审核历史
func (m *ApplicationReviewLogModel) FindByApplicationID(
	ctx context.Context,
	applicationID int64,
) ([]*ApplicationReviewLog, error) {
	var logs []*ApplicationReviewLog
	err := m.db.WithContext(ctx).
		Where("application_id = ?", applicationID).
		Order("created_at ASC").
		Find(&logs).Error
	if err != nil {
		return nil, err
	}
	return logs, nil
}
