package model

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// ReviewCriterion 审核评分规则
// 进程启动时加载并缓存，请求处理不修改；变更后通过 reload 接口手动刷新
type ReviewCriterion struct {
	ID int64 `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	// 分类：personal_info/documents/service_info/background/safety
	Category string `gorm:"index:idx_category;column:category;size:30;not null" json:"category"`
	// 规则描述（谓词按描述关键字匹配）
	Criterion string `gorm:"column:criterion;size:100;not null" json:"criterion"`
	// 是否必过项（未通过记为阻断问题）
	IsRequired bool `gorm:"column:is_required;not null;default:0" json:"is_required"`
	// 权重分值
	Weight int `gorm:"column:weight;not null;default:10" json:"weight"`
	// 是否启用
	Enabled bool `gorm:"column:enabled;not null;default:1" json:"enabled"`
	// 排序号
	SortOrder int `gorm:"column:sort_order;not null;default:0" json:"sort_order"`
	// 创建时间
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	// 更新时间
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

// TableName 指定表名
func (ReviewCriterion) TableName() string {
	return "review_criteria"
}

// IReviewCriterionModel 审核规则数据访问层接口
type IReviewCriterionModel interface {
	// FindAllEnabled 查询全部启用规则（按排序号升序）
	FindAllEnabled(ctx context.Context) ([]*ReviewCriterion, error)
	// Create 创建规则
	Create(ctx context.Context, criterion *ReviewCriterion) error
}

var _ IReviewCriterionModel = (*ReviewCriterionModel)(nil)

// ReviewCriterionModel 审核规则数据访问层
type ReviewCriterionModel struct {
	db *gorm.DB
}

// NewReviewCriterionModel 创建审核规则Model实例
func NewReviewCriterionModel(db *gorm.DB) IReviewCriterionModel {
	return &ReviewCriterionModel{db: db}
}

// FindAllEnabled 查询全部启用规则
func (m *ReviewCriterionModel) FindAllEnabled(ctx context.Context) ([]*ReviewCriterion, error) {
	var list []*ReviewCriterion
	err := m.db.WithContext(ctx).
		Where("enabled = ?", true).
		Order("sort_order ASC, id ASC").
		Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

// Create 创建规则
func (m *ReviewCriterionModel) Create(ctx context.Context, criterion *ReviewCriterion) error {
	return m.db.WithContext(ctx).Create(criterion).Error
}
