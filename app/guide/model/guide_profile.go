/**
 * @projectName: GuidePlatform
 * @package: model
 * @className: GuideProfile
 * @description: 地陪档案实体及数据访问层
 * @version: 1.0
 */

package model

import (
	"context"
	"encoding/json"
	"time"

	"guide-platform/common/constants"

	"gorm.io/gorm"
)

// GuideProfile 地陪档案实体
// 申请审核通过后由审核流程创建
type GuideProfile struct {
	ID int64 `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	// 用户ID（一个用户至多一份档案）
	UserID int64 `gorm:"uniqueIndex:uk_user;column:user_id;not null" json:"user_id"`
	// 来源申请ID
	ApplicationID int64 `gorm:"column:application_id;not null" json:"application_id"`
	// 真实姓名
	RealName string `gorm:"column:real_name;size:50;not null" json:"real_name"`
	// 服务城市
	City string `gorm:"index:idx_city;column:city;size:50;not null" json:"city"`
	// 个人简介
	Bio string `gorm:"column:bio;size:1000" json:"bio"`
	// 技能列表（JSON 数组字符串）
	Skills string `gorm:"column:skills;size:500" json:"skills"`
	// 时薪（元）
	HourlyRate float64 `gorm:"column:hourly_rate;type:decimal(10,2);not null" json:"hourly_rate"`
	// 可提供服务（JSON 数组字符串）
	AvailableServices string `gorm:"column:available_services;size:500" json:"available_services"`
	// 语言能力（JSON 数组字符串）
	Languages string `gorm:"column:languages;size:255" json:"languages"`
	// 评分（0-5）
	Rating float64 `gorm:"column:rating;type:decimal(3,2);not null;default:5.0" json:"rating"`
	// 接单状态：1-可接单 2-暂停接单
	Available int64 `gorm:"index:idx_available;column:available;not null;default:1" json:"available"`
	// 创建时间
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	// 更新时间
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

// TableName 指定表名
func (GuideProfile) TableName() string {
	return "guide_profiles"
}

// IsAvailable 是否可接单
func (g *GuideProfile) IsAvailable() bool {
	return g.Available == constants.GuideAvailable
}

// GetSkills 解析技能列表
func (g *GuideProfile) GetSkills() []string {
	return parseJSONList(g.Skills)
}

// GetAvailableServices 解析可提供服务列表
func (g *GuideProfile) GetAvailableServices() []string {
	return parseJSONList(g.AvailableServices)
}

// GetLanguages 解析语言能力列表
func (g *GuideProfile) GetLanguages() []string {
	return parseJSONList(g.Languages)
}

// parseJSONList 解析 JSON 数组字符串，失败返回空切片
func parseJSONList(raw string) []string {
	if raw == "" {
		return []string{}
	}
	var list []string
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		return []string{}
	}
	return list
}

// IGuideProfileModel 地陪档案数据访问层接口
type IGuideProfileModel interface {
	// Create 创建地陪档案
	Create(ctx context.Context, profile *GuideProfile) error
	// FindByID 根据ID查询
	FindByID(ctx context.Context, id int64) (*GuideProfile, error)
	// FindByUserID 根据用户ID查询
	FindByUserID(ctx context.Context, userID int64) (*GuideProfile, error)
	// FindAvailableByCity 查询城市内可接单的地陪（按注册时间升序，派单候选集）
	FindAvailableByCity(ctx context.Context, city string) ([]*GuideProfile, error)
	// FindByCity 按城市分页查询（city 为空查全部）
	FindByCity(ctx context.Context, city string, page, pageSize int) ([]*GuideProfile, int64, error)
	// UpdateAvailability 更新接单状态
	UpdateAvailability(ctx context.Context, id int64, available int64) error
	// Update 更新档案
	Update(ctx context.Context, profile *GuideProfile) error
}

var _ IGuideProfileModel = (*GuideProfileModel)(nil)

// GuideProfileModel 地陪档案数据访问层
type GuideProfileModel struct {
	db *gorm.DB
}

// NewGuideProfileModel 创建地陪档案Model实例
func NewGuideProfileModel(db *gorm.DB) IGuideProfileModel {
	return &GuideProfileModel{db: db}
}

// Create 创建地陪档案
func (m *GuideProfileModel) Create(ctx context.Context, profile *GuideProfile) error {
	return m.db.WithContext(ctx).Create(profile).Error
}

// FindByID 根据ID查询
func (m *GuideProfileModel) FindByID(ctx context.Context, id int64) (*GuideProfile, error) {
	var profile GuideProfile
	err := m.db.WithContext(ctx).First(&profile, id).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// FindByUserID 根据用户ID查询
func (m *GuideProfileModel) FindByUserID(ctx context.Context, userID int64) (*GuideProfile, error) {
	var profile GuideProfile
	err := m.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// FindAvailableByCity 查询城市内可接单的地陪
// 按注册时间升序，first_match 策略直接取首个
func (m *GuideProfileModel) FindAvailableByCity(ctx context.Context, city string) ([]*GuideProfile, error) {
	var list []*GuideProfile
	err := m.db.WithContext(ctx).
		Where("city = ? AND available = ?", city, constants.GuideAvailable).
		Order("created_at ASC").
		Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

// FindByCity 按城市分页查询
func (m *GuideProfileModel) FindByCity(
	ctx context.Context,
	city string,
	page, pageSize int,
) ([]*GuideProfile, int64, error) {
	query := m.db.WithContext(ctx).Model(&GuideProfile{})
	if city != "" {
		query = query.Where("city = ?", city)
	}
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var list []*GuideProfile
	offset := (page - 1) * pageSize
	if err := query.Offset(offset).Limit(pageSize).Order("rating DESC, created_at ASC").Find(&list).Error; err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

// UpdateAvailability 更新接单状态
func (m *GuideProfileModel) UpdateAvailability(ctx context.Context, id int64, available int64) error {
	return m.db.WithContext(ctx).
		Model(&GuideProfile{}).
		Where("id = ?", id).
		Update("available", available).Error
}

// Update 更新档案
func (m *GuideProfileModel) Update(ctx context.Context, profile *GuideProfile) error {
	return m.db.WithContext(ctx).Save(profile).Error
}
