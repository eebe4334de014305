/**
 * @projectName: GuidePlatform
 * @package: model
 * @className: GuideApplication
 * @description: 地陪入驻申请实体及数据访问层
 * @version: 1.0
 */

package model

import (
	"context"
	"time"

	"guide-platform/common/constants"

	"gorm.io/gorm"
)

// GuideApplication 地陪入驻申请实体
type GuideApplication struct {
	// ==================== 基础字段 ====================

	ID int64 `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	// 申请人用户ID
	ApplicantID int64 `gorm:"index:idx_applicant;column:applicant_id;not null" json:"applicant_id"`

	// ==================== 个人信息 ====================

	// 真实姓名
	RealName string `gorm:"column:real_name;size:50;not null" json:"real_name"`
	// 身份证号
	IDNumber string `gorm:"column:id_number;size:20;not null" json:"id_number"`
	// 手机号
	Phone string `gorm:"column:phone;size:20;not null" json:"phone"`
	// 所在城市
	City string `gorm:"index:idx_city;column:city;size:50;not null" json:"city"`
	// 详细地址
	Address string `gorm:"column:address;size:255" json:"address"`
	// 年龄
	Age int `gorm:"column:age;not null" json:"age"`
	// 性别
	Gender string `gorm:"column:gender;size:10" json:"gender"`

	// ==================== 服务信息 ====================

	// 个人简介
	Bio string `gorm:"column:bio;size:1000" json:"bio"`
	// 技能列表（JSON 数组字符串）
	Skills string `gorm:"column:skills;size:500" json:"skills"`
	// 时薪（元）
	HourlyRate float64 `gorm:"column:hourly_rate;type:decimal(10,2);not null;default:0" json:"hourly_rate"`
	// 可提供服务（JSON 数组字符串）
	AvailableServices string `gorm:"column:available_services;size:500" json:"available_services"`
	// 语言能力（JSON 数组字符串）
	Languages string `gorm:"column:languages;size:255" json:"languages"`

	// ==================== 证件材料 ====================

	// 身份证正面照URL
	IDCardFront string `gorm:"column:id_card_front;size:255" json:"id_card_front"`
	// 身份证背面照URL
	IDCardBack string `gorm:"column:id_card_back;size:255" json:"id_card_back"`
	// 健康证明URL
	HealthCertificate string `gorm:"column:health_certificate;size:255" json:"health_certificate"`
	// 背景核查材料URL（可选）
	BackgroundCheck string `gorm:"column:background_check;size:255" json:"background_check"`
	// 形象照片（JSON 数组字符串）
	Photos string `gorm:"column:photos;size:1000" json:"photos"`

	// ==================== 补充材料 ====================

	// 相关经验
	Experience string `gorm:"column:experience;size:1000" json:"experience"`
	// 服务动机
	Motivation string `gorm:"column:motivation;size:1000" json:"motivation"`
	// 紧急联系人姓名
	EmergencyContactName string `gorm:"column:emergency_contact_name;size:50" json:"emergency_contact_name"`
	// 紧急联系人电话
	EmergencyContactPhone string `gorm:"column:emergency_contact_phone;size:20" json:"emergency_contact_phone"`
	// 紧急联系人关系
	EmergencyContactRelation string `gorm:"column:emergency_contact_relation;size:20" json:"emergency_contact_relation"`

	// ==================== 审核字段 ====================

	// 申请状态：pending/under_review/approved/rejected/need_more_info
	Status string `gorm:"index:idx_status;column:status;size:20;not null;default:'pending'" json:"status"`
	// OCR 识别姓名（辅助人工核对）
	OCRName string `gorm:"column:ocr_name;size:50" json:"ocr_name"`
	// OCR 识别身份证号
	OCRIDNumber string `gorm:"column:ocr_id_number;size:20" json:"ocr_id_number"`
	// OCR 识别时间
	OCRCheckedAt *time.Time `gorm:"column:ocr_checked_at" json:"ocr_checked_at"`

	// ==================== 时间字段 ====================

	// 创建时间
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	// 更新时间
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

// TableName 指定表名
func (GuideApplication) TableName() string {
	return "guide_applications"
}

// ==================== 实体辅助方法 ====================

// GetStatus 获取申请状态
func (a *GuideApplication) GetStatus() constants.ApplicationStatus {
	return constants.ApplicationStatus(a.Status)
}

// GetStatusName 获取状态名称
func (a *GuideApplication) GetStatusName() string {
	return constants.GetApplicationStatusName(a.GetStatus())
}

// IsActive 是否处于活跃状态（未出终审结论）
func (a *GuideApplication) IsActive() bool {
	return constants.IsApplicationActive(a.GetStatus())
}

// GetSkills 解析技能列表
func (a *GuideApplication) GetSkills() []string {
	return parseJSONList(a.Skills)
}

// GetPhotos 解析形象照片列表
func (a *GuideApplication) GetPhotos() []string {
	return parseJSONList(a.Photos)
}

// HasEmergencyContact 紧急联系人是否填写完整
func (a *GuideApplication) HasEmergencyContact() bool {
	return a.EmergencyContactName != "" && a.EmergencyContactPhone != "" && a.EmergencyContactRelation != ""
}

// IGuideApplicationModel 地陪申请数据访问层接口
type IGuideApplicationModel interface {
	// Create 创建申请
	Create(ctx context.Context, app *GuideApplication) error
	// FindByID 根据ID查询
	FindByID(ctx context.Context, id int64) (*GuideApplication, error)
	// FindActiveByApplicant 查询申请人的活跃申请（同一申请人至多一条）
	FindActiveByApplicant(ctx context.Context, applicantID int64) (*GuideApplication, error)
	// FindByApplicant 查询申请人的全部申请（按时间倒序）
	FindByApplicant(ctx context.Context, applicantID int64) ([]*GuideApplication, error)
	// FindByStatus 根据状态查询列表（分页，status 为空查全部）
	FindByStatus(ctx context.Context, status constants.ApplicationStatus, page, pageSize int) ([]*GuideApplication, int64, error)
	// UpdateStatusGuarded 带状态前置条件的更新（防并发审核覆盖）
	UpdateStatusGuarded(ctx context.Context, id int64, from, to constants.ApplicationStatus, updates map[string]interface{}) (bool, error)
	// Update 更新申请
	Update(ctx context.Context, app *GuideApplication) error
	// UpdateOCRResult 回写 OCR 识别结果
	UpdateOCRResult(ctx context.Context, id int64, ocrName, ocrIDNumber string) error
}

var _ IGuideApplicationModel = (*GuideApplicationModel)(nil)

// GuideApplicationModel 地陪申请数据访问层
type GuideApplicationModel struct {
	db *gorm.DB
}

// NewGuideApplicationModel 创建地陪申请Model实例
func NewGuideApplicationModel(db *gorm.DB) IGuideApplicationModel {
	return &GuideApplicationModel{db: db}
}

// Create 创建申请
func (m *GuideApplicationModel) Create(ctx context.Context, app *GuideApplication) error {
	return m.db.WithContext(ctx).Create(app).Error
}

// FindByID 根据ID查询
func (m *GuideApplicationModel) FindByID(ctx context.Context, id int64) (*GuideApplication, error) {
	var app GuideApplication
	err := m.db.WithContext(ctx).First(&app, id).Error
	if err != nil {
		return nil, err
	}
	return &app, nil
}

// FindActiveByApplicant 查询申请人的活跃申请
func (m *GuideApplicationModel) FindActiveByApplicant(
	ctx context.Context,
	applicantID int64,
) (*GuideApplication, error) {
	statuses := make([]string, 0, len(constants.ActiveApplicationStatuses))
	for _, s := range constants.ActiveApplicationStatuses {
		statuses = append(statuses, string(s))
	}

	var app GuideApplication
	err := m.db.WithContext(ctx).
		Where("applicant_id = ? AND status IN ?", applicantID, statuses).
		Order("created_at DESC").
		First(&app).Error
	if err != nil {
		return nil, err
	}
	return &app, nil
}

// FindByApplicant 查询申请人的全部申请
func (m *GuideApplicationModel) FindByApplicant(
	ctx context.Context,
	applicantID int64,
) ([]*GuideApplication, error) {
	var list []*GuideApplication
	err := m.db.WithContext(ctx).
		Where("applicant_id = ?", applicantID).
		Order("created_at DESC").
		Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

// FindByStatus 根据状态查询列表
func (m *GuideApplicationModel) FindByStatus(
	ctx context.Context,
	status constants.ApplicationStatus,
	page, pageSize int,
) ([]*GuideApplication, int64, error) {
	query := m.db.WithContext(ctx).Model(&GuideApplication{})
	if status != "" {
		query = query.Where("status = ?", string(status))
	}
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var list []*GuideApplication
	offset := (page - 1) * pageSize
	if err := query.Offset(offset).Limit(pageSize).Order("created_at ASC").Find(&list).Error; err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

// UpdateStatusGuarded 带状态前置条件的更新
func (m *GuideApplicationModel) UpdateStatusGuarded(
	ctx context.Context,
	id int64,
	from, to constants.ApplicationStatus,
	updates map[string]interface{},
) (bool, error) {
	if updates == nil {
		updates = make(map[string]interface{})
	}
	updates["status"] = string(to)
	result := m.db.WithContext(ctx).
		Model(&GuideApplication{}).
		Where("id = ? AND status = ?", id, string(from)).
		Updates(updates)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// Update 更新申请
func (m *GuideApplicationModel) Update(ctx context.Context, app *GuideApplication) error {
	return m.db.WithContext(ctx).Save(app).Error
}

// UpdateOCRResult 回写 OCR 识别结果
func (m *GuideApplicationModel) UpdateOCRResult(ctx context.Context, id int64, ocrName, ocrIDNumber string) error {
	now := time.Now()
	return m.db.WithContext(ctx).
		Model(&GuideApplication{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"ocr_name":       ocrName,
			"ocr_id_number":  ocrIDNumber,
			"ocr_checked_at": &now,
		}).Error
}
