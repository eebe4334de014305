// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package types

// ==================== 入驻申请 ====================

// SubmitApplicationReq 提交入驻申请请求
type SubmitApplicationReq struct {
	// 个人信息
	RealName string `json:"realName" validate:"required"`
	IDNumber string `json:"idNumber" validate:"required"`
	Phone    string `json:"phone" validate:"required"`
	City     string `json:"city" validate:"required"`
	Address  string `json:"address,optional"`
	Age      int    `json:"age" validate:"required,gt=0"`
	Gender   string `json:"gender,optional"`

	// 服务信息
	Bio               string   `json:"bio,optional"`
	Skills            []string `json:"skills,optional"`
	HourlyRate        float64  `json:"hourlyRate" validate:"required,gt=0"`
	AvailableServices []string `json:"availableServices,optional"`
	Languages         []string `json:"languages,optional"`

	// 证件材料（URL）
	IDCardFront       string   `json:"idCardFront" validate:"required"`
	IDCardBack        string   `json:"idCardBack" validate:"required"`
	HealthCertificate string   `json:"healthCertificate,optional"`
	BackgroundCheck   string   `json:"backgroundCheck,optional"`
	Photos            []string `json:"photos,optional"`

	// 补充材料
	Experience               string `json:"experience,optional"`
	Motivation               string `json:"motivation,optional"`
	EmergencyContactName     string `json:"emergencyContactName,optional"`
	EmergencyContactPhone    string `json:"emergencyContactPhone,optional"`
	EmergencyContactRelation string `json:"emergencyContactRelation,optional"`
}

// SubmitApplicationResp 提交入驻申请响应
type SubmitApplicationResp struct {
	ApplicationID int64  `json:"applicationId"`
	Status        string `json:"status"`
}

// ApplicationInfo 申请信息
type ApplicationInfo struct {
	ID          int64    `json:"id"`
	ApplicantID int64    `json:"applicantId"`
	RealName    string   `json:"realName"`
	Phone       string   `json:"phone"`
	City        string   `json:"city"`
	Age         int      `json:"age"`
	Gender      string   `json:"gender"`
	Bio         string   `json:"bio"`
	Skills      []string `json:"skills"`
	HourlyRate  float64  `json:"hourlyRate"`
	Status      string   `json:"status"`
	StatusName  string   `json:"statusName"`
	OCRName     string   `json:"ocrName"`     // OCR 识别姓名（仅后台可见）
	OCRIDNumber string   `json:"ocrIdNumber"` // OCR 识别证号（仅后台可见）
	CreatedAt   int64    `json:"createdAt"`
	UpdatedAt   int64    `json:"updatedAt"`
}

// ReviewLogInfo 审核历史记录
type ReviewLogInfo struct {
	Operation  string `json:"operation"`
	FromStatus string `json:"fromStatus"`
	ToStatus   string `json:"toStatus"`
	Score      int    `json:"score"`
	MaxScore   int    `json:"maxScore"`
	Comment    string `json:"comment"`
	CreatedAt  int64  `json:"createdAt"`
}

// GetMyApplicationResp 我的申请详情响应
type GetMyApplicationResp struct {
	Application ApplicationInfo `json:"application"`
	ReviewLogs  []ReviewLogInfo `json:"reviewLogs"`
}

// SupplementApplicationReq 补充材料请求
// 仅 need_more_info 状态可调用，提交后回到 pending 重新排队
type SupplementApplicationReq struct {
	ID                int64    `path:"id"`
	Bio               string   `json:"bio,optional"`
	Skills            []string `json:"skills,optional"`
	HourlyRate        float64  `json:"hourlyRate,optional"`
	IDCardFront       string   `json:"idCardFront,optional"`
	IDCardBack        string   `json:"idCardBack,optional"`
	HealthCertificate string   `json:"healthCertificate,optional"`
	BackgroundCheck   string   `json:"backgroundCheck,optional"`
	Photos            []string `json:"photos,optional"`
	Experience        string   `json:"experience,optional"`
	Motivation        string   `json:"motivation,optional"`
}

// SupplementApplicationResp 补充材料响应
type SupplementApplicationResp struct {
	ApplicationID int64  `json:"applicationId"`
	Status        string `json:"status"`
}

// ==================== 地陪浏览（公开） ====================

// GuideInfo 地陪档案信息
type GuideInfo struct {
	ID                int64    `json:"id"`
	RealName          string   `json:"realName"`
	City              string   `json:"city"`
	Bio               string   `json:"bio"`
	Skills            []string `json:"skills"`
	AvailableServices []string `json:"availableServices"`
	Languages         []string `json:"languages"`
	HourlyRate        float64  `json:"hourlyRate"`
	Rating            float64  `json:"rating"`
	Available         bool     `json:"available"`
}

// ListGuideReq 地陪列表请求
type ListGuideReq struct {
	City     string `form:"city,optional"`
	Page     int    `form:"page,default=1"`
	PageSize int    `form:"pageSize,default=20"`
}

// GetGuideReq 地陪详情请求
type GetGuideReq struct {
	ID int64 `path:"id"`
}

// GetGuideResp 地陪详情响应
type GetGuideResp struct {
	Guide GuideInfo `json:"guide"`
}

// ==================== 后台审核 ====================

// AdminListApplicationReq 后台申请列表请求
type AdminListApplicationReq struct {
	Status   string `form:"status,optional"` // 为空查全部
	Page     int    `form:"page,default=1"`
	PageSize int    `form:"pageSize,default=20"`
}

// AutoReviewReq 自动评审请求
type AutoReviewReq struct {
	ID int64 `path:"id"`
}

// AutoReviewResp 自动评审响应
type AutoReviewResp struct {
	ApplicationID   int64    `json:"applicationId"`
	Score           int      `json:"score"`
	MaxScore        int      `json:"maxScore"`
	Passed          bool     `json:"passed"`
	Issues          []string `json:"issues"`          // 必选项未通过（阻断）
	Recommendations []string `json:"recommendations"` // 可选项未通过（建议）
	Unrecognized    []string `json:"unrecognized"`    // 未识别的评审规则
	Status          string   `json:"status"`
}

// ReviewApplicationReq 人工审核裁决请求
type ReviewApplicationReq struct {
	ID      int64  `path:"id"`
	Action  string `json:"action" validate:"required"` // approve | reject | need_more_info
	Comment string `json:"comment,optional"`
}

// ReviewApplicationResp 人工审核裁决响应
type ReviewApplicationResp struct {
	ApplicationID int64  `json:"applicationId"`
	Status        string `json:"status"`
	GuideID       int64  `json:"guideId"` // 审核通过时返回新建档案ID
}

// ReloadCriteriaResp 评审规则热加载响应
type ReloadCriteriaResp struct {
	Count int `json:"count"` // 加载后启用的规则条数
}
