// ============================================================================
// 地陪申请状态机
// ============================================================================
//
// 状态流转图：
//   pending(待审核) -> under_review(审核中) -> approved(已通过) | rejected(已拒绝) | need_more_info(需补充材料)
//   pending -> approved | rejected | need_more_info   [允许跳过 under_review 直接裁决]
//   rejected / need_more_info -> pending              [重新提交]
//
// 不变式：每个申请人同一时间至多一条进行中的申请（pending/under_review/need_more_info）。
// 审核通过后由申请服务创建地陪档案并将用户角色切换为 guide。
//
// ============================================================================

package constants

// ApplicationStatus 地陪申请状态
type ApplicationStatus string

const (
	// ApplicationStatusPending 待审核
	ApplicationStatusPending ApplicationStatus = "pending"
	// ApplicationStatusUnderReview 审核中（已被审核员认领）
	ApplicationStatusUnderReview ApplicationStatus = "under_review"
	// ApplicationStatusApproved 已通过（终态）
	ApplicationStatusApproved ApplicationStatus = "approved"
	// ApplicationStatusRejected 已拒绝（可重新申请）
	ApplicationStatusRejected ApplicationStatus = "rejected"
	// ApplicationStatusNeedMoreInfo 需补充材料（可修改后重新提交）
	ApplicationStatusNeedMoreInfo ApplicationStatus = "need_more_info"
)

// ApplicationStatusNameMap 状态名称映射
var ApplicationStatusNameMap = map[ApplicationStatus]string{
	ApplicationStatusPending:      "待审核",
	ApplicationStatusUnderReview:  "审核中",
	ApplicationStatusApproved:     "已通过",
	ApplicationStatusRejected:     "已拒绝",
	ApplicationStatusNeedMoreInfo: "需补充材料",
}

// GetApplicationStatusName 获取状态名称
func GetApplicationStatusName(status ApplicationStatus) string {
	if name, ok := ApplicationStatusNameMap[status]; ok {
		return name
	}
	return "未知状态"
}

// ApplicationStatusTransitions 申请状态合法转换
var ApplicationStatusTransitions = map[ApplicationStatus][]ApplicationStatus{
	ApplicationStatusPending: {
		ApplicationStatusUnderReview,
		ApplicationStatusApproved,
		ApplicationStatusRejected,
		ApplicationStatusNeedMoreInfo,
	},
	ApplicationStatusUnderReview: {
		ApplicationStatusApproved,
		ApplicationStatusRejected,
		ApplicationStatusNeedMoreInfo,
	},
	ApplicationStatusRejected:     {ApplicationStatusPending},
	ApplicationStatusNeedMoreInfo: {ApplicationStatusPending},
}

// CanApplicationTransition 检查状态转换是否合法
func CanApplicationTransition(from, to ApplicationStatus) bool {
	allowedStates, ok := ApplicationStatusTransitions[from]
	if !ok {
		return false
	}
	for _, s := range allowedStates {
		if s == to {
			return true
		}
	}
	return false
}

// ActiveApplicationStatuses 进行中的申请状态集合
// 用于"每人至多一条进行中申请"的唯一性校验
var ActiveApplicationStatuses = []ApplicationStatus{
	ApplicationStatusPending,
	ApplicationStatusUnderReview,
	ApplicationStatusNeedMoreInfo,
}

// ReviewableStatuses 可被审核裁决的状态集合
var ReviewableStatuses = []ApplicationStatus{
	ApplicationStatusPending,
	ApplicationStatusUnderReview,
}

// IsApplicationInStatuses 检查状态是否在指定集合中
func IsApplicationInStatuses(status ApplicationStatus, statuses []ApplicationStatus) bool {
	for _, s := range statuses {
		if status == s {
			return true
		}
	}
	return false
}

// IsApplicationActive 检查是否为进行中状态
func IsApplicationActive(status ApplicationStatus) bool {
	return IsApplicationInStatuses(status, ActiveApplicationStatuses)
}

// CanReviewApplication 检查是否可被审核
func CanReviewApplication(status ApplicationStatus) bool {
	return IsApplicationInStatuses(status, ReviewableStatuses)
}

// ==================== 评审规则 ====================

// RubricPassThreshold 自动评审通过阈值（得分 >= 70% 满分视为通过）
const RubricPassThreshold = 0.70

// 评审规则类目（用于选择判定函数）
const (
	CriterionCategoryPersonalInfo = "personal_info" // 个人信息
	CriterionCategoryDocuments    = "documents"     // 证件材料
	CriterionCategoryServiceInfo  = "service_info"  // 服务信息
	CriterionCategoryBackground   = "background"    // 背景经历
	CriterionCategorySafety       = "safety"        // 安全保障
)

// ==================== 审核操作来源 ====================

const (
	// ReviewOperatorAutoRubric 自动评审
	ReviewOperatorAutoRubric = "auto_rubric"
	// ReviewOperatorManual 人工审核
	ReviewOperatorManual = "manual_review"
	// ReviewOperatorApplicant 申请人操作（提交/取消/补充材料）
	ReviewOperatorApplicant = "applicant"
	// ReviewOperatorOcrCallback OCR回调
	ReviewOperatorOcrCallback = "ocr_callback"
)

// ==================== 业务配置常量 ====================

const (
	// ApplicationRateLimitWindow 申请限流窗口时间（秒）
	ApplicationRateLimitWindow = 60

	// ApplicationRateLimitMax 限流窗口内最大提交次数
	ApplicationRateLimitMax = 3

	// ApplicationMinAge 申请人最小年龄
	ApplicationMinAge = 18
	// ApplicationMaxAge 申请人最大年龄
	ApplicationMaxAge = 60

	// ApplicationMinHourlyRate 最低时薪（元）
	ApplicationMinHourlyRate = 50
	// ApplicationMaxHourlyRate 最高时薪（元）
	ApplicationMaxHourlyRate = 1000
)

// ==================== 用户角色 ====================

const (
	RoleCustomer = "customer" // 普通用户
	RoleGuide    = "guide"    // 地陪
	RoleAdmin    = "admin"    // 管理员
)

// ==================== 地陪接单状态 ====================

const (
	GuideAvailable   = 1 // 可接单
	GuideUnavailable = 2 // 暂停接单
)
