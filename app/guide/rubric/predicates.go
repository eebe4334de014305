/**
 * @projectName: GuidePlatform
 * @package: rubric
 * @className: predicates
 * @description: 评审规则谓词目录
 * @version: 1.0
 */

package rubric

import (
	"strings"

	"guide-platform/app/guide/model"
	"guide-platform/common/constants"
)

// Predicate 规则谓词：对申请材料做无副作用的判定
type Predicate func(app *model.GuideApplication) bool

// predicateEntry 谓词目录项，按分类 + 规则描述关键字匹配
type predicateEntry struct {
	category string
	keyword  string
	check    Predicate
}

// predicateCatalogue 谓词目录
// 规则描述包含关键字即命中；目录未覆盖的规则不计入评分，上报给运营确认
var predicateCatalogue = []predicateEntry{
	// ==================== 个人信息 ====================
	{
		category: constants.CriterionCategoryPersonalInfo,
		keyword:  "身份信息完整性",
		check: func(a *model.GuideApplication) bool {
			return a.RealName != "" && a.IDNumber != "" && a.Phone != "" && a.City != ""
		},
	},
	{
		category: constants.CriterionCategoryPersonalInfo,
		keyword:  "年龄要求",
		check: func(a *model.GuideApplication) bool {
			return a.Age >= constants.ApplicationMinAge && a.Age <= constants.ApplicationMaxAge
		},
	},

	// ==================== 证件材料 ====================
	{
		category: constants.CriterionCategoryDocuments,
		keyword:  "身份证件清晰度",
		check: func(a *model.GuideApplication) bool {
			return a.IDCardFront != "" && a.IDCardBack != ""
		},
	},
	{
		category: constants.CriterionCategoryDocuments,
		keyword:  "照片质量",
		check: func(a *model.GuideApplication) bool {
			return len(a.GetPhotos()) > 0
		},
	},

	// ==================== 服务信息 ====================
	{
		category: constants.CriterionCategoryServiceInfo,
		keyword:  "服务描述完整性",
		check: func(a *model.GuideApplication) bool {
			return len([]rune(a.Bio)) >= 20 && len(a.GetSkills()) > 0
		},
	},
	{
		category: constants.CriterionCategoryServiceInfo,
		keyword:  "定价合理性",
		check: func(a *model.GuideApplication) bool {
			return a.HourlyRate >= constants.ApplicationMinHourlyRate && a.HourlyRate <= constants.ApplicationMaxHourlyRate
		},
	},

	// ==================== 背景材料 ====================
	{
		category: constants.CriterionCategoryBackground,
		keyword:  "相关经验",
		check: func(a *model.GuideApplication) bool {
			return len([]rune(a.Experience)) >= 50
		},
	},
	{
		category: constants.CriterionCategoryBackground,
		keyword:  "服务动机",
		check: func(a *model.GuideApplication) bool {
			return len([]rune(a.Motivation)) >= 30
		},
	},

	// ==================== 安全保障 ====================
	{
		category: constants.CriterionCategorySafety,
		keyword:  "紧急联系人",
		check: func(a *model.GuideApplication) bool {
			return a.HasEmergencyContact()
		},
	},
	{
		category: constants.CriterionCategorySafety,
		keyword:  "背景核查",
		check: func(a *model.GuideApplication) bool {
			return a.BackgroundCheck != ""
		},
	},
}

// lookupPredicate 按分类和规则描述查找谓词
// 返回: 谓词，是否命中
func lookupPredicate(category, criterion string) (Predicate, bool) {
	for _, entry := range predicateCatalogue {
		if entry.category == category && strings.Contains(criterion, entry.keyword) {
			return entry.check, true
		}
	}
	return nil, false
}
