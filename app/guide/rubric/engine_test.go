package rubric

import (
	"testing"

	"guide-platform/app/guide/model"
	"guide-platform/common/errorx"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fullApplication 构造一份全部材料齐备的申请（除背景核查外）
func fullApplication() *model.GuideApplication {
	return &model.GuideApplication{
		RealName:                 "张三",
		IDNumber:                 "110101199001010011",
		Phone:                    "13800138000",
		City:                     "北京",
		Age:                      25,
		IDCardFront:              "https://cdn.example.com/front.jpg",
		IDCardBack:               "https://cdn.example.com/back.jpg",
		Photos:                   `["https://cdn.example.com/photo1.jpg"]`,
		Bio:                      "熟悉北京各大景点与展馆，提供专业讲解服务。",
		Skills:                   `["讲解"]`,
		HourlyRate:               200,
		Experience:               "曾在旅行社担任三年导游，累计带团超过两百次，熟悉故宫、长城、颐和园等景点的历史背景与参观路线，能够根据游客需求灵活调整行程安排。",
		Motivation:               "希望利用自己多年积累的专业讲解知识，帮助来北京的游客获得更好、更省心的出行体验。",
		EmergencyContactName:     "李四",
		EmergencyContactPhone:    "13900139000",
		EmergencyContactRelation: "配偶",
	}
}

// standardCriteria 构造标准规则集：背景核查为可选项，其余必过，每条 10 分
func standardCriteria() []*model.ReviewCriterion {
	specs := []struct {
		category  string
		criterion string
		required  bool
	}{
		{"personal_info", "身份信息完整性", true},
		{"personal_info", "年龄要求（18-60周岁）", true},
		{"documents", "身份证件清晰度", true},
		{"documents", "照片质量", true},
		{"service_info", "服务描述完整性", true},
		{"service_info", "定价合理性", true},
		{"background", "相关经验", true},
		{"background", "服务动机", true},
		{"safety", "紧急联系人", true},
		{"safety", "背景核查", false},
	}

	criteria := make([]*model.ReviewCriterion, 0, len(specs))
	for i, s := range specs {
		criteria = append(criteria, &model.ReviewCriterion{
			ID:         int64(i + 1),
			Category:   s.category,
			Criterion:  s.criterion,
			IsRequired: s.required,
			Weight:     10,
			Enabled:    true,
		})
	}
	return criteria
}

func TestEvaluateFullApplicationPasses(t *testing.T) {
	app := fullApplication()
	result, err := Evaluate(app, standardCriteria())
	require.NoError(t, err)

	// 仅可选的背景核查未通过
	assert.Equal(t, 90, result.Score)
	assert.Equal(t, 100, result.MaxScore)
	assert.True(t, result.Passed)
	assert.Empty(t, result.Issues)
	assert.Equal(t, []string{"建议改进：背景核查"}, result.Recommendations)
	assert.Empty(t, result.Unrecognized)
}

func TestEvaluateUnderageBecomesIssue(t *testing.T) {
	app := fullApplication()
	app.Age = 17

	result, err := Evaluate(app, standardCriteria())
	require.NoError(t, err)

	assert.Equal(t, 80, result.Score)
	assert.Contains(t, result.Issues, "年龄要求（18-60周岁）")
	// 通过与否只由阈值公式决定
	assert.Equal(t, float64(result.Score) >= 0.70*float64(result.MaxScore), result.Passed)
}

func TestEvaluateEmptyCriteriaUnavailable(t *testing.T) {
	_, err := Evaluate(fullApplication(), nil)
	require.Error(t, err)
	assert.True(t, errorx.Is(err, errorx.CodeRubricConfigUnavailable))
}

func TestEvaluateNilApplication(t *testing.T) {
	_, err := Evaluate(nil, standardCriteria())
	require.Error(t, err)
}

func TestEvaluateUnrecognizedCriterionExcluded(t *testing.T) {
	criteria := standardCriteria()
	criteria = append(criteria, &model.ReviewCriterion{
		ID:         99,
		Category:   "safety",
		Criterion:  "无犯罪记录证明",
		IsRequired: true,
		Weight:     50,
	})

	result, err := Evaluate(fullApplication(), criteria)
	require.NoError(t, err)

	// 未识别规则不计分、不进 issues，单独上报
	assert.Equal(t, 100, result.MaxScore)
	assert.Equal(t, 90, result.Score)
	assert.Empty(t, result.Issues)
	assert.Equal(t, []string{"safety/无犯罪记录证明"}, result.Unrecognized)
}

func TestEvaluateAllUnrecognizedUnavailable(t *testing.T) {
	criteria := []*model.ReviewCriterion{
		{Category: "safety", Criterion: "未知规则A", Weight: 10},
		{Category: "documents", Criterion: "未知规则B", Weight: 10},
	}
	_, err := Evaluate(fullApplication(), criteria)
	require.Error(t, err)
	assert.True(t, errorx.Is(err, errorx.CodeRubricConfigUnavailable))
}

func TestEvaluateThresholdBoundary(t *testing.T) {
	// 刚好 70%：通过
	app := fullApplication()
	app.BackgroundCheck = "https://cdn.example.com/check.pdf"
	app.Experience = "太短" // 相关经验不足 50 字
	app.Motivation = "太短" // 服务动机不足 30 字
	app.Photos = ""       // 照片缺失

	result, err := Evaluate(app, standardCriteria())
	require.NoError(t, err)

	assert.Equal(t, 70, result.Score)
	assert.Equal(t, 100, result.MaxScore)
	assert.True(t, result.Passed)

	// 再去掉一条必过项即跌破阈值
	app.IDCardBack = ""
	result, err = Evaluate(app, standardCriteria())
	require.NoError(t, err)
	assert.Equal(t, 60, result.Score)
	assert.False(t, result.Passed)
}

func TestEvaluatePassFormulaHolds(t *testing.T) {
	// passed == (score >= 0.70 * maxScore) 对任意组合成立
	apps := []*model.GuideApplication{
		fullApplication(),
		{},
		{RealName: "王五", IDNumber: "1", Phone: "2", City: "上海", Age: 30},
	}
	for _, app := range apps {
		result, err := Evaluate(app, standardCriteria())
		require.NoError(t, err)
		assert.Equal(t, float64(result.Score) >= 0.70*float64(result.MaxScore), result.Passed)
	}
}
