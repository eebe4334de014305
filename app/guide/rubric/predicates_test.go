package rubric

import (
	"testing"

	"guide-platform/app/guide/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupPredicateByKeyword(t *testing.T) {
	// 描述包含关键字即可命中，允许运营补充说明文字
	_, ok := lookupPredicate("personal_info", "年龄要求（18-60周岁）")
	assert.True(t, ok)

	// 分类不匹配不命中
	_, ok = lookupPredicate("documents", "年龄要求")
	assert.False(t, ok)

	// 目录未覆盖不命中
	_, ok = lookupPredicate("safety", "无犯罪记录证明")
	assert.False(t, ok)
}

func TestAgePredicateBounds(t *testing.T) {
	check, ok := lookupPredicate("personal_info", "年龄要求")
	require.True(t, ok)

	cases := map[int]bool{17: false, 18: true, 35: true, 60: true, 61: false}
	for age, want := range cases {
		assert.Equal(t, want, check(&model.GuideApplication{Age: age}), "age=%d", age)
	}
}

func TestPricingPredicateBounds(t *testing.T) {
	check, ok := lookupPredicate("service_info", "定价合理性")
	require.True(t, ok)

	cases := map[float64]bool{49.9: false, 50: true, 200: true, 1000: true, 1000.1: false}
	for rate, want := range cases {
		assert.Equal(t, want, check(&model.GuideApplication{HourlyRate: rate}), "rate=%.1f", rate)
	}
}

func TestEmergencyContactPredicate(t *testing.T) {
	check, ok := lookupPredicate("safety", "紧急联系人")
	require.True(t, ok)

	full := &model.GuideApplication{
		EmergencyContactName:     "李四",
		EmergencyContactPhone:    "13900139000",
		EmergencyContactRelation: "配偶",
	}
	assert.True(t, check(full))

	// 任一字段缺失视为未填写
	partial := &model.GuideApplication{EmergencyContactName: "李四"}
	assert.False(t, check(partial))
}

func TestPhotoPredicateIgnoresBadJSON(t *testing.T) {
	check, ok := lookupPredicate("documents", "照片质量")
	require.True(t, ok)

	assert.False(t, check(&model.GuideApplication{Photos: ""}))
	assert.False(t, check(&model.GuideApplication{Photos: "not-json"}))
	assert.True(t, check(&model.GuideApplication{Photos: `["a.jpg"]`}))
}
