/**
 * @projectName: GuidePlatform
 * @package: rubric
 * @className: engine
 * @description: 申请自动评审引擎
 * @version: 1.0
 *
 * 评分模型：
 *   - 每条规则按分类 + 描述关键字命中一个谓词，命中且通过计入得分
 *   - score = 通过规则权重之和；maxScore = 已识别规则权重之和
 *   - passed = score >= 70% * maxScore（固定阈值）
 *   - 必过项未通过 -> issues（阻断，供人工审核重点关注）
 *   - 可选项未通过 -> recommendations（建议改进）
 *   - 目录未覆盖的规则不计分，放入 unrecognized 上报运营，绝不静默通过
 */

package rubric

import (
	"fmt"

	"guide-platform/app/guide/model"
	"guide-platform/common/constants"
	"guide-platform/common/errorx"
)

// Result 评审结果
type Result struct {
	// Score 得分
	Score int `json:"score"`
	// MaxScore 满分（仅已识别规则）
	MaxScore int `json:"maxScore"`
	// Passed 是否达到通过阈值
	Passed bool `json:"passed"`
	// Issues 阻断问题（必过项未通过）
	Issues []string `json:"issues"`
	// Recommendations 改进建议（可选项未通过）
	Recommendations []string `json:"recommendations"`
	// Unrecognized 未识别规则（谓词目录未覆盖，需要运营确认）
	Unrecognized []string `json:"unrecognized"`
}

// Evaluate 对申请执行自动评审
// criteria 为空视为配置不可用，返回错误而非空结果
func Evaluate(app *model.GuideApplication, criteria []*model.ReviewCriterion) (*Result, error) {
	if app == nil {
		return nil, errorx.ErrInvalidParams("申请记录为空")
	}
	if len(criteria) == 0 {
		return nil, errorx.ErrRubricConfigUnavailable()
	}

	result := &Result{
		Issues:          []string{},
		Recommendations: []string{},
		Unrecognized:    []string{},
	}

	for _, c := range criteria {
		check, ok := lookupPredicate(c.Category, c.Criterion)
		if !ok {
			// 新增规则尚未实现谓词：不计分并上报，避免静默通过
			result.Unrecognized = append(result.Unrecognized,
				fmt.Sprintf("%s/%s", c.Category, c.Criterion))
			continue
		}

		result.MaxScore += c.Weight
		if check(app) {
			result.Score += c.Weight
			continue
		}

		if c.IsRequired {
			result.Issues = append(result.Issues, c.Criterion)
		} else {
			result.Recommendations = append(result.Recommendations, "建议改进："+c.Criterion)
		}
	}

	// 全部规则都未识别同样视为配置不可用
	if result.MaxScore == 0 {
		return nil, errorx.ErrRubricConfigUnavailable()
	}

	result.Passed = float64(result.Score) >= constants.RubricPassThreshold*float64(result.MaxScore)
	return result, nil
}
