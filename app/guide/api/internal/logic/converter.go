package logic

import (
	"encoding/json"

	"guide-platform/app/guide/api/internal/types"
	"guide-platform/app/guide/model"
	"guide-platform/common/constants"
)

// ToApplicationInfo 申请实体转 API 响应
// withOCR 控制是否携带 OCR 字段（仅后台视角返回）
func ToApplicationInfo(a *model.GuideApplication, withOCR bool) types.ApplicationInfo {
	info := types.ApplicationInfo{
		ID:          a.ID,
		ApplicantID: a.ApplicantID,
		RealName:    a.RealName,
		Phone:       a.Phone,
		City:        a.City,
		Age:         a.Age,
		Gender:      a.Gender,
		Bio:         a.Bio,
		Skills:      a.GetSkills(),
		HourlyRate:  a.HourlyRate,
		Status:      a.Status,
		StatusName:  a.GetStatusName(),
		CreatedAt:   a.CreatedAt.Unix(),
		UpdatedAt:   a.UpdatedAt.Unix(),
	}
	if withOCR {
		info.OCRName = a.OCRName
		info.OCRIDNumber = a.OCRIDNumber
	}
	return info
}

// ToApplicationInfoList 申请列表批量转换（后台视角，含 OCR 字段）
func ToApplicationInfoList(apps []*model.GuideApplication) []types.ApplicationInfo {
	list := make([]types.ApplicationInfo, 0, len(apps))
	for _, a := range apps {
		list = append(list, ToApplicationInfo(a, true))
	}
	return list
}

// ToReviewLogInfoList 审核历史批量转换
func ToReviewLogInfoList(logs []*model.ApplicationReviewLog) []types.ReviewLogInfo {
	list := make([]types.ReviewLogInfo, 0, len(logs))
	for _, l := range logs {
		list = append(list, types.ReviewLogInfo{
			Operation:  l.Operation,
			FromStatus: l.FromStatus,
			ToStatus:   l.ToStatus,
			Score:      l.Score,
			MaxScore:   l.MaxScore,
			Comment:    l.Comment,
			CreatedAt:  l.CreatedAt.Unix(),
		})
	}
	return list
}

// ToGuideInfo 地陪档案转 API 响应
func ToGuideInfo(g *model.GuideProfile) types.GuideInfo {
	return types.GuideInfo{
		ID:                g.ID,
		RealName:          g.RealName,
		City:              g.City,
		Bio:               g.Bio,
		Skills:            g.GetSkills(),
		AvailableServices: g.GetAvailableServices(),
		Languages:         g.GetLanguages(),
		HourlyRate:        g.HourlyRate,
		Rating:            g.Rating,
		Available:         g.Available == constants.GuideAvailable,
	}
}

// ToGuideInfoList 地陪列表批量转换
func ToGuideInfoList(guides []*model.GuideProfile) []types.GuideInfo {
	list := make([]types.GuideInfo, 0, len(guides))
	for _, g := range guides {
		list = append(list, ToGuideInfo(g))
	}
	return list
}

// MarshalJSONList 字符串切片序列化为 JSON 数组字符串（入库格式）
func MarshalJSONList(items []string) string {
	if len(items) == 0 {
		return "[]"
	}
	data, err := json.Marshal(items)
	if err != nil {
		return "[]"
	}
	return string(data)
}
