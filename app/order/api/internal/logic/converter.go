package logic

import (
	"guide-platform/app/order/api/internal/types"
	"guide-platform/app/order/model"
)

// ToOrderInfo 订单实体转 API 响应
func ToOrderInfo(o *model.Order) types.OrderInfo {
	info := types.OrderInfo{
		OrderNo:         o.OrderNo,
		CustomerID:      o.CustomerID,
		ServiceType:     o.ServiceType,
		StartTime:       o.StartTime.Unix(),
		DurationHours:   o.DurationHours,
		City:            o.City,
		Area:            o.Area,
		Address:         o.Address,
		SpecialRequests: o.SpecialRequests,
		DepositAmount:   o.DepositAmount,
		TotalAmount:     o.TotalAmount,
		FinalAmount:     o.FinalAmount,
		PaidAmount:      o.PaidAmount,
		Status:          string(o.GetStatus()),
		StatusName:      o.GetStatusName(),
		PaymentMethod:   o.PaymentMethod,
		RefundAmount:    o.RefundAmount,
		CreatedAt:       o.CreatedAt.Unix(),
	}
	if o.GuideID.Valid {
		info.GuideID = o.GuideID.Int64
	}
	if o.CompletedAt != nil {
		info.CompletedAt = o.CompletedAt.Unix()
	}
	return info
}

// ToOrderInfoList 订单列表批量转换
func ToOrderInfoList(orders []*model.Order) []types.OrderInfo {
	list := make([]types.OrderInfo, 0, len(orders))
	for _, o := range orders {
		list = append(list, ToOrderInfo(o))
	}
	return list
}

// ToStatusLogInfoList 状态流转记录批量转换
func ToStatusLogInfoList(logs []*model.OrderStatusLog) []types.StatusLogInfo {
	list := make([]types.StatusLogInfo, 0, len(logs))
	for _, l := range logs {
		list = append(list, types.StatusLogInfo{
			FromStatus:   l.FromStatus,
			ToStatus:     l.ToStatus,
			OperatorRole: l.OperatorRole,
			Remark:       l.Remark,
			CreatedAt:    l.CreatedAt.Unix(),
		})
	}
	return list
}

// ToComplaintInfo 投诉实体转 API 响应
func ToComplaintInfo(c *model.Complaint) types.ComplaintInfo {
	return types.ComplaintInfo{
		ID:         c.ID,
		OrderID:    c.OrderID,
		CustomerID: c.CustomerID,
		GuideID:    c.GuideID,
		Content:    c.Content,
		Status:     c.Status,
		StatusName: c.GetStatusName(),
		Resolution: c.Resolution,
		CreatedAt:  c.CreatedAt.Unix(),
	}
}

// ToComplaintInfoList 投诉列表批量转换
func ToComplaintInfoList(complaints []*model.Complaint) []types.ComplaintInfo {
	list := make([]types.ComplaintInfo, 0, len(complaints))
	for _, c := range complaints {
		list = append(list, ToComplaintInfo(c))
	}
	return list
}
