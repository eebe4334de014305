package order

import (
	"context"
	"errors"

	apilogic "guide-platform/app/order/api/internal/logic"
	"guide-platform/app/order/api/internal/svc"
	"guide-platform/app/order/api/internal/types"
	"guide-platform/app/order/model"
	"guide-platform/common/errorx"

	"github.com/zeromicro/go-zero/core/logx"
	"gorm.io/gorm"
)

// toInfo 订单实体转响应（公共转换器的本地别名）
func toInfo(o *model.Order) types.OrderInfo {
	return apilogic.ToOrderInfo(o)
}

// toStatusLogs 状态流转记录转响应
func toStatusLogs(logs []*model.OrderStatusLog) []types.StatusLogInfo {
	return apilogic.ToStatusLogInfoList(logs)
}

// toInfoList 订单列表转响应
func toInfoList(orders []*model.Order) []types.OrderInfo {
	return apilogic.ToOrderInfoList(orders)
}

// apiComplaint 投诉实体转响应
func apiComplaint(c *model.Complaint) types.ComplaintInfo {
	return apilogic.ToComplaintInfo(c)
}

// toComplaints 投诉列表转响应
func toComplaints(complaints []*model.Complaint) []types.ComplaintInfo {
	return apilogic.ToComplaintInfoList(complaints)
}

// isAssignedGuide 当前用户是否为订单的接单地陪
// 订单上存的是地陪档案ID，需先按用户ID查档案再比对
func isAssignedGuide(ctx context.Context, svcCtx *svc.ServiceContext, o *model.Order, userID int64) bool {
	if !o.GuideID.Valid {
		return false
	}
	profile, err := svcCtx.GuideProfileModel.FindByUserID(ctx, userID)
	if err != nil {
		return false
	}
	return profile.ID == o.GuideID.Int64
}

// findOrder 按订单号查询，不存在返回业务错误
func findOrder(ctx context.Context, svcCtx *svc.ServiceContext, orderNo string) (*model.Order, error) {
	order, err := svcCtx.OrderModel.FindByOrderNo(ctx, orderNo)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.ErrOrderNotFound()
		}
		return nil, errorx.ErrDBError(err)
	}
	return order, nil
}

// appendStatusLog 记录状态流转（失败只记日志，不影响主流程）
func appendStatusLog(
	ctx context.Context,
	svcCtx *svc.ServiceContext,
	orderID int64,
	from, to string,
	operatorID int64,
	role, remark string,
) {
	err := svcCtx.StatusLogModel.Create(ctx, &model.OrderStatusLog{
		OrderID:      orderID,
		FromStatus:   from,
		ToStatus:     to,
		OperatorID:   operatorID,
		OperatorRole: role,
		Remark:       remark,
	})
	if err != nil {
		logx.WithContext(ctx).Errorf("记录状态日志失败: orderID=%d, %s->%s, err=%v", orderID, from, to, err)
	}
}
