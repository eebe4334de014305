// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package order

import (
	"context"

	"guide-platform/app/order/api/internal/svc"
	"guide-platform/app/order/api/internal/types"
	"guide-platform/common/constants"
	"guide-platform/common/ctxdata"
	"guide-platform/common/errorx"

	"github.com/zeromicro/go-zero/core/logx"
)

type GetOrderLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

// 查询订单详情（含状态流转历史与投诉记录）
func NewGetOrderLogic(ctx context.Context, svcCtx *svc.ServiceContext) *GetOrderLogic {
	return &GetOrderLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *GetOrderLogic) GetOrder(req *types.GetOrderReq) (*types.GetOrderResp, error) {
	userID := ctxdata.GetUserIDFromCtx(l.ctx)
	if userID <= 0 {
		return nil, errorx.ErrUnauthorized()
	}
	role := ctxdata.GetRoleFromCtx(l.ctx)

	order, err := findOrder(l.ctx, l.svcCtx, req.OrderNo)
	if err != nil {
		return nil, err
	}

	// 归属校验：客户本人、接单地陪或管理员可见
	if role != constants.RoleAdmin &&
		order.CustomerID != userID &&
		!isAssignedGuide(l.ctx, l.svcCtx, order, userID) {
		return nil, errorx.ErrOrderPermissionDeny()
	}

	logs, err := l.svcCtx.StatusLogModel.FindByOrderID(l.ctx, order.ID)
	if err != nil {
		l.Errorf("查询状态日志失败: orderID=%d, err=%v", order.ID, err)
		logs = nil // 历史查询失败不阻塞详情展示
	}

	complaints, err := l.svcCtx.ComplaintModel.FindByOrderID(l.ctx, order.ID)
	if err != nil {
		l.Errorf("查询投诉记录失败: orderID=%d, err=%v", order.ID, err)
		complaints = nil
	}

	return &types.GetOrderResp{
		Order:      toInfo(order),
		StatusLogs: toStatusLogs(logs),
		Complaints: toComplaints(complaints),
	}, nil
}
