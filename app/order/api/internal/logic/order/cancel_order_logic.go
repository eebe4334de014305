// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package order

import (
	"context"
	"time"

	"guide-platform/app/order/api/internal/svc"
	"guide-platform/app/order/api/internal/types"
	"guide-platform/common/constants"
	"guide-platform/common/ctxdata"
	"guide-platform/common/errorx"

	"github.com/zeromicro/go-zero/core/logx"
)

type CancelOrderLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

// 取消订单（收款前，pending/confirmed -> cancelled）
func NewCancelOrderLogic(ctx context.Context, svcCtx *svc.ServiceContext) *CancelOrderLogic {
	return &CancelOrderLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *CancelOrderLogic) CancelOrder(req *types.CancelOrderReq) (*types.OrderInfo, error) {
	userID := ctxdata.GetUserIDFromCtx(l.ctx)
	if userID <= 0 {
		return nil, errorx.ErrUnauthorized()
	}
	role := ctxdata.GetRoleFromCtx(l.ctx)

	// 1. 查询订单并校验归属（客户本人或管理员）
	order, err := findOrder(l.ctx, l.svcCtx, req.OrderNo)
	if err != nil {
		return nil, err
	}
	if role != constants.RoleAdmin && order.CustomerID != userID {
		return nil, errorx.ErrOrderPermissionDeny()
	}

	// 2. 状态校验：收款前才允许直接取消
	// 已收款订单走退款申请通道，已完成订单没有取消边
	from := order.GetStatus()
	if !constants.CanCancelDirect(from) {
		return nil, errorx.ErrInvalidTransition(string(from), string(constants.OrderStatusCancelled))
	}

	// 3. 状态流转
	now := time.Now()
	ok, err := l.svcCtx.OrderModel.UpdateStatusGuarded(l.ctx, order.ID, from, constants.OrderStatusCancelled,
		map[string]interface{}{"cancelled_at": &now})
	if err != nil {
		return nil, errorx.ErrDBError(err)
	}
	if !ok {
		return nil, errorx.ErrInvalidTransition(string(from), string(constants.OrderStatusCancelled))
	}

	appendStatusLog(l.ctx, l.svcCtx, order.ID, string(from), string(constants.OrderStatusCancelled),
		userID, role, req.Reason)

	// 4. 发布取消事件
	l.svcCtx.Producer.PublishOrderCancelled(l.ctx, order.OrderNo, order.CustomerID, req.Reason, false)

	l.Infof("订单取消成功: orderNo=%s, operator=%d", order.OrderNo, userID)

	// 回读最新状态返回
	updated, err := findOrder(l.ctx, l.svcCtx, req.OrderNo)
	if err != nil {
		return nil, err
	}
	info := toInfo(updated)
	return &info, nil
}
