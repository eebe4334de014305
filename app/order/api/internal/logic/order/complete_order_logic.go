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

type CompleteOrderLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

// 完成订单（in_progress -> completed）
func NewCompleteOrderLogic(ctx context.Context, svcCtx *svc.ServiceContext) *CompleteOrderLogic {
	return &CompleteOrderLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *CompleteOrderLogic) CompleteOrder(req *types.CompleteOrderReq) (*types.OrderInfo, error) {
	userID := ctxdata.GetUserIDFromCtx(l.ctx)
	if userID <= 0 {
		return nil, errorx.ErrUnauthorized()
	}
	role := ctxdata.GetRoleFromCtx(l.ctx)

	// 1. 查询订单，完成操作限接单地陪或管理员
	order, err := findOrder(l.ctx, l.svcCtx, req.OrderNo)
	if err != nil {
		return nil, err
	}
	if role != constants.RoleAdmin && !isAssignedGuide(l.ctx, l.svcCtx, order, userID) {
		return nil, errorx.ErrOrderPermissionDeny()
	}

	// 2. 状态流转：仅进行中可完成
	from := order.GetStatus()
	if !constants.CanOrderTransition(from, constants.OrderStatusCompleted) {
		return nil, errorx.ErrInvalidTransition(string(from), string(constants.OrderStatusCompleted))
	}

	now := time.Now()
	ok, err := l.svcCtx.OrderModel.UpdateStatusGuarded(l.ctx, order.ID, from, constants.OrderStatusCompleted,
		map[string]interface{}{"completed_at": &now})
	if err != nil {
		return nil, errorx.ErrDBError(err)
	}
	if !ok {
		return nil, errorx.ErrInvalidTransition(string(from), string(constants.OrderStatusCompleted))
	}

	appendStatusLog(l.ctx, l.svcCtx, order.ID, string(from), string(constants.OrderStatusCompleted),
		userID, role, "服务完成")

	// 3. 发布完成事件
	var guideID int64
	if order.GuideID.Valid {
		guideID = order.GuideID.Int64
	}
	l.svcCtx.Producer.PublishOrderCompleted(l.ctx, order.OrderNo, order.CustomerID, guideID)

	l.Infof("订单完成: orderNo=%s, guideID=%d", order.OrderNo, guideID)

	updated, err := findOrder(l.ctx, l.svcCtx, req.OrderNo)
	if err != nil {
		return nil, err
	}
	info := toInfo(updated)
	return &info, nil
}
