// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package order

import (
	"context"
	"errors"

	"guide-platform/app/order/api/internal/svc"
	"guide-platform/app/order/api/internal/types"
	"guide-platform/common/constants"
	"guide-platform/common/ctxdata"
	"guide-platform/common/errorx"

	"github.com/zeromicro/go-zero/core/logx"
	"gorm.io/gorm"
)

type SelectGuideLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

// 客户选择地陪（pending -> confirmed）
func NewSelectGuideLogic(ctx context.Context, svcCtx *svc.ServiceContext) *SelectGuideLogic {
	return &SelectGuideLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *SelectGuideLogic) SelectGuide(req *types.SelectGuideReq) (*types.AssignGuideResp, error) {
	customerID := ctxdata.GetUserIDFromCtx(l.ctx)
	if customerID <= 0 {
		return nil, errorx.ErrUnauthorized()
	}

	// 1. 查询订单并校验归属
	order, err := findOrder(l.ctx, l.svcCtx, req.OrderNo)
	if err != nil {
		return nil, err
	}
	if order.CustomerID != customerID {
		return nil, errorx.ErrOrderPermissionDeny()
	}

	// 2. 状态校验：仅 pending 可选地陪
	from := order.GetStatus()
	if !constants.CanOrderTransition(from, constants.OrderStatusConfirmed) {
		return nil, errorx.ErrInvalidTransition(string(from), string(constants.OrderStatusConfirmed))
	}

	// 3. 地陪校验：存在、可接单、城市匹配
	guide, err := l.svcCtx.GuideProfileModel.FindByID(l.ctx, req.GuideID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.ErrGuideNotFound()
		}
		return nil, errorx.ErrDBError(err)
	}
	if !guide.IsAvailable() {
		return nil, errorx.NewWithMessage(errorx.CodeGuideUnavailable, "该地陪暂停接单")
	}
	if guide.City != order.City {
		return nil, errorx.ErrInvalidParams("地陪服务城市与订单不匹配")
	}

	// 4. 分配地陪（guide_id IS NULL 条件保证一单至多一个地陪）
	assigned, err := l.svcCtx.OrderModel.AssignGuide(l.ctx, order.ID, guide.ID)
	if err != nil {
		return nil, errorx.ErrDBError(err)
	}
	if !assigned {
		return nil, errorx.ErrAlreadyAssigned()
	}

	// 5. 状态流转 pending -> confirmed（带前置状态条件）
	ok, err := l.svcCtx.OrderModel.UpdateStatusGuarded(l.ctx, order.ID, from, constants.OrderStatusConfirmed, nil)
	if err != nil {
		return nil, errorx.ErrDBError(err)
	}
	if !ok {
		return nil, errorx.ErrInvalidTransition(string(from), string(constants.OrderStatusConfirmed))
	}

	appendStatusLog(l.ctx, l.svcCtx, order.ID, string(from), string(constants.OrderStatusConfirmed),
		customerID, constants.RoleCustomer, "客户选择地陪")

	// 6. 发布分配事件
	l.svcCtx.Producer.PublishGuideAssigned(l.ctx, order.OrderNo, customerID, guide.ID, false)

	l.Infof("地陪选择成功: orderNo=%s, guideID=%d", order.OrderNo, guide.ID)
	return &types.AssignGuideResp{
		OrderNo: order.OrderNo,
		GuideID: guide.ID,
		Status:  string(constants.OrderStatusConfirmed),
	}, nil
}
