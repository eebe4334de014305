// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package order

import (
	"context"

	"guide-platform/app/order/api/internal/svc"
	"guide-platform/app/order/api/internal/types"
	"guide-platform/common/ctxdata"
	"guide-platform/common/errorx"
	"guide-platform/common/response"

	"github.com/zeromicro/go-zero/core/logx"
)

type GuideOrderListLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

// 我的接单列表（地陪视角）
func NewGuideOrderListLogic(ctx context.Context, svcCtx *svc.ServiceContext) *GuideOrderListLogic {
	return &GuideOrderListLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *GuideOrderListLogic) GuideOrderList(req *types.ListOrderReq) (*response.PageData, error) {
	userID := ctxdata.GetUserIDFromCtx(l.ctx)
	if userID <= 0 {
		return nil, errorx.ErrUnauthorized()
	}

	// 订单上存的是地陪档案ID
	profile, err := l.svcCtx.GuideProfileModel.FindByUserID(l.ctx, userID)
	if err != nil {
		return nil, errorx.ErrGuideNotFound()
	}

	page, pageSize := normalizePage(req.Page, req.PageSize)
	orders, total, err := l.svcCtx.OrderModel.FindByGuideID(l.ctx, profile.ID, page, pageSize)
	if err != nil {
		return nil, errorx.ErrDBError(err)
	}

	return &response.PageData{
		List:     toInfoList(orders),
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}
