// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package admin

import (
	"context"

	apilogic "guide-platform/app/order/api/internal/logic"
	"guide-platform/app/order/api/internal/svc"
	"guide-platform/app/order/api/internal/types"
	"guide-platform/common/constants"
	"guide-platform/common/errorx"
	"guide-platform/common/response"

	"github.com/zeromicro/go-zero/core/logx"
)

type AdminListOrderLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

// 后台订单列表（可按状态筛选，兼容历史大写状态入参）
func NewAdminListOrderLogic(ctx context.Context, svcCtx *svc.ServiceContext) *AdminListOrderLogic {
	return &AdminListOrderLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *AdminListOrderLogic) AdminListOrder(req *types.AdminListOrderReq) (*response.PageData, error) {
	// 状态筛选：空查全部；历史客户端可能传大写状态，统一归一化
	var status constants.OrderStatus
	if req.Status != "" {
		normalized, ok := constants.NormalizeOrderStatus(req.Status)
		if !ok {
			return nil, errorx.ErrInvalidParams("未知的订单状态: " + req.Status)
		}
		status = normalized
	}

	page, pageSize := req.Page, req.PageSize
	if page <= 0 {
		page = constants.DefaultPage
	}
	if pageSize <= 0 {
		pageSize = constants.DefaultPageSize
	}
	if pageSize > constants.MaxPageSize {
		pageSize = constants.MaxPageSize
	}

	orders, total, err := l.svcCtx.OrderModel.FindByStatus(l.ctx, status, page, pageSize)
	if err != nil {
		return nil, errorx.ErrDBError(err)
	}

	return &response.PageData{
		List:     apilogic.ToOrderInfoList(orders),
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}
