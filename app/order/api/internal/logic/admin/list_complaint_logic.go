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

type ListComplaintLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

// 后台投诉列表
func NewListComplaintLogic(ctx context.Context, svcCtx *svc.ServiceContext) *ListComplaintLogic {
	return &ListComplaintLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *ListComplaintLogic) ListComplaint(req *types.ListComplaintReq) (*response.PageData, error) {
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

	complaints, total, err := l.svcCtx.ComplaintModel.FindByStatus(l.ctx, req.Status, page, pageSize)
	if err != nil {
		return nil, errorx.ErrDBError(err)
	}

	return &response.PageData{
		List:     apilogic.ToComplaintInfoList(complaints),
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}
