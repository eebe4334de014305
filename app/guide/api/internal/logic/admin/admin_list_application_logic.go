// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package admin

import (
	"context"

	"guide-platform/app/guide/api/internal/svc"
	"guide-platform/app/guide/api/internal/types"
	"guide-platform/common/constants"
	"guide-platform/common/errorx"
	"guide-platform/common/response"

	"github.com/zeromicro/go-zero/core/logx"
)

type AdminListApplicationLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

// 后台申请列表（按状态筛选）
func NewAdminListApplicationLogic(ctx context.Context, svcCtx *svc.ServiceContext) *AdminListApplicationLogic {
	return &AdminListApplicationLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *AdminListApplicationLogic) AdminListApplication(req *types.AdminListApplicationReq) (*response.PageData, error) {
	status := constants.ApplicationStatus(req.Status)
	if req.Status != "" {
		if _, ok := constants.ApplicationStatusNameMap[status]; !ok {
			return nil, errorx.ErrInvalidParams("无效的申请状态: " + req.Status)
		}
	}

	page := req.Page
	if page <= 0 {
		page = constants.DefaultPage
	}
	pageSize := req.PageSize
	if pageSize <= 0 {
		pageSize = constants.DefaultPageSize
	}
	if pageSize > constants.MaxPageSize {
		pageSize = constants.MaxPageSize
	}

	apps, total, err := l.svcCtx.ApplicationModel.FindByStatus(l.ctx, status, page, pageSize)
	if err != nil {
		return nil, errorx.ErrDBError(err)
	}

	return &response.PageData{
		List:     toApplicationInfoList(apps),
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}
