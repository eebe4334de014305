// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package guide

import (
	"context"

	apilogic "guide-platform/app/guide/api/internal/logic"
	"guide-platform/app/guide/api/internal/svc"
	"guide-platform/app/guide/api/internal/types"
	"guide-platform/common/constants"
	"guide-platform/common/errorx"
	"guide-platform/common/response"

	"github.com/zeromicro/go-zero/core/logx"
)

type ListGuideLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

// 地陪列表（公开浏览，按城市筛选）
func NewListGuideLogic(ctx context.Context, svcCtx *svc.ServiceContext) *ListGuideLogic {
	return &ListGuideLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *ListGuideLogic) ListGuide(req *types.ListGuideReq) (*response.PageData, error) {
	page, pageSize := normalizePage(req.Page, req.PageSize)

	guides, total, err := l.svcCtx.ProfileModel.FindByCity(l.ctx, req.City, page, pageSize)
	if err != nil {
		return nil, errorx.ErrDBError(err)
	}

	return &response.PageData{
		List:     apilogic.ToGuideInfoList(guides),
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// normalizePage 分页参数兜底
func normalizePage(page, pageSize int) (int, int) {
	if page <= 0 {
		page = constants.DefaultPage
	}
	if pageSize <= 0 {
		pageSize = constants.DefaultPageSize
	}
	if pageSize > constants.MaxPageSize {
		pageSize = constants.MaxPageSize
	}
	return page, pageSize
}
