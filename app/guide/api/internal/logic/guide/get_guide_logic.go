// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package guide

import (
	"context"
	"errors"

	apilogic "guide-platform/app/guide/api/internal/logic"
	"guide-platform/app/guide/api/internal/svc"
	"guide-platform/app/guide/api/internal/types"
	"guide-platform/app/guide/cache"
	"guide-platform/common/errorx"

	"github.com/zeromicro/go-zero/core/logx"
)

type GetGuideLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

// 地陪详情（公开浏览，走缓存）
func NewGetGuideLogic(ctx context.Context, svcCtx *svc.ServiceContext) *GetGuideLogic {
	return &GetGuideLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *GetGuideLogic) GetGuide(req *types.GetGuideReq) (*types.GetGuideResp, error) {
	if req.ID <= 0 {
		return nil, errorx.ErrInvalidParams("无效的地陪ID")
	}

	profile, err := l.svcCtx.GuideCache.GetByID(l.ctx, req.ID)
	if err != nil {
		if errors.Is(err, cache.ErrGuideNotFound) {
			return nil, errorx.ErrGuideNotFound()
		}
		return nil, errorx.ErrDBError(err)
	}

	return &types.GetGuideResp{
		Guide: apilogic.ToGuideInfo(profile),
	}, nil
}
