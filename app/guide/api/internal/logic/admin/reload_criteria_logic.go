// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package admin

import (
	"context"

	"guide-platform/app/guide/api/internal/svc"
	"guide-platform/app/guide/api/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

type ReloadCriteriaLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

// 评审规则热加载
// 规则表变更后手动触发，无自动失效机制
func NewReloadCriteriaLogic(ctx context.Context, svcCtx *svc.ServiceContext) *ReloadCriteriaLogic {
	return &ReloadCriteriaLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *ReloadCriteriaLogic) ReloadCriteria() (*types.ReloadCriteriaResp, error) {
	count, err := l.svcCtx.RubricStore.Reload(l.ctx)
	if err != nil {
		return nil, err
	}

	l.Infof("评审规则已重新加载: count=%d", count)
	return &types.ReloadCriteriaResp{Count: count}, nil
}
