// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package application

import (
	"context"
	"errors"

	"guide-platform/app/guide/api/internal/svc"
	"guide-platform/app/guide/api/internal/types"
	"guide-platform/common/ctxdata"
	"guide-platform/common/errorx"

	"github.com/zeromicro/go-zero/core/logx"
	"gorm.io/gorm"
)

type GetMyApplicationLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

// 查询我的最新申请及审核历史
func NewGetMyApplicationLogic(ctx context.Context, svcCtx *svc.ServiceContext) *GetMyApplicationLogic {
	return &GetMyApplicationLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *GetMyApplicationLogic) GetMyApplication() (*types.GetMyApplicationResp, error) {
	applicantID := ctxdata.GetUserIDFromCtx(l.ctx)
	if applicantID <= 0 {
		return nil, errorx.ErrUnauthorized()
	}

	// 取最近一条申请（进行中优先级等同于最新提交）
	apps, err := l.svcCtx.ApplicationModel.FindByApplicant(l.ctx, applicantID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errorx.ErrDBError(err)
	}
	if len(apps) == 0 {
		return nil, errorx.ErrApplicationNotFound()
	}
	app := apps[0]

	// 审核历史拉取失败不阻断详情返回
	logs, err := l.svcCtx.ReviewLogModel.FindByApplicationID(l.ctx, app.ID)
	if err != nil {
		l.Errorf("查询审核历史失败: applicationID=%d, err=%v", app.ID, err)
		logs = nil
	}

	// 申请人视角不返回 OCR 字段
	return &types.GetMyApplicationResp{
		Application: toApplicationInfo(app, false),
		ReviewLogs:  toReviewLogs(logs),
	}, nil
}
