// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package admin

import (
	"context"

	"guide-platform/app/guide/api/internal/svc"
	"guide-platform/app/guide/api/internal/types"
	"guide-platform/app/guide/model"
	"guide-platform/common/constants"
	"guide-platform/common/ctxdata"
	"guide-platform/common/errorx"

	"github.com/zeromicro/go-zero/core/logx"
)

// 审核动作
const (
	actionApprove      = "approve"
	actionReject       = "reject"
	actionNeedMoreInfo = "need_more_info"
)

type ReviewApplicationLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

// 人工审核裁决：通过 / 拒绝 / 要求补充材料
// 审核通过时创建地陪档案
func NewReviewApplicationLogic(ctx context.Context, svcCtx *svc.ServiceContext) *ReviewApplicationLogic {
	return &ReviewApplicationLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *ReviewApplicationLogic) ReviewApplication(req *types.ReviewApplicationReq) (*types.ReviewApplicationResp, error) {
	reviewerID := ctxdata.GetUserIDFromCtx(l.ctx)
	if reviewerID <= 0 {
		return nil, errorx.ErrUnauthorized()
	}

	// 1. 动作映射目标状态
	var target constants.ApplicationStatus
	switch req.Action {
	case actionApprove:
		target = constants.ApplicationStatusApproved
	case actionReject:
		target = constants.ApplicationStatusRejected
	case actionNeedMoreInfo:
		target = constants.ApplicationStatusNeedMoreInfo
	default:
		return nil, errorx.ErrInvalidParams("无效的审核动作: " + req.Action)
	}

	app, err := findApplication(l.ctx, l.svcCtx, req.ID)
	if err != nil {
		return nil, err
	}

	// 2. 状态机校验
	from := app.GetStatus()
	if !constants.CanApplicationTransition(from, target) {
		return nil, errorx.ErrApplicationInvalidStatus(string(from), string(target))
	}

	// 3. 状态前置条件更新，防并发审核覆盖
	ok, err := l.svcCtx.ApplicationModel.UpdateStatusGuarded(l.ctx, app.ID, from, target, nil)
	if err != nil {
		return nil, errorx.ErrDBError(err)
	}
	if !ok {
		return nil, errorx.ErrApplicationCannotReview()
	}

	// 4. 审核通过：创建地陪档案
	var guideID int64
	if target == constants.ApplicationStatusApproved {
		guideID, err = l.provisionProfile(app)
		if err != nil {
			return nil, err
		}
	}

	// 5. 记录审核历史
	appendReviewLog(l.ctx, l.svcCtx, app.ID, reviewerID,
		constants.ReviewOperatorManual, string(from), string(target), 0, 0, req.Comment)

	// 6. 发布审核结果事件（通知申请人）
	l.svcCtx.Producer.PublishApplicationReviewed(l.ctx, app.ID, app.ApplicantID,
		string(target), req.Comment)

	l.Infof("审核裁决完成: applicationID=%d, action=%s, reviewerID=%d", app.ID, req.Action, reviewerID)
	return &types.ReviewApplicationResp{
		ApplicationID: app.ID,
		Status:        string(target),
		GuideID:       guideID,
	}, nil
}

// provisionProfile 审核通过后创建地陪档案
func (l *ReviewApplicationLogic) provisionProfile(app *model.GuideApplication) (int64, error) {
	profile := &model.GuideProfile{
		UserID:            app.ApplicantID,
		ApplicationID:     app.ID,
		RealName:          app.RealName,
		City:              app.City,
		Bio:               app.Bio,
		Skills:            app.Skills,
		HourlyRate:        app.HourlyRate,
		AvailableServices: app.AvailableServices,
		Languages:         app.Languages,
		Available:         constants.GuideAvailable,
	}
	if err := l.svcCtx.ProfileModel.Create(l.ctx, profile); err != nil {
		l.Errorf("创建地陪档案失败: applicationID=%d, err=%v", app.ID, err)
		return 0, errorx.ErrDBError(err)
	}

	// 新档案生效，城市列表缓存失效
	l.svcCtx.GuideCache.InvalidateCityList(l.ctx, app.City)

	l.Infof("地陪档案已创建: guideID=%d, userID=%d", profile.ID, app.ApplicantID)
	return profile.ID, nil
}
