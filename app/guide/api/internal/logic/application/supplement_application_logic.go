// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package application

import (
	"context"

	"guide-platform/app/guide/api/internal/svc"
	"guide-platform/app/guide/api/internal/types"
	"guide-platform/common/constants"
	"guide-platform/common/ctxdata"
	"guide-platform/common/errorx"

	"github.com/zeromicro/go-zero/core/logx"
)

type SupplementApplicationLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

// 补充申请材料（need_more_info -> pending）
func NewSupplementApplicationLogic(ctx context.Context, svcCtx *svc.ServiceContext) *SupplementApplicationLogic {
	return &SupplementApplicationLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *SupplementApplicationLogic) SupplementApplication(req *types.SupplementApplicationReq) (*types.SupplementApplicationResp, error) {
	applicantID := ctxdata.GetUserIDFromCtx(l.ctx)
	if applicantID <= 0 {
		return nil, errorx.ErrUnauthorized()
	}

	app, err := findApplication(l.ctx, l.svcCtx, req.ID)
	if err != nil {
		return nil, err
	}

	// 1. 权限校验：仅申请人本人可补充
	if app.ApplicantID != applicantID {
		return nil, errorx.ErrForbidden()
	}

	// 2. 状态校验：仅待补充材料状态可提交
	if app.GetStatus() != constants.ApplicationStatusNeedMoreInfo {
		return nil, errorx.ErrApplicationCannotSubmit()
	}

	// 3. 只覆盖提交了的字段
	updates := map[string]interface{}{}
	if req.Bio != "" {
		updates["bio"] = req.Bio
	}
	if len(req.Skills) > 0 {
		updates["skills"] = marshalJSONList(req.Skills)
	}
	if req.HourlyRate > 0 {
		updates["hourly_rate"] = req.HourlyRate
	}
	if req.IDCardFront != "" {
		updates["id_card_front"] = req.IDCardFront
	}
	if req.IDCardBack != "" {
		updates["id_card_back"] = req.IDCardBack
	}
	if req.HealthCertificate != "" {
		updates["health_certificate"] = req.HealthCertificate
	}
	if req.BackgroundCheck != "" {
		updates["background_check"] = req.BackgroundCheck
	}
	if len(req.Photos) > 0 {
		updates["photos"] = marshalJSONList(req.Photos)
	}
	if req.Experience != "" {
		updates["experience"] = req.Experience
	}
	if req.Motivation != "" {
		updates["motivation"] = req.Motivation
	}

	// 4. 回到 pending 重新排队（状态前置条件防并发覆盖）
	ok, err := l.svcCtx.ApplicationModel.UpdateStatusGuarded(l.ctx, app.ID,
		constants.ApplicationStatusNeedMoreInfo, constants.ApplicationStatusPending, updates)
	if err != nil {
		return nil, errorx.ErrDBError(err)
	}
	if !ok {
		return nil, errorx.ErrApplicationInvalidStatus(app.Status, string(constants.ApplicationStatusPending))
	}

	// 5. 记录审核历史
	appendReviewLog(l.ctx, l.svcCtx, app.ID, applicantID,
		constants.ReviewOperatorApplicant,
		string(constants.ApplicationStatusNeedMoreInfo), string(constants.ApplicationStatusPending),
		0, 0, "补充申请材料")

	// 6. 重新触发 OCR 辅助识别（证件可能已替换）
	frontURL := app.IDCardFront
	if req.IDCardFront != "" {
		frontURL = req.IDCardFront
	}
	backURL := app.IDCardBack
	if req.IDCardBack != "" {
		backURL = req.IDCardBack
	}
	l.svcCtx.Producer.PublishApplicationSubmitted(l.ctx, app.ID, applicantID,
		app.RealName, app.IDNumber, frontURL, backURL)

	l.Infof("材料补充成功: applicationID=%d", app.ID)
	return &types.SupplementApplicationResp{
		ApplicationID: app.ID,
		Status:        string(constants.ApplicationStatusPending),
	}, nil
}
