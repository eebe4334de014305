// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package admin

import (
	"context"
	"fmt"

	"guide-platform/app/guide/api/internal/svc"
	"guide-platform/app/guide/api/internal/types"
	"guide-platform/app/guide/rubric"
	"guide-platform/common/constants"
	"guide-platform/common/ctxdata"
	"guide-platform/common/errorx"

	"github.com/zeromicro/go-zero/core/logx"
)

type AutoReviewLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

// 自动评审：按评审规则给申请打分
// 打分结果仅作人工裁决参考，不直接通过或拒绝申请
func NewAutoReviewLogic(ctx context.Context, svcCtx *svc.ServiceContext) *AutoReviewLogic {
	return &AutoReviewLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *AutoReviewLogic) AutoReview(req *types.AutoReviewReq) (*types.AutoReviewResp, error) {
	reviewerID := ctxdata.GetUserIDFromCtx(l.ctx)
	if reviewerID <= 0 {
		return nil, errorx.ErrUnauthorized()
	}

	app, err := findApplication(l.ctx, l.svcCtx, req.ID)
	if err != nil {
		return nil, err
	}

	// 1. 状态校验：仅 pending/under_review 可评审
	if !constants.CanReviewApplication(app.GetStatus()) {
		return nil, errorx.ErrApplicationCannotReview()
	}

	// 2. 加载评审规则（进程级存储，空配置报错而非默认通过）
	criteria, err := l.svcCtx.RubricStore.Get(l.ctx)
	if err != nil {
		return nil, err
	}

	// 3. 规则引擎打分
	result, err := rubric.Evaluate(app, criteria)
	if err != nil {
		return nil, err
	}

	// 未识别的规则记日志，提示管理员检查配置
	for _, item := range result.Unrecognized {
		l.Errorf("评审规则未实现，已排除计分: applicationID=%d, criterion=%s", app.ID, item)
	}

	// 4. pending 申请进入 under_review（已在审核中的保持不变）
	status := app.GetStatus()
	if status == constants.ApplicationStatusPending {
		ok, err := l.svcCtx.ApplicationModel.UpdateStatusGuarded(l.ctx, app.ID,
			constants.ApplicationStatusPending, constants.ApplicationStatusUnderReview, nil)
		if err != nil {
			return nil, errorx.ErrDBError(err)
		}
		if ok {
			status = constants.ApplicationStatusUnderReview
		}
	}

	// 5. 记录机器评分历史
	comment := fmt.Sprintf("自动评审：得分 %d/%d，通过=%v", result.Score, result.MaxScore, result.Passed)
	if len(result.Issues) > 0 {
		comment += fmt.Sprintf("，阻断项 %d 个", len(result.Issues))
	}
	appendReviewLog(l.ctx, l.svcCtx, app.ID, 0,
		constants.ReviewOperatorAutoRubric, app.Status, string(status),
		result.Score, result.MaxScore, comment)

	l.Infof("自动评审完成: applicationID=%d, score=%d/%d, passed=%v",
		app.ID, result.Score, result.MaxScore, result.Passed)

	return &types.AutoReviewResp{
		ApplicationID:   app.ID,
		Score:           result.Score,
		MaxScore:        result.MaxScore,
		Passed:          result.Passed,
		Issues:          result.Issues,
		Recommendations: result.Recommendations,
		Unrecognized:    result.Unrecognized,
		Status:          string(status),
	}, nil
}
