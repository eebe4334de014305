package admin

import (
	"context"
	"errors"

	apilogic "guide-platform/app/guide/api/internal/logic"
	"guide-platform/app/guide/api/internal/svc"
	"guide-platform/app/guide/model"
	"guide-platform/common/errorx"

	"github.com/zeromicro/go-zero/core/logx"
	"gorm.io/gorm"
)

// 共用转换函数别名

var toApplicationInfoList = apilogic.ToApplicationInfoList

// findApplication 查询申请，gorm 未找到错误映射为业务错误
func findApplication(ctx context.Context, svcCtx *svc.ServiceContext, id int64) (*model.GuideApplication, error) {
	app, err := svcCtx.ApplicationModel.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.ErrApplicationNotFound()
		}
		return nil, errorx.ErrDBError(err)
	}
	return app, nil
}

// appendReviewLog 追加审核历史，失败只记日志不阻断主流程
func appendReviewLog(ctx context.Context, svcCtx *svc.ServiceContext,
	applicationID, reviewerID int64, operation, fromStatus, toStatus string, score, maxScore int, comment string) {
	err := svcCtx.ReviewLogModel.Create(ctx, &model.ApplicationReviewLog{
		ApplicationID: applicationID,
		ReviewerID:    reviewerID,
		Operation:     operation,
		FromStatus:    fromStatus,
		ToStatus:      toStatus,
		Score:         score,
		MaxScore:      maxScore,
		Comment:       comment,
	})
	if err != nil {
		logx.WithContext(ctx).Errorf("记录审核历史失败: applicationID=%d, operation=%s, err=%v",
			applicationID, operation, err)
	}
}
