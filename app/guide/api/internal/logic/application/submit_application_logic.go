// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package application

import (
	"context"
	"errors"
	"strconv"
	"time"

	"guide-platform/app/guide/api/internal/svc"
	"guide-platform/app/guide/api/internal/types"
	"guide-platform/app/guide/model"
	"guide-platform/common/constants"
	"guide-platform/common/ctxdata"
	"guide-platform/common/errorx"

	"github.com/zeromicro/go-zero/core/logx"
	"gorm.io/gorm"
)

type SubmitApplicationLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

// 提交地陪入驻申请
func NewSubmitApplicationLogic(ctx context.Context, svcCtx *svc.ServiceContext) *SubmitApplicationLogic {
	return &SubmitApplicationLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *SubmitApplicationLogic) SubmitApplication(req *types.SubmitApplicationReq) (*types.SubmitApplicationResp, error) {
	applicantID := ctxdata.GetUserIDFromCtx(l.ctx)
	if applicantID <= 0 {
		return nil, errorx.ErrUnauthorized()
	}

	// 1. 提交频率限制（滑动窗口内至多 N 次）
	if err := l.checkRateLimit(applicantID); err != nil {
		return nil, err
	}

	// 2. 唯一性校验：同一申请人至多一条进行中的申请
	active, err := l.svcCtx.ApplicationModel.FindActiveByApplicant(l.ctx, applicantID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errorx.ErrDBError(err)
	}
	if active != nil {
		return nil, errorx.ErrApplicationAlreadyExist()
	}

	// 3. 构造申请记录（初始状态 pending）
	app := &model.GuideApplication{
		ApplicantID: applicantID,

		RealName: req.RealName,
		IDNumber: req.IDNumber,
		Phone:    req.Phone,
		City:     req.City,
		Address:  req.Address,
		Age:      req.Age,
		Gender:   req.Gender,

		Bio:               req.Bio,
		Skills:            marshalJSONList(req.Skills),
		HourlyRate:        req.HourlyRate,
		AvailableServices: marshalJSONList(req.AvailableServices),
		Languages:         marshalJSONList(req.Languages),

		IDCardFront:       req.IDCardFront,
		IDCardBack:        req.IDCardBack,
		HealthCertificate: req.HealthCertificate,
		BackgroundCheck:   req.BackgroundCheck,
		Photos:            marshalJSONList(req.Photos),

		Experience:               req.Experience,
		Motivation:               req.Motivation,
		EmergencyContactName:     req.EmergencyContactName,
		EmergencyContactPhone:    req.EmergencyContactPhone,
		EmergencyContactRelation: req.EmergencyContactRelation,

		Status: string(constants.ApplicationStatusPending),
	}

	if err := l.svcCtx.ApplicationModel.Create(l.ctx, app); err != nil {
		l.Errorf("创建申请失败: applicantID=%d, err=%v", applicantID, err)
		return nil, errorx.ErrDBError(err)
	}

	// 4. 记录审核历史
	appendReviewLog(l.ctx, l.svcCtx, app.ID, applicantID,
		constants.ReviewOperatorApplicant, "", string(constants.ApplicationStatusPending), 0, 0, "提交入驻申请")

	// 5. 发布申请提交事件（触发 OCR 辅助识别与通知）
	l.svcCtx.Producer.PublishApplicationSubmitted(l.ctx, app.ID, applicantID,
		app.RealName, app.IDNumber, app.IDCardFront, app.IDCardBack)

	l.Infof("申请提交成功: applicationID=%d, applicantID=%d", app.ID, applicantID)
	return &types.SubmitApplicationResp{
		ApplicationID: app.ID,
		Status:        app.Status,
	}, nil
}

// checkRateLimit 申请提交限流（Redis INCR + 过期窗口）
// Redis 故障时放行，不阻断提交
func (l *SubmitApplicationLogic) checkRateLimit(applicantID int64) error {
	limitKey := constants.ApplicationRateLimitPrefix + strconv.FormatInt(applicantID, 10)
	count, err := l.svcCtx.Redis.Incr(l.ctx, limitKey).Result()
	if err != nil {
		l.Errorf("申请限流计数失败，放行: applicantID=%d, err=%v", applicantID, err)
		return nil
	}
	if count == 1 {
		l.svcCtx.Redis.Expire(l.ctx, limitKey, constants.ApplicationRateLimitWindow*time.Second)
	}
	if count > constants.ApplicationRateLimitMax {
		return errorx.ErrTooManyRequests()
	}
	return nil
}
