// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package admin

import (
	"context"
	"errors"

	apilogic "guide-platform/app/order/api/internal/logic"
	"guide-platform/app/order/api/internal/svc"
	"guide-platform/app/order/api/internal/types"
	"guide-platform/common/constants"
	"guide-platform/common/ctxdata"
	"guide-platform/common/errorx"

	"github.com/zeromicro/go-zero/core/logx"
	"gorm.io/gorm"
)

type ResolveComplaintLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

// 处理投诉
func NewResolveComplaintLogic(ctx context.Context, svcCtx *svc.ServiceContext) *ResolveComplaintLogic {
	return &ResolveComplaintLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *ResolveComplaintLogic) ResolveComplaint(req *types.ResolveComplaintReq) (*types.ComplaintInfo, error) {
	if !constants.IsValidComplaintStatus(req.Status) {
		return nil, errorx.ErrInvalidParams("处理结果必须为已处理或已关闭")
	}

	complaint, err := l.svcCtx.ComplaintModel.FindByID(l.ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.NewWithMessage(errorx.CodeComplaintNotFound, "投诉记录不存在")
		}
		return nil, errorx.ErrDBError(err)
	}

	handlerID := ctxdata.GetUserIDFromCtx(l.ctx)
	ok, err := l.svcCtx.ComplaintModel.Resolve(l.ctx, complaint.ID, req.Status, req.Resolution, handlerID)
	if err != nil {
		return nil, errorx.ErrDBError(err)
	}
	if !ok {
		return nil, errorx.NewWithMessage(errorx.CodeComplaintClosed, "投诉已处理或已关闭")
	}

	updated, err := l.svcCtx.ComplaintModel.FindByID(l.ctx, complaint.ID)
	if err != nil {
		return nil, errorx.ErrDBError(err)
	}

	l.Infof("投诉处理完成: complaintID=%d, status=%d", updated.ID, updated.Status)
	info := apilogic.ToComplaintInfo(updated)
	return &info, nil
}
