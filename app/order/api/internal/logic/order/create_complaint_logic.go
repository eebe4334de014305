// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package order

import (
	"context"

	"guide-platform/app/order/api/internal/svc"
	"guide-platform/app/order/api/internal/types"
	"guide-platform/app/order/model"
	"guide-platform/common/ctxdata"
	"guide-platform/common/errorx"

	"github.com/zeromicro/go-zero/core/logx"
)

type CreateComplaintLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

// 提交投诉
func NewCreateComplaintLogic(ctx context.Context, svcCtx *svc.ServiceContext) *CreateComplaintLogic {
	return &CreateComplaintLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *CreateComplaintLogic) CreateComplaint(req *types.CreateComplaintReq) (*types.ComplaintInfo, error) {
	customerID := ctxdata.GetUserIDFromCtx(l.ctx)
	if customerID <= 0 {
		return nil, errorx.ErrUnauthorized()
	}

	// 1. 查询订单并校验归属
	order, err := findOrder(l.ctx, l.svcCtx, req.OrderNo)
	if err != nil {
		return nil, err
	}
	if order.CustomerID != customerID {
		return nil, errorx.ErrOrderPermissionDeny()
	}

	// 2. 创建投诉（未分配地陪时 guideID 记 0，表示投诉平台服务）
	var guideID int64
	if order.GuideID.Valid {
		guideID = order.GuideID.Int64
	}
	complaint := &model.Complaint{
		OrderID:    order.ID,
		CustomerID: customerID,
		GuideID:    guideID,
		Content:    req.Content,
	}
	if err := l.svcCtx.ComplaintModel.Create(l.ctx, complaint); err != nil {
		l.Errorf("创建投诉失败: orderNo=%s, err=%v", req.OrderNo, err)
		return nil, errorx.ErrDBError(err)
	}

	l.Infof("投诉提交成功: orderNo=%s, complaintID=%d", req.OrderNo, complaint.ID)
	info := apiComplaint(complaint)
	return &info, nil
}
