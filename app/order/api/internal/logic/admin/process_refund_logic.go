// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package admin

import (
	"context"
	"time"

	"guide-platform/app/order/api/internal/svc"
	"guide-platform/app/order/api/internal/types"
	"guide-platform/common/constants"
	"guide-platform/common/errorx"

	"github.com/zeromicro/go-zero/core/logx"
)

type ProcessRefundLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

// 处理退款申请（cancelled -> refunded / refund_rejected）
func NewProcessRefundLogic(ctx context.Context, svcCtx *svc.ServiceContext) *ProcessRefundLogic {
	return &ProcessRefundLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *ProcessRefundLogic) ProcessRefund(req *types.ProcessRefundReq) (*types.ProcessRefundResp, error) {
	// 1. 查询订单，必须有待处理的退款申请
	order, err := findOrder(l.ctx, l.svcCtx, req.OrderNo)
	if err != nil {
		return nil, err
	}
	if !order.HasPendingRefund() {
		return nil, errorx.NewWithMessage(errorx.CodeOrderRefundNotPending, "当前无待处理的退款申请")
	}

	from := order.GetStatus()
	now := time.Now()

	var to constants.OrderStatus
	updates := map[string]interface{}{"refund_processed_at": &now}

	if req.Approved {
		// 审批通过：退款金额必填且不得超过订单总额
		if req.RefundAmount <= 0 {
			return nil, errorx.ErrRefundInvalid()
		}
		if req.RefundAmount > order.TotalAmount {
			return nil, errorx.ErrRefundExceedTotal()
		}
		to = constants.OrderStatusRefunded
		updates["refund_amount"] = req.RefundAmount
	} else {
		// 审批拒绝：申请人可重新提交
		to = constants.OrderStatusRefundRejected
	}

	if !constants.CanOrderTransition(from, to) {
		return nil, errorx.ErrInvalidTransition(string(from), string(to))
	}

	ok, err := l.svcCtx.OrderModel.UpdateStatusGuarded(l.ctx, order.ID, from, to, updates)
	if err != nil {
		return nil, errorx.ErrDBError(err)
	}
	if !ok {
		return nil, errorx.ErrInvalidTransition(string(from), string(to))
	}

	appendStatusLog(l.ctx, l.svcCtx, order.ID, string(from), string(to), "退款审批: "+req.Reason)

	// 2. 发布处理结果事件
	l.svcCtx.Producer.PublishRefundProcessed(l.ctx, order.OrderNo, order.CustomerID,
		req.Approved, req.RefundAmount, req.Reason)

	l.Infof("退款处理完成: orderNo=%s, approved=%v, amount=%.2f", order.OrderNo, req.Approved, req.RefundAmount)
	return &types.ProcessRefundResp{
		OrderNo:      order.OrderNo,
		Status:       string(to),
		RefundAmount: req.RefundAmount,
	}, nil
}
