// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package order

import (
	"context"
	"time"

	"guide-platform/app/order/api/internal/svc"
	"guide-platform/app/order/api/internal/types"
	"guide-platform/common/constants"
	"guide-platform/common/ctxdata"
	"guide-platform/common/errorx"

	"github.com/zeromicro/go-zero/core/logx"
)

type RequestRefundLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

// 退款申请（in_progress/completed/refund_rejected -> cancelled，等待管理员审批）
func NewRequestRefundLogic(ctx context.Context, svcCtx *svc.ServiceContext) *RequestRefundLogic {
	return &RequestRefundLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *RequestRefundLogic) RequestRefund(req *types.RequestRefundReq) (*types.OrderInfo, error) {
	customerID := ctxdata.GetUserIDFromCtx(l.ctx)
	if customerID <= 0 {
		return nil, errorx.ErrUnauthorized()
	}

	// 1. 退款信息校验（现金收款不支持线上退回，收款账户必填）
	if !constants.IsValidPaymentMethod(req.RefundMethod) || req.RefundMethod == constants.PaymentMethodCash {
		return nil, errorx.ErrRefundInvalid()
	}
	if req.RefundAccount == "" {
		return nil, errorx.ErrRefundInvalid()
	}

	// 2. 查询订单并校验归属
	order, err := findOrder(l.ctx, l.svcCtx, req.OrderNo)
	if err != nil {
		return nil, err
	}
	if order.CustomerID != customerID {
		return nil, errorx.ErrOrderPermissionDeny()
	}

	// 3. 退款前提：必须已收款
	if !order.HasPayment() {
		return nil, errorx.ErrPaymentRequired()
	}

	// 4. 状态校验：进行中/已完成/退款被拒可重新申请
	from := order.GetStatus()
	if !constants.CanRequestRefund(from) {
		return nil, errorx.ErrInvalidTransition(string(from), string(constants.OrderStatusCancelled))
	}

	// 5. 状态流转并落退款信息
	now := time.Now()
	ok, err := l.svcCtx.OrderModel.UpdateStatusGuarded(l.ctx, order.ID, from, constants.OrderStatusCancelled,
		map[string]interface{}{
			"refund_method":       req.RefundMethod,
			"refund_account":      req.RefundAccount,
			"refund_reason":       req.Reason,
			"refund_requested_at": &now,
			"refund_processed_at": nil,
			"cancelled_at":        &now,
		})
	if err != nil {
		return nil, errorx.ErrDBError(err)
	}
	if !ok {
		return nil, errorx.ErrInvalidTransition(string(from), string(constants.OrderStatusCancelled))
	}

	appendStatusLog(l.ctx, l.svcCtx, order.ID, string(from), string(constants.OrderStatusCancelled),
		customerID, constants.RoleCustomer, "退款申请: "+req.Reason)

	// 6. 发布事件（取消 + 退款申请）
	l.svcCtx.Producer.PublishOrderCancelled(l.ctx, order.OrderNo, customerID, req.Reason, true)
	l.svcCtx.Producer.PublishRefundRequested(l.ctx, order.OrderNo, customerID, req.RefundMethod)

	l.Infof("退款申请成功: orderNo=%s, method=%s", order.OrderNo, req.RefundMethod)

	updated, err := findOrder(l.ctx, l.svcCtx, req.OrderNo)
	if err != nil {
		return nil, err
	}
	info := toInfo(updated)
	return &info, nil
}
