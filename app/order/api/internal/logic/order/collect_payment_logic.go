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

type CollectPaymentLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

// 登记收款
// 定金（deposit）：confirmed -> in_progress；尾款（final）：in_progress 内登记，不流转
func NewCollectPaymentLogic(ctx context.Context, svcCtx *svc.ServiceContext) *CollectPaymentLogic {
	return &CollectPaymentLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *CollectPaymentLogic) CollectPayment(req *types.CollectPaymentReq) (*types.CollectPaymentResp, error) {
	userID := ctxdata.GetUserIDFromCtx(l.ctx)
	if userID <= 0 {
		return nil, errorx.ErrUnauthorized()
	}
	role := ctxdata.GetRoleFromCtx(l.ctx)

	// 1. 收款信息校验（金额必须为正，零额收款不得驱动状态流转）
	if req.Amount <= 0 {
		return nil, errorx.ErrPaymentInvalid("收款金额必须大于 0")
	}
	if !constants.IsValidPaymentMethod(req.PaymentMethod) {
		return nil, errorx.ErrPaymentInvalid("不支持的支付方式: " + req.PaymentMethod)
	}
	if req.PaymentKind != constants.PaymentKindDeposit && req.PaymentKind != constants.PaymentKindFinal {
		return nil, errorx.ErrPaymentInvalid("收款类型必须为 deposit 或 final")
	}

	// 2. 查询订单，收款人必须是接单地陪或管理员
	order, err := findOrder(l.ctx, l.svcCtx, req.OrderNo)
	if err != nil {
		return nil, err
	}
	if role != constants.RoleAdmin && !isAssignedGuide(l.ctx, l.svcCtx, order, userID) {
		return nil, errorx.ErrOrderPermissionDeny()
	}

	// 3. 超收校验
	if order.PaidAmount+req.Amount > order.TotalAmount {
		return nil, errorx.ErrPaymentInvalid("收款总额不能超过订单总额")
	}

	from := order.GetStatus()
	now := time.Now()

	switch req.PaymentKind {
	case constants.PaymentKindDeposit:
		// 定金确认订单：confirmed -> in_progress
		if !constants.CanOrderTransition(from, constants.OrderStatusInProgress) {
			return nil, errorx.ErrInvalidTransition(string(from), string(constants.OrderStatusInProgress))
		}
		ok, err := l.svcCtx.OrderModel.UpdateStatusGuarded(l.ctx, order.ID, from, constants.OrderStatusInProgress,
			map[string]interface{}{
				"payment_method":       req.PaymentMethod,
				"payment_notes":        req.PaymentNotes,
				"paid_amount":          order.PaidAmount + req.Amount,
				"payment_collected_at": &now,
			})
		if err != nil {
			return nil, errorx.ErrDBError(err)
		}
		if !ok {
			return nil, errorx.ErrInvalidTransition(string(from), string(constants.OrderStatusInProgress))
		}
		appendStatusLog(l.ctx, l.svcCtx, order.ID, string(from), string(constants.OrderStatusInProgress),
			userID, role, "定金收款: "+req.PaymentMethod)

	case constants.PaymentKindFinal:
		// 尾款当面收取：仅进行中可登记，状态不变
		if from != constants.OrderStatusInProgress {
			return nil, errorx.ErrPaymentInvalid("尾款只能在服务进行中登记")
		}
		ok, err := l.svcCtx.OrderModel.UpdateStatusGuarded(l.ctx, order.ID, from, from,
			map[string]interface{}{
				"payment_notes": req.PaymentNotes,
				"paid_amount":   order.PaidAmount + req.Amount,
			})
		if err != nil {
			return nil, errorx.ErrDBError(err)
		}
		if !ok {
			return nil, errorx.ErrPaymentInvalid("订单状态已变更，请刷新后重试")
		}
	}

	// 4. 发布收款事件
	l.svcCtx.Producer.PublishPaymentCollected(l.ctx, order.OrderNo, order.CustomerID,
		req.PaymentKind, req.PaymentMethod, req.Amount)

	updated, err := findOrder(l.ctx, l.svcCtx, req.OrderNo)
	if err != nil {
		return nil, err
	}

	l.Infof("收款登记成功: orderNo=%s, kind=%s, amount=%.2f", order.OrderNo, req.PaymentKind, req.Amount)
	return &types.CollectPaymentResp{
		OrderNo:    updated.OrderNo,
		Status:     string(updated.GetStatus()),
		PaidAmount: updated.PaidAmount,
	}, nil
}
