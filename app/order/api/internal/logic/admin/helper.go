package admin

import (
	"context"
	"errors"

	"guide-platform/app/order/api/internal/svc"
	"guide-platform/app/order/model"
	"guide-platform/common/constants"
	"guide-platform/common/ctxdata"
	"guide-platform/common/errorx"

	"github.com/zeromicro/go-zero/core/logx"
	"gorm.io/gorm"
)

// findOrder 按订单号查询，不存在返回业务错误
func findOrder(ctx context.Context, svcCtx *svc.ServiceContext, orderNo string) (*model.Order, error) {
	order, err := svcCtx.OrderModel.FindByOrderNo(ctx, orderNo)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.ErrOrderNotFound()
		}
		return nil, errorx.ErrDBError(err)
	}
	return order, nil
}

// appendStatusLog 记录状态流转（管理员操作，失败只记日志）
func appendStatusLog(ctx context.Context, svcCtx *svc.ServiceContext, orderID int64, from, to, remark string) {
	err := svcCtx.StatusLogModel.Create(ctx, &model.OrderStatusLog{
		OrderID:      orderID,
		FromStatus:   from,
		ToStatus:     to,
		OperatorID:   ctxdata.GetUserIDFromCtx(ctx),
		OperatorRole: constants.RoleAdmin,
		Remark:       remark,
	})
	if err != nil {
		logx.WithContext(ctx).Errorf("记录状态日志失败: orderID=%d, %s->%s, err=%v", orderID, from, to, err)
	}
}
