// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package order

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"guide-platform/app/order/api/internal/svc"
	"guide-platform/app/order/api/internal/types"
	"guide-platform/app/order/model"
	"guide-platform/common/constants"
	"guide-platform/common/ctxdata"
	"guide-platform/common/errorx"

	"github.com/zeromicro/go-zero/core/logx"
)

type CreateOrderLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

// 创建订单
func NewCreateOrderLogic(ctx context.Context, svcCtx *svc.ServiceContext) *CreateOrderLogic {
	return &CreateOrderLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *CreateOrderLogic) CreateOrder(req *types.CreateOrderReq) (*types.CreateOrderResp, error) {
	customerID := ctxdata.GetUserIDFromCtx(l.ctx)
	if customerID <= 0 {
		return nil, errorx.ErrUnauthorized()
	}

	// 1. 参数校验
	if req.TotalAmount <= 0 || req.DepositAmount <= 0 {
		return nil, errorx.ErrInvalidParams("订单金额必须大于 0")
	}
	if req.DepositAmount > req.TotalAmount {
		return nil, errorx.ErrInvalidParams("定金不能超过订单总额")
	}
	startTime := time.Unix(req.StartTime, 0)
	if startTime.Before(time.Now()) {
		return nil, errorx.ErrInvalidParams("服务开始时间不能早于当前时间")
	}

	// 2. 构造订单（初始状态 pending，尾款 = 总额 - 定金）
	order := &model.Order{
		OrderNo:         genOrderNo(),
		CustomerID:      customerID,
		ServiceType:     req.ServiceType,
		StartTime:       startTime,
		DurationHours:   req.DurationHours,
		City:            req.City,
		Area:            req.Area,
		Address:         req.Address,
		SpecialRequests: req.SpecialRequests,
		DepositAmount:   req.DepositAmount,
		TotalAmount:     req.TotalAmount,
		FinalAmount:     req.TotalAmount - req.DepositAmount,
		Status:          string(constants.OrderStatusPending),
	}

	if err := l.svcCtx.OrderModel.Create(l.ctx, order); err != nil {
		l.Errorf("创建订单失败: customerID=%d, err=%v", customerID, err)
		return nil, errorx.ErrDBError(err)
	}

	// 3. 记录状态日志
	appendStatusLog(l.ctx, l.svcCtx, order.ID, "", string(constants.OrderStatusPending),
		customerID, constants.RoleCustomer, "创建订单")

	// 4. 发布订单创建事件
	l.svcCtx.Producer.PublishOrderCreated(l.ctx, order.OrderNo, customerID, order.ServiceType, order.City)

	l.Infof("订单创建成功: orderNo=%s, customerID=%d", order.OrderNo, customerID)
	return &types.CreateOrderResp{
		OrderNo: order.OrderNo,
		Status:  order.Status,
	}, nil
}

// genOrderNo 生成订单号：GD + 时间戳 + 4 位随机数
func genOrderNo() string {
	return fmt.Sprintf("GD%s%04d", time.Now().Format("20060102150405"), rand.Intn(10000))
}
