package order

import (
	"context"
	"errors"
	"testing"
	"time"

	"guide-platform/app/order/api/internal/svc"
	"guide-platform/app/order/api/internal/types"
	"guide-platform/app/order/model"
	"guide-platform/common/constants"
	"guide-platform/common/ctxdata"
	commonErrorx "guide-platform/common/errorx"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeOrderModel 内存版订单存储，只支撑收款/退款链路用到的方法
type fakeOrderModel struct {
	order       *model.Order
	guardedCall bool // 是否发生过状态流转
	createCall  bool
}

func (f *fakeOrderModel) FindByOrderNo(ctx context.Context, orderNo string) (*model.Order, error) {
	if f.order == nil || f.order.OrderNo != orderNo {
		return nil, errors.New("record not found")
	}
	return f.order, nil
}

func (f *fakeOrderModel) UpdateStatusGuarded(ctx context.Context, id int64, fromStatus, toStatus constants.OrderStatus, updates map[string]interface{}) (bool, error) {
	f.guardedCall = true
	if f.order == nil || f.order.GetStatus() != fromStatus {
		return false, nil
	}
	f.order.Status = string(toStatus)
	if amount, ok := updates["paid_amount"].(float64); ok {
		f.order.PaidAmount = amount
	}
	return true, nil
}

func (f *fakeOrderModel) Create(ctx context.Context, order *model.Order) error {
	f.createCall = true
	f.order = order
	return nil
}

func (f *fakeOrderModel) FindByID(ctx context.Context, id int64) (*model.Order, error) {
	panic("unexpected")
}
func (f *fakeOrderModel) Update(ctx context.Context, order *model.Order) error { panic("unexpected") }
func (f *fakeOrderModel) AssignGuide(ctx context.Context, id int64, guideID int64) (bool, error) {
	panic("unexpected")
}
func (f *fakeOrderModel) FindByCustomerID(ctx context.Context, customerID int64, page, pageSize int) ([]*model.Order, int64, error) {
	panic("unexpected")
}
func (f *fakeOrderModel) FindByGuideID(ctx context.Context, guideID int64, page, pageSize int) ([]*model.Order, int64, error) {
	panic("unexpected")
}
func (f *fakeOrderModel) FindByStatus(ctx context.Context, status constants.OrderStatus, page, pageSize int) ([]*model.Order, int64, error) {
	panic("unexpected")
}
func (f *fakeOrderModel) SummarizeFinance(ctx context.Context, begin, end time.Time) (*model.FinanceSummary, error) {
	panic("unexpected")
}
func (f *fakeOrderModel) CountActiveByGuide(ctx context.Context, guideID int64) (int64, error) {
	panic("unexpected")
}

var _ model.IOrderModel = (*fakeOrderModel)(nil)

// fakeStatusLogModel 只接收写入的状态日志存储
type fakeStatusLogModel struct {
	logs []*model.OrderStatusLog
}

func (f *fakeStatusLogModel) Create(ctx context.Context, log *model.OrderStatusLog) error {
	f.logs = append(f.logs, log)
	return nil
}

func (f *fakeStatusLogModel) FindByOrderID(ctx context.Context, orderID int64) ([]*model.OrderStatusLog, error) {
	panic("unexpected")
}

var _ model.IOrderStatusLogModel = (*fakeStatusLogModel)(nil)

func confirmedOrder() *model.Order {
	return &model.Order{
		ID:          1,
		OrderNo:     "GD202608290001",
		CustomerID:  10001,
		TotalAmount: 500,
		Status:      string(constants.OrderStatusConfirmed),
	}
}

func adminCtx() context.Context {
	ctx := ctxdata.WithUserID(context.Background(), 90001)
	return ctxdata.WithRole(ctx, constants.RoleAdmin)
}

func assertBizCode(t *testing.T, err error, code int) {
	t.Helper()
	require.Error(t, err)
	var bizErr *commonErrorx.BizError
	require.True(t, errors.As(err, &bizErr))
	assert.Equal(t, code, bizErr.Code)
}

func TestCollectPayment_NonPositiveAmountRejected(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
	}{
		{"零额定金", 0},
		{"负额定金", -50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orderModel := &fakeOrderModel{order: confirmedOrder()}
			svcCtx := &svc.ServiceContext{OrderModel: orderModel}

			logic := NewCollectPaymentLogic(adminCtx(), svcCtx)
			_, err := logic.CollectPayment(&types.CollectPaymentReq{
				OrderNo:       "GD202608290001",
				PaymentKind:   constants.PaymentKindDeposit,
				PaymentMethod: constants.PaymentMethodCash,
				Amount:        tt.amount,
			})

			assertBizCode(t, err, commonErrorx.CodeOrderPaymentInvalid)

			// 非正金额不得驱动 confirmed -> in_progress
			assert.False(t, orderModel.guardedCall)
			assert.Equal(t, constants.OrderStatusConfirmed, orderModel.order.GetStatus())
			assert.Equal(t, float64(0), orderModel.order.PaidAmount)
		})
	}
}

func TestCollectPayment_ValidDepositTransitions(t *testing.T) {
	orderModel := &fakeOrderModel{order: confirmedOrder()}
	svcCtx := &svc.ServiceContext{
		OrderModel:     orderModel,
		StatusLogModel: &fakeStatusLogModel{},
	}

	logic := NewCollectPaymentLogic(adminCtx(), svcCtx)
	resp, err := logic.CollectPayment(&types.CollectPaymentReq{
		OrderNo:       "GD202608290001",
		PaymentKind:   constants.PaymentKindDeposit,
		PaymentMethod: constants.PaymentMethodCash,
		Amount:        100,
	})

	require.NoError(t, err)
	assert.Equal(t, string(constants.OrderStatusInProgress), resp.Status)
	assert.Equal(t, float64(100), resp.PaidAmount)
}

func TestRequestRefund_EmptyAccountRejected(t *testing.T) {
	orderModel := &fakeOrderModel{order: confirmedOrder()}
	svcCtx := &svc.ServiceContext{OrderModel: orderModel}
	ctx := ctxdata.WithRole(ctxdata.WithUserID(context.Background(), 10001), constants.RoleCustomer)

	logic := NewRequestRefundLogic(ctx, svcCtx)
	_, err := logic.RequestRefund(&types.RequestRefundReq{
		OrderNo:       "GD202608290001",
		RefundMethod:  constants.PaymentMethodWechat,
		RefundAccount: "",
		Reason:        "行程变更",
	})

	assertBizCode(t, err, commonErrorx.CodeOrderRefundInvalid)
	assert.False(t, orderModel.guardedCall)
}

func TestCreateOrder_NonPositiveAmountsRejected(t *testing.T) {
	tests := []struct {
		name    string
		deposit float64
		total   float64
	}{
		{"总额为零", 0, 0},
		{"定金为零", 0, 500},
		{"总额为负", -100, -100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orderModel := &fakeOrderModel{}
			svcCtx := &svc.ServiceContext{OrderModel: orderModel}
			ctx := ctxdata.WithUserID(context.Background(), 10001)

			logic := NewCreateOrderLogic(ctx, svcCtx)
			_, err := logic.CreateOrder(&types.CreateOrderReq{
				ServiceType:   "city_tour",
				StartTime:     time.Now().Add(24 * time.Hour).Unix(),
				DurationHours: 4,
				City:          "广州",
				DepositAmount: tt.deposit,
				TotalAmount:   tt.total,
			})

			assertBizCode(t, err, commonErrorx.CodeInvalidParams)
			assert.False(t, orderModel.createCall)
		})
	}
}
