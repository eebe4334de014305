// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package admin

import (
	"context"
	"time"

	"guide-platform/app/order/api/internal/svc"
	"guide-platform/app/order/api/internal/types"
	"guide-platform/common/errorx"

	"github.com/zeromicro/go-zero/core/logx"
)

type FinanceSummaryLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

// 财务对账汇总
func NewFinanceSummaryLogic(ctx context.Context, svcCtx *svc.ServiceContext) *FinanceSummaryLogic {
	return &FinanceSummaryLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *FinanceSummaryLogic) FinanceSummary(req *types.FinanceSummaryReq) (*types.FinanceSummaryResp, error) {
	// 时间区间兜底：begin 缺省取 Unix 纪元，end 缺省取当前时间
	begin := time.Unix(0, 0)
	if req.BeginTime > 0 {
		begin = time.Unix(req.BeginTime, 0)
	}
	end := time.Now()
	if req.EndTime > 0 {
		end = time.Unix(req.EndTime, 0)
	}
	if !end.After(begin) {
		return nil, errorx.ErrInvalidParams("结束时间必须晚于开始时间")
	}

	summary, err := l.svcCtx.OrderModel.SummarizeFinance(l.ctx, begin, end)
	if err != nil {
		return nil, errorx.ErrDBError(err)
	}

	return &types.FinanceSummaryResp{
		OrderCount:     summary.OrderCount,
		PaidTotal:      summary.PaidTotal,
		RefundedTotal:  summary.RefundedTotal,
		CompletedCount: summary.CompletedCount,
		RefundedCount:  summary.RefundedCount,
	}, nil
}
