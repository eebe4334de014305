// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package admin

import (
	"context"
	"errors"

	guidemodel "guide-platform/app/guide/model"
	"guide-platform/app/order/api/internal/svc"
	"guide-platform/app/order/api/internal/types"
	"guide-platform/common/constants"
	"guide-platform/common/errorx"

	"github.com/zeromicro/go-zero/core/logx"
	"gorm.io/gorm"
)

type AssignGuideLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

// 管理员分配地陪（pending -> confirmed）
// guideId > 0 手动指定；guideId = 0 按策略自动派单
func NewAssignGuideLogic(ctx context.Context, svcCtx *svc.ServiceContext) *AssignGuideLogic {
	return &AssignGuideLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *AssignGuideLogic) AssignGuide(req *types.AssignGuideReq) (*types.AssignGuideResp, error) {
	// 1. 查询订单并校验状态
	order, err := findOrder(l.ctx, l.svcCtx, req.OrderNo)
	if err != nil {
		return nil, err
	}
	from := order.GetStatus()
	if !constants.CanOrderTransition(from, constants.OrderStatusConfirmed) {
		return nil, errorx.ErrInvalidTransition(string(from), string(constants.OrderStatusConfirmed))
	}

	// 2. 确定地陪：手动指定或按策略自动挑选
	var guide *guidemodel.GuideProfile
	if req.GuideID > 0 {
		guide, err = l.findManualGuide(req.GuideID, order.City)
	} else {
		guide, err = l.autoPickGuide(req.Policy, order.City)
	}
	if err != nil {
		return nil, err
	}

	// 3. 分配并流转状态
	assigned, err := l.svcCtx.OrderModel.AssignGuide(l.ctx, order.ID, guide.ID)
	if err != nil {
		return nil, errorx.ErrDBError(err)
	}
	if !assigned {
		return nil, errorx.ErrAlreadyAssigned()
	}

	ok, err := l.svcCtx.OrderModel.UpdateStatusGuarded(l.ctx, order.ID, from, constants.OrderStatusConfirmed, nil)
	if err != nil {
		return nil, errorx.ErrDBError(err)
	}
	if !ok {
		return nil, errorx.ErrInvalidTransition(string(from), string(constants.OrderStatusConfirmed))
	}

	appendStatusLog(l.ctx, l.svcCtx, order.ID, string(from), string(constants.OrderStatusConfirmed), "后台分配地陪")

	// 4. 发布分配事件
	l.svcCtx.Producer.PublishGuideAssigned(l.ctx, order.OrderNo, order.CustomerID, guide.ID, req.GuideID == 0)

	l.Infof("地陪分配成功: orderNo=%s, guideID=%d, auto=%v", order.OrderNo, guide.ID, req.GuideID == 0)
	return &types.AssignGuideResp{
		OrderNo: order.OrderNo,
		GuideID: guide.ID,
		Status:  string(constants.OrderStatusConfirmed),
	}, nil
}

// findManualGuide 手动指定地陪的校验
func (l *AssignGuideLogic) findManualGuide(guideID int64, city string) (*guidemodel.GuideProfile, error) {
	guide, err := l.svcCtx.GuideProfileModel.FindByID(l.ctx, guideID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.ErrGuideNotFound()
		}
		return nil, errorx.ErrDBError(err)
	}
	if !guide.IsAvailable() {
		return nil, errorx.NewWithMessage(errorx.CodeGuideUnavailable, "该地陪暂停接单")
	}
	if guide.City != city {
		return nil, errorx.ErrInvalidParams("地陪服务城市与订单不匹配")
	}
	return guide, nil
}

// autoPickGuide 按策略自动挑选（请求未指定策略时用服务配置）
func (l *AssignGuideLogic) autoPickGuide(policy, city string) (*guidemodel.GuideProfile, error) {
	if policy == "" {
		policy = l.svcCtx.Config.AssignPolicy
	}
	if !constants.IsValidAssignPolicy(policy) {
		return nil, errorx.ErrInvalidParams("不支持的派单策略: " + policy)
	}

	candidates, err := l.svcCtx.GuideProfileModel.FindAvailableByCity(l.ctx, city)
	if err != nil {
		return nil, errorx.ErrDBError(err)
	}
	return pickGuide(l.ctx, l.svcCtx, policy, candidates)
}
