package admin

import (
	"context"
	"math/rand"

	guidemodel "guide-platform/app/guide/model"
	"guide-platform/app/order/api/internal/svc"
	"guide-platform/common/constants"
	"guide-platform/common/errorx"

	"github.com/zeromicro/go-zero/core/logx"
)

// pickGuide 按策略从候选集中挑选地陪
//
// 候选集为城市内可接单地陪（按注册时间升序），三种策略：
//   - lowest_load: 进行中订单最少者（默认，平衡接单量）
//   - random:      随机挑选
//   - first_match: 候选集首个（注册最早）
func pickGuide(
	ctx context.Context,
	svcCtx *svc.ServiceContext,
	policy string,
	candidates []*guidemodel.GuideProfile,
) (*guidemodel.GuideProfile, error) {
	if len(candidates) == 0 {
		return nil, errorx.ErrNoGuideAvailable()
	}

	switch policy {
	case constants.AssignPolicyRandom:
		return candidates[rand.Intn(len(candidates))], nil

	case constants.AssignPolicyFirstMatch:
		return candidates[0], nil

	case constants.AssignPolicyLowestLoad:
		fallthrough
	default:
		return pickLowestLoad(ctx, svcCtx, candidates)
	}
}

// pickLowestLoad 选择进行中订单最少的地陪
// 负载相同取注册更早者（候选集已按注册时间升序）
func pickLowestLoad(
	ctx context.Context,
	svcCtx *svc.ServiceContext,
	candidates []*guidemodel.GuideProfile,
) (*guidemodel.GuideProfile, error) {
	var best *guidemodel.GuideProfile
	var bestLoad int64 = -1

	for _, g := range candidates {
		load, err := svcCtx.OrderModel.CountActiveByGuide(ctx, g.ID)
		if err != nil {
			// 单个统计失败跳过该候选，保证派单尽量成功
			logx.WithContext(ctx).Errorf("统计地陪负载失败: guideID=%d, err=%v", g.ID, err)
			continue
		}
		if bestLoad < 0 || load < bestLoad {
			best = g
			bestLoad = load
		}
	}

	if best == nil {
		return nil, errorx.ErrNoGuideAvailable()
	}
	return best, nil
}
