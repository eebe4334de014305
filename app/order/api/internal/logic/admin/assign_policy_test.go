package admin

import (
	"context"
	"errors"
	"testing"
	"time"

	guidemodel "guide-platform/app/guide/model"
	"guide-platform/app/order/api/internal/svc"
	"guide-platform/app/order/model"
	"guide-platform/common/constants"
	commonErrorx "guide-platform/common/errorx"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubOrderModel 仅实现派单用到的 CountActiveByGuide，其余方法不会被调用
type stubOrderModel struct {
	loads    map[int64]int64
	countErr map[int64]error
}

func (s *stubOrderModel) CountActiveByGuide(ctx context.Context, guideID int64) (int64, error) {
	if err, ok := s.countErr[guideID]; ok {
		return 0, err
	}
	return s.loads[guideID], nil
}

func (s *stubOrderModel) Create(ctx context.Context, order *model.Order) error { panic("unexpected") }
func (s *stubOrderModel) FindByID(ctx context.Context, id int64) (*model.Order, error) {
	panic("unexpected")
}
func (s *stubOrderModel) FindByOrderNo(ctx context.Context, orderNo string) (*model.Order, error) {
	panic("unexpected")
}
func (s *stubOrderModel) Update(ctx context.Context, order *model.Order) error { panic("unexpected") }
func (s *stubOrderModel) UpdateStatusGuarded(ctx context.Context, id int64, fromStatus, toStatus constants.OrderStatus, updates map[string]interface{}) (bool, error) {
	panic("unexpected")
}
func (s *stubOrderModel) AssignGuide(ctx context.Context, id int64, guideID int64) (bool, error) {
	panic("unexpected")
}
func (s *stubOrderModel) FindByCustomerID(ctx context.Context, customerID int64, page, pageSize int) ([]*model.Order, int64, error) {
	panic("unexpected")
}
func (s *stubOrderModel) FindByGuideID(ctx context.Context, guideID int64, page, pageSize int) ([]*model.Order, int64, error) {
	panic("unexpected")
}
func (s *stubOrderModel) FindByStatus(ctx context.Context, status constants.OrderStatus, page, pageSize int) ([]*model.Order, int64, error) {
	panic("unexpected")
}
func (s *stubOrderModel) SummarizeFinance(ctx context.Context, begin, end time.Time) (*model.FinanceSummary, error) {
	panic("unexpected")
}

var _ model.IOrderModel = (*stubOrderModel)(nil)

// 候选集按注册时间升序（与 FindAvailableByCity 的排序一致）
func candidates(ids ...int64) []*guidemodel.GuideProfile {
	list := make([]*guidemodel.GuideProfile, 0, len(ids))
	for i, id := range ids {
		list = append(list, &guidemodel.GuideProfile{
			ID:        id,
			CreatedAt: time.Unix(int64(1700000000+i*3600), 0),
		})
	}
	return list
}

func newTestSvcCtx(orderModel model.IOrderModel) *svc.ServiceContext {
	return &svc.ServiceContext{OrderModel: orderModel}
}

func TestPickGuide_EmptyCandidates(t *testing.T) {
	svcCtx := newTestSvcCtx(&stubOrderModel{})

	_, err := pickGuide(context.Background(), svcCtx, constants.AssignPolicyLowestLoad, nil)
	require.Error(t, err)

	var bizErr *commonErrorx.BizError
	require.True(t, errors.As(err, &bizErr))
	assert.Equal(t, commonErrorx.CodeGuideNotFound, bizErr.Code)
}

func TestPickGuide_FirstMatch(t *testing.T) {
	svcCtx := newTestSvcCtx(&stubOrderModel{})
	cands := candidates(7, 8, 9)

	// first_match 稳定取注册最早者
	for i := 0; i < 5; i++ {
		got, err := pickGuide(context.Background(), svcCtx, constants.AssignPolicyFirstMatch, cands)
		require.NoError(t, err)
		assert.Equal(t, int64(7), got.ID)
	}
}

func TestPickGuide_RandomStaysInCandidateSet(t *testing.T) {
	svcCtx := newTestSvcCtx(&stubOrderModel{})
	cands := candidates(7, 8, 9)
	valid := map[int64]bool{7: true, 8: true, 9: true}

	for i := 0; i < 50; i++ {
		got, err := pickGuide(context.Background(), svcCtx, constants.AssignPolicyRandom, cands)
		require.NoError(t, err)
		assert.True(t, valid[got.ID], "随机策略选出了候选集外的地陪: %d", got.ID)
	}
}

func TestPickGuide_LowestLoad(t *testing.T) {
	svcCtx := newTestSvcCtx(&stubOrderModel{
		loads: map[int64]int64{7: 3, 8: 1, 9: 2},
	})

	got, err := pickGuide(context.Background(), svcCtx, constants.AssignPolicyLowestLoad, candidates(7, 8, 9))
	require.NoError(t, err)
	assert.Equal(t, int64(8), got.ID)
}

func TestPickGuide_LowestLoadTieBreaksByRegistration(t *testing.T) {
	// 负载相同取候选集中更靠前（注册更早）者
	svcCtx := newTestSvcCtx(&stubOrderModel{
		loads: map[int64]int64{7: 2, 8: 2, 9: 2},
	})

	got, err := pickGuide(context.Background(), svcCtx, constants.AssignPolicyLowestLoad, candidates(7, 8, 9))
	require.NoError(t, err)
	assert.Equal(t, int64(7), got.ID)
}

func TestPickGuide_LowestLoadSkipsFailedCount(t *testing.T) {
	// 单个候选统计失败时跳过，不影响整体派单
	svcCtx := newTestSvcCtx(&stubOrderModel{
		loads:    map[int64]int64{8: 5, 9: 6},
		countErr: map[int64]error{7: errors.New("connection refused")},
	})

	got, err := pickGuide(context.Background(), svcCtx, constants.AssignPolicyLowestLoad, candidates(7, 8, 9))
	require.NoError(t, err)
	assert.Equal(t, int64(8), got.ID)
}

func TestPickGuide_UnknownPolicyFallsBackToLowestLoad(t *testing.T) {
	svcCtx := newTestSvcCtx(&stubOrderModel{
		loads: map[int64]int64{7: 9, 8: 0, 9: 4},
	})

	got, err := pickGuide(context.Background(), svcCtx, "round_robin", candidates(7, 8, 9))
	require.NoError(t, err)
	assert.Equal(t, int64(8), got.ID)
}
