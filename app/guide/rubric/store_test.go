package rubric

import (
	"context"
	"errors"
	"testing"

	"guide-platform/app/guide/model"
	"guide-platform/common/errorx"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCriterionModel 内存版规则数据源
type fakeCriterionModel struct {
	criteria []*model.ReviewCriterion
	err      error
	calls    int
}

func (f *fakeCriterionModel) FindAllEnabled(ctx context.Context) ([]*model.ReviewCriterion, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.criteria, nil
}

func (f *fakeCriterionModel) Create(ctx context.Context, criterion *model.ReviewCriterion) error {
	f.criteria = append(f.criteria, criterion)
	return nil
}

func twoCriteria() []*model.ReviewCriterion {
	return []*model.ReviewCriterion{
		{ID: 1, Category: "personal_info", Criterion: "年龄要求", IsRequired: true, Weight: 10, Enabled: true},
		{ID: 2, Category: "safety", Criterion: "背景核查", IsRequired: false, Weight: 10, Enabled: true},
	}
}

func TestStoreGet_LoadsOnce(t *testing.T) {
	fake := &fakeCriterionModel{criteria: twoCriteria()}
	store := NewStore(fake)

	got, err := store.Get(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 2)

	// 第二次读取命中内存快照，不再回源
	_, err = store.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, fake.calls)
}

func TestStoreGet_EmptyConfig(t *testing.T) {
	fake := &fakeCriterionModel{}
	store := NewStore(fake)

	_, err := store.Get(context.Background())
	require.Error(t, err)

	var bizErr *errorx.BizError
	require.True(t, errors.As(err, &bizErr))
	assert.Equal(t, errorx.CodeRubricConfigUnavailable, bizErr.Code)
}

func TestStoreGet_DBError(t *testing.T) {
	fake := &fakeCriterionModel{err: errors.New("connection refused")}
	store := NewStore(fake)

	_, err := store.Get(context.Background())
	require.Error(t, err)

	var bizErr *errorx.BizError
	require.True(t, errors.As(err, &bizErr))
	assert.Equal(t, errorx.CodeDBError, bizErr.Code)

	// 加载失败不置 loaded，下次 Get 重试回源
	fake.err = nil
	fake.criteria = twoCriteria()
	got, err := store.Get(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestStoreReload(t *testing.T) {
	fake := &fakeCriterionModel{criteria: twoCriteria()}
	store := NewStore(fake)

	count, err := store.Reload(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	// 新增规则后 Reload 刷新快照
	fake.criteria = append(fake.criteria, &model.ReviewCriterion{
		ID: 3, Category: "documents", Criterion: "照片质量", IsRequired: true, Weight: 5, Enabled: true,
	})
	count, err = store.Reload(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	got, err := store.Get(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 3)
}

func TestStoreReload_FailureKeepsSnapshot(t *testing.T) {
	fake := &fakeCriterionModel{criteria: twoCriteria()}
	store := NewStore(fake)

	_, err := store.Reload(context.Background())
	require.NoError(t, err)

	// 刷新失败保留旧快照继续服务
	fake.err = errors.New("connection refused")
	_, err = store.Reload(context.Background())
	require.Error(t, err)

	got, err := store.Get(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 2)
}
