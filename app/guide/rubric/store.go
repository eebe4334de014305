package rubric

import (
	"context"
	"sync"

	"guide-platform/app/guide/model"
	"guide-platform/common/errorx"

	"github.com/zeromicro/go-zero/core/logx"
	"golang.org/x/sync/singleflight"
)

// Store 评审规则的进程级配置存储
//
// 规则在启动后按需加载一次并常驻内存；请求处理不修改规则。
// 运营调整规则后通过 Reload 手动刷新，不做隐式失效。
type Store struct {
	criterionModel model.IReviewCriterionModel

	mu       sync.RWMutex
	criteria []*model.ReviewCriterion
	loaded   bool

	// 并发首次加载只回源一次
	sf singleflight.Group
}

// NewStore 创建规则存储
func NewStore(criterionModel model.IReviewCriterionModel) *Store {
	return &Store{criterionModel: criterionModel}
}

// Get 获取当前规则集（未加载时触发首次加载）
func (s *Store) Get(ctx context.Context) ([]*model.ReviewCriterion, error) {
	s.mu.RLock()
	if s.loaded {
		criteria := s.criteria
		s.mu.RUnlock()
		return criteria, nil
	}
	s.mu.RUnlock()

	_, err, _ := s.sf.Do("load", func() (interface{}, error) {
		return nil, s.load(ctx)
	})
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.criteria, nil
}

// Reload 手动刷新规则集（运营变更规则后调用）
func (s *Store) Reload(ctx context.Context) (int, error) {
	if err := s.load(ctx); err != nil {
		return 0, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.criteria), nil
}

// load 从数据库加载启用规则并替换内存快照
func (s *Store) load(ctx context.Context) error {
	criteria, err := s.criterionModel.FindAllEnabled(ctx)
	if err != nil {
		logx.WithContext(ctx).Errorf("加载评审规则失败: %v", err)
		return errorx.ErrDBError(err)
	}
	if len(criteria) == 0 {
		return errorx.ErrRubricConfigUnavailable()
	}

	s.mu.Lock()
	s.criteria = criteria
	s.loaded = true
	s.mu.Unlock()

	logx.WithContext(ctx).Infof("评审规则加载完成: count=%d", len(criteria))
	return nil
}
