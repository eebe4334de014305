// Package cache 提供地陪档案的缓存层实现
//
// 设计原则：
//   - Redis 读穿透 + singleflight 防止缓存击穿
//   - 空值缓存防止缓存穿透
//   - 随机 TTL 防止缓存雪崩
//   - Redis 故障时降级直查 DB
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"guide-platform/app/guide/model"
	commonCache "guide-platform/common/cache"

	"github.com/go-redis/redis/v8"
	"github.com/zeromicro/go-zero/core/logx"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

// ==================== GuideCache 地陪档案缓存 ====================
//
// 缓存策略：
//   - Key: guide:detail:{id}
//   - TTL: 5min ± 10%
//   - 失效时机: 档案更新、可用状态变更时主动删除

// ErrGuideNotFound 地陪档案不存在（含空值缓存命中）
var ErrGuideNotFound = errors.New("guide profile not found")

// nullValuePlaceholder 空值标记，防止缓存穿透
const nullValuePlaceholder = "{\"null\":true}"

// nullValueTTL 空值标记过期秒数
// TTL 较短，避免档案创建后长时间读不到
const nullValueTTL = 60 * time.Second

// GuideCache 地陪档案缓存服务
type GuideCache struct {
	rds          *redis.Client
	profileModel model.IGuideProfileModel
	sfGroup      singleflight.Group // singleflight 防止缓存击穿
}

// NewGuideCache 创建地陪档案缓存服务
func NewGuideCache(rds *redis.Client, profileModel model.IGuideProfileModel) *GuideCache {
	return &GuideCache{
		rds:          rds,
		profileModel: profileModel,
	}
}

// GetByID 获取地陪档案（带缓存）
//
// 流程：
//  1. 查询 Redis 缓存，命中则反序列化返回
//  2. 命中空值标记：返回 ErrGuideNotFound
//  3. 未命中：singleflight 查 DB 并回填缓存
//  4. DB 为空：写入空值标记
func (c *GuideCache) GetByID(ctx context.Context, id int64) (*model.GuideProfile, error) {
	key := commonCache.GuideDetailKey(id)

	val, err := c.rds.Get(ctx, key).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		// Redis 错误，降级查询 DB
		logx.WithContext(ctx).Errorf("[GuideCache] Redis 错误，降级查 DB: key=%s, err=%v", key, err)
		return c.getFromDB(ctx, id)
	}

	if err == nil {
		if val == nullValuePlaceholder {
			return nil, ErrGuideNotFound
		}

		var profile model.GuideProfile
		if err := json.Unmarshal([]byte(val), &profile); err != nil {
			logx.WithContext(ctx).Errorf("[GuideCache] 反序列化失败: key=%s, err=%v", key, err)
			// 删除损坏的缓存，下次重建
			c.rds.Del(ctx, key)
			return c.getFromDB(ctx, id)
		}
		return &profile, nil
	}

	// 缓存未命中，singleflight 保护 DB
	result, err, _ := c.sfGroup.Do(key, func() (interface{}, error) {
		return c.getFromDBAndCache(ctx, id, key)
	})
	if err != nil {
		return nil, err
	}
	return result.(*model.GuideProfile), nil
}

// getFromDB 直接从数据库查询（无缓存操作）
func (c *GuideCache) getFromDB(ctx context.Context, id int64) (*model.GuideProfile, error) {
	profile, err := c.profileModel.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGuideNotFound
		}
		return nil, err
	}
	return profile, nil
}

// getFromDBAndCache 从 DB 查询并回填缓存
func (c *GuideCache) getFromDBAndCache(ctx context.Context, id int64, key string) (*model.GuideProfile, error) {
	profile, err := c.profileModel.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// 空值标记防止穿透
			c.rds.Set(ctx, key, nullValuePlaceholder, nullValueTTL)
			return nil, ErrGuideNotFound
		}
		return nil, err
	}

	data, err := json.Marshal(profile)
	if err != nil {
		logx.WithContext(ctx).Errorf("[GuideCache] 序列化失败: id=%d, err=%v", id, err)
		// 序列化失败不影响返回结果
		return profile, nil
	}

	ttl := commonCache.RandomTTL(commonCache.DefaultTTL)
	if err := c.rds.Set(ctx, key, string(data), ttl).Err(); err != nil {
		logx.WithContext(ctx).Errorf("[GuideCache] 写入缓存失败: key=%s, err=%v", key, err)
	}

	return profile, nil
}

// Invalidate 删除地陪档案缓存
//
// 调用时机：档案更新、可用状态变更、审核通过建档后
func (c *GuideCache) Invalidate(ctx context.Context, id int64) {
	key := commonCache.GuideDetailKey(id)
	if err := c.rds.Del(ctx, key).Err(); err != nil {
		logx.WithContext(ctx).Errorf("[GuideCache] 删除缓存失败: key=%s, err=%v", key, err)
	}
}

// InvalidateCityList 删除城市列表缓存
func (c *GuideCache) InvalidateCityList(ctx context.Context, city string) {
	key := commonCache.GuideCityListKey(city)
	if err := c.rds.Del(ctx, key).Err(); err != nil {
		logx.WithContext(ctx).Errorf("[GuideCache] 删除城市列表缓存失败: key=%s, err=%v", key, err)
	}
}

// ==================== 城市可用地陪列表缓存 ====================

// cityListTTL 城市列表 TTL 基准
// 列表对一致性要求低，接受短暂陈旧
const cityListTTL = 2 * time.Minute

// GetAvailableByCity 获取某城市可用地陪列表（带缓存）
func (c *GuideCache) GetAvailableByCity(ctx context.Context, city string) ([]*model.GuideProfile, error) {
	key := commonCache.GuideCityListKey(city)

	val, err := c.rds.Get(ctx, key).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		logx.WithContext(ctx).Errorf("[GuideCache] Redis 错误，降级查 DB: key=%s, err=%v", key, err)
		return c.profileModel.FindAvailableByCity(ctx, city)
	}

	if err == nil {
		var list []*model.GuideProfile
		if err := json.Unmarshal([]byte(val), &list); err != nil {
			logx.WithContext(ctx).Errorf("[GuideCache] 反序列化失败: key=%s, err=%v", key, err)
			c.rds.Del(ctx, key)
			return c.profileModel.FindAvailableByCity(ctx, city)
		}
		return list, nil
	}

	result, err, _ := c.sfGroup.Do(key, func() (interface{}, error) {
		list, err := c.profileModel.FindAvailableByCity(ctx, city)
		if err != nil {
			return nil, err
		}

		data, err := json.Marshal(list)
		if err != nil {
			return list, nil
		}
		if err := c.rds.Set(ctx, key, string(data), commonCache.RandomTTL(cityListTTL)).Err(); err != nil {
			logx.WithContext(ctx).Errorf("[GuideCache] 写入城市列表缓存失败: key=%s, err=%v", key, err)
		}
		return list, nil
	})
	if err != nil {
		return nil, err
	}
	return result.([]*model.GuideProfile), nil
}
