// Package repository 提供了数据访问层的实现。
package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// 每个用户保留的最近搜索条数与过期时间。
const (
	searchHistoryMax = 20
	searchHistoryTTL = 7 * 24 * time.Hour
)

// SearchHistoryRepository 定义了用户最近搜索记录的操作接口。
type SearchHistoryRepository interface {
	Record(ctx context.Context, userID uint, query string) error
	Recent(ctx context.Context, userID uint) ([]string, error)
}

type redisSearchHistoryRepository struct {
	redisClient *redis.Client
}

// NewSearchHistoryRepository 创建一个新的 SearchHistoryRepository 实例。
func NewSearchHistoryRepository(redisClient *redis.Client) SearchHistoryRepository {
	return &redisSearchHistoryRepository{redisClient: redisClient}
}

func historyKey(userID uint) string {
	return fmt.Sprintf("user:%d:recent_searches", userID)
}

// Record 将一条查询写入用户的最近搜索列表，保留最近 20 条。
func (r *redisSearchHistoryRepository) Record(ctx context.Context, userID uint, query string) error {
	if query == "" {
		return nil
	}
	key := historyKey(userID)
	pipe := r.redisClient.TxPipeline()
	// 先去掉重复项再插到队首
	pipe.LRem(ctx, key, 0, query)
	pipe.LPush(ctx, key, query)
	pipe.LTrim(ctx, key, 0, searchHistoryMax-1)
	pipe.Expire(ctx, key, searchHistoryTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to record search history: %w", err)
	}
	return nil
}

// Recent 返回用户最近的搜索记录，最新的在前。
func (r *redisSearchHistoryRepository) Recent(ctx context.Context, userID uint) ([]string, error) {
	queries, err := r.redisClient.LRange(ctx, historyKey(userID), 0, searchHistoryMax-1).Result()
	if err == redis.Nil {
		return []string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get search history: %w", err)
	}
	return queries, nil
}
