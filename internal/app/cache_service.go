package app

import (
	"context"

	"github.com/shopfront/internal/cache"
	"github.com/shopfront/internal/logger"
)

// cacheService 将 Redis 连接纳入运行器生命周期，停止时关闭连接
type cacheService struct{}

func newCacheService() *cacheService {
	return &cacheService{}
}

func (s *cacheService) Name() string {
	return "cache"
}

// Start 阻塞至上下文结束，Redis 不可用时仅告警（缓存按降级处理）
func (s *cacheService) Start(ctx context.Context) error {
	if cache.Enabled() {
		if err := cache.Ping(ctx); err != nil {
			logger.Warnw("cache_ping_failed", "error", err)
		}
	}
	<-ctx.Done()
	return nil
}

func (s *cacheService) Stop(ctx context.Context) error {
	return cache.Close()
}
