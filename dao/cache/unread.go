package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// 通知未读角标过期时间 - 14天
const unreadExpireAt = 14 * 24 * time.Hour

// NotifyBadgeStorage 通知未读数角标缓存, DB 为准, 缓存差了就回源重建
type NotifyBadgeStorage struct {
	redis *redis.Client
}

func NewNotifyBadgeStorage(rds *redis.Client) *NotifyBadgeStorage {
	return &NotifyBadgeStorage{rds}
}

// Incr 未读数自增
func (n *NotifyBadgeStorage) Incr(ctx context.Context, uid int64) {
	pipe := n.redis.Pipeline()
	name := n.name(uid)
	pipe.Incr(ctx, name)
	pipe.Expire(ctx, name, unreadExpireAt)
	_, _ = pipe.Exec(ctx)
}

// Get 读取未读数, 缓存缺失返回 -1 由调用方回源
func (n *NotifyBadgeStorage) Get(ctx context.Context, uid int64) int64 {
	i, err := n.redis.Get(ctx, n.name(uid)).Int64()
	if err != nil {
		return -1
	}
	return i
}

// Set 回源后重建角标
func (n *NotifyBadgeStorage) Set(ctx context.Context, uid int64, count int64) {
	n.redis.Set(ctx, n.name(uid), count, unreadExpireAt)
}

// Del 全部已读后清掉角标
func (n *NotifyBadgeStorage) Del(ctx context.Context, uid int64) {
	n.redis.Del(ctx, n.name(uid))
}

// pinboard:notify:unread:uid
func (n *NotifyBadgeStorage) name(uid int64) string {
	return fmt.Sprintf("pinboard:notify:unread:%d", uid)
}
