package redis_limiter

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// LoginLimiter 基于Redis的登录尝试限制器
// 按邮箱+来源IP统计窗口内的失败次数,超限后拒绝继续尝试
type LoginLimiter struct {
	client      *redis.Client
	maxAttempts int
	keyPrefix   string
	window      time.Duration
}

// NewLoginLimiter 创建登录尝试限制器
func NewLoginLimiter(client *redis.Client, maxAttempts int, keyPrefix string, window time.Duration) *LoginLimiter {
	return &LoginLimiter{
		client:      client,
		maxAttempts: maxAttempts,
		keyPrefix:   keyPrefix,
		window:      window,
	}
}

// Allowed 判断指定key是否还允许尝试登录
func (ll *LoginLimiter) Allowed(ctx context.Context, key string) (bool, error) {
	redisKey := ll.keyPrefix + key

	current, err := ll.client.Get(ctx, redisKey).Int()
	if err == redis.Nil {
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("读取尝试次数失败: %w", err)
	}

	return current < ll.maxAttempts, nil
}

// RecordFailure 记录一次失败尝试
// 使用Lua脚本确保计数与过期时间原子更新:
// 首次失败时设置窗口过期,后续失败只累加不续期
func (ll *LoginLimiter) RecordFailure(ctx context.Context, key string) (int, error) {
	redisKey := ll.keyPrefix + key

	script := redis.NewScript(
		`local count = redis.call('INCR', KEYS[1])
		if count == 1 then
			redis.call('EXPIRE', KEYS[1], tonumber(ARGV[1]))
		end
		return count`,
	)

	result, err := script.Run(ctx, ll.client, []string{redisKey}, int(ll.window.Seconds())).Result()
	if err != nil {
		return 0, fmt.Errorf("执行Lua脚本失败: %w", err)
	}

	return int(result.(int64)), nil
}

// Reset 登录成功后清除失败计数
func (ll *LoginLimiter) Reset(ctx context.Context, key string) error {
	return ll.client.Del(ctx, ll.keyPrefix+key).Err()
}

// Remaining 获取剩余可尝试次数
func (ll *LoginLimiter) Remaining(ctx context.Context, key string) (int, error) {
	redisKey := ll.keyPrefix + key

	current, err := ll.client.Get(ctx, redisKey).Int()
	if err == redis.Nil {
		return ll.maxAttempts, nil
	}
	if err != nil {
		return 0, fmt.Errorf("读取尝试次数失败: %w", err)
	}

	remaining := ll.maxAttempts - current
	if remaining < 0 {
		remaining = 0
	}
	return remaining, nil
}
