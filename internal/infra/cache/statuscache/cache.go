// Package statuscache кеширует снимки живого статуса залов в Redis.
// Дашборды опрашивают сервис раз в несколько секунд; короткий TTL
// снимает эту нагрузку с Postgres, не показывая устаревшие данные.
package statuscache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache кеш снимков живого статуса.
// Нулевой client означает выключенный кеш: все операции деградируют
// до промаха, сервис продолжает работать напрямую из БД.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// New создает кеш поверх подключения к Redis
func New(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

// key собирает ключ снимка для кафе
func key(cafeID int64) string {
	return fmt.Sprintf("live_status:%d", cafeID)
}

// Get возвращает закешированный снимок живого статуса кафе.
// Возвращает ErrCacheMiss, если снимка нет или кеш выключен.
func (c *Cache) Get(ctx context.Context, cafeID int64) ([]byte, error) {
	if c == nil || c.client == nil {
		return nil, ErrCacheMiss
	}

	data, err := c.client.Get(ctx, key(cafeID)).Bytes()
	if err == redis.Nil {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get: %v", ErrCacheUnavailable, err)
	}

	return data, nil
}

// Set сохраняет снимок живого статуса кафе с TTL кеша
func (c *Cache) Set(ctx context.Context, cafeID int64, snapshot []byte) error {
	if c == nil || c.client == nil {
		return nil
	}

	if err := c.client.Set(ctx, key(cafeID), snapshot, c.ttl).Err(); err != nil {
		return fmt.Errorf("%w: Set: %v", ErrCacheUnavailable, err)
	}

	return nil
}

// Invalidate сбрасывает снимок кафе; вызывается при создании и отмене
// бронирований, чтобы дашборд не ждал истечения TTL
func (c *Cache) Invalidate(ctx context.Context, cafeID int64) error {
	if c == nil || c.client == nil {
		return nil
	}

	if err := c.client.Del(ctx, key(cafeID)).Err(); err != nil {
		return fmt.Errorf("%w: Invalidate: %v", ErrCacheUnavailable, err)
	}

	return nil
}
