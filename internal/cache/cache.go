package cache

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/agendly/booking-api/internal/config"
)

const availabilityTTL = 60 * time.Second

// New abre o client Redis. Endereço vazio desliga o cache (retorna nil):
// a disponibilidade passa a ser sempre computada.
func New(cfg *config.Config, log *zap.Logger) *redis.Client {
	if cfg.RedisAddr == "" {
		log.Info("redis disabled, availability cache off")
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatal("failed to connect to redis", zap.Error(err))
	}

	return client
}

// AvailabilityCache guarda respostas de disponibilidade já serializadas,
// chaveadas por data + serviço. Escritas no estado invalidam o dia inteiro
// somente depois do banco confirmar (write-through).
type AvailabilityCache struct {
	client *redis.Client
}

func NewAvailabilityCache(client *redis.Client) *AvailabilityCache {
	return &AvailabilityCache{client: client}
}

func key(date time.Time, serviceID string) string {
	return "availability:" + date.Format("2006-01-02") + ":" + serviceID
}

func (c *AvailabilityCache) Get(ctx context.Context, date time.Time, serviceID string) ([]byte, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}

	b, err := c.client.Get(ctx, key(date, serviceID)).Bytes()
	if err != nil {
		return nil, false
	}
	return b, true
}

func (c *AvailabilityCache) Set(ctx context.Context, date time.Time, serviceID string, payload []byte) {
	if c == nil || c.client == nil {
		return
	}

	// cache é melhor-esforço; falha aqui nunca propaga
	c.client.Set(ctx, key(date, serviceID), payload, availabilityTTL)
}

// InvalidateDay descarta todas as variantes de serviço cacheadas da data.
func (c *AvailabilityCache) InvalidateDay(ctx context.Context, date time.Time) {
	if c == nil || c.client == nil {
		return
	}

	pattern := "availability:" + date.Format("2006-01-02") + ":*"
	keys, err := c.client.Keys(ctx, pattern).Result()
	if err != nil || len(keys) == 0 {
		return
	}
	c.client.Del(ctx, keys...)
}

// InvalidateAll descarta todo o cache de disponibilidade (mudança de
// business hours ou serviços afeta qualquer data).
func (c *AvailabilityCache) InvalidateAll(ctx context.Context) {
	if c == nil || c.client == nil {
		return
	}

	keys, err := c.client.Keys(ctx, "availability:*").Result()
	if err != nil || len(keys) == 0 {
		return
	}
	c.client.Del(ctx, keys...)
}
