// utils/redis.go
package utils

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"api_clientes/src/config"
	"api_clientes/src/logger"
)

// ConnectRedis crea el cliente de Redis y verifica la conexión.
// Si el ping falla el cliente se cierra y el llamador debe continuar sin caché.
func ConnectRedis(ctx context.Context, cfg config.RedisConfig, log *logger.Logger) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     cfg.PoolSize,
		MinIdleConns: cfg.MinIdleConns,
		MaxRetries:   cfg.MaxRetries,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	})

	pingCtx, cancel := context.WithTimeout(ctx, cfg.DialTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("error conectando a Redis: %w", err)
	}

	client.AddHook(NewLoggingHook(log))
	log.Info().Str("addr", cfg.Addr).Msg("conexión a Redis establecida")
	return client, nil
}

// RedisCache guarda blobs JSON bajo un prefijo común.
type RedisCache struct {
	client *redis.Client
	prefix string
}

func NewRedisCache(client *redis.Client, prefix string) *RedisCache {
	return &RedisCache{client: client, prefix: prefix}
}

func (c *RedisCache) key(k string) string {
	return c.prefix + k
}

// Get devuelve (nil, false, nil) cuando la clave no existe.
func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := c.client.Get(ctx, c.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("error obteniendo %s de caché: %w", key, err)
	}
	return data, true, nil
}

func (c *RedisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := c.client.Set(ctx, c.key(key), value, ttl).Err(); err != nil {
		return fmt.Errorf("error guardando %s en caché: %w", key, err)
	}
	return nil
}

func (c *RedisCache) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	full := make([]string, len(keys))
	for i, k := range keys {
		full[i] = c.key(k)
	}
	if err := c.client.Del(ctx, full...).Err(); err != nil {
		return fmt.Errorf("error invalidando caché: %w", err)
	}
	return nil
}

// DeletePrefix borra todas las claves que empiezan con prefix. Usa SCAN en vez
// de KEYS para no bloquear el servidor.
func (c *RedisCache) DeletePrefix(ctx context.Context, prefix string) error {
	iter := c.client.Scan(ctx, 0, c.key(prefix)+"*", 100).Iterator()

	pipe := c.client.Pipeline()
	pending := 0
	for iter.Next(ctx) {
		pipe.Del(ctx, iter.Val())
		pending++
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("error recorriendo claves %s*: %w", prefix, err)
	}
	if pending == 0 {
		return nil
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("error invalidando claves %s*: %w", prefix, err)
	}
	return nil
}

func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// LoggingHook registra los comandos de Redis que fallan. redis.Nil no se considera fallo.
type LoggingHook struct {
	log *logger.Logger
}

func NewLoggingHook(log *logger.Logger) *LoggingHook {
	return &LoggingHook{log: log}
}

func (h *LoggingHook) BeforeProcess(ctx context.Context, cmd redis.Cmder) (context.Context, error) {
	return ctx, nil
}

func (h *LoggingHook) AfterProcess(ctx context.Context, cmd redis.Cmder) error {
	h.logFailure(cmd)
	return nil
}

func (h *LoggingHook) BeforeProcessPipeline(ctx context.Context, cmds []redis.Cmder) (context.Context, error) {
	return ctx, nil
}

func (h *LoggingHook) AfterProcessPipeline(ctx context.Context, cmds []redis.Cmder) error {
	for _, cmd := range cmds {
		h.logFailure(cmd)
	}
	return nil
}

func (h *LoggingHook) logFailure(cmd redis.Cmder) {
	if err := cmd.Err(); err != nil && !errors.Is(err, redis.Nil) {
		h.log.Warn().Err(err).Str("cmd", cmd.Name()).Msg("comando de Redis falló")
	}
}
