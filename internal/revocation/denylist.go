// Package revocation keeps track of tokens that were logged out before they
// expired.
package revocation

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

//go:generate mockgen -destination=mocks/mock_denylist.go -package=mocks homerepair/internal/revocation Denylist

const keyPrefix = "revoked:"

type Denylist interface {
	IsRevoked(ctx context.Context, token string) (bool, error)
	Revoke(ctx context.Context, token string, ttl time.Duration) error
}

// Noop never revokes anything. Used when the denylist is disabled.
type Noop struct{}

func (Noop) IsRevoked(context.Context, string) (bool, error)     { return false, nil }
func (Noop) Revoke(context.Context, string, time.Duration) error { return nil }

type RedisOptions struct {
	Addr     string
	Password string
	DB       int
}

// RedisDenylist stores a hash of each revoked token until the token would
// have expired anyway.
type RedisDenylist struct {
	client *redis.Client
}

func NewRedisDenylist(client *redis.Client) *RedisDenylist {
	return &RedisDenylist{client: client}
}

// Dial opens a redis client and checks it answers within two seconds.
func Dial(ctx context.Context, opts RedisOptions) (*RedisDenylist, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", opts.Addr, err)
	}

	zap.L().Info("token denylist connected", zap.String("addr", opts.Addr), zap.Int("db", opts.DB))
	return NewRedisDenylist(client), nil
}

func (d *RedisDenylist) IsRevoked(ctx context.Context, token string) (bool, error) {
	err := d.client.Get(ctx, Key(token)).Err()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("denylist lookup: %w", err)
	}
	return true, nil
}

// Revoke records token for ttl. A non-positive ttl means the token is
// already expired and nothing is stored.
func (d *RedisDenylist) Revoke(ctx context.Context, token string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	if err := d.client.Set(ctx, Key(token), "1", ttl).Err(); err != nil {
		return fmt.Errorf("denylist store: %w", err)
	}
	return nil
}

func (d *RedisDenylist) Close() error {
	return d.client.Close()
}

// Key is the redis key for token. Raw tokens are never stored.
func Key(token string) string {
	sum := sha256.Sum256([]byte(token))
	return keyPrefix + hex.EncodeToString(sum[:])
}

var (
	_ Denylist = Noop{}
	_ Denylist = (*RedisDenylist)(nil)
)
