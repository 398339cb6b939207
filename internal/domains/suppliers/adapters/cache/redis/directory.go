package redis

import (
	"context"
	"io"
	"log/slog"
	"time"

	goredis "github.com/go-redis/redis/v8"
	"golang.org/x/sync/singleflight"

	"github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/domains/suppliers/domain"
	"github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/domains/suppliers/ports"
)

const (
	keyPrefix  = "zenofuel:supplier:exists:"
	DefaultTTL = 5 * time.Minute
)

var _ ports.Directory = (*Directory)(nil)

// Directory caches positive supplier lookups in Redis. Misses always reach
// the source so a freshly registered supplier is visible immediately.
type Directory struct {
	client goredis.UniversalClient
	source ports.Directory
	ttl    time.Duration
	group  singleflight.Group
	logger *slog.Logger
}

// Option customises the directory.
type Option func(*Directory)

func WithTTL(ttl time.Duration) Option {
	return func(d *Directory) {
		if ttl > 0 {
			d.ttl = ttl
		}
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(d *Directory) {
		if logger != nil {
			d.logger = logger
		}
	}
}

func NewDirectory(client goredis.UniversalClient, source ports.Directory, opts ...Option) *Directory {
	d := &Directory{
		client: client,
		source: source,
		ttl:    DefaultTTL,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(d)
		}
	}
	return d
}

func cacheKey(email string) string {
	return keyPrefix + email
}

// Exists checks Redis first, then the source. Redis failures fall back to the source.
func (d *Directory) Exists(ctx context.Context, email string) (bool, error) {
	email = domain.NormalizeEmail(email)
	if email == "" {
		return false, nil
	}
	if d.client != nil {
		_, err := d.client.Get(ctx, cacheKey(email)).Result()
		switch {
		case err == nil:
			return true, nil
		case err != goredis.Nil:
			d.logger.WarnContext(ctx, "supplier cache read failed", slog.String("email", email), slog.Any("error", err))
		}
	}

	value, err, _ := d.group.Do(email, func() (interface{}, error) {
		known, err := d.source.Exists(ctx, email)
		if err != nil || !known {
			return known, err
		}
		if d.client != nil {
			if err := d.client.Set(ctx, cacheKey(email), "1", d.ttl).Err(); err != nil {
				d.logger.WarnContext(ctx, "supplier cache write failed", slog.String("email", email), slog.Any("error", err))
			}
		}
		return true, nil
	})
	if err != nil {
		return false, err
	}
	return value.(bool), nil
}

