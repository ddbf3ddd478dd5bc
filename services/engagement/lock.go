package engagement

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"localconnect/utils"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

// RatingLocker serializes rating recomputation per business. The returned
// unlock must be called exactly once.
type RatingLocker interface {
	Lock(ctx context.Context, businessID string) (unlock func(), err error)
}

// NoopLocker performs no serialization. Concurrent recomputations for one
// business may persist a stale snapshot until the next review write.
type NoopLocker struct{}

func (NoopLocker) Lock(context.Context, string) (func(), error) {
	return func() {}, nil
}

// LocalLocker is a keyed mutex for a single process.
type LocalLocker struct {
	mu    sync.Mutex
	locks map[string]*keyedLock
}

type keyedLock struct {
	ch   chan struct{}
	refs int
}

func NewLocalLocker() *LocalLocker {
	return &LocalLocker{locks: make(map[string]*keyedLock)}
}

func (l *LocalLocker) Lock(ctx context.Context, businessID string) (func(), error) {
	l.mu.Lock()
	k, ok := l.locks[businessID]
	if !ok {
		k = &keyedLock{ch: make(chan struct{}, 1)}
		l.locks[businessID] = k
	}
	k.refs++
	l.mu.Unlock()

	select {
	case k.ch <- struct{}{}:
	case <-ctx.Done():
		l.release(businessID, k)
		return nil, ctx.Err()
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			<-k.ch
			l.release(businessID, k)
		})
	}, nil
}

func (l *LocalLocker) release(businessID string, k *keyedLock) {
	l.mu.Lock()
	defer l.mu.Unlock()
	k.refs--
	if k.refs == 0 {
		delete(l.locks, businessID)
	}
}

// releaseScript deletes the key only while it still holds our token.
var releaseScript = redis.NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
end
return 0
`)

// ErrLockTimeout is returned when a Redis lock cannot be taken before ctx ends.
var ErrLockTimeout = errors.New("timed out waiting for rating lock")

// RedisLocker takes a SET NX PX lock per business, shared by every instance.
type RedisLocker struct {
	Client *redis.Client
	TTL    time.Duration
	Retry  time.Duration
}

func NewRedisLocker(client *redis.Client) *RedisLocker {
	return &RedisLocker{Client: client, TTL: utils.RatingLockTTL, Retry: 25 * time.Millisecond}
}

func (l *RedisLocker) Lock(ctx context.Context, businessID string) (func(), error) {
	key := utils.RatingLockPrefix + businessID
	token := uuid.NewString()

	ticker := time.NewTicker(l.Retry)
	defer ticker.Stop()
	for {
		ok, err := l.Client.SetNX(ctx, key, token, l.TTL).Result()
		if err != nil {
			return nil, fmt.Errorf("failed to acquire rating lock for %s: %w", businessID, err)
		}
		if ok {
			break
		}
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("%w: %v", ErrLockTimeout, ctx.Err())
		case <-ticker.C:
		}
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			// Release on a fresh context so a cancelled request still frees the key.
			rctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			if err := releaseScript.Run(rctx, l.Client, []string{key}, token).Err(); err != nil && !errors.Is(err, redis.Nil) {
				utils.GetLogger().Sugar().Warnf("failed to release rating lock %s: %v", key, err)
			}
		})
	}, nil
}
