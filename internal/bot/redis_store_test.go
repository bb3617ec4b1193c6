package bot

import (
	"context"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newRedisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewRedisStore(client, time.Hour), mr
}

func TestRedisStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store, mr := newRedisStore(t)

	if _, ok, err := store.Get(ctx, "missing"); ok || err != nil {
		t.Fatalf("expected clean miss, got ok=%v err=%v", ok, err)
	}

	sess := NewSession("chat1")
	sess.State = StateAwaitingBudget
	sess.Destination = "Itália"
	sess.DateRange = "15/08 a 30/08"
	if err := store.Put(ctx, sess); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, ok, err := store.Get(ctx, "chat1")
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if got.State != StateAwaitingBudget || got.Destination != "Itália" {
		t.Errorf("session did not round-trip: %+v", got)
	}

	if !mr.Exists("session:chat1") {
		t.Error("expected prefixed redis key")
	}
	ttl := mr.TTL("session:chat1")
	if ttl <= 0 || ttl > time.Hour {
		t.Errorf("expected TTL within an hour, got %s", ttl)
	}
}

func TestRedisStoreReset(t *testing.T) {
	ctx := context.Background()
	store, _ := newRedisStore(t)

	sess := NewSession("chat1")
	sess.Destination = "França"
	if err := store.Put(ctx, sess); err != nil {
		t.Fatalf("put: %v", err)
	}

	fresh, err := store.Reset(ctx, "chat1")
	if err != nil {
		t.Fatalf("reset: %v", err)
	}
	if fresh.Destination != "" || fresh.State != StateAwaitingDestination {
		t.Errorf("reset returned non-empty session: %+v", fresh)
	}

	got, ok, _ := store.Get(ctx, "chat1")
	if !ok || got.Destination != "" {
		t.Errorf("reset did not overwrite stored session: %+v", got)
	}
}

func TestRedisStoreCorruptPayload(t *testing.T) {
	ctx := context.Background()
	store, mr := newRedisStore(t)

	mr.Set("session:bad", "{not json")
	if _, _, err := store.Get(ctx, "bad"); err == nil {
		t.Fatal("expected decode error for corrupt payload")
	}
}
