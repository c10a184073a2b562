package redisad_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"

	redisad "kitchen_cali/internal/adapters/redis"
	"kitchen_cali/internal/domain"
)

func newCache(t *testing.T) (*redisad.Cache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	c := redisad.New(mr.Addr(), "", 0)
	t.Cleanup(func() { _ = c.Close() })
	return c, mr
}

func TestCache_SetGetDel(t *testing.T) {
	c, mr := newCache(t)
	ctx := context.Background()

	if err := c.Ping(ctx); err != nil {
		t.Fatalf("ping: %v", err)
	}

	var miss domain.Listing
	if ok, err := c.Get(ctx, "listing:orange:irvine", &miss); ok || err != nil {
		t.Fatalf("expected clean miss, got ok=%v err=%v", ok, err)
	}

	in := domain.Listing{County: "Orange", City: "Irvine", Total: 1, Caterers: []domain.Caterer{{Slug: "a", PriceTier: domain.PriceModerate}}}
	if err := c.Set(ctx, "listing:orange:irvine", in, 60); err != nil {
		t.Fatalf("set: %v", err)
	}
	if !mr.Exists("kc:listing:orange:irvine") {
		t.Fatalf("expected prefixed key in redis, have %v", mr.Keys())
	}
	if ttl := mr.TTL("kc:listing:orange:irvine"); ttl != 60*time.Second {
		t.Fatalf("unexpected ttl %v", ttl)
	}

	var out domain.Listing
	ok, err := c.Get(ctx, "listing:orange:irvine", &out)
	if !ok || err != nil {
		t.Fatalf("expected hit, got ok=%v err=%v", ok, err)
	}
	if out.City != "Irvine" || len(out.Caterers) != 1 || out.Caterers[0].PriceTier != domain.PriceModerate {
		t.Fatalf("unexpected value: %+v", out)
	}

	if err := c.Del(ctx, "listing:orange:irvine"); err != nil {
		t.Fatalf("del: %v", err)
	}
	if mr.Exists("kc:listing:orange:irvine") {
		t.Fatalf("key should be gone")
	}
}

func TestCache_Expiry(t *testing.T) {
	c, mr := newCache(t)
	ctx := context.Background()

	if err := c.Set(ctx, "regions:boundaries", []domain.Boundary{{Name: "Orange County"}}, 1); err != nil {
		t.Fatalf("set: %v", err)
	}
	mr.FastForward(2 * time.Second)

	var out []domain.Boundary
	if ok, _ := c.Get(ctx, "regions:boundaries", &out); ok {
		t.Fatalf("expected expired entry to miss")
	}
}

func TestCache_CorruptValue(t *testing.T) {
	c, mr := newCache(t)
	if err := mr.Set("kc:caterer:x", "{not json"); err != nil {
		t.Fatalf("seed: %v", err)
	}
	var out domain.Caterer
	ok, err := c.Get(context.Background(), "caterer:x", &out)
	if ok || err == nil {
		t.Fatalf("expected decode error, got ok=%v err=%v", ok, err)
	}
}

func TestCache_ServerDown(t *testing.T) {
	c, mr := newCache(t)
	mr.Close()
	var out domain.Caterer
	if _, err := c.Get(context.Background(), "caterer:x", &out); err == nil {
		t.Fatalf("expected error when redis is unreachable")
	}
}
