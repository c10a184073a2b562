package app_test

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"kitchen_cali/internal/app"
	"kitchen_cali/internal/catalog"
	"kitchen_cali/internal/domain"
)

// ---- fakes ----

// fakeCache round-trips through JSON like the Redis adapter does.
type fakeCache struct {
	store  map[string][]byte
	sets   int
	failOn string
}

func (c *fakeCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	b, ok := c.store[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, dst)
}

func (c *fakeCache) Set(ctx context.Context, key string, v any, ttlSec int) error {
	if c.failOn != "" && strings.HasPrefix(key, c.failOn) {
		return errors.New("cache down")
	}
	if c.store == nil {
		c.store = map[string][]byte{}
	}
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	c.store[key] = b
	c.sets++
	return nil
}

func (c *fakeCache) Del(ctx context.Context, key string) error {
	delete(c.store, key)
	return nil
}

type fakeGeo struct {
	calls int
	out   []domain.Boundary
	err   error
}

func (g *fakeGeo) Boundaries(ctx context.Context) ([]domain.Boundary, error) {
	g.calls++
	return g.out, g.err
}

func newService(cache domain.Cache, geo domain.BoundaryClient) *app.QueryService {
	return app.NewQueryService(app.NewDirectory(catalog.Builtin()), cache, geo, 10*time.Minute)
}

// ---- tests ----

func TestListing_CacheMissThenHit(t *testing.T) {
	cache := &fakeCache{}
	q := newService(cache, nil)
	ctx := context.Background()

	l := q.Listing(ctx, "orange", "irvine", domain.Filter{})
	if l.Total != 1 || l.Caterers[0].Slug != "villa-rosa-catering" {
		t.Fatalf("unexpected listing: %+v", l)
	}
	if cache.sets != 1 {
		t.Fatalf("expected listing to be cached, sets=%d", cache.sets)
	}

	// Tamper with the cached value to prove the second read is served from cache.
	for k := range cache.store {
		var cached domain.Listing
		_ = json.Unmarshal(cache.store[k], &cached)
		cached.City = "FROM CACHE"
		cache.store[k], _ = json.Marshal(cached)
	}
	l2 := q.Listing(ctx, "orange", "irvine", domain.Filter{})
	if l2.City != "FROM CACHE" {
		t.Fatalf("expected cached listing, got city %q", l2.City)
	}

	// A different filter is a different key.
	rating := q.Listing(ctx, "orange", "irvine", domain.Filter{SortBy: domain.SortRating})
	if rating.City != "Irvine" {
		t.Fatalf("expected fresh listing for new filter, got %q", rating.City)
	}
}

func TestListing_KeysDoNotCollide(t *testing.T) {
	cache := &fakeCache{}
	q := newService(cache, nil)
	ctx := context.Background()

	first := q.Listing(ctx, "a:b", "c", domain.Filter{})
	second := q.Listing(ctx, "a", "b:c", domain.Filter{})
	if first.CountySlug != "a:b" || first.CitySlug != "c" {
		t.Fatalf("unexpected first listing: %+v", first)
	}
	if second.CountySlug != "a" || second.CitySlug != "b:c" {
		t.Fatalf("second request served another location's listing: %+v", second)
	}

	z, yz := "z", "y|c=z"
	third := q.Listing(ctx, "orange", "irvine", domain.Filter{Search: "x|c=y", Cuisine: &z})
	fourth := q.Listing(ctx, "orange", "irvine", domain.Filter{Search: "x", Cuisine: &yz})
	if third.Total != 0 || fourth.Total != 0 {
		t.Fatalf("unexpected totals %d %d", third.Total, fourth.Total)
	}
	if cache.sets != 4 || len(cache.store) != 4 {
		t.Fatalf("expected four distinct keys, have %v", keys(cache))
	}
}

func TestProfile_NotFound(t *testing.T) {
	cache := &fakeCache{}
	q := newService(cache, nil)

	_, err := q.Profile(context.Background(), "orange", "irvine", "zzz")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if cache.sets != 0 {
		t.Fatalf("not-found must not be cached")
	}
}

func TestProfile_Cached(t *testing.T) {
	cache := &fakeCache{}
	q := newService(cache, nil)
	ctx := context.Background()

	c, err := q.Profile(ctx, "san-diego", "la-jolla", "salt-and-fig")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if c.Name != "Salt & Fig" || len(c.SampleMenu) != 2 {
		t.Fatalf("unexpected caterer: %+v", c)
	}
	if _, ok := cache.store["caterer:san-diego:la-jolla:salt-and-fig"]; !ok {
		t.Fatalf("expected profile cache entry, have %v", keys(cache))
	}
}

func TestListing_NilCache(t *testing.T) {
	q := newService(nil, nil)
	l := q.Listing(context.Background(), "san-diego", "encinitas", domain.Filter{Search: "green"})
	if l.Total != 1 {
		t.Fatalf("unexpected listing: %+v", l)
	}
}

func TestListing_CacheErrorsIgnored(t *testing.T) {
	q := newService(&fakeCache{failOn: "listing:"}, nil)
	l := q.Listing(context.Background(), "los-angeles", "pasadena", domain.Filter{})
	if l.Total != 1 {
		t.Fatalf("cache failure should not affect results: %+v", l)
	}
}

func TestBoundaries(t *testing.T) {
	if _, err := newService(nil, nil).Boundaries(context.Background()); !errors.Is(err, app.ErrBoundariesDisabled) {
		t.Fatalf("expected ErrBoundariesDisabled, got %v", err)
	}

	geo := &fakeGeo{out: []domain.Boundary{{Name: "Orange County", County: "Orange", Slug: "orange"}}}
	cache := &fakeCache{}
	q := newService(cache, geo)
	for i := 0; i < 2; i++ {
		bs, err := q.Boundaries(context.Background())
		if err != nil || len(bs) != 1 || bs[0].Slug != "orange" {
			t.Fatalf("unexpected boundaries: %+v %v", bs, err)
		}
	}
	if geo.calls != 1 {
		t.Fatalf("expected one upstream call, got %d", geo.calls)
	}

	failing := newService(nil, &fakeGeo{err: errors.New("HTTP 500")})
	if _, err := failing.Boundaries(context.Background()); err == nil {
		t.Fatalf("expected upstream error")
	}
}

func TestWarmLocation(t *testing.T) {
	cache := &fakeCache{}
	q := newService(cache, nil)
	loc := domain.Location{County: "Orange", City: "Irvine", CountySlug: "orange", CitySlug: "irvine"}

	n, err := q.WarmLocation(context.Background(), loc)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if n != 2 {
		t.Fatalf("expected listing + 1 profile, got %d", n)
	}
	if _, ok := cache.store["caterer:orange:irvine:villa-rosa-catering"]; !ok {
		t.Fatalf("missing warmed profile, have %v", keys(cache))
	}

	if _, err := newService(nil, nil).WarmLocation(context.Background(), loc); err == nil {
		t.Fatalf("expected error without cache")
	}
}

func TestLabelsAndRegions(t *testing.T) {
	q := newService(nil, nil)
	county, city := q.Labels("ventura", "thousand-oaks")
	if county != "Ventura" || city != "Thousand Oaks" {
		t.Fatalf("unexpected labels %q %q", county, city)
	}
	if len(q.Regions()) != 10 || len(q.Locations()) != 13 {
		t.Fatalf("unexpected regions/locations")
	}
}

func keys(c *fakeCache) []string {
	out := make([]string, 0, len(c.store))
	for k := range c.store {
		out = append(out, k)
	}
	return out
}
