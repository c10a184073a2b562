package app

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"kitchen_cali/internal/catalog"
	"kitchen_cali/internal/domain"
	"kitchen_cali/internal/slug"
)

var ErrBoundariesDisabled = errors.New("region boundaries not configured")

const boundariesKey = "regions:boundaries"

// QueryService fronts the Directory with an optional read-through cache and the
// region boundary source. A nil cache or nil boundary client is allowed.
type QueryService struct {
	dir      *Directory
	cache    domain.Cache
	geo      domain.BoundaryClient
	cacheTTL time.Duration
}

func NewQueryService(d *Directory, c domain.Cache, g domain.BoundaryClient, ttl time.Duration) *QueryService {
	return &QueryService{dir: d, cache: c, geo: g, cacheTTL: ttl}
}

// Key parts are query-escaped so a ':' inside a decoded segment cannot shift
// the boundaries between them.
func listingKey(countySlug, citySlug string, f domain.Filter) string {
	return fmt.Sprintf("listing:%s:%s:%s", url.QueryEscape(countySlug), url.QueryEscape(citySlug), f.Fingerprint())
}

func profileKey(countySlug, citySlug, businessSlug string) string {
	return fmt.Sprintf("caterer:%s:%s:%s", url.QueryEscape(countySlug), url.QueryEscape(citySlug), url.QueryEscape(businessSlug))
}

func (s *QueryService) Listing(ctx context.Context, countySlug, citySlug string, f domain.Filter) domain.Listing {
	key := listingKey(countySlug, citySlug, f)
	var out domain.Listing
	if s.get(ctx, key, &out) {
		return out
	}
	out = s.dir.Search(countySlug, citySlug, f)
	s.set(ctx, key, out)
	return out
}

// Profile returns domain.ErrNotFound when no caterer matches the three slugs.
func (s *QueryService) Profile(ctx context.Context, countySlug, citySlug, businessSlug string) (domain.Caterer, error) {
	key := profileKey(countySlug, citySlug, businessSlug)
	var c domain.Caterer
	if s.get(ctx, key, &c) {
		return c, nil
	}
	c, ok := s.dir.FindProfile(countySlug, citySlug, businessSlug)
	if !ok {
		return domain.Caterer{}, domain.ErrNotFound
	}
	s.set(ctx, key, c)
	return c, nil
}

// Labels exposes the display names for a location without running a search.
func (s *QueryService) Labels(countySlug, citySlug string) (string, string) {
	return s.dir.Labels(countySlug, citySlug)
}

func (s *QueryService) Regions() []domain.Region { return catalog.Regions() }

func (s *QueryService) Locations() []domain.Location { return s.dir.Locations() }

func (s *QueryService) Boundaries(ctx context.Context) ([]domain.Boundary, error) {
	if s.geo == nil {
		return nil, ErrBoundariesDisabled
	}
	var out []domain.Boundary
	if s.get(ctx, boundariesKey, &out) {
		return out, nil
	}
	out, err := s.geo.Boundaries(ctx)
	if err != nil {
		return nil, err
	}
	s.set(ctx, boundariesKey, out)
	return out, nil
}

// WarmLocation stores the default listing of loc and every profile in it.
// It returns the number of cache entries written.
func (s *QueryService) WarmLocation(ctx context.Context, loc domain.Location) (int, error) {
	if s.cache == nil {
		return 0, errors.New("warm: cache disabled")
	}
	ttl := int(s.cacheTTL.Seconds())
	var f domain.Filter
	listing := s.dir.Search(loc.CountySlug, loc.CitySlug, f)
	if err := s.cache.Set(ctx, listingKey(loc.CountySlug, loc.CitySlug, f), listing, ttl); err != nil {
		return 0, fmt.Errorf("warm listing %s/%s: %w", loc.CountySlug, loc.CitySlug, err)
	}
	n := 1
	seen := map[string]struct{}{}
	for _, c := range listing.Caterers {
		if err := ctx.Err(); err != nil {
			return n, err
		}
		key := profileKey(loc.CountySlug, loc.CitySlug, slug.Slugify(c.Slug))
		// colliding slugs resolve to the first record, matching FindProfile
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		if err := s.cache.Set(ctx, key, c, ttl); err != nil {
			return n, fmt.Errorf("warm profile %s: %w", c.Slug, err)
		}
		n++
	}
	return n, nil
}

func (s *QueryService) get(ctx context.Context, key string, dst any) bool {
	if s.cache == nil {
		return false
	}
	ok, err := s.cache.Get(ctx, key, dst)
	return err == nil && ok
}

func (s *QueryService) set(ctx context.Context, key string, v any) {
	if s.cache == nil {
		return
	}
	_ = s.cache.Set(ctx, key, v, int(s.cacheTTL.Seconds()))
}
