package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"

	"kitchen_cali/internal/domain"
)

func valStr(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func valJSON(v any) (any, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	if string(b) == "null" {
		return nil, nil
	}
	return string(b), nil
}

// Source reads the caterer catalog from the caterers table.
type Source struct{ db *sql.DB }

func New(db *sql.DB) *Source { return &Source{db: db} }

func (s *Source) LoadCaterers(ctx context.Context) ([]domain.Caterer, error) {
	rows, err := s.db.QueryContext(ctx, listCaterersSQL)
	if err != nil {
		return nil, fmt.Errorf("query caterers: %w", err)
	}
	defer rows.Close()

	var out []domain.Caterer
	for rows.Next() {
		var c domain.Caterer
		var tier string
		var heroImage, tagline, about sql.NullString
		var cuisines, services, menu, gallery []byte

		if err := rows.Scan(
			&c.Slug,
			&c.Name,
			&c.City,
			&c.County,
			&cuisines,
			&tier,
			&c.Rating,
			&c.ReviewCount,
			&heroImage,
			&tagline,
			&about,
			&services,
			&menu,
			&gallery,
		); err != nil {
			return nil, fmt.Errorf("scan caterer: %w", err)
		}
		c.PriceTier = domain.PriceTier(tier)
		c.HeroImage = heroImage.String
		c.Tagline = tagline.String
		c.About = about.String

		if err := unmarshalColumns(&c, cuisines, services, menu, gallery); err != nil {
			return nil, fmt.Errorf("caterer %s: %w", c.Slug, err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	log.Debug().Int("rows", len(out)).Msg("caterers read from mysql")
	return out, nil
}

func unmarshalColumns(c *domain.Caterer, cuisines, services, menu, gallery []byte) error {
	cols := []struct {
		name string
		raw  []byte
		dst  any
	}{
		{"cuisines", cuisines, &c.Cuisines},
		{"services", services, &c.Services},
		{"sample_menu", menu, &c.SampleMenu},
		{"gallery", gallery, &c.Gallery},
	}
	for _, col := range cols {
		if len(col.raw) == 0 {
			continue
		}
		if err := json.Unmarshal(col.raw, col.dst); err != nil {
			return fmt.Errorf("decode %s: %w", col.name, err)
		}
	}
	return nil
}

// UpsertCaterers writes records keyed by slug. The position column follows
// the order of cs so a later LoadCaterers returns them in the same order.
func (s *Source) UpsertCaterers(ctx context.Context, cs []domain.Caterer) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, insertCatererSQL)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, c := range cs {
		args := []any{i, c.Slug, c.Name, c.City, c.County}
		cuisines, err := valJSON(c.Cuisines)
		if err != nil {
			return err
		}
		if cuisines == nil {
			cuisines = "[]"
		}
		args = append(args, cuisines, string(c.PriceTier), c.Rating, c.ReviewCount,
			valStr(c.HeroImage), valStr(c.Tagline), valStr(c.About))
		for _, v := range []any{c.Services, c.SampleMenu, c.Gallery} {
			j, err := valJSON(v)
			if err != nil {
				return err
			}
			args = append(args, j)
		}
		if _, err := stmt.ExecContext(ctx, args...); err != nil {
			return fmt.Errorf("upsert %s: %w", c.Slug, err)
		}
	}
	return tx.Commit()
}
