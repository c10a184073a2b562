package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"kitchen_cali/internal/domain"
)

// FromSource reads every record from src and freezes them into a Catalog.
func FromSource(ctx context.Context, src domain.CatalogSource) (*Catalog, error) {
	rs, err := src.LoadCaterers(ctx)
	if err != nil {
		return nil, fmt.Errorf("load caterers: %w", err)
	}
	c, err := New(rs)
	if err != nil {
		return nil, err
	}
	log.Info().Int("caterers", c.Len()).Int("counties", len(c.counties)).Msg("catalog loaded")
	return c, nil
}

type BuiltinSource struct{}

func (BuiltinSource) LoadCaterers(context.Context) ([]domain.Caterer, error) {
	return builtinCaterers(), nil
}

// FileSource reads a JSON or YAML array of caterers. The format follows the extension.
type FileSource struct{ Path string }

func (f FileSource) LoadCaterers(ctx context.Context) ([]domain.Caterer, error) {
	b, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file %s: %w", f.Path, err)
	}
	var rs []domain.Caterer
	switch ext := strings.ToLower(filepath.Ext(f.Path)); ext {
	case ".json":
		err = json.Unmarshal(b, &rs)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, &rs)
	default:
		return nil, fmt.Errorf("catalog file %s: unsupported extension %q", f.Path, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("decode catalog file %s: %w", f.Path, err)
	}
	return rs, nil
}

// LoadFile is FromSource over a FileSource.
func LoadFile(ctx context.Context, path string) (*Catalog, error) {
	return FromSource(ctx, FileSource{Path: path})
}
