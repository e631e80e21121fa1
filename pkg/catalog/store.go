package catalog

import (
	"context"
	"embed"
	"fmt"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"

	apperrors "github.com/fineswap/vertag/pkg/errors"
	"github.com/fineswap/vertag/pkg/serializer"
	"github.com/fineswap/vertag/pkg/version"
)

//go:embed data/default.yaml
var catalogFS embed.FS

const embeddedCatalogPath = "data/default.yaml"

var (
	embeddedOnce   sync.Once
	cachedEmbedded *Catalog
	cachedEmbedErr error
)

// Load returns the catalog at path, or the embedded default catalog when
// path is empty. The embedded catalog is parsed once and cached.
func Load(ctx context.Context, path string) (*Catalog, error) {
	if path == "" {
		return loadEmbedded(ctx)
	}
	return LoadFromFile(path)
}

// loadEmbedded loads and caches the default catalog from embedded data.
func loadEmbedded(_ context.Context) (*Catalog, error) {
	parsed := false
	embeddedOnce.Do(func() {
		parsed = true
		catalogCacheMisses.Inc()

		content, err := catalogFS.ReadFile(embeddedCatalogPath)
		if err != nil {
			cachedEmbedErr = fmt.Errorf("failed to read embedded catalog: %w", err)
			return
		}

		var c Catalog
		if err := yaml.Unmarshal(content, &c); err != nil {
			cachedEmbedErr = fmt.Errorf("failed to parse embedded catalog: %w", err)
			return
		}

		if err := c.Validate(); err != nil {
			cachedEmbedErr = apperrors.Wrap(apperrors.ErrCodeInternal, "embedded catalog validation failed", err)
			return
		}

		cachedEmbedded = &c
	})

	if !parsed && cachedEmbedErr == nil {
		catalogCacheHits.Inc()
	}

	if cachedEmbedErr != nil {
		return nil, cachedEmbedErr
	}
	if cachedEmbedded == nil {
		return nil, apperrors.New(apperrors.ErrCodeInternal, "embedded catalog not initialized")
	}
	return cachedEmbedded, nil
}

// LoadFromFile loads and validates a catalog from a JSON or YAML file.
func LoadFromFile(path string) (*Catalog, error) {
	c, err := serializer.FromFile[Catalog](path)
	if err != nil {
		return nil, apperrors.WrapWithContext(
			apperrors.ErrCodeInvalidRequest,
			"failed to load catalog",
			err,
			map[string]any{"path": path},
		)
	}

	if err := c.Validate(); err != nil {
		return nil, apperrors.WrapWithContext(
			apperrors.ErrCodeInvalidRequest,
			"catalog validation failed",
			err,
			map[string]any{"path": path},
		)
	}

	return c, nil
}

// Get returns the component with the given name.
func (c *Catalog) Get(name string) (*Component, error) {
	for i := range c.Components {
		if c.Components[i].Name == name {
			return &c.Components[i], nil
		}
	}
	return nil, apperrors.New(apperrors.ErrCodeNotFound, fmt.Sprintf("component not found: %s", name))
}

// List returns a copy of the components sorted by name.
func (c *Catalog) List() []Component {
	out := make([]Component, len(c.Components))
	copy(out, c.Components)
	sort.Slice(out, func(i, j int) bool {
		return out[i].Name < out[j].Name
	})
	return out
}

// Resolve parses every pinned entry into a labeled Version, keyed by
// component name.
func (c *Catalog) Resolve() (map[string]version.Version, error) {
	out := make(map[string]version.Version, len(c.Components))
	for _, comp := range c.Components {
		v, err := comp.Resolve()
		if err != nil {
			return nil, apperrors.WrapWithContext(
				apperrors.ErrCodeInvalidRequest,
				fmt.Sprintf("failed to resolve component %q", comp.Name),
				err,
				map[string]any{"component": comp.Name, "version": comp.Version},
			)
		}
		out[comp.Name] = v
	}
	return out, nil
}
