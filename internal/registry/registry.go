// Package registry resolves city codes to serialized model artifacts on disk.
package registry

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"valuation-service/internal/config"
	"valuation-service/internal/domain"
)

// Filesystem maps a city code to <dir>/<prefix>_<cityCode><ext> and checks
// existence on every call. No caching and no integrity check: hot-swapped
// artifacts are picked up immediately, corrupt ones fail at load time.
type Filesystem struct {
	dir    string
	prefix string
	ext    string
}

func NewFilesystem(cfg config.ModelsConfig) *Filesystem {
	return &Filesystem{dir: cfg.Dir, prefix: cfg.Prefix, ext: cfg.Ext}
}

func (r *Filesystem) Resolve(ctx context.Context, cityCode string) (domain.ArtifactHandle, error) {
	// City codes are opaque tokens, never path fragments.
	if strings.ContainsAny(cityCode, `/\`) || strings.Contains(cityCode, "..") {
		return domain.ArtifactHandle{}, &domain.ModelNotFoundError{CityCode: cityCode}
	}

	path := filepath.Join(r.dir, fmt.Sprintf("%s_%s%s", r.prefix, cityCode, r.ext))

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.ArtifactHandle{}, &domain.ModelNotFoundError{CityCode: cityCode}
		}
		return domain.ArtifactHandle{}, fmt.Errorf("stat model artifact: %w", err)
	}

	return domain.ArtifactHandle{CityCode: cityCode, Path: path}, nil
}
