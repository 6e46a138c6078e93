package storage

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"svw.info/diagsudoku/internal/domain"
)

// FS persists solve traces as JSON files under a base directory, bucketed
// by variant. Playback tooling reads these files; the solver never does.
type FS struct{ dir string }

func NewFS(dir string) *FS { return &FS{dir: dir} }

func variantDir(v domain.Variant) string {
	if v == domain.Diagonal {
		return "diagonal"
	}
	return "classic"
}

func (s *FS) pathFor(id string, v domain.Variant) string {
	return filepath.Join(s.dir, variantDir(v), strings.TrimSpace(id)+".json")
}

func (s *FS) Save(ctx context.Context, t *domain.TraceRecord) error {
	if t == nil || t.ID == "" {
		return errors.New("invalid trace: missing ID")
	}
	target := s.pathFor(t.ID, t.Variant)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}
	f, err := os.Create(target)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(t)
}

func (s *FS) Load(ctx context.Context, id string) (*domain.TraceRecord, error) {
	candidates := []string{
		filepath.Join(s.dir, "classic", id+".json"),
		filepath.Join(s.dir, "diagonal", id+".json"),
		filepath.Join(s.dir, id+".json"), // legacy flat layout
	}
	var data []byte
	for _, path := range candidates {
		if _, statErr := os.Stat(path); statErr == nil {
			b, err := os.ReadFile(path)
			if err != nil {
				return nil, err
			}
			data = b
			break
		}
	}
	if data == nil {
		return nil, os.ErrNotExist
	}
	var out domain.TraceRecord
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *FS) List(ctx context.Context) ([]domain.TraceMeta, error) {
	type meta struct {
		ID        string         `json:"id"`
		Name      string         `json:"name,omitempty"`
		Variant   domain.Variant `json:"variant"`
		Solved    bool           `json:"solved"`
		CreatedAt int64          `json:"createdAt"`
	}

	var out []domain.TraceMeta
	dirs := []string{
		filepath.Join(s.dir, "classic"),
		filepath.Join(s.dir, "diagonal"),
		s.dir, // legacy flat files
	}
	for _, dir := range dirs {
		ents, err := os.ReadDir(dir)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, err
		}
		for _, e := range ents {
			if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
				continue
			}
			data, err := os.ReadFile(filepath.Join(dir, e.Name()))
			if err != nil {
				continue
			}
			var mm meta
			if err := json.Unmarshal(data, &mm); err != nil || mm.ID == "" {
				continue
			}
			out = append(out, domain.TraceMeta{
				ID:        mm.ID,
				Name:      mm.Name,
				Variant:   mm.Variant,
				Solved:    mm.Solved,
				CreatedAt: mm.CreatedAt,
			})
		}
	}
	return out, nil
}
