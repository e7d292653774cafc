package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog/log"

	"bio-page/model"
)

// Store persists the whole site record as a single JSON file, rewritten
// wholesale on every save. A coarse mutex serializes the load-mutate-save
// sequence so concurrent requests cannot lose updates.
type Store struct {
	mu   sync.Mutex
	path string
}

// New creates a store backed by the given file path. The parent directory
// is created if needed; the file itself is created lazily on first load.
func New(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	return &Store{path: path}, nil
}

// Load reads the backing file and returns the current record.
//
// A missing file initializes the store from the default record and persists
// it before returning. An unparsable file falls back to the default record
// in memory only; corruption is never surfaced to the caller. A parsable
// file has any missing top-level keys back-filled from the default record,
// one level deep only.
func (s *Store) Load() *model.Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// Save serializes the full record and atomically replaces the backing file.
func (s *Store) Save(rec *model.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(rec)
}

// Update runs fn on the current record under the store lock and persists
// the result. If fn returns an error the record is not saved. The record,
// mutated or not, is returned for rendering.
func (s *Store) Update(fn func(*model.Record) error) (*model.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := s.load()
	if err := fn(rec); err != nil {
		return rec, err
	}
	return rec, s.save(rec)
}

func (s *Store) load() *model.Record {
	data, err := os.ReadFile(s.path)
	if err != nil {
		rec := model.DefaultRecord()
		if os.IsNotExist(err) {
			// First run: seed the file so the defaults are durable.
			if saveErr := s.save(rec); saveErr != nil {
				log.Error().Err(saveErr).Str("path", s.path).Msg("Failed to seed store file")
			}
		} else {
			log.Error().Err(err).Str("path", s.path).Msg("Failed to read store file")
		}
		return rec
	}

	var present map[string]json.RawMessage
	if err := json.Unmarshal(data, &present); err != nil {
		log.Warn().Err(err).Str("path", s.path).Msg("Store file is not valid JSON, falling back to defaults")
		return model.DefaultRecord()
	}
	var rec model.Record
	if err := json.Unmarshal(data, &rec); err != nil {
		log.Warn().Err(err).Str("path", s.path).Msg("Store file does not match record shape, falling back to defaults")
		return model.DefaultRecord()
	}

	backfill(&rec, present)
	return &rec
}

func (s *Store) save(rec *model.Record) error {
	tmp := s.path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(rec); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}
	return os.Rename(tmp, s.path)
}

// backfill copies default values into rec for any top-level key absent from
// the loaded document. The merge is shallow: nested keys inside a present
// top-level key are left exactly as loaded.
func backfill(rec *model.Record, present map[string]json.RawMessage) {
	def := model.DefaultRecord()
	if _, ok := present["admin"]; !ok {
		rec.Admin = def.Admin
	}
	if _, ok := present["profile"]; !ok {
		rec.Profile = def.Profile
	}
	if _, ok := present["bio_info"]; !ok {
		rec.BioInfo = def.BioInfo
	}
	if _, ok := present["skills"]; !ok {
		rec.Skills = def.Skills
	}
	if _, ok := present["social_links"]; !ok {
		rec.SocialLinks = def.SocialLinks
	}
	if _, ok := present["second_developer"]; !ok {
		rec.SecondDeveloper = def.SecondDeveloper
	}
	if _, ok := present["music"]; !ok {
		rec.Music = def.Music
	}
	if _, ok := present["custom_css"]; !ok {
		rec.CustomCSS = def.CustomCSS
	}
	if _, ok := present["visitor_count"]; !ok {
		rec.VisitorCount = def.VisitorCount
	}
	if _, ok := present["created_at"]; !ok {
		rec.CreatedAt = def.CreatedAt
	}
}
