package quotastore

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"fullplanes/internal/domain/quota"
	"fullplanes/internal/infra"
)

type fileRecord struct {
	Month string `json:"month"`
	Used  int    `json:"used"`
}

// FileStore keeps the counter in a small JSON file. Writes go through a temp file and rename.
type FileStore struct {
	path   string
	logger *slog.Logger
}

func NewFileStore(path string, logger *slog.Logger) *FileStore {
	return &FileStore{path: path, logger: logger}
}

// Load treats a missing or corrupt file as "nothing stored" so the full quota is available.
func (s *FileStore) Load(_ context.Context) (*quota.State, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, infra.Wrap(s.logger, infra.KindStoreFailure, "read quota file", err, slog.String("path", s.path))
	}

	var rec fileRecord
	if err := json.Unmarshal(data, &rec); err != nil || rec.Month == "" {
		s.logger.Warn("quota file unreadable, starting from zero",
			slog.String("path", s.path))
		return nil, nil
	}

	return &quota.State{Month: rec.Month, Used: rec.Used}, nil
}

func (s *FileStore) Save(_ context.Context, state quota.State) error {
	data, err := json.Marshal(fileRecord{Month: state.Month, Used: state.Used})
	if err != nil {
		return infra.Wrap(s.logger, infra.KindStoreFailure, "encode quota", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".quota-*.json")
	if err != nil {
		return infra.Wrap(s.logger, infra.KindStoreFailure, "create temp quota file", err, slog.String("path", s.path))
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return infra.Wrap(s.logger, infra.KindStoreFailure, "write quota file", err, slog.String("path", s.path))
	}
	if err := tmp.Close(); err != nil {
		return infra.Wrap(s.logger, infra.KindStoreFailure, "close quota file", err, slog.String("path", s.path))
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return infra.Wrap(s.logger, infra.KindStoreFailure, "replace quota file", err, slog.String("path", s.path))
	}
	return nil
}
