package file_store

import (
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// LocalAssetStore writes assets to a directory on local disk, served back by
// the static /assets route.
type LocalAssetStore struct {
	dir              string
	customizeKeyFunc CustomizeKeyFuncType
}

func NewLocalAssetStore(dir string) (*LocalAssetStore, error) {
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return nil, errors.Wrap(err, "fail to create assets dir")
	}
	return &LocalAssetStore{dir: dir}, nil
}

func (s *LocalAssetStore) SetCustomizeKeyFunc(f CustomizeKeyFuncType) {
	s.customizeKeyFunc = f
}

func (s *LocalAssetStore) Store(r io.Reader, ownerId string, fileName string) (string, error) {
	var key string
	var err error
	if s.customizeKeyFunc != nil {
		key = s.customizeKeyFunc(ownerId, fileName)
	} else {
		key, err = GenerateAssetKey(ownerId, fileName)
		if err != nil {
			return "", err
		}
	}

	file, err := os.Create(filepath.Join(s.dir, key))
	if err != nil {
		return "", errors.Wrap(err, "fail to create asset file")
	}
	defer file.Close()

	// Use io.Copy to just dump the reader to the file. This supports huge files
	if _, err := io.Copy(file, r); err != nil {
		return "", errors.Wrap(err, "fail to write asset file")
	}

	return key, nil
}

func (s *LocalAssetStore) GetUrlFromKey(key string) string {
	return "/assets/" + key
}

// CleanUp is a no-op, locally stored assets persist across restarts.
func (s *LocalAssetStore) CleanUp() {}
