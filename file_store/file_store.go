package file_store

import (
	"fmt"
	"io"
	"time"

	"github.com/Luismorlan/sociomux/utils"
)

// CustomizeKeyFuncType overrides server side key generation for a store.
type CustomizeKeyFuncType func(ownerId string, fileName string) string

// AssetStore persists uploaded user assets (profile and post images) and maps
// stored keys back to client visible urls.
type AssetStore interface {
	Store(r io.Reader, ownerId string, fileName string) (key string, err error)
	GetUrlFromKey(key string) string
	CleanUp()
}

// GenerateAssetKey derives a storage key from the uploading user and the
// original file name. The client supplied name never becomes the key, only
// its extension survives, which closes the path traversal and collision hole
// of trusting the original name.
func GenerateAssetKey(ownerId string, fileName string) (key string, err error) {
	key, err = utils.TextToMd5Hash(fmt.Sprintf("%s:%s:%d", ownerId, fileName, time.Now().UnixNano()))
	if err != nil {
		return "", err
	}
	return key + utils.GetUrlExtNameWithDot(fileName), nil
}
