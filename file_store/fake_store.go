package file_store

import (
	"io"
	"io/ioutil"
)

// FakeAssetStore generates real keys but discards the bytes, for tests.
type FakeAssetStore struct{}

func (*FakeAssetStore) Store(r io.Reader, ownerId string, fileName string) (key string, err error) {
	if _, err := io.Copy(ioutil.Discard, r); err != nil {
		return "", err
	}
	return GenerateAssetKey(ownerId, fileName)
}

func (*FakeAssetStore) GetUrlFromKey(key string) string {
	return key
}

func (*FakeAssetStore) CleanUp() {}
