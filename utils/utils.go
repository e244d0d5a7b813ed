package utils

import (
	"crypto/md5"
	"encoding/hex"
	"math/rand"
	"path/filepath"
)

const alphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// ContainsString returns true iff the provided string slice hay contains string
// needle.
func ContainsString(hay []string, needle string) bool {
	for _, str := range hay {
		if str == needle {
			return true
		}
	}
	return false
}

// RandomAlphabetString generates a random string of length n consisting of
// upper and lower case English letters only.
func RandomAlphabetString(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = alphabet[rand.Intn(len(alphabet))]
	}
	return string(b)
}

// TextToMd5Hash returns the hex encoded md5 digest of the provided text.
func TextToMd5Hash(text string) (string, error) {
	h := md5.New()
	if _, err := h.Write([]byte(text)); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// GetUrlExtNameWithDot returns the extension of the last path segment,
// including the leading dot, or empty string if there is none.
func GetUrlExtNameWithDot(url string) string {
	return filepath.Ext(url)
}
