package repository

import (
	"errors"
	"strings"
	"time"
)

var ErrInvalidKey = errors.New("invalid key")

// checkKey rejects keys that cannot be used verbatim as a file name, object
// key or primary key value.
func checkKey(key string) error {
	if strings.TrimSpace(key) == "" || strings.ContainsAny(key, `/\`) || key == "." || key == ".." {
		return ErrInvalidKey
	}
	return nil
}

func nowString() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}

func cloneBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
