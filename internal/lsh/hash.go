package lsh

import (
	"crypto/md5" //nolint:gosec // used as a uniform hash, not for security
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"
)

const (
	// HashMD5 names the reference-compatible hasher.
	HashMD5 = "md5"
	// HashXX names the xxhash-based hasher.
	HashXX = "xxhash"
)

// Hasher maps bytes to a 32-bit value. Implementations must be deterministic
// and safe for concurrent use.
type Hasher interface {
	Name() string
	Sum32(data []byte) uint32
}

// MD5Hasher returns the first 32 bits of the MD5 digest read big-endian, which
// equals parsing the first eight hex digits of the digest.
type MD5Hasher struct{}

func (MD5Hasher) Name() string { return HashMD5 }

func (MD5Hasher) Sum32(data []byte) uint32 {
	sum := md5.Sum(data) //nolint:gosec
	return binary.BigEndian.Uint32(sum[:4])
}

// XXHasher returns the low 32 bits of XXH64.
type XXHasher struct{}

func (XXHasher) Name() string { return HashXX }

func (XXHasher) Sum32(data []byte) uint32 {
	return uint32(xxhash.Sum64(data))
}

// NewHasher resolves a hasher by name. An empty name selects MD5.
func NewHasher(name string) (Hasher, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", HashMD5:
		return MD5Hasher{}, nil
	case HashXX:
		return XXHasher{}, nil
	default:
		return nil, configError("lsh.hash", fmt.Errorf("%w: %q", ErrUnknownHash, name))
	}
}
