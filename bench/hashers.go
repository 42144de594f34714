package bench

import (
	"encoding/binary"
	"fmt"
	"sort"

	"github.com/cespare/xxhash/v2"
	"github.com/colorfulnotion/hashchart/charterrors"
	"github.com/ethereum/go-ethereum/crypto"
	sha256 "github.com/minio/sha256-simd"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

// Hasher is one algorithm under measurement.
type Hasher interface {
	Name() string
	Sum(data []byte) []byte
}

type hashFunc struct {
	name string
	sum  func([]byte) []byte
}

func (h hashFunc) Name() string           { return h.name }
func (h hashFunc) Sum(data []byte) []byte { return h.sum(data) }

var registry = map[string]Hasher{
	"sha256": hashFunc{"sha256", func(b []byte) []byte {
		s := sha256.Sum256(b)
		return s[:]
	}},
	"blake2b": hashFunc{"blake2b", func(b []byte) []byte {
		s := blake2b.Sum256(b)
		return s[:]
	}},
	"sha3": hashFunc{"sha3", func(b []byte) []byte {
		s := sha3.Sum256(b)
		return s[:]
	}},
	"keccak256": hashFunc{"keccak256", func(b []byte) []byte {
		return crypto.Keccak256(b)
	}},
	"xxhash": hashFunc{"xxhash", func(b []byte) []byte {
		return binary.BigEndian.AppendUint64(nil, xxhash.Sum64(b))
	}},
}

// Names lists the registered hashers alphabetically.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the hasher registered under name.
func Lookup(name string) (Hasher, error) {
	h, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%q (have %v): %w", name, Names(), charterrors.ErrUnknownHasher)
	}
	return h, nil
}

// Hashers resolves names in order; no names selects every hasher.
func Hashers(names ...string) ([]Hasher, error) {
	if len(names) == 0 {
		names = Names()
	}
	hs := make([]Hasher, 0, len(names))
	for _, name := range names {
		h, err := Lookup(name)
		if err != nil {
			return nil, err
		}
		hs = append(hs, h)
	}
	return hs, nil
}
