package tramo

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
)

// Load parses a §6.2 tramo-id map file: a JSON object whose keys are
// "keyU-keyV" strings and whose values are positive integers, unique across
// the object. Keys that violate the keyU<=keyV ordering convention are
// canonicalised by swapping; truly duplicate entries after canonicalisation
// are ErrMappingMalformed.
func Load(r io.Reader) (*Table, error) {
	var raw map[string]int
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("tramo: decode: %w", err)
	}

	t := New()
	seenIDs := make(map[int]string, len(raw))
	for rawKey, id := range raw {
		u, v, err := splitPair(rawKey)
		if err != nil {
			return nil, err
		}
		key := pairKey(u, v)

		if prevKey, ok := seenIDs[id]; ok && prevKey != key {
			return nil, fmt.Errorf("%w: id %d assigned to both %q and %q", ErrMappingMalformed, id, prevKey, key)
		}
		if existing, ok := t.byKey[key]; ok {
			return nil, fmt.Errorf("%w: edge %q listed twice (ids %d and %d)", ErrMappingMalformed, key, existing, id)
		}

		seenIDs[id] = key
		t.Add(u, v, id)
	}

	return t, nil
}

// LoadFile opens path and delegates to Load.
func LoadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("tramo: open %s: %w", path, err)
	}
	defer f.Close()

	return Load(f)
}

// splitPair splits a raw "keyU-keyV" entry key into its two canonical point
// keys. Point keys themselves may contain '-' only inside a negative
// component (e.g. "(-1.000, 0.000, 0.000)"), so the split point is the
// literal "-" that sits between the two closing/opening parentheses.
func splitPair(rawKey string) (u, v string, err error) {
	idx := strings.Index(rawKey, ")-(")
	if idx < 0 {
		return "", "", fmt.Errorf("%w: entry key %q is not a \"keyU-keyV\" pair", ErrMappingMalformed, rawKey)
	}

	u = rawKey[:idx+1]
	v = rawKey[idx+2:]

	return u, v, nil
}
