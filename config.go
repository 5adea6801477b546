package cmdtree

import (
	"errors"
	"io/fs"
	"strings"

	"github.com/BurntSushi/toml"
)

// Pair is one key/value entry from a config file, in file order. Nested table
// keys are flattened to their dotted form.
type Pair struct {
	Key   string
	Value any
}

// LoadConfig reads a TOML config file into ordered key/value pairs for the
// option overlay. A missing file is not an error and yields no pairs; any
// other failure is a *ConfigError.
func LoadConfig(path string) ([]Pair, error) {
	var raw map[string]any
	md, err := toml.DecodeFile(path, &raw)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, &ConfigError{Path: path, Err: err}
	}
	pairs := make([]Pair, 0, len(raw))
	for _, key := range md.Keys() {
		v, ok := lookupKey(raw, key)
		if !ok {
			continue
		}
		if _, isTable := v.(map[string]any); isTable {
			continue
		}
		pairs = append(pairs, Pair{Key: strings.Join(key, "."), Value: normalizeValue(v)})
	}
	return pairs, nil
}

func lookupKey(raw map[string]any, key toml.Key) (any, bool) {
	cur := any(raw)
	for _, part := range key {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		cur, ok = m[part]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

// normalizeValue maps TOML decode types onto the types option lookups expect,
// so a config int satisfies GetOption[int].
func normalizeValue(v any) any {
	if i, ok := v.(int64); ok {
		return int(i)
	}
	return v
}
