package main

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// keyValueFlag collects repeatable key=value flags into a map.
// It implements the flag.Value interface.
type keyValueFlag map[string]string

// String returns the collected pairs in deterministic order.
func (f keyValueFlag) String() string {
	pairs := make([]string, 0, len(f))
	for key, value := range f {
		pairs = append(pairs, fmt.Sprintf("%s=%s", key, value))
	}
	sort.Strings(pairs)
	return strings.Join(pairs, ",")
}

// Set parses an input of form key=value and stores the pair. It returns an
// error when the "=" separator is missing or the key is empty.
func (f keyValueFlag) Set(s string) error {
	key, value, ok := strings.Cut(s, "=")
	if !ok || key == "" {
		return errors.New("need a pair in a form `key=value`")
	}

	f[key] = value
	return nil
}
