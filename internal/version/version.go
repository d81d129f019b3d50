// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Orchestrator Authors

// Package version parses the raw version strings found in orchestrator
// configuration (e.g. "7.9", "8.9.0.43852", "9.4-SNAPSHOT") into comparable
// values.
package version

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrEmptyVersion is returned by Create when the raw string is blank.
var ErrEmptyVersion = errors.New("empty version string")

// Version is an immutable parsed version. The zero value is not meaningful;
// use Create.
type Version struct {
	raw       string
	major     int
	minor     int
	patch     int
	build     int
	qualifier string
}

// Create parses raw into a Version.
//
// The numeric part is up to four dot-separated fields (major.minor.patch.build);
// missing fields default to zero. An optional qualifier follows the first "-"
// (e.g. "SNAPSHOT", "RC1") and is kept verbatim but ignored by comparisons.
func Create(raw string) (Version, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Version{}, ErrEmptyVersion
	}

	v := Version{raw: trimmed}

	numeric := trimmed
	if idx := strings.Index(trimmed, "-"); idx >= 0 {
		numeric = trimmed[:idx]
		v.qualifier = trimmed[idx+1:]
	}

	fields := strings.Split(numeric, ".")
	if len(fields) > 4 {
		return Version{}, fmt.Errorf("too many version fields in %q", raw)
	}
	targets := []*int{&v.major, &v.minor, &v.patch, &v.build}
	for i, field := range fields {
		n, err := strconv.Atoi(field)
		if err != nil {
			return Version{}, fmt.Errorf("invalid version field %q in %q: %w", field, raw, err)
		}
		*targets[i] = n
	}

	return v, nil
}

// String returns the raw string the Version was created from.
func (v Version) String() string { return v.raw }

// Major returns the first numeric field.
func (v Version) Major() int { return v.major }

// Minor returns the second numeric field.
func (v Version) Minor() int { return v.minor }

// Qualifier returns the text after the first "-" in the raw string, or "".
func (v Version) Qualifier() string { return v.qualifier }

// CompareTo orders two versions by their numeric fields. Qualifiers are
// ignored. Returns -1, 0 or 1.
func (v Version) CompareTo(other Version) int {
	a := [4]int{v.major, v.minor, v.patch, v.build}
	b := [4]int{other.major, other.minor, other.patch, other.build}
	for i := range a {
		switch {
		case a[i] < b[i]:
			return -1
		case a[i] > b[i]:
			return 1
		}
	}
	return 0
}

// IsGreaterThan reports whether v orders strictly after other.
func (v Version) IsGreaterThan(other Version) bool {
	return v.CompareTo(other) > 0
}

// IsGreaterThanOrEquals reports whether v orders after or equal to other.
func (v Version) IsGreaterThanOrEquals(other Version) bool {
	return v.CompareTo(other) >= 0
}
