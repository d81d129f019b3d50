package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── Create ────────────────────────────────────────────────────────────────────

// TestCreate_FullVersion verifies that all four numeric fields are parsed.
func TestCreate_FullVersion(t *testing.T) {
	v, err := Create("8.9.0.43852")
	require.NoError(t, err)
	assert.Equal(t, 8, v.Major())
	assert.Equal(t, 9, v.Minor())
	assert.Equal(t, "8.9.0.43852", v.String())
}

// TestCreate_ShortVersion verifies that missing fields default to zero.
func TestCreate_ShortVersion(t *testing.T) {
	v, err := Create("7.9")
	require.NoError(t, err)
	assert.Equal(t, 7, v.Major())
	assert.Equal(t, 9, v.Minor())
}

// TestCreate_Qualifier verifies that the "-" suffix is kept as a qualifier.
func TestCreate_Qualifier(t *testing.T) {
	v, err := Create("9.4-SNAPSHOT")
	require.NoError(t, err)
	assert.Equal(t, "SNAPSHOT", v.Qualifier())
	assert.Equal(t, "9.4-SNAPSHOT", v.String())
}

// TestCreate_Blank verifies that a blank string is rejected.
func TestCreate_Blank(t *testing.T) {
	_, err := Create("   ")
	assert.ErrorIs(t, err, ErrEmptyVersion)
}

// TestCreate_NonNumericField verifies that a non-numeric field is rejected.
func TestCreate_NonNumericField(t *testing.T) {
	_, err := Create("7.x")
	assert.Error(t, err)
}

// TestCreate_TooManyFields verifies that five numeric fields are rejected.
func TestCreate_TooManyFields(t *testing.T) {
	_, err := Create("1.2.3.4.5")
	assert.Error(t, err)
}

// ── comparisons ───────────────────────────────────────────────────────────────

// TestCompareTo_Ordering verifies numeric ordering across field positions.
func TestCompareTo_Ordering(t *testing.T) {
	older, err := Create("7.9.1")
	require.NoError(t, err)
	newer, err := Create("8.0")
	require.NoError(t, err)

	assert.Equal(t, -1, older.CompareTo(newer))
	assert.Equal(t, 1, newer.CompareTo(older))
	assert.Equal(t, 0, older.CompareTo(older))
}

// TestCompareTo_QualifierIgnored verifies that qualifiers do not affect
// ordering.
func TestCompareTo_QualifierIgnored(t *testing.T) {
	a, err := Create("9.4-SNAPSHOT")
	require.NoError(t, err)
	b, err := Create("9.4")
	require.NoError(t, err)

	assert.Equal(t, 0, a.CompareTo(b))
}

// TestIsGreaterThan verifies the strict and inclusive comparison helpers.
func TestIsGreaterThan(t *testing.T) {
	a, err := Create("8.9.0.43852")
	require.NoError(t, err)
	b, err := Create("8.9")
	require.NoError(t, err)

	assert.True(t, a.IsGreaterThan(b))
	assert.False(t, b.IsGreaterThan(a))
	assert.True(t, a.IsGreaterThanOrEquals(b))
	assert.True(t, a.IsGreaterThanOrEquals(a))
}
