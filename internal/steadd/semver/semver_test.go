package semver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Version
		wantOK  bool
	}{
		{"simple version", "1.2.3", Version{1, 2, 3}, true},
		{"zeros", "0.0.0", Version{0, 0, 0}, true},
		{"multi digit", "10.20.30", Version{10, 20, 30}, true},
		{"missing segment", "1.2", Version{}, false},
		{"extra segment", "1.2.3.4", Version{}, false},
		{"empty string", "", Version{}, false},
		{"non numeric", "1.2.x", Version{}, false},
		{"prerelease tag", "1.2.3-rc1", Version{}, false},
		{"v prefix", "v1.2.3", Version{}, false},
		{"signed segment", "1.+2.3", Version{}, false},
		{"negative segment", "1.-2.3", Version{}, false},
		{"empty segment", "1..3", Version{}, false},
		{"whitespace", " 1.2.3", Version{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Parse(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_RoundTrip(t *testing.T) {
	versions := []Version{
		{0, 0, 0},
		{1, 2, 3},
		{12, 0, 7},
		{100, 200, 300},
	}

	for _, v := range versions {
		got, ok := Parse(v.String())
		require.True(t, ok, "formatted version %q must parse", v.String())
		assert.Equal(t, v, got)
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want int
	}{
		{"equal", "1.2.3", "1.2.3", 0},
		{"major wins", "2.0.0", "1.9.9", 1},
		{"minor wins", "1.3.0", "1.2.9", 1},
		{"patch wins", "1.2.4", "1.2.3", 1},
		{"numeric not lexicographic", "2.0.0", "10.0.0", -1},
		{"invalid left", "abc", "1.0.0", 0},
		{"invalid right", "1.0.0", "", 0},
		{"both invalid", "x", "y", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Compare(tt.a, tt.b))
		})
	}
}

func TestCompare_Antisymmetry(t *testing.T) {
	versions := []string{"0.0.1", "1.0.0", "1.2.3", "2.0.0", "10.0.0", "1.10.0"}

	for _, a := range versions {
		for _, b := range versions {
			assert.Equal(t, -Compare(b, a), Compare(a, b), "compare(%s,%s)", a, b)
		}
		assert.Zero(t, Compare(a, a))
	}
}

func TestIsAtLeast(t *testing.T) {
	assert.True(t, IsAtLeast("1.2.3", "1.2.3"))
	assert.True(t, IsAtLeast("2.0.0", "1.9.9"))
	assert.False(t, IsAtLeast("1.0.0", "1.0.1"))
}

func TestBump(t *testing.T) {
	tests := []struct {
		name    string
		current string
		kind    BumpKind
		want    string
	}{
		{"major resets lower segments", "1.2.3", BumpMajor, "2.0.0"},
		{"minor resets patch", "1.2.3", BumpMinor, "1.3.0"},
		{"patch increments only", "1.2.3", BumpPatch, "1.2.4"},
		{"unknown kind bumps patch", "1.2.3", BumpKind("weekly"), "1.2.4"},
		{"invalid current returned unchanged", "not-a-version", BumpMajor, "not-a-version"},
		{"empty current returned unchanged", "", BumpPatch, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Bump(tt.current, tt.kind))
		})
	}
}

func TestCheckCompatibility(t *testing.T) {
	tests := []struct {
		name       string
		required   string
		current    string
		compatible bool
	}{
		{"no requirement", "", "1.0.0", true},
		{"unparseable requirement is fail-open", "latest", "1.0.0", true},
		{"platform meets requirement", "1.0.0", "1.0.0", true},
		{"platform exceeds requirement", "1.0.0", "2.1.0", true},
		{"platform too old", "2.0.0", "1.0.0", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CheckCompatibility(tt.required, tt.current)
			assert.Equal(t, tt.compatible, result.Compatible)
			if tt.compatible {
				assert.Empty(t, result.Reason)
			} else {
				assert.Contains(t, result.Reason, tt.required)
				assert.Contains(t, result.Reason, tt.current)
			}
		})
	}
}
