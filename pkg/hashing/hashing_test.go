package hashing

import (
	"crypto/sha256"
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeDigest(t *testing.T) {
	t.Run("digest has fixed length", func(t *testing.T) {
		assert.Len(t, ComputeDigest(1), DigestLength)
		assert.Len(t, ComputeDigest(12345), DigestLength)
	})

	t.Run("digest is deterministic", func(t *testing.T) {
		for i := uint64(1); i < 100; i++ {
			assert.Equal(t, ComputeDigest(i), ComputeDigest(i))
		}
	})

	t.Run("digest is lowercase hex", func(t *testing.T) {
		digest := ComputeDigest(42)
		assert.Equal(t, strings.ToLower(digest), digest)
		for _, c := range digest {
			assert.Contains(t, "0123456789abcdef", string(c))
		}
	})

	t.Run("digest hashes the decimal string", func(t *testing.T) {
		sum := sha256.Sum256([]byte("4163"))
		assert.Equal(t, fmt.Sprintf("%x", sum), ComputeDigest(4163))
	})
}

func TestHasTrailingZeros(t *testing.T) {
	tests := []struct {
		name   string
		digest string
		zeros  int
		want   bool
	}{
		{
			name:   "exact match",
			digest: "abc000",
			zeros:  3,
			want:   true,
		},
		{
			name:   "more zeros than required",
			digest: "ab0000",
			zeros:  3,
			want:   true,
		},
		{
			name:   "not enough zeros",
			digest: "abc001",
			zeros:  3,
			want:   false,
		},
		{
			name:   "zero requirement matches everything",
			digest: "abcdef",
			zeros:  0,
			want:   true,
		},
		{
			name:   "zero requirement matches empty string",
			digest: "",
			zeros:  0,
			want:   true,
		},
		{
			name:   "requirement longer than digest",
			digest: "000",
			zeros:  4,
			want:   false,
		},
		{
			name:   "odd zero count is character level",
			digest: "abcde0",
			zeros:  1,
			want:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HasTrailingZeros(tt.digest, tt.zeros))
		})
	}
}

// TestEvaluateProperty cross-checks Evaluate against an independently
// computed digest and suffix check over random candidates and zero counts.
func TestEvaluateProperty(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 500; i++ {
		candidate := uint64(rng.Intn(1_000_000) + 1)
		zeros := rng.Intn(9)

		digest, ok := Evaluate(candidate, zeros)

		sum := sha256.Sum256([]byte(fmt.Sprintf("%d", candidate)))
		expected := fmt.Sprintf("%x", sum)
		require.Equal(t, expected, digest)

		wantMatch := strings.HasSuffix(expected, strings.Repeat("0", zeros))
		assert.Equal(t, wantMatch, ok,
			"candidate %d with %d zeros: digest %s", candidate, zeros, digest)
	}
}

func TestEvaluateKnownMatch(t *testing.T) {
	digest, ok := Evaluate(4163, 3)
	require.True(t, ok)
	assert.True(t, strings.HasSuffix(digest, "000"))
}
