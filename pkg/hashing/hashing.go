/*
Package hashing implements the match predicate for the hash search: it
computes the SHA-256 digest of a candidate integer's decimal representation,
renders it as lowercase hexadecimal, and checks whether the rendered text
ends with a required number of '0' characters.

The trailing-zero check is character-level on the hex string, not a check on
the digest's low bits. For odd zero counts the two interpretations disagree,
so the character form is part of the contract.

Basic usage:

	digest, ok := hashing.Evaluate(4163, 3)
	if ok {
	    fmt.Printf("%d, %q\n", 4163, digest)
	}

All functions are pure and safe for concurrent use.
*/
package hashing

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"strings"
)

// DigestLength is the length in characters of a rendered digest.
const DigestLength = sha256.Size * 2

// ComputeDigest returns the lowercase hexadecimal SHA-256 digest of the
// candidate's decimal string representation.
func ComputeDigest(candidate uint64) string {
	sum := sha256.Sum256([]byte(strconv.FormatUint(candidate, 10)))
	return hex.EncodeToString(sum[:])
}

// HasTrailingZeros reports whether digest ends with at least zeros '0'
// characters. zeros = 0 is satisfied by every digest; a zeros value longer
// than the digest itself can never be satisfied.
func HasTrailingZeros(digest string, zeros int) bool {
	if zeros <= 0 {
		return true
	}
	if zeros > len(digest) {
		return false
	}
	return strings.HasSuffix(digest, strings.Repeat("0", zeros))
}

// Evaluate computes the candidate's digest and returns it together with
// whether it satisfies the trailing-zero criterion for zeros.
func Evaluate(candidate uint64, zeros int) (string, bool) {
	digest := ComputeDigest(candidate)
	return digest, HasTrailingZeros(digest, zeros)
}
