package core

import (
	"crypto/sha256"
	"encoding/hex"
)

// Hash represents a cryptographic hash
type Hash string

// NewHash creates a new hash from data
func NewHash(data []byte) Hash {
	sum := sha256.Sum256(data)
	return Hash(hex.EncodeToString(sum[:]))
}

// String returns the string representation
func (h Hash) String() string {
	return string(h)
}

// IsEmpty checks if the hash is empty
func (h Hash) IsEmpty() bool {
	return h == ""
}

// Short returns the first 12 hex digits for display
func (h Hash) Short() string {
	if len(h) <= 12 {
		return string(h)
	}
	return string(h[:12])
}

// RulesetHash fingerprints a scoring ruleset
type RulesetHash Hash

func NewRulesetHash(data []byte) RulesetHash { return RulesetHash(NewHash(data)) }

func (h RulesetHash) String() string { return Hash(h).String() }
func (h RulesetHash) IsEmpty() bool  { return Hash(h).IsEmpty() }
func (h RulesetHash) Short() string  { return Hash(h).Short() }
