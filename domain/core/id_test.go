package core

import (
	"testing"
)

// TestNewIDUniqueness tests that NewID generates unique identifiers
func TestNewIDUniqueness(t *testing.T) {
	const numIDs = 10000

	ids := make(map[ID]bool, numIDs)
	for i := 0; i < numIDs; i++ {
		id := NewID()
		if id.IsEmpty() {
			t.Errorf("Generated empty ID at iteration %d", i)
		}
		if ids[id] {
			t.Errorf("Generated duplicate ID: %s", id)
		}
		ids[id] = true
	}

	if len(ids) != numIDs {
		t.Errorf("Expected %d unique IDs, got %d", numIDs, len(ids))
	}
}

// TestIDIsEmpty tests ID emptiness check
func TestIDIsEmpty(t *testing.T) {
	if !ID("").IsEmpty() {
		t.Error("Expected empty ID to be empty")
	}
	if ID("not-empty").IsEmpty() {
		t.Error("Expected non-empty ID to not be empty")
	}
}

// TestParseRequestID tests request ID parsing
func TestParseRequestID(t *testing.T) {
	tests := []struct {
		input    string
		expected RequestID
		hasError bool
	}{
		{"0190f4a2-7c1e-7b3a-9d2e-5f6a7b8c9d0e", RequestID("0190f4a2-7c1e-7b3a-9d2e-5f6a7b8c9d0e"), false},
		{"  0190f4a2-7c1e-7b3a-9d2e-5f6a7b8c9d0e ", RequestID("0190f4a2-7c1e-7b3a-9d2e-5f6a7b8c9d0e"), false},
		{"", "", true},
		{"   ", "", true},
		{"<script>", "", true},
	}

	for _, test := range tests {
		result, err := ParseRequestID(test.input)
		if test.hasError && err == nil {
			t.Errorf("Expected error for input '%s', but got none", test.input)
		}
		if !test.hasError && err != nil {
			t.Errorf("Unexpected error for input '%s': %v", test.input, err)
		}
		if result != test.expected {
			t.Errorf("Expected %s, got %s", test.expected, result)
		}
	}
}

// TestHashShort tests hash abbreviation
func TestHashShort(t *testing.T) {
	h := NewHash([]byte("ruleset"))
	if len(h.String()) != 64 {
		t.Fatalf("Expected 64 hex chars, got %d", len(h.String()))
	}
	if h.Short() != h.String()[:12] {
		t.Errorf("Expected short hash prefix, got %s", h.Short())
	}
	if Hash("abc").Short() != "abc" {
		t.Errorf("Expected short hash to keep short input")
	}
}
