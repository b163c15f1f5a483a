package runner

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

// TestFormatRunID verifies run ID formatting.
func TestFormatRunID(t *testing.T) {
	timestamp := time.Date(2016, 1, 2, 3, 4, 5, 0, time.UTC)
	got := FormatRunID(timestamp, "deadbeef")
	if got != "20160102T030405Z-deadbeef" {
		t.Fatalf("unexpected run id: %q", got)
	}
}

// TestNewRunIDWithUUID verifies deterministic run ID generation.
func TestNewRunIDWithUUID(t *testing.T) {
	timestamp := time.Date(2016, 6, 7, 8, 9, 10, 0, time.UTC)
	fixed := uuid.MustParse("00112233-4455-6677-8899-aabbccddeeff")
	got, err := NewRunIDWithUUID(timestamp, func() (uuid.UUID, error) { return fixed, nil })
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "20160607T080910Z-001122334455" {
		t.Fatalf("unexpected run id: %q", got)
	}
}

// TestNewRunIDWithUUIDError verifies source errors are wrapped.
func TestNewRunIDWithUUIDError(t *testing.T) {
	boom := errors.New("entropy")
	_, err := NewRunIDWithUUID(time.Now(), func() (uuid.UUID, error) { return uuid.Nil, boom })
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped error, got %v", err)
	}
}
