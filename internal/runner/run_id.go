package runner

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

const runIDSuffixLen = 12

// NewRunID returns a sortable run id: a UTC timestamp plus a random suffix.
func NewRunID() (string, error) {
	return NewRunIDWithUUID(time.Now().UTC(), uuid.NewRandom)
}

// NewRunIDWithUUID builds a run id from now and the UUID source.
func NewRunIDWithUUID(now time.Time, source func() (uuid.UUID, error)) (string, error) {
	if source == nil {
		return "", fmt.Errorf("uuid source is nil")
	}
	id, err := source()
	if err != nil {
		return "", fmt.Errorf("generate uuid: %w", err)
	}
	suffix := strings.ReplaceAll(id.String(), "-", "")[:runIDSuffixLen]
	return FormatRunID(now, suffix), nil
}

func FormatRunID(now time.Time, suffix string) string {
	return now.UTC().Format("20060102T150405Z") + "-" + suffix
}
