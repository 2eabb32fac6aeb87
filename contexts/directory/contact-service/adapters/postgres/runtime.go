package postgresadapter

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// UUIDGenerator issues time-ordered UUID v7 contact ids.
type UUIDGenerator struct{}

func (UUIDGenerator) NewID(_ context.Context) (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("uuid v7: %w", err)
	}
	return id.String(), nil
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}
