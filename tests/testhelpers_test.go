package tests

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Without a reachable Docker daemon this skips instead of failing.
func TestSetupRedis(t *testing.T) {
	client := SetupRedis(t)
	assert.NoError(t, client.Ping(context.Background()).Err())
}
