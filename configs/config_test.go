package config

import (
	"testing"

	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUniqueInstance(t *testing.T) {
	id := CreateUniqueInstance("market")

	parsed, err := uuid.FromString(id)
	require.NoError(t, err)
	assert.Equal(t, uuid.V4, parsed.Version())

	// the generated id is retained for the rest of the process
	assert.Equal(t, id, GetInstanceId())

	// a second call replaces it with a fresh one
	next := CreateUniqueInstance("market")
	assert.NotEqual(t, id, next)
	assert.Equal(t, next, GetInstanceId())
}
