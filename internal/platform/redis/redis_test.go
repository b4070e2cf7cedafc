package redis

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen(t *testing.T) {
	srv := miniredis.RunT(t)
	ctx := context.Background()

	client, err := Open(ctx, srv.Addr(), "", 0)
	require.NoError(t, err)
	defer client.Close()

	assert.NoError(t, client.HealthCheck(ctx))
}

func TestOpenFailsWithoutServer(t *testing.T) {
	ctx := context.Background()

	_, err := Open(ctx, "", "", 0)
	assert.Error(t, err)

	srv := miniredis.RunT(t)
	addr := srv.Addr()
	srv.Close()

	_, err = Open(ctx, addr, "", 0)
	assert.Error(t, err)
}
