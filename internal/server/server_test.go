package server

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/tastetrail/backend/config"
	"github.com/tastetrail/backend/internal/testhelpers"
)

func TestNewServer(t *testing.T) {
	db := testhelpers.SetupTestDB(t)

	cfg := &config.Config{
		Environment:    "test",
		ServerHost:     "localhost",
		ServerPort:     "8080",
		JWTSecret:      testhelpers.TestJWTSecret,
		AllowedOrigins: []string{"http://localhost:5173"},
	}

	srv := New(cfg, db, nil, nil, zap.NewNop())
	require.NotNil(t, srv)
	assert.NotNil(t, srv.engine)
	assert.Equal(t, "localhost:8080", srv.http.Addr)
}
