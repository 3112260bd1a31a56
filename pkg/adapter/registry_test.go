package adapter

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnknownEngineError_Error(t *testing.T) {
	err := &UnknownEngineError{
		Type:      "fake_db",
		Available: []string{"duckdb", "sqlite"},
	}

	msg := err.Error()
	assert.NotEmpty(t, msg, "error message should not be empty")
	assert.Contains(t, msg, "fake_db", "error should mention the unknown type 'fake_db'")
	assert.Contains(t, msg, "reeldash.yaml", "error should mention the config file")
}

func TestRegister(t *testing.T) {
	Register("test_engine_internal", func(_ *slog.Logger) Adapter { return nil })

	assert.True(t, IsRegistered("test_engine_internal"), "test_engine_internal should be registered after Register()")

	factory, ok := Get("test_engine_internal")
	assert.True(t, ok, "Get(test_engine_internal) should return true after Register()")
	assert.NotNil(t, factory, "Get(test_engine_internal) should return non-nil factory")
}

func TestNewAdapter_EmptyType(t *testing.T) {
	_, err := NewAdapter(Config{Type: ""}, nil)
	require.Error(t, err, "NewAdapter with empty type should fail")
	assert.Equal(t, "engine type not specified", err.Error(), "error message")
}

func TestNewAdapter_UnknownType(t *testing.T) {
	_, err := NewAdapter(Config{Type: "no_such_engine"}, nil)
	require.Error(t, err)

	var unknown *UnknownEngineError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "no_such_engine", unknown.Type)
}
