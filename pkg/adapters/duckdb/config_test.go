package duckdb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseParams(t *testing.T) {
	tests := []struct {
		name  string
		input map[string]any
		want  *Params
	}{
		{
			name:  "nil params returns empty struct",
			input: nil,
			want:  &Params{},
		},
		{
			name:  "empty map returns empty struct",
			input: map[string]any{},
			want:  &Params{},
		},
		{
			name: "extensions only",
			input: map[string]any{
				"extensions": []any{"icu", "json"},
			},
			want: &Params{
				Extensions: []string{"icu", "json"},
			},
		},
		{
			name: "settings only",
			input: map[string]any{
				"settings": map[string]any{
					"memory_limit": "512MB",
					"threads":      "2",
				},
			},
			want: &Params{
				Settings: map[string]string{
					"memory_limit": "512MB",
					"threads":      "2",
				},
			},
		},
		{
			name: "full config",
			input: map[string]any{
				"extensions": []any{"icu"},
				"settings": map[string]any{
					"memory_limit": "512MB",
				},
			},
			want: &Params{
				Extensions: []string{"icu"},
				Settings:   map[string]string{"memory_limit": "512MB"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseParams(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want.Extensions, got.Extensions)
			assert.Equal(t, tt.want.Settings, got.Settings)
		})
	}
}

func TestParseParamsUnknownKeysIgnored(t *testing.T) {
	got, err := parseParams(map[string]any{"unexpected": true})
	require.NoError(t, err)
	assert.Empty(t, got.Extensions)
	assert.Empty(t, got.Settings)
}
