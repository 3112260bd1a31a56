package sqlite

import (
	"fmt"

	"github.com/go-viper/mapstructure/v2"
)

// Params holds SQLite-specific configuration, parsed from
// adapter.Config.Params using mapstructure.
type Params struct {
	// Pragmas applied after connect (e.g. journal_mode, cache_size)
	Pragmas map[string]string `mapstructure:"pragmas"`
}

// parseParams decodes the generic params map into Params. Nil input
// yields an empty struct.
func parseParams(input map[string]any) (*Params, error) {
	params := &Params{}
	if len(input) == 0 {
		return params, nil
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           params,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create params decoder: %w", err)
	}
	if err := decoder.Decode(input); err != nil {
		return nil, fmt.Errorf("failed to decode params: %w", err)
	}
	return params, nil
}
