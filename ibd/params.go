// Package ibd - raw parameter decoding for loosely typed callers.
//
// UI layers collect design parameters from forms and hand them over as
// map[string]any. DecodeParams turns such a map into validated Params so
// every caller funnels through the same checks as Construct.
package ibd

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// DecodeParams decodes a raw parameter map into Params and validates it.
//
// Decoding is weakly typed: numeric strings ("24") and float form values
// (24.0) are accepted for integer fields. Unknown keys are ignored; missing
// keys keep their zero values and fail Validate where required.
//
// Keys match Params field names, case-insensitively: "treatments",
// "blocksize", "replicates", "locations", "seed", "startplot",
// "labelprefix".
//
// Returns ErrBadRawParams (wrapped with the decoder's reason) or any
// Params.Validate sentinel.
// Complexity: O(len(raw)).
func DecodeParams(raw map[string]any) (Params, error) {
	var p Params

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &p,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return Params{}, fmt.Errorf("%w: %v", ErrBadRawParams, err)
	}
	if err = dec.Decode(raw); err != nil {
		return Params{}, fmt.Errorf("%w: %v", ErrBadRawParams, err)
	}

	if err = p.Validate(); err != nil {
		return Params{}, err
	}

	return p, nil
}
