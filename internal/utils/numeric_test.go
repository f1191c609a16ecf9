package utils

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexFloat_UnmarshalJSON(t *testing.T) {
	var payload struct {
		Price FlexFloat `json:"price"`
	}

	tests := []struct {
		name     string
		body     string
		expected float64
		wantErr  bool
	}{
		{"json number", `{"price": 350000}`, 350000, false},
		{"numeric string", `{"price": "350000.50"}`, 350000.50, false},
		{"scientific notation", `{"price": 3.5e5}`, 350000, false},
		{"null", `{"price": null}`, 0, false},
		{"empty string", `{"price": ""}`, 0, false},
		{"garbage", `{"price": "abc"}`, 0, true},
		{"NaN string", `{"price": "NaN"}`, 0, true},
		{"infinity string", `{"price": "+Inf"}`, 0, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			payload.Price = 0
			err := json.Unmarshal([]byte(tc.body), &payload)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, float64(payload.Price))
		})
	}
}

func TestFlexFloat_Float(t *testing.T) {
	var nilPtr *FlexFloat
	assert.Equal(t, 0.20, nilPtr.Float(0.20))

	v := FlexFloat(0.25)
	assert.Equal(t, 0.25, (&v).Float(0.20))
}
