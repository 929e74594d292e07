package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMeasure(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		in      string
		want    Measure
		wantErr bool
	}{
		{name: "integer", in: "40", want: Present(40)},
		{name: "decimal", in: "12.5", want: Present(12.5)},
		{name: "negative", in: "-3.2", want: Present(-3.2)},
		{name: "padded", in: "  7.1 ", want: Present(7.1)},
		{name: "empty", in: "", want: Missing},
		{name: "nan", in: "NaN", want: Missing},
		{name: "na", in: "N/A", want: Missing},
		{name: "garbage", in: "twelve", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ParseMeasure(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.False(t, got.Valid)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMeasureString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "12.5", Present(12.5).String())
	assert.Equal(t, "40", Present(40).String())
	assert.Equal(t, "", Missing.String())
}

func TestMeasureJSON(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal([]Measure{Present(1.5), Missing})
	require.NoError(t, err)
	assert.JSONEq(t, `[1.5, null]`, string(data))

	var back []Measure
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, []Measure{Present(1.5), Missing}, back)
}

func TestMeasureAny(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 2.25, Present(2.25).Any())
	assert.Nil(t, Missing.Any())
}
