package hljs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVariant(t *testing.T) {
	t.Parallel()

	tests := []struct {
		give    string
		want    Variant
		wantErr bool
	}{
		{give: "core", want: Core},
		{give: "Common", want: Common},
		{give: " COMMON ", want: Common},
		{give: "full", wantErr: true},
		{give: "", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.give, func(t *testing.T) {
			t.Parallel()

			got, err := ParseVariant(tt.give)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownVariant)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestVariant_text(t *testing.T) {
	t.Parallel()

	var v Variant
	require.NoError(t, v.UnmarshalText([]byte("common")))
	assert.Equal(t, Common, v)

	b, err := v.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "common", string(b))

	_, err = Variant(7).MarshalText()
	assert.ErrorIs(t, err, ErrUnknownVariant)
	assert.Equal(t, "Variant(7)", Variant(7).String())
}
