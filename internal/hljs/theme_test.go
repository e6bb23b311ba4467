package hljs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTheme(t *testing.T) {
	t.Parallel()

	tests := []struct {
		give string
		want Theme
	}{
		{give: "default", want: ThemeDefault},
		{give: "zenburn", want: ThemeZenburn},
		{give: "atelier-plateau-light", want: ThemeAtelierPlateauLight},
		{give: "a11y-dark", want: ThemeA11yDark},
		{give: "VS2015", want: ThemeVS2015},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.give, func(t *testing.T) {
			t.Parallel()

			got, err := ParseTheme(tt.give)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("unknown", func(t *testing.T) {
		t.Parallel()

		_, err := ParseTheme("solarized")
		assert.ErrorIs(t, err, ErrUnknownTheme)
		assert.ErrorContains(t, err, `"solarized"`)
	})
}

func TestTheme_catalog(t *testing.T) {
	t.Parallel()

	themes := Themes()
	assert.GreaterOrEqual(t, len(themes), 95)

	for i, theme := range themes {
		name := theme.String()
		if i > 0 {
			assert.Less(t, themes[i-1].String(), name, "themes must be sorted")
		}

		got, err := ParseTheme(name)
		if assert.NoError(t, err, "%v", name) {
			assert.Equal(t, theme, got)
		}

		p, ok := theme.AssetPath()
		assert.True(t, ok)
		assert.Equal(t, "css/"+name+".min.css", p)
	}
}

func TestTheme_default(t *testing.T) {
	t.Parallel()

	var zero Theme
	assert.Equal(t, DefaultTheme, zero)
	assert.Equal(t, "default", DefaultTheme.String())
}

func TestTheme_outOfRange(t *testing.T) {
	t.Parallel()

	theme := Theme(len(_themes) + 3)
	_, ok := theme.AssetPath()
	assert.False(t, ok)
	assert.Contains(t, theme.String(), "Theme(")

	_, err := theme.MarshalText()
	assert.ErrorIs(t, err, ErrUnknownTheme)
}

func TestTheme_text(t *testing.T) {
	t.Parallel()

	var got Theme
	require.NoError(t, got.UnmarshalText([]byte("monokai-sublime")))
	assert.Equal(t, ThemeMonokaiSublime, got)

	b, err := got.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "monokai-sublime", string(b))
}
