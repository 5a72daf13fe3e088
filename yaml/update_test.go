package yaml_test

import (
	"strings"
	"testing"

	rosh "github.com/Jasper-van-Tilborg/roshproject-sub001"
	"github.com/Jasper-van-Tilborg/roshproject-sub001/yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeUpdate(t *testing.T) {
	t.Parallel()

	t.Run("decodes properties, styles and content", func(t *testing.T) {
		t.Parallel()

		in := `
properties:
  title: Winter Cup
  maxTeams: 32
  navLinks:
    - {text: Home, href: "#home"}
styles:
  backgroundColor: "#000"
  opacity: 0.5
  color:
content: "<h1>Hi</h1>"
`

		upd, err := yaml.DecodeUpdate(strings.NewReader(in))

		require.NoError(t, err)
		assert.Equal(t, map[string]any{
			"title":    "Winter Cup",
			"maxTeams": 32,
			"navLinks": []any{map[string]any{"text": "Home", "href": "#home"}},
		}, upd.Properties)
		assert.Equal(t, map[string]string{"backgroundColor": "#000", "opacity": "0.5", "color": ""}, upd.Styles)
		require.NotNil(t, upd.Content)
		assert.Equal(t, "<h1>Hi</h1>", *upd.Content)
	})

	t.Run("string-keys numbered boxes", func(t *testing.T) {
		t.Parallel()

		in := `
properties:
  tournamentBoxes:
    1: {title: Solo, paragraph: 1v1}
    2: {title: Duo, paragraph: 2v2}
`

		upd, err := yaml.DecodeUpdate(strings.NewReader(in))

		require.NoError(t, err)
		assert.Equal(t, map[string]any{
			"1": map[string]any{"title": "Solo", "paragraph": "1v1"},
			"2": map[string]any{"title": "Duo", "paragraph": "2v2"},
		}, upd.Properties["tournamentBoxes"])
	})

	t.Run("accepts JSON", func(t *testing.T) {
		t.Parallel()

		upd, err := yaml.DecodeUpdate(strings.NewReader(`{"properties": {"title": "X"}}`))

		require.NoError(t, err)
		assert.Equal(t, map[string]any{"title": "X"}, upd.Properties)
		assert.Nil(t, upd.Styles)
		assert.Nil(t, upd.Content)
	})

	t.Run("rejects unknown top-level keys", func(t *testing.T) {
		t.Parallel()

		_, err := yaml.DecodeUpdate(strings.NewReader("propertys:\n  title: X\n"))

		require.Error(t, err)
		assert.Equal(t, rosh.EINVALID, rosh.ErrorCode(err))
	})

	t.Run("rejects empty input", func(t *testing.T) {
		t.Parallel()

		_, err := yaml.DecodeUpdate(strings.NewReader(""))

		require.Error(t, err)
		assert.Equal(t, rosh.EINVALID, rosh.ErrorCode(err))
	})
}
