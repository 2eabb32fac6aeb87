package view

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotEmptyConditional(t *testing.T) {
	tmpl, err := New("list").Parse(`{{if notempty .Items}}{{range .Items}}<li>{{.}}</li>{{end}}{{else}}none{{end}}`)
	require.NoError(t, err)

	cases := []struct {
		name  string
		items any
		want  string
	}{
		{"nil", nil, "none"},
		{"empty slice", []string{}, "none"},
		{"items", []string{"a", "<b>"}, "<li>a</li><li>&lt;b&gt;</li>"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var out strings.Builder
			require.NoError(t, tmpl.Execute(&out, map[string]any{"Items": tc.items}))
			assert.Equal(t, tc.want, out.String())
		})
	}
}

func TestEmptyHelper(t *testing.T) {
	tmpl, err := New("flag").Parse(`{{if empty .Phone}}no phone{{else}}{{.Phone}}{{end}}`)
	require.NoError(t, err)

	var out strings.Builder
	require.NoError(t, tmpl.Execute(&out, map[string]any{"Phone": ""}))
	assert.Equal(t, "no phone", out.String())
}

func TestNotEmpty(t *testing.T) {
	assert.False(t, NotEmpty(""))
	assert.False(t, NotEmpty(0))
	assert.True(t, NotEmpty("x"))
	assert.True(t, NotEmpty(struct{}{}))
}
