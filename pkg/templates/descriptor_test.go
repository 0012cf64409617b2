package templates

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/linecook/pkg/args"
	"github.com/arthur-debert/linecook/pkg/errors"
	"github.com/arthur-debert/linecook/pkg/testutil"
)

func resolve(t *testing.T, files map[string]string, name string) *Descriptor {
	t.Helper()
	d, err := NewRegistry([]string{"/t"}, WithFS(testutil.MemoryTree(t, files))).Resolve(name)
	require.NoError(t, err)
	return d
}

func TestDescriptorWithoutSidecar(t *testing.T) {
	d := resolve(t, map[string]string{"/t/plain.tmpl": "static"}, "plain")

	doc, err := d.Metadata()
	require.NoError(t, err)
	assert.False(t, doc.Exists())

	params, err := d.Params()
	require.NoError(t, err)
	assert.Empty(t, params)
}

func TestDescriptorParams(t *testing.T) {
	d := resolve(t, map[string]string{
		"/t/note.tmpl": "{{ .to }} {{ .subject }} {{ .sign }}",
		"/t/note.yml":  "description: A short note\nargs:\n  to:\n  subject: hi\n  sign: me\n",
	}, "note")

	params, err := d.Params()
	require.NoError(t, err)
	assert.Equal(t, []args.Param{
		{Name: "to"},
		{Name: "subject", Default: "hi", HasDefault: true},
		{Name: "sign", Default: "me", HasDefault: true},
	}, params)

	doc, err := d.Metadata()
	require.NoError(t, err)
	assert.Equal(t, "A short note", doc.Description())

	// Callers get copies.
	params[0].Name = "changed"
	again, err := d.Params()
	require.NoError(t, err)
	assert.Equal(t, "to", again[0].Name)
}

func TestDescriptorInvalidMetadata(t *testing.T) {
	t.Run("bad args shape", func(t *testing.T) {
		d := resolve(t, map[string]string{
			"/t/bad.tmpl": "x",
			"/t/bad.yml":  "args: 42",
		}, "bad")

		_, err := d.Params()
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidMetadata))
		assert.Contains(t, err.Error(), "bad")
		assert.Contains(t, err.Error(), "42")
	})

	t.Run("malformed sidecar", func(t *testing.T) {
		d := resolve(t, map[string]string{
			"/t/bad.tmpl": "x",
			"/t/bad.yml":  "args: [oops",
		}, "bad")

		_, err := d.Metadata()
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidMetadata))
		assert.Equal(t, "bad", errors.GetErrorDetails(err)["template"])
	})
}
