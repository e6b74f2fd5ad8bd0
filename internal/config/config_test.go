package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	v, err := Load(filepath.Join(t.TempDir(), "absent"))
	require.NoError(t, err)

	s, err := Decode(v)
	require.NoError(t, err)
	assert.Equal(t, Defaults(), s)
}

func TestLoadReadsFile(t *testing.T) {
	dir := t.TempDir()
	content := "render:\n  inline: \"true\"\n  indent: 4\nlog:\n  level: debug\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(content), 0o644))

	v, err := Load(dir)
	require.NoError(t, err)
	s, err := Decode(v)
	require.NoError(t, err)

	assert.Equal(t, InlineTrue, s.Render.Inline)
	assert.Equal(t, 4, s.Render.Indent)
	level, err := s.Log.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("QUICK_RENDER_INDENT", "6")
	v, err := Load(t.TempDir())
	require.NoError(t, err)
	s, err := Decode(v)
	require.NoError(t, err)
	assert.Equal(t, 6, s.Render.Indent)
}

func TestLoadMalformedFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte("render: [unclosed"), 0o644))

	_, err := Load(dir)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(s *Settings)
		wantErr error
	}{
		{"defaults", func(s *Settings) {}, nil},
		{"inline false", func(s *Settings) { s.Render.Inline = InlineFalse }, nil},
		{"bad inline", func(s *Settings) { s.Render.Inline = "sometimes" }, ErrInvalidInline},
		{"negative indent", func(s *Settings) { s.Render.Indent = -1 }, ErrInvalidIndent},
		{"bad level", func(s *Settings) { s.Log.Level = "loud" }, ErrInvalidLogLevel},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Defaults()
			tt.mutate(&s)
			err := s.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestInlineFor(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "out")
	require.NoError(t, err)
	defer f.Close()

	assert.True(t, Render{Inline: InlineTrue}.InlineFor(f))
	assert.False(t, Render{Inline: InlineFalse}.InlineFor(f))
	assert.True(t, Render{Inline: InlineAuto}.InlineFor(f), "regular file is not a terminal")
}

func TestWriteDefault(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "cfg")

	created, err := WriteDefault(dir)
	require.NoError(t, err)
	assert.True(t, created)

	data, err := os.ReadFile(filepath.Join(dir, FileName))
	require.NoError(t, err)
	var s Settings
	require.NoError(t, yaml.Unmarshal(data, &s))
	assert.Equal(t, Defaults(), s)

	created, err = WriteDefault(dir)
	require.NoError(t, err)
	assert.False(t, created, "existing file is kept")
}
