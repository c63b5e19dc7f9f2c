package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/f5rail/easement/jwc"
	"github.com/f5rail/easement/transition"
)

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), FileName))
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
	assert.Equal(t, "sjis", c.Encoding)
	assert.Equal(t, 100000.0, c.MaxArcRadius)
	assert.Equal(t, logrus.WarnLevel, c.Level())
}

func TestLoadEmptyFileYieldsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("  \n"), 0o644))
	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("encoding: utf8\nlog_level: debug\n"), 0o644))
	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, &Config{Encoding: "utf8", MaxArcRadius: 100000, LogLevel: "debug"}, c)
	assert.Equal(t, logrus.DebugLevel, c.Level())
}

func TestReadRejectsBadConfig(t *testing.T) {
	for _, doc := range []string{
		"encodng: utf8\n",
		"encoding: latin1\n",
		"max_arc_radius: -1\n",
		"max_arc_radius: far\n",
		"log_level: loud\n",
	} {
		_, err := Read(strings.NewReader(doc))
		assert.Error(t, err, "config %q", doc)
	}
}

func TestLoadReportsPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("encoding: [\n"), 0o644))
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
}

func TestWriterOptions(t *testing.T) {
	c := &Config{Encoding: "utf8", MaxArcRadius: 500, LogLevel: "info"}
	var buf bytes.Buffer
	w := jwc.NewWriter(&buf, c.WriterOptions()...)
	require.NoError(t, w.Plot(transition.Param{Diminish: transition.Sine, K0: 1.0 / 1000, K1: 1.0 / 1000, TCL: 1}))
	require.NoError(t, w.Close())
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\r\n"), "\r\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "h#サイン半波長逓減曲線を描画しました。", lines[0])
	assert.False(t, strings.HasPrefix(lines[1], "ci "), lines[1])
}
