package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/advier-web/parkmanager-tool-new-sub001/internal/assert/helpers"
	"github.com/advier-web/parkmanager-tool-new-sub001/internal/cms"
	"github.com/advier-web/parkmanager-tool-new-sub001/pkg/api"
)

const contentFile = "../../internal/cms/testdata/content.yaml"

func execute(t *testing.T, args ...string) (*bytes.Buffer, error) {
	t.Helper()
	cmd := newRootCmd()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(append([]string{"--content-file", contentFile}, args...))
	return out, cmd.Execute()
}

func TestContentCommand(t *testing.T) {
	out, err := execute(t, "content", "--locale", "en")
	require.NoError(t, err)

	c, err := cms.DecodeContent(out, "en")
	require.NoError(t, err)
	assert.Equal(t, "en", c.Locale)
	assert.NotEmpty(t, c.Solutions)
}

func TestContentCommandUnknownLocale(t *testing.T) {
	_, err := execute(t, "content", "--locale", "fr")
	assert.ErrorIs(t, err, cms.ErrLocaleNotFound)
}

func TestFactsheetCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pendelbus.pdf")
	_, err := execute(t, "factsheet", "sol-shuttle",
		"--locale", "nl", "--out", path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
}

func TestFactsheetCommandUnknownSolution(t *testing.T) {
	_, err := execute(t, "factsheet", "sol-missing", "--locale", "nl")
	assert.ErrorIs(t, err, ErrUnknownSolution)
}

func TestSummaryCommand(t *testing.T) {
	dir := t.TempDir()
	st := helpers.NewCompleteState("session-1")

	for name, v := range map[string]any{
		"state.json":    st,
		"response.json": api.SessionResponse{State: st},
	} {
		data, err := json.Marshal(v)
		require.NoError(t, err)
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, data, 0o600))

		out, err := execute(t, "summary", path, "--locale", "nl")
		require.NoError(t, err, name)
		assert.True(t, bytes.HasPrefix(out.Bytes(), []byte("%PDF-")), name)
	}
}

func TestSummaryCommandInvalidState(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"park":{}}`), 0o600))

	_, err := execute(t, "summary", path, "--locale", "nl")
	assert.ErrorIs(t, err, ErrInvalidState)
}
