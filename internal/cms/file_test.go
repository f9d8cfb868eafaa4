package cms_test

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/advier-web/parkmanager-tool-new-sub001/internal/assert/helpers"
	"github.com/advier-web/parkmanager-tool-new-sub001/internal/cms"
	"github.com/advier-web/parkmanager-tool-new-sub001/pkg/api"
)

func TestFileSource(t *testing.T) {
	src := cms.NewFileSource(filepath.Join("testdata", "content.yaml"))

	nl, err := src.Content(context.Background(), "nl")
	require.NoError(t, err)
	assert.Equal(t, "nl", nl.Locale)
	assert.False(t, nl.FetchedAt.IsZero())
	assert.Len(t, nl.Categories, 2)
	assert.Len(t, nl.Reasons, 3)
	assert.Len(t, nl.Solutions, 2)
	assert.Len(t, nl.Variants, 3)
	assert.Len(t, nl.GovernanceModels, 2)

	sol, ok := nl.Solution("sol-shuttle")
	require.True(t, ok)
	assert.Equal(t,
		[]api.ReasonID{"reason-parking", "reason-transit"}, sol.Reasons,
	)
	assert.Contains(t, sol.Description, "**elk kwartier**")
	require.NotNil(t, sol.Order)
	assert.Equal(t, 1, *sol.Order)

	en, err := src.Content(context.Background(), "en")
	require.NoError(t, err)
	assert.Equal(t, "Shuttle bus", en.Solutions[0].Title)
}

func TestFileSourceErrors(t *testing.T) {
	src := cms.NewFileSource(filepath.Join("testdata", "content.yaml"))

	_, err := src.Content(context.Background(), "de")
	assert.ErrorIs(t, err, cms.ErrLocaleNotFound)

	_, err = src.Content(context.Background(), "")
	assert.ErrorIs(t, err, cms.ErrLocaleRequired)

	missing := cms.NewFileSource(filepath.Join("testdata", "missing.yaml"))
	_, err = missing.Content(context.Background(), "nl")
	assert.Error(t, err)
}

func TestEncodeDecodeContent(t *testing.T) {
	c := helpers.NewTestContent()

	var buf bytes.Buffer
	require.NoError(t, cms.EncodeContent(&buf, c))

	res, err := cms.DecodeContent(&buf, "nl")
	require.NoError(t, err)
	assert.True(t, res.FetchedAt.IsZero())
	res.FetchedAt = c.FetchedAt
	assert.Equal(t, c, res)
}

func TestDecodeContentInvalid(t *testing.T) {
	_, err := cms.DecodeContent(
		bytes.NewBufferString("locale: [unterminated"), "nl",
	)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, cms.ErrLocaleNotFound)
}
