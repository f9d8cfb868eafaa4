package log_test

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/advier-web/parkmanager-tool-new-sub001/pkg/api"
	"github.com/advier-web/parkmanager-tool-new-sub001/pkg/log"
)

type errStub string

func TestSessionID(t *testing.T) {
	attr := log.SessionID(api.SessionID("sess-123"))
	assertAttrEqual(t, attr, "session_id", "sess-123")
}

func TestSolutionID(t *testing.T) {
	attr := log.SolutionID(api.SolutionID("deelfietsen"))
	assertAttrEqual(t, attr, "solution_id", "deelfietsen")
}

func TestLocale(t *testing.T) {
	assertAttrEqual(t, log.Locale("nl"), "locale", "nl")
}

func TestContentType(t *testing.T) {
	assertAttrEqual(t, log.ContentType("reason"), "content_type", "reason")
}

func TestDocumentKey(t *testing.T) {
	attr := log.DocumentKey("sessions/x/summary.pdf")
	assertAttrEqual(t, attr, "document_key", "sessions/x/summary.pdf")
}

func TestError(t *testing.T) {
	attr := log.Error(nil)
	assertAttrEqual(t, attr, "error", "")

	attr = log.Error(errStub("boom"))
	assertAttrEqual(t, attr, "error", "boom")
}

func TestErrorString(t *testing.T) {
	attr := log.ErrorString("badness")
	assertAttrEqual(t, attr, "error", "badness")
}

func (e errStub) Error() string { return string(e) }

func assertAttrEqual(t *testing.T, attr slog.Attr, key, value string) {
	t.Helper()
	assert.Equal(t, key, attr.Key)
	assert.Equal(t, value, attr.Value.String())
}
