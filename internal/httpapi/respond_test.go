package httpapi

import (
	"bytes"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/orgball2608/socialhub/pkg/logger"
)

func TestWriteJSONLogsEncodeFailure(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{logger: logger.New(logger.Opts{Env: "production", Writer: &buf})}
	rec := httptest.NewRecorder()

	h.writeJSON(rec, http.StatusOK, math.Inf(1))

	assert.Contains(t, buf.String(), "Failed to write response")
	assert.Contains(t, buf.String(), "unsupported value")
}
