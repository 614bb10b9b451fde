package errutil_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/threatcalc/pkg/utils/errutil"
	"github.com/secmon-lab/threatcalc/pkg/utils/logging"
)

func newCtx(buf *bytes.Buffer) context.Context {
	logger := slog.New(slog.NewJSONHandler(buf, nil))
	return logging.With(context.Background(), logger)
}

func TestHandle(t *testing.T) {
	t.Run("nil error", func(t *testing.T) {
		gt.NoError(t, errutil.Handle(context.Background(), nil, "nothing"))
	})

	t.Run("logs goerr values", func(t *testing.T) {
		var buf bytes.Buffer
		err := goerr.New("boom", goerr.V("parameter", "countermeasure_active"))

		got := errutil.Handle(newCtx(&buf), err, "evaluation failed")
		gt.Error(t, got).Is(err)
		gt.String(t, buf.String()).Contains("evaluation failed")
		gt.String(t, buf.String()).Contains("countermeasure_active")
	})

	t.Run("logs plain errors", func(t *testing.T) {
		var buf bytes.Buffer
		err := errors.New("plain")

		got := errutil.Handle(newCtx(&buf), err, "failed")
		gt.Error(t, got).Is(err)
		gt.String(t, buf.String()).Contains("plain")
	})
}

func TestHandleHTTP(t *testing.T) {
	var buf bytes.Buffer
	w := httptest.NewRecorder()

	errutil.HandleHTTP(newCtx(&buf), w, goerr.New("bad input"), http.StatusBadRequest)

	gt.Value(t, w.Code).Equal(http.StatusBadRequest)
	gt.String(t, w.Body.String()).Contains("bad input")
	gt.String(t, buf.String()).Contains(`"status":400`)
}
