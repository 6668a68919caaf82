package pdf

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type engineStub struct {
	data []byte
	err  error
}

func (e *engineStub) Render(ctx context.Context, html string) ([]byte, error) {
	return e.data, e.err
}

func TestExporterWithoutEngine(t *testing.T) {
	x := NewExporterWithEngine(nil)

	_, err := x.Render(context.Background(), "<html></html>")
	var genErr *GenerationError
	require.ErrorAs(t, err, &genErr)
	assert.Equal(t, "no PDF rendering engine available", genErr.Detail)
}

func TestExporterWrapsEngineFailure(t *testing.T) {
	cause := errors.New("render engine exploded")
	x := NewExporterWithEngine(&engineStub{err: cause})

	_, err := x.Render(context.Background(), "<html></html>")
	var genErr *GenerationError
	require.ErrorAs(t, err, &genErr)
	assert.Equal(t, cause.Error(), genErr.Detail)
	assert.ErrorIs(t, err, cause)
}

func TestExporterPassesThroughBytes(t *testing.T) {
	x := NewExporterWithEngine(&engineStub{data: []byte("%PDF-1.4")})

	out, err := x.Render(context.Background(), "<html></html>")
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.4"), out)
}

func tempQuotationFiles(t *testing.T) map[string]struct{} {
	t.Helper()
	matches, err := filepath.Glob(filepath.Join(os.TempDir(), "quotation-*.pdf"))
	require.NoError(t, err)
	set := make(map[string]struct{}, len(matches))
	for _, m := range matches {
		set[m] = struct{}{}
	}
	return set
}

func TestWKHTMLToPDFMissingBinary(t *testing.T) {
	before := tempQuotationFiles(t)

	engine := &WKHTMLToPDF{
		BinaryPath: filepath.Join(t.TempDir(), "no-such-binary"),
		Timeout:    5 * time.Second,
	}
	_, err := engine.Render(context.Background(), "<html><body>hi</body></html>")
	require.Error(t, err)

	// The scoped temp output must be gone on the failure path too.
	after := tempQuotationFiles(t)
	for f := range after {
		_, existed := before[f]
		assert.True(t, existed, "leaked temp file %s", f)
	}
}

func TestNewWKHTMLToPDFExplicitPathWins(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wkhtmltopdf")
	engine, err := NewWKHTMLToPDF(path, time.Second)
	require.NoError(t, err)
	assert.Equal(t, path, engine.BinaryPath)
}
