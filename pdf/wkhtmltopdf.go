package pdf

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// WKHTMLToPDF renders HTML through the wkhtmltopdf binary. HTML is fed on
// stdin; the PDF is written to a request-scoped temp file that is removed
// on every path.
type WKHTMLToPDF struct {
	BinaryPath string
	Timeout    time.Duration
}

// NewWKHTMLToPDF resolves the rendering binary: an explicit path wins,
// otherwise the system PATH is searched. An error means no binary exists
// and the engine is unavailable.
func NewWKHTMLToPDF(binaryPath string, timeout time.Duration) (*WKHTMLToPDF, error) {
	if binaryPath == "" {
		resolved, err := exec.LookPath("wkhtmltopdf")
		if err != nil {
			return nil, fmt.Errorf("wkhtmltopdf not found on PATH: %w", err)
		}
		binaryPath = resolved
	}
	return &WKHTMLToPDF{BinaryPath: binaryPath, Timeout: timeout}, nil
}

func (e *WKHTMLToPDF) Render(ctx context.Context, html string) ([]byte, error) {
	if e.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.Timeout)
		defer cancel()
	}

	outPath := filepath.Join(os.TempDir(), fmt.Sprintf("quotation-%s.pdf", uuid.New().String()))
	defer os.Remove(outPath)

	cmd := exec.CommandContext(ctx, e.BinaryPath,
		"--enable-local-file-access",
		"--encoding", "UTF-8",
		"--quiet",
		"-", outPath,
	)
	cmd.Stdin = strings.NewReader(html)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return nil, fmt.Errorf("wkhtmltopdf: %s: %w", msg, err)
		}
		return nil, fmt.Errorf("wkhtmltopdf: %w", err)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		return nil, fmt.Errorf("read rendered pdf: %w", err)
	}
	return data, nil
}
