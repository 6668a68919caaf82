package controllers

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhiman/studiobackend/pdf"
	"github.com/abhiman/studiobackend/pricing"
	"github.com/abhiman/studiobackend/quotation"
)

type exporterStub struct {
	data  []byte
	err   error
	calls int
}

func (e *exporterStub) Render(ctx context.Context, html string) ([]byte, error) {
	e.calls++
	return e.data, e.err
}

const validQuotation = `{
	"name": "Priya",
	"email": "priya@example.com",
	"event_date": "2026-11-02",
	"selections": {"Extras": {"Drone": 2}},
	"total": "₹6,000"
}`

func TestSendQuotationSuccess(t *testing.T) {
	renderer := quotation.NewRenderer(pricing.Default())
	exporter := &exporterStub{data: []byte("%PDF-1.4 fake")}
	sender := &senderStub{}

	w := postJSON(SendQuotation(renderer, exporter, sender), "/send-quotation", validQuotation)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message": "Quotation sent successfully!"}`, w.Body.String())

	require.Len(t, sender.sent, 1)
	msg := sender.sent[0]
	assert.Equal(t, "Wedding Quotation for Priya", msg.Subject)
	assert.Equal(t, []string{"priya@example.com"}, msg.To)
	assert.Contains(t, msg.HTML, "Drone")
	assert.Contains(t, msg.HTML, "Estimated Total: ₹6000")

	require.Len(t, msg.Attachments, 1)
	att := msg.Attachments[0]
	assert.Equal(t, "Quotation.pdf", att.Filename)
	assert.Equal(t, "application/pdf", att.ContentType)
	assert.Equal(t, "attachment", att.Disposition)
	assert.Equal(t, []byte("%PDF-1.4 fake"), att.Content)
}

func TestSendQuotationDefaultsNameAndEmail(t *testing.T) {
	renderer := quotation.NewRenderer(pricing.Default())
	exporter := &exporterStub{data: []byte("pdf")}
	sender := &senderStub{}

	w := postJSON(SendQuotation(renderer, exporter, sender), "/send-quotation", `{}`)

	assert.Equal(t, http.StatusOK, w.Code)
	require.Len(t, sender.sent, 1)
	assert.Equal(t, "Wedding Quotation for Customer", sender.sent[0].Subject)
	assert.Empty(t, sender.sent[0].To, "operator copy is the dispatcher's job")
}

func TestSendQuotationPDFFailure(t *testing.T) {
	renderer := quotation.NewRenderer(pricing.Default())
	exporter := &exporterStub{err: &pdf.GenerationError{Detail: "wkhtmltopdf not found"}}
	sender := &senderStub{}

	w := postJSON(SendQuotation(renderer, exporter, sender), "/send-quotation", validQuotation)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error": "PDF generation failed", "details": "wkhtmltopdf not found"}`, w.Body.String())
	assert.Empty(t, sender.sent, "mail must not be dispatched when PDF rendering fails")
}

func TestSendQuotationDeliveryFailure(t *testing.T) {
	renderer := quotation.NewRenderer(pricing.Default())
	exporter := &exporterStub{data: []byte("pdf")}
	sender := &senderStub{err: assert.AnError}

	w := postJSON(SendQuotation(renderer, exporter, sender), "/send-quotation", validQuotation)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), `"Failed to send email"`)
	assert.Equal(t, 1, exporter.calls)
}
