package admin

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wostup/wostup-go/internal/app/models"
)

func TestScan(t *testing.T) {
	scanner := NewScanner(DefaultBannedTerms)

	t.Run("clean update", func(t *testing.T) {
		findings := scanner.Scan(models.StartupUpdate{
			ID:    "u1",
			Title: "We raised our seed round",
			Body:  "Hiring two Go engineers next quarter.",
		})
		assert.Empty(t, findings)
	})

	t.Run("banned term in body", func(t *testing.T) {
		findings := scanner.Scan(models.StartupUpdate{
			ID:   "u2",
			Body: "Join our program, just a small registration fee to get started.",
		})
		assert.Len(t, findings, 1)
		assert.Equal(t, "registration fee", findings[0].Term)
		assert.Equal(t, "u2", findings[0].UpdateID)
	})

	t.Run("matching is case-insensitive", func(t *testing.T) {
		findings := scanner.Scan(models.StartupUpdate{
			ID:   "u3",
			Body: "GUARANTEED INCOME for everyone who signs up!",
		})
		assert.Len(t, findings, 1)
		assert.Equal(t, "guaranteed income", findings[0].Term)
	})

	t.Run("term hidden in markup", func(t *testing.T) {
		findings := scanner.Scan(models.StartupUpdate{
			ID:   "u4",
			Body: `<p>Send funds to our <b>crypto wallet</b> to reserve a spot.</p>`,
		})
		assert.Len(t, findings, 1)
		assert.Equal(t, "crypto wallet", findings[0].Term)
	})

	t.Run("markup split across tags does not hide a term", func(t *testing.T) {
		// goquery flattens "<b>crypto</b> wallet" into "crypto wallet".
		findings := scanner.Scan(models.StartupUpdate{
			ID:   "u5",
			Body: `<p><b>crypto</b> wallet payments accepted</p>`,
		})
		assert.Len(t, findings, 1)
	})

	t.Run("repeated term reported once", func(t *testing.T) {
		findings := scanner.Scan(models.StartupUpdate{
			ID:   "u6",
			Body: "mlm mlm mlm",
		})
		assert.Len(t, findings, 1)
	})
}

func TestScanAll(t *testing.T) {
	scanner := NewScanner(DefaultBannedTerms)

	updates := []models.StartupUpdate{
		{ID: "a", Body: "We shipped v2 of the product."},
		{ID: "b", Body: "This is not a pyramid scheme, promise."},
		{ID: "c", Body: "New office in Lisbon!"},
	}

	flagged, clean := scanner.ScanAll(updates)
	assert.Len(t, flagged, 1)
	assert.Contains(t, flagged, "b")
	assert.Len(t, clean, 2)
}
