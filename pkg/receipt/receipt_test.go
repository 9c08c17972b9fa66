package receipt_test

import (
	"bytes"
	"testing"

	"renewrubber/internal/models"
	"renewrubber/pkg/receipt"

	"github.com/stretchr/testify/assert"
)

func TestGenerate(t *testing.T) {
	order := models.Order{
		ID:   "ORD-2024-001",
		Date: "2024-02-01",
		Items: []models.OrderItem{
			{ID: "item_01", ProductName: "Vibram XS Edge Resole", Quantity: 1, Price: 4500},
		},
		Status:    models.StatusCompleted,
		Total:     4500,
		PickupGym: "Monk Amsterdam",
	}

	pdfBytes, err := receipt.Generate(order)
	assert.NoError(t, err)
	assert.True(t, bytes.HasPrefix(pdfBytes, []byte("%PDF")))
	assert.Greater(t, len(pdfBytes), 500)
}

func TestGenerateWithoutOptionalFields(t *testing.T) {
	pdfBytes, err := receipt.Generate(models.Order{ID: "ORD-1756700000000", Status: models.StatusReceived})
	assert.NoError(t, err)
	assert.True(t, bytes.HasPrefix(pdfBytes, []byte("%PDF")))
}
