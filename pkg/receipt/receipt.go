// Package receipt renders PDF order confirmations.
package receipt

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"renewrubber/internal/models"
)

// Generate renders a PDF receipt for the given order and returns its bytes.
func Generate(order models.Order) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(190, 10, "RenewRubber")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 10)
	pdf.Cell(190, 8, "Climbing shoe resoling - order confirmation")
	pdf.Ln(14)

	pdf.SetFont("Arial", "", 12)
	pdf.Cell(190, 8, fmt.Sprintf("Order: %s", order.ID))
	pdf.Ln(8)
	pdf.Cell(190, 8, fmt.Sprintf("Date: %s", order.Date))
	pdf.Ln(8)
	if order.PickupGym != "" {
		pdf.Cell(190, 8, fmt.Sprintf("Pickup gym: %s", order.PickupGym))
		pdf.Ln(8)
	}
	if order.EstimatedCompletion != "" {
		pdf.Cell(190, 8, fmt.Sprintf("Estimated completion: %s", order.EstimatedCompletion))
		pdf.Ln(8)
	}
	pdf.Ln(6)

	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(110, 8, "Service")
	pdf.Cell(25, 8, "Qty")
	pdf.Cell(55, 8, "Price")
	pdf.Ln(8)

	pdf.SetFont("Arial", "", 12)
	for _, item := range order.Items {
		pdf.Cell(110, 8, tr(item.ProductName))
		pdf.Cell(25, 8, fmt.Sprintf("%d", item.Quantity))
		pdf.Cell(55, 8, tr(models.FormatPrice(item.Price*item.Quantity)))
		pdf.Ln(8)
	}

	pdf.Ln(4)
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(135, 8, "Total")
	pdf.Cell(55, 8, tr(models.FormatPrice(order.Total)))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render receipt for order %s: %w", order.ID, err)
	}
	return buf.Bytes(), nil
}
