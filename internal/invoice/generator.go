// Package invoice renders order invoices as single-page PDF files on local
// disk, one directory per customer. Regenerating an invoice overwrites the
// previous file at the same path.
package invoice

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-pdf/fpdf"
)

// Invoice is the flattened order + product data printed on the document.
type Invoice struct {
	OrderID     int
	CustomerID  int
	ProviderID  int
	ProductName string
	Description string
	Price       float64
	Status      string
	Date        string
}

type Generator struct {
	baseDir string
}

// NewGenerator roots all invoice files under baseDir.
func NewGenerator(baseDir string) *Generator {
	return &Generator{baseDir: baseDir}
}

// Path is where the invoice for an order lands, deterministic per
// (customer, order) so regeneration overwrites.
func (g *Generator) Path(customerID, orderID int) string {
	return filepath.Join(g.baseDir,
		fmt.Sprintf("customer_%d", customerID),
		fmt.Sprintf("invoice_%d.pdf", orderID))
}

// Render writes the PDF and returns its path.
func (g *Generator) Render(inv Invoice) (string, error) {
	path := g.Path(inv.CustomerID, inv.OrderID)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("create invoice dir: %w", err)
	}

	pdf := fpdf.New("P", "pt", "Letter", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.Text(100, 50, fmt.Sprintf("Invoice for Order ID: %d", inv.OrderID))

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Customer ID: %d", inv.CustomerID),
		fmt.Sprintf("Provider ID: %d", inv.ProviderID),
		fmt.Sprintf("Product: %s", inv.ProductName),
		fmt.Sprintf("Price: $%.2f", inv.Price),
		fmt.Sprintf("Status: %s", inv.Status),
		fmt.Sprintf("Description: %s", inv.Description),
		fmt.Sprintf("Date: %s", inv.Date),
	}
	y := 70.0
	for _, line := range lines {
		pdf.Text(100, y, line)
		y += 20
	}

	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", fmt.Errorf("write invoice: %w", err)
	}
	return path, nil
}
