package invoice

import (
	"os"
	"path/filepath"
	"testing"
)

func sampleInvoice() Invoice {
	return Invoice{
		OrderID:     12,
		CustomerID:  7,
		ProviderID:  3,
		ProductName: "Widget",
		Description: "A widget",
		Price:       9.99,
		Status:      "Pending",
		Date:        "2026-08-29",
	}
}

func TestPath(t *testing.T) {
	g := NewGenerator("static/invoices")
	got := g.Path(7, 12)
	want := filepath.Join("static/invoices", "customer_7", "invoice_12.pdf")
	if got != want {
		t.Errorf("Path = %q, want %q", got, want)
	}
}

func TestRenderCreatesFile(t *testing.T) {
	g := NewGenerator(t.TempDir())

	path, err := g.Render(sampleInvoice())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if path != g.Path(7, 12) {
		t.Errorf("path = %q, want %q", path, g.Path(7, 12))
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat: %v", err)
	}
	if info.Size() == 0 {
		t.Error("rendered PDF is empty")
	}
}

func TestRenderOverwrites(t *testing.T) {
	g := NewGenerator(t.TempDir())

	inv := sampleInvoice()
	if _, err := g.Render(inv); err != nil {
		t.Fatalf("first Render: %v", err)
	}

	inv.Status = "Shipped"
	path, err := g.Render(inv)
	if err != nil {
		t.Fatalf("second Render: %v", err)
	}
	if path != g.Path(7, 12) {
		t.Errorf("regeneration moved the file to %q", path)
	}
}

func TestRenderMissingDate(t *testing.T) {
	g := NewGenerator(t.TempDir())

	inv := sampleInvoice()
	inv.Date = "Not Available"
	if _, err := g.Render(inv); err != nil {
		t.Fatalf("Render: %v", err)
	}
}
