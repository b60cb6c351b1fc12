package services

import (
	"fmt"
	"net/url"

	qrcode "github.com/skip2/go-qrcode"
	"github.com/yeremiapane/table-order/models"
)

// QRGenerator renders the code printed on a table. Scanning it opens the
// ordering page with the table preselected.
type QRGenerator interface {
	TableQR(table models.Table) ([]byte, error)
}

type DefaultQRGenerator struct {
	BaseURL string
	Size    int
}

func NewQRGenerator(baseURL string) *DefaultQRGenerator {
	return &DefaultQRGenerator{BaseURL: baseURL, Size: 256}
}

// TableURL is the link encoded in the table's QR code.
func (g *DefaultQRGenerator) TableURL(table models.Table) string {
	return fmt.Sprintf("%s/?table=%s", g.BaseURL, url.QueryEscape(table.ID))
}

func (g *DefaultQRGenerator) TableQR(table models.Table) ([]byte, error) {
	size := g.Size
	if size <= 0 {
		size = 256
	}
	png, err := qrcode.Encode(g.TableURL(table), qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("encode qr for table %s: %w", table.Number, err)
	}
	return png, nil
}
