package cardmarket

import (
	"encoding/xml"
	"fmt"

	"github.com/shopspring/decimal"

	"mpu/internal/domain"
)

// DefaultItemTag is the element name of one article in a write request.
const DefaultItemTag = "article"

type xmlRequest struct {
	XMLName xml.Name `xml:"request"`
	Items   []xmlArticle
}

type xmlArticle struct {
	XMLName   xml.Name
	ArticleID int64  `xml:"idArticle"`
	Comments  string `xml:"comments"`
	Count     int    `xml:"count"`
	Price     string `xml:"price"`
}

// EncodePriceUpdates renders the XML body of a stock write.
func EncodePriceUpdates(updates []domain.PriceUpdate, itemTag string) ([]byte, error) {
	if itemTag == "" {
		itemTag = DefaultItemTag
	}

	req := xmlRequest{Items: make([]xmlArticle, len(updates))}
	for i, u := range updates {
		req.Items[i] = xmlArticle{
			XMLName:   xml.Name{Local: itemTag},
			ArticleID: u.ArticleID,
			Comments:  u.Comments,
			Count:     u.Count,
			Price:     FormatPrice(u.Price),
		}
	}

	body, err := xml.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshal price updates: %w", err)
	}

	return append([]byte(xml.Header), body...), nil
}

// FormatPrice renders a price with at most two decimals.
func FormatPrice(p float64) string {
	return decimal.NewFromFloat(p).Round(2).String()
}
