package cardmarket

import (
	"encoding/json"

	"mpu/internal/domain"
)

// StockResponse is the payload of GET stock/file.
type StockResponse struct {
	Stock string `json:"stock"`
}

// ProductResponse is the payload of GET products/{id}.
type ProductResponse struct {
	Product domain.ProductInfo `json:"product"`
}

// ArticlesResponse is the payload of GET articles/{id}.
type ArticlesResponse struct {
	Article []domain.Article `json:"article"`
}

// WriteAck is the acknowledgement of PUT stock.
type WriteAck struct {
	Updated    []json.RawMessage `json:"updatedArticles"`
	NotUpdated []NotUpdated      `json:"notUpdatedArticles"`
}

// NotUpdated describes an article the marketplace refused to change.
type NotUpdated struct {
	Success bool            `json:"success"`
	Tried   json.RawMessage `json:"tried"`
	Error   string          `json:"error"`
}
