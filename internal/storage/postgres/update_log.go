package postgres

import (
	"context"
	"strconv"
	"strings"

	"github.com/jmoiron/sqlx"

	"mpu/internal/domain"
)

const updateColumns = 8

// UpdateLogStore keeps the history of prices written to the marketplace.
type UpdateLogStore struct {
	db *sqlx.DB
}

func NewUpdateLogStore(db *sqlx.DB) *UpdateLogStore {
	return &UpdateLogStore{db: db}
}

func (s *UpdateLogStore) InsertBatch(ctx context.Context, updates []domain.AppliedUpdate) error {
	if len(updates) == 0 {
		return nil
	}

	var sb strings.Builder
	sb.WriteString("INSERT INTO price_updates (run_id, article_id, product_id, previous_price, new_price, amount, comments, applied_at) VALUES ")
	valueArgs := make([]interface{}, 0, len(updates)*updateColumns)

	for i, u := range updates {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString("(")
		for j := 0; j < updateColumns; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString("$")
			sb.WriteString(strconv.Itoa(i*updateColumns + j + 1))
		}
		sb.WriteString(")")
		valueArgs = append(valueArgs, u.RunID, u.ArticleID, u.ProductID, u.PreviousPrice, u.NewPrice, u.Amount, u.Comments, u.AppliedAt)
	}

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, sb.String(), valueArgs...)
	return err
}
