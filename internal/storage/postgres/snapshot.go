package postgres

import (
	"context"
	"strconv"
	"strings"

	"github.com/jmoiron/sqlx"

	"mpu/internal/domain"
)

// groupColumns is the number of bound parameters per stats_groups row.
const groupColumns = 8

type SnapshotStore struct {
	db *sqlx.DB
}

func NewSnapshotStore(db *sqlx.DB) *SnapshotStore {
	return &SnapshotStore{db: db}
}

func (s *SnapshotStore) Insert(ctx context.Context, snapshot *domain.StatsSnapshot) (int64, error) {
	query := `
		INSERT INTO stats_snapshots (
			run_id, taken_at, nb_cards, nb_foil, nb_not_foil, foil_percentage,
			nb_cards_sup5, nb_cards_inf030, avg_card_price, stock_total_value
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10
		)
		RETURNING id`

	var id int64
	err := GetExecutor(ctx, s.db).QueryRowxContext(ctx, query,
		snapshot.RunID,
		snapshot.TakenAt,
		snapshot.NbCards,
		snapshot.NbFoil,
		snapshot.NbNotFoil,
		snapshot.FoilPercentage,
		snapshot.NbCardsSup5,
		snapshot.NbCardsInf030,
		snapshot.AvgCardPrice,
		snapshot.StockTotalValue,
	).Scan(&id)
	if err != nil {
		return 0, err
	}

	return id, nil
}

func (s *SnapshotStore) InsertGroups(ctx context.Context, snapshotID int64, groups []domain.StatsGroup) error {
	if len(groups) == 0 {
		return nil
	}

	var sb strings.Builder
	sb.WriteString("INSERT INTO stats_groups (snapshot_id, dimension, value, total_count, total_value, avg_value, pct_count, pct_value) VALUES ")
	valueArgs := make([]interface{}, 0, len(groups)*groupColumns)

	for i, g := range groups {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString("(")
		for j := 0; j < groupColumns; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString("$")
			sb.WriteString(strconv.Itoa(i*groupColumns + j + 1))
		}
		sb.WriteString(")")
		valueArgs = append(valueArgs, snapshotID, g.Dimension, g.Value, g.TotalCount, g.TotalValue, g.AvgValue, g.PctCount, g.PctValue)
	}

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, sb.String(), valueArgs...)
	return err
}
