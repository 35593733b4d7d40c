package storage

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/ShreyRaut/Aave-V2-Wallet-Credit-Scoring-Model/internal/models"
)

// UploadScoresCSV renders one scoring run as a two-column CSV and uploads it
// as scores-YYYY-MM-DD.csv. Rows are written in score order so reruns of the
// same log produce byte-identical objects.
func UploadScoresCSV(ctx context.Context, st Storage, scores map[string]int, scoredAt time.Time) error {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write([]string{"wallet", "score"}); err != nil {
		return fmt.Errorf("error writing CSV header: %w", err)
	}

	for _, row := range models.SortedScores(scores) {
		record := []string{row.Wallet, strconv.Itoa(int(row.Score))}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("error writing CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("error flushing CSV writer: %w", err)
	}

	objectName := fmt.Sprintf("scores-%s.csv", scoredAt.Format("2006-01-02"))

	if err := st.UploadFile(ctx, objectName, bytes.NewReader(buf.Bytes())); err != nil {
		return fmt.Errorf("error uploading scores CSV: %w", err)
	}

	return nil
}
