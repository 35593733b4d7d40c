package parser

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/ShreyRaut/Aave-V2-Wallet-Credit-Scoring-Model/internal/models"
)

type Parser interface {
	ParseFile(path string) ([]models.TransactionRecord, error)
}

// JSONParser reads a transaction log exported as a single JSON array.
type JSONParser struct{}

func NewJSONParser() *JSONParser {
	return &JSONParser{}
}

// ParseFile reads and decodes the transaction log at path.
func (p *JSONParser) ParseFile(path string) ([]models.TransactionRecord, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening transaction log: %w", err)
	}
	defer file.Close()

	records, err := p.Parse(file)
	if err != nil {
		return nil, fmt.Errorf("parsing transaction log %s: %w", path, err)
	}

	log.Infof("loaded %d transactions from %s", len(records), path)
	return records, nil
}

// Parse decodes a JSON array of transaction records. Records with missing
// fields decode to zero values here; deciding whether to skip them is the
// aggregator's job.
func (p *JSONParser) Parse(r io.Reader) ([]models.TransactionRecord, error) {
	var records []models.TransactionRecord
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, err
	}
	return records, nil
}
