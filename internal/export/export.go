package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/prasetya/siaklake/internal/generator"
	"github.com/prasetya/siaklake/internal/pkg/logger"
)

// Format selects the on-disk serialization for generated tables.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
)

// WriteDataset serializes every generated table into outputDir, one
// file per table, named after the warehouse table it feeds.
func WriteDataset(ds *generator.Dataset, outputDir string, format Format) error {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("creating output dir: %w", err)
	}

	for _, table := range Tables(ds) {
		var err error
		switch format {
		case FormatJSON:
			err = writeJSON(outputDir, table)
		default:
			err = writeCSV(outputDir, table)
		}
		if err != nil {
			return fmt.Errorf("writing table %s: %w", table.Name, err)
		}
		logger.Info().Str("table", table.Name).Int("rows", len(table.Rows)).Msg("Saved generated table")
	}

	return nil
}

func writeCSV(outputDir string, table Table) error {
	path := filepath.Join(outputDir, table.Name+".csv")
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(table.Header); err != nil {
		return err
	}
	if err := writer.WriteAll(table.Rows); err != nil {
		return err
	}
	writer.Flush()
	return writer.Error()
}

func writeJSON(outputDir string, table Table) error {
	path := filepath.Join(outputDir, table.Name+".json")
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	return encoder.Encode(table.Records)
}
