package repository

import (
	"github.com/finteach/finteach-cli/internal/domain/entity"
)

type ExportRepository interface {
	ExportToCSV(snapshot entity.Snapshot, username, filename, outputDir string) (string, error)
	ExportToJSON(snapshot entity.Snapshot, username, filename, outputDir string) (string, error)
	ExportToPDF(snapshot entity.Snapshot, username, filename, outputDir string) (string, error)
}
