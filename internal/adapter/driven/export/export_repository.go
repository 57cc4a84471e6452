package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/finteach/finteach-cli/internal/domain/entity"
	"github.com/finteach/finteach-cli/internal/domain/repository"
)

// ExportRepositoryImpl implementa o ExportRepository.
type ExportRepositoryImpl struct{}

// NewExportRepository cria uma nova implementação do ExportRepository.
func NewExportRepository() repository.ExportRepository {
	return &ExportRepositoryImpl{}
}

// snapshotReport is the flat JSON shape written by ExportToJSON.
type snapshotReport struct {
	Username    string               `json:"username"`
	GeneratedAt string               `json:"generated_at"`
	Snapshot    entity.Snapshot      `json:"snapshot"`
	Goals       []snapshotReportGoal `json:"goal_progress"`
}

type snapshotReportGoal struct {
	Name     string  `json:"name"`
	Current  float64 `json:"current"`
	Target   float64 `json:"target"`
	Progress float64 `json:"progress"`
}

func (r *ExportRepositoryImpl) ExportToCSV(snapshot entity.Snapshot, username, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "csv")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	writer.Write([]string{
		"Username", "Checking Balance", "Savings Balance", "Investment Balance",
		"Monthly Budget", "Recent Activity", "Goals",
	})

	activityLines := make([]string, 0, len(snapshot.RecentActivity))
	for _, item := range snapshot.RecentActivity {
		activityLines = append(activityLines, fmt.Sprintf("%s (%s)", item.Detail, item.Date))
	}

	goalLines := make([]string, 0, len(snapshot.Goals))
	for _, goal := range snapshot.Goals {
		goalLines = append(goalLines, fmt.Sprintf("%s: ₱%.2f / ₱%.2f", goal.Name, goal.Current, goal.Target))
	}

	writer.Write([]string{
		username,
		fmt.Sprintf("₱%.2f", snapshot.CheckingBalance),
		fmt.Sprintf("₱%.2f", snapshot.SavingsBalance),
		fmt.Sprintf("₱%.2f", snapshot.InvestmentBalance),
		fmt.Sprintf("₱%.2f", snapshot.MonthlyBudget),
		strings.Join(activityLines, "\n"),
		strings.Join(goalLines, "\n"),
	})

	return filepath.Abs(outputFilename)
}

func (r *ExportRepositoryImpl) ExportToJSON(snapshot entity.Snapshot, username, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "json")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating JSON file: %w", err)
	}
	defer file.Close()

	report := snapshotReport{
		Username:    username,
		GeneratedAt: time.Now().Format(time.RFC3339),
		Snapshot:    snapshot,
	}
	for _, goal := range snapshot.Goals {
		report.Goals = append(report.Goals, snapshotReportGoal{
			Name:     goal.Name,
			Current:  goal.Current,
			Target:   goal.Target,
			Progress: goal.Progress(),
		})
	}

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(report); err != nil {
		return "", fmt.Errorf("error encoding JSON report: %w", err)
	}

	return filepath.Abs(outputFilename)
}

func (r *ExportRepositoryImpl) ExportToPDF(snapshot entity.Snapshot, username, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "pdf")
	if err != nil {
		return "", err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, "FinTeach Dashboard Report")
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("User: %s", username))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Generated: %s", time.Now().Format("2006-01-02 15:04:05")))
	pdf.Ln(12)

	// gofpdf's core fonts have no glyph for the peso sign, so amounts use
	// the PHP currency code in the PDF.
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 8, "Balances")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Checking: PHP %.2f", snapshot.CheckingBalance))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Savings: PHP %.2f", snapshot.SavingsBalance))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Investments: PHP %.2f", snapshot.InvestmentBalance))
	pdf.Ln(10)

	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Monthly Budget: PHP %.2f", snapshot.MonthlyBudget))
	pdf.Ln(10)

	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 8, "Recent Activity")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 10)
	if len(snapshot.RecentActivity) == 0 {
		pdf.Cell(0, 6, "No recent activity.")
		pdf.Ln(6)
	}
	for _, item := range snapshot.RecentActivity {
		detail := strings.ReplaceAll(item.Detail, "₱", "PHP ")
		pdf.Cell(0, 6, fmt.Sprintf("%s - %s", item.Date, detail))
		pdf.Ln(6)
	}
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 8, "Goals")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 10)
	if len(snapshot.Goals) == 0 {
		pdf.Cell(0, 6, "No goals yet.")
		pdf.Ln(6)
	}
	for _, goal := range snapshot.Goals {
		pdf.Cell(0, 6, fmt.Sprintf("%s: PHP %.2f of PHP %.2f (%.0f%%)",
			goal.Name, goal.Current, goal.Target, goal.Progress()*100))
		pdf.Ln(6)
	}

	if err := pdf.OutputFileAndClose(outputFilename); err != nil {
		return "", fmt.Errorf("error writing PDF file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

// generateFilename builds "<base>-<timestamp>.<ext>" inside outputDir.
func generateFilename(base, outputDir, extension string) (string, error) {
	if base == "" {
		base = "finteach-report"
	}
	if outputDir != "" {
		if err := os.MkdirAll(outputDir, 0o755); err != nil {
			return "", fmt.Errorf("error creating output directory: %w", err)
		}
	}
	timestamp := time.Now().Format("20060102-150405")
	return filepath.Join(outputDir, fmt.Sprintf("%s-%s.%s", base, timestamp, extension)), nil
}
