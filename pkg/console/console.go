package console

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/pterm/pterm"

	"github.com/finteach/finteach-cli/internal/domain/entity"
	"github.com/finteach/finteach-cli/internal/shared/types"
)

// Console é uma implementação do ConsoleInterface.
type Console struct {
	theme entity.Theme
}

// NewConsole cria um novo Console.
func NewConsole() *Console {
	return &Console{theme: entity.ThemeLight}
}

// Print imprime no console.
func (c *Console) Print(a ...interface{}) {
	fmt.Print(a...)
}

// Printf imprime uma string formatada no console.
func (c *Console) Printf(format string, a ...interface{}) {
	fmt.Printf(format, a...)
}

// Println imprime no console com uma nova linha.
func (c *Console) Println(a ...interface{}) {
	fmt.Println(a...)
}

// LogInfo registra uma mensagem de informação.
func (c *Console) LogInfo(format string, a ...interface{}) {
	pterm.Info.Printfln(format, a...)
}

// LogWarning registra uma mensagem de aviso.
func (c *Console) LogWarning(format string, a ...interface{}) {
	pterm.Warning.Printfln(format, a...)
}

// LogError registra uma mensagem de erro.
func (c *Console) LogError(format string, a ...interface{}) {
	pterm.Error.Printfln(format, a...)
}

// LogSuccess registra uma mensagem de sucesso.
func (c *Console) LogSuccess(format string, a ...interface{}) {
	pterm.Success.Printfln(format, a...)
}

// Cores predefinidas para uso consistente
var (
	BrightMagenta = color.New(color.FgMagenta, color.Bold).SprintFunc()
	BoldRed       = color.New(color.FgRed, color.Bold).SprintFunc()
	BrightGreen   = color.New(color.FgGreen, color.Bold).SprintFunc()
	BrightYellow  = color.New(color.FgYellow, color.Bold).SprintFunc()
	BrightCyan    = color.New(color.FgCyan, color.Bold).SprintFunc()
)

// statusHandle é uma implementação do StatusHandle.
type statusHandle struct {
	spinner *pterm.SpinnerPrinter
}

// Status cria um spinner de status com a mensagem especificada.
func (c *Console) Status(message string) types.StatusHandle {
	spinner, _ := pterm.DefaultSpinner.Start(message)
	return &statusHandle{spinner: spinner}
}

// Update atualiza a mensagem de status.
func (h *statusHandle) Update(message string) {
	if h.spinner != nil {
		h.spinner.UpdateText(message)
	}
}

// Stop pára o spinner de status.
func (h *statusHandle) Stop() {
	if h.spinner != nil {
		h.spinner.Stop()
	}
}

// Table é uma implementação do TableInterface.
type Table struct {
	columns []string
	rows    [][]string
}

// CreateTable cria uma nova tabela.
func (c *Console) CreateTable() types.TableInterface {
	return &Table{
		columns: []string{},
		rows:    [][]string{},
	}
}

// AddColumn adiciona uma coluna à tabela.
func (t *Table) AddColumn(name string, options ...interface{}) {
	t.columns = append(t.columns, name)
}

// AddRow adiciona uma linha à tabela.
func (t *Table) AddRow(cells ...interface{}) {
	processedCells := make([]string, len(cells))
	for i, cell := range cells {
		processedCells[i] = fmt.Sprint(cell)
	}
	t.rows = append(t.rows, processedCells)
}

// Render renderiza a tabela como uma string.
func (t *Table) Render() string {
	tableData := pterm.TableData{t.columns}
	for _, row := range t.rows {
		tableData = append(tableData, row)
	}

	table := pterm.DefaultTable.
		WithHasHeader().
		WithBoxed().
		WithHeaderStyle(pterm.NewStyle(pterm.FgLightCyan)).
		WithData(tableData)

	renderedTable, _ := table.Srender()
	return renderedTable
}

// ApplyTheme ajusta o esquema de cores do terminal para o tema escolhido.
func (c *Console) ApplyTheme(theme entity.Theme) {
	c.theme = theme
	if theme == entity.ThemeDark {
		pterm.Info.MessageStyle = pterm.NewStyle(pterm.FgLightCyan)
		pterm.DefaultBasicText.Style = pterm.NewStyle(pterm.FgLightWhite)
		return
	}
	pterm.Info.MessageStyle = pterm.NewStyle(pterm.FgCyan)
	pterm.DefaultBasicText.Style = pterm.NewStyle(pterm.FgDefault)
}

const barScale = 40

// DisplayBudgetBar exibe a barra de progresso do orçamento mensal.
func (c *Console) DisplayBudgetBar(spent, budget float64) {
	if budget <= 0 {
		pterm.Warning.Println("No monthly budget set")
		return
	}

	ratio := spent / budget
	barLength := int(ratio * barScale)
	if barLength > barScale {
		barLength = barScale
	}
	bar := strings.Repeat("█", barLength) + strings.Repeat("░", barScale-barLength)

	// Vermelho quando estourou, amarelo acima de 80%, verde caso contrário
	colored := pterm.FgGreen.Sprint(bar)
	if ratio >= 1 {
		colored = pterm.FgRed.Sprint(bar)
	} else if ratio >= 0.8 {
		colored = pterm.FgYellow.Sprint(bar)
	}

	fmt.Printf("  %s ₱%.2f of ₱%.2f (%.0f%%)\n", colored, spent, budget, ratio*100)
	if ratio >= 1 {
		pterm.Warning.Println("You have exceeded your monthly budget!")
	}
}

// DisplayGoalBars exibe barras de progresso para as metas financeiras.
func (c *Console) DisplayGoalBars(goals []entity.Goal) {
	tableData := pterm.TableData{
		{"Goal", "Progress", "", "Saved"},
	}

	for _, goal := range goals {
		progress := goal.Progress()
		barLength := int(progress * barScale)
		bar := strings.Repeat("█", barLength) + strings.Repeat("░", barScale-barLength)

		colored := pterm.FgBlue.Sprint(bar)
		if progress >= 1 {
			colored = pterm.FgGreen.Sprint(bar)
		}

		tableData = append(tableData, []string{
			goal.Name,
			colored,
			fmt.Sprintf("%.0f%%", progress*100),
			fmt.Sprintf("₱%.2f / ₱%.2f", goal.Current, goal.Target),
		})
	}

	table := pterm.DefaultTable.WithHasHeader().WithData(tableData)
	renderedTable, _ := table.Srender()

	panel := pterm.DefaultBox.WithTitle("Financial Goals").WithBoxStyle(pterm.NewStyle(pterm.FgCyan)).Sprint(renderedTable)
	fmt.Println("\n" + panel)
}
