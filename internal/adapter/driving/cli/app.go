package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/finteach/finteach-cli/internal/application/usecase"
	"github.com/finteach/finteach-cli/internal/domain/entity"
	"github.com/finteach/finteach-cli/internal/domain/repository"
	"github.com/finteach/finteach-cli/internal/logger"
	"github.com/finteach/finteach-cli/internal/shared/types"
	"github.com/finteach/finteach-cli/pkg/version"
)

// WireFunc builds the adapters and use cases once the configuration has
// been resolved. main supplies it so flag and file values can shape the
// wiring (API base URL, data directory, offline mode).
type WireFunc func(app *CLIApp, cfg *types.Config) error

// CLIApp represents the command-line interface application.
type CLIApp struct {
	rootCmd          *cobra.Command
	dashboardUseCase *usecase.DashboardUseCase
	authUseCase      *usecase.AuthUseCase
	themeStore       *usecase.ThemeStore
	guard            *usecase.SessionGuard
	configRepo       repository.ConfigRepository
	console          types.ConsoleInterface
	chatFor          func(accessToken string) *usecase.ChatSession
	wire             WireFunc
	args             *types.CLIArgs
	version          string
}

// NewCLIApp cria uma nova aplicação CLI.
func NewCLIApp(versionStr string) *CLIApp {
	app := &CLIApp{
		version: versionStr,
	}

	formattedVersion := version.FormatVersion()

	rootCmd := &cobra.Command{
		Use:               "finteach",
		Short:             "FinTeach personal finance CLI",
		Version:           formattedVersion,
		SilenceUsage:      true,
		PersistentPreRunE: app.setup,
		RunE:              app.runDashboard,
	}

	rootCmd.SetVersionTemplate(`{{printf "FinTeach CLI version: %s\n" .Version}}`)

	rootCmd.PersistentFlags().StringP("config-file", "C", "", "Path to a TOML, YAML, or JSON configuration file")
	rootCmd.PersistentFlags().String("api-url", "", "Base URL of the FinTeach API")
	rootCmd.PersistentFlags().String("data-dir", "", "Directory for the local data store")
	rootCmd.PersistentFlags().Bool("offline", false, "Keep balances and goals locally instead of calling the API")
	rootCmd.PersistentFlags().Int("chat-width", 0, "Wrap width for AI chat replies (minimum 40)")
	rootCmd.PersistentFlags().StringP("report-name", "n", "", "Specify the base name for the report file (without extension)")
	rootCmd.PersistentFlags().StringSliceP("report-type", "y", nil, "Specify report types: csv, json, pdf")
	rootCmd.PersistentFlags().StringP("dir", "d", "", "Directory to save the report files (default: current directory)")

	rootCmd.AddCommand(
		app.newDashboardCommand(),
		app.newLoginCommand(),
		app.newRegisterCommand(),
		app.newLogoutCommand(),
		app.newExpenseCommand(),
		app.newDepositCommand(),
		app.newBudgetCommand(),
		app.newGoalCommand(),
		app.newChatCommand(),
		app.newThemeCommand(),
	)

	app.rootCmd = rootCmd
	return app
}

// Execute runs the CLI application.
func (app *CLIApp) Execute() error {
	return app.rootCmd.Execute()
}

// SetConfigRepository sets the config repository for the CLI app.
func (app *CLIApp) SetConfigRepository(repo repository.ConfigRepository) {
	app.configRepo = repo
}

// SetConsole sets the console for the CLI app.
func (app *CLIApp) SetConsole(console types.ConsoleInterface) {
	app.console = console
}

// SetWireFunc sets the wiring callback invoked after config resolution.
func (app *CLIApp) SetWireFunc(wire WireFunc) {
	app.wire = wire
}

// SetDashboardUseCase sets the dashboard use case for the CLI app.
func (app *CLIApp) SetDashboardUseCase(useCase *usecase.DashboardUseCase) {
	app.dashboardUseCase = useCase
}

// SetAuthUseCase sets the auth use case for the CLI app.
func (app *CLIApp) SetAuthUseCase(useCase *usecase.AuthUseCase) {
	app.authUseCase = useCase
}

// SetThemeStore sets the theme store for the CLIApp.
func (app *CLIApp) SetThemeStore(store *usecase.ThemeStore) {
	app.themeStore = store
}

// SetSessionGuard sets the session guard for the CLI app.
func (app *CLIApp) SetSessionGuard(guard *usecase.SessionGuard) {
	app.guard = guard
}

// SetChatFactory sets the chat session factory for the CLI app.
func (app *CLIApp) SetChatFactory(chatFor func(accessToken string) *usecase.ChatSession) {
	app.chatFor = chatFor
}

// setup resolve a configuração (arquivo < env < flags) e dispara o wiring.
func (app *CLIApp) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := app.resolveConfig(cmd)
	if err != nil {
		return err
	}

	logger.Init(cfg.Env)

	if app.wire != nil {
		if err := app.wire(app, cfg); err != nil {
			return err
		}
	}

	dir := cfg.Dir
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return err
		}
		dir = cwd
	} else {
		absDir, err := filepath.Abs(dir)
		if err != nil {
			return err
		}
		dir = absDir
	}

	configFile, _ := cmd.Flags().GetString("config-file")
	app.args = &types.CLIArgs{
		ConfigFile: configFile,
		APIBaseURL: cfg.APIBaseURL,
		DataDir:    cfg.DataDir,
		Offline:    cfg.Offline,
		ReportName: cfg.ReportName,
		ReportType: cfg.ReportType,
		Dir:        dir,
		ChatWidth:  usecase.ClampChatWidth(cfg.ChatWidth),
	}

	if app.themeStore != nil {
		app.themeStore.Apply()
	}
	return nil
}

// resolveConfig mescla arquivo, variáveis de ambiente e flags, nessa ordem.
func (app *CLIApp) resolveConfig(cmd *cobra.Command) (*types.Config, error) {
	flags := cmd.Flags()

	cfg := &types.Config{
		ReportType: []string{"csv"},
	}

	configFile, _ := flags.GetString("config-file")
	if configFile != "" && app.configRepo != nil {
		fileCfg, err := app.configRepo.LoadConfigFile(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
		cfg.Merge(fileCfg)
	}

	if app.configRepo != nil {
		cfg.Merge(app.configRepo.LoadEnv())
	}

	flagCfg := &types.Config{}
	flagCfg.APIBaseURL, _ = flags.GetString("api-url")
	flagCfg.DataDir, _ = flags.GetString("data-dir")
	flagCfg.ChatWidth, _ = flags.GetInt("chat-width")
	flagCfg.ReportName, _ = flags.GetString("report-name")
	if flags.Changed("report-type") {
		flagCfg.ReportType, _ = flags.GetStringSlice("report-type")
	}
	flagCfg.Dir, _ = flags.GetString("dir")
	cfg.Merge(flagCfg)

	// Merge só sobrepõe Offline quando true, então --offline=false passa
	// direto pelo Changed para poder anular o arquivo ou o ambiente.
	if flags.Changed("offline") {
		cfg.Offline, _ = flags.GetBool("offline")
	}

	return cfg, nil
}

// withSession executa fn e, quando o token expira, tenta um refresh
// único antes de repetir a chamada.
func (app *CLIApp) withSession(ctx context.Context, fn func(context.Context) error) error {
	err := fn(ctx)
	if !errors.Is(err, types.ErrSessionExpired) {
		return err
	}

	if refreshErr := app.authUseCase.RefreshSession(ctx); refreshErr != nil {
		app.console.LogError("Your session has expired. Please log in again.")
		return refreshErr
	}
	return fn(ctx)
}

func (app *CLIApp) newDashboardCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show your balances, activity, budget and goals",
		RunE:  app.runDashboard,
	}
}

// runDashboard é o ponto de entrada principal para o comando CLI.
func (app *CLIApp) runDashboard(cmd *cobra.Command, _ []string) error {
	displayWelcomeBanner(app.version)

	go version.CheckLatestVersion(app.version)

	ctx := cmd.Context()
	return app.withSession(ctx, func(ctx context.Context) error {
		return app.dashboardUseCase.RunDashboard(ctx, app.args)
	})
}

func (app *CLIApp) newLoginCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "login [username]",
		Short: "Log in to your FinTeach account",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			username := ""
			if len(args) > 0 {
				username = args[0]
			} else {
				username, _ = pterm.DefaultInteractiveTextInput.Show("Username")
			}
			password, _ := pterm.DefaultInteractiveTextInput.WithMask("*").Show("Password")

			return app.authUseCase.Login(cmd.Context(), username, password)
		},
	}
}

func (app *CLIApp) newRegisterCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "register",
		Short: "Create a new FinTeach account",
		RunE: func(cmd *cobra.Command, _ []string) error {
			username, _ := pterm.DefaultInteractiveTextInput.Show("Username")
			email, _ := pterm.DefaultInteractiveTextInput.Show("Email")
			password, _ := pterm.DefaultInteractiveTextInput.WithMask("*").Show("Password")
			confirm, _ := pterm.DefaultInteractiveTextInput.WithMask("*").Show("Confirm password")

			if password != confirm {
				return fmt.Errorf("passwords do not match")
			}

			return app.authUseCase.Register(cmd.Context(), username, email, password)
		},
	}
}

func (app *CLIApp) newLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Log out and discard the stored session",
		RunE: func(_ *cobra.Command, _ []string) error {
			return app.authUseCase.Logout()
		},
	}
}

func (app *CLIApp) newExpenseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "expense <amount> [note]",
		Short: "Record an expense from your checking account",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := parseAmount(args[0])
			if err != nil {
				return err
			}
			note := strings.Join(args[1:], " ")

			return app.withSession(cmd.Context(), func(ctx context.Context) error {
				return app.dashboardUseCase.RecordExpense(ctx, amount, note)
			})
		},
	}
}

func (app *CLIApp) newDepositCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deposit <account> <amount>",
		Short: "Deposit into checking, savings or investments",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := parseAmount(args[1])
			if err != nil {
				return err
			}
			goalName, _ := cmd.Flags().GetString("goal")

			return app.withSession(cmd.Context(), func(ctx context.Context) error {
				return app.dashboardUseCase.RecordDeposit(ctx, strings.ToLower(args[0]), amount, goalName)
			})
		},
	}
	cmd.Flags().StringP("goal", "g", "", "Goal to credit this savings deposit to")
	return cmd
}

func (app *CLIApp) newBudgetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "budget <amount>",
		Short: "Set your monthly budget",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := parseAmount(args[0])
			if err != nil {
				return err
			}

			return app.withSession(cmd.Context(), func(ctx context.Context) error {
				return app.dashboardUseCase.SetBudget(ctx, amount)
			})
		},
	}
}

func (app *CLIApp) newGoalCommand() *cobra.Command {
	goalCmd := &cobra.Command{
		Use:   "goal",
		Short: "Manage your financial goals",
	}

	addCmd := &cobra.Command{
		Use:   "add <name> <target>",
		Short: "Add a financial goal",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := parseAmount(args[1])
			if err != nil {
				return err
			}
			current, _ := cmd.Flags().GetFloat64("current")

			input := entity.GoalInput{Name: args[0], Target: target, Current: current}
			return app.withSession(cmd.Context(), func(ctx context.Context) error {
				return app.dashboardUseCase.AddGoal(ctx, input)
			})
		},
	}
	addCmd.Flags().Float64("current", 0, "Amount already saved toward this goal")

	editCmd := &cobra.Command{
		Use:   "edit <name>",
		Short: "Edit a financial goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			newName, _ := cmd.Flags().GetString("name")
			target, _ := cmd.Flags().GetFloat64("target")
			current, _ := cmd.Flags().GetFloat64("current")

			input := entity.GoalInput{Name: newName, Target: target, Current: current}
			return app.withSession(cmd.Context(), func(ctx context.Context) error {
				return app.dashboardUseCase.EditGoal(ctx, args[0], input)
			})
		},
	}
	editCmd.Flags().String("name", "", "New name for the goal")
	editCmd.Flags().Float64("target", 0, "New target amount")
	editCmd.Flags().Float64("current", -1, "New saved amount")

	deleteCmd := &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a financial goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.withSession(cmd.Context(), func(ctx context.Context) error {
				return app.dashboardUseCase.DeleteGoal(ctx, args[0])
			})
		},
	}

	goalCmd.AddCommand(addCmd, editCmd, deleteCmd)
	return goalCmd
}

func (app *CLIApp) newChatCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Talk to the Financial Advisor AI",
		RunE: func(cmd *cobra.Command, _ []string) error {
			token, err := app.guard.AccessToken()
			if err != nil {
				return err
			}

			session := app.chatFor(token)
			width := app.args.ChatWidth

			app.console.Println()
			app.printChatReply(usecase.ChatGreeting, width)
			app.console.Println("Type 'exit' to leave the chat.")

			scanner := bufio.NewScanner(os.Stdin)
			for {
				app.console.Print("\nYou: ")
				if !scanner.Scan() {
					break
				}
				line := strings.TrimSpace(scanner.Text())
				if line == "exit" || line == "quit" {
					break
				}

				status := app.console.Status("Thinking...")
				sent := session.Send(cmd.Context(), line)
				status.Stop()
				if !sent {
					continue
				}

				transcript := session.Transcript()
				app.printChatReply(transcript[len(transcript)-1].Text, width)
			}
			return scanner.Err()
		},
	}
}

// printChatReply imprime a resposta da IA limitada à largura do chat.
func (app *CLIApp) printChatReply(text string, width int) {
	wrapped := pterm.DefaultParagraph.WithMaxWidth(width).Sprint(text)
	app.console.Printf("Advisor: %s\n", wrapped)
}

func (app *CLIApp) newThemeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "theme [toggle]",
		Short: "Show or toggle the light/dark theme",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if len(args) == 0 {
				app.console.LogInfo("Current theme: %s", app.themeStore.Current())
				return nil
			}
			if args[0] != "toggle" {
				return fmt.Errorf("unknown theme action %q (expected toggle)", args[0])
			}

			theme, err := app.themeStore.Toggle()
			if err != nil {
				return err
			}
			app.console.LogSuccess("Switched to %s theme.", theme)
			return nil
		},
	}
}

func parseAmount(raw string) (float64, error) {
	cleaned := strings.ReplaceAll(strings.TrimPrefix(raw, "₱"), ",", "")
	amount, err := strconv.ParseFloat(cleaned, 64)
	// ParseFloat aceita "NaN" e "Inf", que não são valores monetários.
	if err != nil || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return 0, fmt.Errorf("invalid amount %q", raw)
	}
	return amount, nil
}
