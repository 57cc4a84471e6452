package main

import (
	"fmt"
	"os"

	"github.com/finteach/finteach-cli/internal/adapter/driven/api"
	"github.com/finteach/finteach-cli/internal/adapter/driven/cache"
	"github.com/finteach/finteach-cli/internal/adapter/driven/config"
	"github.com/finteach/finteach-cli/internal/adapter/driven/export"
	"github.com/finteach/finteach-cli/internal/adapter/driven/localstore"
	"github.com/finteach/finteach-cli/internal/adapter/driving/cli"
	"github.com/finteach/finteach-cli/internal/application/usecase"
	"github.com/finteach/finteach-cli/internal/domain/repository"
	"github.com/finteach/finteach-cli/internal/logger"
	"github.com/finteach/finteach-cli/internal/shared/types"
	"github.com/finteach/finteach-cli/pkg/console"
	"github.com/finteach/finteach-cli/pkg/version"
)

func main() {
	defer logger.Sync()

	// Inicializa o aplicativo CLI
	app := cli.NewCLIApp(version.Version)

	configRepo := config.NewConfigRepository()
	consoleImpl := console.NewConsole()

	app.SetConfigRepository(configRepo)
	app.SetConsole(consoleImpl)

	// O restante do wiring depende da configuração resolvida (URL da
	// API, diretório de dados, modo offline), então acontece num callback.
	app.SetWireFunc(func(app *cli.CLIApp, cfg *types.Config) error {
		baseURL := cfg.APIBaseURL
		if baseURL == "" {
			baseURL = api.DefaultBaseURL
		}

		dataDir := cfg.DataDir
		if dataDir == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return err
			}
			dataDir = home + "/.finteach"
		}

		store, err := localstore.New(dataDir)
		if err != nil {
			return err
		}
		sessionStore := localstore.NewMemory()

		apiRepo := api.NewAPIRepository(baseURL)
		exportRepo := export.NewExportRepository()

		guard := usecase.NewSessionGuard(store, sessionStore)
		themeStore := usecase.NewThemeStore(store, consoleImpl)
		authUseCase := usecase.NewAuthUseCase(guard, apiRepo, consoleImpl)

		cacheFor := func(accessToken string) repository.SnapshotCache {
			if cfg.Offline {
				return cache.NewOptimisticCache(store)
			}
			return cache.NewAuthoritativeCache(apiRepo, accessToken)
		}

		dashboardUseCase := usecase.NewDashboardUseCase(
			guard,
			apiRepo,
			exportRepo,
			consoleImpl,
			cacheFor,
			cfg.Offline,
		)

		app.SetSessionGuard(guard)
		app.SetThemeStore(themeStore)
		app.SetAuthUseCase(authUseCase)
		app.SetDashboardUseCase(dashboardUseCase)
		app.SetChatFactory(func(accessToken string) *usecase.ChatSession {
			return usecase.NewChatSession(apiRepo, accessToken)
		})
		return nil
	})

	// Executa o aplicativo
	if err := app.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
