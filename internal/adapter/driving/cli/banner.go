package cli

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/finteach/finteach-cli/pkg/version"
)

// displayWelcomeBanner exibe o banner de boas-vindas com informações de versão.
func displayWelcomeBanner(versionStr string) {
	banner := `
         ______ _       _______               _
        |  ____(_)     |__   __|             | |
        | |__   _ _ __    | | ___  __ _  ___ | |__
        |  __| | | '_ \   | |/ _ \/ _' |/ __|| '_ \
        | |    | | | | |  | |  __/ (_| | (__ | | | |
        |_|    |_|_| |_|  |_|\___|\__,_|\___||_| |_|
        `
	green := color.New(color.FgGreen, color.Bold).SprintFunc()
	blue := color.New(color.FgBlue, color.Bold).SprintFunc()

	fmt.Println(green(banner))

	formattedVersion := version.FormatVersion()
	fmt.Println(blue(fmt.Sprintf("FinTeach CLI (v%s)", formattedVersion)))
}
