package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"etxdir/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "etxdir",
	Short: "Generate directory scaffolds from PlantUML diagrams",
	Long:  `etxdir turns PlantUML component or Salt tree diagrams into the matching directory and file structure on disk`,
}

// main initializes the CLI by setting the command version, registering
// subcommands and persistent flags, and then executes the root command.
// Error kinds map to distinct exit codes (see exit.go).
func main() {
	// Устанавливаем версию для автоматического флага --version
	rootCmd.Version = version.Version

	// Добавляем команды
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(detectCmd)
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(versionCmd)

	// Глобальные флаги
	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Int("max-diagnostics", 100, "maximum number of diagnostics to show")

	// Диагностики печатают сами команды; cobra оставляем только usage-ошибки.
	rootCmd.SilenceErrors = true

	if err := rootCmd.Execute(); err != nil {
		var ec *exitCodeError
		if errors.As(err, &ec) {
			os.Exit(ec.code)
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(exitGeneric)
	}
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// useColor resolves the persistent --color flag against the stream.
func useColor(cmd *cobra.Command, f *os.File) bool {
	colorFlag, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return false
	}
	return colorFlag == "on" || (colorFlag == "auto" && isTerminal(f))
}
