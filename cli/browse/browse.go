package browse

import (
	"io"
	"log"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/zvonler/vex/configuration"
	"github.com/zvonler/vex/tui"
	"github.com/zvonler/vex/v2ex"
)

var (
	pageNum   int
	tickRate  time.Duration
	themePath string
	logPath   string
)

func NewCommand() *cobra.Command {
	browseCommand := &cobra.Command{
		Use:   "browse",
		Short: "Browse the topic listing in a full screen terminal UI",
		Run:   runBrowseCommand,
	}

	browseCommand.Flags().IntVar(&pageNum, "page", 1, "Listing page number")
	browseCommand.Flags().DurationVar(&tickRate, "tick", 250*time.Millisecond, "UI tick rate")
	browseCommand.Flags().StringVar(&themePath, "theme", "", "YAML theme filename")
	browseCommand.Flags().StringVar(&logPath, "log", "", "Append log output to this file")

	return browseCommand
}

func runBrowseCommand(cmd *cobra.Command, args []string) {
	fetcher, err := configuration.NewFetcher()
	if err != nil {
		log.Fatal(err)
	}

	theme := tui.LoadTheme(themePath)

	if logPath != "" {
		logFile, err := tea.LogToFile(logPath, "vex")
		if err != nil {
			log.Fatal(err)
		}
		defer logFile.Close()
	} else {
		// The full screen UI and the standard logger would both write to
		// the terminal, so log output is dropped unless routed to a file.
		log.SetOutput(io.Discard)
	}

	refresher := v2ex.NewRefresher(fetcher)
	program := tea.NewProgram(tui.NewModel(refresher, pageNum, tickRate, theme), tea.WithAltScreen())

	_, err = program.Run()
	if logPath == "" {
		log.SetOutput(os.Stderr)
	}
	if err != nil {
		log.Fatal(err)
	}
}
