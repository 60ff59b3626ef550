package topic

import (
	"fmt"
	"log"
	"os"
	"os/exec"

	"github.com/bit101/go-ansi"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/zvonler/vex/configuration"
	"github.com/zvonler/vex/model"
)

func initListCommand() *cobra.Command {
	listCommand := &cobra.Command{
		Use:   "list",
		Short: "Prints one page of the topic listing",
		Run:   runListCommand,
	}

	listCommand.Flags().IntVar(&pageNum, "page", 1, "Listing page number")
	return listCommand
}

func runListCommand(cmd *cobra.Command, args []string) {
	fetcher, err := configuration.NewFetcher()
	if err != nil {
		log.Fatal(err)
	}

	topics, err := fetcher.FetchAndExtract(pageNum)
	if err != nil {
		log.Fatal(err)
	}

	isTty := term.IsTerminal(int(os.Stdout.Fd()))
	if isTty {
		paginateTopics(pageNum, topics)
	} else {
		printTopics(topics)
	}
}

func paginateTopics(pageNum int, topics []model.Topic) {
	cmd := exec.Command("/usr/bin/less", "-FRX")
	cmd.Stdout = os.Stdout

	if stdin, err := cmd.StdinPipe(); err == nil {
		go func() {
			defer stdin.Close()

			ansi.Fprintf(stdin, ansi.Yellow, "V2EX topics p.%d", pageNum)
			ansi.Fprintf(stdin, ansi.Default, " (%d shown)\n", len(topics))
			ansi.Fprintln(stdin, ansi.Blue, "========")

			for _, t := range topics {
				ansi.Fprintf(stdin, ansi.Cyan, "%s\n", t.BrowserURL())
				ansi.Fprintf(stdin, ansi.Default, "%s", t.DisplayLine())
				ansi.Fprintf(stdin, ansi.Default, " node ")
				ansi.Fprintf(stdin, ansi.Green, "%s", t.Node.Name)
				ansi.Fprintf(stdin, ansi.Default, " by ")
				ansi.Fprintf(stdin, ansi.Red, "%s", t.Author.Name)
				ansi.Fprintf(stdin, ansi.Default, " last reply ")
				ansi.Fprintf(stdin, ansi.Red, "%s\n", t.LastReplyUser.Name)
				ansi.Fprintln(stdin, ansi.Blue, "--------")
			}
		}()
	} else {
		log.Fatal(err)
	}

	if err := cmd.Run(); err != nil {
		log.Fatal(err)
	}
}

func printTopics(topics []model.Topic) {
	for _, t := range topics {
		fmt.Printf("%s (%s)\n", t.DisplayLine(), t.BrowserURL())
	}
}
