package topic

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	pageNum int
)

func NewCommand() *cobra.Command {
	topicCommand := &cobra.Command{
		Use:   "topic",
		Short: "Commands for listing and opening topics",
		Example: "  # Prints the topics on the front listing page\n" +
			"  " + os.Args[0] + " topic list",
	}

	topicCommand.AddCommand(initListCommand())
	topicCommand.AddCommand(initOpenCommand())

	return topicCommand
}
