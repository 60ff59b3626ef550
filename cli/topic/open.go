package topic

import (
	"fmt"
	"log"
	"net/url"
	"strconv"

	"github.com/pkg/browser"
	"github.com/spf13/cobra"

	"github.com/zvonler/vex/model"
	"github.com/zvonler/vex/utils"
)

func initOpenCommand() *cobra.Command {
	openCommand := &cobra.Command{
		Use:   "open <topic_id | topic_URL>",
		Short: "Opens a topic in a browser.",
		Args:  cobra.ExactArgs(1),
		Run:   runOpenCommand,
	}
	return openCommand
}

func runOpenCommand(cmd *cobra.Command, args []string) {
	target, err := topicTarget(args[0])
	if err != nil {
		log.Fatal(err)
	}
	browser.OpenURL(target)
}

// topicTarget accepts a numeric topic id or a full topic URL.
func topicTarget(arg string) (string, error) {
	if id, err := strconv.Atoi(arg); err == nil {
		if id <= 0 {
			return "", fmt.Errorf("Bad topic id %q", arg)
		}
		return utils.AbsoluteURL(model.BaseURL, fmt.Sprintf("/t/%d", id)), nil
	}

	if parsed, err := url.Parse(arg); err == nil && parsed.Scheme != "" && parsed.Host != "" {
		return arg, nil
	}
	return "", fmt.Errorf("Bad topic reference %q", arg)
}
