package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zvonler/vex/cli/browse"
	"github.com/zvonler/vex/cli/topic"
	"github.com/zvonler/vex/model"
)

var (
	baseURL   string
	proxy     string
	userAgent string
	timeout   time.Duration
)

func NewCommand() *cobra.Command {
	vexCli := &cobra.Command{
		Use:     "vex",
		Short:   "Vex CLI",
		Long:    "V2EX topic listings in the terminal",
		Example: fmt.Sprintf("  %s <command> [flags...]", os.Args[0]),
	}

	vexCli.PersistentFlags().StringVar(&baseURL, "base-url", model.BaseURL, "Listing site origin")
	viper.BindPFlag("base-url", vexCli.PersistentFlags().Lookup("base-url"))

	vexCli.PersistentFlags().StringVar(&proxy, "proxy", "", "Outbound HTTP proxy, e.g. http://127.0.0.1:7890")
	viper.BindPFlag("proxy", vexCli.PersistentFlags().Lookup("proxy"))

	vexCli.PersistentFlags().StringVar(&userAgent, "user-agent", "Mozilla", "User agent for listing requests")
	viper.BindPFlag("user-agent", vexCli.PersistentFlags().Lookup("user-agent"))

	vexCli.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Listing request timeout")
	viper.BindPFlag("timeout", vexCli.PersistentFlags().Lookup("timeout"))

	vexCli.AddCommand(browse.NewCommand())
	vexCli.AddCommand(topic.NewCommand())

	return vexCli
}
