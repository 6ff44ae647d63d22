package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dataroom/cli/internal/output"
)

// Version is the CLI version, injected at build time:
//
//	go build -ldflags "-X github.com/dataroom/cli/cmd.Version=1.2.3"
var Version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show CLI version",
	RunE: func(cmd *cobra.Command, args []string) error {
		if flagJSON {
			output.JSON(map[string]string{"cliVersion": Version})
			return nil
		}
		fmt.Println("dataroom", Version)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
