// speakdo turns natural-language transcripts into structured, queryable
// task records.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sangam0207/SpeakDo-Task-Tracker/version"
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// newRootCmd creates the root command.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "speakdo",
		Short: "Voice-to-task tracker backend",
	}

	rootCmd.AddCommand(
		newServeCommand(),
		newVersionCommand(),
	)

	return rootCmd
}

// newVersionCommand creates the version command.
func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			info := version.GetVersionInfo()
			fmt.Println("Version:", info.Version)
			fmt.Println("Revision:", info.Revision)
			fmt.Println("Built At:", info.BuiltAt)
			fmt.Println("Go Version:", info.GoVersion)
		},
	}
}
