// main.go
package main

import (
	"fmt"
	"os"

	"github.com/Satya20249/ai-channel-automation/config"
	"github.com/Satya20249/ai-channel-automation/worker"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "scriptgen <TOOL_NAME>",
	Short: "Generate a bilingual demo-video script manifest for an AI tool",
	Long: `scriptgen produces a JSON manifest describing a short demo video script
(English + Telugu) for the named AI tool. Tool names are deduplicated against
the history log and all previously written manifests; content comes from a
remote model when a credential is configured, otherwise from deterministic
local templates.`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	if err := cfg.EnsureDirs(); err != nil {
		return err
	}

	runner := worker.NewRunner(cfg)
	path, err := runner.Run(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	fmt.Println("WROTE", path)
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
