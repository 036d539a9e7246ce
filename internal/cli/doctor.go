package cli

import (
	"fmt"
	"os"

	"github.com/infoyouth/smartnews/internal/discord"
	"github.com/infoyouth/smartnews/internal/newsconfig"
	"github.com/spf13/cobra"
)

var doctorConfigPath string

func init() {
	doctorCmd.Flags().StringVar(&doctorConfigPath, "config", newsconfig.DefaultPath, "Path to the source configuration file")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Health check for the news pipeline environment",
	Long: `Verify that the source configuration is present and valid and that the
API keys and webhook URL the pipeline needs are set. Doctor only reports,
it never fails the command.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		runConfigCheck(doctorConfigPath)
		runEnvCheck()
		return nil
	},
}

func runConfigCheck(path string) {
	fmt.Println("Configuration check:")

	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Printf("  [MISS] %s not found (run `smartnews scaffold` and fill it in)\n", path)
		return
	}

	result, err := newsconfig.Validate(data)
	if err != nil {
		fmt.Printf("  [FAIL] Cannot validate %s: %v\n", path, err)
		return
	}
	if !result.Valid {
		fmt.Printf("  [FAIL] %s is invalid:\n", path)
		for _, issue := range result.Issues {
			fmt.Printf("         - %s\n", issue.Message)
		}
		return
	}
	fmt.Printf("  [ OK ] %s is valid\n", path)

	cfg, err := newsconfig.Parse(data)
	if err != nil {
		fmt.Printf("  [FAIL] Cannot parse %s: %v\n", path, err)
		return
	}
	if len(cfg.Sources) == 0 {
		fmt.Printf("  [WARN] No sources declared\n")
		return
	}
	for _, src := range cfg.Sources {
		if src.APIKeyEnv == "" {
			fmt.Printf("  [WARN] %s: no api_key_env declared\n", src.Name)
			continue
		}
		if os.Getenv(src.APIKeyEnv) == "" {
			fmt.Printf("  [MISS] %s: %s is not set\n", src.Name, src.APIKeyEnv)
			continue
		}
		fmt.Printf("  [ OK ] %s: %s is set\n", src.Name, src.APIKeyEnv)
	}
}

func runEnvCheck() {
	fmt.Println("Environment check:")
	checkEnvVar(geminiKeyEnv, "required for process, post, and run")
	checkEnvVar(discord.WebhookEnvVar, "required to post; run and post skip Discord without it")
}

func checkEnvVar(name, hint string) {
	if os.Getenv(name) == "" {
		fmt.Printf("  [MISS] %s is not set (%s)\n", name, hint)
		return
	}
	fmt.Printf("  [ OK ] %s is set\n", name)
}
