package cli

import (
	"github.com/infoyouth/smartnews/internal/scaffold"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(scaffoldCmd)
}

var scaffoldCmd = &cobra.Command{
	Use:   "scaffold",
	Short: "Create the news project directory skeleton",
	Long: `Create the ai-driven-smart-news directory tree with empty placeholder
files in the current directory.

Directories are created before any file, missing paths are created, and
existing files keep their content untouched. Re-running against a fully
scaffolded tree changes nothing, so the command is always safe to repeat.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s := scaffold.New(afero.NewOsFs(), cmd.OutOrStdout())
		return s.Run(scaffold.DefaultPlan())
	},
}
