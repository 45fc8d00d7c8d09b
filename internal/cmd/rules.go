package cmd

import (
	"fmt"
	"os"

	"github.com/reposafety/reposafety/pkg/git"
	"github.com/spf13/cobra"
)

// NewRulesCmd lists the active secret rules, including any loaded from the
// repo config file, so users can verify what the gate enforces.
func NewRulesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "List the active secret detection rules",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := git.RepoRoot()
			if err != nil {
				return err
			}

			_, rules, err := loadConfiguredRules(root)
			if err != nil {
				return err
			}

			for _, rule := range rules {
				fmt.Fprintf(os.Stdout, "%s: %s\n", rule.Name, rule.Regex.String())
			}
			return nil
		},
	}
}
