package layout

import (
	"github.com/arthur-debert/layout/pkg/treefile"
	"github.com/arthur-debert/layout/pkg/ui/display"
	"github.com/spf13/cobra"
)

func newShowCmd(g *globalOptions) *cobra.Command {
	var (
		example bool
		as      string
	)

	cmd := &cobra.Command{
		Use:     "show [tree-file]",
		Short:   MsgShowShort,
		Long:    MsgShowLong,
		Example: MsgShowExample,
		Args:    cobra.MaximumNArgs(1),
		GroupID: "core",

		ValidArgsFunction: treeFileCompletion,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(g, nil)
			if err != nil {
				return err
			}
			tree, source, err := resolveTree(cfg, args, example)
			if err != nil {
				return err
			}

			if as != "" {
				format, err := treefile.ParseFormat(as)
				if err != nil {
					return err
				}
				data, err := treefile.Marshal(tree, format)
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}

			return render(cmd, g, &display.TreeView{Source: source, Tree: tree})
		},
	}

	cmd.Flags().BoolVar(&example, "example", false, MsgFlagExample)
	cmd.Flags().StringVar(&as, "as", "", MsgFlagAs)
	_ = cmd.RegisterFlagCompletionFunc("as", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"yaml", "toml", "xml"}, cobra.ShellCompDirectiveNoFileComp
	})
	return cmd
}
