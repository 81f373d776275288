package layout

import (
	"time"

	"github.com/arthur-debert/layout/pkg/config"
	"github.com/arthur-debert/layout/pkg/errors"
	"github.com/arthur-debert/layout/pkg/logging"
	"github.com/arthur-debert/layout/pkg/reconcile"
	"github.com/arthur-debert/layout/pkg/remotefs"
	"github.com/arthur-debert/layout/pkg/treefile"
	"github.com/arthur-debert/layout/pkg/types"
	"github.com/arthur-debert/layout/pkg/ui/display"
	"github.com/spf13/cobra"
)

func newApplyCmd(g *globalOptions) *cobra.Command {
	var (
		root           string
		dryRun         bool
		createMissing  bool
		rejectSymlinks bool
		example        bool
	)

	cmd := &cobra.Command{
		Use:     "apply [tree-file]",
		Short:   MsgApplyShort,
		Long:    MsgApplyLong,
		Example: MsgApplyExample,
		Args:    cobra.MaximumNArgs(1),
		GroupID: "core",

		ValidArgsFunction: treeFileCompletion,
		RunE: func(cmd *cobra.Command, args []string) error {
			overrides := map[string]interface{}{}
			override(cmd, overrides, "root", "layout.root", root)
			override(cmd, overrides, "create-missing", "layout.create_missing", createMissing)
			override(cmd, overrides, "reject-symlinks", "layout.reject_symlinks", rejectSymlinks)

			cfg, err := loadConfig(g, overrides)
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			if err := cfg.RequireRoot(); err != nil {
				return err
			}

			tree, source, err := resolveTree(cfg, args, example)
			if err != nil {
				return err
			}

			result, err := runApply(cfg, tree, dryRun)
			if err != nil {
				return err
			}
			result.Tree = source
			return render(cmd, g, result)
		},
	}

	cmd.Flags().StringVarP(&root, "root", "r", "", MsgFlagRoot)
	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, MsgFlagDryRun)
	cmd.Flags().BoolVar(&createMissing, "create-missing", false, MsgFlagCreateMissing)
	cmd.Flags().BoolVar(&rejectSymlinks, "reject-symlinks", false, MsgFlagRejectSymlinks)
	cmd.Flags().BoolVar(&example, "example", false, MsgFlagExample)

	return cmd
}

// runApply connects, reconciles and describes the outcome
func runApply(cfg *config.Config, tree *types.Entry, dryRun bool) (*display.ApplyResult, error) {
	logger := logging.GetLogger("apply")

	remote, closer, err := remotefs.Open(cfg.Remote)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := closer.Close(); cerr != nil {
			logger.Warn().Err(cerr).Msg("Closing remote failed")
		}
	}()

	if dryRun {
		remote = remotefs.NewDryRunFS(remote)
	}

	r := reconcile.New(remote,
		reconcile.WithPolicy(reconcile.Policy{
			CreateMissing:  cfg.Layout.CreateMissing,
			RejectSymlinks: cfg.Layout.RejectSymlinks,
		}),
		reconcile.WithObserver(logging.NewObserver(logger)),
	)

	res, err := r.Reconcile(cfg.Layout.Root, tree)
	if err != nil {
		return nil, err
	}

	return &display.ApplyResult{
		Root:      res.Root,
		Mode:      res.Mode.String(),
		Created:   res.Created,
		Paths:     res.CreatedPaths,
		DryRun:    dryRun,
		Timestamp: time.Now(),
	}, nil
}

// treeFileCompletion completes tree file arguments by extension
func treeFileCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return []string{"yaml", "yml", "toml", "xml"}, cobra.ShellCompDirectiveFilterFileExt
}

// resolveTree picks the tree from --example, the argument or layout.tree_file
func resolveTree(cfg *config.Config, args []string, example bool) (*types.Entry, string, error) {
	if example {
		tree := treefile.Example()
		return tree, tree.Name, nil
	}

	path := cfg.Layout.TreeFile
	if len(args) > 0 {
		path = args[0]
	}
	if path == "" {
		return nil, "", errors.New(errors.ErrInvalidInput, MsgNoTreeSpecified)
	}

	tree, err := treefile.Load(path)
	if err != nil {
		return nil, "", err
	}
	return tree, path, nil
}
