package layout

import (
	"fmt"

	"github.com/arthur-debert/layout/pkg/guard"
	"github.com/arthur-debert/layout/pkg/logging"
	"github.com/arthur-debert/layout/pkg/remotefs"
	"github.com/arthur-debert/layout/pkg/ui/display"
	"github.com/spf13/cobra"
)

func newCheckCmd(g *globalOptions) *cobra.Command {
	var hostRoot string

	cmd := &cobra.Command{
		Use:     "check <path>",
		Short:   MsgCheckShort,
		Long:    MsgCheckLong,
		Example: MsgCheckExample,
		Args:    cobra.ExactArgs(1),
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			overrides := map[string]interface{}{}
			override(cmd, overrides, "host-root", "remote.host_root", hostRoot)

			cfg, err := loadConfig(g, overrides)
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			logger := logging.GetLogger("check")
			remote, closer, err := remotefs.Open(cfg.Remote)
			if err != nil {
				return err
			}
			defer func() { _ = closer.Close() }()

			checker := guard.New(remote, cfg.Remote.HostRoot, guard.WithObserver(logging.NewObserver(logger)))
			regular, err := checker.IsRegularFolder(args[0])
			if err != nil {
				return err
			}

			if err := render(cmd, g, &display.CheckResult{
				Path:     args[0],
				HostRoot: cfg.Remote.HostRoot,
				Regular:  regular,
			}); err != nil {
				return err
			}
			if !regular {
				return &exitError{code: 1, msg: fmt.Sprintf(MsgNotRegular, args[0])}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&hostRoot, "host-root", "", MsgFlagHostRoot)
	return cmd
}
