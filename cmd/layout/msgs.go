package layout

import (
	"embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Keep a remote directory tree in line with its description"
	MsgApplyShort      = "Create or verify a tree below a remote root"
	MsgCheckShort      = "Check that a remote path is a regular folder"
	MsgShowShort       = "Show or convert a tree file"
	MsgGenConfigShort  = "Print a commented configuration template"
	MsgGenConfigLong   = "Print the default configuration with every value commented out.\n\nWith -w, write it to ~/.config/layout/layout.toml instead."
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Status messages
	MsgConfigWritten   = "Wrote %s"
	MsgVersionFormat   = "layout version %s\n  commit: %s\n  built:  %s\n"
	MsgNotRegular      = "%s is not a regular folder"
	MsgNoTreeSpecified = "no tree file given (pass one, set layout.tree_file, or use --example)"

	// Error messages
	MsgErrConfigExists = "%s already exists (use --force to overwrite)"
	MsgErrNoCommand    = "no command specified"

	// Flag descriptions
	MsgFlagVerbose        = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig         = "Configuration file (.toml, .yaml or .yml)"
	MsgFlagFormat         = "Output format: auto, term, text or json"
	MsgFlagRoot           = "Remote root directory the tree is placed under"
	MsgFlagDryRun         = "Preview changes without executing them"
	MsgFlagCreateMissing  = "Create missing entries below an existing root"
	MsgFlagRejectSymlinks = "Fail when an entry below an existing root is a symbolic link"
	MsgFlagExample        = "Use the built-in example tree"
	MsgFlagHostRoot       = "Directory the checked path is resolved below"
	MsgFlagAs             = "Print the tree encoded as yaml, toml or xml"
	MsgFlagWrite          = "Write the template to the user configuration file"
	MsgFlagForce          = "Overwrite an existing configuration file"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/apply-long.txt
	msgApplyLongRaw string
	MsgApplyLong    = strings.TrimSpace(msgApplyLongRaw)

	//go:embed msgs/apply-example.txt
	msgApplyExampleRaw string
	MsgApplyExample    = strings.TrimRight(msgApplyExampleRaw, "\n")

	//go:embed msgs/check-long.txt
	msgCheckLongRaw string
	MsgCheckLong    = strings.TrimSpace(msgCheckLongRaw)

	//go:embed msgs/check-example.txt
	msgCheckExampleRaw string
	MsgCheckExample    = strings.TrimRight(msgCheckExampleRaw, "\n")

	//go:embed msgs/show-long.txt
	msgShowLongRaw string
	MsgShowLong    = strings.TrimSpace(msgShowLongRaw)

	//go:embed msgs/show-example.txt
	msgShowExampleRaw string
	MsgShowExample    = strings.TrimRight(msgShowExampleRaw, "\n")

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	MsgUsageTemplate string
)

//go:embed topics
var topicFiles embed.FS
