package config

import (
	"strings"
)

// GenerateConfigContent returns the defaults with every value commented out.
// Each value line ends with the environment variable that overrides it.
func GenerateConfigContent() string {
	return commentOutConfigValues(GetDefaultsContent())
}

// EnvVarName returns the environment variable Load reads for section.key:
// EnvVarName("remote", "host_root") is LAYOUT_REMOTE__HOST_ROOT.
func EnvVarName(section, key string) string {
	name := key
	if section != "" {
		name = section + "." + key
	}
	return EnvPrefix + strings.ToUpper(strings.ReplaceAll(name, ".", "__"))
}

// commentOutConfigValues comments out assignment lines, keeping comments,
// blank lines and table headers as they are
func commentOutConfigValues(content string) string {
	var (
		out     []string
		section string
	)
	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == "" || strings.HasPrefix(trimmed, "#"):
			out = append(out, line)
		case strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]"):
			section = strings.Trim(trimmed, "[]")
			out = append(out, line)
		default:
			out = append(out, "# "+line+envHint(section, trimmed))
		}
	}
	return strings.Join(out, "\n")
}

func envHint(section, assignment string) string {
	key, _, ok := strings.Cut(assignment, "=")
	if !ok {
		return ""
	}
	return "  # " + EnvVarName(section, strings.TrimSpace(key))
}
