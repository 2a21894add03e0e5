// Package flagx lets several independent flag sets share os.Args: each
// parser first filters the arguments down to the flags it owns.
package flagx

import (
	"flag"
	"io"
	"os"
	"strings"
)

// flagName strips one or two leading dashes. It returns "" for tokens that
// are not flags, including a bare "-" and the "--" terminator.
func flagName(arg string) string {
	if !strings.HasPrefix(arg, "-") {
		return ""
	}
	name := strings.TrimPrefix(strings.TrimPrefix(arg, "-"), "-")
	if name == "" {
		return ""
	}
	if i := strings.IndexByte(name, '='); i >= 0 {
		name = name[:i]
	}
	return name
}

// FilterArgs returns the arguments that belong to the named flags, with
// their values, in their original order.
//
// names are bare flag names ("c", "config"); both -name and --name spellings
// match, as the flag package accepts both. Supported forms:
//
//	-c conf.json
//	--config=conf.json
//
// A value is taken from the next argument only when it does not itself look
// like a flag. Parsing stops at "--".
func FilterArgs(args []string, names []string) []string {
	allowed := make(map[string]struct{}, len(names))
	for _, n := range names {
		allowed[strings.TrimLeft(n, "-")] = struct{}{}
	}

	filtered := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			break
		}

		name := flagName(arg)
		if name == "" {
			continue
		}
		if _, ok := allowed[name]; !ok {
			continue
		}

		filtered = append(filtered, arg)
		if strings.Contains(arg, "=") {
			continue
		}
		if i+1 < len(args) && flagName(args[i+1]) == "" && args[i+1] != "--" {
			filtered = append(filtered, args[i+1])
			i++
		}
	}

	return filtered
}

// ConfigFileFlag returns the configuration file path given with -c or
// -config, or "" when neither is present. Other arguments are ignored.
func ConfigFileFlag() string {
	var path string

	args := FilterArgs(os.Args[1:], []string{"c", "config"})

	fs := flag.NewFlagSet("config-file", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&path, "config", "", "path to config file")
	fs.StringVar(&path, "c", "", "path to config file (short)")
	_ = fs.Parse(args)

	return path
}
