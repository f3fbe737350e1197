// Package flagx helps several loaders share one command line. Each loader
// keeps only the flags it owns and parses them with its own FlagSet.
package flagx

import (
	"flag"
	"io"
	"strings"
)

// FilterArgs returns the arguments in args that belong to allowedFlags,
// with their values.
//
// Both "-f value" and "-f=value" forms are recognized. A token following an
// allowed flag is taken as its value unless it starts with '-'. The result
// is never nil.
func FilterArgs(args []string, allowedFlags []string) []string {
	allowed := make(map[string]struct{}, len(allowedFlags))
	for _, f := range allowedFlags {
		allowed[f] = struct{}{}
	}

	filtered := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]

		if name, _, found := strings.Cut(arg, "="); found && strings.HasPrefix(arg, "-") {
			if _, ok := allowed[name]; ok {
				filtered = append(filtered, arg)
			}
			continue
		}

		if _, ok := allowed[arg]; !ok {
			continue
		}
		filtered = append(filtered, arg)
		if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			filtered = append(filtered, args[i+1])
			i++
		}
	}
	return filtered
}

// ConfigPath returns the JSON config file named by -c or -config in args,
// or "" when neither is given. When both appear the last one wins.
func ConfigPath(args []string) (string, error) {
	var path string

	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&path, "config", "", "path to config file")
	fs.StringVar(&path, "c", "", "path to config file (short)")

	if err := fs.Parse(FilterArgs(args, []string{"-c", "-config", "--config"})); err != nil {
		return "", err
	}
	return path, nil
}
