package main

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// vertexArgsAnnotation marks commands whose positional arguments are
// coordinates, so tokens such as -1 or -1,0 are values, not shorthand flags.
const vertexArgsAnnotation = "polyprops/vertex-args"

// normalizeArgs moves negative numbers given to a vertex command behind a
// "--" terminator so pflag does not parse them as flags. Flags and their
// values keep their order; everything after an existing "--" is kept as is.
func normalizeArgs(root *cobra.Command, args []string) []string {
	var (
		sub        *cobra.Command
		head, tail []string
		negative   bool
	)
	for i := 0; i < len(args); i++ {
		a := args[i]
		switch {
		case a == "--":
			tail = append(tail, args[i+1:]...)
			i = len(args)
		case sub != nil && isNegativeNumber(a):
			negative = true
			tail = append(tail, a)
		case strings.HasPrefix(a, "-") && len(a) > 1:
			head = append(head, a)
			if takesValue(flagsFor(root, sub), a) && i+1 < len(args) {
				i++
				head = append(head, args[i])
			}
		case sub == nil:
			sub = subcommand(root, a)
			if sub == nil || sub.Annotations[vertexArgsAnnotation] == "" {
				return args
			}
			head = append(head, a)
		default:
			tail = append(tail, a)
		}
	}
	if !negative {
		return args
	}
	out := append(head, "--")
	return append(out, tail...)
}

// isNegativeNumber reports whether a starts with a negative number,
// alone or as the first value of a comma separated list.
func isNegativeNumber(a string) bool {
	if !strings.HasPrefix(a, "-") {
		return false
	}
	first, _, _ := strings.Cut(a, ",")
	_, err := strconv.ParseFloat(first, 64)
	return err == nil
}

func subcommand(root *cobra.Command, name string) *cobra.Command {
	for _, c := range root.Commands() {
		if c.Name() == name || c.HasAlias(name) {
			return c
		}
	}
	return nil
}

func flagsFor(root, sub *cobra.Command) *pflag.FlagSet {
	fs := pflag.NewFlagSet("", pflag.ContinueOnError)
	fs.AddFlagSet(root.PersistentFlags())
	if sub != nil {
		fs.AddFlagSet(sub.Flags())
	}
	return fs
}

// takesValue reports whether flag token a consumes the following token.
func takesValue(fs *pflag.FlagSet, a string) bool {
	if strings.Contains(a, "=") {
		return false
	}
	var f *pflag.Flag
	switch {
	case strings.HasPrefix(a, "--"):
		f = fs.Lookup(a[2:])
	case len(a) == 2:
		f = fs.ShorthandLookup(a[1:])
	}
	return f != nil && f.NoOptDefVal == ""
}
