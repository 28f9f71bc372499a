package cmdgif

import (
	"fmt"
	"strings"
)

// longOptions are the only long names accepted on the command line. -i has
// no long form.
var longOptions = []string{"help", "delay", "ofile", "extension"}

// valued lists options that consume an argument.
var valued = map[string]bool{"delay": true, "ofile": true, "extension": true, "i": true, "o": true}

// expandLongOptions rewrites every long option to its full name, accepting
// any unique prefix ("--ext=png" becomes "--extension=png"). Unknown and
// ambiguous names are errors. Scanning stops at "--" or the first operand,
// matching getopt.
func expandLongOptions(args []string, names []string) ([]string, error) {
	out := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--" || arg == "-" || !strings.HasPrefix(arg, "-"):
			return append(out, args[i:]...), nil
		case strings.HasPrefix(arg, "--"):
			name, value, hasValue := strings.Cut(arg[2:], "=")
			full, err := resolveLong(name, names)
			if err != nil {
				return nil, err
			}
			if hasValue {
				out = append(out, "--"+full+"="+value)
				continue
			}
			out = append(out, "--"+full)
			if valued[full] && i+1 < len(args) {
				i++
				out = append(out, args[i])
			}
		default:
			out = append(out, arg)
			// -o out.gif takes the next word; -oout.gif does not.
			for j := 1; j < len(arg); j++ {
				if valued[arg[j:j+1]] {
					if j == len(arg)-1 && i+1 < len(args) {
						i++
						out = append(out, args[i])
					}
					break
				}
			}
		}
	}
	return out, nil
}

func resolveLong(name string, names []string) (string, error) {
	var matches []string
	for _, n := range names {
		if n == name {
			return n, nil
		}
		if name != "" && strings.HasPrefix(n, name) {
			matches = append(matches, n)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("unknown flag: --%s", name)
	case 1:
		return matches[0], nil
	}
	return "", fmt.Errorf("flag --%s is ambiguous: %s", name, strings.Join(matches, ", "))
}
