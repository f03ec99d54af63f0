package cli

import (
	"strings"

	"github.com/spf13/cobra"
)

// clauseKeywords maps clause flag names to the keyword prepended to their
// value before classification.
var clauseKeywords = map[string]string{
	"where":      "WHERE",
	"and":        "AND",
	"or":         "OR",
	"join":       "JOIN",
	"left-join":  "LEFT JOIN",
	"right-join": "RIGHT JOIN",
	"inner-join": "INNER JOIN",
	"group-by":   "GROUP BY",
	"order-by":   "ORDER BY",
	"limit":      "LIMIT",
	"offset":     "OFFSET",
}

// clauseFlagOrder fixes the registration order so --help output is stable.
var clauseFlagOrder = []string{
	"where", "and", "or", "join", "left-join", "right-join", "inner-join",
	"group-by", "order-by", "limit", "offset",
}

// registerClauseFlags declares each clause flag as a repeatable string so
// cobra parses and documents them; their values are consumed positionally
// from the raw argv by collectClauses.
func registerClauseFlags(cmd *cobra.Command) {
	help := map[string]string{
		"where":      "append a WHERE condition",
		"and":        "append a condition with AND",
		"or":         "append a condition with OR",
		"join":       "append a JOIN clause",
		"left-join":  "append a LEFT JOIN clause",
		"right-join": "append a RIGHT JOIN clause",
		"inner-join": "append an INNER JOIN clause",
		"group-by":   "append a GROUP BY expression",
		"order-by":   "append an ORDER BY expression",
		"limit":      "set the LIMIT",
		"offset":     "set the OFFSET",
	}
	for _, name := range clauseFlagOrder {
		cmd.Flags().StringArray(name, nil, help[name])
	}
}

// collectClauses walks the raw argv and returns one keyword-prefixed
// fragment per clause flag, preserving command-line order across different
// flags. Both "--flag value" and "--flag=value" spellings are handled;
// scanning stops at a bare "--".
func collectClauses(rawArgs []string) []string {
	var fragments []string
	for i := 0; i < len(rawArgs); i++ {
		arg := rawArgs[i]
		if arg == "--" {
			break
		}
		if !strings.HasPrefix(arg, "--") {
			continue
		}
		name, value, hasValue := strings.Cut(arg[2:], "=")
		keyword, ok := clauseKeywords[name]
		if !ok {
			continue
		}
		if !hasValue {
			if i+1 >= len(rawArgs) {
				// Missing value: cobra reports this as a flag error.
				break
			}
			i++
			value = rawArgs[i]
		}
		fragments = append(fragments, keyword+" "+value)
	}
	return fragments
}
