package main

import (
	"fmt"
	"strings"
)

type globalOptions struct {
	trace bool
}

func parseGlobalFlags(args []string) (globalOptions, []string, error) {
	var opts globalOptions
	remaining := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			remaining = append(remaining, args[i+1:]...)
			break
		}
		switch {
		case arg == "--trace":
			opts.trace = true
		case strings.HasPrefix(arg, "--trace="):
			value := strings.ToLower(strings.TrimPrefix(arg, "--trace="))
			switch value {
			case "true", "1", "on":
				opts.trace = true
			case "false", "0", "off":
				opts.trace = false
			default:
				return opts, nil, fmt.Errorf("unknown --trace value '%s' (expected on or off)", value)
			}
		default:
			remaining = append(remaining, arg)
		}
	}
	return opts, remaining, nil
}
