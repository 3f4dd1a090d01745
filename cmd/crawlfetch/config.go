package main

import (
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/alecthomas/kong"
)

// configPath finds the --config flag value in raw args, ahead of kong
// parsing, so the file can feed defaults into the parser itself.
func configPath(args []string) string {
	for i, arg := range args {
		if arg == "--config" && i+1 < len(args) {
			return args[i+1]
		}
		if v, ok := strings.CutPrefix(arg, "--config="); ok {
			return v
		}
	}
	return ""
}

// tomlResolver builds a kong resolver that supplies flag defaults from
// a TOML file. Keys match flag names, e.g.:
//
//	depth = 3
//	rps = 0.5
//	markdown = true
func tomlResolver(path string) (kong.Resolver, error) {
	values := make(map[string]any)
	if _, err := toml.DecodeFile(path, &values); err != nil {
		return nil, err
	}

	return kong.ResolverFunc(func(context *kong.Context, parent *kong.Path, flag *kong.Flag) (any, error) {
		if v, ok := values[flag.Name]; ok {
			return v, nil
		}
		return nil, nil
	}), nil
}
