// Package parser puts positional arguments and environment toggles into SearchConfig structure and validates it
package parser

import (
	"os"

	"github.com/UnendingLoop/minigrep/internal/model"
)

const (
	EnvIgnoreCase = "IGNORE_CASE"
	EnvRegex      = "REGEX"
)

// LookupFunc has the signature of os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// Build assembles SearchConfig from positional args: query first, file path second.
// Extra args are ignored.
func Build(args []string, ignoreCase, useRegex bool) (model.SearchConfig, error) {
	// разбираемся с паттерном и входом
	switch len(args) {
	case 0:
		return model.SearchConfig{}, model.ErrMissingQuery
	case 1:
		return model.SearchConfig{}, model.ErrMissingFilePath
	}

	return model.SearchConfig{
		Query:      args[0],
		FilePath:   args[1],
		IgnoreCase: ignoreCase,
		UseRegex:   useRegex,
	}, nil
}

// FromEnv is Build with the flags taken from IGNORE_CASE and REGEX.
// Presence of a variable enables the flag, its value is not inspected.
func FromEnv(args []string, lookup LookupFunc) (model.SearchConfig, error) {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	_, ignoreCase := lookup(EnvIgnoreCase)
	_, useRegex := lookup(EnvRegex)

	return Build(args, ignoreCase, useRegex)
}
