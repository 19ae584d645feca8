// Package processor runs the resolved matcher over content lines and builds results for the CLI and the search node
package processor

import (
	"context"
	"strings"

	"github.com/UnendingLoop/minigrep/internal/matcher"
	"github.com/UnendingLoop/minigrep/internal/model"
	"github.com/cespare/xxhash/v2"
)

// SplitLines splits content on "\n" and strips one trailing "\r" per line.
// A terminal line break does not produce an empty last line; empty content yields no lines.
// Returned lines are substrings of content.
func SplitLines(content string) []string {
	if content == "" {
		return nil
	}
	content = strings.TrimSuffix(content, "\n")

	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// Search resolves the strategy for cfg and returns matching lines of content in their original order.
// Safe for concurrent use: every call builds its own matcher.
func Search(cfg model.SearchConfig, content string) ([]string, error) {
	m, err := matcher.New(cfg)
	if err != nil {
		return nil, err
	}
	return SearchWith(m, content), nil
}

// SearchWith applies m exactly once per line.
func SearchWith(m *matcher.Matcher, content string) []string {
	result := []string{}
	for _, line := range SplitLines(content) {
		if m.Match(line) {
			result = append(result, line)
		}
	}
	return result
}

type Processor struct{}

// ProcessInput runs one task of the search node. Cancellation of ctx is checked between lines.
func (p Processor) ProcessInput(ctx context.Context, task *model.SearchTask) (*model.SearchResult, error) {
	m, err := matcher.New(task.Config())
	if err != nil {
		return nil, err
	}

	output := []string{}
	for _, line := range SplitLines(task.Content) {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
			if m.Match(line) {
				output = append(output, line)
			}
		}
	}

	return &model.SearchResult{
		TaskID:   task.TaskID,
		Output:   output,
		HashSumm: Hash(output),
	}, nil
}

// Hash is xxhash64 over the output lines, each followed by "\n",
// so ["ab"] and ["a", "b"] hash differently.
func Hash(lines []string) uint64 {
	hs := xxhash.New()
	for _, s := range lines {
		_, _ = hs.WriteString(s)
		_, _ = hs.WriteString("\n")
	}
	return hs.Sum64()
}
