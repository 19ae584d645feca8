// Package model contains data structures for the resolved search parameters, search modes and DTO of the search node
package model

import "fmt"

// Mode - стратегия поиска, выбирается один раз при разборе конфигурации
type Mode int

const (
	ModeLiteral Mode = iota
	ModeCaseInsensitive
	ModeRegex
)

func (m Mode) String() string {
	switch m {
	case ModeLiteral:
		return "literal"
	case ModeCaseInsensitive:
		return "case-insensitive"
	case ModeRegex:
		return "regex"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// SearchConfig - хранит параметры одного запуска поиска
type SearchConfig struct {
	Query      string // строка или регулярка для поиска, пустая строка совпадает с любой строкой
	FilePath   string // файл для чтения данных
	IgnoreCase bool   // IGNORE_CASE — игнорировать регистр
	UseRegex   bool   // REGEX — query является регулярным выражением
}

// Mode resolves the flags into one strategy. Regex wins over IgnoreCase.
func (c SearchConfig) Mode() Mode {
	switch {
	case c.UseRegex:
		return ModeRegex
	case c.IgnoreCase:
		return ModeCaseInsensitive
	default:
		return ModeLiteral
	}
}

// SearchTask - задание, получаемое search-node по HTTP
type SearchTask struct {
	TaskID     string `json:"tid"`
	Query      string `json:"query"`
	Content    string `json:"content"`
	IgnoreCase bool   `json:"ignore_case"`
	UseRegex   bool   `json:"regex"`
}

// Config converts the task into search parameters. FilePath stays empty: content arrives in the body.
func (t *SearchTask) Config() SearchConfig {
	return SearchConfig{
		Query:      t.Query,
		IgnoreCase: t.IgnoreCase,
		UseRegex:   t.UseRegex,
	}
}

type SearchResult struct {
	TaskID   string   `json:"tid"`
	HashSumm uint64   `json:"hash"`
	Output   []string `json:"output"`
}

type ErrorResponse struct {
	TaskID string `json:"tid,omitempty"`
	Error  string `json:"error"`
}
