// Package reader loads the whole input file into memory before the search starts
package reader

import (
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/UnendingLoop/minigrep/internal/model"
)

// ReadFile returns the file content as text. Directories and content that is not valid UTF-8 are errors.
func ReadFile(fileName string) (string, error) {
	// проверяем открывается ли файл
	info, err := os.Stat(fileName)
	if err != nil {
		return "", fmt.Errorf("error opening file %q: %w", fileName, err)
	}
	// проверяем не папка ли это
	if info.IsDir() {
		return "", fmt.Errorf("specified source filename %q is a directory", fileName)
	}

	data, err := os.ReadFile(fileName)
	if err != nil {
		return "", fmt.Errorf("couldn't read file %q: %w", fileName, err)
	}

	// бинарный или битый файл - ошибка, а не пустой результат
	if !utf8.Valid(data) {
		return "", fmt.Errorf("file %q: %w", fileName, model.ErrInvalidEncoding)
	}

	return string(data), nil
}
