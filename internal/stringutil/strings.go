// Package stringutil provides common string manipulation utilities.
package stringutil

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// Title capitalizes the first letter of each word, e.g. "monday" -> "Monday".
func Title(s string) string {
	return titleCaser.String(s)
}

// TitleFromSnake turns a snake_case key into a display name, e.g.
// "campus_security" -> "Campus Security".
func TitleFromSnake(key string) string {
	return Title(strings.ReplaceAll(key, "_", " "))
}
