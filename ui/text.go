package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/logrusorgru/aurora"
)

var au = Color(os.Stdout)

// Color returns an aurora instance that only emits escape codes when w is a
// terminal and NO_COLOR is unset.
func Color(w io.Writer) aurora.Aurora {
	_, noColor := os.LookupEnv("NO_COLOR")
	return aurora.NewAurora(!noColor && IsTerminal(w))
}

func Bold(text string) string {
	return au.Sprintf(au.Bold(text))
}

func RedText(text string) aurora.Value {
	return au.Red(text)
}

func CyanText(text string) aurora.Value {
	return au.Cyan(text)
}

// Plural returns "<count> <noun>" choosing between the singular and plural
// spelling.
func Plural(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}
