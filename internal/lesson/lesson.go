// Package lesson holds the basics walkthrough: a fixed sequence of small
// demonstrations (printing, bindings, branching, a counted loop, a function
// call) that together produce a deterministic block of output.
package lesson

import (
	"fmt"
	"io"
	"strings"
)

// Separator is the line emitted between sections.
const Separator = "--------------"

// DefaultName is the name the final step greets.
const DefaultName = "Rustacean"

func Greeting(w io.Writer) error {
	if _, err := fmt.Fprintln(w, "Hello, world!"); err != nil {
		return fmt.Errorf("error writing greeting: %w", err)
	}
	return nil
}

// Arithmetic declares an immutable binding and a mutable one, increments the
// mutable one, and emits both.
func Arithmetic(w io.Writer) error {
	const x = 5
	y := 10
	y += 5

	if _, err := fmt.Fprintf(w, "x: %d, y: %d\n", x, y); err != nil {
		return fmt.Errorf("error writing arithmetic line: %w", err)
	}
	return nil
}

// Branch emits "Single digit" when number is strictly below 10, otherwise
// "Double digit". The comparison is evaluated on every call.
func Branch(w io.Writer, number int) error {
	var err error
	if number < 10 {
		_, err = fmt.Fprintln(w, "Single digit")
	} else {
		_, err = fmt.Fprintln(w, "Double digit")
	}

	if err != nil {
		return fmt.Errorf("error writing branch line: %w", err)
	}
	return nil
}

// Loop counts over the inclusive range [from, to], one line per value. An
// empty range (from > to) emits nothing.
func Loop(w io.Writer, from, to int) error {
	for i := from; i <= to; i++ {
		if _, err := fmt.Fprintf(w, "Number: %d\n", i); err != nil {
			return fmt.Errorf("error writing loop line: %w", err)
		}
	}
	return nil
}

// Greet emits one greeting line for name. The name is interpolated verbatim,
// empty strings included.
func Greet(w io.Writer, name string) error {
	if _, err := fmt.Fprintf(w, "Hello, %s!\n", name); err != nil {
		return fmt.Errorf("error writing greeting for %q: %w", name, err)
	}
	return nil
}

// Run executes every step in order, separator lines between them, streaming
// to w.
func Run(w io.Writer) error {
	for i, step := range Steps() {
		if i > 0 {
			if _, err := fmt.Fprintln(w, Separator); err != nil {
				return fmt.Errorf("error writing separator: %w", err)
			}
		}

		if err := step.Run(w); err != nil {
			return err
		}
	}

	return nil
}

// Transcript renders the first n steps the way Run would emit them. Passing
// len(Steps()) or more yields the full output.
func Transcript(n int) (string, error) {
	steps := Steps()
	if n > len(steps) {
		n = len(steps)
	}

	sb := strings.Builder{}
	for i := 0; i < n; i++ {
		if i > 0 {
			fmt.Fprintln(&sb, Separator)
		}
		if err := steps[i].Run(&sb); err != nil {
			return "", fmt.Errorf("error building transcript: %w", err)
		}
	}

	return sb.String(), nil
}
