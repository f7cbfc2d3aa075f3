package selection

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"cxrextract/internal/logging"
	"cxrextract/internal/sequence"
)

// Terminal is an interactive selector backed by line-oriented prompts.
// Choices are printed as numbered lists; the user answers with indexes
// ("1,3"), "all", or an empty line for none.
type Terminal struct {
	in     *bufio.Scanner
	out    io.Writer
	logger *slog.Logger
}

// NewTerminal builds a terminal selector reading answers from in and writing
// prompts to out.
func NewTerminal(in io.Reader, out io.Writer, logger *slog.Logger) *Terminal {
	return &Terminal{
		in:     bufio.NewScanner(in),
		out:    out,
		logger: logging.NewComponentLogger(logger, "selection"),
	}
}

// SelectFiles narrows the collected entries. A single file is processed
// without prompting. With several sequences the user picks which sequences to
// process; with exactly one the user chooses the whole sequence or individual
// frames.
func (t *Terminal) SelectFiles(entries []sequence.Entry) ([]sequence.Entry, error) {
	if len(entries) <= 1 {
		return entries, nil
	}

	groups := sequence.Group(entries)
	names := sequence.Names(groups)

	if len(names) > 1 {
		picked, err := t.pickMany("Select sequences to process", names)
		if err != nil {
			return nil, err
		}
		if len(picked) == 0 {
			return nil, errors.New("no sequences selected")
		}
		var selected []sequence.Entry
		for _, idx := range picked {
			selected = append(selected, groups[names[idx]]...)
		}
		return selected, nil
	}

	frames := groups[names[0]]
	whole, err := t.pickYesNo("Process the entire sequence?")
	if err != nil {
		return nil, err
	}
	if whole {
		return frames, nil
	}

	labels := make([]string, len(frames))
	for i, frame := range frames {
		labels[i] = frame.DisplayID()
	}
	picked, err := t.pickMany("Select frames to process", labels)
	if err != nil {
		return nil, err
	}
	if len(picked) == 0 {
		return nil, errors.New("no frames selected")
	}
	selected := make([]sequence.Entry, 0, len(picked))
	for _, idx := range picked {
		selected = append(selected, frames[idx])
	}
	return selected, nil
}

// SelectLayers prompts once per sequence. The first choice is always "All"
// (the wildcard); answering nothing skips that sequence.
func (t *Terminal) SelectLayers(groups map[string][]sequence.Entry) (Selection, error) {
	result := make(Selection, len(groups))

	for _, name := range sequence.Names(groups) {
		frames := groups[name]
		available := frames[0].AvailableLayers
		choices := append([]string{"All"}, available...)

		picked, err := t.pickMany(fmt.Sprintf("Select elements to extract for sequence %q", name), choices)
		if err != nil {
			return nil, err
		}
		if len(picked) == 0 {
			t.logger.Warn("no elements selected, skipping sequence", logging.String(logging.FieldSequence, name))
			continue
		}

		if containsIndex(picked, 0) {
			result[name] = AllLayers()
			continue
		}
		layers := make([]string, 0, len(picked))
		for _, idx := range picked {
			layers = append(layers, choices[idx])
		}
		sel, err := Layers(layers)
		if err != nil {
			return nil, err
		}
		result[name] = sel
	}

	return result, nil
}

func (t *Terminal) pickMany(message string, choices []string) ([]int, error) {
	fmt.Fprintf(t.out, "\n%s\n", message)
	for i, choice := range choices {
		fmt.Fprintf(t.out, "  %d) %s\n", i+1, choice)
	}
	fmt.Fprint(t.out, "Enter numbers separated by commas (or \"all\", empty for none): ")

	line, err := t.readLine()
	if err != nil {
		return nil, err
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return nil, nil
	}
	if strings.EqualFold(line, "all") || line == "*" {
		indexes := make([]int, len(choices))
		for i := range choices {
			indexes[i] = i
		}
		return indexes, nil
	}

	var picked []int
	seen := make(map[int]struct{})
	for _, token := range strings.FieldsFunc(line, func(r rune) bool { return r == ',' || r == ' ' }) {
		n, err := strconv.Atoi(token)
		if err != nil || n < 1 || n > len(choices) {
			return nil, fmt.Errorf("invalid choice %q", token)
		}
		if _, dup := seen[n-1]; dup {
			continue
		}
		seen[n-1] = struct{}{}
		picked = append(picked, n-1)
	}
	return picked, nil
}

func (t *Terminal) pickYesNo(message string) (bool, error) {
	fmt.Fprintf(t.out, "\n%s [Y/n]: ", message)
	line, err := t.readLine()
	if err != nil {
		return false, err
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "", "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

func (t *Terminal) readLine() (string, error) {
	if !t.in.Scan() {
		if err := t.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return t.in.Text(), nil
}

func containsIndex(indexes []int, want int) bool {
	for _, idx := range indexes {
		if idx == want {
			return true
		}
	}
	return false
}
