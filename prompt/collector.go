package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/add-editorconfig/editorconfig"
	"github.com/charmbracelet/log"
)

// Collect asks every question in Fields on w and reads one line per answer
// from r, starting from base. Unrecognized or empty answers keep the value
// from base. Once r is exhausted the remaining fields keep their values too.
// Only read errors other than io.EOF are returned.
func Collect(r io.Reader, w io.Writer, base editorconfig.Settings) (editorconfig.Settings, error) {
	s := base
	br := bufio.NewReader(r)
	eof := false

	_, _ = fmt.Fprintln(w, "Fill the config with the provided options.")
	_, _ = fmt.Fprintln(w, "Entering nothing will set the parameter to its default value.")
	_, _ = fmt.Fprintln(w)

	for _, f := range Fields {
		_, _ = fmt.Fprint(w, f.Prompt)

		var answer string
		if !eof {
			line, err := br.ReadString('\n')
			switch {
			case errors.Is(err, io.EOF):
				eof = true
			case err != nil:
				return base, fmt.Errorf("unable to read answer for %s: %w", f.Key, err)
			}
			answer = line
		}

		if !f.Apply(&s, answer) {
			log.Debug("keeping default", "key", f.Key, "answer", answer, "value", f.Value(s))
		}
	}

	_, _ = fmt.Fprintln(w)
	return s, nil
}
