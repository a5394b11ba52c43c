package fungex

import (
	"bufio"
	"io"
	"strings"
)

// Filter copies to w every line of r that m accepts, each followed by '\n'.
// Line terminators are not part of the matched text; a trailing '\r' is
// dropped as well. Lines have no length limit.
//
// Every accepted line is written to w as soon as it is read, so Filter
// can serve an interactive session. It returns the number of lines written.
func Filter(r io.Reader, w io.Writer, m Matcher) (int, error) {
	br := bufio.NewReader(r)

	n := 0
	for {
		line, err := br.ReadString('\n')
		if line == "" && err != nil {
			if err == io.EOF {
				return n, nil
			}
			return n, err
		}

		text := strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
		if m.MatchString(text) {
			if _, werr := io.WriteString(w, text+"\n"); werr != nil {
				return n, werr
			}
			n++
		}

		if err == io.EOF {
			return n, nil
		}
		if err != nil {
			return n, err
		}
	}
}
