package shell

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Entry is one command parsed from a shell history file. EnteredOn is zero
// when the source format carries no timestamp (plain bash history).
type Entry struct {
	Cmd       string
	EnteredOn time.Time
}

// zsh extended history format: ": <epoch>:<duration>;<command>".
var zshExtendedRe = regexp.MustCompile(`^:\s*(\d+):(\d+);(.*)$`)

const maxHistoryLine = 1 << 20

// ParseHistory reads a bash or zsh history stream. Lines matching the zsh
// extended format keep their recorded epoch; anything else is treated as a
// plain command line. A line ending in a backslash continues on the next
// line (zsh stores embedded newlines that way), rejoined with a newline.
// Empty lines and comment lines are skipped.
func ParseHistory(r io.Reader) ([]Entry, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxHistoryLine)

	var entries []Entry

	for scanner.Scan() {
		line := scanner.Text()

		var when time.Time

		if m := zshExtendedRe.FindStringSubmatch(line); m != nil {
			epoch, err := strconv.ParseInt(m[1], 10, 64)
			if err == nil {
				when = time.Unix(epoch, 0)
			}

			line = m[3]
		}

		for strings.HasSuffix(line, `\`) && scanner.Scan() {
			line = strings.TrimSuffix(line, `\`) + "\n" + scanner.Text()
		}

		cmd := strings.TrimSpace(line)
		if cmd == "" || strings.HasPrefix(cmd, "#") {
			continue
		}

		entries = append(entries, Entry{Cmd: cmd, EnteredOn: when})
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cannot read history: %w", err)
	}

	return entries, nil
}

// ParseHistoryFile parses the history file at path.
func ParseHistoryFile(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open history file %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	entries, err := ParseHistory(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return entries, nil
}
