package protocol

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/encodeous/dvsim/state"
)

var ErrSyntax = errors.New("syntax error")

type ParseError struct {
	File string
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d: %s", e.File, e.Line, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// scanLines calls fn for every non-blank line, with trailing CR removed.
func scanLines(r io.Reader, name string, fn func(line string) error) error {
	sc := bufio.NewScanner(r)
	num := 0
	for sc.Scan() {
		num++
		line := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		if err := fn(line); err != nil {
			return &ParseError{File: name, Line: num, Err: err}
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	return nil
}

// nextField splits the first whitespace-delimited token from s.
func nextField(s string) (string, string) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	end := strings.IndexFunc(s, unicode.IsSpace)
	if end == -1 {
		return s, ""
	}
	return s[:end], s[end:]
}

func parseNodeId(s string) (state.NodeId, error) {
	if err := state.NameValidator(s); err != nil {
		return "", fmt.Errorf("%w: %w", ErrSyntax, err)
	}
	return state.NodeId(s), nil
}

func parseMetric(s string) (uint32, error) {
	m, err := strconv.ParseUint(s, 10, 32)
	if err != nil || uint32(m) > state.INFM {
		return 0, fmt.Errorf("%w: invalid cost %q", ErrSyntax, s)
	}
	return uint32(m), nil
}

// parseEdge reads "<node1> <node2> <cost>" leaving cost unparsed.
func parseEdge(line string) (state.NodeId, state.NodeId, string, error) {
	f := strings.Fields(line)
	if len(f) != 3 {
		return "", "", "", fmt.Errorf("%w: expected \"<node1> <node2> <cost>\", got %q", ErrSyntax, line)
	}
	a, err := parseNodeId(f[0])
	if err != nil {
		return "", "", "", err
	}
	b, err := parseNodeId(f[1])
	if err != nil {
		return "", "", "", err
	}
	if a == b {
		return "", "", "", fmt.Errorf("%w: %w: %s", ErrSyntax, state.ErrSelfLink, a)
	}
	return a, b, f[2], nil
}

func ParseTopology(r io.Reader, name string) ([]state.Link, error) {
	links := make([]state.Link, 0)
	err := scanLines(r, name, func(line string) error {
		a, b, cost, err := parseEdge(line)
		if err != nil {
			return err
		}
		m, err := parseMetric(cost)
		if err != nil {
			return err
		}
		links = append(links, state.NewLink(a, b, m))
		return nil
	})
	return links, err
}

func ParseChanges(r io.Reader, name string) ([]state.Change, error) {
	changes := make([]state.Change, 0)
	err := scanLines(r, name, func(line string) error {
		a, b, cost, err := parseEdge(line)
		if err != nil {
			return err
		}
		c := state.Change{Pair: state.Pair[state.NodeId, state.NodeId]{V1: a, V2: b}}
		if cost == strconv.Itoa(WireRemove) {
			c.Remove = true
		} else {
			c.Metric, err = parseMetric(cost)
			if err != nil {
				return err
			}
		}
		changes = append(changes, c)
		return nil
	})
	return changes, err
}

func ParseMessages(r io.Reader, name string) ([]state.Message, error) {
	msgs := make([]state.Message, 0)
	err := scanLines(r, name, func(line string) error {
		srcStr, rest := nextField(line)
		dstStr, rest := nextField(rest)
		if dstStr == "" {
			return fmt.Errorf("%w: expected \"<src> <dst> <message>\", got %q", ErrSyntax, line)
		}
		src, err := parseNodeId(srcStr)
		if err != nil {
			return err
		}
		dst, err := parseNodeId(dstStr)
		if err != nil {
			return err
		}
		msgs = append(msgs, state.Message{
			Src:     src,
			Dst:     dst,
			Content: strings.TrimLeftFunc(rest, unicode.IsSpace),
		})
		return nil
	})
	return msgs, err
}

func readFile[T any](path string, parse func(io.Reader, string) ([]T, error)) ([]T, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return parse(f, path)
}

func ReadTopologyFile(path string) ([]state.Link, error) {
	return readFile(path, ParseTopology)
}

func ReadChangesFile(path string) ([]state.Change, error) {
	return readFile(path, ParseChanges)
}

func ReadMessagesFile(path string) ([]state.Message, error) {
	return readFile(path, ParseMessages)
}
