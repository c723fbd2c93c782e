package console

import (
	"bufio"
	"context"
	"io"
	"strings"
)

// Lines reads r line by line on its own goroutine. The channel is closed
// at EOF, on a read error or when ctx is done. It is the only reader of r,
// so the menu and a running timer can share one terminal.
func Lines(ctx context.Context, r io.Reader) <-chan string {
	out := make(chan string)
	go func() {
		defer close(out)
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			select {
			case out <- strings.TrimRight(scanner.Text(), "\r"):
			case <-ctx.Done():
				return
			}
		}
	}()
	return out
}

// ScriptedLines feeds fixed input, mainly for tests and non-interactive use
func ScriptedLines(lines ...string) <-chan string {
	out := make(chan string, len(lines))
	for _, l := range lines {
		out <- l
	}
	close(out)
	return out
}
