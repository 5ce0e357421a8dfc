package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/gookit/color"

	"hearsay/contract"
	"hearsay/domain"
)

var _ contract.Worker = (*Console)(nil)

// Console adapts stdin to the engine: every line becomes an inbound message
// of kind "console". It exists for the demo binary; a platform adapter would
// feed the same channel from its own transport.
type Console struct {
	log     *slog.Logger
	in      io.Reader
	inbound chan domain.Message
}

func NewConsole(log *slog.Logger, in io.Reader, inbound chan domain.Message) *Console {
	return &Console{log: log, in: in, inbound: inbound}
}

func (c *Console) Run(ctx context.Context) error {
	// The blocking Read lives in its own goroutine: stdin has no ctx-aware
	// read, so the loop below stays responsive to cancellation instead.
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(c.in)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
		if err := scanner.Err(); err != nil {
			c.log.Error("Console read failed", "err", err)
		}
	}()

	for {
		select {
		case <-ctx.Done():
			c.log.Debug("Context done, stopping console")
			return nil
		case line, ok := <-lines:
			if !ok {
				c.log.Debug("Console input is closed")
				return nil
			}
			select {
			case c.inbound <- domain.NewMessage("console", line):
			case <-ctx.Done():
				return nil
			}
		}
	}
}

// consoleReply prints handler output back to the terminal, colored so bot
// replies stand out from the echoed input.
func consoleReply(_ context.Context, _ domain.Message, text string) error {
	fmt.Println(color.New(color.FgGreen).Render(text))
	return nil
}
