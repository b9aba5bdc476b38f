package stdio

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/viant/jsonrpc"
	"github.com/viant/ssebridge/logging"
	"github.com/viant/ssebridge/message"
)

// Sender delivers a message to the remote side.
type Sender interface {
	Send(ctx context.Context, msg *message.Message) error
}

// Dispatcher forwards input lines to a Sender.
type Dispatcher struct {
	lines  *LineReader
	sender Sender
	out    *Writer
	logger *log.Logger
}

// NewDispatcher creates a dispatcher reading from in and reporting failures to out.
func NewDispatcher(in io.Reader, out *Writer, sender Sender, logger *log.Logger) *Dispatcher {
	return &Dispatcher{lines: NewLineReader(in), sender: sender, out: out, logger: logging.OrDiscard(logger)}
}

// Run dispatches lines until input ends (nil) or ctx is cancelled.
// Only an output failure or a read error other than EOF is returned.
func (d *Dispatcher) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		line, err := d.lines.Next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				d.logger.Info("input closed")
				return nil
			}
			return err
		}
		if err = d.Dispatch(ctx, line); err != nil {
			return err
		}
	}
}

// Dispatch handles a single input line. Parse and send failures are written
// as error responses; the returned error only reports an output failure.
func (d *Dispatcher) Dispatch(ctx context.Context, line string) error {
	if strings.TrimSpace(line) == "" {
		return nil
	}
	msg, err := message.Parse([]byte(line))
	if err != nil {
		d.logger.Warn("invalid input line", "err", err)
		return d.reply(nil, err)
	}
	if err = d.sender.Send(ctx, msg); err != nil {
		d.logger.Warn("send failed", "message", msg.String(), "err", err)
		return d.reply(message.RecoverID([]byte(line)), err)
	}
	d.logger.Debug("dispatched", "message", msg.String())
	return nil
}

func (d *Dispatcher) reply(id jsonrpc.RequestId, cause error) error {
	return d.out.WriteLine(message.NewErrorEnvelope(id, cause).Bytes())
}
