package bridge

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/jessevdk/go-flags"
	"github.com/viant/ssebridge/logging"
)

// Run parses args, bridges stdin/stdout to the SSE endpoint and returns once the
// bridge shuts down. A returned error means the process should exit with status 1.
func Run(args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return run(ctx, args, os.Stdin, os.Stdout, os.Stderr)
}

func run(ctx context.Context, args []string, in io.Reader, out, errOut io.Writer) error {
	options := &Options{}
	parser := flags.NewParser(options, flags.HelpFlag|flags.PassDoubleDash)
	if _, err := parser.ParseArgs(args); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			_, _ = fmt.Fprintln(errOut, flagsErr.Message)
			return nil
		}
		return err
	}
	logger := logging.New(errOut, options.Debug)
	srv, err := New(options, WithIO(in, out), WithLogger(logger))
	if err != nil {
		return err
	}
	return srv.Serve(ctx)
}
