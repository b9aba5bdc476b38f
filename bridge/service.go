package bridge

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/url"
	"os"
	"sync/atomic"

	"github.com/charmbracelet/log"
	"github.com/viant/ssebridge/inbound"
	"github.com/viant/ssebridge/logging"
	"github.com/viant/ssebridge/outbound"
	"github.com/viant/ssebridge/session"
	"github.com/viant/ssebridge/stdio"
	"golang.org/x/sync/errgroup"
)

// errRemoteClosed ends the active phase when the event stream finishes first.
var errRemoteClosed = errors.New("remote stream ended")

type Service struct {
	options *Options
	state   atomic.Int32
	in      io.Reader
	out     io.Writer
	client  *http.Client
	logger  *log.Logger
	session *session.Session
	manager *session.Manager
	sender  *outbound.Sender
}

// New builds a bridge for options; no connection is made until Serve.
func New(options *Options, opts ...Option) (*Service, error) {
	ret := &Service{options: options, in: os.Stdin, out: os.Stdout}
	for _, opt := range opts {
		opt(ret)
	}
	ret.logger = logging.OrDiscard(ret.logger)
	ret.setState(Starting)

	rawURL := options.EndpointURL()
	ret.session = session.New()
	managerOptions := []session.Option{session.WithLogger(ret.logger)}
	senderOptions := []outbound.Option{
		outbound.WithLogger(ret.logger),
		outbound.WithEndpointPath(options.EndpointPath),
		outbound.WithTimeout(options.Timeout),
	}
	if ret.client != nil {
		managerOptions = append(managerOptions, session.WithHTTPClient(ret.client))
		senderOptions = append(senderOptions, outbound.WithHTTPClient(ret.client))
	}
	var err error
	if ret.manager, err = session.NewManager(rawURL, ret.session, managerOptions...); err != nil {
		return nil, err
	}
	target, _ := url.Parse(rawURL)
	ret.sender = outbound.New(target, ret.session, senderOptions...)
	return ret, nil
}

// State returns the current lifecycle phase.
func (s *Service) State() State {
	return State(s.state.Load())
}

// Session returns the session handle shared by the components.
func (s *Service) Session() *session.Session {
	return s.session
}

// Serve connects and bridges until input ends, ctx is cancelled or the remote
// stream ends. It returns an error only when the session cannot be established;
// cancelling ctx while connecting is a shutdown, not a failure.
// Serve does not wait for a blocked input read or an in-flight send to finish.
func (s *Service) Serve(ctx context.Context) error {
	s.setState(Connecting)
	s.logger.Info("connecting", "url", s.options.EndpointURL())
	stream, err := s.manager.Open(ctx)
	if err != nil {
		s.setState(Terminated)
		if ctx.Err() != nil {
			s.logger.Info("shutting down", "reason", "signal")
			return nil
		}
		return err
	}

	s.setState(Active)
	writer := stdio.NewWriter(s.out)
	relay := inbound.New(writer, s.logger)
	dispatcher := stdio.NewDispatcher(s.in, writer, s.sender, s.logger)

	activeCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	group, groupCtx := errgroup.WithContext(activeCtx)
	group.Go(func() error {
		err := relay.Run(groupCtx, stream)
		if groupCtx.Err() != nil {
			return nil
		}
		if err != nil {
			s.logger.Error("relay stopped", "err", err)
			return err
		}
		return errRemoteClosed
	})
	group.Go(func() error {
		<-groupCtx.Done()
		s.setState(Closing)
		if err := stream.Close(); err != nil {
			s.logger.Debug("closing event stream", "err", err)
		}
		return nil
	})
	go func() {
		if err := dispatcher.Run(groupCtx); err != nil && groupCtx.Err() == nil {
			s.logger.Error("dispatcher stopped", "err", err)
		}
		cancel()
	}()

	err = group.Wait()
	switch {
	case err != nil:
		s.logger.Info("shutting down", "reason", err)
	case ctx.Err() != nil:
		s.logger.Info("shutting down", "reason", "signal")
	default:
		s.logger.Info("shutting down", "reason", "input closed")
	}
	s.setState(Terminated)
	return nil
}

func (s *Service) setState(state State) {
	previous := State(s.state.Swap(int32(state)))
	if previous != state {
		s.logger.Debug("state changed", "from", previous, "to", state)
	}
}
