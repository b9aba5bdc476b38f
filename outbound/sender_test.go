package outbound

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/ssebridge/message"
	"github.com/viant/ssebridge/session"
)

type capturedRequest struct {
	method        string
	path          string
	sessionID     string
	contentType   string
	contentLength int64
	body          string
}

func remote(t *testing.T, status int, reply string) (*httptest.Server, chan capturedRequest, *int32) {
	t.Helper()
	requests := make(chan capturedRequest, 10)
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		body, _ := io.ReadAll(r.Body)
		requests <- capturedRequest{
			method:        r.Method,
			path:          r.URL.Path,
			sessionID:     r.URL.Query().Get(session.QueryParam),
			contentType:   r.Header.Get("Content-Type"),
			contentLength: r.ContentLength,
			body:          string(body),
		}
		w.WriteHeader(status)
		_, _ = w.Write([]byte(reply))
	}))
	t.Cleanup(server.Close)
	return server, requests, &calls
}

func mustParse(t *testing.T, payload string) *message.Message {
	msg, err := message.Parse([]byte(payload))
	require.NoError(t, err)
	return msg
}

func TestSender_Send(t *testing.T) {
	server, requests, _ := remote(t, http.StatusAccepted, "Accepted")
	target, _ := url.Parse(server.URL + "/sse")
	aSession := session.New()
	endpoint, _ := url.Parse(server.URL + "/sse?sessionId=abc123")
	aSession.Assign("abc123", endpoint)

	sender := New(target, aSession)
	err := sender.Send(context.Background(), mustParse(t, `{"jsonrpc":"2.0", "id":1, "method":"ping"}`))
	require.NoError(t, err)

	actual := <-requests
	assert.Equal(t, http.MethodPost, actual.method)
	assert.Equal(t, "/sse", actual.path)
	assert.Equal(t, "abc123", actual.sessionID)
	assert.Equal(t, "application/json", actual.contentType)
	assert.Equal(t, `{"jsonrpc":"2.0","id":1,"method":"ping"}`, actual.body)
	assert.EqualValues(t, len(actual.body), actual.contentLength)
}

func TestSender_Send_EndpointPath(t *testing.T) {
	server, requests, _ := remote(t, http.StatusOK, "")
	target, _ := url.Parse(server.URL + "/sse")
	aSession := session.New()
	endpoint, _ := url.Parse(server.URL + "/messages?sessionId=m1")
	aSession.Assign("m1", endpoint)

	sender := New(target, aSession, WithEndpointPath(true))
	require.NoError(t, sender.Send(context.Background(), mustParse(t, `{"jsonrpc":"2.0","method":"notifications/initialized"}`)))
	actual := <-requests
	assert.Equal(t, "/messages", actual.path)
	assert.Equal(t, "m1", actual.sessionID)
}

func TestSender_Send_NoSession(t *testing.T) {
	server, _, calls := remote(t, http.StatusOK, "")
	target, _ := url.Parse(server.URL + "/sse")
	aSession := session.New()
	endpoint, _ := url.Parse(server.URL + "/sse?sessionId=abc123")
	aSession.Assign("abc123", endpoint)
	aSession.Invalidate()

	sender := New(target, aSession)
	err := sender.Send(context.Background(), mustParse(t, `{"jsonrpc":"2.0","id":1,"method":"ping"}`))
	assert.ErrorIs(t, err, ErrNoSession)
	assert.EqualValues(t, 0, atomic.LoadInt32(calls), "no network call expected")
}

func TestSender_Send_RemoteError(t *testing.T) {
	var testCases = []struct {
		description string
		status      int
		reply       string
		expectMsg   string
	}{
		{description: "not found", status: http.StatusNotFound, reply: "Session not found\n", expectMsg: "remote endpoint returned status 404: Session not found"},
		{description: "empty body", status: http.StatusInternalServerError, reply: "", expectMsg: "remote endpoint returned status 500"},
	}
	for _, testCase := range testCases {
		server, _, _ := remote(t, testCase.status, testCase.reply)
		target, _ := url.Parse(server.URL + "/sse")
		aSession := session.New()
		aSession.Assign("abc123", nil)

		err := New(target, aSession).Send(context.Background(), mustParse(t, `{"jsonrpc":"2.0","id":2,"method":"tools/list"}`))
		var remoteErr *RemoteError
		if !assert.True(t, errors.As(err, &remoteErr), testCase.description) {
			continue
		}
		assert.Equal(t, testCase.status, remoteErr.StatusCode, testCase.description)
		assert.Equal(t, testCase.expectMsg, err.Error(), testCase.description)
	}
}

func TestSender_Send_TransportError(t *testing.T) {
	server, _, _ := remote(t, http.StatusOK, "")
	target, _ := url.Parse(server.URL + "/sse")
	server.Close()
	aSession := session.New()
	aSession.Assign("abc123", nil)

	err := New(target, aSession).Send(context.Background(), mustParse(t, `{"jsonrpc":"2.0","id":3,"method":"ping"}`))
	var transportErr *TransportError
	require.True(t, errors.As(err, &transportErr))
	assert.NotNil(t, errors.Unwrap(err))
}

func TestSender_Send_Timeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)
	target, _ := url.Parse(server.URL + "/sse")
	aSession := session.New()
	aSession.Assign("abc123", nil)

	err := New(target, aSession, WithTimeout(50*time.Millisecond)).Send(context.Background(), mustParse(t, `{"jsonrpc":"2.0","id":4,"method":"ping"}`))
	var transportErr *TransportError
	require.True(t, errors.As(err, &transportErr))
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
