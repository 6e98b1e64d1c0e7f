package v1

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"io"
	"net"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"

	deepgram "github.com/moxierobots/deepgram-go"
)

const listenPath = "listen"

// Callbacks receive session events. All callbacks run on the client's read
// goroutine except OnStateChange, OnError and OnFinished, which run on
// whichever goroutine caused the transition.
type Callbacks struct {
	OnStateChange   func(oldState, newState State)
	OnOpen          func()
	OnResults       func(result *ResultResponse)
	OnMetadata      func(metadata *MetadataResponse)
	OnSpeechStarted func(event *SpeechStartedResponse)
	OnUtteranceEnd  func(event *UtteranceEndResponse)
	OnFinished      func()
	OnClose         func(reason string)
	OnError         func(err *deepgram.Error)
	OnUnhandled     func(raw []byte)
}

// session holds what belongs to a single Start. Goroutines spawned by Start
// keep a pointer to their session and stop acting once the client has moved
// on to another one.
type session struct {
	id        string
	callbacks Callbacks
	conn      *websocket.Conn // guarded by Client.mu
	done      chan struct{}
	closeOnce sync.Once
}

// Client is a live transcription WebSocket client.
type Client struct {
	config  *deepgram.ClientOptions
	options deepgram.ClientOptions
	logger  *zap.Logger

	mu           sync.RWMutex
	writeMu      sync.Mutex
	sess         *session
	state        State
	paused       bool
	requestID    string
	metadataSeen bool
	messageQueue [][]byte
	controlQueue [][]byte
	tlsCache     tls.ClientSessionCache
}

// NewClient creates a client. config is kept as given; defaults are applied
// to a private copy.
func NewClient(config *deepgram.ClientOptions) *Client {
	options := config.WithDefaults()
	return &Client{
		config:   config,
		options:  options,
		logger:   options.Logger.With(zap.String("client", "live")),
		state:    StateInit,
		tlsCache: tls.NewLRUClientSessionCache(32),
	}
}

// Config returns the configuration the client was created with.
func (c *Client) Config() *deepgram.ClientOptions {
	return c.config
}

func (c *Client) State() State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

func (c *Client) Paused() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.paused
}

// RequestID returns the server-assigned request ID of the current session.
func (c *Client) RequestID() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.requestID
}

// SessionID returns the client-side ID used to correlate log lines.
func (c *Client) SessionID() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.sess == nil {
		return ""
	}
	return c.sess.id
}

func (c *Client) current() (*session, State) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.sess, c.state
}

// setState moves s to newState and reports whether it did. Transitions out
// of a terminal state, and transitions for a session that is no longer
// current, are ignored.
func (c *Client) setState(s *session, newState State) bool {
	c.mu.Lock()
	oldState := c.state
	if c.sess != s || oldState == newState || oldState.IsTerminal() {
		c.mu.Unlock()
		return false
	}
	c.state = newState
	c.mu.Unlock()

	c.logStateChange(s, oldState, newState)
	return true
}

func (c *Client) logStateChange(s *session, oldState, newState State) {
	var (
		id string
		cb func(oldState, newState State)
	)
	if s != nil {
		id = s.id
		cb = s.callbacks.OnStateChange
	}
	c.logger.Debug("state change",
		zap.String("session", id),
		zap.Stringer("from", oldState),
		zap.Stringer("to", newState),
	)
	if cb != nil {
		cb(oldState, newState)
	}
}

// Start opens a session. Audio sent while the handshake is in progress is
// queued and flushed once the connection is open.
func (c *Client) Start(ctx context.Context, options *LiveOptions, callbacks Callbacks) error {
	if options == nil {
		options = &LiveOptions{}
	}
	if err := options.Validate(); err != nil {
		return err
	}
	query, err := options.Query()
	if err != nil {
		return deepgram.NewErrorWithCause(deepgram.ErrorStatusInvalidArgument, "failed to encode options", err)
	}

	s := &session{
		id:        uuid.NewString(),
		callbacks: callbacks,
		done:      make(chan struct{}),
	}

	c.mu.Lock()
	if c.state.IsActive() {
		c.mu.Unlock()
		return deepgram.ErrClientAlreadyActive
	}
	c.sess = s
	c.state = StateInit
	c.requestID = ""
	c.metadataSeen = false
	c.messageQueue = make([][]byte, 0, c.options.BufferQueueSize)
	c.controlQueue = nil
	c.paused = false
	c.mu.Unlock()

	logger := c.logger.With(zap.String("session", s.id))
	for _, w := range options.Warnings() {
		logger.Warn(w)
	}

	c.setState(s, StateConnecting)

	header, err := c.options.AuthHeader()
	if err != nil {
		var dgErr *deepgram.Error
		if !errors.As(err, &dgErr) {
			dgErr = deepgram.NewErrorWithCause(deepgram.ErrorStatusAPIKeyFetchFailed, "failed to get API key", err)
		}
		c.handleError(s, dgErr)
		return dgErr
	}

	endpoint := c.options.BaseURL("wss") + "/" + deepgram.DefaultAPIVersion + "/" + listenPath
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}
	logger.Debug("connecting", zap.String("endpoint", endpoint))

	connCtx, cancel := context.WithTimeout(ctx, c.options.ConnectTimeout)
	defer cancel()

	dialer := websocket.Dialer{
		HandshakeTimeout: c.options.ConnectTimeout,
		NetDialContext: func(ctx context.Context, network, addr string) (net.Conn, error) {
			d := net.Dialer{}
			conn, err := d.DialContext(ctx, network, addr)
			if err != nil {
				return nil, err
			}
			if tc, ok := conn.(*net.TCPConn); ok {
				tc.SetNoDelay(true)
			}
			return conn, nil
		},
		TLSClientConfig: &tls.Config{
			ClientSessionCache: c.tlsCache,
		},
	}

	conn, resp, err := dialer.DialContext(connCtx, endpoint, header)
	if err != nil && ctx.Err() != nil {
		if c.setState(s, StateCanceled) {
			c.closeSession(s)
		}
		return deepgram.NewErrorWithCause(deepgram.ErrorStatusWebSocketError, "connect canceled", ctx.Err())
	}
	if err != nil {
		dgErr := deepgram.NewErrorWithCause(deepgram.ErrorStatusWebSocketError, "failed to connect", err)
		if resp != nil {
			dgErr = deepgram.MapAPIError(handshakeMessage(resp.Body, resp.Status), resp.StatusCode)
			dgErr.RequestID = resp.Header.Get("dg-request-id")
			dgErr.Cause = err
		}
		c.handleError(s, dgErr)
		return dgErr
	}

	if err := c.open(s, conn, resp.Header.Get("dg-request-id")); err != nil {
		return err
	}

	logger.Info("session open", zap.String("request_id", c.RequestID()))

	if cb := s.callbacks.OnOpen; cb != nil {
		cb()
	}

	go c.readLoop(s, conn, logger)
	go c.keepAliveLoop(s)

	go func() {
		select {
		case <-ctx.Done():
			if c.setState(s, StateCanceled) {
				c.closeSession(s)
			}
		case <-s.done:
		}
	}()

	return nil
}

// open flushes the queues filled while connecting and enters Open without
// releasing the lock Send takes.
func (c *Client) open(s *session, conn *websocket.Conn, requestID string) error {
	c.writeMu.Lock()
	c.mu.Lock()

	if c.sess != s || c.state != StateConnecting {
		c.mu.Unlock()
		c.writeMu.Unlock()
		conn.Close()
		return deepgram.ErrClientClosed
	}
	s.conn = conn
	c.requestID = requestID

	flush := func(msgType int, queue [][]byte) error {
		for _, msg := range queue {
			conn.SetWriteDeadline(time.Now().Add(c.options.WriteTimeout))
			if err := conn.WriteMessage(msgType, msg); err != nil {
				return err
			}
		}
		return nil
	}
	err := flush(websocket.BinaryMessage, c.messageQueue)
	if err == nil {
		err = flush(websocket.TextMessage, c.controlQueue)
	}
	c.messageQueue = nil
	c.controlQueue = nil
	if err == nil {
		c.state = StateOpen
	}
	c.mu.Unlock()
	c.writeMu.Unlock()

	if err != nil {
		dgErr := deepgram.NewErrorWithCause(deepgram.ErrorStatusWebSocketError, "failed to send queued messages", err)
		c.handleError(s, dgErr)
		return dgErr
	}

	c.logStateChange(s, StateConnecting, StateOpen)
	return nil
}

func handshakeMessage(body io.Reader, status string) string {
	if body == nil {
		return status
	}
	data, _ := io.ReadAll(io.LimitReader(body, 1024))
	if gjson.ValidBytes(data) {
		for _, key := range []string{"err_msg", "message", "description"} {
			if v := gjson.GetBytes(data, key); v.String() != "" {
				return v.String()
			}
		}
	}
	if msg := strings.TrimSpace(string(data)); msg != "" {
		return msg
	}
	return status
}

// Send sends a chunk of audio. It is queued while connecting and dropped
// while paused.
func (c *Client) Send(data []byte) error {
	c.mu.Lock()
	if c.paused {
		c.mu.Unlock()
		return nil
	}

	// The state is read under the same lock open holds while flushing, so a
	// chunk is either queued before the flush or written after it.
	switch state := c.state; state {
	case StateConnecting:
		if len(c.messageQueue) >= c.options.BufferQueueSize {
			c.mu.Unlock()
			return deepgram.NewError(deepgram.ErrorStatusQueueLimitExceeded, "message queue limit exceeded")
		}
		c.messageQueue = append(c.messageQueue, data)
		c.mu.Unlock()
		return nil

	case StateOpen:
		s := c.sess
		c.mu.Unlock()
		return c.writeRaw(s, websocket.BinaryMessage, data)

	default:
		c.mu.Unlock()
		return deepgram.NewError(deepgram.ErrorStatusInvalidState, "cannot send audio in state: "+string(state))
	}
}

// Stream reads from r and sends audio chunks until EOF. r is not closed.
func (c *Client) Stream(r io.Reader, opts ...StreamOptions) error {
	var opt StreamOptions
	if len(opts) > 0 {
		opt = opts[0]
	}
	if opt.ChunkSize <= 0 {
		opt.ChunkSize = DefaultStreamChunkSize
	}

	buf := make([]byte, opt.ChunkSize)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			chunk := make([]byte, n)
			copy(chunk, buf[:n])
			if sendErr := c.Send(chunk); sendErr != nil {
				return sendErr
			}
			if opt.PaceInterval > 0 {
				time.Sleep(opt.PaceInterval)
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
	}
	if opt.Finish {
		return c.Finish()
	}
	return nil
}

// Pause stops sending audio; keep-alives are sent instead so the server does
// not time the session out.
func (c *Client) Pause() {
	c.mu.Lock()
	c.paused = true
	c.mu.Unlock()
}

func (c *Client) Resume() {
	c.mu.Lock()
	c.paused = false
	c.mu.Unlock()
}

// KeepAlive sends a single keep-alive message.
func (c *Client) KeepAlive() error {
	s, state := c.current()
	if state != StateOpen && state != StateClosing {
		return deepgram.ErrClientNotConnected
	}
	return c.sendControl(s, NewKeepAliveMessage())
}

// Finalize asks the server to flush non-final results.
func (c *Client) Finalize() error {
	data, err := json.Marshal(NewFinalizeMessage())
	if err != nil {
		return err
	}

	c.mu.Lock()
	switch c.state {
	case StateConnecting:
		if len(c.controlQueue) >= c.options.BufferQueueSize {
			c.mu.Unlock()
			return deepgram.NewError(deepgram.ErrorStatusQueueLimitExceeded, "control queue limit exceeded")
		}
		c.controlQueue = append(c.controlQueue, data)
		c.mu.Unlock()
		return nil

	case StateOpen, StateClosing:
		s := c.sess
		c.mu.Unlock()
		return c.writeRaw(s, websocket.TextMessage, data)

	default:
		c.mu.Unlock()
		return nil
	}
}

// Finish sends CloseStream; the session reaches Finished once the server
// has flushed its results and closed the connection.
func (c *Client) Finish() error {
	s, state := c.current()

	if state == StateConnecting {
		c.handleFinished(s)
		return nil
	}

	if state == StateOpen {
		c.mu.Lock()
		c.paused = false
		c.mu.Unlock()

		c.setState(s, StateClosing)

		return c.sendControl(s, NewCloseStreamMessage())
	}

	return nil
}

// Cancel immediately terminates the session.
func (c *Client) Cancel() {
	s, state := c.current()

	if !state.IsInactive() && c.setState(s, StateCanceled) {
		c.closeSession(s)
	}
}

func (c *Client) writeRaw(s *session, msgType int, data []byte) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	c.mu.RLock()
	var conn *websocket.Conn
	if s != nil && c.sess == s {
		conn = s.conn
	}
	c.mu.RUnlock()

	if conn == nil {
		return deepgram.ErrClientNotConnected
	}

	conn.SetWriteDeadline(time.Now().Add(c.options.WriteTimeout))
	if err := conn.WriteMessage(msgType, data); err != nil {
		return deepgram.NewErrorWithCause(deepgram.ErrorStatusWebSocketError, "write error", err)
	}
	return nil
}

func (c *Client) sendControl(s *session, msg ControlMessage) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	return c.writeRaw(s, websocket.TextMessage, data)
}

func (c *Client) readLoop(s *session, conn *websocket.Conn, logger *zap.Logger) {
	for {
		_, message, err := conn.ReadMessage()
		if err != nil {
			c.handleReadError(s, err, logger)
			return
		}

		if !c.dispatch(s, message, logger) {
			return
		}
	}
}

func (c *Client) handleReadError(s *session, err error, logger *zap.Logger) {
	c.mu.RLock()
	stale := c.sess != s
	state := c.state
	metadataSeen := c.metadataSeen
	c.mu.RUnlock()

	if stale || state.IsTerminal() {
		return
	}

	var closeErr *websocket.CloseError
	isClose := errors.As(err, &closeErr)
	normal := websocket.IsCloseError(err, websocket.CloseNormalClosure)

	switch state {
	case StateClosing:
		if normal || metadataSeen {
			c.handleFinished(s)
			return
		}
		c.handleError(s, deepgram.NewErrorWithCause(deepgram.ErrorStatusConnectionClosed, "connection closed before the stream was flushed", err))

	case StateOpen, StateConnecting:
		if isClose && !normal && closeErr.Code != websocket.CloseNoStatusReceived {
			e := deepgram.NewErrorWithCode(deepgram.ErrorStatusConnectionClosed, closeErr.Text, closeErr.Code)
			e.Cause = err
			c.handleError(s, e)
			return
		}
		logger.Info("connection closed by server", zap.Error(err))
		if cb := s.callbacks.OnClose; cb != nil {
			reason := ""
			if isClose {
				reason = closeErr.Text
			}
			cb(reason)
		}
		if c.setState(s, StateClosed) {
			c.closeSession(s)
		}
	}
}

// dispatch routes one server message and reports whether reading should
// continue.
func (c *Client) dispatch(s *session, message []byte, logger *zap.Logger) bool {
	msgType := gjson.GetBytes(message, "type").String()

	c.mu.Lock()
	if c.sess != s {
		c.mu.Unlock()
		return false
	}
	if msgType == MessageTypeMetadata {
		c.metadataSeen = true
	}
	c.mu.Unlock()

	switch msgType {
	case MessageTypeResults:
		var result ResultResponse
		if err := json.Unmarshal(message, &result); err != nil {
			c.handleError(s, deepgram.NewErrorWithCause(deepgram.ErrorStatusWebSocketError, "failed to parse results", err))
			return false
		}
		if cb := s.callbacks.OnResults; cb != nil {
			cb(&result)
		}

	case MessageTypeMetadata:
		var metadata MetadataResponse
		if err := json.Unmarshal(message, &metadata); err != nil {
			c.handleError(s, deepgram.NewErrorWithCause(deepgram.ErrorStatusWebSocketError, "failed to parse metadata", err))
			return false
		}
		if cb := s.callbacks.OnMetadata; cb != nil {
			cb(&metadata)
		}

	case MessageTypeSpeechStarted:
		var event SpeechStartedResponse
		if err := json.Unmarshal(message, &event); err == nil {
			if cb := s.callbacks.OnSpeechStarted; cb != nil {
				cb(&event)
			}
		}

	case MessageTypeUtteranceEnd:
		var event UtteranceEndResponse
		if err := json.Unmarshal(message, &event); err == nil {
			if cb := s.callbacks.OnUtteranceEnd; cb != nil {
				cb(&event)
			}
		}

	case MessageTypeError:
		var resp ErrorResponse
		json.Unmarshal(message, &resp)
		msg := resp.Description
		if msg == "" {
			msg = resp.Message
		}
		e := deepgram.NewError(deepgram.ErrorStatusAPIError, msg)
		e.RequestID = c.RequestID()
		c.handleError(s, e)
		return false

	default:
		logger.Debug("unhandled message", zap.String("type", msgType))
		if cb := s.callbacks.OnUnhandled; cb != nil {
			cb(message)
		}
	}
	return true
}

// keepAliveLoop sends keep-alives while paused, or always when KeepAlive is
// enabled in the client options.
func (c *Client) keepAliveLoop(s *session) {
	ticker := time.NewTicker(c.options.KeepAliveInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
			c.mu.RLock()
			state := c.state
			paused := c.paused
			c.mu.RUnlock()

			shouldSend := (state == StateOpen || state == StateClosing) && (paused || c.options.KeepAlive)
			if !shouldSend {
				continue
			}

			// Best-effort: ignore errors on keepalive
			c.sendControl(s, NewKeepAliveMessage())
		}
	}
}

func (c *Client) handleError(s *session, err *deepgram.Error) {
	if !c.setState(s, StateError) {
		return
	}
	c.logger.Error("session error", zap.String("session", s.id), zap.Error(err))
	c.closeSession(s)

	if cb := s.callbacks.OnError; cb != nil {
		cb(err)
	}
}

func (c *Client) handleFinished(s *session) {
	if !c.setState(s, StateFinished) {
		return
	}
	c.closeSession(s)

	if cb := s.callbacks.OnFinished; cb != nil {
		cb()
	}
}

// closeSession stops the goroutines of s and closes its connection. The
// client's queues are only reset while s is still the current session.
func (c *Client) closeSession(s *session) {
	if s == nil {
		return
	}
	s.closeOnce.Do(func() {
		close(s.done)

		c.mu.Lock()
		defer c.mu.Unlock()
		if s.conn != nil {
			s.conn.Close()
			s.conn = nil
		}
		if c.sess == s {
			c.messageQueue = nil
			c.controlQueue = nil
		}
	})
}

// Close releases all resources.
func (c *Client) Close() error {
	c.Cancel()
	return nil
}
