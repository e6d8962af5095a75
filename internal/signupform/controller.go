package signupform

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"
)

// DefaultTimeout bounds a single call to the signup service.
const DefaultTimeout = 15 * time.Second

// Messages stored in State.Error when the service gave no answer.
const (
	TimeoutMessage   = "The signup request timed out. Please try again."
	TransportMessage = "Unable to reach the signup service. Please try again."
)

var (
	// ErrSubmitInFlight is returned by Submit while another submission is pending.
	ErrSubmitInFlight = errors.New("signupform: submission already in flight")
	// ErrClosed is returned once the controller has been closed.
	ErrClosed = errors.New("signupform: form closed")
	// ErrDiscarded is returned when Reset dropped the result of a submission.
	ErrDiscarded = errors.New("signupform: result discarded after reset")
)

// Controller owns the State of one mounted signup form and serializes every
// transition applied to it.
type Controller struct {
	client   Signupper
	timeout  time.Duration
	logger   *zap.Logger
	onChange func(State)

	mu     sync.Mutex
	state  State
	seq    uint64
	cancel context.CancelFunc
	closed bool
}

// Option configures a Controller.
type Option func(*Controller)

// WithTimeout bounds each signup call. A non-positive value disables the bound.
func WithTimeout(d time.Duration) Option {
	return func(c *Controller) {
		c.timeout = d
	}
}

// WithLogger sets the logger used for submission diagnostics.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithOnChange registers a callback invoked with the new state after every
// applied transition.
func WithOnChange(fn func(State)) Option {
	return func(c *Controller) {
		c.onChange = fn
	}
}

// NewController builds a controller holding the initial state.
func NewController(client Signupper, opts ...Option) *Controller {
	c := &Controller{
		client:  client,
		timeout: DefaultTimeout,
		logger:  zap.NewNop(),
		state:   Initial(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// State returns a snapshot of the current form state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// HandleField stores a new value for one field.
func (c *Controller) HandleField(f Field, value string) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.state = Reduce(c.state, FieldChanged{Field: f, Value: value})
	snapshot := c.state
	c.mu.Unlock()

	c.notify(snapshot)
}

// Submit sends the current credentials to the signup service and merges the
// answer into the state. It blocks until the call settles. A rejected signup
// is not an error: it is recorded in State.Error.
func (c *Controller) Submit(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	if c.state.Pending {
		c.mu.Unlock()
		c.logger.Debug("signup submit dropped, request already pending")
		return ErrSubmitInFlight
	}

	c.state = Reduce(c.state, SubmitStarted{})
	creds := c.state.Credentials()
	c.seq++
	seq := c.seq

	var callCtx context.Context
	var cancel context.CancelFunc
	if c.timeout > 0 {
		callCtx, cancel = context.WithTimeout(ctx, c.timeout)
	} else {
		callCtx, cancel = context.WithCancel(ctx)
	}
	c.cancel = cancel
	snapshot := c.state
	c.mu.Unlock()
	defer cancel()

	c.notify(snapshot)

	start := time.Now()
	res, err := c.client.Signup(callCtx, creds)

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		c.logger.Debug("signup result dropped, form closed", zap.NamedError("call_error", err))
		return ErrClosed
	}
	if c.seq != seq {
		c.mu.Unlock()
		c.logger.Debug("signup result dropped, form reset", zap.NamedError("call_error", err))
		return ErrDiscarded
	}
	c.state = Reduce(c.state, c.classify(callCtx, res, err))
	c.cancel = nil
	snapshot = c.state
	c.mu.Unlock()

	c.logger.Info("signup settled",
		zap.String("outcome", snapshot.Success.String()),
		zap.String("error_kind", snapshot.ErrorKind.String()),
		zap.Duration("latency", time.Since(start)))

	c.notify(snapshot)
	return nil
}

// Reset cancels any pending submission and restores the initial state.
func (c *Controller) Reset() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	c.seq++
	c.state = Reduce(c.state, ResetRequested{})
	snapshot := c.state
	c.mu.Unlock()

	c.notify(snapshot)
}

// Close detaches the controller from its form. Any pending submission is
// cancelled and no further transition is applied or announced.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
}

func (c *Controller) classify(ctx context.Context, res Result, err error) SubmitSettled {
	if err == nil {
		return SubmitSettled{Result: res}
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		c.logger.Warn("signup request timed out", zap.Duration("timeout", c.timeout), zap.Error(err))
		return SubmitSettled{Result: Result{Error: TimeoutMessage}, Kind: ErrorTimeout}
	}
	if errors.Is(err, context.Canceled) {
		c.logger.Debug("signup request cancelled", zap.Error(err))
	} else {
		c.logger.Warn("signup request failed", zap.Error(err))
	}
	return SubmitSettled{Result: Result{Error: TransportMessage}, Kind: ErrorTransport}
}

func (c *Controller) notify(s State) {
	c.mu.Lock()
	fn := c.onChange
	closed := c.closed
	c.mu.Unlock()

	if fn == nil || closed {
		return
	}
	fn(s)
}
