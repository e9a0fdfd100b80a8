package terminal

import (
	"bufio"
	"context"
	"errors"
	"io"
	"sync"

	"go.uber.org/zap"
)

const (
	keyEscape = 0x1b
	keyEnter  = '\n'
	keyReturn = '\r'
)

// KeyDismissSource turns Escape or Enter on the input stream into
// dismissals of whatever display is subscribed
type KeyDismissSource struct {
	in     io.Reader
	logger *zap.Logger

	mu      sync.Mutex
	handler func()
	nextID  uint64
	ownerID uint64
}

// NewKeyDismissSource creates a dismiss source reading from in
func NewKeyDismissSource(in io.Reader, logger *zap.Logger) (*KeyDismissSource, error) {
	if in == nil {
		return nil, ErrNilReader
	}

	if logger == nil {
		logger = zap.NewNop()
	}

	return &KeyDismissSource{
		in:     in,
		logger: logger.Named("keys"),
	}, nil
}

// Subscribe routes dismiss keys to onDismiss until the returned func runs.
// A later subscription replaces an earlier one.
func (k *KeyDismissSource) Subscribe(onDismiss func()) func() {
	k.mu.Lock()
	defer k.mu.Unlock()

	k.nextID++
	id := k.nextID
	k.handler = onDismiss
	k.ownerID = id

	return func() {
		k.mu.Lock()
		defer k.mu.Unlock()
		if k.ownerID == id {
			k.handler = nil
		}
	}
}

// Run reads keys until the input ends or ctx is cancelled. Keys pressed
// while nothing is subscribed are discarded.
func (k *KeyDismissSource) Run(ctx context.Context) error {
	reader := bufio.NewReader(k.in)
	keys := make(chan byte)
	readErr := make(chan error, 1)

	go func() {
		for {
			b, err := reader.ReadByte()
			if err != nil {
				readErr <- err
				return
			}
			select {
			case keys <- b:
			case <-ctx.Done():
				return
			}
		}
	}()

	var previous byte
	for {
		select {
		case <-ctx.Done():
			return nil
		case err := <-readErr:
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		case b := <-keys:
			// CRLF is one key press
			crlf := b == keyEnter && previous == keyReturn
			previous = b
			if crlf {
				continue
			}
			if b == keyEscape || b == keyEnter || b == keyReturn {
				k.fire()
			}
		}
	}
}

func (k *KeyDismissSource) fire() {
	k.mu.Lock()
	handler := k.handler
	k.mu.Unlock()

	if handler == nil {
		return
	}
	k.logger.Debug("dismiss key pressed")
	handler()
}
