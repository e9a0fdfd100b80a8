package terminal

import (
	"context"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyDismissSource(t *testing.T) {
	keys, err := NewKeyDismissSource(strings.NewReader("x\x1bab\r\nq\n"), nil)
	require.NoError(t, err)

	var fired atomic.Int32
	keys.Subscribe(func() { fired.Add(1) })

	require.NoError(t, keys.Run(context.Background()))
	assert.Equal(t, int32(3), fired.Load())
}

func TestKeyDismissSourceUnsubscribe(t *testing.T) {
	keys, err := NewKeyDismissSource(strings.NewReader("\n\n"), nil)
	require.NoError(t, err)

	var first, second atomic.Int32
	unsubscribeFirst := keys.Subscribe(func() { first.Add(1) })
	unsubscribeSecond := keys.Subscribe(func() { second.Add(1) })

	// releasing a replaced subscription leaves the newer one in place
	unsubscribeFirst()

	require.NoError(t, keys.Run(context.Background()))
	assert.Zero(t, first.Load())
	assert.Equal(t, int32(2), second.Load())

	unsubscribeSecond()
	keys.fire()
	assert.Equal(t, int32(2), second.Load())
}

func TestKeyDismissSourceNilReader(t *testing.T) {
	_, err := NewKeyDismissSource(nil, nil)
	assert.ErrorIs(t, err, ErrNilReader)
}
