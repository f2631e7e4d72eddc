package srp6a

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fzdarsky/srp6a/internal/randsrc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestGenKey_PropagatesRandomSourceFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := randsrc.NewMockSource(ctrl)

	wantErr := errors.New("entropy pool exhausted")
	mock.EXPECT().Read(gomock.Any()).Return(0, wantErr)

	restore := setRandSource(mock)
	defer restore()

	buf, err := GenKey(DefaultEphemeralBytes)
	require.Error(t, err)
	assert.Nil(t, buf)
	assert.True(t, errors.Is(err, wantErr))

	var srpErr *Error
	require.ErrorAs(t, err, &srpErr)
	assert.Equal(t, KindRandomSource, srpErr.Kind)
}

func TestGenKey_RestoreReturnsDefaultSource(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := randsrc.NewMockSource(ctrl)
	mock.EXPECT().Read(gomock.Any()).Return(0, errors.New("boom"))

	restore := setRandSource(mock)
	_, err := GenKey(DefaultEphemeralBytes)
	require.Error(t, err)
	restore()

	buf, err := GenKey(DefaultEphemeralBytes)
	require.NoError(t, err)
	assert.Len(t, buf, DefaultEphemeralBytes)
}

func TestGenKeyContext_PropagatesCancellation(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := randsrc.NewMockSource(ctrl)
	started := make(chan struct{})
	block := make(chan struct{})
	done := make(chan struct{})
	mock.EXPECT().Read(gomock.Any()).DoAndReturn(func(p []byte) (int, error) {
		close(started)
		<-block
		close(done)
		return len(p), nil
	})

	restore := setRandSource(mock)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	buf, err := GenKeyContext(ctx, DefaultEphemeralBytes)
	require.Error(t, err)
	assert.Nil(t, buf)
	assert.True(t, errors.Is(err, context.Canceled))

	var srpErr *Error
	require.ErrorAs(t, err, &srpErr)
	assert.Equal(t, KindRandomSource, srpErr.Kind)

	// Wait for the abandoned background read to actually reach the mock
	// before restoring the source and tearing down the controller, so the
	// mock's expectation is satisfied deterministically rather than racing
	// test cleanup.
	<-started
	close(block)
	<-done
	restore()
}

func TestGenKeyContext_SucceedsWithoutCancellation(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	buf, err := GenKeyContext(ctx, DefaultEphemeralBytes)
	require.NoError(t, err)
	assert.Len(t, buf, DefaultEphemeralBytes)
}
