package store

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/skillscope/internal/logger"
	"github.com/MKhiriev/skillscope/internal/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSessionStore_RestoreEmpty(t *testing.T) {
	s := NewSessionStore(NewMemoryKeyValueStore(), logger.Nop())

	assert.Nil(t, s.Restore(context.Background()))
	assert.Nil(t, s.Current())
}

func TestSessionStore_EstablishThenRestore(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKeyValueStore()

	require.NoError(t, NewSessionStore(kv, logger.Nop()).Establish(ctx, jane()))

	// a fresh process sees the persisted session
	restored := NewSessionStore(kv, logger.Nop()).Restore(ctx)
	require.NotNil(t, restored)
	assert.Equal(t, jane(), *restored)
}

func TestSessionStore_RestoreIsIdempotent(t *testing.T) {
	ctx := context.Background()
	s := NewSessionStore(NewMemoryKeyValueStore(), logger.Nop())
	require.NoError(t, s.Establish(ctx, jane()))

	first := s.Restore(ctx)
	second := s.Restore(ctx)
	assert.Equal(t, first, second)
}

func TestSessionStore_RestoreCorruptClearsKey(t *testing.T) {
	for name, stored := range map[string]string{
		"not json":         "{broken",
		"missing email":    `{"username":"jane","password":"p"}`,
		"array not object": `[]`,
	} {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			kv := NewMemoryKeyValueStore()
			require.NoError(t, kv.Set(ctx, SessionKey, stored))
			s := NewSessionStore(kv, logger.Nop())

			assert.Nil(t, s.Restore(ctx))

			_, err := kv.Get(ctx, SessionKey)
			assert.ErrorIs(t, err, ErrKeyNotFound)
			assert.Nil(t, s.Restore(ctx))
		})
	}
}

func TestSessionStore_CurrentReturnsCopy(t *testing.T) {
	s := NewSessionStore(NewMemoryKeyValueStore(), logger.Nop())
	require.NoError(t, s.Establish(context.Background(), jane()))

	current := s.Current()
	current.FullName = "changed"

	assert.Equal(t, "Jane Doe", s.Current().FullName)
}

func TestSessionStore_Clear(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKeyValueStore()
	s := NewSessionStore(kv, logger.Nop())
	require.NoError(t, s.Establish(ctx, jane()))

	require.NoError(t, s.Clear(ctx))

	assert.Nil(t, s.Current())
	assert.Nil(t, s.Restore(ctx))
}

func TestSessionStore_Establish_WriteError(t *testing.T) {
	ctrl := gomock.NewController(t)
	kv := mock.NewMockKeyValueStore(ctrl)
	kv.EXPECT().Set(gomock.Any(), SessionKey, gomock.Any()).Return(errors.New("full"))
	s := NewSessionStore(kv, logger.Nop())

	err := s.Establish(context.Background(), jane())
	require.Error(t, err)
	assert.Nil(t, s.Current())
}

func TestSessionStore_Clear_RemoveErrorStillSignsOut(t *testing.T) {
	ctrl := gomock.NewController(t)
	kv := mock.NewMockKeyValueStore(ctrl)
	kv.EXPECT().Set(gomock.Any(), SessionKey, gomock.Any()).Return(nil)
	kv.EXPECT().Remove(gomock.Any(), SessionKey).Return(errors.New("read-only"))
	s := NewSessionStore(kv, logger.Nop())
	require.NoError(t, s.Establish(context.Background(), jane()))

	err := s.Clear(context.Background())
	require.Error(t, err)
	assert.Nil(t, s.Current())
}

func TestSessionStore_Restore_ReadError(t *testing.T) {
	ctrl := gomock.NewController(t)
	kv := mock.NewMockKeyValueStore(ctrl)
	kv.EXPECT().Get(gomock.Any(), SessionKey).Return("", errors.New("io"))

	assert.Nil(t, NewSessionStore(kv, logger.Nop()).Restore(context.Background()))
}
