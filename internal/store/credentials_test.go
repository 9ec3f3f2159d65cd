package store

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/MKhiriev/skillscope/internal/logger"
	"github.com/MKhiriev/skillscope/internal/mock"
	"github.com/MKhiriev/skillscope/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func jane() models.UserRecord {
	return models.UserRecord{
		FullName:         "Jane Doe",
		Email:            "jane@x.io",
		Phone:            "555",
		Username:         "jane",
		Password:         "secret1",
		SecurityQuestion: models.SecurityQuestions[0],
		SecurityAnswer:   "Rex",
	}
}

func TestCredentialStore_LoadAll(t *testing.T) {
	tests := []struct {
		name   string
		stored *string
		want   []string
	}{
		{name: "absent key", stored: nil, want: []string{}},
		{name: "empty array", stored: ptr("[]"), want: []string{}},
		{name: "not json", stored: ptr("{oops"), want: []string{}},
		{name: "json object instead of array", stored: ptr(`{"email":"a@b.c"}`), want: []string{}},
		{name: "null", stored: ptr("null"), want: []string{}},
		{
			name:   "well formed",
			stored: ptr(`[{"email":"a@b.c","username":"a","password":"p"},{"email":"d@e.f","username":"d","password":"q"}]`),
			want:   []string{"a@b.c", "d@e.f"},
		},
		{
			name:   "malformed entries dropped",
			stored: ptr(`[{"email":"a@b.c","username":"a","password":"p"},42,{"email":"","username":"x","password":"p"},{"email":"d@e.f","username":"d","password":"q"}]`),
			want:   []string{"a@b.c", "d@e.f"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			kv := NewMemoryKeyValueStore()
			if tt.stored != nil {
				require.NoError(t, kv.Set(ctx, UsersKey, *tt.stored))
			}

			records := NewCredentialStore(kv, logger.Nop()).LoadAll(ctx)

			require.NotNil(t, records)
			emails := make([]string, 0, len(records))
			for _, r := range records {
				emails = append(emails, r.Email)
			}
			assert.Equal(t, tt.want, emails)
		})
	}
}

func TestCredentialStore_LoadAll_ReadError(t *testing.T) {
	ctrl := gomock.NewController(t)
	kv := mock.NewMockKeyValueStore(ctrl)
	kv.EXPECT().Get(gomock.Any(), UsersKey).Return("", errors.New("disk gone"))

	records := NewCredentialStore(kv, logger.Nop()).LoadAll(context.Background())
	assert.Empty(t, records)
}

func TestCredentialStore_SaveAll_RoundTrip(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKeyValueStore()
	s := NewCredentialStore(kv, logger.Nop())

	require.NoError(t, s.SaveAll(ctx, []models.UserRecord{jane()}))

	records := s.LoadAll(ctx)
	require.Len(t, records, 1)
	assert.Equal(t, jane(), records[0])

	raw, err := kv.Get(ctx, UsersKey)
	require.NoError(t, err)
	var decoded []map[string]any
	require.NoError(t, json.Unmarshal([]byte(raw), &decoded))
	assert.Equal(t, "jane@x.io", decoded[0]["email"])
	assert.Equal(t, "Rex", decoded[0]["securityAnswer"])
}

func TestCredentialStore_SaveAll_NilWritesEmptyArray(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKeyValueStore()

	require.NoError(t, NewCredentialStore(kv, logger.Nop()).SaveAll(ctx, nil))

	raw, err := kv.Get(ctx, UsersKey)
	require.NoError(t, err)
	assert.Equal(t, "[]", raw)
}

func TestCredentialStore_SaveAll_WriteError(t *testing.T) {
	ctrl := gomock.NewController(t)
	kv := mock.NewMockKeyValueStore(ctrl)
	kv.EXPECT().Set(gomock.Any(), UsersKey, "[]").Return(errors.New("read-only"))

	err := NewCredentialStore(kv, logger.Nop()).SaveAll(context.Background(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "save accounts")
}

func TestCredentialStore_Update(t *testing.T) {
	ctx := context.Background()
	s := NewCredentialStore(NewMemoryKeyValueStore(), logger.Nop())
	require.NoError(t, s.SaveAll(ctx, []models.UserRecord{jane()}))

	err := s.Update(ctx, func(records []models.UserRecord) ([]models.UserRecord, error) {
		require.Len(t, records, 1)
		records[0].Location = "Pune"
		return records, nil
	})
	require.NoError(t, err)

	assert.Equal(t, "Pune", s.LoadAll(ctx)[0].Location)
}

func TestCredentialStore_Update_FnErrorSavesNothing(t *testing.T) {
	ctx := context.Background()
	s := NewCredentialStore(NewMemoryKeyValueStore(), logger.Nop())
	require.NoError(t, s.SaveAll(ctx, []models.UserRecord{jane()}))
	sentinel := errors.New("conflict")

	err := s.Update(ctx, func(records []models.UserRecord) ([]models.UserRecord, error) {
		return nil, sentinel
	})
	assert.ErrorIs(t, err, sentinel)
	assert.Len(t, s.LoadAll(ctx), 1)
}

func TestCredentialStore_Update_LockError(t *testing.T) {
	ctrl := gomock.NewController(t)
	kv := mock.NewMockKeyValueStore(ctrl)
	kv.EXPECT().Lock(gomock.Any()).Return(nil, ErrLockTimeout)

	called := false
	err := NewCredentialStore(kv, logger.Nop()).Update(context.Background(), func(records []models.UserRecord) ([]models.UserRecord, error) {
		called = true
		return records, nil
	})
	assert.ErrorIs(t, err, ErrLockTimeout)
	assert.False(t, called)
}

func TestCredentialStore_Update_ReleasesLock(t *testing.T) {
	ctrl := gomock.NewController(t)
	kv := mock.NewMockKeyValueStore(ctrl)

	released := false
	gomock.InOrder(
		kv.EXPECT().Lock(gomock.Any()).Return(func() { released = true }, nil),
		kv.EXPECT().Get(gomock.Any(), UsersKey).Return("", ErrKeyNotFound),
		kv.EXPECT().Set(gomock.Any(), UsersKey, gomock.Any()).Return(nil),
	)

	err := NewCredentialStore(kv, logger.Nop()).Update(context.Background(), func(records []models.UserRecord) ([]models.UserRecord, error) {
		return append(records, jane()), nil
	})
	require.NoError(t, err)
	assert.True(t, released)
}

func ptr(s string) *string {
	return &s
}
