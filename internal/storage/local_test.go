package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorage_PutGetDelete(t *testing.T) {
	base := t.TempDir()
	s, err := NewLocalStorage(base, nil)
	require.NoError(t, err)
	ctx := context.Background()

	info, err := s.Put(ctx, "members_backup_x/members.sql", strings.NewReader("-- dump"), PutObjectOptions{Size: 7, ContentType: "application/sql"})
	require.NoError(t, err)
	assert.Equal(t, int64(7), info.Size)
	assert.FileExists(t, filepath.Join(base, "members_backup_x", "members.sql"))

	rc, got, err := s.Get(ctx, "members_backup_x/members.sql")
	require.NoError(t, err)
	body, err := io.ReadAll(rc)
	rc.Close()
	require.NoError(t, err)
	assert.Equal(t, "-- dump", string(body))
	assert.Equal(t, int64(7), got.Size)

	require.NoError(t, s.Delete(ctx, "members_backup_x/members.sql"))
	assert.NoDirExists(t, filepath.Join(base, "members_backup_x"))
	assert.DirExists(t, base)

	_, _, err = s.Get(ctx, "members_backup_x/members.sql")
	assert.ErrorIs(t, err, ErrObjectNotFound)

	assert.NoError(t, s.Delete(ctx, "members_backup_x/members.sql"))
}

func TestLocalStorage_RejectsEscapingKeys(t *testing.T) {
	s, err := NewLocalStorage(t.TempDir(), nil)
	require.NoError(t, err)
	ctx := context.Background()

	for _, key := range []string{"", "../etc/passwd", "a/../../b", "/abs/path"} {
		_, err := s.Put(ctx, key, strings.NewReader("x"), PutObjectOptions{})
		assert.ErrorIs(t, err, ErrInvalidKey, key)
	}
}

func TestLocalStorage_PresignGet(t *testing.T) {
	base := t.TempDir()
	s, err := NewLocalStorage(base, nil)
	require.NoError(t, err)

	u, err := s.PresignGet(context.Background(), "a/b.zip", 0)

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(u, "file://"))
	assert.True(t, strings.HasSuffix(u, "/a/b.zip"))
}

func TestNewLocalStorage(t *testing.T) {
	_, err := NewLocalStorage("", nil)
	assert.Error(t, err)

	dir := filepath.Join(t.TempDir(), "nested", "backups")
	_, err = NewLocalStorage(dir, nil)
	require.NoError(t, err)
	st, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, st.IsDir())
}
