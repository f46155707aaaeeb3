package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTeachersFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "teachers.json")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestTeacherDirectory_Load(t *testing.T) {
	path := writeTeachersFile(t, `{"mrodriguez": "art123", "mchen": "chess456"}`)

	d := NewTeacherDirectory()
	require.NoError(t, d.Load(path))

	assert.Equal(t, 2, d.Len())

	password, ok := d.Lookup("mrodriguez")
	require.True(t, ok)
	assert.Equal(t, "art123", password)

	_, ok = d.Lookup("unknown")
	assert.False(t, ok)
}

func TestTeacherDirectory_LoadMissingFile(t *testing.T) {
	d := NewTeacherDirectory()

	err := d.Load(filepath.Join(t.TempDir(), "does-not-exist.json"))
	assert.Error(t, err)
	assert.Equal(t, 0, d.Len(), "directory should stay empty when the file is missing")
}

func TestTeacherDirectory_LoadMalformedFile(t *testing.T) {
	path := writeTeachersFile(t, `{"mrodriguez": `)

	d := NewTeacherDirectory()
	err := d.Load(path)
	assert.Error(t, err)
	assert.Equal(t, 0, d.Len(), "directory should stay empty when the file is malformed")
}
