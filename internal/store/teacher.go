package store

import (
	"encoding/json"
	"os"
	"sync"
)

// TeacherDirectory maps teacher usernames to their passwords. It is loaded
// once at startup and read-only afterwards; no endpoint modifies it.
type TeacherDirectory struct {
	mu       sync.RWMutex
	teachers map[string]string
}

// NewTeacherDirectory creates an empty directory. No teacher can log in
// until Load succeeds.
func NewTeacherDirectory() *TeacherDirectory {
	return &TeacherDirectory{teachers: make(map[string]string)}
}

// Load reads the username-to-password JSON file at path. A missing or
// malformed file leaves the directory empty and returns the cause so the
// caller can log it; startup proceeds either way.
func (d *TeacherDirectory) Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	teachers := make(map[string]string)
	if err := json.Unmarshal(data, &teachers); err != nil {
		return err
	}

	d.mu.Lock()
	d.teachers = teachers
	d.mu.Unlock()
	return nil
}

// Lookup returns the stored password for username
func (d *TeacherDirectory) Lookup(username string) (string, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	password, ok := d.teachers[username]
	return password, ok
}

// Len returns the number of registered teachers
func (d *TeacherDirectory) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.teachers)
}
