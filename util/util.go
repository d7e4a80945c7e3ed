package util

import (
	"bytes"
	"os"
)

// WriteFileIfChanged writes data to name unless the file already holds
// exactly data.
//
// Same interface as [os.WriteFile]: creates name with perm if it doesn't
// exist, but doesn't change perm of an existing file.
func WriteFileIfChanged(name string, data []byte, perm os.FileMode) error {
	contents, err := os.ReadFile(name)
	if err == nil && bytes.Equal(contents, data) {
		return nil
	}
	return os.WriteFile(name, data, perm)
}
