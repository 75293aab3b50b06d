package main

import (
	"fmt"
	"os"

	uuid "github.com/satori/go.uuid"
)

// saveDocument persists a rendered document: bytes go to a uniquely named
// temp file next to the destination first, then a rename, so the output path
// never holds a half-written document. Filesystem errors are returned, never
// swallowed.
func saveDocument(path string, data []byte) error {
	tmpPath := fmt.Sprintf("%s.%s.tmp", path, uuid.NewV4())
	if err := os.WriteFile(tmpPath, data, 0655); err != nil {
		return fmt.Errorf("error writing %s: %v", path, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("error saving %s: %v", path, err)
	}
	return nil
}
