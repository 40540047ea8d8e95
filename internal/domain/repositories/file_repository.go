package repositories

// FileRepository reads and writes whole files. Every call opens, completes and
// closes its file before returning.
type FileRepository interface {
	// ReadFile returns the full content of the file at path.
	ReadFile(path string) ([]byte, error)

	// WriteFile replaces the content of the file at path, creating it when missing.
	WriteFile(path string, data []byte) error
}
