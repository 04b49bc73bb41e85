package ports

// ExitHook schedules callbacks to run once when the process terminates.
type ExitHook interface {
	Add(fn func())
}

// Globber expands filesystem patterns into matching paths.
type Globber interface {
	Glob(pattern string) ([]string, error)
}

// Checksummer computes content digests for staged files.
type Checksummer interface {
	SHA256(path string) (string, error)
}
