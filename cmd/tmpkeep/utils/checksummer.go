package utils

import "github.com/codingsince1985/checksum"

// RealChecksummer computes digests using codingsince1985/checksum.
type RealChecksummer struct{}

// SHA256 returns the hex-encoded SHA-256 digest of the file at path.
func (c RealChecksummer) SHA256(path string) (string, error) {
	return checksum.SHA256sum(path)
}
