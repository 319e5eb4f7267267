package console

import (
	"bufio"
	"io"
)

type LineSource interface {
	ReadLine() (string, error)
}

type ScannerLineSource struct {
	scanner *bufio.Scanner
}

var _ LineSource = (*ScannerLineSource)(nil)

func NewScannerLineSource(r io.Reader) *ScannerLineSource {
	return &ScannerLineSource{scanner: bufio.NewScanner(r)}
}

// Returns io.EOF once the reader is exhausted.
func (s *ScannerLineSource) ReadLine() (string, error) {
	if s.scanner.Scan() {
		return s.scanner.Text(), nil
	}
	if err := s.scanner.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}
