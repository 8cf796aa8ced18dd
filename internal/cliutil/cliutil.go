package cliutil

import "os"

// IsTty reports whether f is attached to a terminal, as opposed to a
// pipe or a regular file.
func IsTty(f *os.File) bool {
	st, err := f.Stat()
	if err != nil {
		return false
	}
	return st.Mode()&os.ModeCharDevice != 0
}
