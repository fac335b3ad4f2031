package pkg

import (
	"io"
	"sync"

	"go.uber.org/multierr"
)

// CombinedWriter fans each write out to all of its writers. A write succeeds
// as long as one writer took the whole line; failures of the others are
// collected and available via Errors.
type CombinedWriter struct {
	writers []io.Writer

	mu   sync.Mutex
	errs error
}

func NewCombinedWriter(writers ...io.Writer) *CombinedWriter {
	cw := &CombinedWriter{}
	for _, w := range writers {
		if w != nil {
			cw.writers = append(cw.writers, w)
		}
	}
	return cw
}

func (cw *CombinedWriter) Write(p []byte) (int, error) {
	var (
		errs      error
		delivered bool
	)
	for _, w := range cw.writers {
		n, err := w.Write(p)
		if err == nil && n < len(p) {
			err = io.ErrShortWrite
		}
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		delivered = true
	}

	if errs != nil {
		cw.mu.Lock()
		cw.errs = multierr.Append(cw.errs, errs)
		cw.mu.Unlock()
	}
	if !delivered && len(cw.writers) > 0 {
		return 0, errs
	}
	return len(p), nil
}

// Errors returns every write error seen so far.
func (cw *CombinedWriter) Errors() []error {
	cw.mu.Lock()
	defer cw.mu.Unlock()
	return multierr.Errors(cw.errs)
}
