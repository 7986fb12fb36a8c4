// SPDX-License-Identifier: EPL-2.0

package audiotest

import "sync"

// Recorder is a diag.Sink that keeps every report for later inspection.
type Recorder struct {
	mu   sync.Mutex
	errs []error
}

func (r *Recorder) Report(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.errs = append(r.errs, err)
}

// Errors returns a copy of the reports received so far.
func (r *Recorder) Errors() []error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]error(nil), r.errs...)
}
