// SPDX-License-Identifier: EPL-2.0

package processors

import "github.com/ossrs/go-oryx-lib/errors"

var (
	// ErrUnknownFormat indicates no decoder is registered for a file extension
	ErrUnknownFormat = errors.New("no decoder for file extension")
)
