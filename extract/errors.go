// SPDX-License-Identifier: EPL-2.0

package extract

import "errors"

// ErrUnsupportedFile marks files whose extension no registered decoder
// handles.
var ErrUnsupportedFile = errors.New("unsupported file type")
