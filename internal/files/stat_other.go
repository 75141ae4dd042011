//go:build !unix

package files

import "io/fs"

// fillSys is a no-op on platforms without a unix stat structure; the
// sys-level columns render as blank cells there.
func fillSys(r *Record, info fs.FileInfo) {}
