//go:build unix

package files

import (
	"io/fs"
	"syscall"
)

// fillSys copies the stat fields that io/fs does not surface: link count,
// ownership, inode and block count.
func fillSys(r *Record, info fs.FileInfo) {
	st, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return
	}
	r.Links = uint64(st.Nlink)
	r.UID = st.Uid
	r.GID = st.Gid
	r.Inode = st.Ino
	r.Blocks = uint64(st.Blocks)
}
