package main

import (
	"os"

	"golang.org/x/sys/unix"
)

func init() {
	st, err := os.Stdin.Stat()
	if err != nil || st.Mode()&os.ModeNamedPipe == 0 {
		return
	}

	// Raise the size of the incoming pipe. Do so blindly without err
	// checks, trying smaller and smaller powers of 2 (starting from
	// 32MiB), since the entire process is opportunistic and dependent on
	// system tuning. Only works on Linux, capped by
	// /proc/sys/fs/pipe-max-size.
	for pipeSize := 32 << 20; pipeSize > 512; pipeSize /= 2 {
		if _, err := unix.FcntlInt(os.Stdin.Fd(), unix.F_SETPIPE_SZ, pipeSize); err == nil {
			return
		}
	}
}
