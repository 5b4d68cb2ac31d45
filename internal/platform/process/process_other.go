//go:build !unix

package process

import (
	"os"
	"syscall"
)

func detachedAttr() *syscall.SysProcAttr {
	return nil
}

func Alive(pid int) bool {
	if pid <= 0 {
		return false
	}
	proc, err := os.FindProcess(pid)
	if err != nil {
		return false
	}
	_ = proc.Release()
	return true
}
