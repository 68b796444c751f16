//go:build linux

// Package ioctl wraps the ioctl system call.
package ioctl

import (
	"fmt"
	"reflect"
	"syscall"
)

// Do executes an ioctl call with an optional pointer argument.
func Do(fd uintptr, command uintptr, ptr interface{}) error {
	var p uintptr

	if ptr != nil {
		v := reflect.ValueOf(ptr)
		p = v.Pointer()
	}

	if _, _, errno := syscall.Syscall(syscall.SYS_IOCTL, fd, command, p); errno != 0 {
		return fmt.Errorf("ioctl 0x%04x failed: %v", command, errno)
	}
	return nil
}
