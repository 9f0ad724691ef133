package consts

import (
	"golang.org/x/sys/cpu"
)

var (
	HasSHA1 = cpu.ARM64.HasSHA1
	HasSHA2 = cpu.ARM64.HasSHA2
)
