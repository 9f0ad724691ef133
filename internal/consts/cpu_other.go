//go:build !arm64

package consts

const (
	HasSHA1 = false
	HasSHA2 = false
)
