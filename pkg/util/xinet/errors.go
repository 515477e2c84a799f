package xinet

import "errors"

var (
	// ErrInvalidIPv4 表示无效的 IPv4 目标（语法错误、前缀越界或含主机位）。
	ErrInvalidIPv4 = errors.New("xinet: invalid IPv4 target")

	// ErrInvalidIPv6 表示无效的 IPv6 目标（语法错误、前缀越界或含主机位）。
	ErrInvalidIPv6 = errors.New("xinet: invalid IPv6 target")

	// ErrUnrecognized 表示两个地址族都无法识别的输入。
	ErrUnrecognized = errors.New("xinet: unrecognized address target")
)
