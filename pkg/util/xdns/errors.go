package xdns

import "errors"

var (
	// ErrInvalidInput 表示主机名语法或结构校验失败。
	ErrInvalidInput = errors.New("xdns: invalid input")

	// ErrProtocol 表示解析期间的失败。
	// 解析器错误、上下文取消与执行失败统一归入此类。
	ErrProtocol = errors.New("xdns: protocol error")
)
