package xinet

import (
	"fmt"
	"strconv"
	"strings"
)

// noPrefix 表示目标不携带前缀长度。
const noPrefix = -1

// splitTarget 将 "addr" 或 "addr/prefix" 拆分为地址段和前缀长度。
// 无前缀时返回 prefixLen = noPrefix。bits 为地址族位宽，errKind 为族错误哨兵。
//
// 前缀段必须是 [0, bits] 内的十进制整数。strconv.ParseUint 本身拒绝
// 符号前缀与空串，因此 "/+8"、"/-1"、"/" 结尾都会落入错误分支。
// 多于一个 '/' 是解析错误。
func splitTarget(s string, bits int, errKind error) (addrPart string, prefixLen int, err error) {
	addrPart, prefixPart, found := strings.Cut(s, "/")
	if !found {
		return addrPart, noPrefix, nil
	}
	if strings.Contains(prefixPart, "/") {
		return "", 0, fmt.Errorf("%w: more than one '/' in %q", errKind, s)
	}
	n, err := strconv.ParseUint(prefixPart, 10, 8)
	if err != nil || int(n) > bits {
		return "", 0, fmt.Errorf("%w: invalid prefix length %q (want integer in [0,%d])", errKind, prefixPart, bits)
	}
	return addrPart, int(n), nil
}
