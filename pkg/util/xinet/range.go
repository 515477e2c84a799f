package xinet

import (
	"fmt"

	"go4.org/netipx"
)

// Range 返回目标覆盖的地址范围：
// 网络目标返回整个网络（基地址到末地址），裸地址目标返回单地址范围。
// 零值目标返回无效范围。
func (t IPv4Target) Range() netipx.IPRange {
	if p, ok := t.Net(); ok {
		return netipx.RangeOfPrefix(p)
	}
	if !t.addr.IsValid() {
		return netipx.IPRange{}
	}
	return netipx.IPRangeFrom(t.addr, t.addr)
}

// Range 返回目标覆盖的地址范围，语义与 [IPv4Target.Range] 相同。
func (t IPv6Target) Range() netipx.IPRange {
	if p, ok := t.Net(); ok {
		return netipx.RangeOfPrefix(p)
	}
	if !t.addr.IsValid() {
		return netipx.IPRange{}
	}
	return netipx.IPRangeFrom(t.addr, t.addr)
}

// Range 返回目标覆盖的地址范围，分派到所持变体。
func (t Target) Range() netipx.IPRange {
	switch t.version {
	case V4:
		return t.v4.Range()
	case V6:
		return t.v6.Range()
	default:
		return netipx.IPRange{}
	}
}

// ParseAll 逐个解析目标字符串。任何一个失败即整体失败，并标注出错的条目。
// 空切片或 nil 返回 (nil, nil)。
func ParseAll(strs []string) ([]Target, error) {
	if len(strs) == 0 {
		return nil, nil
	}
	targets := make([]Target, 0, len(strs))
	for _, s := range strs {
		t, err := Parse(s)
		if err != nil {
			return nil, fmt.Errorf("parse target %q: %w", s, err)
		}
		targets = append(targets, t)
	}
	return targets, nil
}

// IPSetOf 将目标集合并为 [*netipx.IPSet]，重叠和相邻的范围自动合并，
// 提供 O(log n) 的包含查询。零值目标返回错误。
// 空参数返回空的 IPSet（非 nil）。
func IPSetOf(targets ...Target) (*netipx.IPSet, error) {
	var b netipx.IPSetBuilder
	for i, t := range targets {
		r := t.Range()
		if !r.IsValid() {
			return nil, fmt.Errorf("%w: target [%d] is the zero Target", ErrUnrecognized, i)
		}
		b.AddRange(r)
	}
	set, err := b.IPSet()
	if err != nil {
		return nil, fmt.Errorf("build IPSet: %w", err)
	}
	return set, nil
}
