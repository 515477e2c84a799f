package xinet

import (
	"fmt"
	"net/netip"
	"strconv"
)

// IPv6Target 表示一个 IPv6 目标：单个地址，或携带前缀长度的网络。
// 与 [IPv4Target] 同构，不变式相同：携带前缀时地址恰好是网络基地址。
// 值类型，可比较。零值无效。
type IPv6Target struct {
	addr      netip.Addr
	prefixLen int16 // noPrefix 表示无前缀
}

// NewIPv6 从地址构造不带前缀的 IPv6 目标。
// 接受任何 IPv6 地址，包括 IPv4-mapped 形式（::ffff:a.b.c.d，保持原样）。
// 纯 IPv4 地址或携带 zone ID 的地址返回错误：前缀运算对 zone 无意义，
// 且 netipx 会静默丢弃 zone 信息。
func NewIPv6(addr netip.Addr) (IPv6Target, error) {
	if !addr.Is6() {
		return IPv6Target{}, fmt.Errorf("%w: %s is not an IPv6 address", ErrInvalidIPv6, addrOrZero(addr))
	}
	if addr.Zone() != "" {
		return IPv6Target{}, fmt.Errorf("%w: zone ID is not supported: %s", ErrInvalidIPv6, addr)
	}
	return IPv6Target{addr: addr, prefixLen: noPrefix}, nil
}

// NewIPv6Net 从地址和前缀长度构造 IPv6 网络目标。
// prefixLen 必须在 [0, 128] 内，且 addr 必须等于自身的网络基地址，
// 否则返回错误而非静默截断。
func NewIPv6Net(addr netip.Addr, prefixLen int) (IPv6Target, error) {
	t, err := NewIPv6(addr)
	if err != nil {
		return IPv6Target{}, err
	}
	if prefixLen < 0 || prefixLen > ipv6Bits {
		return IPv6Target{}, fmt.Errorf("%w: prefix length %d out of range [0,%d]", ErrInvalidIPv6, prefixLen, ipv6Bits)
	}
	if base := networkAddr16(t.addr, prefixLen); base != t.addr {
		return IPv6Target{}, fmt.Errorf("%w: %s has host bits set for /%d (network base is %s)", ErrInvalidIPv6, t.addr, prefixLen, base)
	}
	t.prefixLen = int16(prefixLen)
	return t, nil
}

// ParseIPv6 从字符串解析 IPv6 目标，格式为 "addr" 或 "addr/prefix"。
//
//	ParseIPv6("2001:db8::1")     // 单个地址
//	ParseIPv6("2001:db8::/32")   // 网络
//	ParseIPv6("2001:db8::1/32")  // 错误：含主机位
func ParseIPv6(s string) (IPv6Target, error) {
	addrPart, prefixLen, err := splitTarget(s, ipv6Bits, ErrInvalidIPv6)
	if err != nil {
		return IPv6Target{}, err
	}
	addr, err := netip.ParseAddr(addrPart)
	if err != nil || !addr.Is6() {
		return IPv6Target{}, fmt.Errorf("%w: %q is not an IPv6 address", ErrInvalidIPv6, addrPart)
	}
	if prefixLen != noPrefix {
		return NewIPv6Net(addr, prefixLen)
	}
	return NewIPv6(addr)
}

// Addr 返回目标的地址。
func (t IPv6Target) Addr() netip.Addr {
	return t.addr
}

// PrefixLen 返回前缀长度；第二个返回值指示前缀是否存在。
func (t IPv6Target) PrefixLen() (int, bool) {
	if !t.IsNet() {
		return 0, false
	}
	return int(t.prefixLen), true
}

// IsNet 报告目标是否为网络（携带前缀）。
func (t IPv6Target) IsNet() bool {
	return t.addr.IsValid() && t.prefixLen != noPrefix
}

// Net 返回目标对应的网络前缀；目标不带前缀时返回 (零值, false)。
func (t IPv6Target) Net() (netip.Prefix, bool) {
	if !t.IsNet() {
		return netip.Prefix{}, false
	}
	return netip.PrefixFrom(t.addr, int(t.prefixLen)), true
}

// Contains 报告 addr 是否属于该目标：
// 网络目标按前缀包含判断，裸地址目标按相等判断。
// 非 IPv6 地址（含无效地址）返回 false。
func (t IPv6Target) Contains(addr netip.Addr) bool {
	if !t.addr.IsValid() || !addr.Is6() || addr.Zone() != "" {
		return false
	}
	if p, ok := t.Net(); ok {
		return p.Contains(addr)
	}
	return t.addr == addr
}

// IsValid 报告目标是否经由构造函数获得（零值返回 false）。
func (t IPv6Target) IsValid() bool {
	return t.addr.IsValid()
}

// String 返回 "addr/prefix" 或 "addr"，与 [ParseIPv6] 互为往返。
// 零值目标返回空字符串。
func (t IPv6Target) String() string {
	if !t.addr.IsValid() {
		return ""
	}
	if t.prefixLen == noPrefix {
		return t.addr.String()
	}
	return t.addr.String() + "/" + strconv.Itoa(int(t.prefixLen))
}

// MarshalText 实现 [encoding.TextMarshaler]。零值目标返回错误。
func (t IPv6Target) MarshalText() ([]byte, error) {
	if !t.addr.IsValid() {
		return nil, fmt.Errorf("%w: cannot marshal zero target", ErrInvalidIPv6)
	}
	return []byte(t.String()), nil
}

// UnmarshalText 实现 [encoding.TextUnmarshaler]。
func (t *IPv6Target) UnmarshalText(text []byte) error {
	parsed, err := ParseIPv6(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
