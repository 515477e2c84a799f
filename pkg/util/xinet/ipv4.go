package xinet

import (
	"fmt"
	"net/netip"
	"strconv"
)

// IPv4Target 表示一个 IPv4 目标：单个地址，或携带前缀长度的网络。
// 不变式：携带前缀时，地址恰好是该网络的基地址（主机位全零）。
// 值类型，可比较，可做 map key。零值无效，通过构造函数获得有效值。
type IPv4Target struct {
	addr      netip.Addr
	prefixLen int16 // noPrefix 表示无前缀
}

// NewIPv4 从地址构造不带前缀的 IPv4 目标。
// 接受纯 IPv4 地址与 IPv4-mapped IPv6 地址（自动去映射），其余输入返回错误。
func NewIPv4(addr netip.Addr) (IPv4Target, error) {
	if addr.Is4In6() {
		addr = addr.Unmap()
	}
	if !addr.Is4() {
		return IPv4Target{}, fmt.Errorf("%w: %s is not an IPv4 address", ErrInvalidIPv4, addrOrZero(addr))
	}
	return IPv4Target{addr: addr, prefixLen: noPrefix}, nil
}

// NewIPv4Net 从地址和前缀长度构造 IPv4 网络目标。
// prefixLen 必须在 [0, 32] 内，且 addr 必须等于自身的网络基地址，
// 否则（调用方传入了含主机位的地址）返回错误而非静默截断。
func NewIPv4Net(addr netip.Addr, prefixLen int) (IPv4Target, error) {
	t, err := NewIPv4(addr)
	if err != nil {
		return IPv4Target{}, err
	}
	if prefixLen < 0 || prefixLen > ipv4Bits {
		return IPv4Target{}, fmt.Errorf("%w: prefix length %d out of range [0,%d]", ErrInvalidIPv4, prefixLen, ipv4Bits)
	}
	if base := networkAddr4(t.addr, prefixLen); base != t.addr {
		return IPv4Target{}, fmt.Errorf("%w: %s has host bits set for /%d (network base is %s)", ErrInvalidIPv4, t.addr, prefixLen, base)
	}
	t.prefixLen = int16(prefixLen)
	return t, nil
}

// ParseIPv4 从字符串解析 IPv4 目标，格式为 "addr" 或 "addr/prefix"。
//
//	ParseIPv4("10.0.0.1")     // 单个地址
//	ParseIPv4("10.0.0.0/8")   // 网络
//	ParseIPv4("10.0.0.1/8")   // 错误：含主机位
func ParseIPv4(s string) (IPv4Target, error) {
	addrPart, prefixLen, err := splitTarget(s, ipv4Bits, ErrInvalidIPv4)
	if err != nil {
		return IPv4Target{}, err
	}
	addr, err := netip.ParseAddr(addrPart)
	if err != nil || !addr.Is4() {
		return IPv4Target{}, fmt.Errorf("%w: %q is not an IPv4 address", ErrInvalidIPv4, addrPart)
	}
	if prefixLen != noPrefix {
		return NewIPv4Net(addr, prefixLen)
	}
	return NewIPv4(addr)
}

// Addr 返回目标的地址。
func (t IPv4Target) Addr() netip.Addr {
	return t.addr
}

// PrefixLen 返回前缀长度；第二个返回值指示前缀是否存在。
func (t IPv4Target) PrefixLen() (int, bool) {
	if !t.IsNet() {
		return 0, false
	}
	return int(t.prefixLen), true
}

// IsNet 报告目标是否为网络（携带前缀）。
func (t IPv4Target) IsNet() bool {
	return t.addr.IsValid() && t.prefixLen != noPrefix
}

// Net 返回目标对应的网络前缀；目标不带前缀时返回 (零值, false)。
// 返回的前缀总是规范形式（基地址 + 前缀长度），由构造不变式保证。
func (t IPv4Target) Net() (netip.Prefix, bool) {
	if !t.IsNet() {
		return netip.Prefix{}, false
	}
	return netip.PrefixFrom(t.addr, int(t.prefixLen)), true
}

// Contains 报告 addr 是否属于该目标：
// 网络目标按前缀包含判断，裸地址目标按相等判断。
// IPv4-mapped IPv6 地址去映射后参与判断，非 IPv4 地址返回 false。
func (t IPv4Target) Contains(addr netip.Addr) bool {
	if !t.addr.IsValid() {
		return false
	}
	if addr.Is4In6() {
		addr = addr.Unmap()
	}
	if !addr.Is4() {
		return false
	}
	if p, ok := t.Net(); ok {
		return p.Contains(addr)
	}
	return t.addr == addr
}

// IsValid 报告目标是否经由构造函数获得（零值返回 false）。
func (t IPv4Target) IsValid() bool {
	return t.addr.IsValid()
}

// String 返回 "addr/prefix" 或 "addr"，与 [ParseIPv4] 互为往返。
// 零值目标返回空字符串。
func (t IPv4Target) String() string {
	if !t.addr.IsValid() {
		return ""
	}
	if t.prefixLen == noPrefix {
		return t.addr.String()
	}
	return t.addr.String() + "/" + strconv.Itoa(int(t.prefixLen))
}

// MarshalText 实现 [encoding.TextMarshaler]。零值目标返回错误。
func (t IPv4Target) MarshalText() ([]byte, error) {
	if !t.addr.IsValid() {
		return nil, fmt.Errorf("%w: cannot marshal zero target", ErrInvalidIPv4)
	}
	return []byte(t.String()), nil
}

// UnmarshalText 实现 [encoding.TextUnmarshaler]。
func (t *IPv4Target) UnmarshalText(text []byte) error {
	parsed, err := ParseIPv4(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// addrOrZero 为错误消息提供地址的可读形式，无效地址显示为 "invalid"。
func addrOrZero(addr netip.Addr) string {
	if !addr.IsValid() {
		return "invalid"
	}
	return addr.String()
}
