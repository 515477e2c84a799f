package xinet

import (
	"fmt"
	"net/netip"
)

// Target 是族无关的地址目标：恰好持有一个 [IPv4Target] 或 [IPv6Target]。
// 访问器自动分派到所持变体，调用方无需按族分支。
// 值类型，可比较。零值无效（Version 为 V0）。
type Target struct {
	version Version
	v4      IPv4Target
	v6      IPv6Target
}

// FromV4 将 IPv4 目标包装为族无关目标。零值输入得到零值 Target。
func FromV4(t IPv4Target) Target {
	if !t.IsValid() {
		return Target{}
	}
	return Target{version: V4, v4: t}
}

// FromV6 将 IPv6 目标包装为族无关目标。零值输入得到零值 Target。
func FromV6(t IPv6Target) Target {
	if !t.IsValid() {
		return Target{}
	}
	return Target{version: V6, v6: t}
}

// New 从地址构造不带前缀的目标，按地址族自动分派。
// IPv4-mapped IPv6 地址归入 IPv4 变体（去映射），与 [AddrVersion] 一致。
func New(addr netip.Addr) (Target, error) {
	switch AddrVersion(addr) {
	case V4:
		t, err := NewIPv4(addr)
		if err != nil {
			return Target{}, err
		}
		return FromV4(t), nil
	case V6:
		t, err := NewIPv6(addr)
		if err != nil {
			return Target{}, err
		}
		return FromV6(t), nil
	default:
		return Target{}, fmt.Errorf("%w: invalid address", ErrUnrecognized)
	}
}

// NewNet 从地址和前缀长度构造网络目标，按地址族自动分派。
// 与族内构造函数相同，addr 必须是规范网络基地址。
func NewNet(addr netip.Addr, prefixLen int) (Target, error) {
	switch AddrVersion(addr) {
	case V4:
		t, err := NewIPv4Net(addr, prefixLen)
		if err != nil {
			return Target{}, err
		}
		return FromV4(t), nil
	case V6:
		t, err := NewIPv6Net(addr, prefixLen)
		if err != nil {
			return Target{}, err
		}
		return FromV6(t), nil
	default:
		return Target{}, fmt.Errorf("%w: invalid address", ErrUnrecognized)
	}
}

// Parse 从字符串解析目标：先尝试 IPv4，再尝试 IPv6。
// 该顺序只对畸形输入起决定作用——格式良好的输入在两族之间无歧义。
// 两族都拒绝时返回包装 [ErrUnrecognized] 的错误。
func Parse(s string) (Target, error) {
	if v4, err := ParseIPv4(s); err == nil {
		return FromV4(v4), nil
	}
	if v6, err := ParseIPv6(s); err == nil {
		return FromV6(v6), nil
	}
	return Target{}, fmt.Errorf("%w: %q", ErrUnrecognized, s)
}

// Version 返回所持变体的地址族；零值目标返回 V0。
func (t Target) Version() Version {
	return t.version
}

// V4 返回所持的 IPv4 变体；目标不是 IPv4 时返回 (零值, false)。
func (t Target) V4() (IPv4Target, bool) {
	if t.version != V4 {
		return IPv4Target{}, false
	}
	return t.v4, true
}

// V6 返回所持的 IPv6 变体；目标不是 IPv6 时返回 (零值, false)。
func (t Target) V6() (IPv6Target, bool) {
	if t.version != V6 {
		return IPv6Target{}, false
	}
	return t.v6, true
}

// Addr 返回目标的地址。零值目标返回无效地址。
func (t Target) Addr() netip.Addr {
	switch t.version {
	case V4:
		return t.v4.Addr()
	case V6:
		return t.v6.Addr()
	default:
		return netip.Addr{}
	}
}

// PrefixLen 返回前缀长度；第二个返回值指示前缀是否存在。
func (t Target) PrefixLen() (int, bool) {
	switch t.version {
	case V4:
		return t.v4.PrefixLen()
	case V6:
		return t.v6.PrefixLen()
	default:
		return 0, false
	}
}

// IsNet 报告目标是否为网络（携带前缀）。
func (t Target) IsNet() bool {
	switch t.version {
	case V4:
		return t.v4.IsNet()
	case V6:
		return t.v6.IsNet()
	default:
		return false
	}
}

// Net 返回目标对应的网络前缀；目标不带前缀时返回 (零值, false)。
func (t Target) Net() (netip.Prefix, bool) {
	switch t.version {
	case V4:
		return t.v4.Net()
	case V6:
		return t.v6.Net()
	default:
		return netip.Prefix{}, false
	}
}

// Contains 报告 addr 是否属于该目标，分派到所持变体。
func (t Target) Contains(addr netip.Addr) bool {
	switch t.version {
	case V4:
		return t.v4.Contains(addr)
	case V6:
		return t.v6.Contains(addr)
	default:
		return false
	}
}

// IsValid 报告目标是否经由构造函数获得（零值返回 false）。
func (t Target) IsValid() bool {
	return t.version != V0
}

// String 返回所持变体的字符串形式，与 [Parse] 互为往返。
// 零值目标返回空字符串。
func (t Target) String() string {
	switch t.version {
	case V4:
		return t.v4.String()
	case V6:
		return t.v6.String()
	default:
		return ""
	}
}

// MarshalText 实现 [encoding.TextMarshaler]。零值目标返回错误。
func (t Target) MarshalText() ([]byte, error) {
	if !t.IsValid() {
		return nil, fmt.Errorf("%w: cannot marshal zero target", ErrUnrecognized)
	}
	return []byte(t.String()), nil
}

// UnmarshalText 实现 [encoding.TextUnmarshaler]。
func (t *Target) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
