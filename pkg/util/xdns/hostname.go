package xdns

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/miekg/dns"
)

// 主机名标签的只读校验模式，进程内编译一次。
var (
	// reHostLabel: 字母数字开头结尾，中间可含连字符，总长 1..63。
	reHostLabel = regexp.MustCompile(`(?i)^[a-z0-9]([a-z0-9-]{0,61}[a-z0-9])?$`)
	// reDigitsOnly: 纯数字标签，即便通过字符类校验也要拒绝。
	reDigitsOnly = regexp.MustCompile(`^[0-9]+$`)
)

// Hostname 是经过校验的不可变 DNS 主机名。
// 零值无效，通过 [New] 构造；构造后只读，可安全并发共享（克隆零成本）。
type Hostname struct {
	name string
}

// New 从字符串构造主机名。
//
// 校验分两步：先由 dns.IsDomainName 做结构校验（转义序列、标签 ≤63、
// 总长 ≤255），再将规范化形式（小写、去末尾点）逐标签套用主机名规则。
// 纯数字标签被拒绝：与裸数字 token 存在歧义。空主机名被拒绝。
// 任何一步失败都返回包装 [ErrInvalidInput] 的错误。
func New(s string) (Hostname, error) {
	if _, ok := dns.IsDomainName(s); !ok {
		return Hostname{}, fmt.Errorf("%w: %q is not a well-formed domain name", ErrInvalidInput, s)
	}
	name := strings.TrimSuffix(dns.CanonicalName(s), ".")
	if name == "" {
		return Hostname{}, fmt.Errorf("%w: empty hostname", ErrInvalidInput)
	}
	for _, label := range strings.Split(name, ".") {
		if !isValidHostLabel(label) {
			return Hostname{}, fmt.Errorf("%w: invalid host label %q in %q", ErrInvalidInput, label, s)
		}
	}
	return Hostname{name: name}, nil
}

// isValidHostLabel 判断单个点分标签是否符合主机名规则。
func isValidHostLabel(label string) bool {
	return reHostLabel.MatchString(label) && !reDigitsOnly.MatchString(label)
}

// IsValid 报告主机名是否经由 [New] 获得（零值返回 false）。
func (h Hostname) IsValid() bool {
	return h.name != ""
}

// String 返回规范化后的主机名（小写、无末尾点）。零值返回空字符串。
func (h Hostname) String() string {
	return h.name
}

// MarshalText 实现 [encoding.TextMarshaler]。零值返回错误。
func (h Hostname) MarshalText() ([]byte, error) {
	if !h.IsValid() {
		return nil, fmt.Errorf("%w: cannot marshal zero Hostname", ErrInvalidInput)
	}
	return []byte(h.name), nil
}

// UnmarshalText 实现 [encoding.TextUnmarshaler]，校验规则与 [New] 相同。
func (h *Hostname) UnmarshalText(text []byte) error {
	parsed, err := New(string(text))
	if err != nil {
		return err
	}
	*h = parsed
	return nil
}
