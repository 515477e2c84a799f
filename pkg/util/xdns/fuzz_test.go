package xdns

import "testing"

// =============================================================================
// 主机名校验模糊测试
// =============================================================================

func FuzzNew(f *testing.F) {
	f.Add("example.com")
	f.Add("Example.COM.")
	f.Add("a.b-c.d9")
	f.Add("123")
	f.Add("-bad-.com")
	f.Add("xn--bcher-kva.example")
	f.Add(`a\.b.com`)
	f.Add("foo..bar")
	f.Add(".")
	f.Add("")

	f.Fuzz(func(t *testing.T, s string) {
		h, err := New(s)
		if err != nil {
			return
		}
		// 构造成功的主机名非空，且规范化是幂等的。
		if h.String() == "" {
			t.Fatalf("New(%q) succeeded with empty hostname", s)
		}
		again, err := New(h.String())
		if err != nil {
			t.Fatalf("re-validating normalized form %q failed: %v", h.String(), err)
		}
		if h != again {
			t.Errorf("normalization not idempotent: %q → %q → %q", s, h, again)
		}
	})
}
