package xinet

import (
	"net/netip"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantVersion Version
		wantErr     bool
	}{
		{
			name:        "IPv4 network",
			input:       "10.0.0.0/8",
			wantVersion: V4,
		},
		{
			name:        "IPv4 bare",
			input:       "192.168.1.1",
			wantVersion: V4,
		},
		{
			name:        "IPv6 bare",
			input:       "::1",
			wantVersion: V6,
		},
		{
			name:        "IPv6 network",
			input:       "2001:db8::/32",
			wantVersion: V6,
		},
		{
			name:        "IPv4-mapped string is IPv6",
			input:       "::ffff:10.0.0.1",
			wantVersion: V6,
		},
		{
			name:    "unrecognized",
			input:   "not-an-ip",
			wantErr: true,
		},
		{
			name:    "host bits set in either family",
			input:   "10.0.0.1/8",
			wantErr: true,
		},
		{
			name:    "empty",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target, err := Parse(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnrecognized)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantVersion, target.Version())
			assert.Equal(t, tt.input, target.String())

			v4, okV4 := target.V4()
			v6, okV6 := target.V6()
			switch tt.wantVersion {
			case V4:
				assert.True(t, okV4)
				assert.False(t, okV6)
				assert.Equal(t, tt.input, v4.String())
			case V6:
				assert.True(t, okV6)
				assert.False(t, okV4)
				assert.Equal(t, tt.input, v6.String())
			}
		})
	}
}

func TestTargetDispatch(t *testing.T) {
	v4net, err := Parse("10.0.0.0/8")
	require.NoError(t, err)
	assert.Equal(t, netip.MustParseAddr("10.0.0.0"), v4net.Addr())
	assert.True(t, v4net.IsNet())
	p, ok := v4net.PrefixLen()
	require.True(t, ok)
	assert.Equal(t, 8, p)
	prefix, ok := v4net.Net()
	require.True(t, ok)
	assert.Equal(t, "10.0.0.0/8", prefix.String())
	assert.True(t, v4net.Contains(netip.MustParseAddr("10.1.2.3")))
	assert.False(t, v4net.Contains(netip.MustParseAddr("11.0.0.1")))

	v6bare, err := Parse("2001:db8::1")
	require.NoError(t, err)
	assert.Equal(t, netip.MustParseAddr("2001:db8::1"), v6bare.Addr())
	assert.False(t, v6bare.IsNet())
	_, ok = v6bare.Net()
	assert.False(t, ok)
	assert.True(t, v6bare.Contains(netip.MustParseAddr("2001:db8::1")))
}

func TestNewDispatch(t *testing.T) {
	v4, err := New(netip.MustParseAddr("10.0.0.1"))
	require.NoError(t, err)
	assert.Equal(t, V4, v4.Version())

	// IPv4-mapped 地址归入 IPv4 变体并去映射。
	mapped, err := New(netip.MustParseAddr("::ffff:10.0.0.1"))
	require.NoError(t, err)
	assert.Equal(t, V4, mapped.Version())
	assert.Equal(t, "10.0.0.1", mapped.String())

	v6, err := New(netip.MustParseAddr("2001:db8::1"))
	require.NoError(t, err)
	assert.Equal(t, V6, v6.Version())

	_, err = New(netip.Addr{})
	assert.ErrorIs(t, err, ErrUnrecognized)
}

func TestNewNetDispatch(t *testing.T) {
	v4, err := NewNet(netip.MustParseAddr("10.0.0.0"), 8)
	require.NoError(t, err)
	assert.Equal(t, "10.0.0.0/8", v4.String())

	v6, err := NewNet(netip.MustParseAddr("2001:db8::"), 32)
	require.NoError(t, err)
	assert.Equal(t, "2001:db8::/32", v6.String())

	// 族内校验原样透出。
	_, err = NewNet(netip.MustParseAddr("10.0.0.1"), 8)
	assert.ErrorIs(t, err, ErrInvalidIPv4)
	_, err = NewNet(netip.MustParseAddr("2001:db8::1"), 32)
	assert.ErrorIs(t, err, ErrInvalidIPv6)

	_, err = NewNet(netip.Addr{}, 8)
	assert.ErrorIs(t, err, ErrUnrecognized)
}

func TestFromV4FromV6ZeroValue(t *testing.T) {
	assert.False(t, FromV4(IPv4Target{}).IsValid())
	assert.False(t, FromV6(IPv6Target{}).IsValid())
}

func TestTargetZeroValue(t *testing.T) {
	var zero Target
	assert.False(t, zero.IsValid())
	assert.Equal(t, V0, zero.Version())
	assert.Equal(t, "", zero.String())
	assert.False(t, zero.IsNet())
	assert.False(t, zero.Addr().IsValid())
	_, ok := zero.Net()
	assert.False(t, ok)
	_, ok = zero.PrefixLen()
	assert.False(t, ok)

	_, err := zero.MarshalText()
	assert.ErrorIs(t, err, ErrUnrecognized)
}

func TestTargetComparable(t *testing.T) {
	a, err := Parse("10.0.0.0/8")
	require.NoError(t, err)
	b, err := Parse("10.0.0.0/8")
	require.NoError(t, err)
	c, err := Parse("10.0.0.0/9")
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)

	// 可直接做 map key。
	seen := map[Target]bool{a: true}
	assert.True(t, seen[b])
	assert.False(t, seen[c])
}

func TestTargetTextRoundTrip(t *testing.T) {
	for _, s := range []string{"10.0.0.1", "10.0.0.0/8", "2001:db8::/32", "::1"} {
		target, err := Parse(s)
		require.NoError(t, err)

		text, err := target.MarshalText()
		require.NoError(t, err)
		assert.Equal(t, s, string(text))

		var restored Target
		require.NoError(t, restored.UnmarshalText(text))
		assert.Equal(t, target, restored)
	}

	var target Target
	assert.ErrorIs(t, target.UnmarshalText([]byte("garbage")), ErrUnrecognized)
}
