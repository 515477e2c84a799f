package xinet

import (
	"net/netip"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubnetMask4(t *testing.T) {
	tests := []struct {
		prefixLen int
		want      [4]byte
	}{
		{0, [4]byte{0, 0, 0, 0}},
		{1, [4]byte{0x80, 0, 0, 0}},
		{8, [4]byte{0xff, 0, 0, 0}},
		{12, [4]byte{0xff, 0xf0, 0, 0}},
		{20, [4]byte{0xff, 0xff, 0xf0, 0}},
		{24, [4]byte{0xff, 0xff, 0xff, 0}},
		{31, [4]byte{0xff, 0xff, 0xff, 0xfe}},
		{32, [4]byte{0xff, 0xff, 0xff, 0xff}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, subnetMask4(tt.prefixLen), "prefixLen=%d", tt.prefixLen)
	}
}

func TestSubnetMask16(t *testing.T) {
	tests := []struct {
		prefixLen int
		want      [16]byte
	}{
		{0, [16]byte{}},
		{7, [16]byte{0xfe}},
		{8, [16]byte{0xff}},
		{32, [16]byte{0xff, 0xff, 0xff, 0xff}},
		{33, [16]byte{0xff, 0xff, 0xff, 0xff, 0x80}},
		{64, [16]byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}},
		{128, [16]byte{
			0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
			0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
		}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, subnetMask16(tt.prefixLen), "prefixLen=%d", tt.prefixLen)
	}
}

// TestNetworkAddrAgainstNetip 用 netip.Prefix.Masked 作为基准，
// 全前缀扫描校验逐字节掩码实现。
func TestNetworkAddrAgainstNetip(t *testing.T) {
	addrs4 := []string{"10.1.2.3", "192.168.255.254", "0.0.0.0", "255.255.255.255"}
	for _, s := range addrs4 {
		addr := netip.MustParseAddr(s)
		for p := 0; p <= ipv4Bits; p++ {
			got, err := NetworkAddr(addr, p)
			require.NoError(t, err)
			want := netip.PrefixFrom(addr, p).Masked().Addr()
			assert.Equal(t, want, got, "addr=%s prefixLen=%d", s, p)
		}
	}

	addrs6 := []string{"2001:db8::1", "fe80::dead:beef", "::", "ffff:ffff:ffff:ffff:ffff:ffff:ffff:ffff"}
	for _, s := range addrs6 {
		addr := netip.MustParseAddr(s)
		for p := 0; p <= ipv6Bits; p++ {
			got, err := NetworkAddr(addr, p)
			require.NoError(t, err)
			want := netip.PrefixFrom(addr, p).Masked().Addr()
			assert.Equal(t, want, got, "addr=%s prefixLen=%d", s, p)
		}
	}
}

func TestNetworkAddrErrors(t *testing.T) {
	v4 := netip.MustParseAddr("10.0.0.1")
	v6 := netip.MustParseAddr("2001:db8::1")

	_, err := NetworkAddr(v4, 33)
	assert.ErrorIs(t, err, ErrInvalidIPv4)

	_, err = NetworkAddr(v4, -1)
	assert.ErrorIs(t, err, ErrInvalidIPv4)

	_, err = NetworkAddr(v6, 129)
	assert.ErrorIs(t, err, ErrInvalidIPv6)

	_, err = NetworkAddr(netip.Addr{}, 8)
	assert.ErrorIs(t, err, ErrUnrecognized)
}

func TestNetworkAddrMapped(t *testing.T) {
	// IPv4-mapped IPv6 按 IPv4 处理，前缀相对 32 位宽度。
	addr := netip.MustParseAddr("::ffff:192.168.37.9")
	got, err := NetworkAddr(addr, 16)
	require.NoError(t, err)
	assert.Equal(t, netip.MustParseAddr("192.168.0.0"), got)
}
