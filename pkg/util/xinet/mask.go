package xinet

import (
	"fmt"
	"net/netip"
)

const (
	ipv4Bits = 32
	ipv6Bits = 128
)

// fillMask 将 buf 按大端字节序填充为 prefixLen 位的子网掩码：
// 完整的 0xff 字节、一个高位部分置位的字节、其余为零。
// 调用方保证 0 <= prefixLen <= len(buf)*8。
func fillMask(buf []byte, prefixLen int) {
	full := prefixLen / 8
	for i := 0; i < full; i++ {
		buf[i] = 0xff
	}
	if rem := prefixLen % 8; rem != 0 {
		buf[full] = 0xff << (8 - rem)
	}
}

// subnetMask4 返回 prefixLen 位的 IPv4 子网掩码。
func subnetMask4(prefixLen int) [4]byte {
	var mask [4]byte
	fillMask(mask[:], prefixLen)
	return mask
}

// subnetMask16 返回 prefixLen 位的 IPv6 子网掩码。
func subnetMask16(prefixLen int) [16]byte {
	var mask [16]byte
	fillMask(mask[:], prefixLen)
	return mask
}

// networkAddr4 返回 addr 在 prefixLen 下的网络基地址（网络中第一个地址）。
// 调用方保证 addr.Is4() 且前缀在范围内。
func networkAddr4(addr netip.Addr, prefixLen int) netip.Addr {
	mask := subnetMask4(prefixLen)
	b := addr.As4()
	for i := range b {
		b[i] &= mask[i]
	}
	return netip.AddrFrom4(b)
}

// networkAddr16 返回 addr 在 prefixLen 下的网络基地址。
// 调用方保证 addr.Is6() 且前缀在范围内。
func networkAddr16(addr netip.Addr, prefixLen int) netip.Addr {
	mask := subnetMask16(prefixLen)
	b := addr.As16()
	for i := range b {
		b[i] &= mask[i]
	}
	return netip.AddrFrom16(b)
}

// NetworkAddr 返回 addr 在 prefixLen 下的网络基地址，按地址族自动分派。
// IPv4-mapped IPv6 地址按 IPv4 处理（前缀相对 32 位宽度）。
// 无效地址或前缀越界返回对应地址族的错误。
func NetworkAddr(addr netip.Addr, prefixLen int) (netip.Addr, error) {
	switch AddrVersion(addr) {
	case V4:
		if prefixLen < 0 || prefixLen > ipv4Bits {
			return netip.Addr{}, fmt.Errorf("%w: prefix length %d out of range [0,%d]", ErrInvalidIPv4, prefixLen, ipv4Bits)
		}
		return networkAddr4(addr.Unmap(), prefixLen), nil
	case V6:
		if prefixLen < 0 || prefixLen > ipv6Bits {
			return netip.Addr{}, fmt.Errorf("%w: prefix length %d out of range [0,%d]", ErrInvalidIPv6, prefixLen, ipv6Bits)
		}
		return networkAddr16(addr, prefixLen), nil
	default:
		return netip.Addr{}, fmt.Errorf("%w: invalid address", ErrUnrecognized)
	}
}
