// Package xinet 提供地址目标（address target）值类型。
//
// 目标是一个 IP 地址，可选地携带 CIDR 前缀长度，表示单个主机或一个网络。
// xinet 基于 Go 标准库 [net/netip] 和社区库 [go4.org/netipx] 构建，
// 核心类型为 [IPv4Target] / [IPv6Target] 及族无关的联合类型 [Target]。
//
// # 核心功能
//
//   - ipv4.go / ipv6.go: 按族的目标类型，构造时严格校验
//   - inet.go: [Target] 联合类型，先 IPv4 后 IPv6 的有序解析
//   - version.go: 地址族类型 [Version] 及 [AddrVersion] 判断函数
//   - mask.go: 逐字节大端掩码构造与网络基地址计算 [NetworkAddr]
//   - range.go: [go4.org/netipx] 桥接（Range / IPSetOf / ParseAll）
//
// # 快速示例
//
// 解析目标并读取网络信息：
//
//	t, _ := xinet.Parse("10.0.0.0/8")
//	fmt.Println(t.Version())   // IPv4
//	fmt.Println(t.IsNet())     // true
//	p, _ := t.Net()
//	fmt.Println(p)             // 10.0.0.0/8
//
// # 设计决策
//
//   - 直接使用 [netip.Addr] 值类型，目标可比较、可做 map key
//   - 规范基地址不变式：携带前缀的目标必须恰好是其网络的首地址。
//     "10.0.0.1/8" 含主机位，构造与解析都会被拒绝而非静默截断。
//     如需截断语义请显式调用 [NetworkAddr] 再构造。
//   - 前缀段必须是范围内的十进制整数："10.0.0.0/abc"、"10.0.0.0/+8"、
//     "10.0.0.0/" 均返回错误，不会退化为无前缀目标
//   - 拒绝包含 IPv6 zone ID 的地址（如 "fe80::1%eth0"）：
//     前缀运算对 zone 无意义，且 netipx 会静默丢弃 zone 信息
//   - IPv4-mapped IPv6 地址（::ffff:a.b.c.d）：[NewIPv4] 接受并去映射；
//     字符串解析时其冒号语法归入 IPv6 分支，与族判断函数 [AddrVersion]
//     的语义判断（视为 V4）互不干扰
//   - 所有可失败函数返回 error，预定义错误变量支持 errors.Is；
//     族内错误不再细分（语法错误、前缀越界、主机位残留同属一类）
//
// # 序列化
//
// 所有目标类型实现 [encoding.TextMarshaler] / [encoding.TextUnmarshaler]，
// 文本形式为 "addr" 或 "addr/prefix"，与 [Target.String] 一致，可直接用于
// JSON/YAML 字段。零值目标序列化返回错误。
//
// # 错误处理
//
//	_, err := xinet.Parse("not-an-ip")
//	if errors.Is(err, xinet.ErrUnrecognized) {
//	    // 两个地址族都无法识别该输入
//	}
package xinet
