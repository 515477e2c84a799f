// Package xdns 提供经过校验的 DNS 主机名值类型及其地址解析。
//
// 核心类型 [Hostname] 在构造时完成全部校验：先由 [github.com/miekg/dns]
// 做结构校验（转义、标签与总长限制），再逐标签套用主机名规则
// （RFC 952/1123：字母数字开头结尾、可含连字符、最长 63 字符），
// 并额外拒绝纯数字标签。构造成功后的值不可变，可安全并发共享。
//
// # 核心功能
//
//   - hostname.go: [Hostname] 构造、规范化与标签校验
//   - resolve.go: [Hostname.Resolve] / [Hostname.ResolveAsync] / [ResolveAll]
//     及按族分组的解析结果 [ResolvedAddrs]
//   - options.go: 解析可选配置（[WithResolver] 注入自定义解析器）
//
// # 快速示例
//
// 校验并解析主机名：
//
//	h, err := xdns.New("Example.COM.")
//	if err != nil { ... }
//	fmt.Println(h)              // example.com（小写、去末尾点）
//
//	addrs, err := h.Resolve(ctx)
//	if err != nil { ... }
//	fmt.Println(addrs.V4(), addrs.V6())
//
// # 设计决策
//
//   - 主机名规范化为小写并去除末尾点，存储相对形式；
//     Go 字符串天然只读共享，多个持有者零拷贝
//   - 标签校验使用包级 regexp.MustCompile 编译的只读模式，
//     进程内初始化一次，并发读取安全
//   - 解析每次调用都是一次全新尝试：不缓存、不重试，失败即终止
//   - 错误分为两类：[ErrInvalidInput]（构造期语法/结构失败）与
//     [ErrProtocol]（解析期的一切失败——解析器错误、上下文取消、
//     执行失败统一归入此类，不保留 NXDOMAIN/SERVFAIL/传输失败的区分）
//   - [Hostname.ResolveAsync] 把阻塞解析移交后台 goroutine，
//     通过容量为 1 的通道投递单次完成信号；调用方放弃等待不会中止
//     进行中的查询，结果被静默丢弃
//
// # 错误处理
//
//	_, err := xdns.New("-bad-.com")
//	if errors.Is(err, xdns.ErrInvalidInput) {
//	    // 主机名语法非法
//	}
package xdns
