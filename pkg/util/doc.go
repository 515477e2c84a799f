// Package util 提供通用工具相关的子包。
//
// 子包列表：
//   - xinet: 地址目标值类型，基于 net/netip + go4.org/netipx 的
//     IPv4/IPv6 主机与网络表示（规范基地址校验、族无关联合类型）
//   - xdns: 经过校验的 DNS 主机名值类型，阻塞与异步的地址解析
//
// 设计原则：
//   - 纯值类型，构造即校验，构造后不可变
//   - 所有可失败操作返回 error，预定义错误变量支持 errors.Is
//   - 不缓存、不重试，失败在调用方边界处理
package util
