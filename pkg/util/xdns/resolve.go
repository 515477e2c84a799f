package xdns

import (
	"context"
	"fmt"
	"net/netip"

	"golang.org/x/sync/errgroup"
)

// ResolvedAddrs 是一次解析的结果，按地址族分组。
// 每次解析调用都产生全新的值，不做任何缓存；族内保持解析器返回的顺序。
type ResolvedAddrs struct {
	v4 []netip.Addr
	v6 []netip.Addr
}

// V4 返回解析到的 IPv4 地址，保持解析器返回顺序。
func (r ResolvedAddrs) V4() []netip.Addr {
	return r.v4
}

// V6 返回解析到的 IPv6 地址，保持解析器返回顺序。
func (r ResolvedAddrs) V6() []netip.Addr {
	return r.v6
}

// All 返回按族分组拼接的全部地址：先 IPv4 后 IPv6，族内保持原始顺序。
func (r ResolvedAddrs) All() []netip.Addr {
	if len(r.v4)+len(r.v6) == 0 {
		return nil
	}
	all := make([]netip.Addr, 0, len(r.v4)+len(r.v6))
	all = append(all, r.v4...)
	return append(all, r.v6...)
}

// IsEmpty 报告解析结果是否为空。
func (r ResolvedAddrs) IsEmpty() bool {
	return len(r.v4) == 0 && len(r.v6) == 0
}

// partitionAddrs 将地址序列按族分组，族内保持原始顺序。
// IPv4-mapped IPv6 地址去映射后归入 v4（部分平台的解析器以映射形式返回 A 记录）。
func partitionAddrs(addrs []netip.Addr) ResolvedAddrs {
	var r ResolvedAddrs
	for _, a := range addrs {
		switch {
		case a.Is4() || a.Is4In6():
			r.v4 = append(r.v4, a.Unmap())
		case a.IsValid():
			r.v6 = append(r.v6, a)
		}
	}
	return r
}

// Resolve 将主机名解析为地址集合，阻塞直至底层解析器返回。
//
// 解析委托给 [Resolver]（默认为操作系统解析器），单次尝试，不重试。
// 任何解析期失败——解析器错误、上下文取消——统一包装为 [ErrProtocol]，
// 不保留失败种类的区分。ctx 的取消只释放调用方：进行中的系统查询
// 可能继续到完成并被丢弃。
func (h Hostname) Resolve(ctx context.Context, opts ...Option) (ResolvedAddrs, error) {
	if !h.IsValid() {
		return ResolvedAddrs{}, fmt.Errorf("%w: zero Hostname", ErrInvalidInput)
	}
	o := applyOptions(opts)
	addrs, err := o.resolver.LookupNetIP(ctx, "ip", h.name)
	if err != nil {
		// 失败种类统一坍缩为 ErrProtocol，仅保留消息文本。
		return ResolvedAddrs{}, fmt.Errorf("%w: lookup %s: %v", ErrProtocol, h.name, err)
	}
	return partitionAddrs(addrs), nil
}

// ResolveResult 是 [Hostname.ResolveAsync] 的单次完成信号。
type ResolveResult struct {
	Addrs ResolvedAddrs
	Err   error
}

// ResolveAsync 将阻塞解析移交后台 goroutine，立即返回容量为 1 的结果通道。
// 通道恰好投递一个 [ResolveResult] 后关闭。
//
// 后台解析使用 [context.WithoutCancel]：调用方 context 的取消不会中止
// 进行中的查询，只影响调用方自己的等待点；放弃接收时结果被静默丢弃，
// goroutine 仍会正常退出（通道有缓冲）。
func (h Hostname) ResolveAsync(ctx context.Context, opts ...Option) <-chan ResolveResult {
	ch := make(chan ResolveResult, 1)
	go func() {
		defer close(ch)
		addrs, err := h.Resolve(context.WithoutCancel(ctx), opts...)
		ch <- ResolveResult{Addrs: addrs, Err: err}
	}()
	return ch
}

// ResolveAll 以有限并发解析一组主机名，结果切片与输入按下标对齐。
// limit > 0 时限制并发 goroutine 数量，否则不限制。
// 任何一个解析失败即整体失败（fail-fast），其余进行中的解析随
// errgroup 的 context 取消而尽快结束。
func ResolveAll(ctx context.Context, hosts []Hostname, limit int, opts ...Option) ([]ResolvedAddrs, error) {
	if len(hosts) == 0 {
		return nil, nil
	}
	results := make([]ResolvedAddrs, len(hosts))
	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i, h := range hosts {
		i, h := i, h
		g.Go(func() error {
			r, err := h.Resolve(ctx, opts...)
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
