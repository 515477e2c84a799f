package xdns

import (
	"context"
	"net"
	"net/netip"
)

// Resolver 抽象主机名到地址的解析能力。
// [*net.Resolver] 天然满足该接口；默认使用 [net.DefaultResolver]，
// 即委托操作系统的名字解析（超时由系统与网络环境决定）。
type Resolver interface {
	LookupNetIP(ctx context.Context, network, host string) ([]netip.Addr, error)
}

// Option 定义解析可选配置函数类型。
type Option func(*options)

type options struct {
	resolver Resolver
}

func defaultOptions() options {
	return options{
		resolver: net.DefaultResolver,
	}
}

func applyOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithResolver 设置自定义解析器，用于测试或接入非系统解析通道。
// 默认使用 [net.DefaultResolver]。传入 nil 将被忽略，保持使用默认值。
func WithResolver(r Resolver) Option {
	return func(o *options) {
		if r != nil {
			o.resolver = r
		}
	}
}
