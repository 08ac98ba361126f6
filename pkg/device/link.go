package device

import "net"

// Link 网络连通性检查
type Link interface {
	Connected() bool
}

// NetLink 检查本机网卡是否已启用并分配了地址
type NetLink struct {
	Interface string // 空则检查任意非回环网卡
}

// Connected 实现Link接口
func (l NetLink) Connected() bool {
	ifaces, err := net.Interfaces()
	if err != nil {
		return false
	}
	for _, iface := range ifaces {
		if l.Interface != "" && iface.Name != l.Interface {
			continue
		}
		if iface.Flags&net.FlagUp == 0 || iface.Flags&net.FlagLoopback != 0 {
			continue
		}
		addrs, err := iface.Addrs()
		if err == nil && len(addrs) > 0 {
			return true
		}
	}
	return false
}

// LinkFunc 函数形式的Link
type LinkFunc func() bool

func (f LinkFunc) Connected() bool { return f() }
