package device

import (
	"fmt"
	"net"
	"strings"
)

// DefaultTag 设备类型前缀
const DefaultTag = "ESP32-"

const zeroMAC = "000000000000"

// IdentityFromMAC 由MAC地址生成设备标识：去掉分隔符、转大写，再加上前缀
func IdentityFromMAC(tag, mac string) string {
	normalized := strings.NewReplacer(":", "", "-", "").Replace(mac)
	return tag + strings.ToUpper(normalized)
}

// Identity 设备标识来源
type Identity struct {
	Tag       string
	MAC       string // 非空时直接使用，不再查询网卡
	Interface string // 指定网卡名，空则取第一个有MAC的非回环网卡
}

// DeviceID 返回设备标识。查询网卡失败时使用全零MAC。
func (id Identity) DeviceID() string {
	tag := id.Tag
	if tag == "" {
		tag = DefaultTag
	}
	if id.MAC != "" {
		return IdentityFromMAC(tag, id.MAC)
	}
	mac, err := HardwareAddr(id.Interface)
	if err != nil {
		return tag + zeroMAC
	}
	return IdentityFromMAC(tag, mac)
}

// HardwareAddr 查询网卡MAC地址
func HardwareAddr(name string) (string, error) {
	if name != "" {
		iface, err := net.InterfaceByName(name)
		if err != nil {
			return "", fmt.Errorf("interface %s: %w", name, err)
		}
		if len(iface.HardwareAddr) == 0 {
			return "", fmt.Errorf("interface %s has no hardware address", name)
		}
		return iface.HardwareAddr.String(), nil
	}

	ifaces, err := net.Interfaces()
	if err != nil {
		return "", fmt.Errorf("list interfaces: %w", err)
	}
	for _, iface := range ifaces {
		if iface.Flags&net.FlagLoopback != 0 || len(iface.HardwareAddr) == 0 {
			continue
		}
		return iface.HardwareAddr.String(), nil
	}
	return "", fmt.Errorf("no interface with a hardware address")
}
