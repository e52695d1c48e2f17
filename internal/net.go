package internal

import (
	"net"
)

// ServerIpNet returns the first non loopback IPv4 network of this host.
// Analytics rows are keyed by it. Hosts with loopback only get 127.0.0.1/32.
func ServerIpNet() (net.IPNet, error) {
	ifaces, err := net.Interfaces()
	if err != nil {
		return net.IPNet{}, err
	}

	for _, iface := range ifaces {
		// If the flag is down
		if iface.Flags&net.FlagUp == 0 {
			continue
		}

		if iface.Flags&net.FlagLoopback != 0 {
			continue
		}

		addrs, err := iface.Addrs()
		if err != nil {
			return net.IPNet{}, err
		}

		for _, addr := range addrs {
			ipnet, ok := addr.(*net.IPNet)
			if !ok {
				continue
			}
			if ip := ipnet.IP.To4(); ip != nil && !ip.IsLoopback() {
				return net.IPNet{IP: ip, Mask: net.CIDRMask(32, 32)}, nil
			}
		}
	}

	return net.IPNet{IP: net.IPv4(127, 0, 0, 1).To4(), Mask: net.CIDRMask(32, 32)}, nil
}
