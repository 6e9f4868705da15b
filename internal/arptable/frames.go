package arptable

import (
	"errors"
	"fmt"
	"net"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"

	"gomultitool/internal/models"
)

var broadcastMAC = net.HardwareAddr{0xff, 0xff, 0xff, 0xff, 0xff, 0xff}

// Frames holds the serialized Ethernet frames of a simulated exchange.
type Frames struct {
	Request []byte
	Reply   []byte
}

func buildFrames(sender, target models.Entry) (*Frames, error) {
	srcIP, srcMAC, err := parseEndpoint(sender)
	if err != nil {
		return nil, err
	}

	dstIP, dstMAC, err := parseEndpoint(target)
	if err != nil {
		return nil, err
	}

	req, err := serializeARP(layers.ARPRequest, srcMAC, srcIP, broadcastMAC, net.HardwareAddr{0, 0, 0, 0, 0, 0}, dstIP)
	if err != nil {
		return nil, fmt.Errorf("serialize request: %w", err)
	}

	reply, err := serializeARP(layers.ARPReply, dstMAC, dstIP, srcMAC, srcMAC, srcIP)
	if err != nil {
		return nil, fmt.Errorf("serialize reply: %w", err)
	}

	// The requester learns the MAC by decoding what went over the wire.
	got, err := replySender(reply, dstIP)
	if err != nil {
		return nil, err
	}
	if got.String() != dstMAC.String() {
		return nil, fmt.Errorf("reply carries %s, want %s", got, dstMAC)
	}

	return &Frames{Request: req, Reply: reply}, nil
}

func serializeARP(op uint16, srcMAC net.HardwareAddr, srcIP net.IP, ethDst, arpDst net.HardwareAddr, dstIP net.IP) ([]byte, error) {
	eth := layers.Ethernet{
		SrcMAC:       srcMAC,
		DstMAC:       ethDst,
		EthernetType: layers.EthernetTypeARP,
	}
	arp := layers.ARP{
		AddrType:          layers.LinkTypeEthernet,
		Protocol:          layers.EthernetTypeIPv4,
		HwAddressSize:     6,
		ProtAddressSize:   4,
		Operation:         op,
		SourceHwAddress:   []byte(srcMAC),
		SourceProtAddress: []byte(srcIP.To4()),
		DstHwAddress:      []byte(arpDst),
		DstProtAddress:    []byte(dstIP.To4()),
	}

	buf := gopacket.NewSerializeBuffer()
	opts := gopacket.SerializeOptions{
		FixLengths:       true,
		ComputeChecksums: true,
	}
	if err := gopacket.SerializeLayers(buf, opts, &eth, &arp); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// replySender decodes an ARP reply frame and returns its sender hardware
// address, provided the reply answers for ip.
func replySender(frame []byte, ip net.IP) (net.HardwareAddr, error) {
	packet := gopacket.NewPacket(frame, layers.LayerTypeEthernet, gopacket.Default)

	arpLayer := packet.Layer(layers.LayerTypeARP)
	if arpLayer == nil {
		return nil, errors.New("frame has no ARP layer")
	}

	arp, _ := arpLayer.(*layers.ARP)
	if arp.Operation != layers.ARPReply {
		return nil, fmt.Errorf("unexpected ARP operation %d", arp.Operation)
	}
	if !net.IP(arp.SourceProtAddress).Equal(ip) {
		return nil, fmt.Errorf("reply is for %s, want %s", net.IP(arp.SourceProtAddress), ip)
	}

	return net.HardwareAddr(arp.SourceHwAddress), nil
}
