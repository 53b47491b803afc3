// Package comm carries decoded telemetry over packet transports.
package comm

import "github.com/robotalks/mercator.go/pkg/framework"

// PacketReader reads packets in bytes.
type PacketReader interface {
	ReadPacket() ([]byte, error)
}

// PacketWriter writes packets in bytes.
type PacketWriter interface {
	WritePacket([]byte) error
}

// PacketReadWriter reads/writes packets in bytes.
type PacketReadWriter interface {
	PacketReader
	PacketWriter
}

// PacketWriters writes a packet to all writers.
type PacketWriters []PacketWriter

// WritePacket implements PacketWriter.
func (w PacketWriters) WritePacket(pkt []byte) error {
	var errs framework.AggregatedError
	for _, writer := range w {
		errs.Add(writer.WritePacket(pkt))
	}
	return errs.Aggregate()
}
