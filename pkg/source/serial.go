package source

import (
	"fmt"
	"io"

	"go.bug.st/serial"
)

// DefaultBaudRate is the UART speed of the Mako link.
const DefaultBaudRate = 9600

// OpenSerial opens a serial port in 8N1 mode.
func OpenSerial(path string, baud int) (io.ReadCloser, error) {
	if baud <= 0 {
		baud = DefaultBaudRate
	}
	port, err := serial.Open(path, &serial.Mode{
		BaudRate: baud,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	})
	if err != nil {
		return nil, fmt.Errorf("open serial %s: %w", path, err)
	}
	return port, nil
}

// SerialPorts lists the serial ports found on the system.
func SerialPorts() ([]string, error) {
	return serial.GetPortsList()
}
