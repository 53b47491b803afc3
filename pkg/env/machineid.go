package env

import (
	"os"

	"github.com/denisbrodbeck/machineid"
	"github.com/golang/glog"
)

// MachineID retrieves the unique ID identifying the machine. The host
// name is used when the machine ID is unavailable.
func MachineID() string {
	id, err := machineid.ProtectedID("mercator")
	if err == nil {
		return id[:16]
	}
	glog.V(2).Infof("machine id: %v", err)
	host, err := os.Hostname()
	if err != nil {
		return "unknown"
	}
	return host
}
