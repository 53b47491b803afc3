// Package all registers all shell commands.
package all

import (
	// shell commands
	_ "github.com/robotalks/mercator.go/pkg/cli/cmds/frame"
	_ "github.com/robotalks/mercator.go/pkg/cli/cmds/stream"
)
