// Package probe implements the external process boundary used to determine
// stream liveness. The probe invokes a media-inspection executable in its
// "list formats" mode and observes only the process exit code.
package probe

import (
	"os/exec"
	"slices"

	"github.com/spf13/viper"
	"github.com/strs-cli/strs/key"
	"github.com/strs-cli/strs/log"
)

// Command probes a target URL by running an external executable with the URL
// appended to Args. It satisfies stream.Prober.
type Command struct {
	Name string
	Args []string
}

// Default builds the probe configured under the probe.command and probe.args
// keys, youtube-dl -F out of the box.
func Default() *Command {
	return &Command{
		Name: viper.GetString(key.ProbeCommand),
		Args: viper.GetStringSlice(key.ProbeArgs),
	}
}

// Probe launches one probe process and waits for it to exit. Standard output
// and error streams are discarded. An exit-success process reports (true,
// nil), a process that ran and exited non-zero reports (false, nil), and an
// error is returned only when the process could not be started at all.
//
// No timeout is applied: a hung probe blocks until it exits.
func (c *Command) Probe(target string) (bool, error) {
	args := append(slices.Clone(c.Args), target)

	log.Debugf("probing %s: %s %v", target, c.Name, args)

	cmd := exec.Command(c.Name, args...)
	// nil Stdout/Stderr connect the process to the null device.

	err := cmd.Run()
	if err == nil {
		return true, nil
	}

	if _, ran := err.(*exec.ExitError); ran {
		return false, nil
	}

	return false, err
}
