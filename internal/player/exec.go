package player

import (
	"os/exec"
	"syscall"
)

// DefaultCommand returns the player argv shared by every session: mpv bound
// to the IPC socket with terminal output disabled.
func DefaultCommand(socketPath string) []string {
	mpv, err := exec.LookPath("mpv")
	if err != nil {
		mpv = "/usr/bin/mpv"
	}
	return []string{mpv, "--terminal=no", "--input-ipc-server=" + socketPath}
}

// execRunner spawns real OS processes with all stdio discarded.
type execRunner struct{}

func (execRunner) Spawn(args []string) (Process, error) {
	cmd := exec.Command(args[0], args[1:]...)
	if err := cmd.Start(); err != nil {
		return nil, err
	}
	return &execProcess{cmd: cmd}, nil
}

type execProcess struct {
	cmd *exec.Cmd
}

func (p *execProcess) Terminate() {
	if p.cmd.Process != nil {
		_ = p.cmd.Process.Signal(syscall.SIGTERM)
	}
}

// Wait does not treat a non-zero exit as failure; the player dying is an
// expected part of restarting it.
func (p *execProcess) Wait() {
	_ = p.cmd.Wait()
}
