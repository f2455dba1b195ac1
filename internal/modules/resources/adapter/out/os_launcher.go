package adapterout

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"

	portout "pathora/internal/modules/resources/port/out"
)

type OSExternalLauncher struct{}

var _ portout.ExternalLauncher = (*OSExternalLauncher)(nil)

func NewOSExternalLauncher() *OSExternalLauncher {
	return &OSExternalLauncher{}
}

func (l *OSExternalLauncher) Open(_ context.Context, target string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", target)
	case "linux":
		cmd = exec.Command("xdg-open", target)
	default:
		return fmt.Errorf("external open is not supported on %s", runtime.GOOS)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("open external target: %w", err)
	}
	return nil
}
