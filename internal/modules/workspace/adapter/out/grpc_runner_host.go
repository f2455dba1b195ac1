package adapterout

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"time"

	hclog "github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-plugin"

	"pathora/internal/modules/workspace/adapter/out/rpc"
	"pathora/internal/modules/workspace/domain"
	portout "pathora/internal/modules/workspace/port/out"
	apperrors "pathora/internal/platform/errors"
)

const (
	defaultStartTimeout = 3 * time.Second
	defaultCallTimeout  = 5 * time.Second
	defaultRunTimeout   = 60 * time.Second
)

// GRPCRunnerHost starts a runner binary per call and kills it afterwards.
// Runner processes are cheap to spawn and holding them open would leak on
// TUI crashes.
type GRPCRunnerHost struct{}

var _ portout.RunnerHost = (*GRPCRunnerHost)(nil)

func NewGRPCRunnerHost() *GRPCRunnerHost {
	return &GRPCRunnerHost{}
}

func (h *GRPCRunnerHost) Metadata(ctx context.Context, manifest domain.Manifest) (domain.Metadata, error) {
	client, closeFn, err := h.connect(manifest)
	if err != nil {
		return domain.Metadata{}, err
	}
	defer closeFn()

	callCtx, cancel := h.callContext(ctx, defaultCallTimeout)
	defer cancel()

	meta, err := client.GetMetadata(callCtx)
	if err != nil {
		return domain.Metadata{}, fmt.Errorf("get metadata: %w", err)
	}
	return domain.Metadata{Name: meta.Name, Version: meta.Version, Capabilities: meta.Capabilities}, nil
}

func (h *GRPCRunnerHost) ListCommands(ctx context.Context, manifest domain.Manifest) ([]domain.CommandDescriptor, error) {
	client, closeFn, err := h.connect(manifest)
	if err != nil {
		return nil, err
	}
	defer closeFn()

	callCtx, cancel := h.callContext(ctx, defaultCallTimeout)
	defer cancel()

	response, err := client.ListCommands(callCtx)
	if err != nil {
		return nil, fmt.Errorf("list commands: %w", err)
	}
	out := make([]domain.CommandDescriptor, 0, len(response.Commands))
	for _, cmd := range response.Commands {
		out = append(out, domain.CommandDescriptor{
			ID:          cmd.ID,
			Title:       cmd.Title,
			Description: cmd.Description,
			TimeoutMS:   int(cmd.TimeoutMS),
		})
	}
	return out, nil
}

func (h *GRPCRunnerHost) Run(ctx context.Context, manifest domain.Manifest, req domain.RunRequest) (domain.RunResult, error) {
	client, closeFn, err := h.connect(manifest)
	if err != nil {
		return domain.RunResult{}, err
	}
	defer closeFn()

	callCtx, cancel := h.callContext(ctx, defaultRunTimeout)
	defer cancel()

	response, err := client.Run(callCtx, &rpc.RunRequest{
		CommandID: req.CommandID,
		InputJSON: req.InputJSON,
		Context: rpc.RunContext{
			ProjectDir: req.Context.ProjectDir,
			ProjectID:  req.Context.ProjectID,
			Env:        req.Context.Env,
		},
	})
	if err != nil {
		if callCtx.Err() == context.DeadlineExceeded {
			return domain.RunResult{}, fmt.Errorf("%w: command %s", apperrors.ErrRunnerTimeout, req.CommandID)
		}
		return domain.RunResult{}, fmt.Errorf("run command: %w", err)
	}
	return domain.RunResult{
		Stdout:     response.Stdout,
		Stderr:     response.Stderr,
		OutputJSON: response.OutputJSON,
		ExitCode:   int(response.ExitCode),
	}, nil
}

func (h *GRPCRunnerHost) connect(manifest domain.Manifest) (rpc.RunnerClient, func(), error) {
	client := plugin.NewClient(&plugin.ClientConfig{
		HandshakeConfig:  rpc.HandshakeConfig,
		AllowedProtocols: []plugin.Protocol{plugin.ProtocolGRPC},
		Plugins:          rpc.RunnerMap(nil),
		Cmd:              exec.Command(manifest.Binary),
		Managed:          true,
		StartTimeout:     defaultStartTimeout,
		Logger:           hclog.New(&hclog.LoggerOptions{Output: io.Discard, Level: hclog.NoLevel}),
	})
	closeFn := func() { client.Kill() }

	rpcClient, err := client.Client()
	if err != nil {
		closeFn()
		return nil, nil, fmt.Errorf("start runner %s: %w", manifest.Name, err)
	}
	raw, err := rpcClient.Dispense(rpc.RunnerMapKey)
	if err != nil {
		closeFn()
		return nil, nil, fmt.Errorf("dispense runner: %w", err)
	}
	typed, ok := raw.(rpc.RunnerClient)
	if !ok {
		closeFn()
		return nil, nil, fmt.Errorf("runner rpc client type mismatch")
	}
	return typed, closeFn, nil
}

func (h *GRPCRunnerHost) callContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if _, ok := parent.Deadline(); ok {
		return context.WithCancel(parent)
	}
	return context.WithTimeout(parent, timeout)
}
