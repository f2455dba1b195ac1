// The reference runner demonstrates the runner contract: a deterministic
// binary the host can probe, list, and execute against a project checkout.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-plugin"

	runnerrpc "pathora/internal/modules/workspace/adapter/out/rpc"
)

type server struct{}

func (s *server) GetMetadata(_ context.Context, _ *runnerrpc.Empty) (*runnerrpc.Metadata, error) {
	return &runnerrpc.Metadata{
		Name:         "reference",
		Version:      "1.0.0",
		Capabilities: []string{"command", "inspect"},
	}, nil
}

func (s *server) ListCommands(_ context.Context, _ *runnerrpc.Empty) (*runnerrpc.ListCommandsResponse, error) {
	return &runnerrpc.ListCommandsResponse{Commands: []runnerrpc.CommandDescriptor{
		{ID: "echo", Title: "Echo", Description: "Echoes the provided input", TimeoutMS: 2000},
		{ID: "inspect", Title: "Inspect checkout", Description: "Counts files, lines, and TODO markers in the project checkout", TimeoutMS: 5000},
	}}, nil
}

func (s *server) Run(_ context.Context, in *runnerrpc.RunRequest) (*runnerrpc.RunResponse, error) {
	switch in.CommandID {
	case "echo":
		if strings.TrimSpace(in.InputJSON) == "" {
			return &runnerrpc.RunResponse{Stdout: "echo", OutputJSON: `{"echo":""}`}, nil
		}
		return &runnerrpc.RunResponse{Stdout: in.InputJSON, OutputJSON: fmt.Sprintf(`{"echo":%q}`, in.InputJSON)}, nil
	case "inspect":
		return inspect(in.Context.ProjectDir)
	default:
		return nil, fmt.Errorf("unknown command: %s", in.CommandID)
	}
}

func inspect(dir string) (*runnerrpc.RunResponse, error) {
	if strings.TrimSpace(dir) == "" {
		return &runnerrpc.RunResponse{Stderr: "no project checkout", ExitCode: 1}, nil
	}

	var files, lines, todos int
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if strings.HasPrefix(d.Name(), ".") && path != dir {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasPrefix(d.Name(), ".") {
			return nil
		}
		raw, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		files++
		lines += bytes.Count(raw, []byte("\n"))
		todos += bytes.Count(raw, []byte("TODO"))
		return nil
	})
	if err != nil {
		return &runnerrpc.RunResponse{Stderr: err.Error(), ExitCode: 1}, nil
	}

	raw, _ := json.Marshal(map[string]int{"files": files, "lines": lines, "todos": todos})
	return &runnerrpc.RunResponse{
		Stdout:     fmt.Sprintf("%d files, %d lines, %d TODOs", files, lines, todos),
		OutputJSON: string(raw),
	}, nil
}

func main() {
	plugin.Serve(&plugin.ServeConfig{
		HandshakeConfig: runnerrpc.HandshakeConfig,
		Plugins:         runnerrpc.RunnerMap(&server{}),
		GRPCServer:      plugin.DefaultGRPCServer,
	})
}
