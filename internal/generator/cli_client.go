package generator

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// CLIClient shells out to a local model runner, e.g. "ollama run llama3.2".
// The prompt goes to stdin and stdout is the completion. Sampling params
// are left to the runner's own configuration.
type CLIClient struct {
	path string
	args []string
}

func NewCLIClient(command string) (*CLIClient, error) {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return nil, fmt.Errorf("local model command is empty")
	}
	return &CLIClient{path: fields[0], args: fields[1:]}, nil
}

func (c *CLIClient) Generate(ctx context.Context, prompt string, params Params) (*LLMResponse, error) {
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	cmd := exec.CommandContext(ctx, c.path, c.args...)
	cmd.Stdin = strings.NewReader(prompt)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("%s: %w\nstderr: %s", c.path, err, stderr.String())
	}

	responseText := strings.TrimSpace(stdout.String())
	if responseText == "" {
		return nil, fmt.Errorf("%s returned empty response", c.path)
	}

	return &LLMResponse{Content: responseText}, nil
}
