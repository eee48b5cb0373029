// --- START OF FINAL REVISED FILE internal/cli/runner/runner.go ---
package runner

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strings"
	"sync"
	"syscall" // Import syscall for checking specific errors like EPIPE

	"github.com/stackvity/cucumber-reporting/pkg/reporter/builder"
)

const (
	// maxLogOutputBytes limits the size of stdout captured in logs on JSON errors.
	maxLogOutputBytes = 1024
	// maxBuilderReadBytes caps stdout/stderr capture to prevent OOM from a rogue builder.
	maxBuilderReadBytes = 10 * 1024 * 1024 // 10 MiB
)

// execReportBuilder implements builder.ReportBuilder by running an external process that
// speaks the JSON request/response schema over stdio.
type execReportBuilder struct {
	command []string
	logger  *slog.Logger
}

// NewExecReportBuilder creates a report builder that executes command as an external process.
func NewExecReportBuilder(loggerHandler slog.Handler, command []string) builder.ReportBuilder {
	if loggerHandler == nil {
		loggerHandler = slog.NewTextHandler(io.Discard, nil)
	}
	logger := slog.New(loggerHandler).With(slog.String("component", "builder"))
	return &execReportBuilder{command: command, logger: logger}
}

// Generate executes the builder process.
func (r *execReportBuilder) Generate(ctx context.Context, jsonFiles []string, cfg builder.Configuration) (builder.Result, error) {
	logArgs := []any{
		slog.String("command", strings.Join(r.command, " ")),
		slog.Int("files", len(jsonFiles)),
	}

	if len(r.command) == 0 {
		err := fmt.Errorf("builder command cannot be empty")
		r.logger.Error("Report builder configuration error", append(logArgs, slog.Any("error", err))...)
		return builder.Result{}, builder.Errorf("report builder configuration error: %w", err)
	}

	request := builder.Request{
		SchemaVersion: builder.BuilderSchemaVersion,
		RunID:         builder.RunIDFromContext(ctx),
		JSONFiles:     jsonFiles,
		Configuration: cfg,
	}
	inputJSON, marshalErr := json.Marshal(request)
	if marshalErr != nil {
		r.logger.Error("Failed to marshal builder request JSON", append(logArgs, slog.Any("error", marshalErr))...)
		return builder.Result{}, builder.WrapBuilderError(builder.ErrBuilderBadOutput, "failed to marshal request: %v", marshalErr)
	}

	cmd := exec.CommandContext(ctx, r.command[0], r.command[1:]...)

	stdinPipe, err := cmd.StdinPipe()
	if err != nil {
		r.logger.Error("Failed to create stdin pipe for builder", append(logArgs, slog.Any("error", err))...)
		return builder.Result{}, builder.Errorf("failed to create stdin pipe: %w", err)
	}
	stdoutPipe, err := cmd.StdoutPipe()
	if err != nil {
		r.logger.Error("Failed to create stdout pipe for builder", append(logArgs, slog.Any("error", err))...)
		return builder.Result{}, builder.Errorf("failed to create stdout pipe: %w", err)
	}
	stderrPipe, err := cmd.StderrPipe()
	if err != nil {
		r.logger.Error("Failed to create stderr pipe for builder", append(logArgs, slog.Any("error", err))...)
		return builder.Result{}, builder.Errorf("failed to create stderr pipe: %w", err)
	}

	if startErr := cmd.Start(); startErr != nil {
		r.logger.Error("Failed to start builder process", append(logArgs, slog.Any("error", startErr))...)
		return builder.Result{}, builder.Errorf("failed to start builder command '%s': %w", r.command[0], startErr)
	}
	r.logger.Debug("Builder process started", logArgs...)

	var wg sync.WaitGroup
	var writeErr error
	var stdoutData, stderrData []byte
	var readStdoutErr error

	wg.Add(1)
	go func() {
		defer wg.Done()
		defer func() {
			if closeErr := stdinPipe.Close(); closeErr != nil && !errors.Is(closeErr, syscall.EPIPE) && !errors.Is(closeErr, os.ErrClosed) {
				r.logger.Warn("Error closing builder stdin pipe", append(logArgs, slog.Any("error", closeErr))...)
			}
		}()
		_, writeErr = stdinPipe.Write(inputJSON)
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		var buf bytes.Buffer
		n, err := io.Copy(&buf, io.LimitReader(stdoutPipe, maxBuilderReadBytes))
		stdoutData = buf.Bytes()
		switch {
		case err == nil && n >= maxBuilderReadBytes:
			readStdoutErr = fmt.Errorf("builder stdout exceeded limit of %d bytes", maxBuilderReadBytes)
			_, _ = io.Copy(io.Discard, stdoutPipe)
		case err != nil && !errors.Is(err, io.ErrClosedPipe) && !errors.Is(err, io.EOF) && !errors.Is(err, os.ErrClosed):
			readStdoutErr = err
		}
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		var buf bytes.Buffer
		n, _ := io.Copy(&buf, io.LimitReader(stderrPipe, maxBuilderReadBytes))
		stderrData = buf.Bytes()
		if n >= maxBuilderReadBytes {
			r.logger.Warn("Builder stderr truncated", append(logArgs, slog.Int64("limit_bytes", maxBuilderReadBytes))...)
			_, _ = io.Copy(io.Discard, stderrPipe)
		}
	}()

	// Pipes must be drained before Wait closes them.
	wg.Wait()
	waitErr := cmd.Wait()
	stderrString := strings.TrimSpace(string(stderrData))
	if stderrString != "" {
		logArgs = append(logArgs, slog.String("builder_stderr", stderrString))
	}

	if ctx.Err() != nil {
		r.logger.Error("Builder execution cancelled or timed out", append(logArgs, slog.Any("error", ctx.Err()))...)
		return builder.Result{}, builder.WrapBuilderError(builder.ErrBuilderTimeout, "report builder cancelled: %v", ctx.Err())
	}

	if waitErr != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(waitErr, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		r.logger.Error("Builder execution failed (non-zero exit or other error)", append(logArgs, slog.Int("exitCode", exitCode), slog.Any("error", waitErr))...)
		return builder.Result{}, builder.WrapBuilderError(builder.ErrBuilderNonZeroExit, "report builder failed with exit code %d: %v", exitCode, waitErr)
	}

	if writeErr != nil && !errors.Is(writeErr, syscall.EPIPE) && !errors.Is(writeErr, os.ErrClosed) {
		r.logger.Error("Builder failed due to stdin write error", append(logArgs, slog.Any("error", writeErr))...)
		return builder.Result{}, builder.Errorf("failed writing request to builder: %w", writeErr)
	}

	if readStdoutErr != nil {
		r.logger.Error("Builder succeeded but stdout could not be read", append(logArgs, slog.Any("error", readStdoutErr))...)
		return builder.Result{}, builder.WrapBuilderError(builder.ErrBuilderBadOutput, "error reading builder stdout: %v", readStdoutErr)
	}

	if len(bytes.TrimSpace(stdoutData)) == 0 {
		r.logger.Error("Builder returned empty output", logArgs...)
		return builder.Result{}, builder.WrapBuilderError(builder.ErrBuilderBadOutput, "report builder returned empty stdout")
	}

	var response builder.Response
	if unmarshalErr := json.Unmarshal(stdoutData, &response); unmarshalErr != nil {
		logStdout := string(stdoutData)
		if len(logStdout) > maxLogOutputBytes {
			logStdout = logStdout[:maxLogOutputBytes] + "... (truncated)"
		}
		r.logger.Error("Failed to unmarshal builder output JSON", append(logArgs, slog.Any("error", unmarshalErr), slog.String("stdout_prefix", logStdout))...)
		return builder.Result{}, builder.WrapBuilderError(builder.ErrBuilderBadOutput, "failed to unmarshal builder output: %v", unmarshalErr)
	}

	if response.SchemaVersion != builder.BuilderSchemaVersion {
		r.logger.Error("Builder schema version mismatch", append(logArgs,
			slog.String("expected_schema", builder.BuilderSchemaVersion),
			slog.String("builder_schema", response.SchemaVersion))...)
		return builder.Result{}, builder.WrapBuilderError(builder.ErrBuilderBadOutput,
			"report builder uses incompatible schema version '%s', expected '%s'", response.SchemaVersion, builder.BuilderSchemaVersion)
	}

	if response.Error != "" {
		r.logger.Error("Builder reported functional error", append(logArgs, slog.String("builder_error", response.Error))...)
		return builder.Result{}, builder.WrapBuilderError(builder.ErrBuilderBadOutput, "report builder reported error: %s", response.Error)
	}

	r.logger.Debug("Builder finished", append(logArgs, slog.Bool("passed", response.Passed), slog.String("reportPath", response.ReportPath))...)
	return builder.Result{Passed: response.Passed, ReportPath: response.ReportPath}, nil
}

// --- END OF FINAL REVISED FILE internal/cli/runner/runner.go ---
