// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package testutil holds the helpers shared by the application-level tests:
// configuration fixtures on disk and a harness that runs the whole App.
package testutil

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/specialistvlad/coursegridgo/internal/app"
	"github.com/specialistvlad/coursegridgo/internal/hcl"
	"github.com/stretchr/testify/require"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// HarnessResult holds the outcomes of an App run.
type HarnessResult struct {
	Output    string
	LogOutput string
	Err       error
	App       *app.App
}

// WriteFiles writes files, keyed by slash-separated relative path, into a
// fresh temporary directory and returns that directory.
func WriteFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		p := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	}
	return dir
}

// RunApp writes files to a temporary directory, points cfg at it and runs
// the App with the HCL loader at debug level. A load failure, which makes
// NewApp panic, is returned in Err.
func RunApp(t *testing.T, files map[string]string, cfg app.Config) *HarnessResult {
	t.Helper()
	return RunAppWithContext(context.Background(), t, files, cfg)
}

// RunAppWithContext is RunApp with a caller-provided context.
func RunAppWithContext(ctx context.Context, t *testing.T, files map[string]string, cfg app.Config) (result *HarnessResult) {
	t.Helper()

	cfg.ConfigPath = WriteFiles(t, files)
	cfg.LogLevel = "debug"
	appConfig, err := app.NewConfig(cfg)
	require.NoError(t, err)

	out, logs := &SafeBuffer{}, &SafeBuffer{}
	result = &HarnessResult{}
	defer func() {
		result.Output = out.String()
		result.LogOutput = logs.String()
		if os.Getenv("CGGO_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), result.LogOutput)
		}
	}()

	result.App, result.Err = startApp(out, logs, appConfig)
	if result.Err != nil {
		return result
	}
	result.Err = result.App.Run(ctx)
	return result
}

// startApp recovers the panic NewApp raises on a broken configuration.
func startApp(out, logs *SafeBuffer, cfg *app.Config) (a *app.App, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("application startup panicked: %v", r)
		}
	}()
	return app.NewApp(out, logs, cfg, hcl.NewLoader()), nil
}
