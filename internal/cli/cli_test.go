// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
	"github.com/peterh/liner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"

	"github.com/jeranaias/termfolio/internal/commands"
	"github.com/jeranaias/termfolio/internal/config"
	"github.com/jeranaias/termfolio/internal/content"
	"github.com/jeranaias/termfolio/internal/ui/styles"
)

func testTheme() *styles.Theme {
	return styles.NewTheme(config.ThemeDark)
}

// =============================================================================
// PLAYER TESTS
// =============================================================================

func TestPlayer_SkillsUsePlainBars(t *testing.T) {
	var buf bytes.Buffer
	res, _ := commands.NewRouter().Dispatch("cat skills.txt")

	require.NoError(t, NewPlayer(&buf, testTheme(), 80).Play(context.Background(), res))

	lines := strings.Split(strings.TrimRight(ansi.Strip(buf.String()), "\n"), "\n")
	require.Len(t, lines, 9)
	assert.Equal(t, "Skills:", strings.TrimSpace(lines[0]))
	assert.True(t, strings.HasPrefix(lines[1], "JavaScript"))
	assert.True(t, strings.HasSuffix(lines[1], "] 95%"))
}

func TestPlayer_Echo(t *testing.T) {
	var buf bytes.Buffer
	res, _ := commands.NewRouter().Dispatch("WHOAMI")

	p := NewPlayer(&buf, testTheme(), 80, WithEcho("user@akash:~$"))
	require.NoError(t, p.Play(context.Background(), res))
	assert.True(t, strings.HasPrefix(ansi.Strip(buf.String()), "user@akash:~$ WHOAMI"))
}

func TestPlayer_PingHonoursDelays(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	var buf bytes.Buffer
	r := commands.NewRouter(commands.WithPingInterval(5 * time.Millisecond))
	res, _ := r.Dispatch("ping google.com")

	start := time.Now()
	require.NoError(t, NewPlayer(&buf, testTheme(), 80).Play(context.Background(), res))
	assert.GreaterOrEqual(t, time.Since(start), 25*time.Millisecond)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 1+4+3)
	assert.Contains(t, lines[len(lines)-2], "0.0% packet loss")
}

func TestPlayer_CancelStopsWaiting(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	var buf bytes.Buffer
	r := commands.NewRouter(commands.WithPingInterval(time.Hour))
	res, _ := r.Dispatch("ping google.com")

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := NewPlayer(&buf, testTheme(), 80).Play(ctx, res)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, 1, strings.Count(buf.String(), "\n"), "only the header is printed")
}

func TestPlayer_ModalPrintedOnce(t *testing.T) {
	var buf bytes.Buffer
	res, _ := commands.NewRouter().Dispatch("sudo rm -rf /")

	require.NoError(t, NewPlayer(&buf, testTheme(), 80).Play(context.Background(), res))
	out := buf.String()
	assert.Contains(t, out, commands.AccessDeniedMessage)
	assert.Contains(t, out, "Unauthorized")
	assert.Equal(t, 1, strings.Count(out, "ACCESS DENIED"))
}

func TestPlayer_TypewriterWritesEveryRune(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	var buf bytes.Buffer
	res, _ := commands.NewRouter().Dispatch("exit")
	p := NewPlayer(&buf, testTheme(), 80, WithTypewriter(time.Microsecond))

	require.NoError(t, p.Play(context.Background(), res))
	assert.Equal(t, commands.ExitMessage+"\n", buf.String())
}

func TestSkillBars(t *testing.T) {
	lines := SkillBars(content.Default().Skills, 80)
	require.Len(t, lines, 8)
	width := len(lines[0])
	for _, l := range lines {
		assert.Contains(t, l, "[")
		assert.LessOrEqual(t, len(l)-width, 1, "bars should line up: %q", l)
	}
}

// =============================================================================
// TYPEWRITER TESTS
// =============================================================================

func TestTypewriter_CancelledContext(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	err := NewTypewriter(time.Hour).Type(ctx, &buf, "hello")
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, buf.String())
}

func TestTypewriter_Paces(t *testing.T) {
	var buf bytes.Buffer
	start := time.Now()
	require.NoError(t, NewTypewriter(5*time.Millisecond).Type(context.Background(), &buf, "abcd"))
	assert.Equal(t, "abcd", buf.String())
	// the first rune uses the initial burst token
	assert.GreaterOrEqual(t, time.Since(start), 14*time.Millisecond)
}

// =============================================================================
// REPL TESTS
// =============================================================================

type scriptedReader struct {
	lines   []any // string or error
	history []string
	prompts []string
}

func (s *scriptedReader) Prompt(prompt string) (string, error) {
	s.prompts = append(s.prompts, prompt)
	if len(s.lines) == 0 {
		return "", io.EOF
	}
	next := s.lines[0]
	s.lines = s.lines[1:]
	if err, ok := next.(error); ok {
		return "", err
	}
	return next.(string), nil
}

func (s *scriptedReader) AppendHistory(item string) {
	s.history = append(s.history, item)
}

func TestREPL_RunsUntilEOF(t *testing.T) {
	reader := &scriptedReader{lines: []any{"help", "   ", "quit", liner.ErrPromptAborted, "Nope"}}
	var buf bytes.Buffer
	repl := NewREPL(reader, commands.NewRouter(), NewPlayer(&buf, testTheme(), 80), "user@akash:~$", zap.NewNop())

	require.NoError(t, repl.Run(context.Background()))

	out := buf.String()
	assert.Contains(t, out, "Available commands:")
	assert.Contains(t, out, commands.ExitMessage, "quit never leaves the REPL")
	assert.Contains(t, out, commands.NotFoundMessage("Nope"))
	assert.Equal(t, []string{"help", "quit", "Nope"}, reader.history)
	assert.Len(t, reader.prompts, 6)
	assert.Equal(t, "user@akash:~$ ", reader.prompts[0])
}

func TestREPL_InterruptReturnsToPrompt(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	reader := &scriptedReader{lines: []any{"ping google.com", "help"}}
	var buf bytes.Buffer
	router := commands.NewRouter(commands.WithPingInterval(time.Hour))
	interrupted := func(ctx context.Context) (context.Context, context.CancelFunc) {
		return context.WithTimeout(ctx, 10*time.Millisecond)
	}
	repl := NewREPL(reader, router, NewPlayer(&buf, testTheme(), 80), ">", nil, WithInterrupt(interrupted))

	require.NoError(t, repl.Run(context.Background()))

	out := buf.String()
	assert.Contains(t, out, "PING google.com")
	assert.NotContains(t, out, "packet loss")
	assert.Contains(t, out, "Available commands:", "the next command still runs")
	assert.Len(t, reader.prompts, 3)
}

func TestREPL_ReadError(t *testing.T) {
	reader := &scriptedReader{lines: []any{errors.New("tty gone")}}
	repl := NewREPL(reader, commands.NewRouter(), NewPlayer(io.Discard, testTheme(), 80), ">", nil)
	err := repl.Run(context.Background())
	assert.ErrorContains(t, err, "tty gone")
}

func TestREPL_StopsWhenCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	reader := &scriptedReader{lines: []any{"help"}}
	repl := NewREPL(reader, commands.NewRouter(), NewPlayer(io.Discard, testTheme(), 80), ">", nil)
	require.NoError(t, repl.Run(ctx))
	assert.Empty(t, reader.prompts)
}

// =============================================================================
// COMMAND TESTS
// =============================================================================

// execute runs the root command with args in an isolated home directory.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("USERPROFILE", t.TempDir())
	for _, env := range []string{"TERMFOLIO_THEME", "TERMFOLIO_NO_RAIN", "TERMFOLIO_PROFILE",
		"TERMFOLIO_LOG_FILE", "TERMFOLIO_LOG_LEVEL", "TERMFOLIO_TYPEWRITER_DELAY_MS"} {
		t.Setenv(env, "")
	}
	t.Cleanup(func() {
		cfgFile, themeName, logFile, configFormat = "", "", "", "toml"
		plainMode, noRain, verbose = false, false, false
		current = nil
		logger = zap.NewNop()
		config.ResetGlobalForTesting()
	})

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRunCommand(t *testing.T) {
	out, err := execute(t, "run", "ls", "projects/")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(strings.TrimSpace(ansi.Strip(out)), "Projects:"))
}

func TestRunCommand_InputWithFlags(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"git", "log", "--oneline"}, "Recent commits:"},
		{[]string{"./run", "--profile"}, "Profile Information:"},
		{[]string{"sudo", "rm", "-rf", "/"}, commands.AccessDeniedMessage},
	}
	for _, tt := range tests {
		out, err := execute(t, append([]string{"run"}, tt.args...)...)
		require.NoError(t, err, "run %v", tt.args)
		assert.Contains(t, ansi.Strip(out), tt.want, "run %v", tt.args)
		assert.NotContains(t, ansi.Strip(out), "Command not found", "run %v", tt.args)
	}
}

func TestRunCommand_GlobalFlagBeforeRun(t *testing.T) {
	_, err := execute(t, "--theme", "dark", "run", "git", "log", "--oneline")
	require.NoError(t, err)
	assert.Equal(t, config.ThemeDark, current.cfg.UI.Theme)
}

func TestRunCommand_NotFound(t *testing.T) {
	out, err := execute(t, "run", "FooBar")
	require.NoError(t, err)
	assert.Contains(t, ansi.Strip(out), commands.NotFoundMessage("FooBar"))
}

func TestCommandsCommand(t *testing.T) {
	out, err := execute(t, "commands")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(strings.TrimSpace(ansi.Strip(out)), "Available commands:"))
	assert.NotContains(t, out, "matrix")
}

func TestConfigGet(t *testing.T) {
	out, err := execute(t, "--no-rain", "config", "get", "effects.background_rain")
	require.NoError(t, err)
	assert.Equal(t, "false\n", out)
}

func TestConfigGet_UnknownKey(t *testing.T) {
	_, err := execute(t, "config", "get", "nope.nothing")
	var cmdErr *CommandError
	require.ErrorAs(t, err, &cmdErr)
	assert.Equal(t, ExitGeneralError, ExitCode(err))
}

func TestConfigShow_YAML(t *testing.T) {
	out, err := execute(t, "config", "show", "--format", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "typewriter_delay_ms: 30")
}

func TestThemeFlag_Invalid(t *testing.T) {
	_, err := execute(t, "--theme", "neon", "version")
	require.ErrorIs(t, err, config.ErrUnknownTheme)
	assert.Equal(t, ExitConfigError, ExitCode(err))
}

func TestConfigFile_Invalid(t *testing.T) {
	path := t.TempDir() + "/bad.toml"
	require.NoError(t, writeFile(path, "[effects]\ntypewriter_delay_ms = 0\n"))

	_, err := execute(t, "--config", path, "version")
	require.Error(t, err)
	assert.Equal(t, ExitConfigError, ExitCode(err))
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("termfolio version %s (commit %s, built %s)\n", Version, GitCommit, BuildDate), out)
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, ExitSuccess, ExitCode(nil))
	assert.Equal(t, ExitGeneralError, ExitCode(errors.New("boom")))
	assert.Equal(t, ExitConfigError, ExitCode(fmt.Errorf("wrap: %w", content.ErrInvalidProfile)))
}

func TestDisplayError(t *testing.T) {
	var buf bytes.Buffer
	DisplayError(&buf, errors.New("boom"))
	assert.Contains(t, buf.String(), "Error:")
	assert.Contains(t, buf.String(), "boom")
}

func writeFile(path, data string) error {
	return os.WriteFile(path, []byte(data), 0o644)
}

func TestColorProfile_NoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.False(t, ColorsEnabled())
	assert.Equal(t, termenv.Ascii, GetColorProfile())
}
