package transcribe

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"go.uber.org/zap"
)

// eventBuffer bounds the event channel; a consumer slower than the child
// process suspends the producer instead of dropping events.
const eventBuffer = 100

// Request carries the inputs for one transcription run. AudioPath and
// ModelPath are expected to exist; the runner does not re-validate them.
type Request struct {
	AudioPath    string
	ModelPath    string
	OutputFormat string
	Language     string
}

// Runner spawns the external whisper-cli executable and turns its output
// into an ordered event stream.
type Runner struct {
	Executable string
	Logger     *zap.Logger
}

// NewRunner locates the whisper-cli executable. The WHISPERCTL_WHISPER_PATH
// environment variable overrides discovery next to the whisperctl binary.
func NewRunner(logger *zap.Logger) (*Runner, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	if override := strings.TrimSpace(os.Getenv("WHISPERCTL_WHISPER_PATH")); override != "" {
		if err := ensureExecutable(override); err != nil {
			return nil, fmt.Errorf("WHISPERCTL_WHISPER_PATH is not executable: %w", err)
		}
		return &Runner{Executable: override, Logger: logger}, nil
	}

	selfExe, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("resolve whisperctl executable path: %w", err)
	}

	whisperExe, err := ResolveEnginePath(selfExe)
	if err != nil {
		return nil, err
	}

	return &Runner{Executable: whisperExe, Logger: logger}, nil
}

// ResolveEnginePath finds the whisper-cli binary installed near the given
// whisperctl executable.
func ResolveEnginePath(selfExecutable string) (string, error) {
	binDir := filepath.Dir(selfExecutable)
	engineName := engineBinaryName()

	candidates := []string{
		filepath.Join(binDir, "..", "libexec", "whisper", engineName),
		filepath.Join(binDir, "libexec", "whisper", engineName),
		filepath.Join(binDir, engineName),
	}

	for _, candidate := range candidates {
		if err := ensureExecutable(candidate); err == nil {
			return candidate, nil
		}
	}

	return "", fmt.Errorf("whisper engine not found near %s; expected at ../libexec/whisper/%s or set WHISPERCTL_WHISPER_PATH", selfExecutable, engineName)
}

// Run spawns the child process and returns the event channel. A spawn
// failure is reported immediately and no channel is returned. On success a
// detached goroutine owns the child handle and the channel's send side for
// the rest of the run; the channel is closed after the terminal event.
func (r *Runner) Run(req Request) (<-chan Event, error) {
	args := buildArgs(req)
	cmd := exec.Command(r.Executable, args...)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("open stdout pipe: %w", err)
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return nil, fmt.Errorf("open stderr pipe: %w", err)
	}

	r.log().Debug("running whisper engine", zap.String("engine", r.Executable), zap.Strings("args", args))
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("spawn %s: %w", r.Executable, err)
	}

	events := make(chan Event, eventBuffer)
	go supervise(cmd, stdout, stderr, events)
	return events, nil
}

// supervise drains both output streams concurrently, then waits for the
// child and emits exactly one terminal event before closing the channel.
func supervise(cmd *exec.Cmd, stdout, stderr io.Reader, events chan<- Event) {
	defer close(events)

	var transcript strings.Builder
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		scanner := newLineScanner(stdout)
		for scanner.Scan() {
			line := decodeLine(scanner.Bytes())
			transcript.WriteString(line)
			transcript.WriteByte('\n')
			events <- Event{Type: EventTypeOutput, Line: line}
		}
	}()

	go func() {
		defer wg.Done()
		scanner := newLineScanner(stderr)
		for scanner.Scan() {
			events <- Event{Type: EventTypeOutput, Line: decodeLine(scanner.Bytes()), Stderr: true}
		}
	}()

	// Both pipes must be fully drained before Wait may reap the child.
	wg.Wait()

	if err := cmd.Wait(); err != nil {
		events <- Event{Type: EventTypeFailed, Message: failureMessage(err)}
		return
	}
	events <- Event{Type: EventTypeCompleted, Output: transcript.String()}
}

// buildArgs constructs the whisper-cli argument list. The language flag is
// omitted entirely for the auto-detect sentinel so the tool picks the
// language itself.
func buildArgs(req Request) []string {
	args := []string{
		"-m", req.ModelPath,
		"-f", req.AudioPath,
		"-o", req.OutputFormat,
	}

	lang := strings.TrimSpace(req.Language)
	if lang != "" && !strings.EqualFold(lang, "auto") {
		args = append(args, "-l", lang)
	}

	return args
}

func failureMessage(err error) string {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if code := exitErr.ExitCode(); code >= 0 {
			return fmt.Sprintf("process exited with code: %d", code)
		}
		// Killed by a signal; no exit code to report.
		return "process exited with code: unknown"
	}
	return fmt.Sprintf("process failed: %v", err)
}

func newLineScanner(r io.Reader) *bufio.Scanner {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	return scanner
}

// decodeLine converts raw child output to text, replacing invalid byte
// sequences instead of failing the pipeline.
func decodeLine(raw []byte) string {
	return strings.ToValidUTF8(string(raw), "�")
}

func (r *Runner) log() *zap.Logger {
	if r.Logger == nil {
		return zap.NewNop()
	}
	return r.Logger
}

func engineBinaryName() string {
	if runtime.GOOS == "windows" {
		return "whisper-cli.exe"
	}
	return "whisper-cli"
}

func ensureExecutable(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory", path)
	}
	if runtime.GOOS != "windows" && info.Mode()&0o111 == 0 {
		return fmt.Errorf("%s is not executable", path)
	}
	return nil
}
