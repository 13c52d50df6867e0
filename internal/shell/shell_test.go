package shell

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"feature-feedback-board/internal/pkg/idgen"
	"feature-feedback-board/internal/pkg/logger"
	"feature-feedback-board/internal/repository/memory"
	"feature-feedback-board/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestShell() (*Shell, *bytes.Buffer) {
	store := memory.NewFeatureStore(idgen.NewSequenceGenerator("f"))
	svc := service.NewFeatureService(store, memory.NewProjectionCache(), logger.NewNopLogger())
	var out bytes.Buffer
	return New(svc, logger.NewNopLogger(), &out, true), &out
}

func run(t *testing.T, sh *Shell, out *bytes.Buffer, line string) string {
	t.Helper()
	out.Reset()
	quit, err := sh.Execute(context.Background(), line)
	require.NoError(t, err)
	require.False(t, quit)
	return out.String()
}

func TestShellAddAndList(t *testing.T) {
	sh, out := newTestShell()

	got := run(t, sh, out, "list")
	assert.Contains(t, got, "No feature requests yet")

	got = run(t, sh, out, `add "Dark mode toggle" "Add an accessible dark mode." Planned`)
	assert.Contains(t, got, "Added Dark mode toggle as f1")
	assert.Contains(t, got, "Status: Planned")
	assert.Contains(t, got, "Votes:  0")

	run(t, sh, out, `add "Keyboard shortcuts" "Global shortcuts for navigation."`)
	run(t, sh, out, "vote f2")

	got = run(t, sh, out, "list")
	assert.Contains(t, got, "Showing 2 of 2 features (filter: all, sort: votes-desc)")
	lines := strings.Split(strings.TrimSpace(got), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[1], "Keyboard shortcuts")
	assert.Contains(t, lines[1], "1 vote")
	assert.True(t, strings.HasPrefix(lines[1], "*"), "newest submission is selected")
	assert.Contains(t, lines[2], "Dark mode toggle")
}

func TestShellValidationMessages(t *testing.T) {
	sh, out := newTestShell()

	got := run(t, sh, out, `add "ab" "short"`)
	assert.Contains(t, got, "! Description must be at least 10 characters")
	assert.Contains(t, got, "! Title must be at least 3 characters")

	got = run(t, sh, out, "list")
	assert.Contains(t, got, "No feature requests yet")
}

func TestShellFilterAndStatus(t *testing.T) {
	sh, out := newTestShell()
	run(t, sh, out, `add "Dark mode toggle" "Add an accessible dark mode."`)

	got := run(t, sh, out, "filter Completed")
	assert.Contains(t, got, "No features match the current filter.")

	got = run(t, sh, out, "status f1 completed")
	assert.Contains(t, got, "Dark mode toggle is now Completed")

	got = run(t, sh, out, "list")
	assert.Contains(t, got, "Showing 1 of 1 features (filter: Completed")

	got = run(t, sh, out, "status f1 shipped")
	assert.Contains(t, got, "! Status must be one of Open, Planned, Completed")
}

func TestShellMissingIds(t *testing.T) {
	sh, out := newTestShell()

	assert.Contains(t, run(t, sh, out, "vote f9"), "No feature with id f9")
	assert.Contains(t, run(t, sh, out, "status f9 Open"), "No feature with id f9")
	assert.Contains(t, run(t, sh, out, "select f9"), "No feature selected.")
}

func TestShellSelection(t *testing.T) {
	sh, out := newTestShell()
	run(t, sh, out, `add "Dark mode toggle" "Add an accessible dark mode."`)
	run(t, sh, out, `add "Keyboard shortcuts" "Global shortcuts for navigation."`)

	got := run(t, sh, out, "select f1")
	assert.Contains(t, got, "Dark mode toggle (f1)")

	run(t, sh, out, "vote f1")
	assert.Contains(t, run(t, sh, out, "show"), "Votes:  1")

	run(t, sh, out, "clear")
	assert.Contains(t, run(t, sh, out, "show"), "No feature selected.")
}

func TestShellSort(t *testing.T) {
	sh, out := newTestShell()
	run(t, sh, out, `add "Zeta feature" "Last alphabetically."`)
	run(t, sh, out, `add "alpha feature" "First alphabetically."`)

	got := run(t, sh, out, "sort title")
	lines := strings.Split(strings.TrimSpace(got), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[1], "alpha feature")
	assert.Contains(t, lines[2], "Zeta feature")

	got = run(t, sh, out, "sort oldest")
	lines = strings.Split(strings.TrimSpace(got), "\n")
	assert.Contains(t, lines[1], "Zeta feature")
}

func TestShellErrors(t *testing.T) {
	sh, _ := newTestShell()
	ctx := context.Background()

	_, err := sh.Execute(ctx, "launch")
	assert.Error(t, err)

	_, err = sh.Execute(ctx, "vote")
	assert.Error(t, err)

	_, err = sh.Execute(ctx, "sort popularity")
	assert.Error(t, err)

	_, err = sh.Execute(ctx, `add "unterminated`)
	assert.Error(t, err)

	quit, err := sh.Execute(ctx, "   ")
	assert.NoError(t, err)
	assert.False(t, quit)
}

func TestShellRun(t *testing.T) {
	sh, out := newTestShell()
	in := strings.NewReader(strings.Join([]string{
		`add "Export feedback" "Allow CSV export of feedback items."`,
		"bogus",
		"exit",
		"list",
	}, "\n"))

	require.NoError(t, sh.Run(context.Background(), in))

	got := out.String()
	assert.Contains(t, got, "Added Export feedback as f1")
	assert.Contains(t, got, `error: unknown command "bogus"`)
	assert.NotContains(t, got, "Showing", "commands after exit are not run")
}

func TestShellRunStopsAtEOF(t *testing.T) {
	sh, out := newTestShell()
	require.NoError(t, sh.Run(context.Background(), strings.NewReader("list\n")))
	assert.Contains(t, out.String(), "No feature requests yet")
}
