package main

import (
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/leonwijng/imdialog/native/nativetest"
)

func newTestPicker(t *testing.T) (*picker, *nativetest.Script) {
	t.Helper()
	script := nativetest.New()
	cfg := DialogConfig{Kind: "file", StartDir: "/home/user"}
	return newPicker(cfg, script.Factory, slog.New(slog.NewTextHandler(io.Discard, nil))), script
}

func showing(t *testing.T, script *nativetest.Script) {
	t.Helper()
	select {
	case <-script.Started():
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for the dialog to show")
	}
}

func pollUntilAnswered(t *testing.T, p *picker) {
	t.Helper()
	require.Eventually(t, p.poll, 2*time.Second, time.Millisecond)
	require.False(t, p.busy())
}

func TestPickerSelectsFile(t *testing.T) {
	p, script := newTestPicker(t)

	p.open("file")
	require.True(t, p.busy())
	require.Equal(t, "Waiting for the file dialog...", p.status)
	require.False(t, p.poll())

	showing(t, script)
	script.Resolve("/home/user/doc.txt")
	pollUntilAnswered(t, p)

	require.Equal(t, "/home/user/doc.txt", p.path)
	require.Equal(t, "Selected /home/user/doc.txt", p.status)
	require.Equal(t, []string{"/home/user"}, script.Locations())
}

func TestPickerDistinctOutcomes(t *testing.T) {
	p, script := newTestPicker(t)
	p.path = "/keep/me.txt"

	p.open("save")
	p.open("file")
	require.Equal(t, "A dialog is already open", p.status)
	p.open("files")
	require.Equal(t, "A dialog is already open", p.status)

	showing(t, script)
	script.Cancel()
	pollUntilAnswered(t, p)
	require.Equal(t, "Nothing selected", p.status)
	require.Equal(t, "/keep/me.txt", p.path)

	p.open("dir")
	showing(t, script)
	script.Fail(errors.New("no display"))
	pollUntilAnswered(t, p)
	require.Equal(t, "Dialog failed: no display", p.status)
	require.Equal(t, "/keep/me.txt", p.path)

	require.Equal(t, 2, script.Dialogs())
}

func TestPickerMultipleFiles(t *testing.T) {
	p, script := newTestPicker(t)

	p.open("files")
	p.open("dir")
	require.Equal(t, "A dialog is already open", p.status)

	showing(t, script)
	script.Resolve("/a/1.txt", "/a/2.txt")
	pollUntilAnswered(t, p)
	require.Equal(t, "/a/1.txt; /a/2.txt", p.path)

	require.Equal(t, "/a", p.location("file"))
	require.Equal(t, "/a/1.txt", p.location("dir"))
}

func TestPickerUnknownKind(t *testing.T) {
	p, script := newTestPicker(t)

	p.open("printer")
	require.Equal(t, `Cannot open dialog: unknown dialog kind "printer"`, p.status)
	require.False(t, p.busy())
	require.Zero(t, script.Dialogs())
}

func TestPickerLocation(t *testing.T) {
	p, _ := newTestPicker(t)
	require.Equal(t, "/home/user", p.location("file"))

	p.path = "/srv/data/report.csv"
	require.Equal(t, "/srv/data", p.location("file"))
	require.Equal(t, "/srv/data", p.location("save"))
	require.Equal(t, "/srv/data/report.csv", p.location("dir"))
}

func TestPickerCopyPath(t *testing.T) {
	var copied []string
	old := writeClipboard
	t.Cleanup(func() { writeClipboard = old })
	writeClipboard = func(s string) error {
		copied = append(copied, s)
		return nil
	}

	p, _ := newTestPicker(t)
	p.copyPath()
	require.Equal(t, "Nothing to copy", p.status)

	p.path = "/srv/x"
	p.copyPath()
	require.Equal(t, "Path copied to clipboard", p.status)
	require.Equal(t, []string{"/srv/x"}, copied)

	writeClipboard = func(string) error { return errors.New("no xclip") }
	p.copyPath()
	require.Equal(t, "Failed to copy path: no xclip", p.status)
}
