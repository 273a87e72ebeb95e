package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func writeTempLaboFile(t *testing.T, src string) string {
	t.Helper()
	dir := t.TempDir()
	filename := filepath.Join(dir, "input.labo")
	if err := os.WriteFile(filename, []byte(src), 0o600); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	return filename
}

// runLabo runs the command with args and stdin, returning the exit code
// and both outputs.
func runLabo(t *testing.T, stdin string, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = run(append([]string{"labo"}, args...), strings.NewReader(stdin), &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestRunFile(t *testing.T) {
	filename := writeTempLaboFile(t, "var x = 3; print x + 4")

	for _, args := range [][]string{{filename}, {"-i", filename}} {
		code, out, errOut := runLabo(t, "", args...)
		if code != 0 {
			t.Fatalf("%v: exit=%d\nstderr:\n%s", args, code, errOut)
		}
		if out != "7\n" {
			t.Errorf("%v: stdout = %q, want %q", args, out, "7\n")
		}
	}
}

func TestRunStdin(t *testing.T) {
	code, out, errOut := runLabo(t, "print [2:20][1:10]")
	if code != 0 {
		t.Fatalf("exit=%d\nstderr:\n%s", code, errOut)
	}
	if out != "[1:10,2:20]\n" {
		t.Errorf("stdout = %q", out)
	}
}

func TestRunOutputFile(t *testing.T) {
	filename := writeTempLaboFile(t, "print 1; print 2")
	output := filepath.Join(t.TempDir(), "out.txt")

	code, out, errOut := runLabo(t, "", "-o", output, filename)
	if code != 0 {
		t.Fatalf("exit=%d\nstderr:\n%s", code, errOut)
	}
	if out != "" {
		t.Errorf("unexpected stdout %q", out)
	}
	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "1\n2\n" {
		t.Errorf("output file = %q", data)
	}
}

func TestRunOutputFileUntouchedOnCheckError(t *testing.T) {
	dir := t.TempDir()
	bad := writeTempLaboFile(t, "print 1; print 1 + true")

	existing := filepath.Join(dir, "existing.txt")
	if err := os.WriteFile(existing, []byte("keep\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if code, _, _ := runLabo(t, "", "-o", existing, bad); code != 1 {
		t.Fatalf("exit=%d, want 1", code)
	}
	if data, _ := os.ReadFile(existing); string(data) != "keep\n" {
		t.Errorf("output file rewritten to %q", data)
	}

	missing := filepath.Join(dir, "missing.txt")
	if code, _, _ := runLabo(t, "", "-o", missing, bad); code != 1 {
		t.Fatalf("exit=%d, want 1", code)
	}
	if _, err := os.Stat(missing); !os.IsNotExist(err) {
		t.Errorf("output file created for a rejected program (stat err = %v)", err)
	}

	// a program that prints nothing still produces an empty file
	silent := writeTempLaboFile(t, "var x = 1")
	empty := filepath.Join(dir, "empty.txt")
	if code, _, errOut := runLabo(t, "", "-o", empty, silent); code != 0 {
		t.Fatalf("exit=%d\nstderr:\n%s", code, errOut)
	}
	if data, err := os.ReadFile(empty); err != nil || len(data) != 0 {
		t.Errorf("empty output: data=%q err=%v", data, err)
	}
}

func TestDiagnosticsColor(t *testing.T) {
	saved := color.NoColor
	color.NoColor = false
	defer func() { color.NoColor = saved }()

	pr, pw, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	defer pr.Close()
	defer pw.Close()

	tests := []struct {
		name      string
		w         io.Writer
		mode      string
		wantColor bool
	}{
		{"auto_buffer", &bytes.Buffer{}, "auto", false},
		{"auto_pipe", pw, "auto", false},
		{"never", &bytes.Buffer{}, "never", false},
		{"always", &bytes.Buffer{}, "always", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newDiagnostics(tt.w, tt.mode)
			var got bytes.Buffer
			d.w = &got
			d.fatal(errors.New("boom"))
			if colored := strings.Contains(got.String(), "\x1b["); colored != tt.wantColor {
				t.Errorf("output %q: colored = %v, want %v", got.String(), colored, tt.wantColor)
			}
		})
	}
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		args    []string
		stdout  string
		wantErr string
	}{
		{"lex", "print @", nil, "", "lex error: <stdin>:1:7: unrecognized token starting at '@'"},
		{"parse", "print (1", nil, "", `parse error: <stdin>:1:9: expected ")", found EOF`},
		{"typecheck", "print 1; print y", nil, "", "typecheck error: <stdin>:1:16: undeclared name: y"},
		{"execute", "print 1; print [1:1][0]", nil, "1\n", "execute error: <stdin>:1:22: missing key 0"},
		{"no_typecheck", "print 1; print 1 + true", []string{"-n"}, "1\n", "execute error: <stdin>:1:20: found bool true, expected int"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, out, errOut := runLabo(t, tt.src, tt.args...)
			if code != 1 {
				t.Errorf("exit=%d, want 1", code)
			}
			if out != tt.stdout {
				t.Errorf("stdout = %q, want %q", out, tt.stdout)
			}
			if !strings.Contains(errOut, tt.wantErr) {
				t.Errorf("stderr = %q, want it to contain %q", errOut, tt.wantErr)
			}
		})
	}
}

func TestRunMissingFile(t *testing.T) {
	code, _, errOut := runLabo(t, "", filepath.Join(t.TempDir(), "nope.labo"))
	if code != 1 || !strings.Contains(errOut, "nope.labo") {
		t.Errorf("exit=%d stderr=%q", code, errOut)
	}
}

func TestRunBadOptions(t *testing.T) {
	code, _, errOut := runLabo(t, "", "-z")
	if code != 1 || !strings.Contains(errOut, "Usage:") {
		t.Errorf("exit=%d stderr=%q", code, errOut)
	}

	code, _, errOut = runLabo(t, "", "a.labo", "b.labo")
	if code != 1 || !strings.Contains(errOut, "unexpected arguments: b.labo") {
		t.Errorf("exit=%d stderr=%q", code, errOut)
	}
}

func TestRunHelpVersion(t *testing.T) {
	code, out, _ := runLabo(t, "", "-h")
	if code != 0 || !strings.Contains(out, "Usage: labo") {
		t.Errorf("-h: exit=%d stdout=%q", code, out)
	}
	code, out, _ = runLabo(t, "", "-v")
	if code != 0 || !strings.Contains(out, "labo version "+Version) {
		t.Errorf("-v: exit=%d stdout=%q", code, out)
	}
}

func TestRunEmitTokens(t *testing.T) {
	code, out, errOut := runLabo(t, "var x = 1", "-t")
	if code != 0 {
		t.Fatalf("exit=%d\nstderr:\n%s", code, errOut)
	}
	for _, want := range []string{"POSITION", `<stdin>:1:1`, `var      "var"`, `NAME     "x"`, `NUM      "1"`, `EOF      ""`} {
		if !strings.Contains(out, want) {
			t.Errorf("token dump missing %q:\n%s", want, out)
		}
	}

	code, _, errOut = runLabo(t, "var x = #", "-t")
	if code != 1 || !strings.Contains(errOut, "lex error:") {
		t.Errorf("exit=%d stderr=%q", code, errOut)
	}
}

func TestRunEmitAST(t *testing.T) {
	code, out, errOut := runLabo(t, "print fst (1, 2)", "-a")
	if code != 0 {
		t.Fatalf("exit=%d\nstderr:\n%s", code, errOut)
	}
	for _, want := range []string{"Program <stdin>:1:1", "PrintStmt", "UnaryExpr fst", "PairLit"} {
		if !strings.Contains(out, want) {
			t.Errorf("AST missing %q:\n%s", want, out)
		}
	}

	code, out, errOut = runLabo(t, "print 1", "-a", "-j")
	if code != 0 {
		t.Fatalf("exit=%d\nstderr:\n%s", code, errOut)
	}
	var v map[string]interface{}
	if err := json.Unmarshal([]byte(out), &v); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, out)
	}
	if v["type"] != "Program" {
		t.Errorf("type = %v, want Program", v["type"])
	}
}

func TestRunEmitTypedAST(t *testing.T) {
	code, out, errOut := runLabo(t, "var d = [1:(2, true)]; print d[1]", "-y")
	if code != 0 {
		t.Fatalf("exit=%d\nstderr:\n%s", code, errOut)
	}
	for _, want := range []string{
		"DictExpr create <stdin>:1:9 : [int:(int,bool)]",
		"PairLit <stdin>:1:13 : (int,bool)",
		"DictExpr get <stdin>:1:30 : (int,bool)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("typed AST missing %q:\n%s", want, out)
		}
	}

	// -y always checks, even with -n
	code, _, errOut = runLabo(t, "print 1 + true", "-y", "-n")
	if code != 1 || !strings.Contains(errOut, "typecheck error:") {
		t.Errorf("exit=%d stderr=%q", code, errOut)
	}
}

func TestRunConfigFile(t *testing.T) {
	dir := t.TempDir()
	conf := filepath.Join(dir, "labo.yaml")
	if err := os.WriteFile(conf, []byte("typecheck: false\ncolor: never\ntrace: true\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	code, out, errOut := runLabo(t, "print 1; print 1 + true", "-c", conf)
	if code != 1 || out != "1\n" {
		t.Errorf("exit=%d stdout=%q", code, out)
	}
	if !strings.Contains(errOut, "execute error:") {
		t.Errorf("stderr = %q, want execute error", errOut)
	}
	if strings.Contains(errOut, "\x1b[") {
		t.Errorf("colour used with color: never:\n%q", errOut)
	}
	if !strings.Contains(errOut, "labo: parse") || !strings.Contains(errOut, "labo: execute") {
		t.Errorf("trace missing from stderr:\n%s", errOut)
	}

	bad := filepath.Join(dir, "bad.yaml")
	os.WriteFile(bad, []byte("colour: red\n"), 0o600)
	code, _, errOut = runLabo(t, "print 1", "-c", bad)
	if code != 1 || !strings.Contains(errOut, "colour") {
		t.Errorf("exit=%d stderr=%q", code, errOut)
	}
}

func TestSession(t *testing.T) {
	var out, errOut bytes.Buffer
	s := &session{out: &out, d: newDiagnostics(&errOut, "never")}

	steps := []struct {
		line   string
		quit   bool
		out    string
		errOut string
	}{
		{"var x = 2; print x * 21", false, "42\n", ""},
		{"print x", false, "", "typecheck error: <repl>:1:7: undeclared name: x\n"},
		{"   ", false, "", ""},
		{"print 1 + true", false, "", "typecheck error:"},
		{":notc", false, "type checking off\n", ""},
		{"print 1; print 1 + true", false, "1\n", "execute error:"},
		{":notc", false, "type checking on\n", ""},
		{":help", false, ":quit", ""},
		{":bogus", false, "unknown command :bogus", ""},
		{":quit", true, "", ""},
	}

	for _, st := range steps {
		out.Reset()
		errOut.Reset()
		if quit := s.eval(st.line); quit != st.quit {
			t.Errorf("%q: quit = %v, want %v", st.line, quit, st.quit)
		}
		if !strings.Contains(out.String(), st.out) || (st.out == "" && out.Len() > 0) {
			t.Errorf("%q: stdout = %q, want %q", st.line, out.String(), st.out)
		}
		if !strings.Contains(errOut.String(), st.errOut) || (st.errOut == "" && errOut.Len() > 0) {
			t.Errorf("%q: stderr = %q, want %q", st.line, errOut.String(), st.errOut)
		}
	}
}

func TestHistoryPath(t *testing.T) {
	if historyPath("") != "" {
		t.Error("empty history file should disable history")
	}
	if got := historyPath("/tmp/h"); got != "/tmp/h" {
		t.Errorf("absolute path changed to %q", got)
	}
	if home, err := os.UserHomeDir(); err == nil {
		if got := historyPath(".h"); got != filepath.Join(home, ".h") {
			t.Errorf("historyPath(.h) = %q", got)
		}
	}
}
