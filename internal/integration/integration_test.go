// internal/integration/integration_test.go
package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"sigrank/internal/app"
	"sigrank/pkg/api"
)

const twoRecords = ">id1 Desc one\nAC\n>id2 Desc two\nACD\n"

func write(t *testing.T, dir, name, data string) string {
	t.Helper()
	fn := filepath.Join(dir, name)
	if err := os.WriteFile(fn, []byte(data), 0644); err != nil {
		t.Fatalf("write %s: %v", fn, err)
	}
	return fn
}

func read(t *testing.T, fn string) string {
	t.Helper()
	b, err := os.ReadFile(fn)
	if err != nil {
		t.Fatalf("read %s: %v", fn, err)
	}
	return string(b)
}

func run(t *testing.T, stdin string, argv ...string) (int, string, string) {
	t.Helper()
	var out, errBuf bytes.Buffer
	code := app.Run(argv, strings.NewReader(stdin), &out, &errBuf)
	return code, out.String(), errBuf.String()
}

func TestEndToEndCSV(t *testing.T) {
	dir := t.TempDir()
	fa := write(t, dir, "db.fasta", twoRecords)
	csvOut := filepath.Join(dir, "out.csv")

	code, _, errs := run(t, "", "--archive", fa, "--output", csvOut, "--query", "AC", "--no-progress")
	if code != 0 {
		t.Fatalf("exit %d, err=%s", code, errs)
	}
	lines := strings.Split(strings.TrimRight(read(t, csvOut), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("want 3 lines, got %q", lines)
	}
	if lines[0] != "Index,Metric,Length,Description,Sequence" {
		t.Fatalf("header %q", lines[0])
	}
	if lines[1] != "0,0.000000,2,Desc one,AC" {
		t.Fatalf("first row %q", lines[1])
	}
	if !strings.HasPrefix(lines[2], "1,") || !strings.HasSuffix(lines[2], ",3,Desc two,ACD") {
		t.Fatalf("second row %q", lines[2])
	}
}

func TestPromptedQueryAndLimit(t *testing.T) {
	dir := t.TempDir()
	fa := write(t, dir, "db.fasta", twoRecords)
	out := filepath.Join(dir, "out.csv")

	code, _, errs := run(t, "ACD\n1\n", "--archive", fa, "--output", out, "--no-progress")
	if code != 0 {
		t.Fatalf("exit %d, err=%s", code, errs)
	}
	if !strings.Contains(errs, "Enter target sequence: ") || !strings.Contains(errs, "How many results to keep?") {
		t.Fatalf("prompts missing from stderr: %q", errs)
	}
	want := "Index,Metric,Length,Description,Sequence\n1,0.000000,3,Desc two,ACD\n"
	if got := read(t, out); got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestPromptedInvalidLimitKeepsAll(t *testing.T) {
	dir := t.TempDir()
	fa := write(t, dir, "db.fasta", twoRecords)
	out := filepath.Join(dir, "out.csv")

	code, _, errs := run(t, "AC\nabc\n", "--archive", fa, "--output", out, "--no-progress")
	if code != 0 {
		t.Fatalf("exit %d, err=%s", code, errs)
	}
	if !strings.Contains(errs, "using default: all records") {
		t.Fatalf("fallback not reported: %q", errs)
	}
	if n := strings.Count(read(t, out), "\n"); n != 3 {
		t.Fatalf("want header + 2 rows, got %d lines", n)
	}
}

func TestTopFlag(t *testing.T) {
	dir := t.TempDir()
	fa := write(t, dir, "db.fasta", twoRecords)

	code, stdout, errs := run(t, "", "--archive", fa, "--output", "-", "--query", "AC", "--top", "1", "--quiet")
	if code != 0 {
		t.Fatalf("exit %d, err=%s", code, errs)
	}
	if stdout != "Index,Metric,Length,Description,Sequence\n0,0.000000,2,Desc one,AC\n" {
		t.Fatalf("stdout %q", stdout)
	}
	if errs != "" {
		t.Fatalf("--quiet still logged: %q", errs)
	}
}

func TestEmptyQueryIsUsageError(t *testing.T) {
	dir := t.TempDir()
	fa := write(t, dir, "db.fasta", twoRecords)
	out := filepath.Join(dir, "out.csv")
	if code, _, _ := run(t, "\n", "--archive", fa, "--output", out); code != 2 {
		t.Fatalf("want exit 2, got %d", code)
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Fatalf("output created for empty query")
	}
}

func TestStdinArchiveNeedsQueryFlag(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "out.csv")
	code, _, errs := run(t, "AC\n0\n"+twoRecords, "--archive", "-", "--output", out, "--no-progress")
	if code != 2 {
		t.Fatalf("want exit 2, got %d (%s)", code, errs)
	}
	if !strings.Contains(errs, "--query is required when the archive is read from stdin") {
		t.Fatalf("missing reason: %q", errs)
	}
	if strings.Contains(errs, "Enter target sequence") {
		t.Fatalf("prompted despite stdin archive: %q", errs)
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Fatalf("output created")
	}
}

func TestStdinArchiveWithQueryFlag(t *testing.T) {
	orig := os.Stdin
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	os.Stdin = r
	defer func() { os.Stdin = orig }()
	go func() {
		_, _ = w.WriteString(twoRecords)
		_ = w.Close()
	}()

	code, stdout, errs := run(t, "", "--archive", "-", "--output", "-", "--query", "AC", "--quiet")
	if code != 0 {
		t.Fatalf("exit %d, err=%s", code, errs)
	}
	if n := strings.Count(stdout, "\n"); n != 3 || !strings.Contains(stdout, "0,0.000000,2,Desc one,AC") {
		t.Fatalf("stdout %q", stdout)
	}
}

func TestFullWidthQueryIsNormalized(t *testing.T) {
	dir := t.TempDir()
	fa := write(t, dir, "db.fasta", twoRecords)
	code, stdout, errs := run(t, "", "--archive", fa, "--output", "-", "--query", "\uff21\uff23", "--top", "1", "--quiet")
	if code != 0 {
		t.Fatalf("exit %d, err=%s", code, errs)
	}
	// Without NFKC both letters would be dropped and every record would sit
	// at distance 1; normalized, the query is "AC" and id1 matches exactly.
	if stdout != "Index,Metric,Length,Description,Sequence\n0,0.000000,2,Desc one,AC\n" {
		t.Fatalf("stdout %q", stdout)
	}
}

func TestUnreadableArchive(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "out.csv")
	code, _, errs := run(t, "", "--archive", filepath.Join(dir, "nope.fasta"), "--output", out, "--query", "MAF")
	if code != 3 {
		t.Fatalf("want exit 3, got %d (%s)", code, errs)
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Fatalf("output created for unreadable archive")
	}
}

func TestEmptyArchive(t *testing.T) {
	dir := t.TempDir()
	fa := write(t, dir, "db.fasta", ">only a header\n\n")
	out := filepath.Join(dir, "out.csv")
	if code, _, errs := run(t, "", "--archive", fa, "--output", out, "--query", "MAF"); code != 0 {
		t.Fatalf("exit %d, err=%s", code, errs)
	}
	if got := read(t, out); got != "Index,Metric,Length,Description,Sequence\n" {
		t.Fatalf("got %q", got)
	}
}

func TestParallelMatchesSerial(t *testing.T) {
	dir := t.TempDir()
	var b strings.Builder
	for i := 0; i < 500; i++ {
		fmt.Fprintf(&b, ">sp|P%05d|X_%d protein %d\n%s\n", i, i, i, strings.Repeat("MAFKLVW"[i%7:], 1+i%5))
	}
	fa := write(t, dir, "db.fasta", b.String())

	runThreads := func(threads int) string {
		code, stdout, errs := run(t, "", "--archive", fa, "--output", "-", "--query", "MAFK",
			"--threads", fmt.Sprint(threads), "--quiet")
		if code != 0 {
			t.Fatalf("exit %d err %s", code, errs)
		}
		return stdout
	}

	serial := runThreads(1)
	parallel := runThreads(8)
	if serial != parallel {
		t.Fatalf("parallel output differs from serial")
	}
}

func TestJSONReport(t *testing.T) {
	dir := t.TempDir()
	fa := write(t, dir, "db.fasta", twoRecords)
	out := filepath.Join(dir, "report.json")

	if code, _, errs := run(t, "", "--archive", fa, "--output", out, "--query", "AC", "--quiet"); code != 0 {
		t.Fatalf("exit %d, err=%s", code, errs)
	}
	var rep api.ReportV1
	if err := json.Unmarshal([]byte(read(t, out)), &rep); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if rep.RunID == "" || rep.Query != "AC" || rep.Total != 2 || rep.Returned != 2 {
		t.Fatalf("unexpected report header: %+v", rep)
	}
	if rep.Results[0].Rank != 1 || rep.Results[0].Description != "Desc one" {
		t.Fatalf("unexpected first hit: %+v", rep.Results[0])
	}
}

func TestTextFormatFlag(t *testing.T) {
	dir := t.TempDir()
	fa := write(t, dir, "db.fasta", twoRecords)
	code, stdout, errs := run(t, "", "--archive", fa, "--output", "-", "--format", "text", "--query", "ACD", "--top", "1", "--quiet")
	if code != 0 {
		t.Fatalf("exit %d, err=%s", code, errs)
	}
	want := "Index: 1, Metric: 0.000000, Length: 3, Description: Desc two\nACD\n\n"
	if stdout != want {
		t.Fatalf("got %q want %q", stdout, want)
	}
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	fa := write(t, dir, "db.fasta", twoRecords)
	out := filepath.Join(dir, "from-config.csv")
	cfg := write(t, dir, "sigrank.toml", fmt.Sprintf("archive = %q\noutput = %q\ntop = 1\nprogress = false\n", fa, out))

	if code, _, errs := run(t, "", "--config", cfg, "--query", "AC"); code != 0 {
		t.Fatalf("exit %d, err=%s", code, errs)
	}
	if n := strings.Count(read(t, out), "\n"); n != 2 {
		t.Fatalf("want header + 1 row from config top, got %d lines", n)
	}
}

func TestBadConfigIsUsageError(t *testing.T) {
	dir := t.TempDir()
	cfg := write(t, dir, "bad.toml", "archiv = \"x\"\n")
	if code, _, errs := run(t, "", "--config", cfg, "--query", "AC"); code != 2 || !strings.Contains(errs, "unknown keys") {
		t.Fatalf("want exit 2 with unknown keys, got %d %q", code, errs)
	}
}

func TestUsageAndVersion(t *testing.T) {
	if code, stdout, _ := run(t, "", "-h"); code != 0 || !strings.Contains(stdout, "Usage of sigrank") {
		t.Fatalf("help: exit %d %q", code, stdout)
	}
	if code, stdout, _ := run(t, "", "--version"); code != 0 || !strings.HasPrefix(stdout, "sigrank version ") {
		t.Fatalf("version: exit %d %q", code, stdout)
	}
	if code, _, _ := run(t, "", "--threads", "-1"); code != 2 {
		t.Fatalf("bad flag: want 2, got %d", code)
	}
}
