package export

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jmylchreest/profextract/pkg/profile"
)

func TestReadCandidates(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []Candidate
		wantErr bool
	}{
		{
			name:  "full_record",
			input: `[{"name":"Jane","email":"jane@example.com","phone":"555","linkedin_url":"https://linkedin.com/in/jane","github_url":"https://github.com/jane"}]`,
			want:  []Candidate{{"Jane", "jane@example.com", "555", "https://linkedin.com/in/jane", "https://github.com/jane"}},
		},
		{
			name:  "missing_and_null_fields",
			input: `[{"name":"Bob","phone":null,"extra":1}]`,
			want:  []Candidate{{Name: "Bob"}},
		},
		{
			name:  "empty_array",
			input: `[]`,
			want:  []Candidate{},
		},
		{name: "not_json", input: `name,email`, wantErr: true},
		{name: "object_not_array", input: `{"name":"Jane"}`, wantErr: true},
		{name: "number_field", input: `[{"phone":5551234}]`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadCandidates(strings.NewReader(tt.input))
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ReadCandidates() = %+v, want error", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ReadCandidates() error = %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("len = %d, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("got[%d] = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestWriteCSV(t *testing.T) {
	buf := &bytes.Buffer{}
	cs := []Candidate{
		{Name: "Jane Doe", Email: "jane@example.com"},
		{Name: "Smith, John", Phone: `+1 "555"`, GitHubURL: "https://github.com/js"},
	}

	if err := WriteCSV(buf, cs); err != nil {
		t.Fatalf("WriteCSV() error = %v", err)
	}

	want := "Name,Email,Phone,LinkedIn,GitHub\n" +
		"Jane Doe,jane@example.com,,,\n" +
		`"Smith, John",,"+1 ""555""",,https://github.com/js` + "\n"
	if got := buf.String(); got != want {
		t.Errorf("WriteCSV() =\n%s\nwant\n%s", got, want)
	}
}

func TestWriteCSV_HeaderOnly(t *testing.T) {
	buf := &bytes.Buffer{}
	if err := WriteCSV(buf, nil); err != nil {
		t.Fatalf("WriteCSV() error = %v", err)
	}
	if got := buf.String(); got != "Name,Email,Phone,LinkedIn,GitHub\n" {
		t.Errorf("WriteCSV() = %q", got)
	}
}

func TestCSVFile(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "fields.json")
	out := filepath.Join(dir, "out.csv")
	if err := os.WriteFile(in, []byte(`[{"name":"Jane"},{"name":"Bob","email":"bob@example.com"}]`), 0o644); err != nil {
		t.Fatalf("failed to write input: %v", err)
	}

	n, err := CSVFile(in, out, nil)
	if err != nil {
		t.Fatalf("CSVFile() error = %v", err)
	}
	if n != 2 {
		t.Errorf("rows = %d, want 2", n)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	want := "Name,Email,Phone,LinkedIn,GitHub\nJane,,,,\nBob,bob@example.com,,,\n"
	if string(data) != want {
		t.Errorf("output = %q, want %q", data, want)
	}
}

func TestCSVFile_Stdout(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "fields.json")
	if err := os.WriteFile(in, []byte(`[{"name":"Jane"}]`), 0o644); err != nil {
		t.Fatalf("failed to write input: %v", err)
	}

	buf := &bytes.Buffer{}
	if _, err := CSVFile(in, StdoutPath, buf); err != nil {
		t.Fatalf("CSVFile() error = %v", err)
	}
	if !strings.HasSuffix(buf.String(), "Jane,,,,\n") {
		t.Errorf("stdout = %q", buf.String())
	}
	if _, err := os.Stat(filepath.Join(dir, StdoutPath)); !os.IsNotExist(err) {
		t.Error("should not create a file named '-'")
	}
}

func TestCSVFile_Errors(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte(`{`), 0o644); err != nil {
		t.Fatalf("failed to write input: %v", err)
	}
	good := filepath.Join(dir, "good.json")
	if err := os.WriteFile(good, []byte(`[]`), 0o644); err != nil {
		t.Fatalf("failed to write input: %v", err)
	}

	t.Run("missing_input", func(t *testing.T) {
		missing := filepath.Join(dir, "extracted-fields.json")
		_, err := CSVFile(missing, filepath.Join(dir, "out.csv"), nil)
		if err == nil || !strings.Contains(err.Error(), missing) {
			t.Fatalf("CSVFile() error = %v, want error naming %s", err, missing)
		}
	})

	t.Run("malformed_input", func(t *testing.T) {
		if _, err := CSVFile(bad, filepath.Join(dir, "out.csv"), nil); err == nil {
			t.Fatal("CSVFile() error = nil, want parse error")
		}
	})

	t.Run("unwritable_output", func(t *testing.T) {
		_, err := CSVFile(good, filepath.Join(dir, "no", "such", "dir", "out.csv"), nil)
		if !errors.Is(err, profile.ErrOutputWriteFailed) {
			t.Fatalf("CSVFile() error = %v, want ErrOutputWriteFailed", err)
		}
	})
}
