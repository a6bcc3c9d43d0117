package manifest

import (
	"errors"
	"strings"
	"testing"

	"github.com/jmylchreest/profextract/pkg/profile"
)

func TestRead_Valid(t *testing.T) {
	input := `{
  "profiles": [
    {"url": "u1", "file_path": "a.html", "type": "readme"},
    {"url": "u2", "file_path": "cv.pdf", "type": "resume_pdf"},
    {"url": "u3", "file_path": "x.bin", "type": "something_else"}
  ]
}`

	m, err := NewReader().Read(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}

	want := []profile.ProfileFile{
		{URL: "u1", FilePath: "a.html", FileType: profile.TypeReadme},
		{URL: "u2", FilePath: "cv.pdf", FileType: profile.TypeResumePDF},
		{URL: "u3", FilePath: "x.bin", FileType: "something_else"},
	}
	if len(m.Profiles) != len(want) {
		t.Fatalf("expected %d profiles, got %d", len(want), len(m.Profiles))
	}
	for i := range want {
		if m.Profiles[i] != want[i] {
			t.Errorf("profile %d = %+v, want %+v", i, m.Profiles[i], want[i])
		}
	}
}

func TestRead_EmptyProfiles(t *testing.T) {
	m, err := NewReader().Read(strings.NewReader(`{"profiles": []}`))
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if m.Profiles == nil || len(m.Profiles) != 0 {
		t.Errorf("expected empty non-nil profiles, got %#v", m.Profiles)
	}
}

func TestRead_EmptyStringsAccepted(t *testing.T) {
	m, err := NewReader().Read(strings.NewReader(`{"profiles": [{"url": "", "file_path": "", "type": ""}]}`))
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if len(m.Profiles) != 1 {
		t.Fatalf("expected 1 profile, got %d", len(m.Profiles))
	}
	if m.Profiles[0] != (profile.ProfileFile{}) {
		t.Errorf("expected zero-valued entry, got %+v", m.Profiles[0])
	}
}

func TestRead_IgnoresUnknownKeys(t *testing.T) {
	input := `{"version": 2, "profiles": [{"url": "u", "file_path": "p", "type": "cv_dir", "size": 10}]}`
	m, err := NewReader().Read(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if m.Profiles[0].FileType != profile.TypeCVDir {
		t.Errorf("unexpected type %q", m.Profiles[0].FileType)
	}
}

func TestRead_ExactKeysOnly(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"lower_first", `{"profiles": [{"url": "u1", "URL": "u2", "file_path": "a.html", "File_Path": "b.html", "type": "readme", "TYPE": "cv_dir"}]}`},
		{"upper_first", `{"profiles": [{"URL": "u2", "url": "u1", "File_Path": "b.html", "file_path": "a.html", "TYPE": "cv_dir", "type": "readme"}]}`},
		{"case_folded_profiles_ignored", `{"Profiles": [{"url": "u9", "file_path": "z", "type": "cv_dir"}], "profiles": [{"url": "u1", "file_path": "a.html", "type": "readme"}]}`},
	}

	want := profile.ProfileFile{URL: "u1", FilePath: "a.html", FileType: profile.TypeReadme}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewReader().Read(strings.NewReader(tt.input))
			if err != nil {
				t.Fatalf("Read() error = %v", err)
			}
			if len(m.Profiles) != 1 {
				t.Fatalf("expected 1 profile, got %d", len(m.Profiles))
			}
			if m.Profiles[0] != want {
				t.Errorf("profile = %+v, want %+v", m.Profiles[0], want)
			}
		})
	}
}

func TestRead_Malformed(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantInMsg string
	}{
		{"empty_input", "", ""},
		{"truncated", `{"profiles": [{"url": "u1", "file_path": "a.html"`, ""},
		{"not_json", "profiles: []", ""},
		{"missing_profiles", `{}`, "profiles"},
		{"null_profiles", `{"profiles": null}`, "profiles"},
		{"profiles_not_array", `{"profiles": {}}`, ""},
		{"missing_url", `{"profiles": [{"file_path": "a", "type": "readme"}]}`, "profiles[0].url"},
		{"missing_file_path", `{"profiles": [{"url": "u", "type": "readme"}]}`, "profiles[0].file_path"},
		{"missing_type", `{"profiles": [{"url": "u", "file_path": "a"}, {"url": "v", "file_path": "b"}]}`, "profiles[0].type"},
		{"second_entry_missing_type", `{"profiles": [{"url": "u", "file_path": "a", "type": "readme"}, {"url": "v", "file_path": "b"}]}`, "profiles[1].type"},
		{"null_field", `{"profiles": [{"url": null, "file_path": "a", "type": "readme"}]}`, "profiles[0].url"},
		{"null_entry", `{"profiles": [null]}`, "profiles[0]"},
		{"number_field", `{"profiles": [{"url": 1, "file_path": "a", "type": "readme"}]}`, ""},
		{"case_folded_keys", `{"profiles": [{"URL": "u1", "File_Path": "a.html", "TYPE": "readme"}]}`, "profiles[0].url"},
		{"case_folded_profiles", `{"Profiles": [{"url": "u", "file_path": "a", "type": "readme"}]}`, "profiles"},
		{"string_field_in_second_entry", `{"profiles": [{"url": "u", "file_path": "a", "type": "readme"}, {"url": "v", "file_path": "b", "type": []}]}`, "profiles[1].type"},
		{"entry_not_object", `{"profiles": ["a.html"]}`, "profiles[0]"},
		{"trailing_data", `{"profiles": []} {}`, ""},
		{"invalid_utf8", "{\"profiles\": [{\"url\": \"\xff\", \"file_path\": \"a\", \"type\": \"readme\"}]}", "UTF-8"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewReader().Read(strings.NewReader(tt.input))
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, profile.ErrManifestMalformed) {
				t.Errorf("expected ErrManifestMalformed, got %v", err)
			}
			if tt.wantInMsg != "" && !strings.Contains(err.Error(), tt.wantInMsg) {
				t.Errorf("expected error containing %q, got %v", tt.wantInMsg, err)
			}
		})
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("stdin closed")
}

func TestRead_InputError(t *testing.T) {
	_, err := NewReader().Read(failingReader{})
	if !errors.Is(err, profile.ErrManifestMalformed) {
		t.Fatalf("expected ErrManifestMalformed, got %v", err)
	}
	if !strings.Contains(err.Error(), "stdin closed") {
		t.Errorf("expected cause in message, got %v", err)
	}
}
