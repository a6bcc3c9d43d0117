// Package export converts extracted candidate fields into tabular files.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/jmylchreest/profextract/internal/logger"
	"github.com/jmylchreest/profextract/pkg/profile"
)

// StdoutPath selects standard output as the CSV destination.
const StdoutPath = "-"

// Default file locations.
const (
	DefaultInput  = "extracted-fields.json"
	DefaultOutput = "output.csv"
)

// Header is the CSV header row.
var Header = []string{"Name", "Email", "Phone", "LinkedIn", "GitHub"}

// Candidate holds the contact fields extracted for one person. Missing keys
// decode as empty strings.
type Candidate struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	LinkedInURL string `json:"linkedin_url"`
	GitHubURL   string `json:"github_url"`
}

func (c Candidate) record() []string {
	return []string{c.Name, c.Email, c.Phone, c.LinkedInURL, c.GitHubURL}
}

// ReadCandidates decodes a JSON array of candidates.
func ReadCandidates(r io.Reader) ([]Candidate, error) {
	var cs []Candidate
	if err := json.NewDecoder(r).Decode(&cs); err != nil {
		return nil, fmt.Errorf("failed to parse candidates: %w", err)
	}
	return cs, nil
}

// WriteCSV writes the header and one row per candidate.
func WriteCSV(w io.Writer, cs []Candidate) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("%w: %w", profile.ErrOutputWriteFailed, err)
	}
	for _, c := range cs {
		if err := cw.Write(c.record()); err != nil {
			return fmt.Errorf("%w: %w", profile.ErrOutputWriteFailed, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("%w: %w", profile.ErrOutputWriteFailed, err)
	}
	return nil
}

// CSVFile converts the candidates in inputPath to CSV at outputPath, or to
// stdout when outputPath is StdoutPath. It returns the number of rows
// written, excluding the header.
func CSVFile(inputPath, outputPath string, stdout io.Writer) (int, error) {
	in, err := os.Open(inputPath)
	if err != nil {
		return 0, fmt.Errorf("%s not found: %w", inputPath, err)
	}
	defer func() { _ = in.Close() }()

	cs, err := ReadCandidates(in)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", inputPath, err)
	}

	if outputPath == StdoutPath {
		if err := WriteCSV(stdout, cs); err != nil {
			return 0, err
		}
	} else {
		if err := writeFile(outputPath, cs); err != nil {
			return 0, err
		}
	}

	logger.Info("CSV export complete", "rows", len(cs), "output", outputPath)
	return len(cs), nil
}

func writeFile(path string, cs []Candidate) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %w", profile.ErrOutputWriteFailed, err)
	}
	if err := WriteCSV(f, cs); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %w", profile.ErrOutputWriteFailed, err)
	}
	return nil
}
