// Package manifest decodes the extraction manifest read from the input stream.
//
// The manifest is a JSON document of the form
//
//	{"profiles": [{"url": "...", "file_path": "...", "type": "readme"}]}
//
// Every entry must carry the three keys as JSON strings. Empty strings are
// accepted, missing keys and nulls are not. Unknown keys are ignored.
package manifest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	"github.com/jmylchreest/profextract/internal/logger"
	"github.com/jmylchreest/profextract/pkg/profile"
)

// document mirrors the wire format. Pointer fields let validation tell a
// missing key apart from an empty string.
type document struct {
	Profiles []entry `json:"profiles" validate:"required,dive"`
}

type entry struct {
	URL      *string `json:"url" validate:"required"`
	FilePath *string `json:"file_path" validate:"required"`
	Type     *string `json:"type" validate:"required"`
}

// Wire keys. encoding/json matches struct fields case-insensitively, so
// objects are decoded into maps and looked up by these exact names.
const (
	keyProfiles = "profiles"
	keyURL      = "url"
	keyFilePath = "file_path"
	keyType     = "type"
)

// Reader decodes manifests.
type Reader struct {
	validate *validator.Validate
}

// NewReader creates a Reader. Validation errors name fields by their JSON key.
func NewReader() *Reader {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return &Reader{validate: v}
}

// Read consumes the whole stream and decodes it as one manifest.
// Every failure wraps profile.ErrManifestMalformed.
func (r *Reader) Read(in io.Reader) (profile.Manifest, error) {
	data, err := io.ReadAll(in)
	if err != nil {
		return profile.Manifest{}, fmt.Errorf("%w: read input: %v", profile.ErrManifestMalformed, err)
	}
	return r.Decode(data)
}

// Decode parses a manifest held in memory.
func (r *Reader) Decode(data []byte) (profile.Manifest, error) {
	if !utf8.Valid(data) {
		return profile.Manifest{}, fmt.Errorf("%w: input is not valid UTF-8", profile.ErrManifestMalformed)
	}

	doc, err := decodeDocument(data)
	if err != nil {
		return profile.Manifest{}, fmt.Errorf("%w: %v", profile.ErrManifestMalformed, err)
	}

	if err := r.validate.Struct(doc); err != nil {
		return profile.Manifest{}, describeValidation(err)
	}

	m := profile.Manifest{Profiles: make([]profile.ProfileFile, 0, len(doc.Profiles))}
	for _, e := range doc.Profiles {
		m.Profiles = append(m.Profiles, profile.ProfileFile{
			URL:      *e.URL,
			FilePath: *e.FilePath,
			FileType: profile.FileType(*e.Type),
		})
	}

	logger.Debug("manifest decoded", "profiles", len(m.Profiles))
	return m, nil
}

// decodeDocument decodes data with exact, case-sensitive key matching.
// Missing keys and nulls are left nil for validation to report.
func decodeDocument(data []byte) (document, error) {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(data, &top); err != nil {
		return document{}, err
	}

	var doc document
	raw, ok := top[keyProfiles]
	if !ok {
		return doc, nil
	}

	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return document{}, fmt.Errorf("%s: %w", keyProfiles, err)
	}
	if items == nil {
		return doc, nil
	}

	doc.Profiles = make([]entry, len(items))
	for i, item := range items {
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(item, &fields); err != nil {
			return document{}, fmt.Errorf("%s[%d]: %w", keyProfiles, i, err)
		}

		e := &doc.Profiles[i]
		targets := []struct {
			key string
			dst **string
		}{
			{keyURL, &e.URL},
			{keyFilePath, &e.FilePath},
			{keyType, &e.Type},
		}
		for _, t := range targets {
			v, ok := fields[t.key]
			if !ok {
				continue
			}
			if err := json.Unmarshal(v, t.dst); err != nil {
				return document{}, fmt.Errorf("%s[%d].%s: %w", keyProfiles, i, t.key, err)
			}
		}
	}
	return doc, nil
}

// describeValidation turns the first validation failure into a
// malformed-manifest error naming the offending field.
func describeValidation(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		field := verrs[0].Namespace()
		if _, rest, ok := strings.Cut(field, "."); ok {
			field = rest
		}
		return fmt.Errorf("%w: missing required field %s", profile.ErrManifestMalformed, field)
	}
	return fmt.Errorf("%w: %v", profile.ErrManifestMalformed, err)
}
