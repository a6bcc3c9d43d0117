// Package profile defines the manifest and result types shared by the
// extraction pipeline.
package profile

// FileType is the provenance tag carried by a manifest entry.
// Tags describe where content came from, not a strict MIME type.
type FileType string

const (
	TypeResumePDF  FileType = "resume_pdf"
	TypeResumeDOCX FileType = "resume_docx"
	TypeReadme     FileType = "readme"
	TypePublicDir  FileType = "public_dir"
	TypeDocsDir    FileType = "docs_dir"
	TypeAboutDir   FileType = "about_dir"
	TypeCVDir      FileType = "cv_dir"
)

// KnownTypes returns every recognized tag in manifest documentation order.
func KnownTypes() []FileType {
	return []FileType{
		TypeResumePDF,
		TypeResumeDOCX,
		TypeReadme,
		TypePublicDir,
		TypeDocsDir,
		TypeAboutDir,
		TypeCVDir,
	}
}

// Known reports whether t belongs to the closed set of recognized tags.
func (t FileType) Known() bool {
	for _, k := range KnownTypes() {
		if t == k {
			return true
		}
	}
	return false
}

// ProfileFile is a single manifest entry.
type ProfileFile struct {
	URL      string
	FilePath string
	FileType FileType
}

// Manifest is the ordered list of files to extract.
type Manifest struct {
	Profiles []ProfileFile
}

// RawProfile is one output record. Text is never absent; it may be empty
// or a placeholder emitted by an unimplemented extractor.
type RawProfile struct {
	URL  string `json:"url" yaml:"url"`
	Text string `json:"text" yaml:"text"`
}
