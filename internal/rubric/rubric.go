// Package rubric implements rubric selection for essay submissions.
//
// A submission may carry at most one rubric: an uploaded rubric document, a
// saved preset referenced by id, or free text typed by the user. The resolver
// applies a fixed precedence (uploaded file > preset > custom text > none) and
// supports locking, which freezes the resolved rubric for the duration of an
// in-flight batch so later edits cannot alter requests already being sent.
//
// Resolution is a pure function of the selection state; the snapshot taken at
// lock time is the only side effect, and it is owned by this package.
package rubric

import "strings"

// Kind identifies which rubric representation accompanies a request.
type Kind string

const (
	// KindNone means no rubric is attached; the service applies its default.
	KindNone Kind = "none"

	// KindFile means an uploaded rubric document is attached as a file part.
	KindFile Kind = "file"

	// KindPreset means a saved rubric is referenced by id.
	KindPreset Kind = "preset"

	// KindText means free rubric text is attached directly.
	KindText Kind = "text"
)

// Rubric is the resolved representation attached to a single request.
// Exactly one of the payload fields is meaningful, indicated by Kind.
type Rubric struct {
	Kind     Kind
	Filename string // set when Kind == KindFile
	FileData []byte // set when Kind == KindFile
	PresetID string // set when Kind == KindPreset
	Text     string // set when Kind == KindText
}

// Selection holds the current rubric selection state. Zero value means no
// rubric. Mutations go through the setters so the lock snapshot semantics
// stay in one place.
type Selection struct {
	fileName   string
	fileData   []byte
	presetID   string
	customText string

	locked   bool
	snapshot Rubric
}

// SetFile records an uploaded rubric document. Takes precedence over preset
// and custom text selections when resolving.
func (s *Selection) SetFile(name string, data []byte) {
	s.fileName = name
	s.fileData = data
}

// ClearFile removes any uploaded rubric document from the selection.
func (s *Selection) ClearFile() {
	s.fileName = ""
	s.fileData = nil
}

// SetPreset records a saved rubric id. Mutually exclusive with an uploaded
// file in the UI, but the resolver still orders file above preset in case
// both are present.
func (s *Selection) SetPreset(id string) {
	s.presetID = id
}

// SetCustomText records free rubric text typed by the user.
func (s *Selection) SetCustomText(text string) {
	s.customText = text
}

// Lock freezes the currently resolved rubric. Until Unlock is called, Resolve
// returns the snapshot taken here regardless of later setter calls. Locking
// an already locked selection is a no-op, preserving the original snapshot.
func (s *Selection) Lock() {
	if s.locked {
		return
	}
	s.snapshot = s.resolveCurrent()
	s.locked = true
}

// Unlock releases the lock so Resolve reflects live selection state again.
func (s *Selection) Unlock() {
	s.locked = false
	s.snapshot = Rubric{}
}

// Locked reports whether the selection is currently locked.
func (s *Selection) Locked() bool {
	return s.locked
}

// Resolve returns exactly one rubric representation for the current state.
// When locked, the lock-time snapshot wins; otherwise precedence is uploaded
// file > preset > custom text > none.
func (s *Selection) Resolve() Rubric {
	if s.locked {
		return s.snapshot
	}
	return s.resolveCurrent()
}

func (s *Selection) resolveCurrent() Rubric {
	if len(s.fileData) > 0 && s.fileName != "" {
		return Rubric{Kind: KindFile, Filename: s.fileName, FileData: s.fileData}
	}
	if s.presetID != "" {
		return Rubric{Kind: KindPreset, PresetID: s.presetID}
	}
	if strings.TrimSpace(s.customText) != "" {
		return Rubric{Kind: KindText, Text: s.customText}
	}
	return Rubric{Kind: KindNone}
}
