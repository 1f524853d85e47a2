package huffman

import (
	"errors"
)

// DiagnosticKind classifies a condition reported by a Session.
type DiagnosticKind byte

// Kinds of Diagnostic, one per recoverable condition of the core.
const (
	EmptyFrequencyTable DiagnosticKind = iota + 1
	MissingCode
	NoCodesAvailable
	NoTreeOrEmptyInput
	InvalidDigit
)

var diagnosticKindNames = [...]string{
	EmptyFrequencyTable: "EmptyFrequencyTable",
	MissingCode:         "MissingCodeWarning",
	NoCodesAvailable:    "NoCodesAvailable",
	NoTreeOrEmptyInput:  "NoTreeOrEmptyInput",
	InvalidDigit:        "InvalidDigit",
}

// String returns the name of the kind.
func (kind DiagnosticKind) String() string {
	if int(kind) < len(diagnosticKindNames) && diagnosticKindNames[kind] != "" {
		return diagnosticKindNames[kind]
	}
	return "DiagnosticKind(?)"
}

// IsWarning reports whether the condition still allowed a partial result.
func (kind DiagnosticKind) IsWarning() bool {
	return kind == MissingCode
}

// Diagnostic is a recoverable condition observed during a Session operation.
type Diagnostic struct {
	Kind DiagnosticKind
	Err  error
}

// Reporter receives the Diagnostics of a Session.
type Reporter interface {
	Report(Diagnostic)
}

// ReporterFunc adapts a function to the Reporter interface.
type ReporterFunc func(Diagnostic)

// Report calls fn(d).
func (fn ReporterFunc) Report(d Diagnostic) {
	fn(d)
}

// Session is one coding session: the current FrequencyTable together with the
// Tree and CodeTable built from it.
//
// Every condition a Session operation runs into is returned to the caller and
// also passed to the Reporter, if one was given.  A Session is not safe for
// concurrent use; give each goroutine its own.
type Session struct {
	reporter Reporter
	freq     FrequencyTable
	tree     *Tree
	codes    CodeTable
}

// NewSession returns an empty Session.  reporter may be nil.
func NewSession(reporter Reporter) *Session {
	return &Session{reporter: reporter}
}

// CountFrequencies replaces the current FrequencyTable with the counts of
// data.  The current Tree and CodeTable are kept until BuildTree is called.
func (s *Session) CountFrequencies(data []byte) {
	s.freq = CountFrequencies(data)
}

// BuildTree builds a new Tree and CodeTable from the current FrequencyTable,
// discarding the previous ones.  If the table is empty it reports
// EmptyFrequencyTable and leaves the previous Tree and CodeTable in place.
func (s *Session) BuildTree() error {
	tree, err := BuildTree(s.freq)
	if err != nil {
		s.report(EmptyFrequencyTable, err)
		return err
	}
	s.tree = tree
	s.codes = tree.CodeTable()
	return nil
}

// Encode encodes data with the current CodeTable.  Each Symbol without a Code
// is reported as a MissingCodeWarning and skipped; the returned error is
// non-nil only when there are no codes at all.
func (s *Session) Encode(data []byte) (string, error) {
	digits, warnings, err := Encode(data, s.codes)
	if err != nil {
		s.report(NoCodesAvailable, err)
		return "", err
	}
	for _, w := range warnings {
		s.report(MissingCode, w)
	}
	return digits, nil
}

// Decode decodes digits with the current Tree.
func (s *Session) Decode(digits string) ([]byte, error) {
	out, err := Decode(digits, s.tree)
	switch {
	case err == nil:
		return out, nil
	case errors.Is(err, ErrInvalidDigit):
		s.report(InvalidDigit, err)
	default:
		s.report(NoTreeOrEmptyInput, err)
	}
	return nil, err
}

// Frequencies returns the current FrequencyTable.
func (s *Session) Frequencies() FrequencyTable {
	return s.freq
}

// Codes returns the current CodeTable.
func (s *Session) Codes() CodeTable {
	return s.codes
}

// Tree returns the current Tree, or nil if none has been built.
func (s *Session) Tree() *Tree {
	return s.tree
}

func (s *Session) report(kind DiagnosticKind, err error) {
	if s.reporter != nil {
		s.reporter.Report(Diagnostic{Kind: kind, Err: err})
	}
}
