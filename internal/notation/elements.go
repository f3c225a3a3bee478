// Package notation recognizes the line-oriented shorthand used in solo
// session logs: typed notation lines, bracketed entity tags, and the
// progress math for clocks, tracks, and timers.
package notation

// ElementKind discriminates the notation element variants.
type ElementKind string

const (
	KindAction         ElementKind = "action"
	KindOracleQuestion ElementKind = "oracle_question"
	KindMechanicsRoll  ElementKind = "mechanics_roll"
	KindOracleResult   ElementKind = "oracle_result"
	KindConsequence    ElementKind = "consequence"
	KindTableLookup    ElementKind = "table_lookup"
	KindGenerator      ElementKind = "generator"
	KindMetaNote       ElementKind = "meta_note"
	KindText           ElementKind = "text"
)

// Success is the tri-state outcome of a mechanics roll. Unknown means the
// outcome text gave no verdict either way; it is distinct from a failure.
type Success int

const (
	SuccessUnknown Success = iota
	SuccessYes
	SuccessNo
)

// Element is one classified notation line. ScanText returns the portion of
// the element searched for entity tags; meta notes are out-of-character and
// return the empty string.
type Element interface {
	Kind() ElementKind
	Line() int
	ScanText() string
}

type Action struct {
	Content    string
	LineNumber int
}

func (a Action) Kind() ElementKind { return KindAction }
func (a Action) Line() int         { return a.LineNumber }
func (a Action) ScanText() string  { return a.Content }

type OracleQuestion struct {
	Question   string
	LineNumber int
}

func (q OracleQuestion) Kind() ElementKind { return KindOracleQuestion }
func (q OracleQuestion) Line() int         { return q.LineNumber }
func (q OracleQuestion) ScanText() string  { return q.Question }

type MechanicsRoll struct {
	Roll       string
	Outcome    string
	Success    Success
	LineNumber int
}

func (r MechanicsRoll) Kind() ElementKind { return KindMechanicsRoll }
func (r MechanicsRoll) Line() int         { return r.LineNumber }
func (r MechanicsRoll) ScanText() string  { return r.Roll + " " + r.Outcome }

type OracleResult struct {
	Answer     string
	Roll       string
	LineNumber int
}

func (r OracleResult) Kind() ElementKind { return KindOracleResult }
func (r OracleResult) Line() int         { return r.LineNumber }
func (r OracleResult) ScanText() string  { return r.Answer }

type Consequence struct {
	Description string
	LineNumber  int
}

func (c Consequence) Kind() ElementKind { return KindConsequence }
func (c Consequence) Line() int         { return c.LineNumber }
func (c Consequence) ScanText() string  { return c.Description }

type TableLookup struct {
	Roll       string
	Result     string
	LineNumber int
}

func (l TableLookup) Kind() ElementKind { return KindTableLookup }
func (l TableLookup) Line() int         { return l.LineNumber }
func (l TableLookup) ScanText() string  { return l.Result }

type Generator struct {
	System     string
	Result     string
	LineNumber int
}

func (g Generator) Kind() ElementKind { return KindGenerator }
func (g Generator) Line() int         { return g.LineNumber }
func (g Generator) ScanText() string  { return g.Result }

type MetaNote struct {
	Category   string
	Content    string
	LineNumber int
}

func (n MetaNote) Kind() ElementKind { return KindMetaNote }
func (n MetaNote) Line() int         { return n.LineNumber }
func (n MetaNote) ScanText() string  { return "" }

type TextLine struct {
	Content    string
	LineNumber int
}

func (t TextLine) Kind() ElementKind { return KindText }
func (t TextLine) Line() int         { return t.LineNumber }
func (t TextLine) ScanText() string  { return t.Content }
