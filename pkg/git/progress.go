package git

import (
	"regexp"
	"strconv"
	"strings"
)

// Progress is one event in a checkout's progress stream. Exactly two shapes
// exist: the contextual zero event that opens every observed checkout, and
// detailed events parsed from engine output.
type Progress interface {
	// Value reports overall completion in [0,1].
	Value() float64
	// Branch reports the checkout target.
	Branch() string
	sealed()
}

// ContextualProgress opens the stream. It is delivered before the subprocess
// starts, so callers can render an indicator without waiting for output.
type ContextualProgress struct {
	Title        string
	TargetBranch string
}

func (ContextualProgress) Value() float64 { return 0 }
func (p ContextualProgress) Branch() string { return p.TargetBranch }
func (ContextualProgress) sealed() {}

// CheckoutProgress carries one parsed progress milestone.
type CheckoutProgress struct {
	Title        string
	Description  string
	TargetBranch string
	Fraction     float64
}

func (p CheckoutProgress) Value() float64 { return p.Fraction }
func (p CheckoutProgress) Branch() string { return p.TargetBranch }
func (CheckoutProgress) sealed() {}

// ProgressFunc receives progress events, in order, values non-decreasing.
type ProgressFunc func(Progress)

// Relative phase weights for the overall progress value when the large-file
// filter phase is tracked. Tunables, not a contract: the engine does not
// publish phase proportions.
const (
	checkoutPhaseWeight = 0.8
	filterPhaseWeight   = 0.2
)

type phase struct {
	titles []string
	weight float64
}

// statusPattern matches engine status lines of the form
// "Checking out files:  47% (1234/2620)".
var statusPattern = regexp.MustCompile(`^(.+?):\s+\d+% \((\d+)/(\d+)\)`)

// Parser reduces engine status lines to progress values. It is single use:
// state is scoped to one invocation and never reused across calls.
type Parser struct {
	phases []phase
	last   float64
}

// NewParser returns a parser for one checkout invocation. When trackFilter
// is set the large-file filter phase contributes its weighted share instead
// of resetting the value, so sub-phases read as one increasing signal.
func NewParser(trackFilter bool) *Parser {
	return NewWeightedParser(trackFilter, checkoutPhaseWeight, filterPhaseWeight)
}

// NewWeightedParser is NewParser with explicit phase weights. Non-positive
// weights fall back to the defaults.
func NewWeightedParser(trackFilter bool, checkoutWeight, filterWeight float64) *Parser {
	if checkoutWeight <= 0 {
		checkoutWeight = checkoutPhaseWeight
	}
	if filterWeight <= 0 {
		filterWeight = filterPhaseWeight
	}
	phases := []phase{
		// Older engines say "Checking out files", newer ones "Updating files".
		{titles: []string{"Checking out files", "Updating files"}, weight: checkoutWeight},
	}
	if trackFilter {
		phases = append(phases, phase{titles: []string{"Filtering content"}, weight: filterWeight})
	} else {
		phases[0].weight = 1
	}
	return &Parser{phases: phases}
}

// ParsedLine is one recognized status line.
type ParsedLine struct {
	Text     string
	Fraction float64
}

// Parse consumes one status line. Lines that match no known phase produce no
// event. Emitted fractions never regress: out-of-order or duplicated lines
// are clamped to the last emitted value.
func (p *Parser) Parse(line string) (ParsedLine, bool) {
	m := statusPattern.FindStringSubmatch(line)
	if m == nil {
		return ParsedLine{}, false
	}
	idx := p.phaseIndex(m[1])
	if idx < 0 {
		return ParsedLine{}, false
	}
	done, _ := strconv.ParseFloat(m[2], 64)
	total, _ := strconv.ParseFloat(m[3], 64)
	frac := 0.0
	if total > 0 {
		frac = done / total
	}
	value := p.overall(idx, frac)
	if value < p.last {
		value = p.last
	}
	p.last = value
	return ParsedLine{Text: strings.TrimSpace(line), Fraction: value}, true
}

func (p *Parser) phaseIndex(title string) int {
	for i, ph := range p.phases {
		for _, t := range ph.titles {
			if t == title {
				return i
			}
		}
	}
	return -1
}

// overall folds the phases before idx and idx's own weighted fraction into
// one value over the combined weight. Attribution follows the matched phase,
// so a straggling line from an earlier phase cannot inflate the value; the
// clamp in Parse keeps it from regressing either.
func (p *Parser) overall(idx int, frac float64) float64 {
	var total, passed float64
	for i, ph := range p.phases {
		total += ph.weight
		if i < idx {
			passed += ph.weight
		}
	}
	if total == 0 {
		return 0
	}
	return (passed + frac*p.phases[idx].weight) / total
}
