package cssom

import (
	"strings"

	"github.com/lukehoban/cssmatch/internal/applog"
)

// Stylesheet is the top-level parse result: an ordered sequence of
// at-rules and style rules.
type Stylesheet struct {
	Children []Node
}

// Node is either an *AtRule or a *StyleRule: a single-struct-per-concern
// union rather than an interface hierarchy, since the two concrete
// pointer types are the only members.
type Node struct {
	AtRule    *AtRule
	StyleRule *StyleRule
}

// AtRule is a rule introduced by an "@ident" keyword. Block is nil for a
// value-less at-rule terminated by ";".
type AtRule struct {
	Name    string
	Prelude []Primitive
	Block   []Node
	Decls   []*Declaration
}

// StyleRule is a prelude (selector list) followed by a declaration block.
type StyleRule struct {
	Selector     []Primitive
	Declarations []*Declaration
}

// Declaration is "name : component-values". Important records a trailing
// "!important" stripped from Value by cleanImportantFlag.
type Declaration struct {
	Name      string
	Value     []Primitive
	Important bool
}

// parseMode is the rule/declaration parser's state.
type parseMode int

const (
	modeTopLevel parseMode = iota
	modeAtRule
	modeRule
	modeSelector
	modeDeclaration
	modeAfterDeclarationName
	modeDeclarationValue
)

// ruleParser drives the mode machine over a TokenStream, maintaining a
// stack of in-progress rules so a single cursor can thread through nested
// at-rule blocks.
type ruleParser struct {
	ts    *TokenStream
	stack []*ruleFrame
}

// ruleFrame is one entry on the rule stack: either an in-progress
// Stylesheet (only at the bottom), AtRule, or StyleRule.
type ruleFrame struct {
	sheet       *Stylesheet
	at          *AtRule
	style       *StyleRule
	mode        parseMode
	pendingDecl *Declaration
}

// ParseStylesheet runs the mode machine's TopLevel entry point, returning
// the fully assembled Stylesheet. Parse errors are recovered: offending
// rules/declarations are discarded and parsing resumes after
// re-synchronizing at ";" or the matching "}"/EOF.
func ParseStylesheet(input string) *Stylesheet {
	p := &ruleParser{ts: Tokenize(input, false)}
	sheet := &Stylesheet{}
	p.stack = []*ruleFrame{{sheet: sheet, mode: modeTopLevel}}
	p.run()
	return sheet
}

// ParseInlineStyle parses a declaration-list fragment such as the contents
// of an HTML style="..." attribute, applying the same
// Declaration/DeclarationValue grammar ParseStylesheet uses for a rule
// body, rather than ad hoc value concatenation.
func ParseInlineStyle(text string) []*Declaration {
	p := &ruleParser{ts: Tokenize(text, false)}
	frame := &ruleFrame{at: &AtRule{Name: "style"}, mode: modeDeclaration}
	p.stack = []*ruleFrame{frame}
	p.run()
	return frame.at.Decls
}

func (p *ruleParser) top() *ruleFrame { return p.stack[len(p.stack)-1] }

func (p *ruleParser) push(f *ruleFrame) { p.stack = append(p.stack, f) }

// popCurrentRule removes the top rule and appends it as a child of the new
// top.
func (p *ruleParser) popCurrentRule() {
	done := p.stack[len(p.stack)-1]
	p.stack = p.stack[:len(p.stack)-1]
	if len(p.stack) == 0 {
		return
	}
	parent := p.top()
	switch {
	case done.at != nil:
		node := Node{AtRule: done.at}
		if parent.sheet != nil {
			parent.sheet.Children = append(parent.sheet.Children, node)
		} else if parent.at != nil {
			parent.at.Block = append(parent.at.Block, node)
		}
	case done.style != nil:
		node := Node{StyleRule: done.style}
		if parent.sheet != nil {
			parent.sheet.Children = append(parent.sheet.Children, node)
		} else if parent.at != nil {
			parent.at.Block = append(parent.at.Block, node)
		}
	}
}

func (p *ruleParser) run() {
	for {
		frame := p.top()
		switch frame.mode {
		case modeTopLevel:
			if !p.stepTopLevel(frame) {
				return
			}
		case modeAtRule:
			if !p.stepAtRule(frame) {
				return
			}
		case modeRule:
			if !p.stepRule(frame) {
				return
			}
		case modeSelector:
			if !p.stepSelector(frame) {
				return
			}
		case modeDeclaration:
			if !p.stepDeclaration(frame) {
				return
			}
		case modeAfterDeclarationName:
			if !p.stepAfterDeclarationName(frame) {
				return
			}
		case modeDeclarationValue:
			if !p.stepDeclarationValue(frame) {
				return
			}
		}
	}
}

// stepTopLevel implements the TopLevel mode. Returns false when parsing
// is complete (Eof with no further frames to process).
func (p *ruleParser) stepTopLevel(frame *ruleFrame) bool {
	tok := p.ts.Next()
	switch tok.Kind {
	case Cdo, Cdc, Whitespace:
		return true
	case EOF:
		return false
	case AtKeyword:
		p.push(&ruleFrame{at: &AtRule{Name: tok.Value}, mode: modeAtRule})
		return true
	case OpenCurly:
		applog.Warn("stray '{' at top level")
		consumeSimpleBlock(p.ts, OpenCurly)
		return true
	default:
		p.ts.Reconsume()
		p.push(&ruleFrame{style: &StyleRule{}, mode: modeSelector})
		return true
	}
}

// stepSelector implements the Selector mode.
func (p *ruleParser) stepSelector(frame *ruleFrame) bool {
	tok := p.ts.Peek(0)
	switch tok.Kind {
	case OpenCurly:
		p.ts.Next()
		frame.mode = modeDeclaration
		return true
	case EOF:
		p.ts.Next()
		// Incomplete rule; discard without linking it into its parent.
		p.stack = p.stack[:len(p.stack)-1]
		return len(p.stack) > 0
	default:
		frame.style.Selector = append(frame.style.Selector, ParseComponentValue(p.ts))
		return true
	}
}

// stepAtRule implements the AtRule mode.
func (p *ruleParser) stepAtRule(frame *ruleFrame) bool {
	tok := p.ts.Peek(0)
	switch tok.Kind {
	case Semicolon:
		p.ts.Next()
		p.popCurrentRule()
		return true
	case EOF:
		p.popCurrentRule()
		return len(p.stack) > 0
	case OpenCurly:
		p.ts.Next()
		frame.mode = atRuleBodyMode(frame.at.Name)
		return true
	default:
		frame.at.Prelude = append(frame.at.Prelude, ParseComponentValue(p.ts))
		return true
	}
}

// atRuleBodyMode decides an at-rule's block content mode: "page" is
// declaration-filled; "media" and any unrecognised at-rule are
// rule-filled, their blocks parsed as nested rules (see DESIGN.md).
func atRuleBodyMode(name string) parseMode {
	switch strings.ToLower(name) {
	case "page":
		return modeDeclaration
	default:
		return modeRule
	}
}

// stepRule implements the Rule mode.
func (p *ruleParser) stepRule(frame *ruleFrame) bool {
	tok := p.ts.Peek(0)
	switch tok.Kind {
	case Whitespace:
		p.ts.Next()
		return true
	case CloseCurly:
		p.ts.Next()
		p.popCurrentRule()
		return len(p.stack) > 0
	case EOF:
		p.popCurrentRule()
		return len(p.stack) > 0
	case AtKeyword:
		// Nested at-rules inside a rule body are treated as an opaque
		// nested at-rule so the stream stays synchronized.
		p.ts.Next()
		p.push(&ruleFrame{at: &AtRule{Name: tok.Value}, mode: modeAtRule})
		return true
	default:
		p.push(&ruleFrame{style: &StyleRule{}, mode: modeSelector})
		return true
	}
}

// stepDeclaration implements the Declaration mode.
func (p *ruleParser) stepDeclaration(frame *ruleFrame) bool {
	tok := p.ts.Peek(0)
	switch tok.Kind {
	case Whitespace, Semicolon:
		p.ts.Next()
		return true
	case CloseCurly:
		p.ts.Next()
		p.popCurrentRule()
		return len(p.stack) > 0
	case EOF:
		p.popCurrentRule()
		return len(p.stack) > 0
	case Ident:
		p.ts.Next()
		decl := &Declaration{Name: tok.Value}
		if frame.style != nil {
			frame.style.Declarations = append(frame.style.Declarations, decl)
		} else {
			frame.at.Decls = append(frame.at.Decls, decl)
		}
		frame.pendingDecl = decl
		frame.mode = modeAfterDeclarationName
		return true
	default:
		applog.Warnf("expected ident at declaration start, got %s", tok.Display())
		p.ts.Next()
		p.skipToDeclarationBoundary()
		return true
	}
}

// stepAfterDeclarationName implements the AfterDeclarationName mode.
func (p *ruleParser) stepAfterDeclarationName(frame *ruleFrame) bool {
	tok := p.ts.Peek(0)
	switch tok.Kind {
	case Whitespace:
		p.ts.Next()
		return true
	case Colon:
		p.ts.Next()
		frame.mode = modeDeclarationValue
		return true
	default:
		applog.Warnf("expected ':' after declaration name, got %s", tok.Display())
		p.abandonPendingDecl(frame)
		frame.mode = modeDeclaration
		p.skipToDeclarationBoundary()
		return true
	}
}

// stepDeclarationValue implements the DeclarationValue mode.
func (p *ruleParser) stepDeclarationValue(frame *ruleFrame) bool {
	tok := p.ts.Peek(0)
	switch tok.Kind {
	case Semicolon:
		p.ts.Next()
		finishDeclarationValue(frame.pendingDecl)
		frame.pendingDecl = nil
		frame.mode = modeDeclaration
		return true
	case CloseCurly:
		p.ts.Next()
		finishDeclarationValue(frame.pendingDecl)
		frame.pendingDecl = nil
		p.popCurrentRule()
		return len(p.stack) > 0
	case EOF:
		finishDeclarationValue(frame.pendingDecl)
		frame.pendingDecl = nil
		p.popCurrentRule()
		return len(p.stack) > 0
	default:
		frame.pendingDecl.Value = append(frame.pendingDecl.Value, ParseComponentValue(p.ts))
		return true
	}
}

// abandonPendingDecl removes a declaration whose name/colon was malformed.
func (p *ruleParser) abandonPendingDecl(frame *ruleFrame) {
	if frame.style != nil {
		decls := frame.style.Declarations
		if len(decls) > 0 && decls[len(decls)-1] == frame.pendingDecl {
			frame.style.Declarations = decls[:len(decls)-1]
		}
	} else if frame.at != nil {
		decls := frame.at.Decls
		if len(decls) > 0 && decls[len(decls)-1] == frame.pendingDecl {
			frame.at.Decls = decls[:len(decls)-1]
		}
	}
	frame.pendingDecl = nil
}

// skipToDeclarationBoundary drains tokens until the next ";" or a block
// end, the resynchronization point for an abandoned declaration.
func (p *ruleParser) skipToDeclarationBoundary() {
	for {
		tok := p.ts.Peek(0)
		if tok.Kind == Semicolon || tok.Kind == CloseCurly || tok.Kind == EOF {
			return
		}
		ParseComponentValue(p.ts)
	}
}

// finishDeclarationValue strips a trailing "!important" pair from a
// declaration's value.
func finishDeclarationValue(d *Declaration) {
	if d == nil {
		return
	}
	d.Value, d.Important = cleanImportantFlag(d.Value)
}

// cleanImportantFlag checks whether the last two non-whitespace primitives
// are a case-insensitive "!important" pair and, if so, strips them.
func cleanImportantFlag(values []Primitive) ([]Primitive, bool) {
	nonWS := make([]int, 0, len(values))
	for i, v := range values {
		if v.Token != nil && v.Token.Kind == Whitespace {
			continue
		}
		nonWS = append(nonWS, i)
	}
	if len(nonWS) < 2 {
		return values, false
	}
	bangIdx, identIdx := nonWS[len(nonWS)-2], nonWS[len(nonWS)-1]
	bang := values[bangIdx].Token
	ident := values[identIdx].Token
	if bang == nil || bang.Kind != Delim || bang.DelimValue != '!' {
		return values, false
	}
	if ident == nil || ident.Kind != Ident || !strings.EqualFold(ident.Value, "important") {
		return values, false
	}
	return values[:bangIdx], true
}
