// Package html5 is the module's top-level facade (spec §6): it wires the
// decode pipeline, input preprocessor, tokenizer and tree constructor into
// one pull pipeline, mirroring the shape of the teacher's own top-level
// chtml.Parse(r io.Reader) (*html.Node, error) in chtml/parse.go.
package html5

import (
	"bufio"
	"io"
	"log/slog"

	"github.com/corehtml/html5/atom"
	"github.com/corehtml/html5/decode"
	"github.com/corehtml/html5/dom"
	"github.com/corehtml/html5/preprocess"
	"github.com/corehtml/html5/tokenizer"
	"github.com/corehtml/html5/tree"
)

// Option configures a Parser. Options are applied in New/NewFragment,
// following the functional-options shape the corpus's HTTP-facing types
// (e.g. the teacher's pages.Handler) configure via plain struct fields —
// adapted here to options since Parser's construction is staged (decoder,
// then tokenizer, then tree constructor all need the same settings).
type Option func(*config)

type config struct {
	fallback  decode.Encoding
	log       *slog.Logger
	scripting bool
}

// WithFallbackEncoding sets the encoding used when no byte-order mark is
// present (spec §4.1's encoding-sniffing fallback). Defaults to UTF-8.
func WithFallbackEncoding(e decode.Encoding) Option {
	return func(c *config) { c.fallback = e }
}

// WithLogger sets the *slog.Logger parse errors and tree-construction
// diagnostics are reported to (teacher's pages.go Logger field pattern).
func WithLogger(l *slog.Logger) Option {
	return func(c *config) { c.log = l }
}

// WithScripting enables the HTML parsing algorithm's "scripting flag",
// which routes <noscript> content through the raw-text parsing algorithm
// instead of as ordinary markup (spec §4.6). Off by default, matching a
// parser that never executes script.
func WithScripting(enabled bool) Option {
	return func(c *config) { c.scripting = enabled }
}

// Parser is the external handle of spec §6: PushByte/PushCodePoint feed
// input, PushEOF finalizes the tree, and Document retrieves the result.
type Parser struct {
	cfg config

	dec *decode.Decoder
	pre *preprocess.Stream
	tok *tokenizer.Tokenizer
	ctr *tree.Constructor

	arena *dom.Arena
	log   *slog.Logger

	errs []*ParseError

	offset       int
	line, column int
}

// New returns a Parser configured to parse a complete document.
func New(opts ...Option) *Parser {
	p := newParser(opts...)
	p.arena = dom.NewArena()
	p.ctr = tree.New(p.arena, p.tok, p.log)
	p.ctr.SetScripting(p.cfg.scripting)
	return p
}

// NewFragment returns a Parser configured for fragment parsing (spec §6):
// context supplies the namespace and tag the "reset the insertion mode
// appropriately" algorithm needs, per spec §4.6's fragment-parsing case.
func NewFragment(context *dom.Element, opts ...Option) *Parser {
	p := newParser(opts...)
	p.arena = dom.NewArena()
	ns := ""
	var tag atom.Atom
	if context != nil && context.Arena != nil {
		ns = context.Arena.Namespace(context.ID)
		tag = context.Arena.Tag(context.ID)
	}
	p.ctr = tree.NewFragment(p.arena, p.tok, p.log, ns, tag)
	p.ctr.SetScripting(p.cfg.scripting)
	return p
}

func newParser(opts ...Option) *Parser {
	cfg := config{fallback: decode.UTF8}
	for _, o := range opts {
		o(&cfg)
	}
	if cfg.log == nil {
		cfg.log = slog.Default()
	}

	p := &Parser{cfg: cfg, log: cfg.log, line: 1, column: 1}
	p.tok = tokenizer.New()
	p.tok.Error = p.reportTokenizer
	p.pre = preprocess.New(p.tok.Feed, p.reportPreprocess)
	p.dec = decode.NewDecoder(cfg.fallback, p.pushScalar)
	return p
}

// PushByte feeds one input byte through the decode pipeline.
func (p *Parser) PushByte(b byte) {
	p.dec.PushByte(b)
}

// PushCodePoint feeds one already-decoded Unicode scalar value directly
// into the preprocessor, bypassing the byte-decode stage — for callers
// that already hold text (e.g. a Go string) rather than a byte stream.
func (p *Parser) PushCodePoint(r rune) {
	p.pushScalar(r)
}

// PushEOF signals end of input, flushing the decoder, tokenizer and
// completing tree construction.
func (p *Parser) PushEOF() {
	p.dec.PushEOF()
	p.pre.Close()
	p.tok.FeedEOF()
}

// Document returns the constructed tree as a *dom.Document handle.
func (p *Parser) Document() *dom.Document {
	return &dom.Document{Arena: p.arena, Root: p.ctr.Document()}
}

// FragmentRoot returns the synthetic <html> root fragment parsing starts
// from (0 for a full-document Parser).
func (p *Parser) FragmentRoot() dom.NodeID {
	return p.ctr.FragmentRoot()
}

// Errors returns every non-fatal parse error reported so far.
func (p *Parser) Errors() []*ParseError {
	return p.errs
}

func (p *Parser) pushScalar(r rune) {
	p.offset++
	if r == '\n' {
		p.line++
		p.column = 1
	} else {
		p.column++
	}
	p.pre.Push(r)
}

func (p *Parser) pos() Position {
	return Position{Offset: p.offset, Line: p.line, Column: p.column}
}

func (p *Parser) reportPreprocess(code string) {
	p.record(code)
}

func (p *Parser) reportTokenizer(code string) {
	p.record(code)
}

func (p *Parser) record(code string) {
	pe := &ParseError{Code: code, Pos: p.pos()}
	p.errs = append(p.errs, pe)
	p.log.Warn("parse error", "code", code, "line", pe.Pos.Line, "column", pe.Pos.Column)
}

// feedReader drains r into p a chunk at a time and finalizes the parse.
func feedReader(p *Parser, r io.Reader) (*dom.Document, error) {
	br := bufio.NewReader(r)
	buf := make([]byte, 4096)
	for {
		n, err := br.Read(buf)
		for i := 0; i < n; i++ {
			p.PushByte(buf[i])
		}
		if err == io.EOF || n == 0 {
			break
		}
		if err != nil {
			return nil, err
		}
	}
	p.PushEOF()
	return p.Document(), nil
}

// ParseDocument is the ergonomic entry point of spec §6: decode, tokenize
// and tree-construct an entire document from r.
func ParseDocument(r io.Reader, opts ...Option) (*dom.Document, error) {
	return feedReader(New(opts...), r)
}

// ParseFragment is the fragment-parsing ergonomic entry point of spec §6,
// grounded in the same collaborators as ParseDocument.
func ParseFragment(r io.Reader, context *dom.Element, opts ...Option) (*dom.Document, error) {
	return feedReader(NewFragment(context, opts...), r)
}
