// Copyright 2022 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package parse

import (
	"fmt"

	"github.com/susisu/lambda2ts-go/ast"
)

// Error represents a parser error message and its location in the source.
type Error struct {
	Message string
	Line    int // 1-based line number within source.
	Column  int // 0-based column number within source.
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("parse error: %s (line %d, column %d)", e.Message, e.Line, e.Column)
}

// parser holds the token stream and current read position. It stops at
// the first error it encounters rather than accumulating diagnostics
// across the whole input.
type parser struct {
	toks []token
	pos  int
}

func (p *parser) peek() token {
	return p.toks[p.pos]
}

func (p *parser) next() token {
	t := p.toks[p.pos]
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	return t
}

func (p *parser) errorAt(t token, format string, args ...any) error {
	return &Error{Message: fmt.Sprintf(format, args...), Line: t.line, Column: t.column}
}

func (p *parser) expect(kind tokenKind, what string) (token, error) {
	t := p.peek()
	if t.kind != kind {
		return token{}, p.errorAt(t, "expected %s, got %q", what, tokenDescription(t))
	}
	return p.next(), nil
}

func tokenDescription(t token) string {
	if t.kind == tokEOF {
		return "end of input"
	}
	return t.text
}

// Parse parses a complete program from source text: a sequence of
// semicolon-separated "let" declarations.
func Parse(source string) (ast.Program, error) {
	toks, err := lex(source)
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks}
	program, err := p.parseProgram()
	if err != nil {
		return nil, err
	}
	return program, nil
}

func (p *parser) parseProgram() (ast.Program, error) {
	var decls ast.Program
	if p.peek().kind == tokEOF {
		return decls, nil
	}
	decl, err := p.parseDecl()
	if err != nil {
		return nil, err
	}
	decls = append(decls, decl)

	for p.peek().kind == tokSemi {
		for p.peek().kind == tokSemi {
			p.next()
		}
		if p.peek().kind == tokEOF {
			break
		}
		decl, err := p.parseDecl()
		if err != nil {
			return nil, err
		}
		decls = append(decls, decl)
	}

	if t := p.peek(); t.kind != tokEOF {
		return nil, p.errorAt(t, "expected \";\" or end of input, got %q", tokenDescription(t))
	}
	return decls, nil
}

// parseDecl parses "let" id id* "=" term, desugaring extra parameters into
// nested Abs values.
func (p *parser) parseDecl() (ast.Declaration, error) {
	if _, err := p.expect(tokLet, "\"let\""); err != nil {
		return ast.Declaration{}, err
	}
	name, err := p.parseIdent()
	if err != nil {
		return ast.Declaration{}, err
	}
	params, err := p.parseIdentList()
	if err != nil {
		return ast.Declaration{}, err
	}
	if _, err := p.expect(tokEquals, "\"=\""); err != nil {
		return ast.Declaration{}, err
	}
	value, err := p.parseTerm()
	if err != nil {
		return ast.Declaration{}, err
	}
	return ast.Declaration{Name: name, Value: wrapAbs(params, value)}, nil
}

func (p *parser) parseIdent() (string, error) {
	t, err := p.expect(tokIdent, "identifier")
	if err != nil {
		return "", err
	}
	return t.text, nil
}

// parseIdentList parses zero or more identifiers.
func (p *parser) parseIdentList() ([]string, error) {
	var ids []string
	for p.peek().kind == tokIdent {
		ids = append(ids, p.next().text)
	}
	return ids, nil
}

// parseIdentList1 parses one or more identifiers.
func (p *parser) parseIdentList1() ([]string, error) {
	if p.peek().kind != tokIdent {
		return nil, p.errorAt(p.peek(), "expected identifier, got %q", tokenDescription(p.peek()))
	}
	return p.parseIdentList()
}

// wrapAbs folds params, right to left, into nested Abs around body.
func wrapAbs(params []string, body ast.Term) ast.Term {
	for i := len(params) - 1; i >= 0; i-- {
		body = ast.Abs{Param: params[i], Body: body}
	}
	return body
}

// parseTerm dispatches on the next token: "fun" starts an abstraction,
// "let" a local let, and an identifier or "(" an application. A
// parenthesized term is parsed as the first aterm of that application.
func (p *parser) parseTerm() (ast.Term, error) {
	switch p.peek().kind {
	case tokFun:
		return p.parseAbs()
	case tokLet:
		return p.parseLetExpr()
	case tokIdent, tokLParen:
		return p.parseApp()
	default:
		return nil, p.errorAt(p.peek(), "expected term, got %q", tokenDescription(p.peek()))
	}
}

// parseApp parses one or more application terms (aterm+), left-associative.
func (p *parser) parseApp() (ast.Term, error) {
	fn, err := p.parseATerm()
	if err != nil {
		return nil, err
	}
	for p.peek().kind == tokIdent || p.peek().kind == tokLParen {
		arg, err := p.parseATerm()
		if err != nil {
			return nil, err
		}
		fn = ast.App{Func: fn, Arg: arg}
	}
	return fn, nil
}

// parseATerm parses an identifier or a parenthesized term.
func (p *parser) parseATerm() (ast.Term, error) {
	switch p.peek().kind {
	case tokIdent:
		return ast.Var{Name: p.next().text}, nil
	case tokLParen:
		p.next()
		inner, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(tokRParen, "\")\""); err != nil {
			return nil, err
		}
		return inner, nil
	default:
		return nil, p.errorAt(p.peek(), "expected identifier or \"(\", got %q", tokenDescription(p.peek()))
	}
}

// parseAbs parses "fun" id+ "->" term.
func (p *parser) parseAbs() (ast.Term, error) {
	if _, err := p.expect(tokFun, "\"fun\""); err != nil {
		return nil, err
	}
	params, err := p.parseIdentList1()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(tokArrow, "\"->\""); err != nil {
		return nil, err
	}
	body, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	return wrapAbs(params, body), nil
}

// parseLetExpr parses "let" id id* "=" term "in" term.
func (p *parser) parseLetExpr() (ast.Term, error) {
	if _, err := p.expect(tokLet, "\"let\""); err != nil {
		return nil, err
	}
	name, err := p.parseIdent()
	if err != nil {
		return nil, err
	}
	params, err := p.parseIdentList()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(tokEquals, "\"=\""); err != nil {
		return nil, err
	}
	value, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(tokIn, "\"in\""); err != nil {
		return nil, err
	}
	body, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	return ast.Let{Name: name, Value: wrapAbs(params, value), Body: body}, nil
}
