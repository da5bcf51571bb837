// Package codegen lowers an analyzed ast.Program into x86-64 Linux
// assembly, Intel syntax, targeting the GNU assembler. Generation
// never fails for a program that has already passed semantic
// analysis: every lookup the generator performs has already been
// validated.
package codegen

import (
	"fmt"
	"strings"
)

// generator holds per-compilation mutable state: the running label
// counter, the assembly text accumulated so far, and the current
// function's local-variable layout. None of this is process-global;
// a fresh generator is created per Generate call.
type generator struct {
	out          strings.Builder
	labelCounter int
	locals       map[string]int // variable name -> stack_offset (negative)
	stackOffset  int
}

func newGenerator() *generator {
	return &generator{locals: make(map[string]int)}
}

func (g *generator) emit(line string) {
	g.out.WriteString(line)
	g.out.WriteByte('\n')
}

func (g *generator) emitf(format string, args ...any) {
	g.emit(fmt.Sprintf(format, args...))
}

// newLabel returns a fresh label of the form "<prefix><n>", where n is
// monotonically increasing across the whole compilation.
func (g *generator) newLabel(prefix string) string {
	label := fmt.Sprintf("%s%d", prefix, g.labelCounter)
	g.labelCounter++
	return label
}

// allocateLocal reserves the next 8-byte stack slot for name and
// returns its (negative) offset from rbp.
func (g *generator) allocateLocal(name string) int {
	g.stackOffset -= 8
	g.locals[name] = g.stackOffset
	return g.stackOffset
}

// operand renders a stack-relative operand for the given rbp offset,
// e.g. operand(-8) -> "[rbp-8]".
func operand(offset int) string {
	if offset < 0 {
		return fmt.Sprintf("[rbp-%d]", -offset)
	}
	return fmt.Sprintf("[rbp+%d]", offset)
}

// frameSize is the fixed per-function local frame reserved by the
// prologue, independent of how many locals the function actually
// declares.
const frameSize = 256

// argRegisters is the System V AMD64 integer argument-passing order;
// a function or call with more than six arguments is unsupported.
var argRegisters = []string{"rdi", "rsi", "rdx", "rcx", "r8", "r9"}

// setccByOp maps comparison operators to the SETcc mnemonic that
// follows a `cmp rax, rbx`.
var setccByOp = map[string]string{
	"==": "sete",
	"!=": "setne",
	">":  "setg",
	"<":  "setl",
	">=": "setge",
	"<=": "setle",
}
