// harfbuzz - a library for font subsetting
// Copyright (C) 2024  the harfbuzz contributors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package cff

import "errors"

// t2op identifies a Type 2 CharString operator, using the same one-byte
// (0..31) / two-byte (12 + one-byte) scheme as the CFF DICT operators in
// dict.go: an escape-12 operator's value here is 0x0c00 | its second byte.
type t2op uint16

const (
	t2hstem      t2op = 0x0001
	t2vstem      t2op = 0x0003
	t2vmoveto    t2op = 0x0004
	t2rlineto    t2op = 0x0005
	t2hlineto    t2op = 0x0006
	t2vlineto    t2op = 0x0007
	t2rrcurveto  t2op = 0x0008
	t2callsubr   t2op = 0x000a
	t2return     t2op = 0x000b
	t2endchar    t2op = 0x000e
	t2hstemhm    t2op = 0x0012
	t2hintmask   t2op = 0x0013
	t2cntrmask   t2op = 0x0014
	t2rmoveto    t2op = 0x0015
	t2hmoveto    t2op = 0x0016
	t2vstemhm    t2op = 0x0017
	t2rcurveline t2op = 0x0018
	t2rlinecurve t2op = 0x0019
	t2vvcurveto  t2op = 0x001a
	t2hhcurveto  t2op = 0x001b
	t2callgsubr  t2op = 0x001d
	t2vhcurveto  t2op = 0x001e
	t2hvcurveto  t2op = 0x001f

	t2dotsection t2op = 0x0c00
	t2and        t2op = 0x0c03
	t2or         t2op = 0x0c04
	t2not        t2op = 0x0c05
	t2abs        t2op = 0x0c09
	t2add        t2op = 0x0c0a
	t2sub        t2op = 0x0c0b
	t2div        t2op = 0x0c0c
	t2neg        t2op = 0x0c0e
	t2eq         t2op = 0x0c0f
	t2drop       t2op = 0x0c12
	t2put        t2op = 0x0c14
	t2get        t2op = 0x0c15
	t2ifelse     t2op = 0x0c16
	t2random     t2op = 0x0c17
	t2mul        t2op = 0x0c18
	t2sqrt       t2op = 0x0c1a
	t2dup        t2op = 0x0c1b
	t2exch       t2op = 0x0c1c
	t2index      t2op = 0x0c1d
	t2roll       t2op = 0x0c1e
	t2hflex      t2op = 0x0c22
	t2flex       t2op = 0x0c23
	t2hflex1     t2op = 0x0c24
	t2flex1      t2op = 0x0c25
)

// maxCharStringStack is the operand stack depth at which this package gives
// up on a CharString, matching the teacher decoder's tolerance (the Type 2
// spec says 48, but real-world fonts routinely exceed that).
const maxCharStringStack = 96

// maxSubrDepth is the deepest nested callsubr/callgsubr chain this package
// will follow before declaring the CharString malformed.
const maxSubrDepth = 10

// bias returns the bias subtracted from a CharString's raw callsubr/
// callgsubr operand to get an index into subrs.
func bias(nSubrs int) int {
	switch {
	case nSubrs < 1240:
		return 107
	case nSubrs < 33900:
		return 1131
	default:
		return 32768
	}
}

// getSubr returns subrs[bias(len(subrs))+biased], or an error if that index
// is out of range.
func getSubr(subrs [][]byte, biased int) ([]byte, error) {
	idx := biased + bias(len(subrs))
	if idx < 0 || idx >= len(subrs) {
		return nil, errInvalidSubroutine
	}
	return subrs[idx], nil
}

var errInvalidSubroutine = errors.New("invalid subroutine index")

// flattenCharString inlines every callsubr/callgsubr in code, against the
// global and local subroutine indexes gsubrs and lsubrs, optionally
// stripping hint operators (and the operand bytes that belong to them), and
// returns the resulting self-contained CharString (spec.md §4.2).
//
// The operand encodings themselves (the 32..254/28/255 number forms) are
// copied through byte-for-byte rather than being re-encoded from a decoded
// numeric value; every operand is decoded onto the operand stack, but only
// callsubr/callgsubr's subroutine index is read back from it, and the stack
// depths determine hintmask/cntrmask's trailing mask-byte count.
func flattenCharString(gid GID, code []byte, gsubrs, lsubrs [][]byte, dropHints bool) ([]byte, error) {
	out := make([]byte, 0, len(code))

	var stack []float64
	var operandStart []int // out[] offset where each stack value's bytes begin
	callStack := [][]byte{code}

	widthSeen := false
	nStems := 0
	sawEndchar := false

	// consumeWidth marks the width slot as accounted for the first time a
	// stack-clearing operator that could carry a leading width argument is
	// reached (width can only appear before the first such operator); it
	// reports whether that argument is actually present, so callers can
	// exclude it from their own argument count. isPresent's computation
	// differs by operator (parity for the variable-argument stem/mask
	// operators, a fixed threshold for rmoveto/hmoveto/vmoveto/endchar).
	consumeWidth := func(isPresent bool) bool {
		if widthSeen {
			return false
		}
		widthSeen = true
		return isPresent
	}

	flushOperator := func(op t2op) {
		if op > 0xff {
			out = append(out, 12, byte(op))
		} else {
			out = append(out, byte(op))
		}
	}

	dropPending := func() {
		if len(operandStart) > 0 {
			out = out[:operandStart[0]]
		}
		stack = stack[:0]
		operandStart = operandStart[:0]
	}
	clearPending := func() {
		stack = stack[:0]
		operandStart = operandStart[:0]
	}

	for len(callStack) > 0 {
		callStack, code = callStack[:len(callStack)-1], callStack[len(callStack)-1]

	opLoop:
		for len(code) > 0 {
			if sawEndchar {
				return nil, flattenError(gid, "operator after endchar")
			}
			if len(stack) > maxCharStringStack {
				return nil, flattenError(gid, "operand stack overflow")
			}

			b0 := code[0]
			switch {
			case b0 >= 32 && b0 <= 246:
				stack, operandStart = pushOperand(stack, operandStart, out)
				out = append(out, b0)
				stack[len(stack)-1] = float64(int32(b0) - 139)
				code = code[1:]
				continue
			case b0 >= 247 && b0 <= 250:
				if len(code) < 2 {
					return nil, flattenError(gid, "truncated operand")
				}
				stack, operandStart = pushOperand(stack, operandStart, out)
				out = append(out, code[:2]...)
				stack[len(stack)-1] = float64(int32(b0)*256 + int32(code[1]) + (108 - 247*256))
				code = code[2:]
				continue
			case b0 >= 251 && b0 <= 254:
				if len(code) < 2 {
					return nil, flattenError(gid, "truncated operand")
				}
				stack, operandStart = pushOperand(stack, operandStart, out)
				out = append(out, code[:2]...)
				stack[len(stack)-1] = float64(-int32(b0)*256 - int32(code[1]) - (108 - 251*256))
				code = code[2:]
				continue
			case b0 == 28:
				if len(code) < 3 {
					return nil, flattenError(gid, "truncated operand")
				}
				stack, operandStart = pushOperand(stack, operandStart, out)
				out = append(out, code[:3]...)
				stack[len(stack)-1] = float64(int16(code[1])<<8 | int16(code[2]))
				code = code[3:]
				continue
			case b0 == 255:
				if len(code) < 5 {
					return nil, flattenError(gid, "truncated operand")
				}
				stack, operandStart = pushOperand(stack, operandStart, out)
				out = append(out, code[:5]...)
				v := int32(code[1])<<24 | int32(code[2])<<16 | int32(code[3])<<8 | int32(code[4])
				stack[len(stack)-1] = float64(v) / 65536
				code = code[5:]
				continue
			}

			var op t2op
			if b0 == 12 {
				if len(code) < 2 {
					return nil, flattenError(gid, "truncated operator")
				}
				op = 0x0c00 | t2op(code[1])
				code = code[2:]
			} else {
				op = t2op(b0)
				code = code[1:]
			}

			switch op {
			case t2hstem, t2vstem, t2hstemhm, t2vstemhm:
				n := len(stack)
				if consumeWidth(n%2 == 1) {
					n--
				}
				nStems += n / 2
				if dropHints {
					dropPending()
				} else {
					flushOperator(op)
					clearPending()
				}

			case t2hintmask, t2cntrmask:
				n := len(stack)
				if consumeWidth(n%2 == 1) {
					n--
				}
				nStems += n / 2
				k := (nStems + 7) / 8
				if k > len(code) {
					return nil, flattenError(gid, "truncated hint mask")
				}
				mask := code[:k]
				code = code[k:]
				if dropHints {
					dropPending()
				} else {
					flushOperator(op)
					out = append(out, mask...)
					clearPending()
				}

			// hflex/flex/hflex1/flex1 draw curves, not hints, but
			// drop_hints strips them too: they exist only as an optical
			// correction, and this package's output is never rendered
			// with that correction.
			case t2hflex, t2flex, t2hflex1, t2flex1:
				if dropHints {
					dropPending()
				} else {
					flushOperator(op)
					clearPending()
				}

			case t2rmoveto:
				consumeWidth(len(stack) > 2)
				flushOperator(op)
				clearPending()
			case t2hmoveto, t2vmoveto:
				consumeWidth(len(stack) > 1)
				flushOperator(op)
				clearPending()
			case t2endchar:
				consumeWidth(len(stack) == 1 || len(stack) > 4)
				flushOperator(op)
				clearPending()
				sawEndchar = true

			case t2callsubr, t2callgsubr:
				if len(stack) < 1 {
					return nil, flattenError(gid, "operand stack underflow")
				}
				biased := int(stack[len(stack)-1])
				out = out[:operandStart[len(operandStart)-1]]
				stack = stack[:len(stack)-1]
				operandStart = operandStart[:len(operandStart)-1]

				if len(callStack) >= maxSubrDepth {
					return nil, flattenError(gid, "subroutine nesting too deep")
				}

				var subr []byte
				var err error
				if op == t2callsubr {
					subr, err = getSubr(lsubrs, biased)
				} else {
					subr, err = getSubr(gsubrs, biased)
				}
				if err != nil {
					return nil, flattenError(gid, "%s", err)
				}
				callStack = append(callStack, code)
				code = subr

			case t2return:
				break opLoop

			// Every other drawing operator (rlineto, rrcurveto, the curveto
			// variants, ...) and every arithmetic/stack operator (add, dup, index,
			// roll, put, get, ifelse, random, ...) lands here: its operand
			// bytes are already in out, so flushing the operator and
			// clearing the pending run is enough. This assumes, as real
			// CFF CharString compilers always do, that a callsubr's
			// subroutine number and a stem operator's argument count are
			// literal operands rather than values computed through one of
			// these operators; a charstring that violates that will
			// surface as a stack-underflow FlattenError instead of
			// producing corrupt output.
			default:
				flushOperator(op)
				clearPending()
			}
		}
	}

	if !sawEndchar {
		return nil, flattenError(gid, "missing endchar")
	}
	return out, nil
}

// pushOperand appends a placeholder slot to stack and records its current
// byte offset in out (before the operand's bytes are appended), so a later
// callsubr/callgsubr can undo writing that operand without having to know
// its encoded width.
func pushOperand(stack []float64, operandStart []int, out []byte) ([]float64, []int) {
	return append(stack, 0), append(operandStart, len(out))
}
