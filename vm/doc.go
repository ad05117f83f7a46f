// Package vm implements the virtual machine and its assembly parser.
//
// The machine consists of sixteen general-purpose registers (r0-r15), a
// bank of comparison status flags, a flat 512-cell memory array with
// bracket-indirect addressing, and a table of symbolic aliases resolved at
// use time. Programs are line-oriented assembly text: labels, mnemonics
// with comma-separated operands, and ';' comments.
//
// The parser supports compile-time $(...) expression evaluation against a
// predefine dictionary.
package vm
