// Package ast defines the abstract syntax tree produced by the parser.
//
// Nodes form closed sums: Expression, Statement and DataType are interfaces
// with unexported marker methods, so a switch over their variants is
// exhaustive within this module. Every node carries the exact source range
// of the text that produced it.
package ast

import (
	"github.com/linuskmr/forty-two-lang/token"
)

// Node is either an Expression or a Statement.
type Node interface {
	Position() token.PositionRange
}

type Expression interface {
	Node
	isExpression()
}

type Statement interface {
	Node
	isStatement()
}

// Identifier is a name together with its source position.
type Identifier struct {
	Name string
	Pos  token.PositionRange
}

func (i Identifier) Position() token.PositionRange { return i.Pos }

// Number is a floating point literal like `42` or `4.2`.
type Number struct {
	Value float64
	Pos   token.PositionRange
}

func (n Number) isExpression() {}
func (n Number) Position() token.PositionRange { return n.Pos }

// Variable is a reference to a variable by name.
type Variable struct {
	Name string
	Pos  token.PositionRange
}

func (v Variable) isExpression() {}
func (v Variable) Position() token.PositionRange { return v.Pos }

// FunctionCall is the application of a function to concrete arguments,
// like `add(2, 3)`. Pos spans from the function name to the closing
// parenthesis.
type FunctionCall struct {
	Name Identifier
	Args []Expression
	Pos  token.PositionRange
}

func (f FunctionCall) isExpression() {}
func (f FunctionCall) Position() token.PositionRange { return f.Pos }

// Operator is a binary operator together with its source position.
type Operator struct {
	Kind BinaryOperator
	Pos  token.PositionRange
}

// BinaryExpression is `Lhs op Rhs`, like `40 + 2`. Both operands are
// exclusively owned; the tree is never mutated after construction.
type BinaryExpression struct {
	Lhs      Expression
	Operator Operator
	Rhs      Expression
}

func (b BinaryExpression) isExpression() {}

func (b BinaryExpression) Position() token.PositionRange {
	return b.Lhs.Position().Union(b.Rhs.Position())
}

// DataType is a basic type, a struct reference or a pointer.
type DataType interface {
	Position() token.PositionRange
	isDataType()
}

// BasicKind enumerates the types with hardware support.
type BasicKind int

const (
	Int BasicKind = iota
	Float
)

func (k BasicKind) String() string {
	switch k {
	case Int:
		return "int"
	case Float:
		return "float"
	}
	return "unknown"
}

// BasicKindFromName classifies a type name as a basic data type. The second
// return value is false if the name is not a basic type.
func BasicKindFromName(name string) (BasicKind, bool) {
	switch name {
	case "int":
		return Int, true
	case "float":
		return Float, true
	}
	return 0, false
}

// BasicType is a hardware-supported type like `int` or `float`.
type BasicType struct {
	Kind BasicKind
	Pos  token.PositionRange
}

func (b BasicType) isDataType() {}
func (b BasicType) Position() token.PositionRange { return b.Pos }

// StructType names a user-defined type. The name is not resolved at parse
// time; the struct definition may appear later in the input or not at all.
type StructType struct {
	Name string
	Pos  token.PositionRange
}

func (s StructType) isDataType() {}
func (s StructType) Position() token.PositionRange { return s.Pos }

// PointerType is a pointer to another data type, like `ptr int`. Pointers
// nest without bound (`ptr ptr int`). Pos spans from the `ptr` keyword to
// the end of the pointee type.
type PointerType struct {
	Inner DataType
	Pos   token.PositionRange
}

func (p PointerType) isDataType() {}
func (p PointerType) Position() token.PositionRange { return p.Pos }

// FunctionArgument is one `name: type` pair in a function prototype.
// Uniqueness of names within a prototype is not enforced here; that is the
// job of semantic analysis.
type FunctionArgument struct {
	Name     Identifier
	DataType DataType
}

// Prototype is a function header: its name and arguments. An extern
// declaration yields a bare Prototype.
type Prototype struct {
	Name Identifier
	Args []FunctionArgument
}

func (p Prototype) isStatement() {}
func (p Prototype) Position() token.PositionRange { return p.Name.Pos }

// Function is a prototype together with its body expression.
type Function struct {
	Prototype Prototype
	Body      Expression
}

func (f Function) isStatement() {}

func (f Function) Position() token.PositionRange {
	return f.Prototype.Position().Union(f.Body.Position())
}

// VariableDeclaration is `name: type = value`.
type VariableDeclaration struct {
	Name     Identifier
	DataType DataType
	Value    Expression
}

func (v VariableDeclaration) isStatement() {}

func (v VariableDeclaration) Position() token.PositionRange {
	return v.Name.Pos.Union(v.Value.Position())
}

// VariableAssignment is `name = value`.
type VariableAssignment struct {
	Name  Identifier
	Value Expression
}

func (v VariableAssignment) isStatement() {}

func (v VariableAssignment) Position() token.PositionRange {
	return v.Name.Pos.Union(v.Value.Position())
}

// Return is `ret value`.
type Return struct {
	Value Expression
	Pos   token.PositionRange
}

func (r Return) isStatement() {}
func (r Return) Position() token.PositionRange { return r.Pos }

// StructField is one `name: type` pair in a struct definition.
type StructField struct {
	Name     Identifier
	DataType DataType
}

// StructDefinition is `struct Name { field: type ... }`. Field names are
// not checked for uniqueness here.
type StructDefinition struct {
	Name   Identifier
	Fields []StructField
	Pos    token.PositionRange
}

func (s StructDefinition) isStatement() {}
func (s StructDefinition) Position() token.PositionRange { return s.Pos }
