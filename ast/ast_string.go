package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// String renders expressions fully parenthesized, so parsing the printed
// form reproduces the same tree shape.

func (n Number) String() string {
	return strconv.FormatFloat(n.Value, 'f', -1, 64)
}

func (v Variable) String() string {
	return v.Name
}

func (f FunctionCall) String() string {
	args := make([]string, len(f.Args))
	for i, arg := range f.Args {
		args[i] = fmt.Sprint(arg)
	}
	return fmt.Sprintf("%s(%s)", f.Name.Name, strings.Join(args, ", "))
}

func (b BinaryExpression) String() string {
	return fmt.Sprintf("(%v %s %v)", b.Lhs, b.Operator.Kind, b.Rhs)
}

func (b BasicType) String() string {
	return b.Kind.String()
}

func (s StructType) String() string {
	return s.Name
}

func (p PointerType) String() string {
	return fmt.Sprintf("ptr %v", p.Inner)
}

func (a FunctionArgument) String() string {
	return fmt.Sprintf("%s: %v", a.Name.Name, a.DataType)
}

func (p Prototype) String() string {
	args := make([]string, len(p.Args))
	for i, arg := range p.Args {
		args[i] = arg.String()
	}
	return fmt.Sprintf("%s(%s)", p.Name.Name, strings.Join(args, ", "))
}

func (f Function) String() string {
	return fmt.Sprintf("def %v %v", f.Prototype, f.Body)
}

func (v VariableDeclaration) String() string {
	return fmt.Sprintf("%s: %v = %v", v.Name.Name, v.DataType, v.Value)
}

func (v VariableAssignment) String() string {
	return fmt.Sprintf("%s = %v", v.Name.Name, v.Value)
}

func (r Return) String() string {
	return fmt.Sprintf("ret %v", r.Value)
}

func (s StructDefinition) String() string {
	fields := make([]string, len(s.Fields))
	for i, field := range s.Fields {
		fields[i] = fmt.Sprintf("%s: %v", field.Name.Name, field.DataType)
	}
	return fmt.Sprintf("struct %s { %s }", s.Name.Name, strings.Join(fields, ", "))
}
