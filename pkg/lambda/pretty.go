package lambda

import "strings"

// Printer renders terms in the surface syntax accepted by Parse.
type Printer struct {
	// Annotate appends <original> to identifiers renamed by Uniquify.
	Annotate bool
}

// Render prints t with renamed identifiers annotated by their source name,
// e.g. "#v0<x> -> v0<x>".
func Render(t Term) string {
	return Printer{Annotate: true}.Render(t)
}

// RenderPlain prints t using current names only.
func RenderPlain(t Term) string {
	return Printer{}.Render(t)
}

func (p Printer) Render(t Term) string {
	var sb strings.Builder
	p.write(&sb, t)
	return sb.String()
}

func (p Printer) ident(id Identifier) string {
	if p.Annotate && id.Name != id.Original {
		return id.Name + "<" + id.Original + ">"
	}
	return id.Name
}

func (p Printer) write(sb *strings.Builder, t Term) {
	switch t := t.(type) {
	case Var:
		sb.WriteString(p.ident(t.ID))
	case Abs:
		sb.WriteString("#")
		sb.WriteString(p.ident(t.Param))
		sb.WriteString(" -> ")
		p.write(sb, t.Body)
	case App:
		p.operand(sb, t.Fun)
		sb.WriteString(" ")
		p.operand(sb, t.Arg)
	}
}

// operand wraps a side of an application in parentheses exactly when its own
// rendering contains a space.
func (p Printer) operand(sb *strings.Builder, t Term) {
	s := p.Render(t)
	if strings.Contains(s, " ") {
		sb.WriteString("(")
		sb.WriteString(s)
		sb.WriteString(")")
		return
	}
	sb.WriteString(s)
}
