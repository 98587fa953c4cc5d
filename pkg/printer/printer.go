/*
* Copyright (c) 2026-present Concerto project contributors
 */

// Package printer serializes metamodel trees back to .cto source text.
// Output is deterministic and reparses to a structurally equal tree (up to
// source locations). Resolved namespaces on type references are not
// printed; imports carry that information.
package printer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tech-bash/concerto/pkg/metamodel"
)

var conceptKeywords = map[metamodel.ConceptKind]string{
	metamodel.KindConcept:     "concept",
	metamodel.KindAsset:       "asset",
	metamodel.KindParticipant: "participant",
	metamodel.KindTransaction: "transaction",
	metamodel.KindEvent:       "event",
}

// Print renders one model as .cto source.
func Print(m *metamodel.Model) string {
	var b strings.Builder
	fmt.Fprintf(&b, "namespace %s\n", m.Namespace)
	if len(m.Imports) > 0 {
		b.WriteString("\n")
		for _, imp := range m.Imports {
			printImport(&b, imp)
		}
	}
	for _, d := range m.Declarations {
		b.WriteString("\n")
		printDeclaration(&b, d)
	}
	return b.String()
}

func printImport(b *strings.Builder, imp metamodel.Import) {
	switch v := imp.(type) {
	case *metamodel.ImportAll:
		fmt.Fprintf(b, "import %s.*", v.Namespace)
		if v.URI != "" {
			fmt.Fprintf(b, " from %q", v.URI)
		}
		b.WriteString("\n")
	case *metamodel.ImportType:
		fmt.Fprintf(b, "import %s.%s", v.Namespace, v.Name)
		if v.URI != "" {
			fmt.Fprintf(b, " from %q", v.URI)
		}
		b.WriteString("\n")
	}
}

func printDeclaration(b *strings.Builder, d metamodel.Declaration) {
	printDecorators(b, "", d.GetDecorators())
	switch v := d.(type) {
	case *metamodel.ConceptDeclaration:
		if v.IsAbstract {
			b.WriteString("abstract ")
		}
		fmt.Fprintf(b, "%s %s", conceptKeywords[v.Kind], v.Name)
		if v.Identified != nil {
			if v.Identified.Field != "" {
				fmt.Fprintf(b, " identified by %s", v.Identified.Field)
			} else {
				b.WriteString(" identified")
			}
		}
		if v.SuperType != nil {
			fmt.Fprintf(b, " extends %s", v.SuperType.Name)
		}
		b.WriteString(" {\n")
		for _, p := range v.Properties {
			printProperty(b, p)
		}
		b.WriteString("}\n")
	case *metamodel.EnumDeclaration:
		fmt.Fprintf(b, "enum %s {\n", v.Name)
		for _, ep := range v.Properties {
			printDecorators(b, "  ", ep.Decorators)
			fmt.Fprintf(b, "  o %s\n", ep.Name)
		}
		b.WriteString("}\n")
	}
}

func printProperty(b *strings.Builder, p metamodel.Property) {
	printDecorators(b, "  ", p.GetDecorators())
	switch v := p.(type) {
	case *metamodel.RelationshipProperty:
		fmt.Fprintf(b, "  --> %s%s %s", v.Type.Name, arraySuffix(v.IsArray), v.Name)
	case *metamodel.ObjectProperty:
		fmt.Fprintf(b, "  o %s%s %s", v.Type.Name, arraySuffix(v.IsArray), v.Name)
	case *metamodel.BooleanProperty:
		fmt.Fprintf(b, "  o Boolean%s %s", arraySuffix(v.IsArray), v.Name)
		if v.DefaultValue != nil {
			fmt.Fprintf(b, " default=%t", *v.DefaultValue)
		}
	case *metamodel.DateTimeProperty:
		fmt.Fprintf(b, "  o DateTime%s %s", arraySuffix(v.IsArray), v.Name)
	case *metamodel.StringProperty:
		fmt.Fprintf(b, "  o String%s %s", arraySuffix(v.IsArray), v.Name)
		if v.DefaultValue != nil {
			fmt.Fprintf(b, " default=%q", *v.DefaultValue)
		}
		if v.Validator != nil {
			fmt.Fprintf(b, " regex=/%s/", strings.ReplaceAll(v.Validator.Pattern, "/", `\/`))
		}
	case *metamodel.DoubleProperty:
		fmt.Fprintf(b, "  o Double%s %s", arraySuffix(v.IsArray), v.Name)
		if v.DefaultValue != nil {
			fmt.Fprintf(b, " default=%s", formatDouble(*v.DefaultValue))
		}
		if v.Validator != nil {
			fmt.Fprintf(b, " range=[%s,%s]",
				formatBound(v.Validator.Lower, formatDouble),
				formatBound(v.Validator.Upper, formatDouble))
		}
	case *metamodel.IntegerProperty:
		fmt.Fprintf(b, "  o Integer%s %s", arraySuffix(v.IsArray), v.Name)
		if v.DefaultValue != nil {
			fmt.Fprintf(b, " default=%d", *v.DefaultValue)
		}
		if v.Validator != nil {
			fmt.Fprintf(b, " range=[%s,%s]",
				formatBound(v.Validator.Lower, formatInt32),
				formatBound(v.Validator.Upper, formatInt32))
		}
	case *metamodel.LongProperty:
		fmt.Fprintf(b, "  o Long%s %s", arraySuffix(v.IsArray), v.Name)
		if v.DefaultValue != nil {
			fmt.Fprintf(b, " default=%d", *v.DefaultValue)
		}
		if v.Validator != nil {
			fmt.Fprintf(b, " range=[%s,%s]",
				formatBound(v.Validator.Lower, formatInt64),
				formatBound(v.Validator.Upper, formatInt64))
		}
	}
	if p.GetIsOptional() {
		b.WriteString(" optional")
	}
	b.WriteString("\n")
}

func printDecorators(b *strings.Builder, indent string, decorators []*metamodel.Decorator) {
	for _, dec := range decorators {
		b.WriteString(indent)
		fmt.Fprintf(b, "@%s", dec.Name)
		if len(dec.Arguments) > 0 {
			b.WriteString("(")
			for i, arg := range dec.Arguments {
				if i > 0 {
					b.WriteString(", ")
				}
				printDecoratorLiteral(b, arg)
			}
			b.WriteString(")")
		}
		b.WriteString("\n")
	}
}

func printDecoratorLiteral(b *strings.Builder, lit metamodel.DecoratorLiteral) {
	switch v := lit.(type) {
	case *metamodel.DecoratorString:
		fmt.Fprintf(b, "%q", v.Value)
	case *metamodel.DecoratorNumber:
		b.WriteString(formatDouble(v.Value))
	case *metamodel.DecoratorBoolean:
		fmt.Fprintf(b, "%t", v.Value)
	case *metamodel.DecoratorTypeReference:
		fmt.Fprintf(b, "%s%s", v.Type.Name, arraySuffix(v.IsArray))
	}
}

func arraySuffix(isArray bool) string {
	if isArray {
		return "[]"
	}
	return ""
}

// 'f' keeps the output inside the numeric token grammar (no exponent form).
func formatDouble(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatInt32(v int32) string { return strconv.FormatInt(int64(v), 10) }

func formatInt64(v int64) string { return strconv.FormatInt(v, 10) }

func formatBound[T any](v *T, format func(T) string) string {
	if v == nil {
		return ""
	}
	return format(*v)
}
