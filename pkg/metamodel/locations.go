/*
* Copyright (c) 2026-present Concerto project contributors
 */
package metamodel

// StripLocations clears every source location in the model. Locations are
// parse artifacts; comparisons of trees obtained from different parses go
// through this first.
func (m *Model) StripLocations() {
	for _, d := range m.Declarations {
		switch v := d.(type) {
		case *ConceptDeclaration:
			v.Location = nil
			for _, p := range v.Properties {
				stripPropertyLocation(p)
			}
		case *EnumDeclaration:
			v.Location = nil
			for _, ep := range v.Properties {
				ep.Location = nil
			}
		}
	}
}

// StripLocations clears every source location in the collection.
func (m *Models) StripLocations() {
	for _, model := range m.Models {
		model.StripLocations()
	}
}

func stripPropertyLocation(p Property) {
	switch v := p.(type) {
	case *ObjectProperty:
		v.Location = nil
	case *RelationshipProperty:
		v.Location = nil
	case *BooleanProperty:
		v.Location = nil
	case *DateTimeProperty:
		v.Location = nil
	case *StringProperty:
		v.Location = nil
	case *DoubleProperty:
		v.Location = nil
	case *IntegerProperty:
		v.Location = nil
	case *LongProperty:
		v.Location = nil
	}
}
