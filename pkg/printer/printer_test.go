/*
* Copyright (c) 2026-present Concerto project contributors
 */
package printer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tech-bash/concerto/pkg/metamodel"
	"github.com/tech-bash/concerto/pkg/parser"
)

const source = `namespace org.acme.hr

import org.acme.base.*
import org.acme.addr.Address from "https://models.acme.org/addr.cto"

@category("hr", 1, true)
abstract participant Staff identified by email extends Person {
  o String email
  o String name default="unknown" regex=/\p{L}+\/?/
  o Integer grade range=[1,10] optional
  o Double rating default=4.5 range=[,5.5]
  o Long visits default=0 range=[0,]
  o Boolean active default=true
  o DateTime joined
  o String[] aliases optional
  o Address home
  @linked(Badge[], "audit", 3, false)
  --> Company employer optional
}

asset Badge identified {
  o DateTime issued
}

enum Level {
  o JUNIOR
  @weight(2)
  o SENIOR
}
`

func TestPrint_RoundTrip(t *testing.T) {
	require := require.New(t)

	model, err := parser.ParseModel("round.cto", source)
	require.NoError(err)

	printed := Print(model)
	reparsed, err := parser.ParseModel("reprint.cto", printed)
	require.NoError(err)

	model.StripLocations()
	reparsed.StripLocations()
	equal, err := model.Equal(reparsed)
	require.NoError(err)
	require.True(equal, "printed form:\n%s", printed)
}

func TestPrint_ResolvedReferencesStayShort(t *testing.T) {
	require := require.New(t)

	model := &metamodel.Model{
		Namespace: "org.acme",
		Imports: []metamodel.Import{
			&metamodel.ImportType{Namespace: "org.base", Name: "Person"},
		},
		Declarations: []metamodel.Declaration{
			&metamodel.ConceptDeclaration{
				Kind:      metamodel.KindConcept,
				Name:      "Order",
				SuperType: &metamodel.TypeIdentifier{Name: "Person", Namespace: "org.base"},
			},
		},
	}
	printed := Print(model)
	require.Contains(printed, "extends Person")
	require.NotContains(printed, "extends org.base.Person")
	require.Contains(printed, "import org.base.Person")
}

func TestPrint_Layout(t *testing.T) {
	require := require.New(t)

	model, err := parser.ParseModel("layout.cto", source)
	require.NoError(err)
	printed := Print(model)

	require.True(strings.HasPrefix(printed, "namespace org.acme.hr\n"))
	require.Contains(printed, "import org.acme.base.*\n")
	require.Contains(printed, `import org.acme.addr.Address from "https://models.acme.org/addr.cto"`)
	require.Contains(printed, "abstract participant Staff identified by email extends Person {")
	require.Contains(printed, "  o Integer grade range=[1,10] optional\n")
	require.Contains(printed, "  o Long visits default=0 range=[0,]\n")
	require.Contains(printed, `regex=/\p{L}+\/?/`)
	require.Contains(printed, "  --> Company employer optional\n")
	require.Contains(printed, "asset Badge identified {")
	require.Contains(printed, "@weight(2)\n  o SENIOR")
}
