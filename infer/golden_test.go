package infer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/corelang/mlhm/ast"
	"github.com/corelang/mlhm/construct"
	"github.com/corelang/mlhm/types"
)

// goldenFixture is the shape of testdata/*.yaml: a scenario name, a
// human-readable description of the source program (spec.md §8's
// end-to-end scenarios), and the rendered type expected for each
// top-level binding the scenario produces.
type goldenFixture struct {
	Name        string            `yaml:"name"`
	Description string            `yaml:"description"`
	Values      map[string]string `yaml:"values"`
}

// goldenStructures builds the surface AST for each named scenario. There
// is no surface-syntax parser in scope (spec.md's Non-goals), so the
// fixture's "description" field documents the program in concrete
// syntax and this map supplies the same program already parsed.
func goldenStructures() map[string]ast.Structure {
	facBody := construct.If(
		construct.Apply(construct.Apply(construct.Var("<="), construct.Var("n")), construct.Const(ast.Int(1))),
		construct.Const(ast.Int(1)),
		construct.Apply(construct.Apply(construct.Var("*"), construct.Var("n")),
			construct.Apply(construct.Var("fac"),
				construct.Apply(construct.Apply(construct.Var("-"), construct.Var("n")), construct.Const(ast.Int(1))))),
	)
	fac := construct.LetRec(construct.PVar("fac"), construct.Fun(construct.PVar("n"), facBody), construct.Var("fac"))

	fib := construct.LetRec(construct.PVar("fib"), construct.Fun(construct.PVar("n"),
		construct.If(
			construct.Apply(construct.Apply(construct.Var("<"), construct.Var("n")), construct.Const(ast.Int(2))),
			construct.Var("n"),
			construct.Apply(construct.Apply(construct.Var("+"),
				construct.Apply(construct.Var("fib"),
					construct.Apply(construct.Apply(construct.Var("-"), construct.Var("n")), construct.Const(ast.Int(1))))),
				construct.Apply(construct.Var("fib"),
					construct.Apply(construct.Apply(construct.Var("-"), construct.Var("n")), construct.Const(ast.Int(2))))),
		),
	), construct.Var("fib"))

	return map[string]ast.Structure{
		"factorial": {construct.Value(false, construct.PVar("fac"), fac)},
		"fibonacci": {construct.Value(false, construct.PVar("fib"), fib)},
		"let-generalization": {
			construct.Value(false, construct.PVar("id"),
				construct.Fun(construct.PVar("x"), construct.Var("x"))),
			construct.Value(false, construct.PVar("temp"),
				construct.Tuple(
					construct.Apply(construct.Var("id"), construct.Const(ast.Int(1))),
					construct.Apply(construct.Var("id"), construct.Const(ast.Bool(true))),
				)),
		},
		"fix": {
			construct.Value(false, construct.PVar("fix"), construct.LetRec(construct.PVar("fix"),
				construct.FunN(
					construct.ApplyN(construct.Var("f"),
						construct.Apply(construct.Var("fix"), construct.Var("f")),
						construct.Var("x")),
					construct.PVar("f"), construct.PVar("x"),
				), construct.Var("fix"))),
		},
	}
}

func TestGoldenScenarios(t *testing.T) {
	structures := goldenStructures()

	files, err := filepath.Glob("testdata/*.yaml")
	require.NoError(t, err)
	require.NotEmpty(t, files, "expected golden fixtures under testdata/")

	for _, path := range files {
		path := path
		t.Run(path, func(t *testing.T) {
			data, err := os.ReadFile(path)
			require.NoError(t, err)

			var fx goldenFixture
			require.NoError(t, yaml.Unmarshal(data, &fx))

			structure, ok := structures[fx.Name]
			require.True(t, ok, "no structure builder registered for scenario %q", fx.Name)

			env, err := InferStructure(structure)
			require.NoError(t, err)

			for name, want := range fx.Values {
				sc, ok := env.Lookup(name)
				require.True(t, ok, "scenario %q: binding %q not found", fx.Name, name)
				assert.Equal(t, want, types.TypeString(sc.Type), "scenario %q: binding %q", fx.Name, name)
			}
		})
	}
}
