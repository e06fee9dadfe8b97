package expr

import (
	"strings"

	"github.com/google/cel-go/cel"
	"github.com/google/cel-go/common/types"
	"github.com/google/cel-go/common/types/ref"
	"github.com/google/cel-go/ext"
	"golang.org/x/text/language"
)

type lib struct{}

func (lib) CompileOptions() []cel.EnvOption {
	return []cel.EnvOption{
		ext.Strings(),
		ext.Lists(),

		cel.Variable("id", cel.StringType),
		cel.Variable("name", cel.StringType),
		cel.Variable("displayName", cel.StringType),
		cel.Variable("flag", cel.StringType),
		cel.Variable("language", cel.StringType),
		cel.Variable("region", cel.StringType),
		cel.Variable("ltr", cel.BoolType),
		cel.Variable("rtl", cel.BoolType),

		// `langBase` returns the base language of a BCP 47 tag.
		// Example: language == langBase("en_AU").
		cel.Function("langBase",
			cel.Overload("lang_base_string", []*cel.Type{cel.StringType}, cel.StringType,
				cel.UnaryBinding(func(tag ref.Val) ref.Val {
					tagValue, ok := tag.(types.String).Value().(string)
					if !ok {
						return types.NewErr("langBase: invalid string value")
					}

					return types.String(langBase(tagValue))
				}),
			),
		),
	}
}

func (lib) ProgramOptions() []cel.ProgramOption {
	return []cel.ProgramOption{}
}

// langBase returns the base language subtag of tag, or an empty string if
// tag cannot be parsed.
func langBase(tag string) string {
	t, err := language.Parse(strings.ReplaceAll(tag, "_", "-"))
	if err != nil {
		return ""
	}

	base, _ := t.Base()

	return base.String()
}
