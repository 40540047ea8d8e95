package entities

import (
	"os"
	"strings"
	"unicode/utf8"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/zclconf/go-cty/cty"
)

// hclSettings mirrors Settings with block syntax:
//
//	change_env = false
//	file {
//	  path = "package.json"
//	  type = "json"
//	}
//	subproject "packages/api" {
//	  file {
//	    path = ".env"
//	    type = "env"
//	    key  = env.API_VERSION_KEY
//	  }
//	}
type hclSettings struct {
	ChangeEnv    *bool           `hcl:"change_env,optional"`
	SkipGitCheck *bool           `hcl:"skip_git_check,optional"`
	Files        []hclFileTarget `hcl:"file,block"`
	Subprojects  []hclSubproject `hcl:"subproject,block"`
}

type hclFileTarget struct {
	Path  string  `hcl:"path"`
	Type  string  `hcl:"type"`
	Field *string `hcl:"field,optional"`
	Key   *string `hcl:"key,optional"`
}

type hclSubproject struct {
	Dir   string          `hcl:"dir,label"`
	Files []hclFileTarget `hcl:"file,block"`
}

func decodeHCLSettings(path string, data []byte) (*Settings, error) {
	var raw hclSettings
	if err := hclsimple.Decode(path, data, newHCLEvalContext(), &raw); err != nil {
		return nil, err
	}

	settings := &Settings{
		ChangeEnv: raw.ChangeEnv,
		Files:     convertHCLFiles(raw.Files),
	}
	if raw.SkipGitCheck != nil {
		settings.SkipGitCheck = *raw.SkipGitCheck
	}
	for _, sub := range raw.Subprojects {
		settings.Subprojects = append(settings.Subprojects, Subproject{
			Dir:   sub.Dir,
			Files: convertHCLFiles(sub.Files),
		})
	}
	return settings, nil
}

func convertHCLFiles(raw []hclFileTarget) []FileTarget {
	files := make([]FileTarget, 0, len(raw))
	for _, file := range raw {
		target := FileTarget{Path: file.Path, Kind: FileKind(file.Type)}
		if file.Field != nil {
			target.Field = *file.Field
		}
		if file.Key != nil {
			target.Key = *file.Key
		}
		files = append(files, target)
	}
	return files
}

// newHCLEvalContext exposes the process environment as the `env` object.
func newHCLEvalContext() *hcl.EvalContext {
	vars := make(map[string]cty.Value)
	for _, entry := range os.Environ() {
		name, value, ok := strings.Cut(entry, "=")
		if !ok || name == "" || !utf8.ValidString(name) || !utf8.ValidString(value) {
			continue
		}
		vars[name] = cty.StringVal(value)
	}

	envVal := cty.EmptyObjectVal
	if len(vars) > 0 {
		envVal = cty.ObjectVal(vars)
	}

	return &hcl.EvalContext{
		Variables: map[string]cty.Value{"env": envVal},
	}
}
