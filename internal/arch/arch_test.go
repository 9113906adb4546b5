// ./internal/arch/arch_test.go
package arch

import (
	"bytes"
	"encoding/json"
	"io"
	"os/exec"
	"strings"
	"testing"
)

type pkg struct {
	ImportPath string
	Imports    []string
	Standard   bool
}

func TestImportBoundaries(t *testing.T) {
	cmd := exec.Command("go", "list", "-json", "./...")
	cmd.Dir = "../.."
	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		t.Fatalf("go list: %v", err)
	}
	dec := json.NewDecoder(&out)

	outer := []string{"fxtools/internal/app", "fxtools/internal/cli", "fxtools/cmd/"}
	bans := map[string][]string{
		"fxtools/internal/fastx":    append([]string{"fxtools/internal/pipeline", "fxtools/internal/stats", "fxtools/internal/gaps", "fxtools/internal/output"}, outer...),
		"fxtools/internal/pipeline": append([]string{"fxtools/internal/stats", "fxtools/internal/gaps", "fxtools/internal/output"}, outer...),
		"fxtools/internal/stats":    append([]string{"fxtools/internal/fastx", "fxtools/internal/pipeline", "fxtools/internal/output"}, outer...),
		"fxtools/internal/gaps":     append([]string{"fxtools/internal/pipeline", "fxtools/internal/stats", "fxtools/internal/output"}, outer...),
		"fxtools/internal/output":   append([]string{"fxtools/internal/fastx", "fxtools/internal/pipeline", "fxtools/internal/gaps"}, outer...),
	}

	var violations []string
	for {
		var p pkg
		if err := dec.Decode(&p); err == io.EOF {
			break
		} else if err != nil {
			t.Fatalf("decode: %v", err)
		}
		if !strings.HasPrefix(p.ImportPath, "fxtools/") {
			continue
		}
		imp := p.ImportPath
		for prefix, forbidden := range bans {
			if !strings.HasPrefix(imp, prefix) {
				continue
			}
			for _, dep := range p.Imports {
				if !strings.HasPrefix(dep, "fxtools/") {
					continue
				}
				for _, ban := range forbidden {
					if strings.HasPrefix(dep, ban) {
						violations = append(violations, imp+" → "+dep)
					}
				}
			}
		}
	}

	if len(violations) > 0 {
		t.Fatalf("import boundary violations:\n  %s", strings.Join(violations, "\n  "))
	}
}
