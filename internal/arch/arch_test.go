// internal/arch/arch_test.go
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
	cmd := exec.Command("go", "list", "-json", "./...", "ngsio-core/...")
	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		t.Fatalf("go list: %v", err)
	}
	dec := json.NewDecoder(&out)

	leaf := []string{
		"ngsio/internal/appcore", "ngsio/internal/app",
		"ngsio/internal/cli", "ngsio/cmd/",
	}
	bans := map[string][]string{
		"ngsio/internal/writers": append(leaf, "ngsio/internal/formats", "ngsio/internal/regions"),
		"ngsio/internal/output":  append(leaf, "ngsio/internal/writers", "ngsio/internal/formats"),
		"ngsio/internal/formats": append(leaf, "ngsio/internal/writers", "ngsio/internal/output"),
		"ngsio/internal/regions": append(leaf, "ngsio/internal/writers", "ngsio/internal/output"),
		"ngsio/internal/cmdutil": leaf,
		"ngsio/pkg/":             {"ngsio/internal/", "ngsio/cmd/"},
		// The core module is a library; it never reaches back into the CLI.
		"ngsio-core/": {"ngsio/"},
	}

	var violations []string
	for {
		var p pkg
		if err := dec.Decode(&p); err == io.EOF {
			break
		} else if err != nil {
			t.Fatalf("decode: %v", err)
		}
		if !ours(p.ImportPath) {
			continue
		}
		imp := p.ImportPath
		for prefix, forbidden := range bans {
			if !strings.HasPrefix(imp, prefix) {
				continue
			}
			for _, dep := range p.Imports {
				if !ours(dep) {
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

func ours(path string) bool {
	return strings.HasPrefix(path, "ngsio/") || strings.HasPrefix(path, "ngsio-core/")
}
