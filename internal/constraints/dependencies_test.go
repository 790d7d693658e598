package constraints

import (
	"errors"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

type goListPackage struct {
	ImportPath string
	Imports    []string
}

const (
	modulePath     = "github.com/jacoelho/lenient"
	internalPrefix = modulePath + "/internal/"
)

func TestCorePackageOnlyImportsDecodingInternals(t *testing.T) {
	t.Parallel()

	allowed := map[string]struct{}{
		internalPrefix + "decode": {},
		internalPrefix + "number": {},
	}

	var violations []string
	for _, pkg := range goList(t, ".") {
		for _, imp := range pkg.Imports {
			if !strings.HasPrefix(imp, modulePath+"/") {
				continue
			}
			if _, ok := allowed[imp]; !ok {
				violations = append(violations, pkg.ImportPath+" imports "+imp)
			}
		}
	}

	if len(violations) > 0 {
		t.Fatalf("found forbidden core imports:\n%s", strings.Join(violations, "\n"))
	}
}

func TestLeafPackagesDoNotImportModule(t *testing.T) {
	t.Parallel()

	var violations []string
	for _, pkg := range goList(t, "./internal/number", "./internal/stack") {
		for _, imp := range pkg.Imports {
			if strings.HasPrefix(imp, modulePath) {
				violations = append(violations, pkg.ImportPath+" imports "+imp)
			}
		}
	}

	if len(violations) > 0 {
		t.Fatalf("found module imports in leaf packages:\n%s", strings.Join(violations, "\n"))
	}
}

func TestDecoderOnlyImportsStack(t *testing.T) {
	t.Parallel()

	var violations []string
	for _, pkg := range goList(t, "./internal/decode") {
		for _, imp := range pkg.Imports {
			if strings.HasPrefix(imp, modulePath+"/") && imp != internalPrefix+"stack" {
				violations = append(violations, pkg.ImportPath+" imports "+imp)
			}
		}
	}

	if len(violations) > 0 {
		t.Fatalf("found forbidden decoder imports:\n%s", strings.Join(violations, "\n"))
	}
}

func TestLibraryPackagesAvoidSideEffectImports(t *testing.T) {
	t.Parallel()

	forbidden := map[string]struct{}{
		"os":       {},
		"flag":     {},
		"net/http": {},
		"log":      {},
	}

	packages := goList(t, ".", "./internal/decode", "./internal/number", "./internal/output", "./internal/stack")

	var violations []string
	for _, pkg := range packages {
		for _, imp := range pkg.Imports {
			if _, banned := forbidden[imp]; banned {
				violations = append(violations, pkg.ImportPath+" imports forbidden package "+imp)
			}
		}
	}

	if len(violations) > 0 {
		t.Fatalf("found forbidden imports in library packages:\n%s", strings.Join(violations, "\n"))
	}
}

// goList reports each matched package with its direct imports, one package
// per output line.
func goList(t *testing.T, patterns ...string) []goListPackage {
	t.Helper()

	args := append([]string{"list", "-f", "{{.ImportPath}}{{range .Imports}} {{.}}{{end}}"}, patterns...)
	cmd := exec.Command("go", args...)
	// go test runs in the package directory.
	cmd.Dir = filepath.Join("..", "..")

	out, err := cmd.Output()
	if err != nil {
		var stderr []byte
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			stderr = exitErr.Stderr
		}
		t.Fatalf("go list %v: %v\n%s", patterns, err, stderr)
	}

	var packages []goListPackage
	for _, line := range strings.Split(strings.TrimSpace(string(out)), "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		packages = append(packages, goListPackage{ImportPath: fields[0], Imports: fields[1:]})
	}

	if len(packages) == 0 {
		t.Fatalf("go list %v returned no packages", patterns)
	}

	return packages
}
