package gen

import (
	"errors"
	"fmt"
	"go/parser"
	"go/token"
	"go/types"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"golang.org/x/tools/go/packages"
)

// LoadPackage loads and type-checks the Go package in dir.
//
// If the output file already exists, it is replaced by an empty file
// for the duration of the load, so that a stale generated file cannot
// stop the package from type-checking. Type errors are logged but
// are otherwise ignored: the declarations needed by the generator
// are usually still available.
func LoadPackage(dir, output string, logger *zap.Logger) (*types.Package, error) {
	cfg := &packages.Config{
		Mode: packages.NeedName |
			packages.NeedTypes |
			packages.NeedTypesInfo |
			packages.NeedSyntax,
		Dir: dir,
	}
	overlay, err := emptyOverlay(filepath.Join(dir, output))
	if err != nil {
		return nil, err
	}
	cfg.Overlay = overlay

	pkgs, err := packages.Load(cfg, ".")
	if err != nil {
		return nil, fmt.Errorf("loading package: %w", err)
	}
	if len(pkgs) != 1 {
		return nil, fmt.Errorf("found %d packages in %s; want 1", len(pkgs), dir)
	}
	pkg := pkgs[0]
	for _, e := range pkg.Errors {
		logger.Warn("package error", zap.String("pkg", pkg.PkgPath), zap.String("error", e.Error()))
	}
	if pkg.Types == nil || (pkg.Types.Scope().Len() == 0 && len(pkg.Errors) > 0) {
		return nil, fmt.Errorf("package %s: %w", pkg.PkgPath, packageErrors(pkg.Errors))
	}
	logger.Debug("loaded package",
		zap.String("pkg", pkg.PkgPath),
		zap.Int("files", len(pkg.GoFiles)),
	)
	return pkg.Types, nil
}

// emptyOverlay returns an overlay replacing the file at path by just its
// package clause. It returns nil if the file does not exist.
func emptyOverlay(path string) (map[string][]byte, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	f, err := parser.ParseFile(token.NewFileSet(), abs, nil, parser.PackageClauseOnly)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading existing output: %w", err)
	}
	return map[string][]byte{
		abs: fmt.Appendf(nil, "package %s\n", f.Name.Name),
	}, nil
}

func packageErrors(errs []packages.Error) error {
	list := make([]error, len(errs))
	for i, e := range errs {
		list[i] = e
	}
	return errors.Join(list...)
}
