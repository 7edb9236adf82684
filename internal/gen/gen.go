package gen

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// Generator generates the collection types declared in a
// configuration for the package in a directory.
type Generator struct {
	// Dir holds the package directory.
	Dir string

	// Logger receives progress messages. If it is nil,
	// nothing is logged.
	Logger *zap.Logger
}

// Generate writes the code for cfg to its output file
// in g.Dir and returns the path of the file written.
func (g *Generator) Generate(cfg *Config) (string, error) {
	logger := g.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := cfg.Validate(); err != nil {
		return "", err
	}
	pkg, err := LoadPackage(g.Dir, cfg.OutputFile(), logger)
	if err != nil {
		return "", err
	}
	f, err := Resolve(pkg, cfg)
	if err != nil {
		return "", err
	}
	for _, c := range f.Collections {
		logger.Debug("resolved collection",
			zap.String("name", c.Name),
			zap.Int("types", len(c.Elems)),
			zap.Int("visitors", len(c.Visitors)),
		)
	}
	path := filepath.Join(g.Dir, cfg.OutputFile())
	src, err := Render(path, f)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, src, 0o644); err != nil {
		return "", fmt.Errorf("writing output: %w", err)
	}
	logger.Info("wrote collections", zap.String("file", path), zap.Int("collections", len(f.Collections)))
	return path, nil
}
