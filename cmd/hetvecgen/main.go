// The hetvecgen command generates heterogeneous collection types
// from a hetvec.yaml file. It is usually run with go generate:
//
//	//go:generate go run github.com/rogpeppe/hetvec/cmd/hetvecgen
//
// See package github.com/rogpeppe/hetvec for the shape of the
// generated code.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/rogpeppe/hetvec/internal/gen"
)

var (
	configFlag  = flag.String("config", "hetvec.yaml", "configuration file, relative to -dir")
	dirFlag     = flag.String("dir", ".", "package directory")
	verboseFlag = flag.Bool("v", false, "print debug messages")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: hetvecgen [flags]\n")
		flag.PrintDefaults()
		os.Exit(2)
	}
	flag.Parse()
	if flag.NArg() > 0 {
		flag.Usage()
	}
	logger := newLogger(*verboseFlag)
	defer logger.Sync()
	if err := run(logger, *dirFlag, *configFlag); err != nil {
		fmt.Fprintf(os.Stderr, "hetvecgen: %v\n", err)
		os.Exit(1)
	}
}

func run(logger *zap.Logger, dir, configFile string) error {
	cfg, err := gen.LoadConfig(filepath.Join(dir, configFile))
	if err != nil {
		return err
	}
	g := &gen.Generator{
		Dir:    dir,
		Logger: logger,
	}
	_, err = g.Generate(cfg)
	return err
}

func newLogger(verbose bool) *zap.Logger {
	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}
	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.TimeKey = ""
	if isatty.IsTerminal(os.Stderr.Fd()) {
		encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.Lock(os.Stderr),
		level,
	)
	return zap.New(core)
}
