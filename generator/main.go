package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/dergwasm/go-resonite/generator/generator"
)

var (
	fileName string
	apiFile  *string
	out      *string
	verbose  *bool
)

func init() {
	fileName = os.Getenv("GOFILE")
	apiFile = flag.String("api", "resonite_api.yaml", "the API table to generate imports from")
	out = flag.String("out", "imports_wasip1.go", "the file to write")
	verbose = flag.Bool("v", false, "enable verbose logging")
}

func Usage() {
	fmt.Fprintf(os.Stderr, "Usage of go-resonite/generator:\n")
	fmt.Fprintf(os.Stderr, "  go run ./generator -api resonite_api.yaml -out imports_wasip1.go\n")
	fmt.Fprintf(os.Stderr, "Run through go:generate, which sets $GOFILE.\n\n")
	flag.PrintDefaults()
}

func main() {
	flag.Usage = Usage
	flag.Parse()

	config := zap.NewDevelopmentConfig()
	if !*verbose {
		config.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}
	logger, err := config.Build()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	if fileName == "" {
		logger.Fatal("GOFILE is not set, run the generator through go:generate")
	}

	dir, err := filepath.Abs(".")
	if err != nil {
		logger.Fatal("could not resolve working directory", zap.Error(err))
	}

	logger.Info("generating imports",
		zap.String("dir", dir),
		zap.String("file", fileName),
		zap.String("api", *apiFile),
		zap.String("out", *out))

	err = generator.Generate(dir, fileName, *apiFile, *out)
	if err != nil {
		logger.Fatal("could not generate imports", zap.Error(err))
	}
}
