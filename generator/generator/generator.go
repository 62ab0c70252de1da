package generator

import (
	"bytes"
	"embed"
	"fmt"
	"go/format"
	"go/token"
	"io"
	"os"
	"path/filepath"
	"text/template"

	"golang.org/x/tools/go/packages"
)

var (
	//go:embed templates/*
	templates embed.FS
)

// Generate writes the import declarations for the package containing
// fileName to dir/out.
func Generate(dir string, fileName string, apiPath string, out string) error {
	fset := token.NewFileSet()
	pkgs, err := packages.Load(&packages.Config{
		Dir:  dir,
		Fset: fset,
		Mode: packages.NeedName,
	}, fmt.Sprintf("file=%s", fileName))
	if err != nil {
		return err
	}
	if len(pkgs) == 0 {
		return fmt.Errorf("no package contains %s", fileName)
	}

	a, err := LoadAPI(filepath.Join(dir, apiPath))
	if err != nil {
		return err
	}

	data := TemplateData{
		Pkg:       pkgs[0].Name,
		PkgPath:   pkgs[0].PkgPath,
		Source:    filepath.Base(apiPath),
		Module:    a.Module,
		Functions: a.Functions,
	}

	return WriteImports(filepath.Join(dir, out), data)
}

// WriteImports renders data and writes it to path. The file is left
// untouched when rendering fails.
func WriteImports(path string, data TemplateData) (err error) {
	var buf bytes.Buffer
	if err := Render(&buf, data); err != nil {
		return err
	}

	fileWriter, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := fileWriter.Close(); err == nil {
			err = closeErr
		}
	}()

	_, err = buf.WriteTo(fileWriter)
	return err
}

var TemplateFunctions = template.FuncMap{
	"paramType":  paramGoType,
	"resultType": resultGoType,
}

// Render executes the imports template and writes the formatted source to w.
func Render(w io.Writer, data TemplateData) error {
	tmpl, err := template.New("").
		Funcs(TemplateFunctions).
		ParseFS(templates, "templates/*.tmpl")
	if err != nil {
		return err
	}

	writer := bytes.NewBuffer(nil)
	err = tmpl.ExecuteTemplate(writer, "imports.tmpl", data)
	if err != nil {
		return err
	}

	fileBytes := writer.Bytes()
	formattedSource, err := format.Source(fileBytes)
	if err != nil {
		return fmt.Errorf("could not format imports.tmpl: %w\nsource:\n%s", err, fileBytes)
	}

	_, err = w.Write(formattedSource)
	return err
}

type TemplateData struct {
	Pkg       string
	PkgPath   string
	Source    string
	Module    string
	Functions []Function
}
