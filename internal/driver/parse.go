package driver

import (
	"fortio.org/safecast"

	"citrine/internal/diag"
	"citrine/internal/parser"
	"citrine/internal/reader"
	"citrine/internal/source"
	"citrine/internal/syntax"
)

type ParseResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tree    *syntax.Tree
	Bag     *diag.Bag
}

// Parse loads and parses one file into a lossless tree.
func Parse(path string, maxDiagnostics int) (*ParseResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	return parseFile(fs, fileID, maxDiagnostics)
}

// ParseSource parses an in-memory buffer.
func ParseSource(name string, src []byte, maxDiagnostics int) (*ParseResult, error) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual(name, src)
	return parseFile(fs, fileID, maxDiagnostics)
}

func parseFile(fs *source.FileSet, fileID source.FileID, maxDiagnostics int) (*ParseResult, error) {
	file := fs.Get(fileID)
	bag := diag.NewBag(maxDiagnostics)

	maxErrors, err := safecast.Conv[uint](max(maxDiagnostics, 0))
	if err != nil {
		return nil, err
	}
	result := parser.ParseFile(file, parser.Options{
		Reporter:  &diag.BagReporter{Bag: bag},
		MaxErrors: maxErrors,
	})

	return &ParseResult{
		FileSet: fs,
		File:    file,
		Tree:    result.Tree,
		Bag:     bag,
	}, nil
}

type ReadResult struct {
	*ParseResult
	Values []reader.Value
}

// Read parses a file and converts it to values.
func Read(path string, maxDiagnostics int) (*ReadResult, error) {
	pr, err := Parse(path, maxDiagnostics)
	if err != nil {
		return nil, err
	}
	values := reader.ReadTree(pr.Tree, reader.Options{
		Reporter: &diag.BagReporter{Bag: pr.Bag},
	})
	return &ReadResult{ParseResult: pr, Values: values}, nil
}
