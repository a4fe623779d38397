package driver

import (
	"jsfmt/internal/diag"
	"jsfmt/internal/lexer"
	"jsfmt/internal/source"
	"jsfmt/internal/token"
)

// TokenizeResult carries everything the CLI needs to render a token dump.
type TokenizeResult struct {
	FileSet *source.FileSet
	FileID  source.FileID
	Tokens  []token.Token
	Bag     *diag.Bag
}

// TokenizeFile loads and scans a single file.
func TokenizeFile(path string, maxDiag int) (*TokenizeResult, error) {
	if maxDiag <= 0 {
		maxDiag = maxDiagnostics
	}
	fileSet := source.NewFileSet()
	fileID, err := fileSet.Load(path)
	if err != nil {
		return nil, err
	}
	return tokenizeLoaded(fileSet, fileID, maxDiag), nil
}

// TokenizeSource scans in-memory content under the given display name.
func TokenizeSource(name string, content []byte, maxDiag int) *TokenizeResult {
	if maxDiag <= 0 {
		maxDiag = maxDiagnostics
	}
	fileSet := source.NewFileSet()
	fileID := fileSet.AddVirtual(name, content)
	return tokenizeLoaded(fileSet, fileID, maxDiag)
}

func tokenizeLoaded(fileSet *source.FileSet, fileID source.FileID, maxDiag int) *TokenizeResult {
	bag := diag.NewBag(maxDiag)
	tokens := lexer.Tokenize(fileSet.Get(fileID), lexer.Options{Reporter: diag.BagReporter{Bag: bag}})
	return &TokenizeResult{
		FileSet: fileSet,
		FileID:  fileID,
		Tokens:  tokens,
		Bag:     bag,
	}
}
