package swagger

import (
	"fmt"
	"net/url"
	"path"
	"path/filepath"
)

// source is the single implementation behind the Source constructors. The
// kind tag is all the loader dispatches on, so one struct per kind would buy
// nothing.
type source struct {
	kind     SourceKind
	location string
}

func (s source) Kind() SourceKind {
	return s.kind
}

func (s source) Location() string {
	return s.location
}

// SourceFromFile identifies an on-disk document by path.
func SourceFromFile(p string) Source {
	return source{kind: SourceKindFile, location: filepath.Clean(p)}
}

// SourceFromFS identifies an entry inside the fs.FS configured on the loader.
func SourceFromFS(name string) Source {
	return source{kind: SourceKindFS, location: path.Clean(name)}
}

// SourceFromURL identifies a remote document. The URL is validated eagerly
// and an invalid one panics: a bad URL is a configuration mistake, not a
// runtime condition to recover from.
func SourceFromURL(raw string) Source {
	if raw == "" {
		panic("swagger: empty URL source")
	}
	if _, err := url.ParseRequestURI(raw); err != nil {
		panic(fmt.Sprintf("swagger: invalid URL %q: %v", raw, err))
	}
	return source{kind: SourceKindURL, location: raw}
}
