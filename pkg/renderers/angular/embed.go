package angular

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tpl
var embeddedTemplates embed.FS

// templatesFS exposes the template files at the root so template names stay
// free of the embed directory prefix.
var templatesFS = func() fs.FS {
	sub, err := fs.Sub(embeddedTemplates, "templates")
	if err != nil {
		panic(err)
	}
	return sub
}()
