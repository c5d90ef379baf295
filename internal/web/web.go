// internal/web/web.go
//
// The playable client page.
//
// The page is a single embedded HTML document. The autocomplete list is
// injected once at construction from the alias table, so the page always
// matches the languages the server can actually name. Scores are kept in
// the browser's localStorage; the server never sees them.

package web

import (
	"context"
	_ "embed"
	"encoding/json"
	"io"
	"strings"

	"github.com/a-h/templ"
)

//go:embed index.html
var indexHTML string

// languagesMarker is replaced by a JSON array of display names.
const languagesMarker = "[/*LANGUAGES*/]"

// Index returns the client page with names offered for autocomplete.
func Index(names []string) templ.Component {
	if names == nil {
		names = []string{}
	}
	// json.Marshal escapes <, > and &, which keeps the array safe inside <script>.
	list, _ := json.Marshal(names)
	page := strings.Replace(indexHTML, languagesMarker, string(list), 1)

	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, page)
		return err
	})
}
