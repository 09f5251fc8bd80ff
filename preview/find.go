package preview

import (
	"fmt"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"

	"github.com/npillmayer/cascade/model"
)

// Find returns the elements of a rendered HTML document which the preview
// rule of an instance applies to, in document order.
func Find(doc *html.Node, id model.InstanceID) ([]*html.Node, error) {
	sel, err := cascadia.Compile(Selector(id))
	if err != nil {
		return nil, fmt.Errorf("preview: no selector for instance %q: %w", id, err)
	}
	return sel.MatchAll(doc), nil
}
