package listclient

import (
	"fmt"
	"net/http"
	"net/url"
)

// Revision selects which REST paths and controls a client uses.
type Revision int

const (
	// Revision1 lists and creates items only.
	Revision1 Revision = 1
	// Revision2 adds the done toggle on the unprefixed paths.
	Revision2 Revision = 2
	// Revision3 moves everything under /items and adds removal.
	Revision3 Revision = 3

	Latest = Revision3
)

// ParseRevision validates a revision number from flags or the environment.
func ParseRevision(n int) (Revision, error) {
	r := Revision(n)
	if r < Revision1 || r > Revision3 {
		return 0, fmt.Errorf("unknown api revision %d (want 1, 2 or 3)", n)
	}
	return r, nil
}

// HasDoneControl reports whether items get a done toggle.
func (r Revision) HasDoneControl() bool { return r >= Revision2 }

// HasRemoveControl reports whether items get a remove control.
func (r Revision) HasRemoveControl() bool { return r >= Revision3 }

type endpoint struct {
	method string
	path   string
}

func (r Revision) listEndpoint() endpoint {
	return endpoint{http.MethodGet, "/items"}
}

func (r Revision) createEndpoint() endpoint {
	if r >= Revision3 {
		return endpoint{http.MethodPost, "/items/create"}
	}
	return endpoint{http.MethodPost, "/create"}
}

func (r Revision) updateEndpoint(id string) endpoint {
	if r >= Revision3 {
		return endpoint{http.MethodPut, "/items/update/" + url.PathEscape(id)}
	}
	return endpoint{http.MethodPut, "/update/" + url.PathEscape(id)}
}

func (r Revision) deleteEndpoint(id string) endpoint {
	return endpoint{http.MethodDelete, "/items/delete/" + url.PathEscape(id)}
}
