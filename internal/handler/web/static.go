package web

import (
	"net/http"
	"os"
	"path"
)

// noListingFS hides directories so that http.FileServer never renders a
// directory index.
type noListingFS struct {
	fs http.FileSystem
}

func (n noListingFS) Open(name string) (http.File, error) {
	f, err := n.fs.Open(name)
	if err != nil {
		return nil, err
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	if info.IsDir() {
		f.Close()
		return nil, os.ErrNotExist
	}

	return f, nil
}

// static serves files below staticDir. Missing files and directories get
// the same plain 404 as unknown routes.
func (h *Handler) static() http.Handler {
	fsys := noListingFS{fs: http.Dir(h.staticDir)}
	files := http.FileServer(fsys)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f, err := fsys.Open(path.Clean("/" + r.URL.Path))
		if err != nil {
			h.notFound(w, r)
			return
		}
		f.Close()

		files.ServeHTTP(w, r)
	})
}
