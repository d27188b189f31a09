package transport

import (
	"net/http"
	"os"
	"path/filepath"
)

// spaHandler serves the static browser UI. Unknown paths fall back to the
// index file so client-side routing keeps working after a refresh.
type spaHandler struct {
	staticDir string
	indexFile string
}

func (h spaHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := filepath.Join(h.staticDir, filepath.Clean("/"+r.URL.Path))

	info, err := os.Stat(path)
	if os.IsNotExist(err) || (err == nil && info.IsDir() && r.URL.Path != "/") {
		http.ServeFile(w, r, filepath.Join(h.staticDir, h.indexFile))
		return
	}
	if err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	http.FileServer(http.Dir(h.staticDir)).ServeHTTP(w, r)
}
