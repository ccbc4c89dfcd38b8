package web

import (
	"io/fs"
	"net/http"
)

// RegisterRoutes registers the shell at /, the embedded static assets at
// /static/ and the wasm bundle directory at /assets/.
func RegisterRoutes(mux *http.ServeMux, h *Handler, assetsDir string) {
	// Static assets (embedded via go:embed).
	staticFS, _ := fs.Sub(StaticFS, "static")
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServerFS(staticFS)))

	// Browser bundle built out of tree (portfolio.wasm, wasm_exec.js).
	mux.Handle("GET /assets/", http.StripPrefix("/assets/", http.FileServer(http.Dir(assetsDir))))

	mux.HandleFunc("GET /{$}", h.Index)
}
