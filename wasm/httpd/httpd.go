// A small development server for the wasm build. Files are served from the
// www directory with the correct content type for wasm binaries.
package main

import (
	"log"
	"net/http"
	"strings"
)

type handler struct {
	fileHandler http.Handler
}

func newHandler() *handler {
	return &handler{
		fileHandler: http.FileServer(http.Dir("www")),
	}
}

func (hnd *handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	log.Printf("%s %s", r.Method, r.RequestURI)
	if strings.HasSuffix(r.RequestURI, ".wasm") {
		w.Header().Set("Content-Type", "application/wasm")
	}
	hnd.fileHandler.ServeHTTP(w, r)
}

func main() {
	log.Println("test server listening on localhost:8080")
	err := http.ListenAndServe(":8080", newHandler())
	if err != nil {
		log.Fatalln(err.Error())
	}
}
