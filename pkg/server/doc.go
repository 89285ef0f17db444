// Package server serves rendered documents over HTTP.
//
// Pages are functions from a request to a render.Document. Responses
// stream progressively: chunks go to the client while the tree is
// still being traversed, which also means each page's stylesheet is
// emitted at the end of its body.
//
//	srv := server.New(server.Config{Addr: ":8080"}, server.WithMetrics())
//	srv.Handle("/", func(r *http.Request) (*render.Document, error) {
//	    return &render.Document{Title: "Home", Body: home()}, nil
//	})
//	log.Fatal(srv.ListenAndServe())
//
// Dev mode adds a websocket live-reload hub at /.vellum/reload and
// injects its client script into every served document.
package server
