package main

import (
	"flag"
	"log"
	"net/http"

	"islandgen/internal/app"
	"islandgen/internal/island"
	"islandgen/internal/server"
)

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	settings := flag.String("settings", "settings.json", "JSON settings file")
	seed := flag.Int64("seed", 0, "seed for the first generation (0 uses the configured seed)")
	overrides := app.Overrides{}
	flag.Var(overrides, "set", "override a parameter as key=value (repeatable)")
	flag.Parse()

	base, err := island.LoadSettings(*settings)
	if err != nil {
		log.Fatalf("load settings: %v", err)
	}
	gen, err := island.NewGenerator(island.Merge(base, overrides))
	if err != nil {
		log.Fatalf("configure generator: %v", err)
	}
	if err := gen.Reset(*seed); err != nil {
		log.Fatalf("generate: %v", err)
	}
	res := gen.Current()
	log.Printf("generated %dx%d island with seed %d in %v", res.Field.W, res.Field.H, res.Seed, res.Elapsed)

	srv := server.New(gen)
	log.Printf("serving on %s (/ws, /result)", *addr)
	log.Fatal(http.ListenAndServe(*addr, srv.Handler()))
}
