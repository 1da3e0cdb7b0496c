package main

import (
	"log"
	"net/http"

	"matecheck/engine"
	"matecheck/server"
	"matecheck/storage"
)

func serve(addr, cacheDir string) error {
	log.Println("============ serve")

	var store *storage.Store
	if cacheDir != "" {
		var err error
		store, err = storage.Open(cacheDir)
		if err != nil {
			return err
		}
		defer store.Close()
		log.Printf("verdict cache enabled: %s\n", cacheDir)
	}

	s := server.New(engine.NewOracle(engine.WithParallelSearch(0)), store)
	log.Printf("listening on %s\n", addr)
	return http.ListenAndServe(addr, s)
}
