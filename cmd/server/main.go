package main

import (
	"flag"
	"log"
	"net/http"
	"os"

	"github.com/julian-carbajal/tic-tac-toe/internal/app"
	"github.com/julian-carbajal/tic-tac-toe/internal/web"
)

func main() {
	addr := flag.String("addr", ":"+getenv("PORT", "8080"), "listen address")
	flag.Parse()

	svc := app.NewService()
	handler := web.NewServer(svc)

	log.Printf("server listening on %s", *addr)
	if err := http.ListenAndServe(*addr, handler); err != nil {
		log.Fatal(err)
	}
}

func getenv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}
