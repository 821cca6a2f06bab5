// Command api runs the TalentBoard HTTP server.
package main

import (
	"log"

	"TalentBoard-backend/internal/server"
)

// @title TalentBoard API
// @version 1.0
// @description Hiring pipeline tracker: jobs, candidates and stage-grouped board views.
// @BasePath /api/v1
func main() {
	srv := server.NewServer()

	log.Printf("Listening on %s", srv.Addr)
	if err := srv.ListenAndServe(); err != nil {
		log.Fatalf("cannot start server: %s", err)
	}
}
