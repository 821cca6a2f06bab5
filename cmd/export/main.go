// Command-line tool to project a local snapshot file into the CSV or JSON
// transfer format without running the server.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"TalentBoard-backend/internal/intake"
	"TalentBoard-backend/internal/model"
	"TalentBoard-backend/internal/store"
)

func main() {
	var (
		path   = flag.String("snapshot", store.SnapshotFile, "path to the local snapshot file")
		format = flag.String("format", "csv", "output format: csv or json")
	)
	flag.Parse()

	data, err := os.ReadFile(*path)
	if err != nil {
		log.Fatalf("cannot read snapshot: %v", err)
	}

	state, err := intake.ImportJSON(data)
	if err != nil {
		log.Fatalf("cannot parse snapshot: %v", err)
	}

	switch *format {
	case "json":
		out, err := intake.ExportJSON(state)
		if err != nil {
			log.Fatalf("cannot serialize state: %v", err)
		}
		fmt.Println(string(out))
	case "csv":
		var candidates []model.Candidate
		for _, job := range state.Jobs {
			candidates = append(candidates, job.Candidates...)
		}
		os.Stdout.Write(intake.ExportCSV(candidates))
	default:
		log.Fatalf("unknown format %q", *format)
	}
}
