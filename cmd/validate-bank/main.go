package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/quizboard/quizboard-backend/internal/bank"
)

// validate-bank checks a question bank file from the command line, the
// ops-side counterpart of the interactive upload validator. Exit code 0
// means the file is valid at the requested strictness level.
func main() {
	var (
		file   string
		strict bool
	)
	flag.StringVar(&file, "file", "", "Path to the bank file to validate")
	flag.BoolVar(&strict, "strict", false, "Require a non-empty subject (auto-discovery rules)")
	flag.Parse()

	if file == "" {
		flag.PrintDefaults()
		os.Exit(2)
	}

	raw, err := os.ReadFile(file)
	if err != nil {
		log.Fatalf("Read failed: %v", err)
	}

	if strict {
		if !bank.Strict(raw) {
			fmt.Println("INVALID (strict)")
			os.Exit(1)
		}
		fmt.Println("OK")
		return
	}

	result := bank.Diagnostic(raw)
	if !result.Valid {
		fmt.Printf("INVALID: %s\n", result.Summary())
		os.Exit(1)
	}
	fmt.Println("OK")
}
