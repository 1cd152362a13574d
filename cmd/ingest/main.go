package main

import (
	"bufio"
	"context"
	"flag"
	"log"
	"os"
	"strings"
	"time"

	"sponsor-scout/internal/app"
	"sponsor-scout/internal/config"
)

// Reads posting URLs from -urls (comma separated), -file (one per
// line), or stdin, and runs one bookkept ingest against the source.
func main() {
	source := flag.String("source", "manual", "source name for this batch")
	urlsFlag := flag.String("urls", "", "comma separated posting urls")
	file := flag.String("file", "", "file with one posting url per line")
	timeout := flag.Duration("timeout", 10*time.Minute, "overall run timeout")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger := log.New(os.Stdout, "", log.LstdFlags)

	container, err := app.NewContainer(cfg, logger)
	if err != nil {
		log.Fatalf("failed to init container: %v", err)
	}
	defer func() {
		_ = container.Close()
	}()

	urls := collectURLs(*urlsFlag, *file)
	if len(urls) == 0 {
		log.Fatal("no urls given: use -urls, -file, or pipe urls on stdin")
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	stats, err := container.IngestRunner.Ingest(ctx, *source, "", urls)
	if err != nil {
		log.Fatalf("ingest failed: %v", err)
	}
	logger.Printf("[Ingest] complete | source=%s submitted=%d stored=%d failed=%d", *source, stats.Submitted, stats.Stored, stats.Failed)
}

func collectURLs(urlsFlag, file string) []string {
	var out []string
	for _, u := range strings.Split(urlsFlag, ",") {
		if u = strings.TrimSpace(u); u != "" {
			out = append(out, u)
		}
	}

	if file != "" {
		f, err := os.Open(file)
		if err != nil {
			log.Fatalf("open %s: %v", file, err)
		}
		defer f.Close()
		sc := bufio.NewScanner(f)
		for sc.Scan() {
			if u := strings.TrimSpace(sc.Text()); u != "" && !strings.HasPrefix(u, "#") {
				out = append(out, u)
			}
		}
		if err := sc.Err(); err != nil {
			log.Fatalf("read %s: %v", file, err)
		}
	}

	if len(out) == 0 {
		stat, err := os.Stdin.Stat()
		if err == nil && (stat.Mode()&os.ModeCharDevice) == 0 {
			sc := bufio.NewScanner(os.Stdin)
			for sc.Scan() {
				if u := strings.TrimSpace(sc.Text()); u != "" {
					out = append(out, u)
				}
			}
		}
	}
	return out
}
