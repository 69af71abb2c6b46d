package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"draftlens/internal/config"
	"draftlens/internal/critique"
	"draftlens/internal/engine"
	"draftlens/internal/ingest"
	"draftlens/internal/issues"
	"draftlens/internal/pipeline"
	"draftlens/internal/report"
	"draftlens/internal/store"
	"draftlens/internal/workspace"
	"draftlens/server"
)

func main() {
	serve := flag.Bool("serve", false, "start the HTTP server")
	addr := flag.String("addr", "", "listen address when --serve (overrides DRAFTLENS_ADDR)")
	writeReport := flag.Bool("report", false, "write a feedback report per draft into the workspace exports")
	criteria := flag.String("criteria", "", "semicolon-separated success criteria; adds an AI critique to each report")
	verbose := flag.Bool("v", false, "enable debug logs")
	flag.Parse()

	if *verbose {
		log.SetLevel(log.DebugLevel)
	}

	cfg := config.Load()

	root := cfg.Workspace
	var err error
	if root == "" {
		root, err = workspace.EnsureDefault()
	} else {
		root, err = workspace.EnsureAt(root)
	}
	if err != nil {
		log.Fatal("workspace initialization failed", "error", err)
	}

	if *serve {
		runServer(cfg, root, *addr)
		return
	}

	files := flag.Args()
	if len(files) == 0 {
		fmt.Fprintln(os.Stderr, "usage: draftlens [flags] <draft files...> | draftlens --serve")
		flag.PrintDefaults()
		os.Exit(2)
	}
	runAnalysis(cfg, root, files, *writeReport, splitCriteria(*criteria))
}

func splitCriteria(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	var out []string
	for _, c := range strings.Split(raw, ";") {
		if c = strings.TrimSpace(c); c != "" {
			out = append(out, c)
		}
	}
	return out
}

func runServer(cfg config.Config, root, addrOverride string) {
	llm, err := critique.NewOpenAILLM(critique.LLMSettings{
		APIKey:  cfg.APIKey,
		Model:   cfg.Model,
		BaseURL: cfg.BaseURL,
	})
	if err != nil {
		log.Fatal("llm setup failed", "error", err)
	}
	orch, err := critique.NewOrchestrator(llm)
	if err != nil {
		log.Fatal("orchestrator setup failed", "error", err)
	}
	st, err := store.Open(workspace.StorePath(root))
	if err != nil {
		log.Fatal("store open failed", "error", err)
	}
	defer st.Close()

	srv, err := server.New(orch, st, root)
	if err != nil {
		log.Fatal("server setup failed", "error", err)
	}

	listen := cfg.Addr
	if addrOverride != "" {
		listen = addrOverride
	}
	log.Info("draftlens listening", "addr", listen, "workspace", root)
	if err := http.ListenAndServe(listen, srv.Routes()); err != nil {
		log.Fatal("server stopped", "error", err)
	}
}

func runAnalysis(cfg config.Config, root string, files []string, writeReport bool, criteria []string) {
	var orch *critique.Orchestrator
	if len(criteria) > 0 {
		llm, err := critique.NewOpenAILLM(critique.LLMSettings{
			APIKey:  cfg.APIKey,
			Model:   cfg.Model,
			BaseURL: cfg.BaseURL,
		})
		if err != nil {
			log.Fatal("llm setup failed", "error", err)
		}
		orch, err = critique.NewOrchestrator(llm)
		if err != nil {
			log.Fatal("orchestrator setup failed", "error", err)
		}
	}

	jobs := make([]pipeline.Job, 0, len(files))
	for _, path := range files {
		draft, err := ingest.ParseFile(path)
		if err != nil {
			log.Error("skipping file", "path", path, "error", err)
			continue
		}
		jobs = append(jobs, pipeline.Job{Name: draft.Title, Text: draft.Text})
	}

	workers := cfg.Workers
	if orch != nil {
		// One critique in flight at a time, same rule as the server.
		workers = 1
	}
	errs := pipeline.AnalyzeDrafts(jobs, workers, func(job pipeline.Job) error {
		snap := engine.Analyze(job.Text)
		printSnapshot(job.Name, snap)

		var result *critique.Result
		if orch != nil {
			var err error
			result, err = orch.Evaluate(context.Background(), critique.Request{Draft: job.Text, Criteria: criteria})
			if err != nil {
				return fmt.Errorf("critique %s: %w", job.Name, err)
			}
		}
		if writeReport {
			now := time.Now()
			content := report.Render(job.Name, job.Text, snap, result, now)
			path := filepath.Join(workspace.ExportsDir(root), "feedback-"+now.Format("20060102-150405")+"-"+job.Name+".txt")
			if err := report.Write(path, content); err != nil {
				return fmt.Errorf("write report for %s: %w", job.Name, err)
			}
			log.Info("report written", "path", path)
		}
		return nil
	})
	for _, err := range errs {
		log.Error("analysis failed", "error", err)
	}
	if len(errs) > 0 || len(jobs) == 0 {
		os.Exit(1)
	}
}

func printSnapshot(name string, snap engine.Snapshot) {
	var b strings.Builder
	m := snap.Metrics
	fmt.Fprintf(&b, "%s: %d words, %d sentences, avg %d words/sentence, reading time %s\n",
		name, m.WordCount, m.SentenceCount, m.AvgSentenceLength, m.ReadingTime())
	if snap.Issues.NotEnoughText {
		b.WriteString("  no text to analyze\n")
	} else if snap.Issues.Clean() {
		b.WriteString("  no issues found\n")
	} else {
		for _, kind := range issues.Kinds() {
			for _, issue := range snap.Issues.ByKind[kind] {
				if issue.SentenceIndex > 0 {
					fmt.Fprintf(&b, "  [%s] sentence %d: %s\n", kind, issue.SentenceIndex, issue.Excerpt)
				} else {
					fmt.Fprintf(&b, "  [%s] %s\n", kind, issue.Excerpt)
				}
			}
		}
	}
	if len(snap.Frequency) > 0 {
		top := make([]string, 0, len(snap.Frequency))
		for _, e := range snap.Frequency {
			top = append(top, fmt.Sprintf("%s(%d)", e.Word, e.Count))
		}
		fmt.Fprintf(&b, "  top words: %s\n", strings.Join(top, " "))
	}
	// One Print per draft keeps concurrent output unscrambled.
	fmt.Print(b.String())
}
