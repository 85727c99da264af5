package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/dd0wney/cluso-compliance/pkg/catalog"
	"github.com/dd0wney/cluso-compliance/pkg/diagram"
	"github.com/dd0wney/cluso-compliance/pkg/document"
	"github.com/dd0wney/cluso-compliance/pkg/export"
	"github.com/dd0wney/cluso-compliance/pkg/metrics"
	"github.com/dd0wney/cluso-compliance/pkg/recommend"
)

func main() {
	topologyPath := flag.String("topology", "", "Topology YAML file (required)")
	systemName := flag.String("system", "", "System name for the SSP (required)")
	organization := flag.String("org", "", "Organization name")
	baseline := flag.String("baseline", "moderate", "Control baseline: low, moderate, high")
	policy := flag.String("unedited", "placeholder", "Unedited-controls policy: exclude, nist_text, placeholder")
	format := flag.String("format", "markdown", "Output format: json, markdown, text")
	outDir := flag.String("out", ".", "Output directory for the artifact")
	controlsFile := flag.String("controls", "", "Custom control catalog YAML (defaults to builtin)")
	controlIDs := flag.String("only", "", "Comma-separated control ids to restrict output to")
	passphrase := flag.String("passphrase", "", "Encrypt the artifact with this passphrase")
	s3Bucket := flag.String("s3-bucket", "", "Upload the artifact to this S3 bucket instead of disk")
	s3Prefix := flag.String("s3-prefix", "ssp", "Key prefix for S3 uploads")
	recommendOnly := flag.Bool("recommend", false, "Print control recommendations and exit")
	sortContributors := flag.Bool("sort-contributors", false, "Sort multi-device note contributors by name")
	timeout := flag.Duration("timeout", 60*time.Second, "Overall pipeline timeout")
	flag.Parse()

	if *topologyPath == "" {
		fmt.Fprintln(os.Stderr, "Error: -topology is required")
		flag.Usage()
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	log.Printf("🚀 SSP Generator starting...")
	log.Printf("📂 Topology: %s", *topologyPath)

	nodes, edges, err := diagram.LoadFile(*topologyPath)
	if err != nil {
		log.Fatalf("Failed to load topology: %v", err)
	}
	log.Printf("📊 Loaded %d nodes, %d edges", len(nodes), len(edges))

	if *recommendOnly {
		printRecommendations(nodes, edges)
		return
	}

	if *systemName == "" {
		fmt.Fprintln(os.Stderr, "Error: -system is required")
		flag.Usage()
		os.Exit(1)
	}

	builder := document.NewBuilder()
	if *controlsFile != "" {
		controls, err := catalog.LoadFile(*controlsFile)
		if err != nil {
			log.Fatalf("Failed to load control catalog: %v", err)
		}
		builder.Controls = controls
		log.Printf("📋 Custom catalog: %d controls", controls.Len())
	}

	req := &document.GenerateRequest{
		SystemName:       *systemName,
		Organization:     *organization,
		Baseline:         *baseline,
		UneditedPolicy:   *policy,
		SortContributors: *sortContributors,
		Nodes:            nodes,
		Edges:            edges,
	}
	if *controlIDs != "" {
		req.ControlIDs = strings.Split(*controlIDs, ",")
	}

	doc, err := builder.Build(ctx, req)
	if err != nil {
		log.Fatalf("Failed to build document: %v", err)
	}
	log.Printf("📝 Document %s: %d controls resolved", doc.Metadata.DocumentID, len(doc.Controls))

	renderer, err := export.NewRenderer(*format)
	if err != nil {
		log.Fatalf("Failed to select renderer: %v", err)
	}

	var store export.ArtifactStore
	if *s3Bucket != "" {
		store, err = export.NewS3Store(ctx, *s3Bucket, *s3Prefix)
		if err != nil {
			log.Fatalf("Failed to configure S3 store: %v", err)
		}
	} else {
		store = export.NewLocalStore(*outDir)
	}

	exporter := export.NewExporter(renderer, store)
	exporter.Sealer = &export.Sealer{Passphrase: *passphrase}

	name := fmt.Sprintf("ssp-%s.%s", doc.Metadata.DocumentID, renderer.Extension())
	if *passphrase != "" {
		name += ".enc"
	}

	result := exporter.Export(ctx, doc, name)
	if !result.Success {
		log.Fatalf("Export failed after %d attempt(s): %s", result.Attempts, result.Error)
	}
	log.Printf("✅ Exported to %s", result.Location)
}

func printRecommendations(nodes []diagram.Node, edges []diagram.Edge) {
	g := diagram.NewGraph(nodes, edges)
	engine := &recommend.Engine{Metrics: metrics.Default()}
	recs := engine.Recommend(g)
	if len(recs) == 0 {
		fmt.Println("No control recommendations for this topology.")
		return
	}
	fmt.Printf("Recommended controls (%d):\n\n", len(recs))
	for _, rec := range recs {
		fmt.Printf("  %-10s [%s] %s\n", rec.ControlID, rec.Confidence, rec.Reason)
		fmt.Printf("             triggered by: %s\n", strings.Join(rec.TriggerIDs, ", "))
	}
}
