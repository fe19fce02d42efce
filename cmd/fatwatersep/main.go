package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"time"

	"fatwatersep/pkg/config"
	"fatwatersep/pkg/dicomio"
	"fatwatersep/pkg/dixon"
	"fatwatersep/pkg/visualization"
)

func main() {
	// Parse command line arguments
	configPath := flag.String("config", "config.yaml", "Path to YAML configuration file")
	inputDir := flag.String("input", "", "Directory containing the dual-echo DICOM series (pair discovered by instance number)")
	inPhaseFile := flag.String("in", "", "In-phase DICOM file")
	outPhaseFile := flag.String("out", "", "Out-of-phase DICOM file")
	outputDir := flag.String("output-dir", "", "Directory to save the result images")
	kernelSize := flag.Int("kernel", 0, "Gaussian kernel size for the smoothed branch (positive odd integer)")
	sigma := flag.Float64("sigma", -1, "Gaussian sigma (0 derives it from the kernel size)")
	sequential := flag.Bool("sequential", false, "Run the raw and smoothed branches sequentially")
	noMontage := flag.Bool("no-montage", false, "Skip writing the combined review sheet")
	flag.Parse()

	// Load configuration; command line flags override the file
	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if *inputDir != "" {
		cfg.Input.Dir = *inputDir
	}
	if *inPhaseFile != "" {
		cfg.Input.InPhaseFile = *inPhaseFile
	}
	if *outPhaseFile != "" {
		cfg.Input.OutPhaseFile = *outPhaseFile
	}
	if *outputDir != "" {
		cfg.Output.Dir = *outputDir
	}
	if *kernelSize != 0 {
		cfg.Smoothing.KernelSize = *kernelSize
	}
	if *sigma >= 0 {
		cfg.Smoothing.Sigma = *sigma
	}
	if *sequential {
		cfg.Processing.Parallel = false
	}
	if *noMontage {
		cfg.Output.Montage = false
	}

	// Validate inputs: either an explicit pair or a series directory
	haveExplicitPair := cfg.Input.InPhaseFile != "" && cfg.Input.OutPhaseFile != ""
	if !haveExplicitPair && cfg.Input.Dir == "" {
		flag.Usage()
		os.Exit(1)
	}

	fmt.Println("================================")
	fmt.Println("FAT/WATER SUPPRESSION FROM DUAL-ECHO MRI USING THE TWO-POINT DIXON TECHNIQUE")
	fmt.Println("================================")

	// Resolve the acquisition pair
	inPath, outPath := cfg.Input.InPhaseFile, cfg.Input.OutPhaseFile
	if !haveExplicitPair {
		fmt.Printf("Discovering acquisition pair in: %s\n", cfg.Input.Dir)
		inPath, outPath, err = dicomio.DiscoverPair(cfg.Input.Dir)
		if err != nil {
			log.Fatalf("Pair discovery failed: %v", err)
		}
	}

	// Step 1: Load the DICOM acquisitions
	fmt.Println("Step 1: Loading DICOM acquisitions...")
	study, err := dicomio.LoadStudy(inPath, outPath)
	if err != nil {
		log.Fatalf("Loading failed: %v", err)
	}
	if cfg.Output.Verbose {
		fmt.Printf("Loaded %s acquisition: %s (%dx%d)\n",
			study.In.Phase, filepath.Base(study.In.Path), study.In.Grid.Width, study.In.Grid.Height)
		fmt.Printf("Loaded %s acquisition: %s (%dx%d)\n",
			study.Out.Phase, filepath.Base(study.Out.Path), study.Out.Grid.Width, study.Out.Grid.Height)
	}

	// Step 2: Run the separation pipeline
	fmt.Println("Step 2: Running the separation pipeline...")
	pipeline := dixon.NewPipeline(&dixon.Params{
		KernelSize: cfg.Smoothing.KernelSize,
		Sigma:      cfg.Smoothing.Sigma,
		Parallel:   cfg.Processing.Parallel,
	})

	startTime := time.Now()
	result, err := pipeline.Run(study.In.Grid, study.Out.Grid)
	if err != nil {
		log.Fatalf("Separation failed: %v", err)
	}
	processingTime := time.Since(startTime)

	// Step 3: Save the result images
	fmt.Println("Step 3: Saving result images...")
	viewer := visualization.NewViewer(result)
	if err := viewer.SaveImages(cfg.Output.Dir); err != nil {
		log.Fatalf("Saving images failed: %v", err)
	}
	if cfg.Output.Montage {
		montagePath := filepath.Join(cfg.Output.Dir, "montage.jpg")
		if err := viewer.SaveMontage(montagePath); err != nil {
			log.Printf("Warning: Failed to save montage: %v", err)
		} else if cfg.Output.Verbose {
			fmt.Printf("Review sheet saved to: %s\n", montagePath)
		}
	}

	fmt.Printf("\nSeparation completed successfully in %.3f seconds!\n", processingTime.Seconds())
	fmt.Printf("Output images saved to: %s\n\n", cfg.Output.Dir)

	// Report contrast metrics for the enhanced outputs
	fmt.Printf("Contrast Metrics:\n")
	fmt.Printf("=================\n")
	metrics := dixon.MeasureResult(result)
	names := make([]string, 0, len(metrics))
	for name := range metrics {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		m := metrics[name]
		fmt.Printf("%-15s mean=%6.2f stddev=%6.2f entropy=%5.3f bits range=%d\n",
			name, m.Mean, m.StdDev, m.Entropy, m.DynamicRange)
	}
}
