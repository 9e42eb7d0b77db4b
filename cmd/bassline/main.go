// Command bassline is the CLI companion to the harmonizer service: it
// analyzes a bass line, lets you browse the ranked progressions, and
// exports a chosen realization to a MIDI file, all offline (no HTTP
// server, no AI proxy). Structured on the ako-backing-tracks
// reference's main.go: a leading subcommand, a manual flag scan, and
// os.Exit on error.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"harmonizer/api"
	"harmonizer/harmony"
	"harmonizer/harmonyfile"
	"harmonizer/key"
	"harmonizer/midiexport"
	"harmonizer/pitch"
	"harmonizer/satb"
	"harmonizer/tui"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "analyze":
		if len(os.Args) < 3 {
			fmt.Println("Error: analyze requires a bassline file")
			printUsage()
			os.Exit(1)
		}
		runAnalyze(os.Args[2])
	case "view":
		if len(os.Args) < 3 {
			fmt.Println("Error: view requires a bassline file")
			printUsage()
			os.Exit(1)
		}
		runView(os.Args[2])
	case "export":
		if len(os.Args) < 3 {
			fmt.Println("Error: export requires a bassline file")
			printUsage()
			os.Exit(1)
		}
		outputPath := ""
		if len(os.Args) >= 4 {
			outputPath = os.Args[3]
		}
		runExport(os.Args[2], outputPath)
	case "--help", "-h":
		printUsage()
	default:
		printUsage()
		os.Exit(1)
	}
}

func loadBassline(filename string) ([]pitch.Pitch, key.Key) {
	bf, err := harmonyfile.Load(filename)
	if err != nil {
		fmt.Printf("Error loading bassline: %v\n", err)
		os.Exit(1)
	}

	bassPitches := make([]pitch.Pitch, len(bf.BassNotes))
	for i, name := range bf.BassNotes {
		p, err := pitch.ParseNote(name)
		if err != nil {
			fmt.Printf("Error parsing bass note %q: %v\n", name, err)
			os.Exit(1)
		}
		bassPitches[i] = p
	}

	k, wellFormed := api.ParseKeyString(bf.Key, bassPitches)
	if !wellFormed {
		fmt.Printf("Warning: could not parse key %q, falling back to C major\n", bf.Key)
	}
	return bassPitches, k
}

func runAnalyze(filename string) {
	bassPitches, k := loadBassline(filename)
	scored := harmony.AnalyzeBassline(bassPitches, k)

	fmt.Printf("Key: %s\n\n", k.Name())
	for i, p := range scored {
		fmt.Printf("%d. %-24s score=%-4d style=%s\n", i+1, strings.Join(p.Numerals, " "), p.Score, p.Style)
		fmt.Printf("   %s\n", p.Description)
	}
}

func runView(filename string) {
	bassPitches, k := loadBassline(filename)
	scored := harmony.AnalyzeBassline(bassPitches, k)
	if len(scored) == 0 {
		fmt.Println("No progressions found for this bass line.")
		return
	}

	realize := func(progression []string) (satb.Realization, satb.ValidationReport, error) {
		realization, marginals, total, err := satb.Voice(progression, bassPitches, k)
		if err != nil {
			return nil, satb.ValidationReport{}, err
		}
		compromises := satb.AnalyzeCompromises(realization, marginals, total)
		report := satb.Validate(realization, progression, k, compromises)
		return realization, report, nil
	}

	m := tui.New(scored, realize)
	if _, err := tea.NewProgram(m).Run(); err != nil {
		fmt.Printf("Error running viewer: %v\n", err)
		os.Exit(1)
	}
}

func runExport(filename, outputPath string) {
	bf, err := harmonyfile.Load(filename)
	if err != nil {
		fmt.Printf("Error loading bassline: %v\n", err)
		os.Exit(1)
	}
	bassPitches, k := loadBassline(filename)

	progression := []string(bf.ChordProgression)
	if len(progression) == 0 {
		scored := harmony.AnalyzeBassline(bassPitches, k)
		if len(scored) == 0 {
			fmt.Println("No progression could be derived from this bass line.")
			os.Exit(1)
		}
		progression = scored[0].Numerals
	}

	realization, _, _, err := satb.Voice(progression, bassPitches, k)
	if err != nil {
		fmt.Printf("Error voicing progression: %v\n", err)
		os.Exit(1)
	}

	if outputPath == "" {
		base := filepath.Base(filename)
		ext := filepath.Ext(base)
		outputPath = strings.TrimSuffix(base, ext) + ".mid"
	}

	if err := midiexport.Export(realization, 96, outputPath); err != nil {
		fmt.Printf("Error writing MIDI: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Exported to: %s\n", outputPath)
}

func printUsage() {
	fmt.Println("bassline - bass-line harmonization CLI")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  bassline analyze <file.yaml>           Print ranked progressions")
	fmt.Println("  bassline view <file.yaml>               Interactively browse and realize")
	fmt.Println("  bassline export <file.yaml> [out.mid]  Export a realization to MIDI")
	fmt.Println()
	fmt.Println("Bassline file format (YAML):")
	fmt.Println("  key: auto               # or \"C major\", \"F# minor\", ...")
	fmt.Println("  bass_notes: C3 F3 G3 C3")
	fmt.Println("  chord_progression: [I, IV, V, I]  # optional, used by export")
}
