// spellcast checks text files through an external spell checker and
// prints the mistakes with compiler-style, colorized output.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/spellcast/spellcast/internal/backend"
	"github.com/spellcast/spellcast/internal/config"
	"github.com/spellcast/spellcast/internal/document"
	"github.com/spellcast/spellcast/internal/mistake"
	"github.com/spellcast/spellcast/internal/render"
)

var Version = "dev"

const configFile = ".spellcast.yaml"

func main() {
	exit := 0
	cmd := newRootCmd(&exit)
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
	os.Exit(exit)
}

func newRootCmd(exit *int) *cobra.Command {
	var (
		files      []string
		backendSel string
		command    string
		outputMode string
		colorSel   string
		wordlist   string
		exitCode   bool
	)

	cmd := &cobra.Command{
		Use:     "spellcast [flags] [-- backend args]",
		Short:   "Non-interactive spell checking with compiler-style output",
		Version: Version,
		Example: `  Check a tex file with British spelling:
    spellcast --files draft.tex -- -t --lang=en_GB --variety ize
  Check several files against an aspell personal word list:
    spellcast --files draft.tex --files notes.tex -- -t -p ./wordlist.txt
  Check stdin and fail the build on mistakes:
    spellcast --exit-code --output-mode list < README.txt`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Default()
			if err := config.LoadFile(configFile, &cfg); err != nil {
				return err
			}
			// Flags win over the config file.
			if cmd.Flags().Changed("backend") {
				cfg.Backend = backendSel
			}
			if cmd.Flags().Changed("command") {
				cfg.Command = command
			}
			if cmd.Flags().Changed("output-mode") {
				cfg.OutputMode = outputMode
			}
			if cmd.Flags().Changed("color") {
				cfg.Color = config.ColorMode(colorSel)
			}
			if cmd.Flags().Changed("wordlist") {
				cfg.Wordlist = wordlist
			}
			cfg.BackendArgs = args
			cfg.ExitCode = exitCode
			if err := cfg.Validate(); err != nil {
				return err
			}

			checker, err := backend.New(cfg.Backend, cfg.Command, cfg.Wordlist)
			if err != nil {
				return err
			}

			palette := render.Palette{}
			if useColor(cfg.Color) {
				palette = render.DefaultPalette()
			}

			total := 0
			failed := false
			if len(files) == 0 {
				n, err := checkReader(os.Stdin, "<stdin>", cfg, checker, palette)
				if err != nil {
					return err
				}
				total += n
			}
			for _, name := range files {
				n, err := checkFile(name, cfg, checker, palette)
				if err != nil {
					// One failing file does not stop the others.
					fmt.Fprintf(os.Stderr, "spellcast: %s: %v\n", name, err)
					failed = true
					continue
				}
				total += n
			}

			if failed || (cfg.ExitCode && total > 0) {
				*exit = 1
			}
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&files, "files", nil, "files to check (stdin when empty; PDF files go through pdftotext)")
	cmd.Flags().StringVar(&backendSel, "backend", "aspell", "checker backend: aspell, languagetool or wordlist")
	cmd.Flags().StringVar(&command, "command", "", "override the checker binary")
	cmd.Flags().StringVar(&outputMode, "output-mode", config.ModeAugmented, "style of output: list or augmented")
	cmd.Flags().StringVar(&colorSel, "color", string(config.ColorAuto), "colorize output: auto, always or never")
	cmd.Flags().StringVar(&wordlist, "wordlist", "", "word list path for the wordlist backend")
	cmd.Flags().BoolVar(&exitCode, "exit-code", false, "exit 1 when spelling mistakes were found")
	return cmd
}

func useColor(mode config.ColorMode) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default:
		return term.IsTerminal(int(os.Stdout.Fd()))
	}
}

// checkFile loads one file, runs the checker on it and renders the
// result, returning the number of mistakes found.
func checkFile(name string, cfg config.Config, checker backend.Checker, palette render.Palette) (int, error) {
	if strings.HasSuffix(name, ".pdf") {
		lines, err := document.LoadPDF(name)
		if err != nil {
			return 0, err
		}
		return check(lines, name, cfg, checker, palette)
	}
	f, err := os.Open(name)
	if err != nil {
		return 0, err
	}
	defer f.Close()
	return checkReader(f, name, cfg, checker, palette)
}

func checkReader(r io.Reader, name string, cfg config.Config, checker backend.Checker, palette render.Palette) (int, error) {
	lines, err := document.Load(r)
	if err != nil {
		return 0, err
	}
	return check(lines, name, cfg, checker, palette)
}

func check(lines []string, name string, cfg config.Config, checker backend.Checker, palette render.Palette) (int, error) {
	mistakes, err := checker.Check(lines, cfg.BackendArgs)
	if err != nil {
		return 0, err
	}
	if err := renderMistakes(os.Stdout, lines, mistakes, name, cfg, palette); err != nil {
		return 0, err
	}
	return len(mistakes), nil
}

func renderMistakes(w io.Writer, lines []string, mistakes []mistake.Mistake, name string, cfg config.Config, palette render.Palette) error {
	switch cfg.OutputMode {
	case config.ModeList:
		r := &render.ListRenderer{Filename: name, Palette: palette, Width: cfg.Width}
		return r.Render(w, lines, mistakes)
	default:
		r := &render.AugmentedRenderer{Palette: palette}
		return r.Render(w, lines, mistakes)
	}
}
