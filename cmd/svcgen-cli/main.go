package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"

	"github.com/goliatone/go-svcgen/pkg/naming"
	"github.com/goliatone/go-svcgen/pkg/orchestrator"
	"github.com/goliatone/go-svcgen/pkg/render"
	pkgswagger "github.com/goliatone/go-svcgen/pkg/swagger"
)

func main() {
	source := flag.String("source", "", "Swagger document path or URL")
	output := flag.String("output", "", "output file (stdout if empty)")
	rendererName := flag.String("renderer", "", "renderer to use (prompts when empty and more than one is registered)")
	serviceName := flag.String("service", "", "generated service class name")
	propertyCase := flag.String("property-case", string(naming.ConventionCamel), "property naming convention: camel or preserve")
	header := flag.String("header", "", "banner comment prepended to the output")
	verbose := flag.Bool("verbose", false, "report skipped and unclassified inputs")
	flag.Parse()

	ctx := context.Background()

	src := parseSource(*source)
	if src == nil {
		log.Fatalf("invalid source: %q", *source)
	}

	convention := naming.Convention(*propertyCase)
	if !convention.Valid() {
		log.Fatalf("invalid property case: %q", *propertyCase)
	}

	var opts []orchestrator.Option
	if *verbose {
		opts = append(opts, orchestrator.WithWarnHandler(func(msg string) {
			fmt.Fprintln(os.Stderr, "warn: "+msg)
		}))
	}
	gen := orchestrator.New(opts...)

	name, err := chooseRenderer(*rendererName, gen.Renderers())
	if err != nil {
		log.Fatalf("Failed to select renderer: %v", err)
	}

	out, err := gen.Generate(ctx, orchestrator.Request{
		Source:   src,
		Renderer: name,
		RenderOptions: render.RenderOptions{
			ServiceName:  *serviceName,
			PropertyCase: convention,
			Header:       *header,
		},
	})
	if err != nil {
		log.Fatalf("Failed to generate client: %v", err)
	}

	if *output == "" {
		fmt.Println(string(out))
		return
	}
	if err := writeOutput(*output, out); err != nil {
		log.Fatalf("Failed to write output: %v", err)
	}
	fmt.Printf("Client written to %s\n", *output)
}

// chooseRenderer resolves the renderer name, prompting only when the flag is
// empty and more than one renderer is registered.
func chooseRenderer(flagValue string, registered []string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if len(registered) <= 1 {
		// Zero or one renderer needs no prompt; let the orchestrator apply
		// its default.
		return "", nil
	}
	var choice string
	prompt := &survey.Select{
		Message: "Select a renderer:",
		Options: registered,
	}
	if err := survey.AskOne(prompt, &choice); err != nil {
		return "", translateSurveyErr(err)
	}
	return choice, nil
}

// writeOutput refuses to clobber an existing file without confirmation.
func writeOutput(path string, data []byte) error {
	if _, err := os.Stat(path); err == nil {
		overwrite := false
		prompt := &survey.Confirm{
			Message: fmt.Sprintf("%s exists, overwrite?", path),
		}
		if err := survey.AskOne(prompt, &overwrite); err != nil {
			return translateSurveyErr(err)
		}
		if !overwrite {
			return fmt.Errorf("refusing to overwrite %s", path)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func translateSurveyErr(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return errors.New("cancelled")
	}
	return err
}

func parseSource(raw string) pkgswagger.Source {
	path := strings.TrimSpace(raw)
	if path == "" {
		return nil
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return pkgswagger.SourceFromURL(path)
	}
	return pkgswagger.SourceFromFile(path)
}
