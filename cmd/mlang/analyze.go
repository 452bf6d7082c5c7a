package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/HanteRus/mlang/mlang"
)

// sampleProgram exercises every failure mode at once: a sound
// declaration, a declaration missing its =, an unrecognized character,
// and an undeclared use.
const sampleProgram = `
{
    let x = 10;
    let y 20;
    let $z = 30;
    if x < y then {
        output x;
    } else {
        output z;
    }
}
`

func analyzeCommand(args []string) error {
	fs := flag.NewFlagSet("analyze", flag.ContinueOnError)
	fs.SetOutput(new(flagErrorSink))
	noTokens := fs.Bool("no-tokens", false, "omit the token table from the report")
	if err := fs.Parse(args); err != nil {
		return err
	}
	remaining := fs.Args()
	if len(remaining) == 0 {
		return errors.New("mlang analyze: source path required")
	}
	sourcePath, err := filepath.Abs(remaining[0])
	if err != nil {
		return fmt.Errorf("resolve source path: %w", err)
	}
	input, err := os.ReadFile(sourcePath)
	if err != nil {
		return fmt.Errorf("read source: %w", err)
	}
	return runReport(string(input), !*noTokens)
}

func demoCommand(args []string) error {
	fs := flag.NewFlagSet("demo", flag.ContinueOnError)
	fs.SetOutput(new(flagErrorSink))
	if err := fs.Parse(args); err != nil {
		return err
	}
	return runReport(sampleProgram, true)
}

func runReport(source string, withTokens bool) error {
	result := mlang.Analyze(source)
	fmt.Println(renderReport(result, withTokens))
	if !result.Semantic.Success {
		return fmt.Errorf("analysis found %d issue(s)", len(result.Semantic.Errors))
	}
	return nil
}
