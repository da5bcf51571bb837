// Package cmd implements the arabicc command-line interface: a single
// command that runs the full lexer -> parser -> semantic analyzer ->
// code generator pipeline over one source file.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/arabicc/arabicc/internal/codegen"
	arerrors "github.com/arabicc/arabicc/internal/errors"
	"github.com/arabicc/arabicc/internal/lexer"
	"github.com/arabicc/arabicc/internal/parser"
	"github.com/arabicc/arabicc/internal/semantic"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var (
	outputFile  string
	dumpTokens  bool
	dumpAST     bool
	colorOutput bool
	verbose     bool
)

var rootCmd = &cobra.Command{
	Use:   "arabicc [file]",
	Short: "Compiler for the Arabic-keyword imperative language",
	Long: `arabicc compiles a small imperative language with Arabic-script
keywords to x86-64 Linux assembly (Intel syntax, System V AMD64 calling
convention), suitable for the GNU assembler.`,
	Version: Version,
	Args:    cobra.ExactArgs(1),
	RunE:    runCompile,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.Flags().StringVarP(&outputFile, "output", "o", "", "output path (default: <input> with its extension replaced by .s)")
	rootCmd.Flags().BoolVar(&dumpTokens, "tokens", false, "print the token stream to stdout")
	rootCmd.Flags().BoolVar(&dumpAST, "ast", false, "print the parsed AST to stdout")
	rootCmd.Flags().BoolVar(&colorOutput, "color", true, "colorize diagnostics")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose progress messages")

	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true
}

func runCompile(_ *cobra.Command, args []string) error {
	inputPath := args[0]

	content, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("Error: File '%s' not found", inputPath)
	}
	source := string(content)

	out := outputFile
	if out == "" {
		ext := filepath.Ext(inputPath)
		if ext != "" {
			out = strings.TrimSuffix(inputPath, ext) + ".s"
		} else {
			out = inputPath + ".s"
		}
	}

	progress := func(format string, args ...any) {
		if verbose {
			fmt.Fprintf(os.Stdout, format+"\n", args...)
		}
	}

	progress("[1/4] Lexical analysis...")
	tokens, lexErr := lexer.Tokenize(source)
	if lexErr != nil {
		return reportAndFail(lexErr, source, inputPath)
	}

	if dumpTokens {
		for _, tok := range tokens {
			fmt.Fprintln(os.Stdout, tok.String())
		}
	}

	progress("[2/4] Parsing...")
	program, parseErr := parser.Parse(tokens)
	if parseErr != nil {
		return reportAndFail(parseErr, source, inputPath)
	}

	if dumpAST {
		fmt.Fprintln(os.Stdout, program.String())
	}

	progress("[3/4] Semantic analysis...")
	if semErr := semantic.Analyze(program); semErr != nil {
		return reportAndFail(semErr, source, inputPath)
	}

	progress("[4/4] Code generation...")
	assembly := codegen.Generate(program)

	if err := os.WriteFile(out, []byte(assembly), 0o644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", out, err)
	}

	green := color.New(color.FgGreen)
	green.EnableColor()
	if !colorOutput {
		green.DisableColor()
	}
	fmt.Println(green.Sprint("Compilation successful"))
	fmt.Printf("  Output: %s\n", out)

	return nil
}

// reportAndFail formats err as a diagnostic, prints it to stderr, and
// returns a non-nil error so that main exits 1; cobra's own usage text
// is not printed.
func reportAndFail(err error, source, file string) error {
	diag := arerrors.Categorize(err, source, file)
	fmt.Fprintln(os.Stderr, diag.Format(colorOutput))
	return fmt.Errorf("compilation failed: %s", diag.Category)
}
