package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/causalab/nodal/formatter"
	"github.com/causalab/nodal/wildcard"
)

var (
	joinOperator  string
	cartesian     bool
	queryFile     string
	expandVerbose bool
)

var expandCmd = &cobra.Command{
	Use:   "expand [expressions...]",
	Short: "Expand wildcard markers in query expressions",
	Long: `Rewrites each "var=." wildcard assignment into its concrete 0/1 forms.
Example) nodal expand "(Y[X=1, M=.])"
Example) nodal expand --cartesian --file queries.txt`,
	Run: func(cmd *cobra.Command, args []string) {
		expressions := args
		if queryFile != "" {
			fromFile, err := readQueryFile(queryFile)
			if err != nil {
				logger.Fatal("Failed to read query file", zap.String("path", queryFile), zap.Error(err))
			}
			expressions = append(expressions, fromFile...)
		}
		if len(expressions) == 0 {
			fmt.Println("error: Please provide query expressions or --file")
			os.Exit(1)
		}

		opts := wildcard.Options{Join: joinOperator, Cartesian: cartesian}
		if expandVerbose {
			opts.Logger = logger
		}

		runExpand(logger, expressions, opts)
	},
}

func init() {
	expandCmd.Flags().StringVar(&joinOperator, "join", "|", "Operator joining a group's variants")
	expandCmd.Flags().BoolVar(&cartesian, "cartesian", false, "Emit one expression per combination instead of joining")
	expandCmd.Flags().StringVarP(&queryFile, "file", "f", "", "File with one query expression per line")
	expandCmd.Flags().BoolVarP(&expandVerbose, "verbose", "v", false, "Log each span's variants")
}

func runExpand(logger *zap.Logger, expressions []string, opts wildcard.Options) {
	var bar *progressbar.ProgressBar
	if len(expressions) > 1 {
		bar = progressbar.NewOptions(len(expressions),
			progressbar.OptionSetDescription("expanding"),
			progressbar.OptionEnableColorCodes(true),
			progressbar.OptionSetWidth(40),
			progressbar.OptionShowCount(),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "[green]=[reset]",
				SaucerHead:    "[green]>[reset]",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}))
	}

	var outputs []string
	for _, expression := range expressions {
		expanded, err := wildcard.Expand(expression, opts)
		if err != nil {
			logger.Error("Expansion failed", zap.String("expression", expression), zap.Error(err))
			os.Exit(1)
		}
		outputs = append(outputs, expanded...)
		if bar != nil {
			_ = bar.Add(1)
		}
	}
	if bar != nil {
		fmt.Println()
	}

	fmt.Print(formatter.FormatExpansion(outputs))
}

// readQueryFile returns the non-empty, non-comment lines of the file.
func readQueryFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var expressions []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		expressions = append(expressions, line)
	}
	return expressions, scanner.Err()
}
