package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/causalab/nodal/formatter"
	"github.com/causalab/nodal/interpret"
	"github.com/causalab/nodal/model"
)

var (
	positionFlags    []string
	conditionFlags   []string
	interpretAsJson  bool
	interpretOutPath string
)

var interpretCmd = &cobra.Command{
	Use:   "interpret",
	Short: "Translate nodal-type digit positions into parent-value statements",
	Long: `Interprets digit positions of nodal-type codes against a model, or matches
value conditions back to their positions.
Example) nodal interpret -m model.yaml --position Y=3,4 --condition "Y | X=1"`,
	Run: func(cmd *cobra.Command, args []string) {
		if modelPath == "" {
			fmt.Println("error: Please provide a model file with --model")
			os.Exit(1)
		}
		m, err := model.Load(modelPath)
		if err != nil {
			logger.Fatal("Failed to load model", zap.String("path", modelPath), zap.Error(err))
		}

		query, err := buildQuery(positionFlags, conditionFlags)
		if err != nil {
			logger.Fatal("Invalid query", zap.Error(err))
		}

		result, err := interpret.Interpret(m, query)
		if err != nil {
			logger.Error("Interpretation failed", zap.Error(err))
			os.Exit(1)
		}

		printResult(logger, result, interpretAsJson, interpretOutPath)
	},
}

func init() {
	interpretCmd.Flags().StringArrayVar(&positionFlags, "position", nil, "Positions to interpret, e.g. Y=3,4 (repeatable)")
	interpretCmd.Flags().StringArrayVar(&conditionFlags, "condition", nil, `Value conditions, e.g. "Y | X=1 & M=0" (repeatable)`)
	interpretCmd.Flags().BoolVar(&interpretAsJson, "json", false, "Output the result in JSON format")
	interpretCmd.Flags().StringVarP(&interpretOutPath, "output", "o", "", "Output path (when using JSON)")
}

// buildQuery turns the flag values into an interpret query. Both flag kinds
// set at once is rejected by the interpreter itself.
func buildQuery(positions, conditions []string) (interpret.Query, error) {
	q := interpret.Query{Conditions: conditions}
	for _, p := range positions {
		req, err := parsePositionFlag(p)
		if err != nil {
			return interpret.Query{}, err
		}
		q.Positions = append(q.Positions, req)
	}
	return q, nil
}

// parsePositionFlag parses "Y=3,4" into a position request. A bare node name
// requests every position of that node.
func parsePositionFlag(flag string) (interpret.PositionRequest, error) {
	node, list, hasPositions := strings.Cut(flag, "=")
	node = strings.TrimSpace(node)
	if node == "" {
		return interpret.PositionRequest{}, fmt.Errorf("empty node in position flag %q", flag)
	}
	req := interpret.PositionRequest{Node: node}
	if !hasPositions {
		return req, nil
	}
	for _, part := range strings.Split(list, ",") {
		pos, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return interpret.PositionRequest{}, fmt.Errorf("bad position %q in flag %q", part, flag)
		}
		req.Positions = append(req.Positions, pos)
	}
	return req, nil
}

func printResult(logger *zap.Logger, result interpret.Result, asJson bool, outPath string) {
	if !asJson {
		fmt.Print(formatter.FormatInterpretations(result))
		return
	}

	d, err := json.Marshal(result)
	if err != nil {
		logger.Error("Error marshalling result to JSON", zap.Error(err))
		return
	}
	if outPath == "" {
		fmt.Println(string(d))
		return
	}
	if err := os.WriteFile(outPath, d, 0o644); err != nil {
		logger.Error("Error writing JSON output file", zap.Error(err))
	}
}
