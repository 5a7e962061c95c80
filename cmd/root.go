package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	modelPath string

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "nodal",
	Short: "nodal - interpret nodal-type codes and expand wildcard query expressions",
	Run: func(cmd *cobra.Command, args []string) {
		// display help when only 'nodal' is entered
		_ = cmd.Help()
	},
}

func Execute() error {
	var err error
	logger, err = zap.NewProduction()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&modelPath, "model", "m", "", "Path to the model YAML file")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(interpretCmd)
	rootCmd.AddCommand(expandCmd)
}
