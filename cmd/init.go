package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/causalab/nodal/model"
)

// initCmd: nodal init
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a starter model file",
	Run: func(cmd *cobra.Command, args []string) {
		if err := initModelFile(modelPath); err != nil {
			logger.Error("Error initializing model file", zap.Error(err))
			return
		}
		path := modelPath
		if path == "" {
			path = defaultModelPath
		}
		fmt.Printf("Model file created: %s\n", path)
	},
}

const defaultModelPath = "nodal.yaml"

func initModelFile(path string) error {
	if path == "" {
		path = defaultModelPath
	}

	// X -> M -> Y with a direct X -> Y edge
	starter := model.File{
		Nodes: []model.Node{
			{Name: "X"},
			{Name: "M", Parents: []string{"X"}},
			{Name: "Y", Parents: []string{"X", "M"}},
		},
	}
	d, err := yaml.Marshal(starter)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.Write(d)
	return err
}
