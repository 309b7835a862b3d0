/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/notargets/objmesh/logger"
	"github.com/notargets/objmesh/report"
)

// InfoCmd represents the info command
var InfoCmd = &cobra.Command{
	Use:   "info <file.obj>",
	Short: "Summarize an OBJ file as YAML",
	Long: `
Prints vertex and face counts, the number of flattened values and the vertex
bounding box of an OBJ file to stdout.

objmesh info cube.obj

Without a file argument, "info" is read as the OBJ file name and handled like
the root command.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return flattenFile(cmd, cmd.Name())
		}
		msh, err := loadMesh(args[0])
		if err != nil {
			return err
		}
		s, err := msh.Summarize()
		if err != nil {
			return err
		}
		logger.Sugar.Debugf("%s: %d vertices, %d faces", args[0], s.NumVertices, s.NumFaces)
		return report.WriteSummaryYAML(cmd.OutOrStdout(), s)
	},
}

func init() {
	rootCmd.AddCommand(InfoCmd)
}
