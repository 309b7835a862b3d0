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
	"errors"
	"fmt"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/notargets/objmesh/config"
	"github.com/notargets/objmesh/logger"
	"github.com/notargets/objmesh/mesh"
	"github.com/notargets/objmesh/readers"
	"github.com/notargets/objmesh/report"
)

var ErrMissingPath = errors.New("missing input file argument")

var (
	cfgFile     string
	stopProfile func()
)

var boundFlags = []string{"log-level", "log-file", "profile"}

// rootCmd prints the flattened face vertex coordinates of an OBJ file
var rootCmd = &cobra.Command{
	Use:   "objmesh <file.obj>",
	Short: "Print the vertex coordinates referenced by the faces of an OBJ file",
	Long: `
Reads the "v" and "f" records of a Wavefront OBJ file and prints, on stderr,
the coordinates of every face vertex in face order:

objmesh cube.obj
[0.0, 0.0, 0.0, 1.0, 0.0, 0.0, ...]`,
	Args:              pathArg,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	RunE: func(cmd *cobra.Command, args []string) error {
		return flattenFile(cmd, args[0])
	},
}

// Execute runs the command selected by os.Args
func Execute() error {
	defer shutdown()
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.objmesh.yaml)")
	pf.String("log-level", "warn", "log level: debug, info, warn, error")
	pf.String("log-file", "", "also write logs to this file, rotated")
	pf.String("profile", "", "write a profile to the working directory: cpu or mem")
}

func pathArg(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return ErrMissingPath
	}
	return cobra.ExactArgs(1)(cmd, args)
}

// setup reads the config file and environment, then starts logging and
// profiling
func setup(cmd *cobra.Command, args []string) (err error) {
	v := viper.New()
	config.SetDefaults(v)
	for _, name := range boundFlags {
		if err = v.BindPFlag(name, cmd.Flags().Lookup(name)); err != nil {
			return err
		}
	}
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		var home string
		if home, err = homedir.Dir(); err == nil {
			v.AddConfigPath(home)
		}
		v.SetConfigName(".objmesh")
	}
	v.SetEnvPrefix("OBJMESH")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err = v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg *config.Config
	if cfg, err = config.FromViper(v); err != nil {
		return err
	}
	if err = logger.Init(cfg.LogLevel, cfg.LogFile); err != nil {
		return err
	}
	if used := v.ConfigFileUsed(); used != "" {
		logger.Debug("using config file", zap.String("file", used))
	}

	switch cfg.Profile {
	case config.ProfileCPU:
		stopProfile = profile.Start(profile.CPUProfile, profile.ProfilePath("."),
			profile.Quiet, profile.NoShutdownHook).Stop
	case config.ProfileMem:
		stopProfile = profile.Start(profile.MemProfile, profile.ProfilePath("."),
			profile.Quiet, profile.NoShutdownHook).Stop
	}
	if stopProfile != nil {
		logger.Info("profiling enabled",
			zap.String("mode", cfg.Profile), zap.String("dir", "."))
	}
	return nil
}

func shutdown() {
	if stopProfile != nil {
		stopProfile()
		stopProfile = nil
	}
	logger.Sync()
}

// flattenFile prints the flattened face coordinates of path to stderr
func flattenFile(cmd *cobra.Command, path string) error {
	msh, err := loadMesh(path)
	if err != nil {
		return err
	}
	flat, err := msh.Flatten()
	if err != nil {
		return err
	}
	logger.Debug("resolved faces",
		zap.Int("faces", msh.NumFaces), zap.Int("values", len(flat)))
	return report.WriteDebug(cmd.ErrOrStderr(), flat)
}

func loadMesh(path string) (*mesh.Mesh, error) {
	msh, err := readers.ReadOBJ(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return msh, nil
}
