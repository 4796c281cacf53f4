/*
Copyright © 2021 Edmond Cotterell

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
	"fmt"
	"os"
	"path/filepath"

	devConfig "github.com/Daskott/coastal-alert/dev/config"
	"github.com/Daskott/coastal-alert/colors"
	"github.com/Daskott/coastal-alert/shared"
	"github.com/Daskott/coastal-alert/utils"
	"github.com/Daskott/coastal-alert/version"
	"github.com/spf13/cobra"
)

var (
	cfgFile  string
	isDevEnv bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd *cobra.Command

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	rootCmd = createRootCmd()
	rootCmd.Version = fmt.Sprintf("v%s", version.Version)

	rootCmd.AddCommand(createServerCmd(), createDryRunCmd(), createThresholdsCmd())
}

func createRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use: "coastal-alert",
		Short: `coastal-alert watches coastal sensor readings and warns the people in harm's way.

Readings above a metric's threshold are sent by SMS & email to every
contact in the affected regions.`,
	}

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "server config file (default is dev/config.yml with --dev)")
	cmd.PersistentFlags().BoolVarP(&isDevEnv, "dev", "", false, "run in development mode")

	return cmd
}

// loadConfig reads the server config from --config, falling back to the
// development config when running with --dev. Environment variables
// override both.
func loadConfig() (*shared.ServerConfig, error) {
	configFile := cfgFile

	if configFile == "" && isDevEnv {
		var err error
		configFile, err = devConfigFilePath()
		if err != nil {
			return nil, err
		}

		err = utils.WriteFileIfNotExist(configFile, []byte(devConfig.SERVER_YML))
		if err != nil {
			return nil, err
		}
	}

	config, err := shared.LoadServerConfig(configFile)
	if err != nil {
		return nil, formattedError("%v", err)
	}

	return config, nil
}

func devConfigFilePath() (string, error) {
	configDir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	return filepath.Join(configDir, "dev", "config.yml"), nil
}

func formattedError(format string, a ...interface{}) error {
	return fmt.Errorf(colors.Red(format), a...)
}
