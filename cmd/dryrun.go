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
	"encoding/json"
	"fmt"

	"github.com/Daskott/coastal-alert/colors"
	"github.com/Daskott/coastal-alert/server/alerting"
	"github.com/spf13/cobra"
)

func createDryRunCmd() *cobra.Command {
	var (
		metricArg   string
		valueArg    float64
		locationArg string
	)

	cmd := &cobra.Command{
		Use:   "dryrun",
		Short: "Show who would be notified for a reading",
		Long: `Evaluate a reading against the built-in sample contacts and print the
notifications that would be sent. Nothing is stored or sent.`,
		Example: `  coastal-alert dryrun --metric water_level --value 5.5 --location "Kerala|Goa"`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := loadConfig()
			if err != nil {
				return err
			}

			result, err := alerting.DryRun(
				alerting.NewThresholds(config.Coastal.Thresholds),
				alerting.Reading{Metric: metricArg, Value: &valueArg, Location: locationArg},
			)
			if err != nil {
				return formattedError("%v", err)
			}

			out, err := json.MarshalIndent(result, "", "  ")
			if err != nil {
				return err
			}

			severity := colors.Green(result.Severity)
			if result.Alert {
				severity = colors.Red(result.Severity)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%v %v planned notification(s)\n", severity, len(result.Planned))
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}

	cmd.Flags().StringVarP(&metricArg, "metric", "m", "", "metric name e.g. water_level")
	cmd.Flags().Float64Var(&valueArg, "value", 0, "metric reading")
	cmd.Flags().StringVarP(&locationArg, "location", "l", "", "region filter, separate regions with '|'")
	cmd.MarkFlagRequired("metric")
	cmd.MarkFlagRequired("value")

	return cmd
}
