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
	"text/tabwriter"

	"github.com/Daskott/coastal-alert/colors"
	"github.com/Daskott/coastal-alert/server/alerting"
	"github.com/spf13/cobra"
)

func createThresholdsCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "thresholds",
		Short:        "List the metrics & the thresholds they alert above",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := loadConfig()
			if err != nil {
				return err
			}

			thresholds := alerting.NewThresholds(config.Coastal.Thresholds)

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "METRIC\tLABEL\tTHRESHOLD\tCRITICAL ABOVE")
			for _, metric := range thresholds.Metrics() {
				threshold, _ := thresholds.Lookup(metric)
				fmt.Fprintf(w, "%v\t%v\t%.2f\t%.2f\n",
					colors.Blue(metric),
					alerting.MetricLabel(metric),
					threshold,
					threshold*alerting.CRITICAL_FACTOR)
			}

			return w.Flush()
		},
	}
}
