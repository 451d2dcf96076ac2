package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agh-skylink/intercom/pkg/intercom"
	"github.com/agh-skylink/intercom/pkg/intercomcli"
)

var (
	applyMatrixKind string
	applyMatrixFile string
)

var applyMatrixCmd = &cobra.Command{
	Use:   "apply-matrix",
	Short: "Apply a partial uplink/downlink gain update from a YAML/JSON file and print the resulting matrix",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		var update intercom.GainUpdate
		if applyMatrixFile == "-" {
			if err := intercomcli.LoadRequestFromStdin(&update); err != nil {
				return err
			}
		} else if err := intercomcli.LoadRequest(applyMatrixFile, &update); err != nil {
			return err
		}

		core := intercom.NewCore(cfg.Channels, cfg.Tablets, cfg.SampleRate, cfg.FrameSize)
		if err := core.SetUniformRouting(cfg.DefaultRoutingGainDB); err != nil {
			return err
		}

		switch applyMatrixKind {
		case "uplink":
			err = core.MergeUplink(update)
		case "downlink":
			err = core.MergeDownlink(update)
		default:
			return fmt.Errorf("unknown matrix kind %q, want uplink or downlink", applyMatrixKind)
		}
		if err != nil {
			return err
		}

		health := core.HealthSnapshot()
		intercomcli.PrintSuccess("applied %s update from %s", applyMatrixKind, applyMatrixFile)
		return intercomcli.Output(health.Config, intercomcli.OutputOptions{Format: intercomcli.FormatYAML})
	},
}

func init() {
	applyMatrixCmd.Flags().StringVar(&applyMatrixKind, "kind", "uplink", "matrix to update: uplink or downlink")
	applyMatrixCmd.Flags().StringVar(&applyMatrixFile, "file", "", "YAML/JSON file with the partial gain update, or - for stdin")
	applyMatrixCmd.MarkFlagRequired("file")
}
