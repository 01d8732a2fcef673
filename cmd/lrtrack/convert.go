package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newConvertCommand(a *app) *cobra.Command {
	var from, to string
	cmd := &cobra.Command{
		Use:   "convert <input> <output>",
		Short: "Convert a track between formats",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if from == "" {
				from = a.cfg.Convert.From
			}
			if to == "" {
				to = a.cfg.Convert.To
			}
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			t, warnings, err := decode(from, data)
			if err != nil {
				return fmt.Errorf("reading %s: %w", args[0], err)
			}
			for _, w := range warnings {
				log.Warn(w)
			}
			out, err := encode(to, t, a.cfg)
			if err != nil {
				return fmt.Errorf("writing %s: %w", args[1], err)
			}
			if err := os.WriteFile(args[1], out, 0o644); err != nil {
				return err
			}
			log.Infof("converted %s (%s) to %s (%s), %d bytes", args[0], from, args[1], to, len(out))
			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "input format: lrb or json")
	cmd.Flags().StringVar(&to, "to", "", "output format: lrb or json")
	return cmd
}
