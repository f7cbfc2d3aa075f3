package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"cxrextract/internal/collect"
	"cxrextract/internal/config"
	"cxrextract/internal/cxrmeta"
	"cxrextract/internal/sequence"
)

func newListCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list <path>",
		Short: "List the CXR sequences and render elements found under a path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			inputPath, err := config.ExpandPath(args[0])
			if err != nil {
				return err
			}

			collector := collect.New(cxrmeta.NewReader(), logger)
			entries := collector.Collect(inputPath)
			if len(entries) == 0 {
				return fmt.Errorf("no CXR sequence files found under %s", inputPath)
			}

			groups := sequence.Group(entries)
			rows := make([][]string, 0, len(groups))
			for _, name := range sequence.Names(groups) {
				frames := groups[name]
				first := frames[0].FrameNumber
				last := frames[len(frames)-1].FrameNumber
				rows = append(rows, []string{
					name,
					strconv.Itoa(len(frames)),
					fmt.Sprintf("%04d-%04d", first, last),
					strings.Join(frames[0].AvailableLayers, ", "),
				})
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable(
				[]string{"Sequence", "Frames", "Range", "Elements"},
				rows,
				[]columnAlignment{alignLeft, alignRight, alignLeft, alignLeft},
			))
			return nil
		},
	}
}
