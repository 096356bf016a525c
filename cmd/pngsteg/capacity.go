package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/jdtully/pngsteg/internal/imgio"
	"github.com/jdtully/pngsteg/internal/steg"
)

var capacityCmd = &cobra.Command{
	Use:   "capacity [image]",
	Short: "Show how much data an image can hold",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		img, err := imgio.Open(args[0])
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to open image")
		}

		c := steg.CapacityOf(img.Width(), img.Height())

		wtr := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(wtr, "Width\tHeight\tFormat\tCapacity (Bits)\tCapacity (Bytes)")
		fmt.Fprintln(wtr, "-----\t------\t------\t---------------\t----------------")
		fmt.Fprintf(wtr, "%d\t%d\t%s\t%d\t%d\n",
			img.Width(), img.Height(), img.Format(), c.Bits, c.Bytes)
		wtr.Flush()
	},
}

func init() {
	rootCmd.AddCommand(capacityCmd)
}
