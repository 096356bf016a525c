package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/jdtully/pngsteg/internal/imgio"
	"github.com/jdtully/pngsteg/internal/steg"
)

var extractCmd = &cobra.Command{
	Use:   "extract [image] [output-file]",
	Short: "Extract an embedded message from an image",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		imagePath, outputPath := args[0], args[1]

		img, err := imgio.Open(imagePath)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to open image")
		}

		out, err := os.Create(outputPath)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to open output file")
		}
		defer out.Close()

		x := &steg.Extractor{Carrier: img}
		n, err := x.Extract(out)
		if err != nil {
			if errors.Is(err, steg.ErrIncomplete) {
				// Keep whatever was recovered, but fail the run.
				fmt.Printf("%d bytes extracted\n", n)
				log.Fatal().Int("bytes", n).
					Msg("Image ended before the declared message length; partial output kept")
			}
			log.Fatal().Err(err).Msg("Extraction failed")
		}

		fmt.Printf("Done extracting!\n%d bytes extracted\n", n)
	},
}

func init() {
	rootCmd.AddCommand(extractCmd)
}
