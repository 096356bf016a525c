package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/jdtully/pngsteg/internal/imgio"
	"github.com/jdtully/pngsteg/internal/steg"
)

var (
	embedOutput string
	embedYes    bool
)

var embedCmd = &cobra.Command{
	Use:   "embed [image] [message-file]",
	Short: "Embed a message file into an image",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		imagePath, messagePath := args[0], args[1]

		img, err := imgio.Open(imagePath)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to open image")
		}

		msg, err := os.Open(messagePath)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to open message file")
		}
		defer msg.Close()

		st, err := msg.Stat()
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to stat message file")
		}

		avail := steg.CapacityOf(img.Width(), img.Height())
		fmt.Printf("Image is %dpx x %dpx\n", img.Width(), img.Height())
		fmt.Printf("Able to embed %d bytes (%.2f kilobytes) of data\n",
			avail.Bytes, float64(avail.Bytes)/1000)

		e := &steg.Embedder{
			Carrier: img,
			Confirm: confirmTruncation(os.Stdin, os.Stdout),
		}
		if embedYes || cfg.AssumeYes {
			e.Confirm = func(int, int) bool { return true }
		}

		n, err := e.Embed(msg, st.Size())
		if err != nil {
			if errors.Is(err, steg.ErrDeclined) {
				log.Fatal().Msg("Embedding aborted, image left untouched")
			}
			log.Fatal().Err(err).Msg("Embedding failed")
		}

		out := embedOutput
		if out == "" {
			out = imgio.OutputName(imagePath, cfg.OutputPrefix)
		}
		if err := img.WriteFile(out); err != nil {
			log.Fatal().Err(err).Msg("Failed to write output image")
		}

		fmt.Printf("Message has been embedded!\n%d bytes embedded\n", n)
		fmt.Printf("Output written to %s\n", out)
	},
}

// confirmTruncation asks whether to embed only the prefix that fits.
// Anything but an explicit yes declines.
func confirmTruncation(in io.Reader, out io.Writer) steg.ConfirmFunc {
	return func(overage, available int) bool {
		fmt.Fprintf(out, "Warning! Message is too large to embed in the provided image "+
			"(%d bytes too large).\nDo you wish to embed only the first %d bytes "+
			"of the message instead? Y/N\n> ", overage, available)
		line, err := bufio.NewReader(in).ReadString('\n')
		if err != nil && line == "" {
			return false
		}
		answer := strings.TrimSpace(line)
		return strings.EqualFold(answer, "y") || strings.EqualFold(answer, "yes")
	}
}

func init() {
	embedCmd.Flags().StringVarP(&embedOutput, "output", "o", "",
		"output image path (default: config prefix + input name)")
	embedCmd.Flags().BoolVarP(&embedYes, "yes", "y", false,
		"truncate oversized messages without asking")
	rootCmd.AddCommand(embedCmd)
}
