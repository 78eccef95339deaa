// clkgen generates the clock identity types from the hwdef descriptor: the
// peripheral channel markers, the APB and AHB gate markers and the token
// collections handed out by clock.Reset. Run it after editing
// hwdef/samd21.yaml:
//
//	go run ./cmd/clkgen --out clock/identities_gen.go
package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"omibyte.io/samclk/hwdef"
)

var (
	outPath string

	rootCmd = &cobra.Command{
		Use:   "clkgen",
		Short: "Generate clock identity types from the hwdef descriptor",
		Run: func(cmd *cobra.Command, args []string) {
			desc := hwdef.SAMD21()

			if err := validate(desc); err != nil {
				log.Fatal(err)
			}

			src, err := generate(desc)
			if err != nil {
				log.Fatal(err)
			}

			if err := os.WriteFile(outPath, src, 0o644); err != nil {
				log.Fatal(err)
			}
			log.Printf("wrote %s", outPath)
		},
	}
)

func init() {
	rootCmd.Flags().StringVar(&outPath, "out", "clock/identities_gen.go", "output file")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
