package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/neopdf/neopdf-go/config"
	"github.com/neopdf/neopdf-go/container"
	"github.com/neopdf/neopdf-go/gridpdf"
)

var (
	alphasMember int
	alphasQ2s    string
)

var alphasCmd = &cobra.Command{
	Use:   "alphas",
	Short: "Print alphas(Q2) at a list of Q2 values",
	Run: func(cmd *cobra.Command, args []string) {
		q2s, err := parseFloats(alphasQ2s)
		if err != nil {
			logrus.Fatalf("parsing --q2: %v", err)
		}

		meta, members, err := container.ReadAll(archivePath)
		if err != nil {
			logrus.Fatalf("reading archive: %v", err)
		}
		if alphasMember < 0 || alphasMember >= len(members) {
			logrus.Fatalf("member %d out of range [0, %d)", alphasMember, len(members))
		}

		gp, err := gridpdf.New(members[alphasMember], meta, config.Options{})
		if err != nil {
			logrus.Fatalf("building interpolator: %v", err)
		}

		for _, q2 := range q2s {
			v, err := gp.AlphasQ2(q2)
			if err != nil {
				logrus.Fatalf("AlphasQ2(%g): %v", q2, err)
			}
			fmt.Printf("%g\t%g\n", q2, v)
		}
	},
}

func init() {
	alphasCmd.Flags().IntVar(&alphasMember, "member", 0, "member index to evaluate")
	alphasCmd.Flags().StringVar(&alphasQ2s, "q2", "", "comma-separated list of Q2 values")
	alphasCmd.MarkFlagRequired("q2")
}
