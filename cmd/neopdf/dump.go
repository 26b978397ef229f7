package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/neopdf/neopdf-go/config"
	"github.com/neopdf/neopdf-go/container"
	"github.com/neopdf/neopdf-go/gridpdf"
)

var (
	dumpMember int
	dumpFlavor int
	dumpXs     string
	dumpQ2s    string
)

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print x*f(flavor) at a grid of (x, Q2) points for one member",
	Run: func(cmd *cobra.Command, args []string) {
		xs, err := parseFloats(dumpXs)
		if err != nil {
			logrus.Fatalf("parsing --x: %v", err)
		}
		q2s, err := parseFloats(dumpQ2s)
		if err != nil {
			logrus.Fatalf("parsing --q2: %v", err)
		}

		meta, members, err := container.ReadAll(archivePath)
		if err != nil {
			logrus.Fatalf("reading archive: %v", err)
		}
		if dumpMember < 0 || dumpMember >= len(members) {
			logrus.Fatalf("member %d out of range [0, %d)", dumpMember, len(members))
		}

		gp, err := gridpdf.New(members[dumpMember], meta, config.Options{Concurrent: true})
		if err != nil {
			logrus.Fatalf("building interpolator: %v", err)
		}

		for _, x := range xs {
			for _, q2 := range q2s {
				v, err := gp.XFxQ2(dumpFlavor, []float64{x, q2})
				if err != nil {
					logrus.Fatalf("XFxQ2(%g, %g): %v", x, q2, err)
				}
				fmt.Printf("%g\t%g\t%g\n", x, q2, v)
			}
		}
	},
}

func parseFloats(csv string) ([]float64, error) {
	fields := strings.Split(csv, ",")
	out := make([]float64, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func init() {
	dumpCmd.Flags().IntVar(&dumpMember, "member", 0, "member index to evaluate")
	dumpCmd.Flags().IntVar(&dumpFlavor, "flavor", 21, "PDG flavor id (21 = gluon)")
	dumpCmd.Flags().StringVar(&dumpXs, "x", "", "comma-separated list of x values")
	dumpCmd.Flags().StringVar(&dumpQ2s, "q2", "", "comma-separated list of Q2 values")
	dumpCmd.MarkFlagRequired("x")
	dumpCmd.MarkFlagRequired("q2")
}
