package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/neopdf/neopdf-go/container"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Print the shared MetaData header of an archive",
	Run: func(cmd *cobra.Command, args []string) {
		meta, err := container.ReadMetadata(archivePath)
		if err != nil {
			logrus.Fatalf("reading metadata: %v", err)
		}
		fmt.Printf("set name:        %s\n", meta.SetName)
		fmt.Printf("set index:       %d\n", meta.SetIndex)
		fmt.Printf("members:         %d\n", meta.NumMembers)
		fmt.Printf("flavors:         %v\n", meta.Flavors)
		fmt.Printf("x range:         [%g, %g]\n", meta.XRange.Min, meta.XRange.Max)
		fmt.Printf("q2 range:        [%g, %g]\n", meta.Q2Range.Min, meta.Q2Range.Max)
		fmt.Printf("interpolator:    %s\n", meta.InterpolatorTag)
		fmt.Printf("set type:        %s\n", meta.SetType)
		fmt.Printf("particle id:     %d\n", meta.ParticleID)
		fmt.Printf("qcd order:       %d\n", meta.QCDOrder)
		fmt.Printf("flavor scheme:   %s\n", meta.FlavorScheme)
		fmt.Printf("code version:    %s\n", meta.CodeVersion)
		fmt.Printf("git version:     %s\n", meta.GitVersion)
		fmt.Printf("alphas knots:    %d\n", len(meta.AlphaSKnots))
	},
}
