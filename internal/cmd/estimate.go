package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/northflowteam-pixel/northflow-landing-page/internal/estimator"
)

var estimateFlags struct {
	jobValue    float64
	missedCalls int
	closeRate   int
	sweep       bool
}

var estimateCmd = &cobra.Command{
	Use:   "estimate",
	Short: "Estimate revenue lost to missed calls",
	Long: `Compute the monthly and yearly revenue lost to unanswered calls.

Inputs outside the calculator's ranges are clamped the same way the
website's sliders clamp them.

Examples:
  northflow estimate
  northflow estimate --job-value 1200 --missed-calls 8 --close-rate 40
  northflow estimate --sweep --output json`,
	Args: cobra.NoArgs,
	RunE: runEstimate,
}

func runEstimate(cmd *cobra.Command, args []string) error {
	format, err := outputFormat()
	if err != nil {
		return err
	}

	f, err := newFormatter()
	if err != nil {
		return err
	}

	in := estimator.Inputs{
		AverageJobValue:    viper.GetFloat64("job-value"),
		MissedCallsPerWeek: viper.GetInt("missed-calls"),
		CloseRatePercent:   viper.GetInt("close-rate"),
	}

	reports := []estimator.Report{f.Report(estimator.NewSessionWith(in))}
	if estimateFlags.sweep {
		reports = sweepCloseRates(f, in)
	}

	w := cmd.OutOrStdout()
	if format == "json" {
		return writeReportsJSON(w, reports, estimateFlags.sweep)
	}
	return writeReportsTable(w, f, reports)
}

// sweepCloseRates reports in for every close rate from the minimum to the
// maximum in steps of ten points.
func sweepCloseRates(f *estimator.Formatter, in estimator.Inputs) []estimator.Report {
	var reports []estimator.Report
	for rate := int(estimator.CloseRateField.Min); rate <= int(estimator.CloseRateField.Max); rate += 10 {
		in.CloseRatePercent = rate
		reports = append(reports, f.Report(estimator.NewSessionWith(in)))
	}
	return reports
}

func writeReportsJSON(w io.Writer, reports []estimator.Report, list bool) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if list {
		return enc.Encode(reports)
	}
	return enc.Encode(reports[0])
}

func writeReportsTable(w io.Writer, f *estimator.Formatter, reports []estimator.Report) error {
	heading := lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true)
	if viper.GetBool("no-color") {
		heading = lipgloss.NewStyle()
	}
	fmt.Fprintln(w, heading.Render("Revenue lost to missed calls"))

	table := tablewriter.NewWriter(w)
	table.Header("Job Value", "Missed Calls / Week", "Close Rate", "Monthly Loss", "Yearly Loss")
	for _, r := range reports {
		table.Append(
			f.Value(estimator.JobValueField, r.Inputs.AverageJobValue),
			f.Value(estimator.MissedCallsField, float64(r.Inputs.MissedCallsPerWeek)),
			f.Value(estimator.CloseRateField, float64(r.Inputs.CloseRatePercent)),
			r.MonthlyLossFormatted,
			r.YearlyLossFormatted,
		)
	}
	return table.Render()
}

func init() {
	estimateCmd.Flags().Float64Var(&estimateFlags.jobValue, "job-value", estimator.JobValueField.Default, "average job value (100-5000)")
	estimateCmd.Flags().IntVar(&estimateFlags.missedCalls, "missed-calls", int(estimator.MissedCallsField.Default), "missed calls per week (1-50)")
	estimateCmd.Flags().IntVar(&estimateFlags.closeRate, "close-rate", int(estimator.CloseRateField.Default), "estimated close rate in percent (10-100)")
	estimateCmd.Flags().BoolVar(&estimateFlags.sweep, "sweep", false, "report every close rate from 10% to 100%")

	viper.BindPFlag("job-value", estimateCmd.Flags().Lookup("job-value"))
	viper.BindPFlag("missed-calls", estimateCmd.Flags().Lookup("missed-calls"))
	viper.BindPFlag("close-rate", estimateCmd.Flags().Lookup("close-rate"))

	rootCmd.AddCommand(estimateCmd)
}
