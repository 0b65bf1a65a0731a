package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/dustin/go-humanize"

	"github.com/ARM-software/golang-numerics/numerics/commonerrors"
	"github.com/ARM-software/golang-numerics/numerics/safecast"
)

const (
	formatText = "text"
	formatJSON = "json"
)

// formatFloat prints a floating-point value with the given number of
// significant digits.
func formatFloat(value float64, precision int) string {
	return strconv.FormatFloat(value, 'g', precision, 64)
}

func renderIntegerText(w io.Writer, summary *Summary[int64], precision int) {
	fmt.Fprintf(w, "Count:    %v\n", humanize.Comma(safecast.ToInt64(summary.Count)))
	fmt.Fprintf(w, "Distinct: %v\n", humanize.Comma(safecast.ToInt64(summary.Distinct)))
	fmt.Fprintf(w, "Sum:      %v\n", humanize.Comma(summary.Sum))
	fmt.Fprintf(w, "Mean:     %v\n", formatFloat(summary.Mean, precision))
	fmt.Fprintf(w, "Variance: %v\n", formatFloat(summary.Variance, precision))
	fmt.Fprintf(w, "Minimum:  %v\n", humanize.Comma(summary.Minimum))
	fmt.Fprintf(w, "Maximum:  %v\n", humanize.Comma(summary.Maximum))
}

func renderFloatText(w io.Writer, summary *Summary[float64], precision int) {
	fmt.Fprintf(w, "Count:    %v\n", humanize.Comma(safecast.ToInt64(summary.Count)))
	fmt.Fprintf(w, "Distinct: %v\n", humanize.Comma(safecast.ToInt64(summary.Distinct)))
	fmt.Fprintf(w, "Sum:      %v\n", formatFloat(summary.Sum, precision))
	fmt.Fprintf(w, "Mean:     %v\n", formatFloat(summary.Mean, precision))
	fmt.Fprintf(w, "Variance: %v\n", formatFloat(summary.Variance, precision))
	fmt.Fprintf(w, "Minimum:  %v\n", formatFloat(summary.Minimum, precision))
	fmt.Fprintf(w, "Maximum:  %v\n", formatFloat(summary.Maximum, precision))
}

func renderJSON(w io.Writer, summary any) error {
	content, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return commonerrors.WrapError(commonerrors.ErrMarshalling, err, "cannot serialise the summary")
	}
	_, err = fmt.Fprintln(w, string(content))
	return err
}
