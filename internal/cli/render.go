package cli

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"route-summary-service/internal/domain"
	"route-summary-service/internal/format"
	"route-summary-service/internal/services"
)

// writeView prints the iteration tables, the depot summary and warnings.
func writeView(w io.Writer, v format.View) error {
	if v.Status == services.StatusNoResult {
		_, err := fmt.Fprintln(w, "No result to summarize.")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	academic := v.Mode == domain.ModeAcademicReplay

	if v.Iterations.Status == services.StatusNoData {
		fmt.Fprintln(tw, "No iteration logs.")
	} else {
		writeIterations(tw, "ACS", v.Iterations.ACS, academic)
		writeIterations(tw, "RVND", v.Iterations.RVND, academic)
	}

	fmt.Fprintf(tw, "\nSummary (%s)\n", v.Mode)
	fmt.Fprintln(tw, "DEPOT\tDISTANCE (KM)\tFIXED\tVARIABLE\tTOTAL\tCUSTOMERS\t")
	for _, r := range v.Summary {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%d (%s)\t\n",
			r.DepotName, r.TotalDistance, r.FixedCost, r.VariableCost, r.TotalCost, r.CustomerCount, r.Customers)
	}
	fmt.Fprintf(tw, "TOTAL\t%s\t%s\t%s\t%s\t\t\n", v.TotalDistance, v.FixedCost, v.VariableCost, v.TotalCost)

	if err := tw.Flush(); err != nil {
		return err
	}

	if _, err := fmt.Fprintln(w, v.TotalDistanceLine); err != nil {
		return err
	}
	for _, warn := range v.Warnings {
		if _, err := fmt.Fprintf(w, "warning: %s\n", warn.Message); err != nil {
			return err
		}
	}
	return nil
}

func writeIterations(tw *tabwriter.Writer, title string, rows []format.IterationRow, academic bool) {
	fmt.Fprintf(tw, "\n%s iterations\n", title)
	if academic {
		fmt.Fprintln(tw, "CLUSTER\tVEHICLE\tSEQUENCE\tDISTANCE\tCUSTOMERS\tOBJECTIVE\t")
	} else {
		fmt.Fprintln(tw, "CLUSTER\tPHASE\tVEHICLE\tSEQUENCE\tDISTANCE\tTIME\tOBJECTIVE\t")
	}

	for _, r := range rows {
		if academic {
			customers := ""
			if r.CustomerCount != nil {
				customers = strconv.Itoa(*r.CustomerCount)
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t\n",
				dash(r.Cluster), dash(r.VehicleType), r.RouteSequence, r.Distance, customers, r.Objective)
			continue
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t\n",
			dash(r.Cluster), dash(r.Phase), dash(r.VehicleType), r.RouteSequence, r.Distance, r.TravelTime, r.Objective)
	}
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
