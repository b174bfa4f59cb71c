package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/dtroode/fingerprint-server/internal/api/grpc/apiv1"
)

func newAuditCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Search every enrolled template for a duplicate pair",
		Long: "Runs one duplicate sweep on the server and waits for the report. " +
			"The sweep compares every pair of templates, so it can take a long time on large corpora.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, err := ctx.dial()
			if err != nil {
				return err
			}
			defer conn.Close()

			callCtx, cancel := ctx.callContext(cmd.Context())
			defer cancel()

			resp, err := apiv1.NewAdminClient(conn).AuditDuplicates(callCtx, &apiv1.AuditDuplicatesRequest{})
			if err != nil {
				return fmt.Errorf("audit failed: %w", err)
			}

			if asJSON {
				return writeJSON(cmd, resp)
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderAuditReport(resp))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the report as JSON")

	return cmd
}

func renderAuditReport(resp *apiv1.AuditDuplicatesResponse) string {
	summary := renderTable(
		[]string{"Report", "Outcome", "Templates", "Comparisons", "Threshold", "Duration"},
		[][]string{{
			resp.ReportID,
			resp.Outcome,
			strconv.Itoa(resp.Templates),
			strconv.Itoa(resp.Comparisons),
			resp.Threshold,
			resp.FinishedAt.Sub(resp.StartedAt).Round(time.Millisecond).String(),
		}},
		[]columnAlignment{alignLeft, alignLeft, alignRight, alignRight, alignLeft, alignRight},
	)

	if resp.Pair == nil {
		return summary
	}

	pair := renderTable(
		[]string{"Template", "Employee", "Finger", "Score"},
		[][]string{
			pairRow(resp.Pair.First, resp.Pair.Score),
			pairRow(resp.Pair.Second, resp.Pair.Score),
		},
		[]columnAlignment{alignRight, alignRight, alignLeft, alignRight},
	)

	return summary + "\nDuplicate pair:\n" + pair
}

func pairRow(m apiv1.PairMember, score uint32) []string {
	return []string{
		strconv.FormatInt(m.TemplateID, 10),
		strconv.FormatInt(m.EmployeeID, 10),
		m.Finger,
		strconv.FormatUint(uint64(score), 10),
	}
}
